package favoriting

import "errors"

var (
	ErrMissingViewer = errors.New("perfil do usuário não identificado")
	ErrInvalidAdID   = errors.New("id de anúncio inválido")
)
