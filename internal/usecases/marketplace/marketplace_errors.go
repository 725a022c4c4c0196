package marketplace

import "github.com/pkg/errors"

// ErrLoadInProgress indica que já existe um carregamento do feed em andamento para o perfil.
var ErrLoadInProgress = errors.New("carregamento de anúncios já em andamento")

var ErrInvalidAdID = errors.New("id de anúncio inválido")
