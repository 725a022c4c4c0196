package dashboard

import "github.com/pkg/errors"

var (
	ErrInvalidAdID      = errors.New("id de anúncio inválido")
	ErrCreativeNotFound = errors.New("criativo não pertence ao anúncio")
)

// MediaUnavailable é a mensagem exibida quando o anúncio não tem vídeo reproduzível.
const MediaUnavailable = "URL do vídeo não disponível"
