package insighting

import "errors"

var (
	// ErrAnalysisSuperseded indica que uma análise mais recente foi pedida para o mesmo anúncio.
	ErrAnalysisSuperseded = errors.New("análise substituída por uma requisição mais recente")
	ErrMissingAd          = errors.New("anúncio não informado")
)
