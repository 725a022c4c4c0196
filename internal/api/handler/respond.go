package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel"
	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/internal/usecases/authenticating"
	"github.com/liveturb/escalando-agora-api/internal/usecases/dashboard"
	"github.com/liveturb/escalando-agora-api/internal/usecases/favoriting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/insighting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/marketplace"
	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
	"github.com/liveturb/escalando-agora-api/pkg/log"
	"github.com/liveturb/escalando-agora-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

func viewerFrom(r *http.Request) string {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return ""
	}
	return claims.ViewerKey()
}

// anuncioID lê o parâmetro :id da rota; zero quando ausente ou inválido.
func anuncioID(r *http.Request) int {
	id, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// writeUsecaseError traduz os erros dos casos de uso para o formato padronizado da API.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, laravel.ErrUnauthenticated), errors.Is(err, authenticating.ErrUnauthenticated):
		apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Sessão expirada ou inexistente", map[string]string{
			"login_url": middleware.LoginURLFromContext(r.Context()),
		})

	case errors.Is(err, laravel.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAdNotFound, "Anúncio não encontrado", nil)

	case errors.Is(err, dashboard.ErrCreativeNotFound):
		apiErrors.WriteError(w, apiErrors.ErrCreativeNotFound, "Criativo não pertence ao anúncio", nil)

	case errors.Is(err, marketplace.ErrLoadInProgress):
		apiErrors.WriteError(w, apiErrors.ErrLoadInProgress, "Carregamento já em andamento", nil)

	case errors.Is(err, insighting.ErrAnalysisSuperseded):
		apiErrors.WriteError(w, apiErrors.ErrAnalysisSuperseded, "Análise substituída por uma mais recente", nil)

	case errors.Is(err, marketplace.ErrInvalidAdID),
		errors.Is(err, dashboard.ErrInvalidAdID),
		errors.Is(err, favoriting.ErrInvalidAdID):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do anúncio inválido", nil)

	case errors.Is(err, favoriting.ErrMissingViewer):
		apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não identificado", nil)

	default:
		var apiErr *laraveldomain.APIError
		if errors.As(err, &apiErr) {
			logger.WithField("endpoint", apiErr.Endpoint).Error(fallback)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, fallback, nil)
			return
		}
		logger.Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}
