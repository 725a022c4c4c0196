package handler

import (
	"net/http"

	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
	"github.com/liveturb/escalando-agora-api/pkg/middleware"
)

// GetMe retorna o usuário validado na API Laravel
func GetMe() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, http.StatusOK, claims.User())
	})
}
