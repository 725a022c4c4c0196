package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
)

// CronTokenHeader carrega o segredo das rotas de controle do agendador
const CronTokenHeader = "X-Cron-Token"

// RequireUser restringe a rota a requisições com sessão Laravel validada
func RequireUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ClaimsFromContext(r.Context()); !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Usuário não autenticado", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CronToken libera a rota apenas quando o header bate com o token configurado.
// Sem token configurado a rota fica fechada.
func CronToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(CronTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logrus.WithField("path", r.URL.Path).Warning("Acesso negado às rotas do agendador")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
