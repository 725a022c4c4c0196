package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/internal/usecases/authenticating"
	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
	"github.com/liveturb/escalando-agora-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser     contextKey = "user"
	ContextKeySession  contextKey = "laravel_session"
	ContextKeyLoginURL contextKey = "login_url"
)

// publicPaths não exigem sessão Laravel
var publicPaths = map[string]struct{}{
	"/healthcheck":   {},
	"/metrics":       {},
	"/v1/config":     {},
	"/v1/thumbnails": {},
}

func isPublic(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return true
	}
	if _, ok := publicPaths[r.URL.Path]; ok {
		return true
	}
	// protegidas pelo CronToken
	return strings.HasPrefix(r.URL.Path, "/v1/cron/")
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			sess := authService.SessionFromRequest(r)

			var sessionToken string
			if cookie, err := r.Cookie(authService.CookieName()); err == nil {
				sessionToken = cookie.Value
			}

			identity, err := authService.Authenticate(r.Context(), sess, sessionToken)
			if err != nil {
				writeAuthError(w, r, authService, err)
				return
			}

			if identity.Token != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     authService.CookieName(),
					Value:    identity.Token,
					Path:     "/",
					Expires:  identity.ExpiresAt,
					HttpOnly: true,
					Secure:   isSecure(r),
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithIdentity(r.Context(), identity.Claims, identity.Session)
			// a API Laravel ainda pode recusar a sessão no meio da requisição
			ctx = context.WithValue(ctx, ContextKeyLoginURL, authService.LoginURL(r.URL.RequestURI()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeAuthError redireciona navegações HTML para o login; chamadas da API recebem 401 com login_url.
func writeAuthError(w http.ResponseWriter, r *http.Request, authService authenticating.Authenticator, err error) {
	if !errors.Is(err, authenticating.ErrUnauthenticated) {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao validar sessão na API Laravel")

		code := apiErrors.ErrExternalService
		var authErr *authenticating.AuthError
		if errors.As(err, &authErr) && authErr.Code != "" {
			code = authErr.Code
		}
		apiErrors.WriteError(w, code, "Não foi possível validar a sessão", nil)
		return
	}

	loginURL := authService.LoginURL(r.URL.RequestURI())

	if wantsHTML(r) {
		http.Redirect(w, r, loginURL, http.StatusFound)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrUnauthenticated, "Sessão expirada ou inexistente", map[string]string{
		"login_url": loginURL,
	})
}

func wantsHTML(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func isSecure(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// WithIdentity guarda usuário e sessão Laravel no contexto da requisição.
func WithIdentity(ctx context.Context, claims *domain.Claims, sess laraveldomain.Session) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUser, claims)
	return context.WithValue(ctx, ContextKeySession, sess)
}

// ClaimsFromContext devolve o usuário autenticado da requisição.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok && claims != nil
}

// SessionFromContext devolve as credenciais Laravel a repassar para a API.
func SessionFromContext(ctx context.Context) laraveldomain.Session {
	sess, _ := ctx.Value(ContextKeySession).(laraveldomain.Session)
	return sess
}

// LoginURLFromContext devolve o endereço de login calculado para a requisição.
func LoginURLFromContext(ctx context.Context) string {
	loginURL, _ := ctx.Value(ContextKeyLoginURL).(string)
	return loginURL
}
