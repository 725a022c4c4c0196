package authenticating

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel"
	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	laravelmocks "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/mocks"
	"github.com/liveturb/escalando-agora-api/internal/config"
	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
)

var now = time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *laravelmocks.MockLaravelIntegrator) {
	t.Helper()

	integrator := laravelmocks.NewMockLaravelIntegrator(gomock.NewController(t))
	cfg := &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste", SessionTTL: 10 * time.Minute},
		Frontend: config.Frontend{
			AppURL:   "https://app.escalandoagora.com",
			LoginURL: "https://escalandoagora.com/login",
		},
	}

	svc := NewService(integrator, cfg).(*Service)
	svc.now = func() time.Time { return now }
	return svc, integrator
}

func laravelSession() laraveldomain.Session {
	return laraveldomain.Session{
		Cookies: []*http.Cookie{
			{Name: "laravel_session", Value: "abc"},
			{Name: "XSRF-TOKEN", Value: "xsrf-1"},
		},
		XSRFToken: "xsrf-1",
	}
}

func testUser() *domain.User {
	return &domain.User{ID: 42, Name: "Maria", Email: "maria@example.com"}
}

func TestService_IssueAndValidateToken(t *testing.T) {
	svc, _ := newTestService(t)
	sess := laravelSession()

	token, expiresAt, err := svc.IssueToken(testUser(), sess)
	require.NoError(t, err)
	assert.Equal(t, now.Add(10*time.Minute), expiresAt)

	claims, err := svc.ValidateToken(token, sess)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "42", claims.ViewerKey())
	assert.Equal(t, "maria@example.com", claims.User().Email)

	// o XSRF-TOKEN gira a cada resposta e não invalida o token
	rotated := sess
	rotated.Cookies = []*http.Cookie{
		{Name: "XSRF-TOKEN", Value: "xsrf-2"},
		{Name: "laravel_session", Value: "abc"},
	}
	_, err = svc.ValidateToken(token, rotated)
	assert.NoError(t, err)
}

func TestService_ValidateToken_errors(t *testing.T) {
	svc, _ := newTestService(t)
	sess := laravelSession()

	token, _, err := svc.IssueToken(testUser(), sess)
	require.NoError(t, err)

	t.Run("expirado", func(t *testing.T) {
		svc.now = func() time.Time { return now.Add(11 * time.Minute) }
		defer func() { svc.now = func() time.Time { return now } }()

		_, err := svc.ValidateToken(token, sess)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsTokenError(err))
	})

	t.Run("outra sessão laravel", func(t *testing.T) {
		other := laraveldomain.Session{Cookies: []*http.Cookie{{Name: "laravel_session", Value: "xyz"}}}
		_, err := svc.ValidateToken(token, other)
		assert.ErrorIs(t, err, ErrSessionMismatch)
	})

	t.Run("assinatura inválida", func(t *testing.T) {
		_, err := svc.ValidateToken(token+"x", sess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("lixo", func(t *testing.T) {
		_, err := svc.ValidateToken("nao-e-um-jwt", sess)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_IssueToken_missingSecret(t *testing.T) {
	svc, _ := newTestService(t)
	svc.auth.Secret = ""

	_, _, err := svc.IssueToken(testUser(), laravelSession())
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("sonda a sessão e emite cookie", func(t *testing.T) {
		svc, integrator := newTestService(t)
		sess := laravelSession()

		integrator.EXPECT().ProbeSession(gomock.Any(), sess).Return(testUser(), nil, nil)

		identity, err := svc.Authenticate(ctx, sess, "")
		require.NoError(t, err)
		assert.Equal(t, 42, identity.Claims.UserID)
		assert.NotEmpty(t, identity.Token)
		assert.Equal(t, now.Add(10*time.Minute), identity.ExpiresAt)

		// o cookie emitido evita nova sondagem
		again, err := svc.Authenticate(ctx, sess, identity.Token)
		require.NoError(t, err)
		assert.Empty(t, again.Token)
		assert.Equal(t, 42, again.Claims.UserID)
	})

	t.Run("cookie expirado sonda de novo", func(t *testing.T) {
		svc, integrator := newTestService(t)
		sess := laravelSession()

		token, _, err := svc.IssueToken(testUser(), sess)
		require.NoError(t, err)
		svc.now = func() time.Time { return now.Add(time.Hour) }

		integrator.EXPECT().ProbeSession(gomock.Any(), sess).Return(testUser(), nil, nil)

		identity, err := svc.Authenticate(ctx, sess, token)
		require.NoError(t, err)
		assert.NotEmpty(t, identity.Token)
		assert.NotEqual(t, token, identity.Token)
	})

	t.Run("sem credenciais", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Authenticate(ctx, laraveldomain.Session{}, "")
		assert.ErrorIs(t, err, ErrUnauthenticated)

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, apiErrors.ErrUnauthenticated, authErr.Code)
	})

	t.Run("sessão recusada", func(t *testing.T) {
		svc, integrator := newTestService(t)
		integrator.EXPECT().ProbeSession(gomock.Any(), gomock.Any()).Return(nil, nil, laravel.ErrUnauthenticated)

		_, err := svc.Authenticate(ctx, laravelSession(), "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("falha da api", func(t *testing.T) {
		svc, integrator := newTestService(t)
		integrator.EXPECT().ProbeSession(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("timeout"))

		_, err := svc.Authenticate(ctx, laravelSession(), "")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthenticated)

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, apiErrors.ErrExternalService, authErr.Code)
	})

	t.Run("usuário vazio", func(t *testing.T) {
		svc, integrator := newTestService(t)
		integrator.EXPECT().ProbeSession(gomock.Any(), gomock.Any()).Return(&domain.User{}, nil, nil)

		_, err := svc.Authenticate(ctx, laravelSession(), "")
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestService_SessionFromRequest(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("cookies e xsrf do cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/anuncios", nil)
		r.AddCookie(&http.Cookie{Name: "laravel_session", Value: "abc"})
		r.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: url.QueryEscape("tok=en/1")})
		r.AddCookie(&http.Cookie{Name: svc.CookieName(), Value: "jwt"})

		sess := svc.SessionFromRequest(r)
		require.Len(t, sess.Cookies, 2)
		assert.Equal(t, "laravel_session", sess.Cookies[0].Name)
		assert.Equal(t, "tok=en/1", sess.XSRFToken)
		assert.Empty(t, sess.BearerToken)
	})

	t.Run("header tem precedência", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/anuncios", nil)
		r.Header.Set("X-XSRF-TOKEN", "do-header")
		r.Header.Set("Authorization", "Bearer token-interno")
		r.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: "do-cookie"})

		sess := svc.SessionFromRequest(r)
		assert.Equal(t, "do-header", sess.XSRFToken)
		assert.Equal(t, "token-interno", sess.BearerToken)
	})

	t.Run("sem nada", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.True(t, svc.SessionFromRequest(r).IsZero())
	})
}

func TestService_LoginURL(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Equal(t,
		"https://escalandoagora.com/login?redirect_to=https%3A%2F%2Fapp.escalandoagora.com%2Fdashboard%3Fid%3D7",
		svc.LoginURL("/dashboard?id=7"),
	)

	svc.login = "https://escalandoagora.com/login?lang=pt"
	assert.Equal(t,
		"https://escalandoagora.com/login?lang=pt&redirect_to=https%3A%2F%2Fapp.escalandoagora.com%2F",
		svc.LoginURL("/"),
	)
}

func TestNewService_defaults(t *testing.T) {
	svc := NewService(nil, &config.Config{}).(*Service)
	assert.Equal(t, "escalando_session", svc.CookieName())
	assert.Equal(t, 10*time.Minute, svc.auth.SessionTTL)
}
