package authenticating

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel"
	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/internal/config"
	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
	"github.com/liveturb/escalando-agora-api/pkg/log"
)

const (
	xsrfCookieName = "XSRF-TOKEN"
	xsrfHeaderName = "X-XSRF-TOKEN"
)

// Identity é o resultado da autenticação de uma requisição.
type Identity struct {
	Claims  *domain.Claims
	Session laraveldomain.Session
	// Token vem preenchido quando um novo cookie de sessão precisa ser emitido
	Token     string
	ExpiresAt time.Time
}

type Authenticator interface {
	// SessionFromRequest extrai as credenciais Laravel enviadas pelo navegador.
	SessionFromRequest(r *http.Request) laraveldomain.Session
	// Authenticate reaproveita o cookie de sessão válido ou sonda a API Laravel.
	Authenticate(ctx context.Context, sess laraveldomain.Session, sessionToken string) (*Identity, error)
	IssueToken(user *domain.User, sess laraveldomain.Session) (string, time.Time, error)
	ValidateToken(tokenString string, sess laraveldomain.Session) (*domain.Claims, error)
	LoginURL(path string) string
	CookieName() string
}

type Service struct {
	laravel laravel.LaravelIntegrator
	auth    config.Auth
	appURL  string
	login   string
	now     func() time.Time
}

func NewService(integrator laravel.LaravelIntegrator, cfg *config.Config) Authenticator {
	auth := cfg.Auth
	if auth.SessionTTL <= 0 {
		auth.SessionTTL = 10 * time.Minute
	}
	if auth.CookieName == "" {
		auth.CookieName = "escalando_session"
	}

	return &Service{
		laravel: integrator,
		auth:    auth,
		appURL:  cfg.Frontend.AppURL,
		login:   cfg.Frontend.LoginURL,
		now:     time.Now,
	}
}

func (s *Service) CookieName() string {
	return s.auth.CookieName
}

func (s *Service) SessionFromRequest(r *http.Request) laraveldomain.Session {
	var sess laraveldomain.Session

	for _, cookie := range r.Cookies() {
		if cookie.Name == s.auth.CookieName {
			continue
		}
		sess.Cookies = append(sess.Cookies, cookie)
	}

	sess.XSRFToken = r.Header.Get(xsrfHeaderName)
	if sess.XSRFToken == "" {
		if cookie, err := r.Cookie(xsrfCookieName); err == nil {
			// o Laravel grava o token url-encoded
			if value, err := url.QueryUnescape(cookie.Value); err == nil {
				sess.XSRFToken = value
			}
		}
	}

	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		sess.BearerToken = strings.TrimPrefix(authHeader, "Bearer ")
	}

	return sess
}

func (s *Service) Authenticate(ctx context.Context, sess laraveldomain.Session, sessionToken string) (*Identity, error) {
	if sessionToken != "" {
		claims, err := s.ValidateToken(sessionToken, sess)
		if err == nil {
			return &Identity{Claims: claims, Session: sess}, nil
		}
		log.ForContext(ctx).WithError(err).Debug("Cookie de sessão descartado, sondando API Laravel")
	}

	if sess.IsZero() {
		return nil, NewAuthError(ErrUnauthenticated, apiErrors.ErrUnauthenticated, "nenhuma credencial enviada")
	}

	user, _, err := s.laravel.ProbeSession(ctx, sess)
	if err != nil {
		if errors.Is(err, laravel.ErrUnauthenticated) {
			return nil, NewAuthError(ErrUnauthenticated, apiErrors.ErrUnauthenticated, "sessão recusada pela API Laravel")
		}
		return nil, NewAuthError(err, apiErrors.ErrExternalService, "erro ao sondar a sessão")
	}
	if user == nil || user.ID == 0 {
		return nil, NewAuthError(ErrUnauthenticated, apiErrors.ErrUnauthenticated, "API Laravel não devolveu usuário")
	}

	token, claims, err := s.issue(user, sess)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "erro ao gerar cookie de sessão")
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Debug("Sessão Laravel validada")

	return &Identity{Claims: claims, Session: sess, Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func newClaims(user *domain.User, hash string, now time.Time, ttl time.Duration) *domain.Claims {
	return &domain.Claims{
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		Avatar:      user.Avatar,
		SessionHash: hash,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (s *Service) IssueToken(user *domain.User, sess laraveldomain.Session) (string, time.Time, error) {
	signed, claims, err := s.issue(user, sess)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, claims.ExpiresAt.Time, nil
}

func (s *Service) issue(user *domain.User, sess laraveldomain.Session) (string, *domain.Claims, error) {
	if s.auth.Secret == "" {
		return "", nil, ErrMissingSecret
	}

	claims := newClaims(user, sessionHash(sess, s.auth.CookieName), s.now(), s.auth.SessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.auth.Secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (s *Service) ValidateToken(tokenString string, sess laraveldomain.Session) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.SessionHash != sessionHash(sess, s.auth.CookieName) {
		return nil, ErrSessionMismatch
	}

	return claims, nil
}

// LoginURL monta LOGIN_URL?redirect_to=APP_URL+path.
func (s *Service) LoginURL(path string) string {
	target := s.appURL + path

	separator := "?"
	if strings.Contains(s.login, "?") {
		separator = "&"
	}
	return s.login + separator + "redirect_to=" + url.QueryEscape(target)
}

// sessionHash resume os cookies Laravel estáveis; o XSRF-TOKEN gira a cada resposta e fica de fora.
func sessionHash(sess laraveldomain.Session, ownCookie string) string {
	parts := make([]string, 0, len(sess.Cookies)+1)
	for _, c := range sess.Cookies {
		if c.Name == xsrfCookieName || c.Name == ownCookie {
			continue
		}
		parts = append(parts, c.Name+"="+c.Value)
	}
	sort.Strings(parts)
	if sess.BearerToken != "" {
		parts = append(parts, "bearer="+sess.BearerToken)
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, ";")))
	return hex.EncodeToString(sum[:])
}
