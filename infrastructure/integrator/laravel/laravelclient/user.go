package laravelclient

import (
	"context"
	"net/http"

	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/internal/domain"
)

func (c *LaravelClient) CSRFCookie(ctx context.Context, sess laraveldomain.Session) ([]*http.Cookie, error) {
	resp, err := c.do(ctx, sess, "csrf_cookie", "/sanctum/csrf-cookie", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return resp.Cookies(), nil
}

func (c *LaravelClient) CurrentUser(ctx context.Context, sess laraveldomain.Session) (*domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, sess, "user", "/api/user", nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
