package laravelclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/internal/config"
	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/pkg/log"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBody = 2048

type Client interface {
	ListAnuncios(ctx context.Context, sess laraveldomain.Session, params laraveldomain.ListAnunciosParams) (*laraveldomain.ListAnunciosResponse, error)
	GetAnuncio(ctx context.Context, sess laraveldomain.Session, id int) (*domain.Anuncio, error)
	ListCategorias(ctx context.Context, sess laraveldomain.Session) ([]domain.Categoria, error)
	ListNichos(ctx context.Context, sess laraveldomain.Session) ([]domain.Nicho, error)
	// CSRFCookie chama /sanctum/csrf-cookie e devolve os cookies recebidos.
	CSRFCookie(ctx context.Context, sess laraveldomain.Session) ([]*http.Cookie, error)
	CurrentUser(ctx context.Context, sess laraveldomain.Session) (*domain.User, error)
}

type LaravelClient struct {
	httpClient  *http.Client
	baseURL     string
	apiToken    string
	rateLimiter *rate.Limiter
	metrics     *metrics.Metrics
}

func NewClient(cfg config.Backend, m *metrics.Metrics) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &LaravelClient{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL:     cfg.URL,
		apiToken:    cfg.APIToken,
		rateLimiter: rate.NewLimiter(limit, burst),
		metrics:     m,
	}
}

func (c *LaravelClient) endpoint(p string, query url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	u.Path = path.Join(u.Path, p)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// do executa a requisição e devolve a resposta 2xx; o chamador fecha o corpo.
func (c *LaravelClient) do(ctx context.Context, sess laraveldomain.Session, name, p string, query url.Values) (*http.Response, error) {
	start := time.Now()

	if err := c.rateLimiter.Wait(ctx); err != nil {
		c.metrics.RecordExternalAPIFailure(name, "rate_limit")
		return nil, fmt.Errorf("limite de requisições: %w", err)
	}

	target, err := c.endpoint(p, query)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(name, "request_creation")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(name, "request_creation")
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	for _, cookie := range sess.Cookies {
		req.AddCookie(cookie)
	}
	if sess.XSRFToken != "" {
		req.Header.Set("X-XSRF-TOKEN", sess.XSRFToken)
	}
	switch {
	case sess.BearerToken != "":
		req.Header.Set("Authorization", "Bearer "+sess.BearerToken)
	case len(sess.Cookies) == 0 && c.apiToken != "":
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(name, "network_error")
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	duration := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.metrics.RecordExternalAPICall(name, fmt.Sprintf("error_%d", resp.StatusCode), duration)

		log.ForContext(ctx).WithFields(log.Fields{
			"endpoint":    name,
			"status_code": resp.StatusCode,
		}).Debug("API Laravel respondeu com erro")

		return nil, &laraveldomain.APIError{Endpoint: name, Status: resp.StatusCode, Body: string(body)}
	}

	c.metrics.RecordExternalAPICall(name, "success", duration)
	return resp, nil
}

func (c *LaravelClient) getJSON(ctx context.Context, sess laraveldomain.Session, name, p string, query url.Values, dest any) error {
	resp, err := c.do(ctx, sess, name, p, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		c.metrics.RecordExternalAPIFailure(name, "json_parse")
		return fmt.Errorf("erro ao decodificar a resposta de %s: %w", name, err)
	}
	return nil
}
