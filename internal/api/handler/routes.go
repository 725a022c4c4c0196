package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/liveturb/escalando-agora-api/internal/api/handler/router"
	"github.com/liveturb/escalando-agora-api/internal/config"
	"github.com/liveturb/escalando-agora-api/internal/usecases/dashboard"
	"github.com/liveturb/escalando-agora-api/internal/usecases/favoriting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/insighting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/marketplace"
	"github.com/liveturb/escalando-agora-api/internal/usecases/thumbnailing"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
	"github.com/liveturb/escalando-agora-api/pkg/middleware"
)

var authenticated = []func(http.Handler) http.Handler{middleware.RequireUser()}

func Healthcheck(checks map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Frontend(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/config",
			Method:  http.MethodGet,
			Handler: FrontendConfig(cfg),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: authenticated,
		},
	}
}

func Anuncios(service marketplace.Marketplace) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/anuncios",
			Method:      http.MethodGet,
			Handler:     ListAnuncios(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/feed/next",
			Method:      http.MethodPost,
			Handler:     FeedNext(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/feed/reset",
			Method:      http.MethodPost,
			Handler:     FeedReset(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/anuncios/:id",
			Method:      http.MethodGet,
			Handler:     GetAnuncio(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/categorias",
			Method:      http.MethodGet,
			Handler:     ListCategorias(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/nichos",
			Method:      http.MethodGet,
			Handler:     ListNichos(service),
			Middlewares: authenticated,
		},
	}
}

func Dashboard(
	composer dashboard.Composer,
	ads marketplace.Marketplace,
	insighter insighting.Insighter,
	m *metrics.Metrics,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/anuncios/:id/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(composer),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/anuncios/:id/analysis",
			Method:      http.MethodPost,
			Handler:     RunAnalysis(ads, insighter, m),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/anuncios/:id/analysis",
			Method:      http.MethodGet,
			Handler:     GetLatestAnalysis(insighter),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/classify",
			Method:      http.MethodPost,
			Handler:     Classify(),
			Middlewares: authenticated,
		},
	}
}

func Favoritos(service favoriting.Favoriter, m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/favoritos",
			Method:      http.MethodGet,
			Handler:     ListFavoritos(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/favoritos",
			Method:      http.MethodPost,
			Handler:     ImportFavoritos(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/favoritos/:id",
			Method:      http.MethodGet,
			Handler:     GetFavorito(service),
			Middlewares: authenticated,
		},
		{
			Path:        "/v1/favoritos/:id/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleFavorito(service, m),
			Middlewares: authenticated,
		},
	}
}

func Thumbnails(service thumbnailing.Thumbnailer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/thumbnails",
			Method:  http.MethodGet,
			Handler: GetThumbnail(service),
		},
	}
}

func CronJobs(services CronJobServices, cronToken string) []router.Route {
	guard := []func(http.Handler) http.Handler{middleware.CronToken(cronToken)}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: guard,
		},
		{
			Path:        "/v1/cron/:type/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: guard,
		},
	}
}
