package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/liveturb/escalando-agora-api/internal/api/handler"
	"github.com/liveturb/escalando-agora-api/internal/api/handler/router"
	"github.com/liveturb/escalando-agora-api/internal/config"
	"github.com/liveturb/escalando-agora-api/internal/scheduler"
	"github.com/liveturb/escalando-agora-api/internal/usecases/authenticating"
	"github.com/liveturb/escalando-agora-api/internal/usecases/dashboard"
	"github.com/liveturb/escalando-agora-api/internal/usecases/favoriting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/insighting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/marketplace"
	"github.com/liveturb/escalando-agora-api/internal/usecases/thumbnailing"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
	"github.com/liveturb/escalando-agora-api/pkg/middleware"
)

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator  authenticating.Authenticator
	Marketplace    marketplace.Marketplace
	Dashboard      dashboard.Composer
	Insighter      insighting.Insighter
	Favorites      favoriting.Favoriter
	Thumbnailer    thumbnailing.Thumbnailer
	CatalogRefresh *scheduler.CatalogRefreshService
	Metrics        *metrics.Metrics
	// HealthChecks são pingadas pelo /healthcheck
	HealthChecks map[string]handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// Handler monta o roteador com a cadeia de middlewares globais
func Handler(cfg *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{}
	if services.CatalogRefresh != nil {
		cronServices.CatalogRefreshService = services.CatalogRefresh
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.HealthChecks)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Frontend(cfg)...),
		router.WithRoutes(handler.Anuncios(services.Marketplace)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard, services.Marketplace, services.Insighter, services.Metrics)...),
		router.WithRoutes(handler.Favoritos(services.Favorites, services.Metrics)...),
		router.WithRoutes(handler.Thumbnails(services.Thumbnailer)...),
		router.WithRoutes(handler.CronJobs(cronServices, cfg.Auth.CronToken)...),
	)

	for _, route := range rt.Routes() {
		logrus.WithField("route", route).Debug("Rota registrada")
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(services.Metrics),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil || services.Marketplace == nil || services.Dashboard == nil {
		return nil, fmt.Errorf("api: serviços obrigatórios não informados")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           Handler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// a análise simulada segura a requisição por alguns segundos
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
