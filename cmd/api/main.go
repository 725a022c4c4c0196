package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/liveturb/escalando-agora-api/infrastructure/database/postgres"
	"github.com/liveturb/escalando-agora-api/infrastructure/database/redis"
	"github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel"
	"github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/laravelclient"
	"github.com/liveturb/escalando-agora-api/infrastructure/repository"
	"github.com/liveturb/escalando-agora-api/internal/api"
	"github.com/liveturb/escalando-agora-api/internal/api/handler"
	"github.com/liveturb/escalando-agora-api/internal/config"
	"github.com/liveturb/escalando-agora-api/internal/scheduler"
	"github.com/liveturb/escalando-agora-api/internal/usecases/authenticating"
	"github.com/liveturb/escalando-agora-api/internal/usecases/dashboard"
	"github.com/liveturb/escalando-agora-api/internal/usecases/favoriting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/insighting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/marketplace"
	"github.com/liveturb/escalando-agora-api/internal/usecases/thumbnailing"
	"github.com/liveturb/escalando-agora-api/pkg/log"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()

	store := redisStore(ctx, cfg.Redis)
	defer store.Close()

	healthChecks := map[string]handler.Pinger{"redis": store}

	favoriteRepo, closeFavorites := favoriteRepository(ctx, cfg, store, healthChecks)
	defer closeFavorites()

	laravelClient := laravelclient.NewClient(cfg.Backend, m)
	laravelIntegrator := laravel.New(laravelClient, cfg.Marketplace.ItemsPerPage)

	authenticator := authenticating.NewService(laravelIntegrator, cfg)
	if cfg.Auth.Secret == "your_secret_key" {
		logrus.Warn("AUTH_SECRET está com o valor padrão, configure um segredo em produção")
	}

	favoriteService := favoriting.NewService(favoriteRepo)

	marketplaceService := marketplace.NewService(
		laravelIntegrator,
		favoriteService,
		repository.NewCatalogCache(store),
		m,
		cfg.Marketplace.ItemsPerPage,
	)

	// A "análise de IA" é simulada: pausa artificial e textos sorteados
	analyzer := insighting.NewAnalyzer(cfg.Analysis.Delay, insighting.NewRandomPicker(cfg.Analysis.Seed))

	dashboardService := dashboard.NewService(
		laravelIntegrator,
		favoriteService,
		repository.NewMinValueRepository(store),
		analyzer,
	)

	thumbnailService := thumbnailing.NewService(
		thumbnailing.NewFFmpegGrabber(cfg.Thumbnail.FFmpegPath, cfg.Thumbnail.FFprobePath),
		repository.NewThumbnailCache(store),
		m,
		thumbnailing.Options{
			Timeout:       cfg.Thumbnail.Timeout,
			CacheTTL:      cfg.Thumbnail.CacheTTL,
			Placeholder:   cfg.Thumbnail.Placeholder,
			MaxConcurrent: cfg.Thumbnail.MaxConcurrent,
		},
	)

	// Inicializa o agendador que mantém o snapshot do catálogo aquecido
	catalogRefreshService := scheduler.NewCatalogRefreshService(marketplaceService, m, cfg)

	if err := catalogRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do catálogo")
	} else {
		logrus.Info("Agendador de atualização do catálogo iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:  authenticator,
		Marketplace:    marketplaceService,
		Dashboard:      dashboardService,
		Insighter:      analyzer,
		Favorites:      favoriteService,
		Thumbnailer:    thumbnailService,
		CatalogRefresh: catalogRefreshService,
		Metrics:        m,
		HealthChecks:   healthChecks,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs emitidos antes da leitura da configuração
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	if err := os.Chdir(dir); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}

	log.Setup("info")
}

// redisStore cria a conexão com o Redis usada pelos caches e pelo mínimo histórico
func redisStore(ctx context.Context, cfg config.Redis) *redis.Store {
	store, err := redis.NewStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	return store
}

// favoriteRepository escolhe onde os favoritos ficam gravados conforme FAVORITES_STORE
func favoriteRepository(
	ctx context.Context,
	cfg *config.Config,
	store *redis.Store,
	healthChecks map[string]handler.Pinger,
) (repository.FavoriteRepository, func()) {
	if cfg.Favorites.Store == config.FavoritesStoreRedis {
		logrus.Info("Favoritos gravados no Redis")
		return repository.NewFavoriteRedisRepository(store), func() {}
	}

	pgConn := pgconn(ctx, cfg.Database)
	healthChecks["postgres"] = pgConn
	return repository.NewFavoritePostgresRepository(pgConn), func() { _ = pgConn.Close() }
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
