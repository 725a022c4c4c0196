// Package scheduler contém os serviços de agendamento para atualização do catálogo
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/liveturb/escalando-agora-api/internal/config"
	"github.com/liveturb/escalando-agora-api/internal/usecases/marketplace"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
)

// CatalogRefreshConfig representa a configuração do agendador de atualização do catálogo
type CatalogRefreshConfig struct {
	IntervalSeconds int
	SyncEnabled     bool
}

// CatalogRefreshService mantém snapshot, categorias e nichos atualizados em segundo plano
type CatalogRefreshService struct {
	scheduler           *gocron.Scheduler
	config              CatalogRefreshConfig
	marketplace         marketplace.Marketplace
	metrics             *metrics.Metrics
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	runs                int
}

func NewCatalogRefreshService(
	marketplaceService marketplace.Marketplace,
	m *metrics.Metrics,
	cfg *config.Config,
) *CatalogRefreshService {
	refreshConfig := CatalogRefreshConfig{
		IntervalSeconds: cfg.CatalogRefresh.IntervalSeconds,
		SyncEnabled:     cfg.CatalogRefresh.Enabled,
	}
	if refreshConfig.IntervalSeconds <= 0 {
		refreshConfig.IntervalSeconds = 30
	}

	scheduler := gocron.NewScheduler(time.Local)
	// uma execução lenta não deve empilhar outra
	scheduler.SingletonModeAll()

	logrus.WithFields(logrus.Fields{
		"interval_seconds": refreshConfig.IntervalSeconds,
		"sync_enabled":     refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização do catálogo carregada")

	return &CatalogRefreshService{
		scheduler:   scheduler,
		config:      refreshConfig,
		marketplace: marketplaceService,
		metrics:     m,
	}
}

// Start inicia o agendador
func (s *CatalogRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização do catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).Info("Iniciando agendador de atualização do catálogo")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.RefreshCatalog(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshCatalog executa uma atualização; falhas são registradas e descartadas.
// Devolve false quando outra execução já estava em andamento.
func (s *CatalogRefreshService) RefreshCatalog(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do catálogo já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	err := s.marketplace.Refresh(ctx)
	duration := time.Since(startTime)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.runs++
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		s.metrics.RecordCatalogRefresh("error", duration)
		logrus.WithError(err).Warn("Erro na atualização do catálogo, mantendo dados anteriores")
		return true
	}

	s.metrics.RecordCatalogRefresh("success", duration)
	logrus.WithField("duration_ms", duration.Milliseconds()).Debug("Catálogo atualizado")
	return true
}

// TriggerManualSync inicia manualmente uma atualização do catálogo
func (s *CatalogRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do catálogo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do catálogo")
	go s.RefreshCatalog(context.Background())
}

// IsRunning indica se há uma atualização em andamento
func (s *CatalogRefreshService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *CatalogRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"interval_seconds":       s.config.IntervalSeconds,
		"sync_running":           s.syncRunning,
		"runs":                   s.runs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
