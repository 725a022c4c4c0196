package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/liveturb/escalando-agora-api/internal/config"
	marketplacemocks "github.com/liveturb/escalando-agora-api/internal/usecases/marketplace/mocks"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
)

func newRefreshService(t *testing.T, enabled bool) (*CatalogRefreshService, *marketplacemocks.MockMarketplace, *metrics.Metrics) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mp := marketplacemocks.NewMockMarketplace(ctrl)
	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	cfg := &config.Config{CatalogRefresh: config.CatalogRefresh{IntervalSeconds: 30, Enabled: enabled}}
	return NewCatalogRefreshService(mp, m, cfg), mp, m
}

func TestCatalogRefreshService_RefreshCatalog(t *testing.T) {
	tests := []struct {
		name       string
		refreshErr error
		wantStatus string
		wantError  string
	}{
		{name: "sucesso", wantStatus: "success"},
		{name: "falha é descartada", refreshErr: errors.New("api fora do ar"), wantStatus: "error", wantError: "api fora do ar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mp, m := newRefreshService(t, true)
			mp.EXPECT().Refresh(gomock.Any()).Return(tt.refreshErr)

			ran := svc.RefreshCatalog(context.Background())
			assert.True(t, ran)

			assert.Equal(t, float64(1), testutil.ToFloat64(m.CatalogRefreshRuns.WithLabelValues(tt.wantStatus)))

			status := svc.GetStatus()
			assert.Equal(t, 1, status["runs"])
			assert.Equal(t, tt.wantError, status["last_sync_error"])
			assert.Equal(t, false, status["sync_running"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestCatalogRefreshService_skipsOverlappingRuns(t *testing.T) {
	svc, mp, _ := newRefreshService(t, true)

	started := make(chan struct{})
	release := make(chan struct{})
	mp.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		svc.RefreshCatalog(context.Background())
	}()

	<-started
	assert.True(t, svc.IsRunning())
	assert.False(t, svc.RefreshCatalog(context.Background()))

	// a solicitação manual também é ignorada
	svc.TriggerManualSync()

	close(release)
	wg.Wait()

	assert.False(t, svc.IsRunning())
	assert.Equal(t, 1, svc.GetStatus()["runs"])
}

func TestCatalogRefreshService_TriggerManualSync(t *testing.T) {
	svc, mp, _ := newRefreshService(t, true)

	done := make(chan struct{})
	mp.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(done)
		return nil
	})

	svc.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("atualização manual não executou")
	}

	require.Eventually(t, func() bool { return !svc.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestCatalogRefreshService_Start(t *testing.T) {
	t.Run("desabilitado não agenda", func(t *testing.T) {
		svc, _, _ := newRefreshService(t, false)
		require.NoError(t, svc.Start(context.Background()))
		assert.Empty(t, svc.scheduler.Jobs())
	})

	t.Run("habilitado agenda e para com o contexto", func(t *testing.T) {
		svc, mp, _ := newRefreshService(t, true)
		// gocron executa o job imediatamente ao iniciar
		mp.EXPECT().Refresh(gomock.Any()).Return(nil).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, svc.Start(ctx))
		assert.Len(t, svc.scheduler.Jobs(), 1)

		cancel()
		require.Eventually(t, func() bool { return !svc.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}

func TestNewCatalogRefreshService_defaultInterval(t *testing.T) {
	svc := NewCatalogRefreshService(nil, nil, &config.Config{})
	assert.Equal(t, 30, svc.config.IntervalSeconds)
	assert.False(t, svc.config.SyncEnabled)
}
