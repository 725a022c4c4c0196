package insighting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/pkg/log"
	"github.com/liveturb/escalando-agora-api/pkg/utils"
)

// Insighter é a "análise de IA" simulada do gráfico de espionagem.
type Insighter interface {
	// Analyze espera o atraso configurado e devolve a análise do período.
	// Se outra análise for pedida para o mesmo viewer e anúncio durante a espera,
	// esta devolve ErrAnalysisSuperseded e não é gravada.
	Analyze(ctx context.Context, viewer string, ad *domain.Anuncio, period domain.Period) (*domain.Analysis, error)
	// Latest devolve a última análise gravada para o viewer e anúncio.
	Latest(viewer string, adID int) (*domain.Analysis, bool)
}

// AnalysisRetention é por quanto tempo a última análise continua disponível.
const AnalysisRetention = time.Hour

type analysisKey struct {
	viewer string
	adID   int
}

type Analyzer struct {
	delay    time.Duration
	picker   Picker
	now      func() time.Time
	newToken func() (string, error)

	mu        sync.Mutex
	pending   map[analysisKey]string
	latest    map[analysisKey]*domain.Analysis
	lastSweep time.Time
}

func NewAnalyzer(delay time.Duration, picker Picker) *Analyzer {
	return &Analyzer{
		delay:    delay,
		picker:   picker,
		now:      time.Now,
		newToken: utils.GenerateToken,
		pending:  make(map[analysisKey]string),
		latest:   make(map[analysisKey]*domain.Analysis),
	}
}

func (a *Analyzer) Analyze(ctx context.Context, viewer string, ad *domain.Anuncio, period domain.Period) (*domain.Analysis, error) {
	if ad == nil {
		return nil, ErrMissingAd
	}

	token, err := a.newToken()
	if err != nil {
		return nil, errors.Wrap(err, "gerar token da análise")
	}

	key := analysisKey{viewer: viewer, adID: ad.ID}

	a.mu.Lock()
	a.pending[key] = token
	a.mu.Unlock()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"anuncio_id": ad.ID,
		"period":     period,
		"token":      token,
	})
	logger.Debug("Análise iniciada")

	if err := a.wait(ctx); err != nil {
		a.release(key, token)
		return nil, err
	}

	analysis := Compute(ad, period, a.picker)
	analysis.Token = token
	analysis.CompletedAt = a.now()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pending[key] != token {
		logger.Debug("Análise descartada: existe requisição mais recente")
		return nil, ErrAnalysisSuperseded
	}
	delete(a.pending, key)
	a.latest[key] = analysis
	a.sweep(analysis.CompletedAt)

	return analysis, nil
}

func (a *Analyzer) Latest(viewer string, adID int) (*domain.Analysis, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	analysis, ok := a.latest[analysisKey{viewer: viewer, adID: adID}]
	if !ok || a.expired(analysis, a.now()) {
		return nil, false
	}
	return analysis, true
}

func (a *Analyzer) expired(analysis *domain.Analysis, now time.Time) bool {
	return now.Sub(analysis.CompletedAt) > AnalysisRetention
}

// sweep remove análises vencidas no máximo uma vez por minuto. Chamado com mu travado.
func (a *Analyzer) sweep(now time.Time) {
	if now.Sub(a.lastSweep) < time.Minute {
		return
	}
	a.lastSweep = now

	for key, analysis := range a.latest {
		if a.expired(analysis, now) {
			delete(a.latest, key)
		}
	}
}

func (a *Analyzer) wait(ctx context.Context) error {
	if a.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// release libera a vaga apenas se ainda pertence ao token
func (a *Analyzer) release(key analysisKey, token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending[key] == token {
		delete(a.pending, key)
	}
}

// Compute calcula tendência, potencial, insight e legenda sem nenhuma espera.
// A tendência usada no insight é a recém calculada.
func Compute(ad *domain.Anuncio, period domain.Period, picker Picker) *domain.Analysis {
	series := ad.Estatisticas.Series(period)
	summary := Summarize(series, ad.AdCount())
	trend := Trend(series)

	potential := PotentialScore(ScoreInput{
		CreativeCount:  len(ad.Criativos),
		CurrentAdCount: ad.AdCount(),
		SeriesMax:      summary.Max,
		PointCount:     len(series),
		Trend:          trend,
	}, picker.Jitter())

	insight := BuildInsight(trend, InsightData{
		Growth:  GrowthPercent(series),
		Average: summary.Average,
		Peak:    summary.Max,
	}, picker)

	return &domain.Analysis{
		AnuncioID:      ad.ID,
		Period:         period,
		Trend:          trend,
		Potential:      potential,
		Insight:        insight,
		Interpretacoes: Interpretations(period),
	}
}
