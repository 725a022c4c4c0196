package insighting

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveturb/escalando-agora-api/internal/domain"
)

func series(values ...int) []domain.EstatisticaItem {
	items := make([]domain.EstatisticaItem, 0, len(values))
	for i, v := range values {
		items = append(items, domain.EstatisticaItem{
			Day:   time.Date(2024, 6, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Value: v,
		})
	}
	return items
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   domain.Trend
	}{
		{name: "alta", values: []int{1, 2, 10, 11, 12}, want: domain.TrendRising},
		{name: "estável", values: []int{10, 10, 10}, want: domain.TrendStable},
		{name: "queda pequena é estável", values: []int{50, 12, 11, 10}, want: domain.TrendStable},
		{name: "queda", values: []int{12, 11, 9}, want: domain.TrendFalling},
		{name: "série curta", values: []int{1, 100}, want: domain.TrendStable},
		{name: "série vazia", values: nil, want: domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trend(series(tt.values...)))
		})
	}
}

func TestGrowthPercent(t *testing.T) {
	assert.Equal(t, 50, GrowthPercent(series(10, 12, 15)))
	assert.Equal(t, -20, GrowthPercent(series(1, 10, 9, 8)))
	assert.Equal(t, 0, GrowthPercent(series(0, 5, 10)))
	assert.Equal(t, 0, GrowthPercent(series(5, 10)))
}

func TestPotentialScore(t *testing.T) {
	tests := []struct {
		name   string
		in     ScoreInput
		jitter float64
		want   int
	}{
		{
			name: "poucos pontos",
			in:   ScoreInput{CreativeCount: 200, PointCount: 2, Trend: domain.TrendRising},
			want: DefaultPotential,
		},
		{
			name: "sem criativos em queda fica no piso absoluto",
			in:   ScoreInput{CreativeCount: 0, PointCount: 7, Trend: domain.TrendFalling},
			want: 30, // 30 - 5 + 0 = 25
		},
		{
			name:   "faixa de 30 criativos estável",
			in:     ScoreInput{CreativeCount: 40, CurrentAdCount: 50, SeriesMax: 100, PointCount: 7, Trend: domain.TrendStable},
			jitter: 2,
			want:   65, // 50 + 8 + 5 + 2
		},
		{
			name:   "piso da faixa de 150",
			in:     ScoreInput{CreativeCount: 160, CurrentAdCount: 0, SeriesMax: 10, PointCount: 7, Trend: domain.TrendFalling},
			jitter: 0,
			want:   85, // 85 - 5 = 80
		},
		{
			name:   "acima de 180 garante 90",
			in:     ScoreInput{CreativeCount: 190, CurrentAdCount: 0, SeriesMax: 10, PointCount: 7, Trend: domain.TrendStable},
			jitter: 0,
			want:   93, // 85 + 8
		},
		{
			name:   "acima de 180 com queda sobe para 90",
			in:     ScoreInput{CreativeCount: 190, CurrentAdCount: 10, SeriesMax: 10, PointCount: 7, Trend: domain.TrendFalling},
			jitter: 0,
			want:   90, // 85 - 5 + 10 = 90
		},
		{
			name:   "teto de 100",
			in:     ScoreInput{CreativeCount: 150, CurrentAdCount: 500, SeriesMax: 10, PointCount: 7, Trend: domain.TrendRising},
			jitter: 4.9,
			want:   100,
		},
		{
			name:   "máximo zero não divide por zero",
			in:     ScoreInput{CreativeCount: 0, CurrentAdCount: 3, SeriesMax: 0, PointCount: 3, Trend: domain.TrendRising},
			jitter: 0,
			want:   55, // 30 + 15 + 10
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PotentialScore(tt.in, tt.jitter))
		})
	}
}

func TestPotentialScore_alwaysInRange(t *testing.T) {
	trends := []domain.Trend{domain.TrendRising, domain.TrendStable, domain.TrendFalling, ""}
	for creatives := 0; creatives <= 260; creatives += 13 {
		for _, trend := range trends {
			for _, current := range []int{-10, 0, 5, 300} {
				for _, jitter := range []float64{-1, 0, 2.5, 4.99, 10} {
					for _, points := range []int{0, 2, 3, 30} {
						score := PotentialScore(ScoreInput{
							CreativeCount:  creatives,
							CurrentAdCount: current,
							SeriesMax:      50,
							PointCount:     points,
							Trend:          trend,
						}, jitter)
						assert.GreaterOrEqual(t, score, MinPotential)
						assert.LessOrEqual(t, score, MaxPotential)
					}
				}
			}
		}
	}
}

func TestLevel(t *testing.T) {
	assert.Equal(t, domain.LevelHigh, Level(120))
	assert.Equal(t, domain.LevelMedium, Level(119))
	assert.Equal(t, domain.LevelMedium, Level(80))
	assert.Equal(t, domain.LevelLow, Level(30))
	assert.Equal(t, domain.LevelCritical, Level(29))
}

func TestSummarize(t *testing.T) {
	s := Summarize(series(10, 20, 31), 45)
	assert.Equal(t, 10, s.Min)
	assert.Equal(t, 31, s.Max)
	assert.Equal(t, 20, s.Average)
	assert.Equal(t, 38, s.ChartCeil) // 31 * 1.2 = 37.2
	assert.Equal(t, 45, s.Current)
	assert.Equal(t, 3, s.PointCount)

	empty := Summarize(nil, 0)
	assert.Equal(t, 20, empty.ChartCeil)
	assert.Zero(t, empty.Average)
}

func TestChartPoints(t *testing.T) {
	points := ChartPoints([]domain.EstatisticaItem{
		{Day: "2024-06-03", Value: 130},
		{Day: "04/06", Value: 10},
		{Date: "2024-06-05", Value: 90},
	})

	require.Len(t, points, 3)
	assert.Equal(t, "03/06", points[0].Dia)
	assert.Equal(t, domain.LevelHigh, points[0].Status)
	assert.Equal(t, "04/06", points[1].Dia)
	assert.Equal(t, domain.LevelCritical, points[1].Status)
	assert.Equal(t, "05/06", points[2].Dia)
}

func TestInterpretations(t *testing.T) {
	seven := Interpretations(domain.Period7Days)
	require.Len(t, seven, 4)
	assert.Equal(t, "Acima de 120 criativos: Alta escala", seven[0].Texto)

	assert.Equal(t, "Crescimento acelerado nas últimas 2 semanas", Interpretations(domain.Period15Days)[0].Texto)
	assert.Equal(t, "Campanha com performance negativa no mês", Interpretations(domain.Period30Days)[3].Texto)
	assert.Equal(t, seven, Interpretations("90dias"))
}

func TestBuildInsight(t *testing.T) {
	data := InsightData{Growth: 42, Average: 17, Peak: 99}

	rising := BuildInsight(domain.TrendRising, data, FixedPicker{Index: 0})
	assert.Contains(t, rising.Observacao, "42%")
	assert.Contains(t, rising.Observacao, "17 anúncios")

	falling := BuildInsight(domain.TrendFalling, data, FixedPicker{Index: 2})
	assert.Contains(t, falling.Observacao, "Pico de 99 criativos")

	stable := BuildInsight(domain.TrendStable, data, FixedPicker{Index: 7})
	assert.Equal(t, BuildInsight(domain.TrendStable, data, FixedPicker{Index: 1}), stable)
	assert.Contains(t, stable.Observacao, "17")

	for _, trend := range []domain.Trend{domain.TrendRising, domain.TrendFalling, domain.TrendStable} {
		n := TemplateCount(trend)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 6)
		for i := 0; i < n; i++ {
			insight := BuildInsight(trend, data, FixedPicker{Index: i})
			assert.NotEmpty(t, insight.Observacao)
			assert.NotEmpty(t, insight.Recomendacao)
		}
	}
}

func testAd(id int) *domain.Anuncio {
	count := 45
	return &domain.Anuncio{
		ID:             id,
		NumeroAnuncios: &count,
		Criativos:      make([]domain.Criativo, 40),
		Estatisticas: domain.Estatisticas{
			SevenDays:  series(20, 25, 30, 35, 40, 45, 50),
			ThirtyDays: series(50, 40, 30),
		},
	}
}

func TestCompute(t *testing.T) {
	analysis := Compute(testAd(1), domain.Period7Days, FixedPicker{Index: 0, Value: 0})

	assert.Equal(t, domain.TrendRising, analysis.Trend)
	// base 45 + (10/20)*10 = 50, +15, ratio min(45/50*10,10) = 9
	assert.Equal(t, 74, analysis.Potential)
	assert.Contains(t, analysis.Insight.Observacao, "25%") // (50-40)/40
	assert.Contains(t, analysis.Insight.Observacao, "média de 35 anúncios")
	assert.Len(t, analysis.Interpretacoes, 4)

	falling := Compute(testAd(1), domain.Period30Days, FixedPicker{})
	assert.Equal(t, domain.TrendFalling, falling.Trend)
	assert.Contains(t, falling.Insight.Observacao, "50 criativos")

	empty := Compute(testAd(1), domain.Period15Days, FixedPicker{})
	assert.Equal(t, domain.TrendStable, empty.Trend)
	assert.Equal(t, DefaultPotential, empty.Potential)
}

func TestFixedPicker_Pick(t *testing.T) {
	assert.Equal(t, 2, FixedPicker{Index: 7}.Pick(5))
	assert.Equal(t, 4, FixedPicker{Index: -1}.Pick(5))
	assert.Equal(t, 0, FixedPicker{Index: -10}.Pick(5))
	assert.Equal(t, 0, FixedPicker{Index: 3}.Pick(0))

	data := InsightData{Growth: 10, Average: 40, Peak: 60}
	assert.NotPanics(t, func() {
		BuildInsight(domain.TrendRising, data, FixedPicker{Index: -3})
	})
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := NewAnalyzer(0, FixedPicker{})

	analysis, err := a.Analyze(context.Background(), "7", testAd(3), domain.Period7Days)
	require.NoError(t, err)
	assert.NotEmpty(t, analysis.Token)
	assert.False(t, analysis.CompletedAt.IsZero())

	latest, ok := a.Latest("7", 3)
	require.True(t, ok)
	assert.Equal(t, analysis, latest)

	_, ok = a.Latest("8", 3)
	assert.False(t, ok)

	_, err = a.Analyze(context.Background(), "7", nil, domain.Period7Days)
	assert.ErrorIs(t, err, ErrMissingAd)
}

func TestAnalyzer_latestExpires(t *testing.T) {
	clock := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	a := NewAnalyzer(0, FixedPicker{})
	a.now = func() time.Time { return clock }

	_, err := a.Analyze(context.Background(), "7", testAd(3), domain.Period7Days)
	require.NoError(t, err)

	clock = clock.Add(AnalysisRetention + time.Minute)
	_, ok := a.Latest("7", 3)
	assert.False(t, ok)

	// a próxima gravação varre as análises vencidas
	_, err = a.Analyze(context.Background(), "8", testAd(4), domain.Period7Days)
	require.NoError(t, err)
	assert.Len(t, a.latest, 1)

	_, ok = a.Latest("8", 4)
	assert.True(t, ok)
}

func TestAnalyzer_supersededRequestIsDiscarded(t *testing.T) {
	a := NewAnalyzer(150*time.Millisecond, FixedPicker{})
	ad := testAd(5)

	var (
		wg       sync.WaitGroup
		firstErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = a.Analyze(context.Background(), "7", ad, domain.Period7Days)
	}()

	time.Sleep(30 * time.Millisecond)
	second, err := a.Analyze(context.Background(), "7", ad, domain.Period30Days)
	wg.Wait()

	require.NoError(t, err)
	assert.ErrorIs(t, firstErr, ErrAnalysisSuperseded)

	latest, ok := a.Latest("7", 5)
	require.True(t, ok)
	assert.Equal(t, domain.Period30Days, latest.Period)
	assert.Equal(t, second.Token, latest.Token)
}

func TestAnalyzer_otherViewersDoNotSupersede(t *testing.T) {
	a := NewAnalyzer(50*time.Millisecond, FixedPicker{})
	ad := testAd(6)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, viewer := range []string{"1", "2"} {
		wg.Add(1)
		go func(i int, viewer string) {
			defer wg.Done()
			_, errs[i] = a.Analyze(context.Background(), viewer, ad, domain.Period7Days)
		}(i, viewer)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
}

func TestAnalyzer_contextCancel(t *testing.T) {
	a := NewAnalyzer(time.Second, FixedPicker{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := a.Analyze(ctx, "7", testAd(9), domain.Period7Days)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, ok := a.Latest("7", 9)
	assert.False(t, ok)
	assert.Empty(t, a.pending)
}

func TestRandomPicker(t *testing.T) {
	p := NewRandomPicker(42)
	for i := 0; i < 100; i++ {
		idx := p.Pick(6)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 6)

		j := p.Jitter()
		assert.GreaterOrEqual(t, j, 0.0)
		assert.Less(t, j, MaxJitter)
	}
	assert.Equal(t, 0, p.Pick(0))
}
