package insighting

import (
	"math"
	"strings"
	"time"

	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/pkg/utils"
)

const minChartCeil = 20

// Level classifica um ponto da série pelo número de criativos.
func Level(value int) domain.SeriesLevel {
	switch {
	case value >= 120:
		return domain.LevelHigh
	case value >= 80:
		return domain.LevelMedium
	case value >= 30:
		return domain.LevelLow
	default:
		return domain.LevelCritical
	}
}

// ChartPoints converte a série da API nos pontos do gráfico.
func ChartPoints(series []domain.EstatisticaItem) []domain.ChartPoint {
	points := make([]domain.ChartPoint, 0, len(series))
	for _, item := range series {
		label := item.Day
		if label == "" {
			label = item.Date
		}
		points = append(points, domain.ChartPoint{
			Dia:       dayLabel(label),
			Criativos: item.Value,
			Status:    Level(item.Value),
		})
	}
	return points
}

// dayLabel converte YYYY-MM-DD em dd/MM; outros formatos passam intactos.
func dayLabel(raw string) string {
	if strings.Contains(raw, "/") || !strings.Contains(raw, "-") {
		return raw
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return t.Format("02/01")
}

// Summarize calcula mínimo, máximo, média e teto do eixo Y. current é o numero_anuncios.
func Summarize(series []domain.EstatisticaItem, current int) domain.ChartSummary {
	summary := domain.ChartSummary{Current: current, PointCount: len(series), ChartCeil: minChartCeil}
	if len(series) == 0 {
		return summary
	}

	minV, maxV, total := series[0].Value, series[0].Value, 0
	for _, item := range series {
		minV = min(minV, item.Value)
		maxV = max(maxV, item.Value)
		total += item.Value
	}

	summary.Min = minV
	summary.Max = maxV
	summary.Average = utils.RoundInt(float64(total) / float64(len(series)))
	summary.ChartCeil = int(math.Ceil(math.Max(float64(maxV)*1.2, minChartCeil)))
	return summary
}

var interpretations = map[domain.Period][]domain.Interpretation{
	domain.Period7Days: {
		{Status: domain.LevelHigh, Texto: "Acima de 120 criativos: Alta escala"},
		{Status: domain.LevelMedium, Texto: "Entre 80 e 120: Começando a escalar"},
		{Status: domain.LevelLow, Texto: "Entre 30 e 80: Escala de teste"},
		{Status: domain.LevelCritical, Texto: "Menos de 30: Iniciando Campanha"},
	},
	domain.Period15Days: {
		{Status: domain.LevelHigh, Texto: "Crescimento acelerado nas últimas 2 semanas"},
		{Status: domain.LevelMedium, Texto: "Estabilidade no investimento em anúncios"},
		{Status: domain.LevelLow, Texto: "Investimento reduzido comparado à semana anterior"},
		{Status: domain.LevelCritical, Texto: "Forte redução ou abandono da campanha"},
	},
	domain.Period30Days: {
		{Status: domain.LevelHigh, Texto: "Investimento consistente e crescente no mês"},
		{Status: domain.LevelMedium, Texto: "Padrão normal de investimento mensal"},
		{Status: domain.LevelLow, Texto: "Baixo investimento com potencial de crescimento"},
		{Status: domain.LevelCritical, Texto: "Campanha com performance negativa no mês"},
	},
}

// Interpretations devolve a legenda do período.
func Interpretations(p domain.Period) []domain.Interpretation {
	items, ok := interpretations[p]
	if !ok {
		items = interpretations[domain.Period7Days]
	}
	out := make([]domain.Interpretation, len(items))
	copy(out, items)
	return out
}
