package insighting

import (
	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/pkg/utils"
)

// TrendWindow é o número de pontos finais da série usados na tendência.
const TrendWindow = 3

// FallingThreshold é a variação a partir da qual a série é considerada em queda.
const FallingThreshold = -3

// LastPoints devolve os últimos TrendWindow pontos, ou menos se a série for curta.
func LastPoints(points []domain.EstatisticaItem) []domain.EstatisticaItem {
	if len(points) <= TrendWindow {
		return points
	}
	return points[len(points)-TrendWindow:]
}

// Trend compara o primeiro e o último dos três pontos finais.
// Séries com menos de três pontos são estáveis.
func Trend(points []domain.EstatisticaItem) domain.Trend {
	last := LastPoints(points)
	if len(last) < TrendWindow {
		return domain.TrendStable
	}

	growth := last[len(last)-1].Value - last[0].Value
	switch {
	case growth > 0:
		return domain.TrendRising
	case growth <= FallingThreshold:
		return domain.TrendFalling
	default:
		return domain.TrendStable
	}
}

// GrowthPercent é o crescimento percentual dos três pontos finais.
// Devolve 0 quando a base é zero ou a série é curta.
func GrowthPercent(points []domain.EstatisticaItem) int {
	last := LastPoints(points)
	if len(last) < TrendWindow || last[0].Value == 0 {
		return 0
	}

	first := float64(last[0].Value)
	return utils.RoundInt((float64(last[len(last)-1].Value) - first) / first * 100)
}
