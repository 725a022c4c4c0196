package insighting

import (
	"math"

	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/pkg/utils"
)

const (
	MinPotential     = 30
	MaxPotential     = 100
	DefaultPotential = 65 // séries com menos de três pontos
	MaxJitter        = 5.0
)

// ScoreInput reúne os números usados no potencial do anúncio.
type ScoreInput struct {
	CreativeCount  int          // quantidade de criativos do anúncio
	CurrentAdCount int          // numero_anuncios atual
	SeriesMax      int          // maior valor da série do período
	PointCount     int          // pontos disponíveis na série
	Trend          domain.Trend // tendência calculada na mesma série
}

type tier struct {
	min   int
	floor int
}

// Pisos por faixa de criativos, do maior para o menor
var tierFloors = []tier{
	{min: 150, floor: 85},
	{min: 100, floor: 75},
	{min: 80, floor: 65},
	{min: 50, floor: 55},
	{min: 30, floor: 45},
}

func baseScore(n int) float64 {
	c := float64(n)
	switch {
	case n >= 150:
		return 85
	case n >= 100:
		return 75 + (c-100)/50*10
	case n >= 80:
		return 65 + (c-80)/20*10
	case n >= 50:
		return 55 + (c-50)/30*10
	case n >= 30:
		return 45 + (c-30)/20*10
	default:
		return 30 + c/30*15
	}
}

func trendAdjustment(t domain.Trend) float64 {
	switch t {
	case domain.TrendRising:
		return 15
	case domain.TrendStable:
		return 8
	default:
		return -5
	}
}

// PotentialScore calcula o potencial do anúncio em [30,100].
// jitter deve estar em [0,5); valores fora são limitados.
func PotentialScore(in ScoreInput, jitter float64) int {
	if in.PointCount < TrendWindow {
		return DefaultPotential
	}

	creatives := in.CreativeCount
	if creatives < 0 {
		creatives = 0
	}

	seriesMax := in.SeriesMax
	if seriesMax == 0 {
		seriesMax = 1
	}
	ratio := math.Min(float64(in.CurrentAdCount)/float64(seriesMax)*10, 10)

	jitter = math.Max(0, math.Min(jitter, MaxJitter))

	score := utils.RoundInt(baseScore(creatives) + trendAdjustment(in.Trend) + ratio + jitter)
	if score > MaxPotential {
		score = MaxPotential
	}

	for _, t := range tierFloors {
		if creatives >= t.min && score < t.floor {
			return t.floor
		}
	}

	if creatives >= 180 {
		score = max(score, 90)
	}

	return utils.Clamp(score, MinPotential, MaxPotential)
}
