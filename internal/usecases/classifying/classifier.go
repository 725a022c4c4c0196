package classifying

import (
	"math"
	"time"

	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/pkg/utils"
)

// Limites da tabela de status de criativos
const (
	TestingMinAds         = 5
	SuperScaledMinAds     = 30
	ScalingMinAds         = 9
	StandingOutMinAds     = 4
	LowAdsMax             = 3
	HorizontalMinSiblings = 5
)

// ClassifierInput reúne os sinais usados pela tabela de regras.
// Valores ausentes devem chegar como zero; Classify aplica os padrões.
type ClassifierInput struct {
	AdCount                    int  `json:"ad_count"`
	DaysSinceCreation          int  `json:"days_since_creation"`
	SiblingActiveCreativeCount int  `json:"sibling_active_creative_count"`
	MarkedInTest               bool `json:"marked_in_test"`
}

var descriptors = map[domain.CreativeStatus]domain.StatusInfo{
	domain.StatusTestingCreative:     {Label: "Testing Creative", Rotulo: "Criativo em Teste", Color: domain.ColorYellow},
	domain.StatusSuperScaled:         {Label: "Super Scaled", Rotulo: "Super Escalado", Color: domain.ColorGreen, Hot: true},
	domain.StatusScaling:             {Label: "Scaling", Rotulo: "Escalando", Color: domain.ColorGreen},
	domain.StatusStartingToStandOut:  {Label: "Starting to Stand Out", Rotulo: "Começando a se Destacar", Color: domain.ColorBlue},
	domain.StatusNewlyAdded:          {Label: "Newly Added", Rotulo: "Recém Adicionado", Color: domain.ColorPurple},
	domain.StatusStagnant:            {Label: "Stagnant Creative", Rotulo: "Criativo Estagnado", Color: domain.ColorGray},
	domain.StatusScalingHorizontally: {Label: "Scaling Horizontally", Rotulo: "Escalando Horizontalmente", Color: domain.ColorCyan},
	domain.StatusLosingPerformance:   {Label: "Losing Performance", Rotulo: "Perdendo Desempenho", Color: domain.ColorRed},
}

// Describe devolve o descritor de exibição de um status.
func Describe(status domain.CreativeStatus) domain.StatusInfo {
	info := descriptors[status]
	info.Status = status
	return info
}

// Classify aplica a tabela de regras na ordem; a primeira que casar vence.
func Classify(in ClassifierInput) domain.StatusInfo {
	return Describe(classify(in))
}

func classify(in ClassifierInput) domain.CreativeStatus {
	ads := in.AdCount
	if ads < 0 {
		ads = 0
	}
	days := in.DaysSinceCreation
	if days < 1 {
		days = 1
	}

	switch {
	case in.MarkedInTest && ads >= TestingMinAds:
		return domain.StatusTestingCreative
	case ads >= SuperScaledMinAds:
		return domain.StatusSuperScaled
	case ads >= ScalingMinAds:
		return domain.StatusScaling
	case ads >= StandingOutMinAds:
		return domain.StatusStartingToStandOut
	case days == 1 && ads <= 1:
		return domain.StatusNewlyAdded
	case days == 2 && ads <= LowAdsMax:
		return domain.StatusStagnant
	case ads <= LowAdsMax:
		if in.SiblingActiveCreativeCount >= HorizontalMinSiblings && days <= 2 {
			return domain.StatusScalingHorizontally
		}
		return domain.StatusLosingPerformance
	}

	return domain.StatusStagnant
}

// DaysSince conta dias corridos desde createdAt, arredondando para cima e nunca abaixo de 1.
// Datas ausentes ou inválidas contam como 1 dia.
func DaysSince(createdAt string, now time.Time) int {
	created, err := utils.ParseTimestamp(createdAt)
	if err != nil || created == nil {
		return 1
	}

	hours := now.Sub(*created).Hours()
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		return 1
	}
	return days
}

// InputForCreative monta a entrada do classificador a partir de um criativo do anúncio.
func InputForCreative(ad *domain.Anuncio, creative domain.Criativo, now time.Time) ClassifierInput {
	siblings := 0
	for _, other := range ad.Criativos {
		if other.ID == creative.ID {
			continue
		}
		if other.IsActive() {
			siblings++
		}
	}

	return ClassifierInput{
		AdCount:                    creative.Value,
		DaysSinceCreation:          DaysSince(creative.CreatedAt, now),
		SiblingActiveCreativeCount: siblings,
		MarkedInTest:               creative.IsMarkedInTest(),
	}
}

// InputForAd monta a entrada usando os números do próprio anúncio (badge do cabeçalho).
func InputForAd(ad *domain.Anuncio, now time.Time) ClassifierInput {
	active := 0
	for _, c := range ad.Criativos {
		if c.IsActive() {
			active++
		}
	}

	created := ad.CreatedAt
	if created == "" {
		created = ad.DataAnuncio
	}

	return ClassifierInput{
		AdCount:                    ad.AdCount(),
		DaysSinceCreation:          DaysSince(created, now),
		SiblingActiveCreativeCount: active,
		MarkedInTest:               isTestStatus(ad.Status) || ad.HasTag("teste"),
	}
}

// ClassifyCreative é o atalho usado pela tabela de criativos do dashboard.
func ClassifyCreative(ad *domain.Anuncio, creative domain.Criativo, now time.Time) domain.StatusInfo {
	return Classify(InputForCreative(ad, creative, now))
}

func isTestStatus(status string) bool {
	return domain.Criativo{Status: status}.IsMarkedInTest()
}
