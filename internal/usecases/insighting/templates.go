package insighting

import (
	"fmt"

	"github.com/liveturb/escalando-agora-api/internal/domain"
)

// InsightData são os números interpolados nos modelos.
type InsightData struct {
	Growth  int // crescimento percentual dos três últimos pontos
	Average int // média da série
	Peak    int // maior valor da série
}

type insightTemplate func(d InsightData) domain.Insight

var risingTemplates = []insightTemplate{
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Crescimento expressivo de %d%% nos criativos! Com média de %d anúncios, o mercado está respondendo positivamente a esta abordagem.", d.Growth, d.Average),
			Recomendacao: "Comece com 2-3 variações focando nos primeiros 15 segundos do vídeo. Após validar, expanda para 5-6 criativos testando diferentes hooks.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Identificamos um aumento de %d%% nos criativos ativos. Com %d anúncios em média, este anúncio está conquistando mais espaço no mercado.", d.Growth, d.Average),
			Recomendacao: "Inicie com 3 variações testando diferentes ângulos de câmera. Com resultados positivos, adicione mais 2-3 criativos focando em novos benefícios.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Crescimento de %d%% nos criativos! Com média de %d anúncios, o público está engajando bem com esta estratégia.", d.Growth, d.Average),
			Recomendacao: "Comece com 2 criativos testando diferentes thumbnails. Após validar, expanda para 4-5 variações com novos elementos visuais.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Aumento de %d%% nos criativos ativos indica uma tendência positiva no mercado. Com %d anúncios em média, há espaço para crescimento.", d.Growth, d.Average),
			Recomendacao: "Experimente 3 variações com diferentes gatilhos de urgência. Com validação, adicione 2-3 criativos testando novos CTAs.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Crescimento de %d%% nos criativos mostra que o público está respondendo bem à estratégia. Com média de %d anúncios, o mercado está aquecido.", d.Growth, d.Average),
			Recomendacao: "Inicie com 2-3 variações testando diferentes abordagens de storytelling. Após validar, expanda para 4-5 criativos com novos benefícios.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Aumento de %d%% nos criativos ativos sugere uma oportunidade de mercado. Com %d anúncios em média, há potencial para expansão.", d.Growth, d.Average),
			Recomendacao: "Comece com 3 variações focando em diferentes dores do público. Com resultados positivos, adicione 2-3 criativos testando novos elementos de prova social.",
		}
	},
}

var fallingTemplates = []insightTemplate{
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Este anúncio atingiu %d criativos no pico, mostrando que o mercado tem potencial. Com média atual de %d anúncios, a redução pode ser uma janela de oportunidade.", d.Peak, d.Average),
			Recomendacao: "Experimente 2 variações com um novo hook de abertura. Se o mercado responder, adicione mais 2-3 criativos com diferentes CTAs.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("O anúncio já teve %d criativos ativos, indicando uma demanda real. Com %d anúncios em média, a redução atual pode ser um momento estratégico para entrada.", d.Peak, d.Average),
			Recomendacao: "Comece com 3 variações testando diferentes abordagens de storytelling. Com validação, expanda para 5-6 criativos com novos benefícios.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Pico de %d criativos demonstra potencial do mercado. Com média de %d anúncios, a redução atual pode ser uma oportunidade para inovação.", d.Peak, d.Average),
			Recomendacao: "Inicie com 2 criativos focando em um novo nicho secundário. Após validar, adicione 3-4 variações com diferentes ângulos de venda.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("O anúncio alcançou %d criativos, indicando forte demanda. Com %d anúncios em média, a redução atual pode ser uma janela de oportunidade.", d.Peak, d.Average),
			Recomendacao: "Experimente 3 variações testando diferentes gatilhos de escassez. Com validação, adicione 2-3 criativos com novos elementos de autoridade.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Pico de %d criativos mostra que o mercado está maduro. Com média de %d anúncios, a redução atual pode ser um momento ideal para entrada.", d.Peak, d.Average),
			Recomendacao: "Comece com 2-3 variações focando em diferentes objeções do público. Após validar, expanda para 4-5 criativos com novos elementos de prova social.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("O anúncio já teve %d criativos ativos, indicando uma demanda real. Com %d anúncios em média, a redução atual pode ser uma oportunidade estratégica.", d.Peak, d.Average),
			Recomendacao: "Inicie com 3 variações testando diferentes abordagens de resolução de problemas. Com validação, adicione 2-3 criativos com novos benefícios.",
		}
	},
}

var stableTemplates = []insightTemplate{
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Média consistente de %d criativos ativos indica uma demanda estável neste mercado.", d.Average),
			Recomendacao: "Comece com 3 variações testando diferentes estruturas de VSL. Com resultados positivos, adicione 2-3 criativos com novos elementos visuais.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Estabilidade de %d criativos sugere um mercado maduro e com demanda constante.", d.Average),
			Recomendacao: "Inicie com 2 criativos focando em diferentes dores do público. Após validar, expanda para 4-5 variações com novos benefícios.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Média de %d criativos ativos mostra um mercado consolidado e com oportunidades.", d.Average),
			Recomendacao: "Experimente 3 variações com diferentes abordagens de storytelling. Com validação, adicione 2-3 criativos testando novos hooks.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Estabilidade de %d criativos indica um mercado com demanda consistente.", d.Average),
			Recomendacao: "Comece com 2-3 variações testando diferentes gatilhos de decisão. Após validar, expanda para 4-5 criativos com novos elementos de prova social.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Média de %d criativos ativos sugere um mercado maduro e com oportunidades.", d.Average),
			Recomendacao: "Inicie com 3 variações focando em diferentes ângulos de venda. Com resultados positivos, adicione 2-3 criativos testando novos benefícios.",
		}
	},
	func(d InsightData) domain.Insight {
		return domain.Insight{
			Observacao:   fmt.Sprintf("Estabilidade de %d criativos mostra um mercado com demanda constante.", d.Average),
			Recomendacao: "Experimente 2-3 variações testando diferentes abordagens de resolução de problemas. Com validação, adicione 3-4 criativos com novos elementos visuais.",
		}
	},
}

// strategies é a tabela de modelos por tendência
var strategies = map[domain.Trend][]insightTemplate{
	domain.TrendRising:  risingTemplates,
	domain.TrendFalling: fallingTemplates,
	domain.TrendStable:  stableTemplates,
}

// TemplateCount devolve quantos modelos existem para a tendência.
func TemplateCount(t domain.Trend) int {
	return len(strategies[t])
}

// BuildInsight escolhe o modelo da tendência pelo Picker e interpola os números.
// Tendências desconhecidas usam os modelos de estabilidade.
func BuildInsight(t domain.Trend, data InsightData, picker Picker) domain.Insight {
	templates, ok := strategies[t]
	if !ok {
		templates = stableTemplates
	}

	idx := picker.Pick(len(templates))
	if idx < 0 || idx >= len(templates) {
		idx = 0
	}
	return templates[idx](data)
}
