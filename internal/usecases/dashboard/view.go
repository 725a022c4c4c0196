package dashboard

import "github.com/liveturb/escalando-agora-api/internal/domain"

// Request identifica o dashboard pedido; CreativeID zero mostra o vídeo principal.
type Request struct {
	AnuncioID  int
	Period     domain.Period
	CreativeID int
}

type View struct {
	Anuncio     *domain.Anuncio              `json:"anuncio"`
	Status      domain.StatusInfo            `json:"status"`
	Criativos   []domain.CreativePerformance `json:"criativos"`
	Grafico     Chart                        `json:"grafico"`
	Favorito    bool                         `json:"favorito"`
	Links       domain.Links                 `json:"links"`
	Produto     domain.Produto               `json:"produto"`
	Media       Media                        `json:"media"`
	MinAnuncios int                          `json:"min_anuncios"`
	Analise     *domain.Analysis             `json:"analise,omitempty"`
}

type Chart struct {
	Periodo        domain.Period           `json:"periodo"`
	Tendencia      domain.Trend            `json:"tendencia"`
	Pontos         []domain.ChartPoint     `json:"pontos"`
	Resumo         domain.ChartSummary     `json:"resumo"`
	Interpretacoes []domain.Interpretation `json:"interpretacoes"`
}

// Media é o vídeo a reproduzir; Error vem preenchido quando não há URL utilizável.
type Media struct {
	URL        string `json:"url,omitempty"`
	CreativeID *int   `json:"creative_id,omitempty"`
	Error      string `json:"media_error,omitempty"`
}
