package domain

import "time"

// Trend é a direção dos três últimos pontos da série.
type Trend string

const (
	TrendRising  Trend = "alta"
	TrendStable  Trend = "estável"
	TrendFalling Trend = "queda"
)

// SeriesLevel classifica cada ponto do gráfico.
type SeriesLevel string

const (
	LevelHigh     SeriesLevel = "alto"
	LevelMedium   SeriesLevel = "medio"
	LevelLow      SeriesLevel = "baixo"
	LevelCritical SeriesLevel = "critico"
)

type ChartPoint struct {
	Dia       string      `json:"dia"`
	Criativos int         `json:"criativos"`
	Status    SeriesLevel `json:"status"`
}

type ChartSummary struct {
	Current    int `json:"valor_atual"`
	Min        int `json:"valor_minimo"`
	Max        int `json:"valor_maximo"`
	Average    int `json:"media"`
	ChartCeil  int `json:"max_value"`
	PointCount int `json:"pontos"`
}

type Interpretation struct {
	Status SeriesLevel `json:"status"`
	Texto  string      `json:"texto"`
}

// Insight é o par observação + recomendação escolhido da tabela de modelos.
type Insight struct {
	Observacao   string `json:"observacao"`
	Recomendacao string `json:"recomendacao"`
}

// Analysis é o resultado da "análise de IA" simulada de um período.
type Analysis struct {
	Token          string           `json:"token"`
	AnuncioID      int              `json:"anuncio_id"`
	Period         Period           `json:"periodo"`
	Trend          Trend            `json:"tendencia"`
	Potential      int              `json:"potencial"`
	Insight        Insight          `json:"insight"`
	Interpretacoes []Interpretation `json:"interpretacoes"`
	CompletedAt    time.Time        `json:"completed_at"`
}
