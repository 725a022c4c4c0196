package domain

type Categoria struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Contador      int    `json:"contador"`
	GradientClass string `json:"gradientClass,omitempty"`
	ShadowClass   string `json:"shadowClass,omitempty"`
}

type Nicho struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

const (
	CategoriaEscalando = "escalando"
	CategoriaLowTicket = "low-ticket"
	CategoriaDestaque  = "destaque"

	TagEscalando = "ESCALANDO"
	TagLowTicket = "Low Ticket"
)

type PageMeta struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
}

// HasMore indica se existem páginas depois da atual.
func (m PageMeta) HasMore() bool {
	return m.CurrentPage < m.LastPage
}

type AnunciosPage struct {
	Data []Anuncio `json:"data"`
	Meta PageMeta  `json:"meta"`
	// Stale indica que a página veio do snapshot porque a API Laravel falhou
	Stale bool `json:"stale,omitempty"`
}

// ListFilters são os filtros da listagem; servidor e cliente aplicam os mesmos.
type ListFilters struct {
	Page          int    `json:"page"`
	PerPage       int    `json:"per_page"`
	Busca         string `json:"busca,omitempty"`
	Nicho         string `json:"nicho,omitempty"`
	Categoria     string `json:"categoria,omitempty"`
	OnlyFavorites bool   `json:"favoritos,omitempty"`
}

// IsDefault indica a primeira página sem filtros, a mesma mantida pelo snapshot.
func (f ListFilters) IsDefault() bool {
	return f.Page <= 1 && f.Busca == "" && f.Nicho == "" && f.Categoria == "" && !f.OnlyFavorites
}
