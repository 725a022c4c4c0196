package marketplace

import "github.com/liveturb/escalando-agora-api/internal/domain"

// DefaultCategorias são usadas quando a API Laravel e o cache falham.
func DefaultCategorias() []domain.Categoria {
	return []domain.Categoria{
		{
			ID:            domain.CategoriaEscalando,
			Nome:          "Escalando",
			GradientClass: "bg-gradient-to-r from-amber-500 to-orange-500",
			ShadowClass:   "shadow-amber-500/30",
		},
		{
			ID:            domain.CategoriaLowTicket,
			Nome:          "Low ticket",
			GradientClass: "bg-gradient-to-r from-emerald-500 to-teal-500",
			ShadowClass:   "shadow-emerald-500/30",
		},
		{
			ID:            domain.CategoriaDestaque,
			Nome:          "Em destaque",
			GradientClass: "bg-gradient-to-r from-violet-500 to-purple-500",
			ShadowClass:   "shadow-violet-500/30",
		},
	}
}

func DefaultNichos() []domain.Nicho {
	return []domain.Nicho{
		{ID: "relacionamento", Nome: "Relacionamento"},
		{ID: "saude", Nome: "Saúde e Bem-estar"},
		{ID: "financas", Nome: "Finanças"},
		{ID: "tecnologia", Nome: "Tecnologia"},
	}
}

// decorate completa as classes visuais ausentes e aplica o contador de escalando.
func decorate(categorias []domain.Categoria, escalando int, hasSnapshot bool) []domain.Categoria {
	styles := make(map[string]domain.Categoria)
	for _, c := range DefaultCategorias() {
		styles[c.ID] = c
	}

	out := make([]domain.Categoria, len(categorias))
	for i, c := range categorias {
		if style, ok := styles[c.ID]; ok {
			if c.GradientClass == "" {
				c.GradientClass = style.GradientClass
			}
			if c.ShadowClass == "" {
				c.ShadowClass = style.ShadowClass
			}
		}
		if c.ID == domain.CategoriaEscalando && hasSnapshot {
			c.Contador = escalando
		}
		out[i] = c
	}
	return out
}
