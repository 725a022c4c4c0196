package marketplace

import (
	"strings"

	"github.com/liveturb/escalando-agora-api/internal/domain"
)

// Matches reaplica localmente os filtros que a API Laravel também recebe.
// favorites só é consultado quando filters.OnlyFavorites está ativo.
func Matches(ad domain.Anuncio, filters domain.ListFilters, favorites map[int]struct{}) bool {
	if filters.OnlyFavorites {
		if _, ok := favorites[ad.ID]; !ok {
			return false
		}
	}

	if busca := strings.TrimSpace(filters.Busca); busca != "" {
		if !strings.Contains(strings.ToLower(ad.Titulo), strings.ToLower(busca)) {
			return false
		}
	}

	if filters.Nicho != "" && !ad.HasTag(filters.Nicho) {
		return false
	}

	switch filters.Categoria {
	case "":
	case domain.CategoriaEscalando:
		return ad.TagPrincipal == domain.TagEscalando
	case domain.CategoriaLowTicket:
		return containsExact(ad.Tags, domain.TagLowTicket)
	case domain.CategoriaDestaque:
		return ad.NovoAnuncio
	default:
		return false
	}

	return true
}

// Apply devolve os anúncios que passam em Matches, preservando a ordem.
func Apply(ads []domain.Anuncio, filters domain.ListFilters, favorites map[int]struct{}) []domain.Anuncio {
	filtered := make([]domain.Anuncio, 0, len(ads))
	for _, ad := range ads {
		if Matches(ad, filters, favorites) {
			filtered = append(filtered, ad)
		}
	}
	return filtered
}

// CountEscalando conta os anúncios com tag principal ESCALANDO.
func CountEscalando(ads []domain.Anuncio) int {
	count := 0
	for _, ad := range ads {
		if ad.TagPrincipal == domain.TagEscalando {
			count++
		}
	}
	return count
}

func containsExact(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
