package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/internal/usecases/marketplace"
	"github.com/liveturb/escalando-agora-api/pkg/apiErrors"
	"github.com/liveturb/escalando-agora-api/pkg/log"
	"github.com/liveturb/escalando-agora-api/pkg/middleware"
)

// filtersFromQuery lê page, per_page, busca, nicho, categoria e favoritos da query string.
func filtersFromQuery(q url.Values) (domain.ListFilters, error) {
	filters := domain.ListFilters{
		Busca:     strings.TrimSpace(q.Get("busca")),
		Nicho:     strings.TrimSpace(q.Get("nicho")),
		Categoria: strings.TrimSpace(q.Get("categoria")),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return filters, err
		}
		filters.Page = page
	}

	if raw := q.Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return filters, err
		}
		filters.PerPage = perPage
	}

	if raw := q.Get("favoritos"); raw != "" {
		onlyFavorites, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, err
		}
		filters.OnlyFavorites = onlyFavorites
	}

	return filters, nil
}

func ListAnuncios(service marketplace.Marketplace) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := filtersFromQuery(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtros inválidos: "+err.Error(), nil)
			return
		}

		page, err := service.List(r.Context(), middleware.SessionFromContext(r.Context()), viewerFrom(r), filters)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao listar anúncios")
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}

// FeedNext entrega a próxima página da rolagem infinita do perfil.
func FeedNext(service marketplace.Marketplace) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, err := filtersFromQuery(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Filtros inválidos: "+err.Error(), nil)
			return
		}

		page, err := service.NextPage(r.Context(), middleware.SessionFromContext(r.Context()), viewerFrom(r), filters)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao carregar mais anúncios")
			return
		}

		writeJSON(w, http.StatusOK, page)
	})
}

func FeedReset(service marketplace.Marketplace) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service.ResetFeed(viewerFrom(r))
		w.WriteHeader(http.StatusNoContent)
	})
}

func GetAnuncio(service marketplace.Marketplace) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := anuncioID(r)
		if id == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do anúncio inválido", nil)
			return
		}

		ad, err := service.Anuncio(r.Context(), middleware.SessionFromContext(r.Context()), id)
		if err != nil {
			writeUsecaseError(w, r, err, "Erro ao buscar anúncio")
			return
		}

		writeJSON(w, http.StatusOK, ad)
	})
}

func ListCategorias(service marketplace.Marketplace) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		categorias := service.Categorias(r.Context(), middleware.SessionFromContext(r.Context()))
		log.ForContext(r.Context()).WithField("categorias", len(categorias)).Debug("Categorias carregadas")
		writeJSON(w, http.StatusOK, map[string]any{"data": categorias})
	})
}

func ListNichos(service marketplace.Marketplace) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nichos := service.Nichos(r.Context(), middleware.SessionFromContext(r.Context()))
		writeJSON(w, http.StatusOK, map[string]any{"data": nichos})
	})
}
