package domain

import (
	appdomain "github.com/liveturb/escalando-agora-api/internal/domain"
)

type ListAnunciosParams struct {
	Page      int
	PerPage   int
	Busca     string
	Nicho     string
	Categoria string
}

// ListAnunciosResponse aceita tanto {data, meta} quanto o paginador plano do Laravel.
type ListAnunciosResponse struct {
	Data        []appdomain.Anuncio `json:"data"`
	Meta        *appdomain.PageMeta `json:"meta"`
	Total       *int                `json:"total"`
	CurrentPage *int                `json:"current_page"`
	LastPage    *int                `json:"last_page"`
	PerPage     *int                `json:"per_page"`
}

type AnuncioResponse struct {
	Data appdomain.Anuncio `json:"data"`
}

type CategoriasResponse struct {
	Data []appdomain.Categoria `json:"data"`
}

type NichosResponse struct {
	Data []appdomain.Nicho `json:"data"`
}
