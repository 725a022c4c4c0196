package domain

import (
	"strings"
)

// Anuncio é uma campanha monitorada. Pertence à API Laravel e é tratada como somente leitura.
type Anuncio struct {
	ID                    int          `json:"id"`
	Titulo                string       `json:"titulo"`
	TagPrincipal          string       `json:"tag_principal"`
	DataAnuncio           string       `json:"data_anuncio"`
	Nicho                 string       `json:"nicho"`
	PaisCodigo            string       `json:"pais_codigo"`
	Status                string       `json:"status"`
	NovoAnuncio           bool         `json:"novo_anuncio"`
	Destaque              bool         `json:"destaque"`
	Tags                  []string     `json:"tags"`
	Imagem                string       `json:"imagem"`
	URLVideo              string       `json:"url_video"`
	LinkTranscricao       *string      `json:"link_transcricao"`
	ProdutoTipo           string       `json:"produto_tipo"`
	ProdutoEstrutura      string       `json:"produto_estrutura"`
	ProdutoIdioma         string       `json:"produto_idioma"`
	ProdutoRedeTrafego    string       `json:"produto_rede_trafego"`
	ProdutoFunilVendas    string       `json:"produto_funil_vendas"`
	LinkPaginaAnuncio     string       `json:"link_pagina_anuncio"`
	LinkCriativosFB       string       `json:"link_criativos_fb"`
	LinkAnunciosEscalados string       `json:"link_anuncios_escalados"`
	LinkSiteCloaker       string       `json:"link_site_cloaker"`
	VariacaoDiaria        int          `json:"variacao_diaria"`
	VariacaoSemanal       int          `json:"variacao_semanal"`
	NumeroAnuncios        *int         `json:"numero_anuncios"`
	CategoriaID           int          `json:"categoria_id"`
	UserID                int          `json:"user_id"`
	CreatedAt             string       `json:"created_at"`
	UpdatedAt             string       `json:"updated_at"`
	Criativos             []Criativo   `json:"criativos"`
	Estatisticas          Estatisticas `json:"estatisticas"`
	Links                 *Links       `json:"links,omitempty"`
	Produto               *Produto     `json:"produto,omitempty"`
}

type Links struct {
	PaginaAnuncio     string `json:"pagina_anuncio"`
	CriativosFB       string `json:"criativos_fb"`
	AnunciosEscalados string `json:"anuncios_escalados"`
	SiteCloaker       string `json:"site_cloaker"`
}

type Produto struct {
	Tipo        string `json:"tipo"`
	Estrutura   string `json:"estrutura"`
	Idioma      string `json:"idioma"`
	RedeTrafego string `json:"rede_trafego"`
	FunilVendas string `json:"funil_vendas"`
}

// AdCount devolve numero_anuncios, ou 0 quando a API envia null.
func (a *Anuncio) AdCount() int {
	if a == nil || a.NumeroAnuncios == nil {
		return 0
	}
	return *a.NumeroAnuncios
}

// HasTag compara sem diferenciar maiúsculas.
func (a *Anuncio) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ResolvedLinks prefere o objeto links e cai para as colunas planas.
func (a *Anuncio) ResolvedLinks() Links {
	if a.Links != nil {
		return *a.Links
	}
	return Links{
		PaginaAnuncio:     a.LinkPaginaAnuncio,
		CriativosFB:       a.LinkCriativosFB,
		AnunciosEscalados: a.LinkAnunciosEscalados,
		SiteCloaker:       a.LinkSiteCloaker,
	}
}

func (a *Anuncio) ResolvedProduto() Produto {
	if a.Produto != nil {
		return *a.Produto
	}
	return Produto{
		Tipo:        a.ProdutoTipo,
		Estrutura:   a.ProdutoEstrutura,
		Idioma:      a.ProdutoIdioma,
		RedeTrafego: a.ProdutoRedeTrafego,
		FunilVendas: a.ProdutoFunilVendas,
	}
}

// FindCriativo devolve o criativo com o id informado.
func (a *Anuncio) FindCriativo(id int) (*Criativo, bool) {
	for i := range a.Criativos {
		if a.Criativos[i].ID == id {
			return &a.Criativos[i], true
		}
	}
	return nil, false
}

type Criativo struct {
	ID         int    `json:"id"`
	Titulo     string `json:"titulo"`
	Tag        string `json:"tag"`
	Platform   string `json:"platform"`
	Language   string `json:"language"`
	Idioma     string `json:"idioma"`
	Status     string `json:"status"`
	Views      int    `json:"views"`
	AnuncioID  int    `json:"anuncio_id"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
	URL        string `json:"url"`
	Image      string `json:"image"`
	Title      string `json:"title"`
	Value      int    `json:"value"`
	Caption    string `json:"caption,omitempty"`
	CreativeID string `json:"creativeId,omitempty"`
}

// DisplayName usa title e cai para titulo.
func (c Criativo) DisplayName() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Titulo
}

var (
	activeStatuses = []string{"ativo", "active", "escalando"}
	testStatuses   = []string{"teste", "em teste", "testing", "testando"}
)

func (c Criativo) IsActive() bool {
	return matchesAny(c.Status, activeStatuses)
}

// IsMarkedInTest indica se o criativo foi marcado como em teste pelo backend.
func (c Criativo) IsMarkedInTest() bool {
	return matchesAny(c.Status, testStatuses) || matchesAny(c.Tag, testStatuses)
}

func matchesAny(value string, candidates []string) bool {
	value = strings.TrimSpace(value)
	for _, candidate := range candidates {
		if strings.EqualFold(value, candidate) {
			return true
		}
	}
	return false
}
