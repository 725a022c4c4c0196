package laravelclient

import (
	"context"
	"net/url"
	"strconv"

	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/internal/domain"
)

func (c *LaravelClient) ListAnuncios(ctx context.Context, sess laraveldomain.Session, params laraveldomain.ListAnunciosParams) (*laraveldomain.ListAnunciosResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("per_page", strconv.Itoa(params.PerPage))
	if params.Busca != "" {
		query.Set("busca", params.Busca)
	}
	if params.Nicho != "" {
		query.Set("nicho", params.Nicho)
	}
	if params.Categoria != "" {
		query.Set("categoria", params.Categoria)
	}

	var response laraveldomain.ListAnunciosResponse
	if err := c.getJSON(ctx, sess, "anuncios", "/api/v1/anuncios", query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *LaravelClient) GetAnuncio(ctx context.Context, sess laraveldomain.Session, id int) (*domain.Anuncio, error) {
	var response laraveldomain.AnuncioResponse
	if err := c.getJSON(ctx, sess, "anuncio", "/api/v1/anuncios/"+strconv.Itoa(id), nil, &response); err != nil {
		return nil, err
	}

	return &response.Data, nil
}

func (c *LaravelClient) ListCategorias(ctx context.Context, sess laraveldomain.Session) ([]domain.Categoria, error) {
	var response laraveldomain.CategoriasResponse
	if err := c.getJSON(ctx, sess, "categorias", "/api/v1/categorias", nil, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *LaravelClient) ListNichos(ctx context.Context, sess laraveldomain.Session) ([]domain.Nicho, error) {
	var response laraveldomain.NichosResponse
	if err := c.getJSON(ctx, sess, "nichos", "/api/v1/nichos", nil, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
