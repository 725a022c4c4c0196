package laravel

import (
	"context"
	"math"
	"net/http"

	"github.com/pkg/errors"

	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/laravelclient"
	"github.com/liveturb/escalando-agora-api/internal/domain"
)

// ErrUnauthenticated indica que a API Laravel não reconheceu a sessão.
var ErrUnauthenticated = errors.New("sessão não autenticada na API Laravel")

// ErrNotFound indica que o recurso não existe na API Laravel.
var ErrNotFound = errors.New("recurso não encontrado na API Laravel")

type LaravelIntegrator interface {
	ListAnuncios(ctx context.Context, sess laraveldomain.Session, filters domain.ListFilters) (*domain.AnunciosPage, error)
	GetAnuncio(ctx context.Context, sess laraveldomain.Session, id int) (*domain.Anuncio, error)
	ListCategorias(ctx context.Context, sess laraveldomain.Session) ([]domain.Categoria, error)
	ListNichos(ctx context.Context, sess laraveldomain.Session) ([]domain.Nicho, error)
	// ProbeSession repete o fluxo do Sanctum: csrf-cookie e depois /api/user.
	ProbeSession(ctx context.Context, sess laraveldomain.Session) (*domain.User, []*http.Cookie, error)
}

type LaravelService struct {
	Client       laravelclient.Client
	itemsPerPage int
}

func New(client laravelclient.Client, itemsPerPage int) LaravelIntegrator {
	if itemsPerPage <= 0 {
		itemsPerPage = 12
	}
	return &LaravelService{
		Client:       client,
		itemsPerPage: itemsPerPage,
	}
}

func (s *LaravelService) ListAnuncios(ctx context.Context, sess laraveldomain.Session, filters domain.ListFilters) (*domain.AnunciosPage, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	perPage := filters.PerPage
	if perPage <= 0 {
		perPage = s.itemsPerPage
	}

	resp, err := s.Client.ListAnuncios(ctx, sess, laraveldomain.ListAnunciosParams{
		Page:      page,
		PerPage:   perPage,
		Busca:     filters.Busca,
		Nicho:     filters.Nicho,
		Categoria: filters.Categoria,
	})
	if err != nil {
		return nil, translate(err)
	}

	data := resp.Data
	if data == nil {
		data = []domain.Anuncio{}
	}

	return &domain.AnunciosPage{
		Data: data,
		Meta: buildMeta(resp, page, perPage),
	}, nil
}

// buildMeta usa meta quando presente; senão reconstrói a partir de total
func buildMeta(resp *laraveldomain.ListAnunciosResponse, page, perPage int) domain.PageMeta {
	if resp.Meta != nil {
		meta := *resp.Meta
		if meta.PerPage == 0 {
			meta.PerPage = perPage
		}
		if meta.CurrentPage == 0 {
			meta.CurrentPage = page
		}
		return meta
	}

	meta := domain.PageMeta{CurrentPage: page, PerPage: perPage}
	if resp.PerPage != nil && *resp.PerPage > 0 {
		meta.PerPage = *resp.PerPage
	}
	if resp.CurrentPage != nil && *resp.CurrentPage > 0 {
		meta.CurrentPage = *resp.CurrentPage
	}

	if resp.Total != nil {
		meta.Total = *resp.Total
	} else {
		meta.Total = len(resp.Data)
	}

	if resp.LastPage != nil {
		meta.LastPage = *resp.LastPage
	} else {
		meta.LastPage = int(math.Ceil(float64(meta.Total) / float64(meta.PerPage)))
	}

	return meta
}

func (s *LaravelService) GetAnuncio(ctx context.Context, sess laraveldomain.Session, id int) (*domain.Anuncio, error) {
	ad, err := s.Client.GetAnuncio(ctx, sess, id)
	if err != nil {
		return nil, translate(err)
	}
	if ad == nil || ad.ID == 0 {
		return nil, ErrNotFound
	}
	return ad, nil
}

func (s *LaravelService) ListCategorias(ctx context.Context, sess laraveldomain.Session) ([]domain.Categoria, error) {
	categorias, err := s.Client.ListCategorias(ctx, sess)
	if err != nil {
		return nil, translate(err)
	}
	return categorias, nil
}

func (s *LaravelService) ListNichos(ctx context.Context, sess laraveldomain.Session) ([]domain.Nicho, error) {
	nichos, err := s.Client.ListNichos(ctx, sess)
	if err != nil {
		return nil, translate(err)
	}
	return nichos, nil
}

func (s *LaravelService) ProbeSession(ctx context.Context, sess laraveldomain.Session) (*domain.User, []*http.Cookie, error) {
	cookies, err := s.Client.CSRFCookie(ctx, sess)
	if err != nil {
		return nil, nil, translate(err)
	}

	user, err := s.Client.CurrentUser(ctx, sess.WithCookies(cookies))
	if err != nil {
		return nil, cookies, translate(err)
	}

	return user, cookies, nil
}

// translate converte respostas 401/419/404 nos erros do pacote, preservando a mensagem original
func translate(err error) error {
	var apiErr *laraveldomain.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.Unauthorized():
		return errors.Wrap(ErrUnauthenticated, apiErr.Error())
	case apiErr.NotFound():
		return errors.Wrap(ErrNotFound, apiErr.Error())
	}
	return err
}
