package marketplace

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel"
	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/infrastructure/repository"
	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/internal/usecases/favoriting"
	"github.com/liveturb/escalando-agora-api/pkg/log"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
)

type Marketplace interface {
	List(ctx context.Context, sess laraveldomain.Session, viewer string, filters domain.ListFilters) (*domain.AnunciosPage, error)
	NextPage(ctx context.Context, sess laraveldomain.Session, viewer string, filters domain.ListFilters) (*FeedPage, error)
	ResetFeed(viewer string)
	Anuncio(ctx context.Context, sess laraveldomain.Session, id int) (*domain.Anuncio, error)
	Categorias(ctx context.Context, sess laraveldomain.Session) []domain.Categoria
	Nichos(ctx context.Context, sess laraveldomain.Session) []domain.Nicho
	Refresh(ctx context.Context) error
}

// FeedPage é uma página entregue pela rolagem infinita.
type FeedPage struct {
	Data     []domain.Anuncio `json:"data"`
	Meta     domain.PageMeta  `json:"meta"`
	HasMore  bool             `json:"has_more"`
	NextPage int              `json:"next_page"`
	Stale    bool             `json:"stale,omitempty"`
}

// FeedIdleTTL é quanto tempo um feed parado mantém sua posição.
const FeedIdleTTL = 30 * time.Minute

// cursor guarda a posição do feed de um perfil para um conjunto de filtros.
type cursor struct {
	filters  domain.ListFilters
	nextPage int
	hasMore  bool
	loading  bool
	touched  time.Time
}

type Service struct {
	laravel      laravel.LaravelIntegrator
	favorites    favoriting.Favoriter
	cache        repository.CatalogCache
	metrics      *metrics.Metrics
	itemsPerPage int
	now          func() time.Time

	feedMu    sync.Mutex
	feeds     map[string]*cursor
	lastSweep time.Time
}

func NewService(
	integrator laravel.LaravelIntegrator,
	favorites favoriting.Favoriter,
	cache repository.CatalogCache,
	m *metrics.Metrics,
	itemsPerPage int,
) *Service {
	if itemsPerPage <= 0 {
		itemsPerPage = 12
	}
	return &Service{
		laravel:      integrator,
		favorites:    favorites,
		cache:        cache,
		metrics:      m,
		itemsPerPage: itemsPerPage,
		now:          time.Now,
		feeds:        make(map[string]*cursor),
	}
}

func (s *Service) normalize(filters domain.ListFilters) domain.ListFilters {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PerPage <= 0 {
		filters.PerPage = s.itemsPerPage
	}
	return filters
}

// List busca uma página na API Laravel e reaplica os filtros localmente.
// Quando a API falha, a primeira página é servida a partir do snapshot.
func (s *Service) List(ctx context.Context, sess laraveldomain.Session, viewer string, filters domain.ListFilters) (*domain.AnunciosPage, error) {
	filters = s.normalize(filters)

	var favorites map[int]struct{}
	if filters.OnlyFavorites {
		ids, err := s.favorites.List(ctx, viewer)
		if err != nil {
			return nil, err
		}
		favorites = favoriting.Set(ids)
	}

	upstream := filters
	upstream.OnlyFavorites = false

	page, err := s.laravel.ListAnuncios(ctx, sess, upstream)
	if err != nil {
		if errors.Is(err, laravel.ErrUnauthenticated) {
			return nil, err
		}

		log.ForContext(ctx).WithError(err).Warn("Erro ao listar anúncios na API Laravel, tentando snapshot")

		stale, snapErr := s.fromSnapshot(ctx, filters, favorites)
		if snapErr != nil || stale == nil {
			return nil, err
		}
		return stale, nil
	}

	if upstream.IsDefault() && upstream.PerPage == s.itemsPerPage {
		s.saveSnapshot(ctx, page)
	}

	page.Data = Apply(page.Data, filters, favorites)
	return page, nil
}

func (s *Service) fromSnapshot(ctx context.Context, filters domain.ListFilters, favorites map[int]struct{}) (*domain.AnunciosPage, error) {
	if filters.Page > 1 {
		return nil, nil
	}

	snapshot, err := s.cache.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snapshot == nil || snapshot.Page == nil {
		return nil, nil
	}

	data := Apply(snapshot.Page.Data, filters, favorites)

	return &domain.AnunciosPage{
		Data: data,
		Meta: domain.PageMeta{
			Total:       len(data),
			CurrentPage: 1,
			LastPage:    1,
			PerPage:     filters.PerPage,
		},
		Stale: true,
	}, nil
}

func (s *Service) saveSnapshot(ctx context.Context, page *domain.AnunciosPage) {
	snapshot := &repository.Snapshot{Page: page, FetchedAt: s.now()}
	if err := s.cache.SaveSnapshot(context.WithoutCancel(ctx), snapshot); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao salvar snapshot do marketplace")
	}
}

// NextPage avança o feed do perfil. Uma chamada concorrente para o mesmo perfil
// recebe ErrLoadInProgress; filtros diferentes dos do cursor reiniciam o feed.
func (s *Service) NextPage(ctx context.Context, sess laraveldomain.Session, viewer string, filters domain.ListFilters) (*FeedPage, error) {
	filters = s.normalize(filters)
	key := filters
	key.Page = 0

	now := s.now()

	s.feedMu.Lock()
	s.sweepFeeds(now)
	c, ok := s.feeds[viewer]
	if !ok || c.filters != key || now.Sub(c.touched) > FeedIdleTTL {
		c = &cursor{filters: key, nextPage: 1, hasMore: true}
		s.feeds[viewer] = c
	}
	c.touched = now
	if c.loading {
		s.feedMu.Unlock()
		s.metrics.RecordFeedLoadRejected()
		return nil, ErrLoadInProgress
	}
	if !c.hasMore {
		next := c.nextPage
		s.feedMu.Unlock()
		return &FeedPage{Data: []domain.Anuncio{}, NextPage: next}, nil
	}
	c.loading = true
	pageNumber := c.nextPage
	s.feedMu.Unlock()

	filters.Page = pageNumber
	page, err := s.List(ctx, sess, viewer, filters)

	s.feedMu.Lock()
	defer s.feedMu.Unlock()

	c.loading = false
	if err != nil {
		return nil, err
	}

	hasMore := page.Meta.HasMore()
	// um Reset durante o carregamento descarta o avanço deste cursor
	if s.feeds[viewer] == c {
		c.nextPage = pageNumber + 1
		c.hasMore = hasMore
	}

	return &FeedPage{
		Data:     page.Data,
		Meta:     page.Meta,
		HasMore:  hasMore,
		NextPage: pageNumber + 1,
		Stale:    page.Stale,
	}, nil
}

// sweepFeeds descarta feeds parados há mais de FeedIdleTTL. Chamado com feedMu travado.
func (s *Service) sweepFeeds(now time.Time) {
	if now.Sub(s.lastSweep) < time.Minute {
		return
	}
	s.lastSweep = now

	for viewer, c := range s.feeds {
		if !c.loading && now.Sub(c.touched) > FeedIdleTTL {
			delete(s.feeds, viewer)
		}
	}
}

func (s *Service) ResetFeed(viewer string) {
	s.feedMu.Lock()
	delete(s.feeds, viewer)
	s.feedMu.Unlock()
}

func (s *Service) Anuncio(ctx context.Context, sess laraveldomain.Session, id int) (*domain.Anuncio, error) {
	if id <= 0 {
		return nil, ErrInvalidAdID
	}
	return s.laravel.GetAnuncio(ctx, sess, id)
}

// Categorias nunca falha: API Laravel, depois cache e por fim a lista estática.
func (s *Service) Categorias(ctx context.Context, sess laraveldomain.Session) []domain.Categoria {
	categorias, err := s.laravel.ListCategorias(ctx, sess)
	if err == nil && len(categorias) > 0 {
		if err := s.cache.SaveCategorias(context.WithoutCancel(ctx), categorias); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao salvar categorias no cache")
		}
	} else {
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao buscar categorias, usando fallback")
		}
		categorias = s.cachedCategorias(ctx)
	}

	escalando, hasSnapshot := s.snapshotEscalando(ctx)
	return decorate(categorias, escalando, hasSnapshot)
}

func (s *Service) cachedCategorias(ctx context.Context) []domain.Categoria {
	cached, err := s.cache.Categorias(ctx)
	if err != nil || len(cached) == 0 {
		return DefaultCategorias()
	}
	return cached
}

func (s *Service) snapshotEscalando(ctx context.Context) (int, bool) {
	snapshot, err := s.cache.Snapshot(ctx)
	if err != nil || snapshot == nil || snapshot.Page == nil {
		return 0, false
	}
	return CountEscalando(snapshot.Page.Data), true
}

func (s *Service) Nichos(ctx context.Context, sess laraveldomain.Session) []domain.Nicho {
	nichos, err := s.laravel.ListNichos(ctx, sess)
	if err == nil && len(nichos) > 0 {
		if err := s.cache.SaveNichos(context.WithoutCancel(ctx), nichos); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao salvar nichos no cache")
		}
		return nichos
	}

	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao buscar nichos, usando fallback")
	}

	cached, cacheErr := s.cache.Nichos(ctx)
	if cacheErr != nil || len(cached) == 0 {
		return DefaultNichos()
	}
	return cached
}

// Refresh atualiza snapshot e listas auxiliares usando o token de serviço.
func (s *Service) Refresh(ctx context.Context) error {
	sess := laraveldomain.Session{}

	page, err := s.laravel.ListAnuncios(ctx, sess, domain.ListFilters{Page: 1, PerPage: s.itemsPerPage})
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar snapshot do marketplace")
	}
	if err := s.cache.SaveSnapshot(ctx, &repository.Snapshot{Page: page, FetchedAt: s.now()}); err != nil {
		return errors.Wrap(err, "erro ao salvar snapshot do marketplace")
	}

	if categorias, err := s.laravel.ListCategorias(ctx, sess); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao atualizar categorias")
	} else if err := s.cache.SaveCategorias(ctx, categorias); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao salvar categorias no cache")
	}

	if nichos, err := s.laravel.ListNichos(ctx, sess); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao atualizar nichos")
	} else if err := s.cache.SaveNichos(ctx, nichos); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao salvar nichos no cache")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"anuncios": len(page.Data),
		"total":    page.Meta.Total,
	}).Debug("Snapshot do marketplace atualizado")

	return nil
}
