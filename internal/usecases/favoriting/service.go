package favoriting

import (
	"context"

	"github.com/liveturb/escalando-agora-api/infrastructure/repository"
	"github.com/liveturb/escalando-agora-api/pkg/log"
)

// Favoriter mantém o conjunto de anúncios favoritos de cada perfil.
type Favoriter interface {
	Toggle(ctx context.Context, viewer string, adID int) (bool, error)
	IsFavorite(ctx context.Context, viewer string, adID int) (bool, error)
	List(ctx context.Context, viewer string) ([]int, error)
	Import(ctx context.Context, viewer string, adIDs []int) (int, error)
}

type Service struct {
	repo repository.FavoriteRepository
}

func NewService(repo repository.FavoriteRepository) *Service {
	return &Service{repo: repo}
}

// Toggle inverte a presença do anúncio e persiste o conjunto imediatamente.
func (s *Service) Toggle(ctx context.Context, viewer string, adID int) (bool, error) {
	if err := validate(viewer, adID); err != nil {
		return false, err
	}

	favorite, err := s.repo.Toggle(ctx, viewer, adID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Errorf("Erro ao alternar favorito %d", adID)
		return false, err
	}

	return favorite, nil
}

func (s *Service) IsFavorite(ctx context.Context, viewer string, adID int) (bool, error) {
	if err := validate(viewer, adID); err != nil {
		return false, err
	}
	return s.repo.Contains(ctx, viewer, adID)
}

// List devolve os ids favoritos; um perfil novo começa com a lista vazia.
func (s *Service) List(ctx context.Context, viewer string) ([]int, error) {
	if viewer == "" {
		return nil, ErrMissingViewer
	}

	ids, err := s.repo.List(ctx, viewer)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}

// Import adiciona ids exportados do navegador ao conjunto do perfil.
func (s *Service) Import(ctx context.Context, viewer string, adIDs []int) (int, error) {
	if viewer == "" {
		return 0, ErrMissingViewer
	}
	return s.repo.Import(ctx, viewer, adIDs)
}

// Set devolve os favoritos como conjunto, usado nos filtros da listagem.
func Set(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func validate(viewer string, adID int) error {
	if viewer == "" {
		return ErrMissingViewer
	}
	if adID <= 0 {
		return ErrInvalidAdID
	}
	return nil
}
