package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel"
	laraveldomain "github.com/liveturb/escalando-agora-api/infrastructure/integrator/laravel/domain"
	"github.com/liveturb/escalando-agora-api/infrastructure/repository"
	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/internal/usecases/classifying"
	"github.com/liveturb/escalando-agora-api/internal/usecases/favoriting"
	"github.com/liveturb/escalando-agora-api/internal/usecases/insighting"
	"github.com/liveturb/escalando-agora-api/pkg/log"
)

type Composer interface {
	Dashboard(ctx context.Context, sess laraveldomain.Session, viewer string, req Request) (*View, error)
}

type Service struct {
	laravel   laravel.LaravelIntegrator
	favorites favoriting.Favoriter
	minValues repository.MinValueRepository
	insighter insighting.Insighter
	now       func() time.Time
}

func NewService(
	integrator laravel.LaravelIntegrator,
	favorites favoriting.Favoriter,
	minValues repository.MinValueRepository,
	insighter insighting.Insighter,
) *Service {
	return &Service{
		laravel:   integrator,
		favorites: favorites,
		minValues: minValues,
		insighter: insighter,
		now:       time.Now,
	}
}

func (s *Service) Dashboard(ctx context.Context, sess laraveldomain.Session, viewer string, req Request) (*View, error) {
	if req.AnuncioID <= 0 {
		return nil, ErrInvalidAdID
	}
	if req.Period == "" {
		req.Period = domain.Period7Days
	}

	ad, err := s.laravel.GetAnuncio(ctx, sess, req.AnuncioID)
	if err != nil {
		return nil, err
	}

	media, err := resolveMedia(ad, req.CreativeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	view := &View{
		Anuncio:   ad,
		Status:    classifying.Classify(classifying.InputForAd(ad, now)),
		Criativos: Performances(ad, now),
		Grafico:   BuildChart(ad, req.Period),
		Links:     ad.ResolvedLinks(),
		Produto:   ad.ResolvedProduto(),
		Media:     media,
	}

	view.MinAnuncios = s.historicalMin(ctx, ad, view.Grafico.Resumo)
	view.Grafico.Resumo.Min = view.MinAnuncios

	if viewer != "" {
		favorite, err := s.favorites.IsFavorite(ctx, viewer, ad.ID)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao consultar favorito, exibindo como não favorito")
		}
		view.Favorito = favorite

		if analysis, ok := s.insighter.Latest(viewer, ad.ID); ok && analysis.Period == req.Period {
			view.Analise = analysis
		}
	}

	return view, nil
}

// Performances monta a tabela de criativos com o status de cada um.
func Performances(ad *domain.Anuncio, now time.Time) []domain.CreativePerformance {
	rows := make([]domain.CreativePerformance, 0, len(ad.Criativos))
	for _, c := range ad.Criativos {
		id := c.ID
		language := c.Language
		if language == "" {
			language = c.Idioma
		}
		rows = append(rows, domain.CreativePerformance{
			Name:       c.DisplayName(),
			Value:      c.Value,
			Status:     classifying.ClassifyCreative(ad, c, now),
			CreativeID: &id,
			URL:        c.URL,
			Image:      c.Image,
			Platform:   c.Platform,
			Language:   language,
		})
	}
	return rows
}

// BuildChart monta o gráfico do período ativo.
func BuildChart(ad *domain.Anuncio, period domain.Period) Chart {
	series := ad.Estatisticas.Series(period)
	return Chart{
		Periodo:        period,
		Tendencia:      insighting.Trend(series),
		Pontos:         insighting.ChartPoints(series),
		Resumo:         insighting.Summarize(series, ad.AdCount()),
		Interpretacoes: insighting.Interpretations(period),
	}
}

// resolveMedia escolhe o vídeo principal, ou o do criativo selecionado quando ele tem URL.
func resolveMedia(ad *domain.Anuncio, creativeID int) (Media, error) {
	mediaURL := ad.URLVideo
	var selected *int

	if creativeID > 0 {
		creative, ok := ad.FindCriativo(creativeID)
		if !ok {
			return Media{}, ErrCreativeNotFound
		}
		id := creative.ID
		selected = &id
		if strings.TrimSpace(creative.URL) != "" {
			mediaURL = creative.URL
		}
	}

	mediaURL = strings.TrimSpace(mediaURL)
	if mediaURL == "" {
		return Media{CreativeID: selected, Error: MediaUnavailable}, nil
	}
	return Media{URL: mediaURL, CreativeID: selected}, nil
}

// historicalMin mantém o menor numero_anuncios já visto; sem contagem, usa o mínimo da série.
// Série vazia não é observação: nada é gravado.
func (s *Service) historicalMin(ctx context.Context, ad *domain.Anuncio, series domain.ChartSummary) int {
	seriesMin := series.Min
	logger := log.ForContext(ctx).WithField("anuncio_id", ad.ID)

	if ad.NumeroAnuncios != nil {
		value, err := s.minValues.Observe(ctx, ad.VariacaoDiaria, ad.VariacaoSemanal, *ad.NumeroAnuncios)
		if err != nil {
			logger.WithError(err).Warn("Erro ao atualizar mínimo histórico")
			return *ad.NumeroAnuncios
		}
		return value
	}

	value, found, err := s.minValues.Get(ctx, ad.VariacaoDiaria, ad.VariacaoSemanal)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler mínimo histórico")
		return seriesMin
	}
	if found {
		return value
	}
	if series.PointCount == 0 {
		return 0
	}

	value, err = s.minValues.Observe(ctx, ad.VariacaoDiaria, ad.VariacaoSemanal, seriesMin)
	if err != nil {
		logger.WithError(err).Warn("Erro ao gravar mínimo histórico")
		return seriesMin
	}
	return value
}
