package thumbnailing

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	_ "image/jpeg"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/liveturb/escalando-agora-api/infrastructure/repository"
	"github.com/liveturb/escalando-agora-api/internal/domain"
	"github.com/liveturb/escalando-agora-api/pkg/log"
	"github.com/liveturb/escalando-agora-api/pkg/metrics"
)

const (
	// SeekFraction é a posição relativa do quadro capturado
	SeekFraction = 0.25
	// FallbackSeek é usado quando a duração é desconhecida
	FallbackSeek = 1.0
)

var errEmptyFrame = errors.New("quadro sem dimensões")

// ThumbnailRequest descreve a mídia de um card.
type ThumbnailRequest struct {
	MediaURL  string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}

type Thumbnailer interface {
	// Thumbnail nunca falha: qualquer problema devolve a imagem padrão.
	Thumbnail(ctx context.Context, req ThumbnailRequest) domain.Thumbnail
}

type Options struct {
	Timeout     time.Duration
	CacheTTL    time.Duration
	Placeholder string
	// MaxConcurrent limita os processos ffmpeg simultâneos
	MaxConcurrent int64
}

type Service struct {
	grabber FrameGrabber
	cache   repository.ThumbnailCache
	metrics *metrics.Metrics
	opts    Options
	slots   *semaphore.Weighted
	lookup  lookupFunc
}

// NewService cria o extrator. cache e m podem ser nil.
func NewService(grabber FrameGrabber, cache repository.ThumbnailCache, m *metrics.Metrics, opts Options) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Placeholder == "" {
		opts.Placeholder = "/placeholder.jpg"
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 4
	}

	return &Service{
		grabber: grabber,
		cache:   cache,
		metrics: m,
		opts:    opts,
		slots:   semaphore.NewWeighted(opts.MaxConcurrent),
		lookup:  lookupIP,
	}
}

func (s *Service) Thumbnail(ctx context.Context, req ThumbnailRequest) domain.Thumbnail {
	thumb := s.resolve(ctx, req)
	s.metrics.RecordThumbnail(string(thumb.Source))
	return thumb
}

func (s *Service) resolve(ctx context.Context, req ThumbnailRequest) domain.Thumbnail {
	if !IsPlaceholder(req.Thumbnail) {
		return domain.Thumbnail{URL: req.Thumbnail, Source: domain.ThumbnailExisting}
	}

	if IsPlaceholder(req.MediaURL) || IsGoogleDocsURL(req.MediaURL) {
		return s.placeholder()
	}

	if driveURL, ok := DriveThumbnailURL(req.MediaURL); ok {
		return domain.Thumbnail{URL: driveURL, Source: domain.ThumbnailDrive}
	}

	logger := log.ForContext(ctx).WithField("media_url", req.MediaURL)

	if err := CheckMediaURL(ctx, req.MediaURL, s.lookup); err != nil {
		logger.WithError(err).Warn("URL de mídia recusada, usando imagem padrão")
		return s.placeholder()
	}

	if cached := s.cached(ctx, req.MediaURL); cached != nil {
		return *cached
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	if err := s.slots.Acquire(ctx, 1); err != nil {
		logger.WithError(err).Debug("Extrações ocupadas, usando imagem padrão")
		return s.placeholder()
	}
	defer s.slots.Release(1)

	dataURI, err := s.capture(ctx, req.MediaURL)
	if err != nil {
		logger.WithError(err).Debug("Falha ao extrair miniatura, usando imagem padrão")
		return s.placeholder()
	}

	thumb := domain.Thumbnail{URL: dataURI, Source: domain.ThumbnailFrame}
	s.store(ctx, req.MediaURL, &thumb)

	return thumb
}

func (s *Service) capture(ctx context.Context, mediaURL string) (string, error) {
	if s.grabber == nil {
		return "", errors.New("extrator de quadros não configurado")
	}

	duration, err := s.grabber.Duration(ctx, mediaURL)
	if err != nil {
		return "", err
	}

	frame, err := s.grabber.Frame(ctx, mediaURL, SeekPosition(duration))
	if err != nil {
		return "", err
	}

	if err := validateFrame(frame); err != nil {
		return "", err
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(frame), nil
}

// SeekPosition devolve 25% da duração, ou 1s quando ela é desconhecida.
func SeekPosition(duration float64) float64 {
	if duration <= 0 {
		return FallbackSeek
	}
	return duration * SeekFraction
}

func validateFrame(frame []byte) error {
	if len(frame) == 0 {
		return errEmptyFrame
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(frame))
	if err != nil {
		return err
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return errEmptyFrame
	}

	return nil
}

func (s *Service) placeholder() domain.Thumbnail {
	return domain.Thumbnail{URL: s.opts.Placeholder, Source: domain.ThumbnailPlaceholder}
}

func (s *Service) cached(ctx context.Context, mediaURL string) *domain.Thumbnail {
	if s.cache == nil {
		return nil
	}

	thumb, err := s.cache.Get(ctx, mediaURL)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao ler cache de miniaturas")
		return nil
	}
	if thumb == nil {
		return nil
	}

	return &domain.Thumbnail{URL: thumb.URL, Source: domain.ThumbnailCache}
}

func (s *Service) store(ctx context.Context, mediaURL string, thumb *domain.Thumbnail) {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return
	}

	// o contexto da extração pode já ter expirado
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()

	if err := s.cache.Set(ctx, mediaURL, thumb, s.opts.CacheTTL); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gravar cache de miniaturas")
	}
}
