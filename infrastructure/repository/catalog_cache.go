package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	jsoniter "github.com/json-iterator/go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/liveturb/escalando-agora-api/infrastructure/database/redis"
	"github.com/liveturb/escalando-agora-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	snapshotKey   = "marketplace:snapshot"
	categoriasKey = "marketplace:categorias"
	nichosKey     = "marketplace:nichos"
	thumbnailKey  = "thumbnail:"
)

// Snapshot é a primeira página sem filtros e as listas auxiliares mantidas pelo job de atualização.
type Snapshot struct {
	Page      *domain.AnunciosPage `json:"page"`
	FetchedAt time.Time            `json:"fetched_at"`
}

// CatalogCache guarda cópias do catálogo usadas quando a API Laravel falha.
type CatalogCache interface {
	SaveSnapshot(ctx context.Context, snapshot *Snapshot) error
	Snapshot(ctx context.Context) (*Snapshot, error)
	SaveCategorias(ctx context.Context, categorias []domain.Categoria) error
	Categorias(ctx context.Context) ([]domain.Categoria, error)
	SaveNichos(ctx context.Context, nichos []domain.Nicho) error
	Nichos(ctx context.Context) ([]domain.Nicho, error)
}

// ThumbnailCache guarda miniaturas já extraídas por URL.
type ThumbnailCache interface {
	Get(ctx context.Context, mediaURL string) (*domain.Thumbnail, error)
	Set(ctx context.Context, mediaURL string, thumb *domain.Thumbnail, ttl time.Duration) error
}

type redisCatalogCache struct {
	store *redis.Store
}

func NewCatalogCache(store *redis.Store) CatalogCache {
	return &redisCatalogCache{store: store}
}

func (c *redisCatalogCache) SaveSnapshot(ctx context.Context, snapshot *Snapshot) error {
	return setJSON(ctx, c.store, snapshotKey, snapshot, 0)
}

// Snapshot devolve nil sem erro quando ainda não há cópia.
func (c *redisCatalogCache) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snapshot Snapshot
	found, err := getJSON(ctx, c.store, snapshotKey, &snapshot)
	if err != nil || !found {
		return nil, err
	}
	return &snapshot, nil
}

func (c *redisCatalogCache) SaveCategorias(ctx context.Context, categorias []domain.Categoria) error {
	return setJSON(ctx, c.store, categoriasKey, categorias, 0)
}

func (c *redisCatalogCache) Categorias(ctx context.Context) ([]domain.Categoria, error) {
	var categorias []domain.Categoria
	if _, err := getJSON(ctx, c.store, categoriasKey, &categorias); err != nil {
		return nil, err
	}
	return categorias, nil
}

func (c *redisCatalogCache) SaveNichos(ctx context.Context, nichos []domain.Nicho) error {
	return setJSON(ctx, c.store, nichosKey, nichos, 0)
}

func (c *redisCatalogCache) Nichos(ctx context.Context) ([]domain.Nicho, error) {
	var nichos []domain.Nicho
	if _, err := getJSON(ctx, c.store, nichosKey, &nichos); err != nil {
		return nil, err
	}
	return nichos, nil
}

type redisThumbnailCache struct {
	store *redis.Store
}

func NewThumbnailCache(store *redis.Store) ThumbnailCache {
	return &redisThumbnailCache{store: store}
}

// ThumbnailKey usa o hash da URL para não guardar URLs assinadas como chave.
func ThumbnailKey(mediaURL string) string {
	sum := sha256.Sum256([]byte(mediaURL))
	return thumbnailKey + hex.EncodeToString(sum[:])
}

func (c *redisThumbnailCache) Get(ctx context.Context, mediaURL string) (*domain.Thumbnail, error) {
	var thumb domain.Thumbnail
	found, err := getJSON(ctx, c.store, ThumbnailKey(mediaURL), &thumb)
	if err != nil || !found {
		return nil, err
	}
	return &thumb, nil
}

func (c *redisThumbnailCache) Set(ctx context.Context, mediaURL string, thumb *domain.Thumbnail, ttl time.Duration) error {
	return setJSON(ctx, c.store, ThumbnailKey(mediaURL), thumb, ttl)
}

func setJSON(ctx context.Context, store *redis.Store, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Client.Set(ctx, key, data, ttl).Err()
}

func getJSON(ctx context.Context, store *redis.Store, key string, dest any) (bool, error) {
	data, err := store.Client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}
