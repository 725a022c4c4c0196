package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveturb/escalando-agora-api/infrastructure/database/redis"
	"github.com/liveturb/escalando-agora-api/internal/domain"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Store) {
	t.Helper()

	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(s.Close)

	return s, redis.NewStoreFromClient(goredis.NewClient(&goredis.Options{Addr: s.Addr()}))
}

func TestFavoriteRedisRepository_Toggle(t *testing.T) {
	ctx := context.Background()
	s, store := setupTestRedis(t)
	repo := NewFavoriteRedisRepository(store)

	fav, err := repo.Toggle(ctx, "42", 7)
	require.NoError(t, err)
	assert.True(t, fav)
	assert.True(t, s.Exists("favoritos:42"))

	ok, err := repo.Contains(ctx, "42", 7)
	require.NoError(t, err)
	assert.True(t, ok)

	// outro perfil não enxerga os favoritos
	ok, err = repo.Contains(ctx, "43", 7)
	require.NoError(t, err)
	assert.False(t, ok)

	fav, err = repo.Toggle(ctx, "42", 7)
	require.NoError(t, err)
	assert.False(t, fav)

	ids, err := repo.List(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFavoriteRedisRepository_ImportAndList(t *testing.T) {
	ctx := context.Background()
	_, store := setupTestRedis(t)
	repo := NewFavoriteRedisRepository(store)

	added, err := repo.Import(ctx, "1", []int{9, 3, 3, -1, 0, 12})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	added, err = repo.Import(ctx, "1", []int{3, 5})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	ids, err := repo.List(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 5, 9, 12}, ids)

	added, err = repo.Import(ctx, "1", nil)
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestMinValueRepository_Observe(t *testing.T) {
	ctx := context.Background()
	s, store := setupTestRedis(t)
	repo := NewMinValueRepository(store)

	_, found, err := repo.Get(ctx, 3, -2)
	require.NoError(t, err)
	assert.False(t, found)

	got, err := repo.Observe(ctx, 3, -2, 45)
	require.NoError(t, err)
	assert.Equal(t, 45, got)

	got, err = repo.Observe(ctx, 3, -2, 60)
	require.NoError(t, err)
	assert.Equal(t, 45, got)

	got, err = repo.Observe(ctx, 3, -2, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	v, err := s.Get("anuncio_3_-2_min_anuncios")
	require.NoError(t, err)
	assert.Equal(t, "12", v)

	lowest, found, err := repo.Get(ctx, 3, -2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 12, lowest)
}

func TestCatalogCache(t *testing.T) {
	ctx := context.Background()
	_, store := setupTestRedis(t)
	cache := NewCatalogCache(store)

	snap, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	fetched := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	err = cache.SaveSnapshot(ctx, &Snapshot{
		Page: &domain.AnunciosPage{
			Data: []domain.Anuncio{{ID: 1, Titulo: "Oferta"}},
			Meta: domain.PageMeta{Total: 1, CurrentPage: 1, LastPage: 1, PerPage: 12},
		},
		FetchedAt: fetched,
	})
	require.NoError(t, err)

	snap, err = cache.Snapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "Oferta", snap.Page.Data[0].Titulo)
	assert.True(t, fetched.Equal(snap.FetchedAt))

	require.NoError(t, cache.SaveCategorias(ctx, []domain.Categoria{{ID: "escalando", Nome: "Escalando", Contador: 4}}))
	categorias, err := cache.Categorias(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, categorias[0].Contador)

	nichos, err := cache.Nichos(ctx)
	require.NoError(t, err)
	assert.Nil(t, nichos)
}

func TestThumbnailCache(t *testing.T) {
	ctx := context.Background()
	s, store := setupTestRedis(t)
	cache := NewThumbnailCache(store)

	url := "https://cdn.example.com/video.mp4?sig=abc"
	thumb, err := cache.Get(ctx, url)
	require.NoError(t, err)
	assert.Nil(t, thumb)

	require.NoError(t, cache.Set(ctx, url, &domain.Thumbnail{URL: "data:image/jpeg;base64,AAA", Source: domain.ThumbnailFrame}, time.Hour))

	thumb, err = cache.Get(ctx, url)
	require.NoError(t, err)
	require.NotNil(t, thumb)
	assert.Equal(t, domain.ThumbnailFrame, thumb.Source)

	s.FastForward(2 * time.Hour)
	thumb, err = cache.Get(ctx, url)
	require.NoError(t, err)
	assert.Nil(t, thumb)
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []int{1, 2, 7}, uniqueIDs([]int{7, 2, 2, 1, 0, -5, 7}))
	assert.Empty(t, uniqueIDs(nil))
}

func TestMinValueKey(t *testing.T) {
	assert.Equal(t, "anuncio_5_12_min_anuncios", MinValueKey(5, 12))
}
