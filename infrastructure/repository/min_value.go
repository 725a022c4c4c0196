package repository

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/liveturb/escalando-agora-api/infrastructure/database/redis"
)

// minValueScript grava o valor apenas se a chave não existir ou se ele for menor
var minValueScript = goredis.NewScript(`
local current = redis.call("GET", KEYS[1])
local candidate = tonumber(ARGV[1])
if current == false or candidate < tonumber(current) then
	redis.call("SET", KEYS[1], ARGV[1])
	return candidate
end
return tonumber(current)
`)

// MinValueRepository guarda o menor numero_anuncios já visto por combinação de variações.
type MinValueRepository interface {
	// Observe registra value e devolve o mínimo histórico resultante.
	Observe(ctx context.Context, variacaoDiaria, variacaoSemanal, value int) (int, error)
	Get(ctx context.Context, variacaoDiaria, variacaoSemanal int) (int, bool, error)
}

type minValueRepository struct {
	store *redis.Store
}

func NewMinValueRepository(store *redis.Store) MinValueRepository {
	return &minValueRepository{store: store}
}

// MinValueKey segue o formato anuncio_{variacao_diaria}_{variacao_semanal}_min_anuncios.
func MinValueKey(variacaoDiaria, variacaoSemanal int) string {
	return fmt.Sprintf("anuncio_%d_%d_min_anuncios", variacaoDiaria, variacaoSemanal)
}

func (r *minValueRepository) Observe(ctx context.Context, variacaoDiaria, variacaoSemanal, value int) (int, error) {
	key := MinValueKey(variacaoDiaria, variacaoSemanal)
	return minValueScript.Run(ctx, r.store.Client, []string{key}, value).Int()
}

func (r *minValueRepository) Get(ctx context.Context, variacaoDiaria, variacaoSemanal int) (int, bool, error) {
	v, err := r.store.Client.Get(ctx, MinValueKey(variacaoDiaria, variacaoSemanal)).Int()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
