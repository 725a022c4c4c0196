package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/liveturb/escalando-agora-api/infrastructure/database/redis"
)

// toggleScript inverte a presença do membro num único passo no servidor
var toggleScript = goredis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
	redis.call("SREM", KEYS[1], ARGV[1])
	return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
return 1
`)

type favoriteRedisRepository struct {
	store *redis.Store
}

func NewFavoriteRedisRepository(store *redis.Store) FavoriteRepository {
	return &favoriteRedisRepository{store: store}
}

func favoritesKey(viewer string) string {
	return fmt.Sprintf("%s:%s", FavoritesKey, viewer)
}

func (r *favoriteRedisRepository) List(ctx context.Context, viewer string) ([]int, error) {
	members, err := r.store.Client.SMembers(ctx, favoritesKey(viewer)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids, nil
}

func (r *favoriteRedisRepository) Contains(ctx context.Context, viewer string, adID int) (bool, error) {
	return r.store.Client.SIsMember(ctx, favoritesKey(viewer), strconv.Itoa(adID)).Result()
}

func (r *favoriteRedisRepository) Toggle(ctx context.Context, viewer string, adID int) (bool, error) {
	res, err := toggleScript.Run(ctx, r.store.Client, []string{favoritesKey(viewer)}, strconv.Itoa(adID)).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

func (r *favoriteRedisRepository) Import(ctx context.Context, viewer string, adIDs []int) (int, error) {
	ids := uniqueIDs(adIDs)
	if len(ids) == 0 {
		return 0, nil
	}

	members := make([]any, 0, len(ids))
	for _, id := range ids {
		members = append(members, strconv.Itoa(id))
	}

	added, err := r.store.Client.SAdd(ctx, favoritesKey(viewer), members...).Result()
	if err != nil {
		return 0, err
	}
	return int(added), nil
}
