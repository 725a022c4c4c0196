package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/liveturb/escalando-agora-api/internal/config"
	"github.com/liveturb/escalando-agora-api/pkg/log"
)

// Store encapsula o cliente Redis usado pelos repositórios e caches.
type Store struct {
	Client *goredis.Client
}

// NewStore conecta no Redis e valida com PING.
func NewStore(ctx context.Context, cfg config.Redis) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("falha ao conectar no Redis: %w", err)
	}

	log.L.WithField("addr", cfg.Addr).Info("Conectado ao Redis")
	return &Store{Client: client}, nil
}

// NewStoreFromClient é usado nos testes com miniredis.
func NewStoreFromClient(client *goredis.Client) *Store {
	return &Store{Client: client}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.Client.Close()
}
