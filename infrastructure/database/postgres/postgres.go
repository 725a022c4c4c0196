package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/liveturb/escalando-agora-api/internal/config"
)

// Conn é o que os repositórios de favoritos usam do pool.
type Conn interface {
	Queryer
	Ping(context.Context) error
	RunInTransaction(context.Context, func(Queryer) error) error
}

type Connection struct {
	*sql.DB
}

const (
	defaultMaxOpenConns = 10
	defaultMaxIdleTime  = 5 * time.Minute
)

// NewConnection abre o pool e só retorna depois do primeiro ping.
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres: DSN vazio")
	}

	db, err := sql.Open(driverName(cfg.Driver), cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: abrir pool")
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	idle := cfg.MaxIdleTime
	if idle <= 0 {
		idle = defaultMaxIdleTime
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen / 2)
	db.SetConnMaxIdleTime(idle)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "postgres: ping inicial")
	}

	return &Connection{DB: db}, nil
}

// driverName aceita "postgresql" como sinônimo; o lib/pq registra só "postgres".
func driverName(driver string) string {
	if driver == "" || driver == "postgresql" {
		return "postgres"
	}
	return driver
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn dentro de uma transação; erro ou panic fazem rollback
func (c *Connection) RunInTransaction(ctx context.Context, fn func(Queryer) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback falhou: %v", rbErr)
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "postgres: commit")
}
