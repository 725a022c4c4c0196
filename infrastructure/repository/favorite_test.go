package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liveturb/escalando-agora-api/infrastructure/database/postgres"
)

type stubResult int64

func (r stubResult) LastInsertId() (int64, error) { return 0, nil }
func (r stubResult) RowsAffected() (int64, error) { return int64(r), nil }

// stubConn simula a tabela favoritos com a constraint (viewer, chave, anuncio_id).
type stubConn struct {
	rows    map[string]bool
	queries []string
	txs     int
	execErr error
}

func newStubConn() *stubConn {
	return &stubConn{rows: map[string]bool{}}
}

func rowKey(viewer, chave any, adID any) string {
	return fmt.Sprintf("%v/%v/%v", viewer, chave, adID)
}

func (c *stubConn) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	c.queries = append(c.queries, query)
	if c.execErr != nil {
		return nil, c.execErr
	}

	switch {
	case strings.HasPrefix(query, "DELETE"):
		// squirrel.Eq ordena as colunas: anuncio_id, chave, viewer
		key := rowKey(args[2], args[1], args[0])
		if !c.rows[key] {
			return stubResult(0), nil
		}
		delete(c.rows, key)
		return stubResult(1), nil

	case strings.HasPrefix(query, "INSERT"):
		var inserted int64
		for i := 0; i+3 < len(args); i += 4 {
			key := rowKey(args[i+1], args[i+2], args[i+3])
			if c.rows[key] {
				continue
			}
			c.rows[key] = true
			inserted++
		}
		return stubResult(inserted), nil
	}

	return nil, fmt.Errorf("query inesperada: %s", query)
}

func (c *stubConn) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errors.New("não suportado")
}

func (c *stubConn) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

func (c *stubConn) Ping(context.Context) error { return nil }

func (c *stubConn) RunInTransaction(_ context.Context, fn func(postgres.Queryer) error) error {
	c.txs++

	snapshot := make(map[string]bool, len(c.rows))
	for k, v := range c.rows {
		snapshot[k] = v
	}

	if err := fn(c); err != nil {
		c.rows = snapshot
		return err
	}
	return nil
}

func TestFavoritePostgresRepository_Toggle(t *testing.T) {
	ctx := context.Background()
	conn := newStubConn()
	repo := NewFavoritePostgresRepository(conn)

	fav, err := repo.Toggle(ctx, "42", 7)
	require.NoError(t, err)
	assert.True(t, fav)
	assert.True(t, conn.rows[rowKey("42", FavoritesKey, 7)])

	// primeira chamada tenta remover e depois insere
	require.Len(t, conn.queries, 2)
	assert.True(t, strings.HasPrefix(conn.queries[0], "DELETE FROM favoritos"))
	assert.Contains(t, conn.queries[1], "ON CONFLICT (viewer, chave, anuncio_id) DO NOTHING")

	fav, err = repo.Toggle(ctx, "42", 7)
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Empty(t, conn.rows)
	assert.Len(t, conn.queries, 3)
	assert.Equal(t, 2, conn.txs)
}

func TestFavoritePostgresRepository_Import(t *testing.T) {
	ctx := context.Background()
	conn := newStubConn()
	repo := NewFavoritePostgresRepository(conn)

	_, err := repo.Toggle(ctx, "42", 7)
	require.NoError(t, err)

	n, err := repo.Import(ctx, "42", []int{3, 3, -1, 0, 5, 7})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, conn.rows, 3)

	// lista vazia ou só ids inválidos não abrem INSERT
	queries := len(conn.queries)
	n, err = repo.Import(ctx, "42", []int{-2, 0})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, conn.queries, queries)
}

func TestFavoritePostgresRepository_errors(t *testing.T) {
	ctx := context.Background()
	conn := newStubConn()
	conn.execErr = errors.New("conexão perdida")
	repo := NewFavoritePostgresRepository(conn)

	_, err := repo.Toggle(ctx, "42", 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alternar favorito")
	assert.Empty(t, conn.rows)

	_, err = repo.Import(ctx, "42", []int{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "importar favoritos")
}
