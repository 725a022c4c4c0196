package repository

import (
	"context"
	"database/sql"
	"sort"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/liveturb/escalando-agora-api/infrastructure/database/postgres"
	"github.com/liveturb/escalando-agora-api/pkg/utils"
)

const (
	favoritesTable = "favoritos"

	// FavoritesKey é a chave fixa sob a qual a lista de favoritos de cada perfil é guardada
	FavoritesKey = "favoritos"
)

// FavoriteRepository persiste o conjunto de anúncios favoritos por perfil.
type FavoriteRepository interface {
	List(ctx context.Context, viewer string) ([]int, error)
	Contains(ctx context.Context, viewer string, adID int) (bool, error)
	// Toggle inverte a presença de adID e devolve se ficou favorito.
	Toggle(ctx context.Context, viewer string, adID int) (bool, error)
	// Import adiciona ids ao conjunto e devolve quantos eram novos.
	Import(ctx context.Context, viewer string, adIDs []int) (int, error)
}

type favoritePostgresRepository struct {
	conn postgres.Conn
}

func NewFavoritePostgresRepository(conn postgres.Conn) FavoriteRepository {
	return &favoritePostgresRepository{
		conn: conn,
	}
}

func (r *favoritePostgresRepository) List(ctx context.Context, viewer string) ([]int, error) {
	query, args, err := squirrel.
		Select("anuncio_id").
		From(favoritesTable).
		Where(squirrel.Eq{"viewer": viewer, "chave": FavoritesKey}).
		OrderBy("anuncio_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listar favoritos")
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *favoritePostgresRepository) Contains(ctx context.Context, viewer string, adID int) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(favoritesTable).
		Where(squirrel.Eq{"viewer": viewer, "chave": FavoritesKey, "anuncio_id": adID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "consultar favorito")
	}

	return true, nil
}

func (r *favoritePostgresRepository) Toggle(ctx context.Context, viewer string, adID int) (bool, error) {
	var favorite bool

	err := r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		deleted, err := deleteFavorite(ctx, tx, viewer, adID)
		if err != nil {
			return err
		}
		if deleted {
			favorite = false
			return nil
		}

		if _, err := insertFavorites(ctx, tx, viewer, []int{adID}); err != nil {
			return err
		}
		favorite = true
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "alternar favorito")
	}

	return favorite, nil
}

func (r *favoritePostgresRepository) Import(ctx context.Context, viewer string, adIDs []int) (int, error) {
	var inserted int

	err := r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		n, err := insertFavorites(ctx, tx, viewer, adIDs)
		inserted = n
		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "importar favoritos")
	}

	return inserted, nil
}

func deleteFavorite(ctx context.Context, q postgres.Queryer, viewer string, adID int) (bool, error) {
	query, args, err := squirrel.
		Delete(favoritesTable).
		Where(squirrel.Eq{"viewer": viewer, "chave": FavoritesKey, "anuncio_id": adID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func insertFavorites(ctx context.Context, q postgres.Queryer, viewer string, adIDs []int) (int, error) {
	ids := uniqueIDs(adIDs)
	if len(ids) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Insert(favoritesTable).
		Columns("id", "viewer", "chave", "anuncio_id")

	for _, adID := range ids {
		id, err := utils.GenerateID()
		if err != nil {
			return 0, err
		}
		builder = builder.Values(id, viewer, FavoritesKey, adID)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (viewer, chave, anuncio_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}

// uniqueIDs remove duplicados e ids inválidos, mantendo ordem crescente
func uniqueIDs(adIDs []int) []int {
	seen := make(map[int]struct{}, len(adIDs))
	out := make([]int, 0, len(adIDs))
	for _, id := range adIDs {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
