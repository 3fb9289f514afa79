package addressrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CountFree(ctx context.Context) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM addresses
		WHERE user_id IS NULL
	`
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		zap.L().Error("can't count free addresses", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// AssignFree claims the first unassigned address for the user. A nil address
// with nil error means the pool is exhausted.
func (r *Repository) AssignFree(ctx context.Context, userID int) (*domain.Address, error) {
	var a domain.Address
	query := `
		UPDATE addresses
		SET user_id = $1
		WHERE id = (
			SELECT id FROM addresses WHERE user_id IS NULL ORDER BY id LIMIT 1 FOR UPDATE SKIP LOCKED
		)
		RETURNING id, value, user_id
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&a.ID, &a.Value, &a.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't assign free address", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Address, error) {
	var a domain.Address
	query := `
		SELECT id, value, user_id
		FROM addresses
		WHERE user_id = $1
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&a.ID, &a.Value, &a.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find address by user", zap.Error(err))
		return nil, err
	}
	return &a, nil
}
