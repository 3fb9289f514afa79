package paymenttyperepo

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

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.PaymentType, error) {
	var pt domain.PaymentType
	query := `
		SELECT id, name, commission
		FROM payment_types
		WHERE name = $1
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&pt.ID, &pt.Name, &pt.Commission)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payment type", zap.Error(err))
		return nil, err
	}
	return &pt, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PaymentType, error) {
	var pt domain.PaymentType
	query := `
		SELECT id, name, commission
		FROM payment_types
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&pt.ID, &pt.Name, &pt.Commission)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payment type", zap.Error(err))
		return nil, err
	}
	return &pt, nil
}
