package transactionrepo

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

func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (payment_id, full_amount, amount, commission_amount, old_balance, new_balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		t.PaymentID, t.FullAmount, t.Amount, t.CommissionAmount, t.OldBalance, t.NewBalance,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindByPaymentID(ctx context.Context, paymentID int) (*domain.Transaction, error) {
	var t domain.Transaction
	query := `
		SELECT id, payment_id, full_amount, amount, commission_amount, old_balance, new_balance, created_at
		FROM transactions
		WHERE payment_id = $1
	`
	err := r.db.QueryRow(ctx, query, paymentID).Scan(
		&t.ID, &t.PaymentID, &t.FullAmount, &t.Amount, &t.CommissionAmount,
		&t.OldBalance, &t.NewBalance, &t.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction by payment", zap.Error(err))
		return nil, err
	}
	return &t, nil
}

// FindBalanceMismatches reports users whose stored balance no longer matches
// the new_balance of their latest transaction.
func (r *Repository) FindBalanceMismatches(ctx context.Context) ([]domain.BalanceMismatch, error) {
	query := `
		SELECT u.id, u.balance, t.new_balance
		FROM users u
		JOIN LATERAL (
			SELECT t.new_balance
			FROM transactions t
			JOIN payments p ON p.id = t.payment_id
			WHERE p.user_id = u.id
			ORDER BY t.id DESC
			LIMIT 1
		) t ON TRUE
		WHERE u.balance <> t.new_balance
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch balance mismatches", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var mismatches []domain.BalanceMismatch
	for rows.Next() {
		var m domain.BalanceMismatch
		if err := rows.Scan(&m.UserID, &m.Balance, &m.LastBalance); err != nil {
			zap.L().Error("can't scan balance mismatch row", zap.Error(err))
			return nil, err
		}
		mismatches = append(mismatches, m)
	}
	return mismatches, nil
}
