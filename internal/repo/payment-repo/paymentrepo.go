package paymentrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/pg"
)

const paymentColumns = `id, user_id, payment_type_id, method, status, full_amount, amount,
		commission_amount, parent_id, txid, address_id, description, paid_at, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID, &p.UserID, &p.PaymentTypeID, &p.Method, &p.Status,
		&p.FullAmount, &p.Amount, &p.CommissionAmount,
		&p.ParentID, &p.TxID, &p.AddressID, &p.Description, &p.PaidAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (user_id, payment_type_id, method, status, full_amount, amount,
			commission_amount, parent_id, txid, address_id, description, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		p.UserID, p.PaymentTypeID, p.Method, p.Status, p.FullAmount, p.Amount,
		p.CommissionAmount, p.ParentID, p.TxID, p.AddressID, p.Description, p.PaidAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE id = $1
	`
	p, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// UpdateStatusFrom performs the status transition as an atomic
// compare-and-set. A nil payment with nil error means the payment was no
// longer in the expected status, so a concurrent actor won the race.
func (r *Repository) UpdateStatusFrom(ctx context.Context, id int, from, to domain.PaymentStatus, paidAt *time.Time, txid *string) (*domain.Payment, error) {
	query := `
		UPDATE payments
		SET status = $1,
		    paid_at = COALESCE($2, paid_at),
		    txid = COALESCE($3, txid)
		WHERE id = $4 AND status = $5
		RETURNING ` + paymentColumns + `
	`
	p, err := scanPayment(r.db.QueryRow(ctx, query, to, paidAt, txid, id, from))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update payment status", zap.Error(err))
		return nil, err
	}
	return p, nil
}

// ExistsByParentAndType is the referral cascade idempotency check: has a
// payment of the given type already been created for this parent transaction.
func (r *Repository) ExistsByParentAndType(ctx context.Context, parentID, paymentTypeID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payments WHERE parent_id = $1 AND payment_type_id = $2
		)
	`
	err := r.db.QueryRow(ctx, query, parentID, paymentTypeID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check payment existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindPending(ctx context.Context, method domain.PaymentMethod, limit int) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE status = $1 AND method = $2
		ORDER BY created_at
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, domain.StatusCreate, method, limit)
	if err != nil {
		zap.L().Error("can't fetch pending payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, nil
}

func (r *Repository) SumPaidAmountByMethod(ctx context.Context, method domain.PaymentMethod) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `
		SELECT COALESCE(SUM(CASE WHEN method = 'top_up' THEN amount ELSE full_amount END), 0)
		FROM payments
		WHERE status = $1 AND method = $2
	`
	err := r.db.QueryRow(ctx, query, domain.StatusPaid, method).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum paid payments", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) SumPaidCommission(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `
		SELECT COALESCE(SUM(ABS(commission_amount)), 0)
		FROM payments
		WHERE paid_at IS NOT NULL
	`
	err := r.db.QueryRow(ctx, query).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum paid commission", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) SumPaidFullAmountByType(ctx context.Context, paymentTypeID int) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `
		SELECT COALESCE(SUM(full_amount), 0)
		FROM payments
		WHERE status = $1 AND payment_type_id = $2
	`
	err := r.db.QueryRow(ctx, query, domain.StatusPaid, paymentTypeID).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum payments by type", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
