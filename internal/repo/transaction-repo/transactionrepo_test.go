package transactionrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mkorchagin/payledger/internal/domain"
)

func newMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)

	txn := &domain.Transaction{
		PaymentID:        10,
		FullAmount:       decimal.RequireFromString("900"),
		Amount:           decimal.RequireFromString("891"),
		CommissionAmount: decimal.RequireFromString("9"),
		OldBalance:       decimal.Zero,
		NewBalance:       decimal.RequireFromString("891"),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs(txn.PaymentID, txn.FullAmount, txn.Amount, txn.CommissionAmount, txn.OldBalance, txn.NewBalance).
		WillReturnRows(mock.NewRows([]string{"id", "created_at"}).AddRow(100, time.Now()))

	created, err := repo.Create(context.Background(), txn)
	assert.NoError(t, err)
	assert.Equal(t, 100, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPaymentID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE payment_id = $1")).
		WithArgs(10).
		WillReturnRows(mock.NewRows([]string{
			"id", "payment_id", "full_amount", "amount", "commission_amount",
			"old_balance", "new_balance", "created_at",
		}).AddRow(100, 10, decimal.RequireFromString("900"), decimal.RequireFromString("891"),
			decimal.RequireFromString("9"), decimal.Zero, decimal.RequireFromString("891"), time.Now()))

	txn, err := repo.FindByPaymentID(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 100, txn.ID)
	assert.True(t, txn.NewBalance.Equal(decimal.RequireFromString("891")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByPaymentIDMissing(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE payment_id = $1")).
		WithArgs(404).
		WillReturnRows(mock.NewRows([]string{"id"}))

	txn, err := repo.FindByPaymentID(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, txn)
}

func TestFindBalanceMismatches(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE u.balance <> t.new_balance")).
		WillReturnRows(mock.NewRows([]string{"id", "balance", "new_balance"}).
			AddRow(42, decimal.RequireFromString("900"), decimal.RequireFromString("891")))

	mismatches, err := repo.FindBalanceMismatches(context.Background())
	assert.NoError(t, err)
	assert.Len(t, mismatches, 1)
	assert.Equal(t, 42, mismatches[0].UserID)
	assert.True(t, mismatches[0].Balance.Equal(decimal.RequireFromString("900")))
	assert.True(t, mismatches[0].LastBalance.Equal(decimal.RequireFromString("891")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
