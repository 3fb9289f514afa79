package userrepo

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestFindByLogin(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
		WithArgs("operator").
		WillReturnRows(mock.NewRows([]string{"id", "login", "password_hash", "role", "balance", "referrer"}).
			AddRow(42, "operator", "hash", "admin", decimal.Zero, nil))

	user, err := repo.FindByLogin(context.Background(), "operator")
	assert.NoError(t, err)
	assert.Equal(t, 42, user.ID)
	assert.Equal(t, "admin", user.Role)
	assert.Nil(t, user.Referrer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLoginMissing(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
		WithArgs("ghost").
		WillReturnRows(mock.NewRows([]string{"id"}))

	user, err := repo.FindByLogin(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestFindByID(t *testing.T) {
	repo, mock := newMock(t)
	referrer := 7

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(42).
		WillReturnRows(mock.NewRows([]string{"id", "login", "password_hash", "role", "balance", "referrer"}).
			AddRow(42, "operator", "hash", "user", decimal.RequireFromString("891"), &referrer))

	user, err := repo.FindByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.True(t, user.Balance.Equal(decimal.RequireFromString("891")))
	assert.Equal(t, 7, *user.Referrer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBalance(t *testing.T) {
	repo, mock := newMock(t)
	balance := decimal.RequireFromString("891")

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(balance, 42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateBalance(context.Background(), 42, balance)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBalanceMissingUser(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs(decimal.Zero, 404).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateBalance(context.Background(), 404, decimal.Zero)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestSumPositiveBalances(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE balance > 0")).
		WillReturnRows(mock.NewRows([]string{"sum"}).AddRow(decimal.RequireFromString("891.9")))

	sum, err := repo.SumPositiveBalances(context.Background())
	assert.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("891.9")))
}
