package noticerepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/mkorchagin/payledger/internal/domain"
)

func newMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestCreateAssignsID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notices")).
		WithArgs(pgxmock.AnyArg(), "Attention", "Available address count: 3", "new").
		WillReturnRows(mock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	notice, err := repo.Create(context.Background(), &domain.Notice{
		Title:   "Attention",
		Message: "Available address count: 3",
		Status:  "new",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, notice.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateKeepsProvidedID(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notices")).
		WithArgs(id, "Attention", "msg", "new").
		WillReturnRows(mock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	notice, err := repo.Create(context.Background(), &domain.Notice{
		ID:      id,
		Title:   "Attention",
		Message: "msg",
		Status:  "new",
	})
	assert.NoError(t, err)
	assert.Equal(t, id, notice.ID)
}

func TestList(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM notices")).
		WithArgs(10).
		WillReturnRows(mock.NewRows([]string{"id", "title", "message", "status", "created_at"}).
			AddRow(uuid.New(), "Attention", "Balance mismatch for user 42", "new", time.Now()))

	notices, err := repo.List(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, notices, 1)
	assert.Equal(t, "Attention", notices[0].Title)
}
