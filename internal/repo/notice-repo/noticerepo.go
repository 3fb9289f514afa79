package noticerepo

import (
	"context"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, notice *domain.Notice) (*domain.Notice, error) {
	if notice.ID == uuid.Nil {
		notice.ID = uuid.New()
	}
	query := `
		INSERT INTO notices (id, title, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, notice.ID, notice.Title, notice.Message, notice.Status).Scan(&notice.CreatedAt)
	if err != nil {
		zap.L().Error("can't save notice", zap.Error(err))
		return nil, err
	}
	return notice, nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.Notice, error) {
	query := `
		SELECT id, title, message, status, created_at
		FROM notices
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't fetch notices", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notices []domain.Notice
	for rows.Next() {
		var n domain.Notice
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Status, &n.CreatedAt); err != nil {
			zap.L().Error("can't scan notice row", zap.Error(err))
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, nil
}
