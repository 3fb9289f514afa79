package settingsrepo

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

func (r *Repository) Get(ctx context.Context) (*domain.Setting, error) {
	var s domain.Setting
	query := `
		SELECT id, site_name, referral_commission, invitation_only
		FROM settings
		ORDER BY id
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query).Scan(&s.ID, &s.SiteName, &s.ReferralCommission, &s.InvitationOnly)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't fetch settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
