package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, login, password_hash, role, balance, referrer
		FROM users
		WHERE login = $1
	`
	err := repo.db.QueryRow(ctx, query, login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.Balance, &user.Referrer)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by login", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, login, password_hash, role, balance, referrer
		FROM users
		WHERE id = $1
	`
	err := repo.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.Balance, &user.Referrer)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, role, referrer)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role, user.Referrer).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdateBalance(ctx context.Context, userID int, balance decimal.Decimal) error {
	query := `
		UPDATE users
		SET balance = $1
		WHERE id = $2
	`
	tag, err := repo.db.Exec(ctx, query, balance, userID)
	if err != nil {
		zap.L().Error("can't update user balance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (repo *Repository) SumPositiveBalances(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `
		SELECT COALESCE(SUM(balance), 0)
		FROM users
		WHERE balance > 0
	`
	err := repo.db.QueryRow(ctx, query).Scan(&sum)
	if err != nil {
		zap.L().Error("can't sum user balances", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}
