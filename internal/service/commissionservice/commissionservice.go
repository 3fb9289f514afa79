package commissionservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkorchagin/payledger/internal/domain"
)

type PaymentTypeRepo interface {
	FindByName(ctx context.Context, name string) (*domain.PaymentType, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Setting, error)
}

// ErrNoCommissionRate means no commission percentage is configured for the
// requested category. Callers must not silently default.
var ErrNoCommissionRate = errors.New("commission rate is not configured")

type Service struct {
	typeRepo     PaymentTypeRepo
	settingsRepo SettingsRepo
}

func New(typeRepo PaymentTypeRepo, settingsRepo SettingsRepo) *Service {
	return &Service{
		typeRepo:     typeRepo,
		settingsRepo: settingsRepo,
	}
}

// TypeFor resolves a payment category together with its commission rate.
func (s *Service) TypeFor(ctx context.Context, name string) (*domain.PaymentType, error) {
	pt, err := s.typeRepo.FindByName(ctx, name)
	if err != nil {
		zap.L().Error("failed to look up payment type", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	if pt == nil {
		zap.L().Error("payment type is not configured", zap.String("name", name))
		return nil, fmt.Errorf("%w: category %q", ErrNoCommissionRate, name)
	}
	return pt, nil
}

// PercentFor returns the configured commission rate for a category,
// e.g. 0.10 for a 10% commission.
func (s *Service) PercentFor(ctx context.Context, name string) (decimal.Decimal, error) {
	pt, err := s.TypeFor(ctx, name)
	if err != nil {
		return decimal.Zero, err
	}
	return pt.Commission, nil
}

// ReferralRate returns the flat percentage of a charged commission that is
// shared with the referrer.
func (s *Service) ReferralRate(ctx context.Context) (decimal.Decimal, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to fetch settings", zap.Error(err))
		return decimal.Zero, err
	}
	if settings == nil {
		zap.L().Error("referral commission rate is not configured")
		return decimal.Zero, fmt.Errorf("%w: referral commission", ErrNoCommissionRate)
	}
	return settings.ReferralCommission, nil
}
