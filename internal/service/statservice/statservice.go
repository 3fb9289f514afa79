package statservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/pkg/money"
)

type PaymentRepo interface {
	SumPaidAmountByMethod(ctx context.Context, method domain.PaymentMethod) (decimal.Decimal, error)
	SumPaidCommission(ctx context.Context) (decimal.Decimal, error)
	SumPaidFullAmountByType(ctx context.Context, paymentTypeID int) (decimal.Decimal, error)
}

type UserRepo interface {
	SumPositiveBalances(ctx context.Context) (decimal.Decimal, error)
}

type Commission interface {
	TypeFor(ctx context.Context, name string) (*domain.PaymentType, error)
}

type Service struct {
	paymentRepo PaymentRepo
	userRepo    UserRepo
	commission  Commission
}

func New(paymentRepo PaymentRepo, userRepo UserRepo, commission Commission) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		commission:  commission,
	}
}

// FinanceSummary aggregates the paid side of the ledger for the dashboard.
func (s *Service) FinanceSummary(ctx context.Context) (*domain.FinanceSummary, error) {
	topUp, err := s.paymentRepo.SumPaidAmountByMethod(ctx, domain.MethodTopUp)
	if err != nil {
		zap.L().Error("failed to sum top-up payments", zap.Error(err))
		return nil, err
	}
	withdraw, err := s.paymentRepo.SumPaidAmountByMethod(ctx, domain.MethodWithdraw)
	if err != nil {
		zap.L().Error("failed to sum withdraw payments", zap.Error(err))
		return nil, err
	}
	totalCommission, err := s.paymentRepo.SumPaidCommission(ctx)
	if err != nil {
		zap.L().Error("failed to sum commission", zap.Error(err))
		return nil, err
	}

	refType, err := s.commission.TypeFor(ctx, domain.TypeReferralCommission)
	if err != nil {
		return nil, err
	}
	referralPayouts, err := s.paymentRepo.SumPaidFullAmountByType(ctx, refType.ID)
	if err != nil {
		zap.L().Error("failed to sum referral payouts", zap.Error(err))
		return nil, err
	}

	totalBalance, err := s.userRepo.SumPositiveBalances(ctx)
	if err != nil {
		zap.L().Error("failed to sum user balances", zap.Error(err))
		return nil, err
	}

	return &domain.FinanceSummary{
		TotalTopUp:           topUp,
		TotalWithdraw:        withdraw,
		TotalCommission:      totalCommission,
		TotalReferralPayouts: referralPayouts,
		TotalUserBalance:     totalBalance,
		BalanceDifference:    money.Sub(topUp, money.Abs(withdraw)),
	}, nil
}
