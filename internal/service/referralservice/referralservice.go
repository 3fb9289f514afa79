package referralservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/metrics"
	"github.com/mkorchagin/payledger/internal/service/paymentservice"
	"github.com/mkorchagin/payledger/pkg/money"
)

type PaymentRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Payment, error)
	ExistsByParentAndType(ctx context.Context, parentID, paymentTypeID int) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Commission interface {
	TypeFor(ctx context.Context, name string) (*domain.PaymentType, error)
	ReferralRate(ctx context.Context) (decimal.Decimal, error)
}

type PaymentCreator interface {
	Create(ctx context.Context, params paymentservice.CreateParams) (*domain.Payment, error)
}

type Service struct {
	paymentRepo PaymentRepo
	userRepo    UserRepo
	commission  Commission
	payments    PaymentCreator
}

func New(paymentRepo PaymentRepo, userRepo UserRepo, commission Commission, payments PaymentCreator) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		commission:  commission,
		payments:    payments,
	}
}

// Handle pays a share of the commission charged on the given transaction to
// the referrer of the transaction's beneficiary. Every rejection branch is
// logged and absorbed: the cascade never fails the confirmation that
// triggered it.
//
// The payout is created in create status and confirmed through the ordinary
// payment lifecycle, which also guards the recursion: a payout confirmation
// carries zero commission, so the cascade stops after one level.
func (s *Service) Handle(ctx context.Context, txn *domain.Transaction) {
	zap.L().Info("referral payment - trying create new payment", zap.Int("transactionID", txn.ID))

	refType, err := s.commission.TypeFor(ctx, domain.TypeReferralCommission)
	if err != nil {
		zap.L().Error("referral payment - referral category is not configured", zap.Error(err))
		return
	}

	commission := money.Abs(txn.CommissionAmount)
	if commission.Sign() <= 0 {
		zap.L().Info("referral payment - transaction does not have commission", zap.Int("transactionID", txn.ID))
		return
	}

	payment, err := s.paymentRepo.FindByID(ctx, txn.PaymentID)
	if err != nil {
		zap.L().Error("referral payment - can't load originating payment", zap.Error(err))
		return
	}
	if payment == nil {
		zap.L().Error("referral payment - originating payment not found", zap.Int("paymentID", txn.PaymentID))
		return
	}
	if payment.PaymentTypeID == refType.ID {
		// Never cascade off a referral payout itself.
		zap.L().Info("referral payment - originating payment is a referral payout", zap.Int("paymentID", payment.ID))
		return
	}

	user, err := s.userRepo.FindByID(ctx, payment.UserID)
	if err != nil {
		zap.L().Error("referral payment - can't load transaction user", zap.Error(err))
		return
	}
	if user == nil || user.Referrer == nil {
		zap.L().Info("referral payment - transaction user not referral", zap.Int("paymentID", payment.ID))
		return
	}

	exists, err := s.paymentRepo.ExistsByParentAndType(ctx, txn.ID, refType.ID)
	if err != nil {
		zap.L().Error("referral payment - can't check existing payout", zap.Error(err))
		return
	}
	if exists {
		zap.L().Info("referral payment - this commission already paid", zap.Int("transactionID", txn.ID))
		return
	}

	rate, err := s.commission.ReferralRate(ctx)
	if err != nil {
		zap.L().Error("referral payment - referral rate is not configured", zap.Error(err))
		return
	}

	referrerAmount := money.Mul(commission, rate)
	if money.Cmp(referrerAmount, money.Dust) <= 0 {
		zap.L().Info("referral payment - referrer commission below dust threshold",
			zap.String("referrerAmount", money.Format(referrerAmount)))
		return
	}

	parentID := txn.ID
	created, err := s.payments.Create(ctx, paymentservice.CreateParams{
		UserID:     *user.Referrer,
		Type:       domain.TypeReferralCommission,
		Method:     domain.MethodTopUp,
		FullAmount: referrerAmount,
		ParentID:   &parentID,
	})
	if err != nil {
		zap.L().Error("referral payment - error while creating new payment", zap.Error(err))
		return
	}

	metrics.ReferralPayouts.Inc()
	zap.L().Info("referral payment - success referral payment created",
		zap.Int("paymentID", created.ID),
		zap.Int("referrerID", *user.Referrer),
		zap.String("fullAmount", money.Format(referrerAmount)))
}
