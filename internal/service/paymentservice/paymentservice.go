package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/metrics"
	"github.com/mkorchagin/payledger/pkg/money"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Commission interface {
	TypeFor(ctx context.Context, name string) (*domain.PaymentType, error)
}

var (
	ErrPermissionDenied  = errors.New("initiator is not allowed to create payments for other users")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
	ErrUserNotFound      = errors.New("user not found")
	ErrPersistence       = errors.New("payment persistence failure")
)

// CreateParams carries everything the ledger needs to post a new payment.
// FullAmount is always the positive magnitude; the ledger negates stored
// values for withdrawals itself.
type CreateParams struct {
	// InitiatorID is the authenticated actor, nil for trusted system callers
	// such as the referral cascade and the provider reconciliation job.
	InitiatorID *int
	UserID      int
	Type        string
	Method      domain.PaymentMethod
	FullAmount  decimal.Decimal
	ParentID    *int
	// Status overrides the default create status. Only trusted system
	// callers may set it.
	Status      domain.PaymentStatus
	PaidAt      *time.Time
	TxID        *string
	AddressID   *int
	AddressText string
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

// Create validates and persists a new ledger entry. It never touches the
// user balance: balances move only when the payment is later confirmed.
func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Payment, error) {
	zap.L().Info("create - trying create new payment",
		zap.String("type", params.Type),
		zap.String("fullAmount", money.Format(params.FullAmount)))

	if params.FullAmount.Sign() <= 0 {
		zap.L().Error("create - invalid payment amount",
			zap.String("type", params.Type),
			zap.String("fullAmount", money.Format(params.FullAmount)))
		return nil, ErrInvalidAmount
	}

	user, err := s.userRepo.FindByID(ctx, params.UserID)
	if err != nil {
		zap.L().Error("create - can't load beneficiary", zap.Error(err))
		return nil, ErrPersistence
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.authorize(ctx, params, user); err != nil {
		return nil, err
	}

	if params.Method == domain.MethodWithdraw && !s.isEnoughMoney(user, params.FullAmount) {
		zap.L().Error("create - user does not have money",
			zap.Int("userID", user.ID),
			zap.String("type", params.Type),
			zap.String("fullAmount", money.Format(params.FullAmount)))
		return nil, ErrInsufficientFunds
	}

	paymentType, err := s.commission.TypeFor(ctx, params.Type)
	if err != nil {
		return nil, err
	}

	commission := money.Mul(params.FullAmount, paymentType.Commission)
	amount := money.Sub(params.FullAmount, commission)
	fullAmount := params.FullAmount

	// Withdrawals are stored as negative ledger entries.
	if params.Method == domain.MethodWithdraw {
		fullAmount = money.Neg(fullAmount)
		amount = money.Neg(amount)
		commission = money.Neg(commission)
	}

	status := params.Status
	if status == "" {
		status = domain.StatusCreate
	}

	payment := &domain.Payment{
		UserID:           params.UserID,
		PaymentTypeID:    paymentType.ID,
		Method:           params.Method,
		Status:           status,
		FullAmount:       fullAmount,
		Amount:           amount,
		CommissionAmount: commission,
		ParentID:         params.ParentID,
		TxID:             params.TxID,
		AddressID:        params.AddressID,
		Description:      description(params),
		PaidAt:           params.PaidAt,
	}

	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		zap.L().Error("create - can't create new payment",
			zap.String("type", params.Type),
			zap.String("fullAmount", money.Format(params.FullAmount)),
			zap.Error(err))
		return nil, ErrPersistence
	}

	metrics.PaymentsCreated.WithLabelValues(string(params.Method), params.Type).Inc()
	zap.L().Info("create - payment created", zap.Int("paymentID", created.ID))
	return created, nil
}

// authorize rejects actors creating payments on behalf of someone else
// without an elevated role.
func (s *Service) authorize(ctx context.Context, params CreateParams, beneficiary *domain.User) error {
	if params.InitiatorID == nil || *params.InitiatorID == beneficiary.ID {
		return nil
	}
	initiator, err := s.userRepo.FindByID(ctx, *params.InitiatorID)
	if err != nil {
		zap.L().Error("create - can't load initiator", zap.Error(err))
		return ErrPersistence
	}
	if initiator == nil || initiator.Role != domain.RoleAdmin {
		zap.L().Error("create - initiator lacks permission",
			zap.Int("initiatorID", *params.InitiatorID),
			zap.Int("userID", beneficiary.ID))
		return ErrPermissionDenied
	}
	return nil
}

func (s *Service) isEnoughMoney(user *domain.User, fullAmount decimal.Decimal) bool {
	zap.L().Info("create - user balance",
		zap.Int("userID", user.ID),
		zap.String("balance", money.Format(user.Balance)),
		zap.String("fullAmount", money.Format(fullAmount)))
	return money.Cmp(user.Balance, fullAmount) >= 0
}

func description(params CreateParams) string {
	if params.Method == domain.MethodTopUp {
		return "Balance top-up"
	}
	if params.AddressText != "" {
		return "Withdrawal to " + params.AddressText
	}
	return "Withdrawal"
}
