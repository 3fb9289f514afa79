package transactionservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/metrics"
	"github.com/mkorchagin/payledger/internal/pg"
	"github.com/mkorchagin/payledger/pkg/money"
)

type PaymentRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Payment, error)
	UpdateStatusFrom(ctx context.Context, id int, from, to domain.PaymentStatus, paidAt *time.Time, txid *string) (*domain.Payment, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	UpdateBalance(ctx context.Context, userID int, balance decimal.Decimal) error
}

// Cascade is the referral commission payout triggered by every posted
// transaction. Implementations absorb their own failures.
type Cascade interface {
	Handle(ctx context.Context, txn *domain.Transaction)
}

var (
	// ErrPaymentClosed reports a transition attempted from a terminal
	// status. It is an outcome, not a fault: a concurrent actor simply got
	// there first.
	ErrPaymentClosed   = errors.New("payment already closed")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrUserNotFound    = errors.New("payment user not found")
)

// ConfirmOptions carries provider-supplied confirmation details. Zero values
// mean a manual admin confirmation.
type ConfirmOptions struct {
	TxID   *string
	PaidAt *time.Time
}

type Service struct {
	paymentRepo     PaymentRepo
	transactionRepo TransactionRepo
	userRepo        UserRepo
	txManager       pg.TXManager
	cascade         Cascade
}

func New(paymentRepo PaymentRepo, transactionRepo TransactionRepo, userRepo UserRepo, txManager pg.TXManager, cascade Cascade) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		cascade:         cascade,
	}
}

// Confirm transitions a payment from create to paid and posts the balance
// mutation. The status compare-and-set, the transaction insert and the
// balance update commit as one unit of work; the referral cascade runs after
// the commit and its failures never reach the caller.
func (s *Service) Confirm(ctx context.Context, paymentID int, opts ConfirmOptions) (*domain.Payment, error) {
	paidAt := time.Now()
	if opts.PaidAt != nil {
		paidAt = *opts.PaidAt
	}

	var (
		confirmed *domain.Payment
		txn       *domain.Transaction
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.UpdateStatusFrom(ctx, paymentID, domain.StatusCreate, domain.StatusPaid, &paidAt, opts.TxID)
		if err != nil {
			return err
		}
		if payment == nil {
			return s.closedOrMissing(ctx, paymentID)
		}

		txn, err = s.post(ctx, payment)
		if err != nil {
			return err
		}
		confirmed = payment
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPaymentClosed) && !errors.Is(err, ErrPaymentNotFound) {
			zap.L().Error("confirm - can't confirm payment", zap.Int("paymentID", paymentID), zap.Error(err))
		}
		return nil, err
	}

	metrics.PaymentConfirmations.Inc()
	zap.L().Info("confirm - payment confirmed",
		zap.Int("paymentID", confirmed.ID),
		zap.String("amount", money.Format(confirmed.Amount)))

	s.runCascade(ctx, txn)
	return confirmed, nil
}

// Cancel transitions a payment from create to cancel. No transaction is
// posted and the balance does not move.
func (s *Service) Cancel(ctx context.Context, paymentID int) (*domain.Payment, error) {
	payment, err := s.paymentRepo.UpdateStatusFrom(ctx, paymentID, domain.StatusCreate, domain.StatusCancel, nil, nil)
	if err != nil {
		zap.L().Error("cancel - can't cancel payment", zap.Int("paymentID", paymentID), zap.Error(err))
		return nil, err
	}
	if payment == nil {
		return nil, s.closedOrMissing(ctx, paymentID)
	}

	metrics.PaymentCancellations.Inc()
	zap.L().Info("cancel - payment cancelled", zap.Int("paymentID", payment.ID))
	return payment, nil
}

// Expire transitions a payment from create to expired. Only the background
// reconciliation reaches this state; admins cancel instead.
func (s *Service) Expire(ctx context.Context, paymentID int) (*domain.Payment, error) {
	payment, err := s.paymentRepo.UpdateStatusFrom(ctx, paymentID, domain.StatusCreate, domain.StatusExpired, nil, nil)
	if err != nil {
		zap.L().Error("expire - can't expire payment", zap.Int("paymentID", paymentID), zap.Error(err))
		return nil, err
	}
	if payment == nil {
		return nil, s.closedOrMissing(ctx, paymentID)
	}

	zap.L().Info("expire - payment expired", zap.Int("paymentID", payment.ID))
	return payment, nil
}

// post writes the immutable transaction record and moves the beneficiary
// balance. new_balance = old_balance + amount, exact at scale 8.
func (s *Service) post(ctx context.Context, payment *domain.Payment) (*domain.Transaction, error) {
	user, err := s.userRepo.FindByID(ctx, payment.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldBalance := user.Balance
	newBalance := money.Add(oldBalance, payment.Amount)

	txn := &domain.Transaction{
		PaymentID:        payment.ID,
		FullAmount:       payment.FullAmount,
		Amount:           payment.Amount,
		CommissionAmount: payment.CommissionAmount,
		OldBalance:       oldBalance,
		NewBalance:       newBalance,
	}
	created, err := s.transactionRepo.Create(ctx, txn)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateBalance(ctx, payment.UserID, newBalance); err != nil {
		return nil, err
	}

	zap.L().Info("confirm - transaction posted",
		zap.Int("transactionID", created.ID),
		zap.Int("paymentID", payment.ID),
		zap.String("oldBalance", money.Format(oldBalance)),
		zap.String("newBalance", money.Format(newBalance)))
	return created, nil
}

func (s *Service) closedOrMissing(ctx context.Context, paymentID int) error {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}
	return ErrPaymentClosed
}

// runCascade isolates the referral payout from the primary confirmation:
// whatever happens inside never rolls back or fails the confirm.
func (s *Service) runCascade(ctx context.Context, txn *domain.Transaction) {
	if s.cascade == nil || txn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("confirm - referral cascade panicked", zap.Any("panic", r))
		}
	}()
	s.cascade.Handle(ctx, txn)
}
