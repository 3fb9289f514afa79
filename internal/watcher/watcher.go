// Package watcher runs the scheduled back-office jobs: reconciling pending
// payments against the external payment provider, watching the free address
// pool and auditing user balances against the transaction log.
package watcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkorchagin/payledger/internal/config"
	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/service/transactionservice"
	"github.com/mkorchagin/payledger/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// Provider payment states.
const (
	providerStatusPaid    = "PAID"
	providerStatusExpired = "EXPIRED"
)

var processingPayments sync.Map

// Response is the payment provider's view of a pending payment.
type Response struct {
	PaymentID int        `json:"payment_id"`
	Status    string     `json:"status"`
	TxID      string     `json:"txid,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

type PaymentRepo interface {
	FindPending(ctx context.Context, method domain.PaymentMethod, limit int) ([]domain.Payment, error)
}

type StatusService interface {
	Confirm(ctx context.Context, paymentID int, opts transactionservice.ConfirmOptions) (*domain.Payment, error)
	Expire(ctx context.Context, paymentID int) (*domain.Payment, error)
}

type AddressChecker interface {
	CheckFree(ctx context.Context) error
}

type BalanceAuditor interface {
	FindBalanceMismatches(ctx context.Context) ([]domain.BalanceMismatch, error)
}

type NoticeRepo interface {
	Create(ctx context.Context, notice *domain.Notice) (*domain.Notice, error)
}

type Service struct {
	url             string
	paymentRepo     PaymentRepo
	status          StatusService
	addresses       AddressChecker
	auditor         BalanceAuditor
	noticeRepo      NoticeRepo
	client          clients.HTTPClientI
	limit           uint32
	workerPool      WorkerPoolI
	paymentInterval time.Duration
	addressInterval time.Duration
	auditInterval   time.Duration
}

func New(cfg *config.Config, paymentRepo PaymentRepo, status StatusService, addresses AddressChecker, auditor BalanceAuditor, noticeRepo NoticeRepo, client clients.HTTPClientI) *Service {
	return &Service{
		url:             cfg.ProviderAddress,
		paymentRepo:     paymentRepo,
		status:          status,
		addresses:       addresses,
		auditor:         auditor,
		noticeRepo:      noticeRepo,
		client:          client,
		limit:           1000,
		workerPool:      NewWorkerPool(10),
		paymentInterval: time.Minute,
		addressInterval: time.Minute * 15,
		auditInterval:   time.Minute * 30,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Watcher service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	paymentTicker := time.NewTicker(s.paymentInterval)
	defer paymentTicker.Stop()
	addressTicker := time.NewTicker(s.addressInterval)
	defer addressTicker.Stop()
	auditTicker := time.NewTicker(s.auditInterval)
	defer auditTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping watcher")
			return
		case <-paymentTicker.C:
			s.processPayments(ctx)
		case <-addressTicker.C:
			if err := s.addresses.CheckFree(ctx); err != nil {
				zap.L().Error("Failed to check free addresses", zap.Error(err))
			}
		case <-auditTicker.C:
			s.auditBalances(ctx)
		}
	}
}

func (s *Service) processPayments(ctx context.Context) {
	payments, err := s.paymentRepo.FindPending(ctx, domain.MethodTopUp, int(atomic.LoadUint32(&s.limit)))
	if err != nil {
		zap.L().Error("Failed to fetch pending payments", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, payment := range payments {
		payment := payment

		if _, loaded := processingPayments.LoadOrStore(payment.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPayments.Delete(payment.ID)
				return s.handlePayment(ctx, payment)
			})
			if err != nil {
				processingPayments.Delete(payment.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing payments", zap.Error(err))
	}
}

func (s *Service) handlePayment(ctx context.Context, payment domain.Payment) error {
	url := s.url + "/api/payments/" + strconv.Itoa(payment.ID)

	var (
		statusCode int
		respBody   []byte
		err        error
	)
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, respBody, _, err = s.client.Get(url, nil)
		if err == nil && statusCode != http.StatusTooManyRequests {
			break
		}
		if attempt == maxRetries {
			return fmt.Errorf("failed to check payment %d after %d retries: %w", payment.ID, maxRetries, err)
		}
		time.Sleep(retryInterval * time.Duration(attempt))
	}

	if statusCode == http.StatusNoContent || statusCode == http.StatusNotFound {
		// Provider has not seen the payment yet.
		return nil
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("unexpected provider status %d for payment %d", statusCode, payment.ID)
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("can't decode provider response for payment %d: %w", payment.ID, err)
	}

	switch resp.Status {
	case providerStatusPaid:
		opts := transactionservice.ConfirmOptions{PaidAt: resp.PaidAt}
		if resp.TxID != "" {
			opts.TxID = &resp.TxID
		}
		if _, err := s.status.Confirm(ctx, payment.ID, opts); err != nil {
			if errors.Is(err, transactionservice.ErrPaymentClosed) {
				// An admin closed the payment while we were asking the provider.
				zap.L().Info("Payment already closed during reconciliation", zap.Int("paymentID", payment.ID))
				return nil
			}
			return err
		}
	case providerStatusExpired:
		if _, err := s.status.Expire(ctx, payment.ID); err != nil {
			if errors.Is(err, transactionservice.ErrPaymentClosed) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (s *Service) auditBalances(ctx context.Context) {
	mismatches, err := s.auditor.FindBalanceMismatches(ctx)
	if err != nil {
		zap.L().Error("Failed to audit balances", zap.Error(err))
		return
	}

	for _, m := range mismatches {
		zap.L().Error("User balance differs from transaction log",
			zap.Int("userID", m.UserID),
			zap.String("balance", m.Balance.String()),
			zap.String("lastBalance", m.LastBalance.String()))

		if _, err := s.noticeRepo.Create(ctx, &domain.Notice{
			Title:   "Attention",
			Message: fmt.Sprintf("Balance mismatch for user %d: balance %s, last transaction %s", m.UserID, m.Balance, m.LastBalance),
			Status:  "new",
		}); err != nil {
			zap.L().Error("Can't create balance mismatch notice", zap.Error(err))
		}
	}
}
