package addressservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkorchagin/payledger/internal/domain"
)

type AddressRepo interface {
	CountFree(ctx context.Context) (int, error)
	AssignFree(ctx context.Context, userID int) (*domain.Address, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Address, error)
}

type NoticeRepo interface {
	Create(ctx context.Context, notice *domain.Notice) (*domain.Notice, error)
}

// Notifier is the external alerting hook (Telegram in production).
type Notifier interface {
	Send(text string) error
}

var ErrNoFreeAddresses = errors.New("no free addresses left")

// freeAddressThreshold is the pool size below which operators get alerted.
const freeAddressThreshold = 5

type Service struct {
	addressRepo AddressRepo
	noticeRepo  NoticeRepo
	notifier    Notifier
}

func New(addressRepo AddressRepo, noticeRepo NoticeRepo, notifier Notifier) *Service {
	return &Service{
		addressRepo: addressRepo,
		noticeRepo:  noticeRepo,
		notifier:    notifier,
	}
}

func (s *Service) CountFree(ctx context.Context) (int, error) {
	return s.addressRepo.CountFree(ctx)
}

// Assign gives the user a deposit address, reusing the one already assigned
// to them when present.
func (s *Service) Assign(ctx context.Context, userID int) (*domain.Address, error) {
	existing, err := s.addressRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	assigned, err := s.addressRepo.AssignFree(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assigned == nil {
		zap.L().Error("address pool exhausted", zap.Int("userID", userID))
		return nil, ErrNoFreeAddresses
	}
	return assigned, nil
}

// CheckFree alerts operators when the free address pool runs low.
func (s *Service) CheckFree(ctx context.Context) error {
	count, err := s.addressRepo.CountFree(ctx)
	if err != nil {
		return err
	}
	if count > freeAddressThreshold {
		return nil
	}

	message := fmt.Sprintf("Available address count: %d", count)
	zap.L().Warn("free address pool is low", zap.Int("count", count))

	if _, err := s.noticeRepo.Create(ctx, &domain.Notice{
		Title:   "Attention",
		Message: message,
		Status:  "new",
	}); err != nil {
		zap.L().Error("can't create low address notice", zap.Error(err))
	}

	if err := s.notifier.Send(message); err != nil {
		zap.L().Error("can't send low address alert", zap.Error(err))
	}
	return nil
}
