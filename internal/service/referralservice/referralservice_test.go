package referralservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/internal/service/paymentservice"
)

type mocks struct {
	paymentRepo *MockPaymentRepo
	userRepo    *MockUserRepo
	commission  *MockCommission
	payments    *MockPaymentCreator
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		paymentRepo: NewMockPaymentRepo(ctrl),
		userRepo:    NewMockUserRepo(ctrl),
		commission:  NewMockCommission(ctrl),
		payments:    NewMockPaymentCreator(ctrl),
	}
	service := New(m.paymentRepo, m.userRepo, m.commission, m.payments)
	defer ctrl.Finish()
	return service, m
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func refType() *domain.PaymentType {
	return &domain.PaymentType{ID: 2, Name: domain.TypeReferralCommission, Commission: decimal.Zero}
}

func commissionTxn() *domain.Transaction {
	return &domain.Transaction{
		ID:               100,
		PaymentID:        10,
		FullAmount:       decimal.RequireFromString("900"),
		Amount:           decimal.RequireFromString("891"),
		CommissionAmount: decimal.RequireFromString("9"),
	}
}

func TestHandlePaysReferrer(t *testing.T) {
	service, m := NewMock(t)
	referrer := 7

	m.commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).Return(refType(), nil)
	m.paymentRepo.EXPECT().FindByID(gomock.Any(), 10).
		Return(&domain.Payment{ID: 10, UserID: 42, PaymentTypeID: 1}, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 42).
		Return(&domain.User{ID: 42, Referrer: &referrer}, nil)
	m.paymentRepo.EXPECT().ExistsByParentAndType(gomock.Any(), 100, 2).Return(false, nil)
	m.commission.EXPECT().ReferralRate(gomock.Any()).Return(dec(t, "0.1"), nil)
	m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params paymentservice.CreateParams) (*domain.Payment, error) {
			assert.Equal(t, 7, params.UserID)
			assert.Equal(t, domain.TypeReferralCommission, params.Type)
			assert.Equal(t, domain.MethodTopUp, params.Method)
			assert.Equal(t, 100, *params.ParentID)
			// 10% of the 9 commission.
			assert.True(t, params.FullAmount.Equal(dec(t, "0.9")))
			return &domain.Payment{ID: 11, UserID: 7}, nil
		})

	service.Handle(context.Background(), commissionTxn())
}

func TestHandleWithdrawCommission(t *testing.T) {
	service, m := NewMock(t)
	referrer := 7

	// Withdrawals store negative amounts; the payout works off the magnitude.
	txn := &domain.Transaction{
		ID:               101,
		PaymentID:        11,
		CommissionAmount: dec(t, "-9"),
	}

	m.commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).Return(refType(), nil)
	m.paymentRepo.EXPECT().FindByID(gomock.Any(), 11).
		Return(&domain.Payment{ID: 11, UserID: 42, PaymentTypeID: 1}, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 42).
		Return(&domain.User{ID: 42, Referrer: &referrer}, nil)
	m.paymentRepo.EXPECT().ExistsByParentAndType(gomock.Any(), 101, 2).Return(false, nil)
	m.commission.EXPECT().ReferralRate(gomock.Any()).Return(dec(t, "0.1"), nil)
	m.payments.EXPECT().Create(gomock.Any(), gomock.Cond(func(x any) bool {
		params, ok := x.(paymentservice.CreateParams)
		return ok && params.FullAmount.Equal(dec(t, "0.9"))
	})).Return(&domain.Payment{ID: 12}, nil)

	service.Handle(context.Background(), txn)
}

func TestHandleZeroCommission(t *testing.T) {
	service, m := NewMock(t)

	m.commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).Return(refType(), nil)
	// No further calls: a commission-free transaction pays nobody.

	service.Handle(context.Background(), &domain.Transaction{ID: 100, PaymentID: 10, CommissionAmount: decimal.Zero})
}

func TestHandleNoReferrer(t *testing.T) {
	service, m := NewMock(t)

	m.commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).Return(refType(), nil)
	m.paymentRepo.EXPECT().FindByID(gomock.Any(), 10).
		Return(&domain.Payment{ID: 10, UserID: 42, PaymentTypeID: 1}, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 42).
		Return(&domain.User{ID: 42, Referrer: nil}, nil)

	service.Handle(context.Background(), commissionTxn())
}

func TestHandleIdempotency(t *testing.T) {
	service, m := NewMock(t)
	referrer := 7

	m.commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).Return(refType(), nil)
	m.paymentRepo.EXPECT().FindByID(gomock.Any(), 10).
		Return(&domain.Payment{ID: 10, UserID: 42, PaymentTypeID: 1}, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 42).
		Return(&domain.User{ID: 42, Referrer: &referrer}, nil)
	// A payout for this transaction already exists, so no second one appears.
	m.paymentRepo.EXPECT().ExistsByParentAndType(gomock.Any(), 100, 2).Return(true, nil)

	service.Handle(context.Background(), commissionTxn())
}

func TestHandleStopsOnReferralPayout(t *testing.T) {
	service, m := NewMock(t)

	m.commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).Return(refType(), nil)
	// The originating payment is itself a referral payout: no second level.
	m.paymentRepo.EXPECT().FindByID(gomock.Any(), 10).
		Return(&domain.Payment{ID: 10, UserID: 42, PaymentTypeID: 2}, nil)

	txn := commissionTxn()
	txn.CommissionAmount = dec(t, "0.09")
	service.Handle(context.Background(), txn)
}

func TestHandleDustThreshold(t *testing.T) {
	service, m := NewMock(t)
	referrer := 7

	// 0.00000009 commission at 10% truncates to zero.
	txn := &domain.Transaction{ID: 100, PaymentID: 10, CommissionAmount: dec(t, "0.00000009")}

	m.commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).Return(refType(), nil)
	m.paymentRepo.EXPECT().FindByID(gomock.Any(), 10).
		Return(&domain.Payment{ID: 10, UserID: 42, PaymentTypeID: 1}, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 42).
		Return(&domain.User{ID: 42, Referrer: &referrer}, nil)
	m.paymentRepo.EXPECT().ExistsByParentAndType(gomock.Any(), 100, 2).Return(false, nil)
	m.commission.EXPECT().ReferralRate(gomock.Any()).Return(dec(t, "0.1"), nil)

	service.Handle(context.Background(), txn)
}

func TestHandleMissingCategory(t *testing.T) {
	service, m := NewMock(t)

	m.commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).
		Return(nil, errors.New("not configured"))

	// Absorbed: the caller's confirmation already committed.
	service.Handle(context.Background(), commissionTxn())
}

func TestHandleCreateFailureIsAbsorbed(t *testing.T) {
	service, m := NewMock(t)
	referrer := 7

	m.commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).Return(refType(), nil)
	m.paymentRepo.EXPECT().FindByID(gomock.Any(), 10).
		Return(&domain.Payment{ID: 10, UserID: 42, PaymentTypeID: 1}, nil)
	m.userRepo.EXPECT().FindByID(gomock.Any(), 42).
		Return(&domain.User{ID: 42, Referrer: &referrer}, nil)
	m.paymentRepo.EXPECT().ExistsByParentAndType(gomock.Any(), 100, 2).Return(false, nil)
	m.commission.EXPECT().ReferralRate(gomock.Any()).Return(dec(t, "0.1"), nil)
	m.payments.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	assert.NotPanics(t, func() {
		service.Handle(context.Background(), commissionTxn())
	})
}
