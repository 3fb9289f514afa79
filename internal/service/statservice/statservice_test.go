package statservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkorchagin/payledger/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockPaymentRepo, *MockUserRepo, *MockCommission) {
	ctrl := gomock.NewController(t)
	paymentRepo := NewMockPaymentRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	commission := NewMockCommission(ctrl)
	service := New(paymentRepo, userRepo, commission)
	defer ctrl.Finish()
	return service, paymentRepo, userRepo, commission
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	assert.NoError(t, err)
	return d
}

func TestFinanceSummary(t *testing.T) {
	service, paymentRepo, userRepo, commission := NewMock(t)

	paymentRepo.EXPECT().SumPaidAmountByMethod(gomock.Any(), domain.MethodTopUp).
		Return(dec(t, "1782"), nil)
	paymentRepo.EXPECT().SumPaidAmountByMethod(gomock.Any(), domain.MethodWithdraw).
		Return(dec(t, "-891"), nil)
	paymentRepo.EXPECT().SumPaidCommission(gomock.Any()).Return(dec(t, "18"), nil)
	commission.EXPECT().TypeFor(gomock.Any(), domain.TypeReferralCommission).
		Return(&domain.PaymentType{ID: 2}, nil)
	paymentRepo.EXPECT().SumPaidFullAmountByType(gomock.Any(), 2).Return(dec(t, "1.8"), nil)
	userRepo.EXPECT().SumPositiveBalances(gomock.Any()).Return(dec(t, "891"), nil)

	summary, err := service.FinanceSummary(context.Background())
	assert.NoError(t, err)
	assert.True(t, summary.TotalTopUp.Equal(dec(t, "1782")))
	assert.True(t, summary.TotalWithdraw.Equal(dec(t, "-891")))
	assert.True(t, summary.TotalCommission.Equal(dec(t, "18")))
	assert.True(t, summary.TotalReferralPayouts.Equal(dec(t, "1.8")))
	assert.True(t, summary.TotalUserBalance.Equal(dec(t, "891")))
	// top-up minus the withdrawn magnitude.
	assert.True(t, summary.BalanceDifference.Equal(dec(t, "891")))
}

func TestFinanceSummaryRepoError(t *testing.T) {
	service, paymentRepo, _, _ := NewMock(t)

	paymentRepo.EXPECT().SumPaidAmountByMethod(gomock.Any(), domain.MethodTopUp).
		Return(decimal.Zero, errors.New("db down"))

	summary, err := service.FinanceSummary(context.Background())
	assert.Error(t, err)
	assert.Nil(t, summary)
}
