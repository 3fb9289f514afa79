package dto

import (
	"time"

	"github.com/mkorchagin/payledger/internal/domain"
	"github.com/mkorchagin/payledger/pkg/money"
)

type PaymentCreateRequestDTO struct {
	UserID     int    `json:"user_id" example:"42"`
	Type       string `json:"type" example:"real_money"`
	Method     string `json:"method" example:"top_up"`
	FullAmount string `json:"full_amount" example:"900"`
	Address    string `json:"address,omitempty" example:"0x6e8a..."`
}

type PaymentConfirmRequestDTO struct {
	TxID *string `json:"txid,omitempty" example:"f01a9c..."`
}

type PaymentResponseDTO struct {
	ID               int        `json:"id" example:"1"`
	UserID           int        `json:"user_id" example:"42"`
	Method           string     `json:"method" example:"top_up"`
	Status           string     `json:"status" example:"create"`
	FullAmount       string     `json:"full_amount" example:"900.00000000"`
	Amount           string     `json:"amount" example:"891.00000000"`
	CommissionAmount string     `json:"commission_amount" example:"9.00000000"`
	Description      string     `json:"description" example:"Balance top-up"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func NewPaymentResponse(p *domain.Payment) PaymentResponseDTO {
	return PaymentResponseDTO{
		ID:               p.ID,
		UserID:           p.UserID,
		Method:           string(p.Method),
		Status:           string(p.Status),
		FullAmount:       money.Format(p.FullAmount),
		Amount:           money.Format(p.Amount),
		CommissionAmount: money.Format(p.CommissionAmount),
		Description:      p.Description,
		PaidAt:           p.PaidAt,
		CreatedAt:        p.CreatedAt,
	}
}

type BalanceResponseDTO struct {
	Balance string `json:"balance" example:"891.00000000"`
}

type FreeAddressesResponseDTO struct {
	Free int `json:"free" example:"17"`
}

type FinanceSummaryResponseDTO struct {
	TotalTopUp           string `json:"total_top_up" example:"1782.00000000"`
	TotalWithdraw        string `json:"total_withdraw" example:"-891.00000000"`
	TotalCommission      string `json:"total_commission" example:"18.00000000"`
	TotalReferralPayouts string `json:"total_referral_payouts" example:"1.80000000"`
	TotalUserBalance     string `json:"total_user_balance" example:"891.00000000"`
	BalanceDifference    string `json:"balance_difference" example:"891.00000000"`
}
