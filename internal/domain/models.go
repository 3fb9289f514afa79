package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Payment categories seeded by migrations.
const (
	TypeRealMoney          = "real_money"
	TypeReferralCommission = "referral_commission"
)

type PaymentMethod string

const (
	MethodTopUp    PaymentMethod = "top_up"
	MethodWithdraw PaymentMethod = "withdraw"
)

type PaymentStatus string

const (
	StatusCreate  PaymentStatus = "create"
	StatusPaid    PaymentStatus = "paid"
	StatusCancel  PaymentStatus = "cancel"
	StatusExpired PaymentStatus = "expired"
)

// transitions is the closed set of legal status moves. Paid, cancel and
// expired are terminal.
var transitions = map[PaymentStatus]map[PaymentStatus]struct{}{
	StatusCreate: {
		StatusPaid:    {},
		StatusCancel:  {},
		StatusExpired: {},
	},
}

func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

func (s PaymentStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

type User struct {
	ID           int             `db:"id"`
	Login        string          `db:"login"`
	PasswordHash string          `db:"password_hash"`
	Role         string          `db:"role"`
	Balance      decimal.Decimal `db:"balance"`
	Referrer     *int            `db:"referrer"`
	CreatedAt    time.Time       `db:"created_at"`
}

type PaymentType struct {
	ID         int             `db:"id"`
	Name       string          `db:"name"`
	Commission decimal.Decimal `db:"commission"`
}

type Payment struct {
	ID               int             `db:"id"`
	UserID           int             `db:"user_id"`
	PaymentTypeID    int             `db:"payment_type_id"`
	Method           PaymentMethod   `db:"method"`
	Status           PaymentStatus   `db:"status"`
	FullAmount       decimal.Decimal `db:"full_amount"`
	Amount           decimal.Decimal `db:"amount"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
	ParentID         *int            `db:"parent_id"`
	TxID             *string         `db:"txid"`
	AddressID        *int            `db:"address_id"`
	Description      string          `db:"description"`
	PaidAt           *time.Time      `db:"paid_at"`
	CreatedAt        time.Time       `db:"created_at"`
}

// Transaction is the immutable balance-mutation record created exactly once
// when a payment reaches paid status.
type Transaction struct {
	ID               int             `db:"id"`
	PaymentID        int             `db:"payment_id"`
	FullAmount       decimal.Decimal `db:"full_amount"`
	Amount           decimal.Decimal `db:"amount"`
	CommissionAmount decimal.Decimal `db:"commission_amount"`
	OldBalance       decimal.Decimal `db:"old_balance"`
	NewBalance       decimal.Decimal `db:"new_balance"`
	CreatedAt        time.Time       `db:"created_at"`
}

type Address struct {
	ID     int    `db:"id"`
	Value  string `db:"value"`
	UserID *int   `db:"user_id"`
}

type Setting struct {
	ID                 int             `db:"id"`
	SiteName           string          `db:"site_name"`
	ReferralCommission decimal.Decimal `db:"referral_commission"`
	InvitationOnly     bool            `db:"invitation_only"`
}

type Notice struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// BalanceMismatch is a user whose stored balance drifted away from the
// new_balance of their latest transaction.
type BalanceMismatch struct {
	UserID      int             `db:"user_id"`
	Balance     decimal.Decimal `db:"balance"`
	LastBalance decimal.Decimal `db:"last_balance"`
}

// FinanceSummary aggregates paid payments for the back-office dashboard.
type FinanceSummary struct {
	TotalTopUp           decimal.Decimal
	TotalWithdraw        decimal.Decimal
	TotalCommission      decimal.Decimal
	TotalReferralPayouts decimal.Decimal
	TotalUserBalance     decimal.Decimal
	BalanceDifference    decimal.Decimal
}
