package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{"Create to paid", StatusCreate, StatusPaid, true},
		{"Create to cancel", StatusCreate, StatusCancel, true},
		{"Create to expired", StatusCreate, StatusExpired, true},
		{"Paid is terminal", StatusPaid, StatusCancel, false},
		{"Paid can't re-enter create", StatusPaid, StatusCreate, false},
		{"Cancel is terminal", StatusCancel, StatusPaid, false},
		{"Expired is terminal", StatusExpired, StatusPaid, false},
		{"Unknown status moves nowhere", PaymentStatus("bogus"), StatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestPaymentStatusTerminal(t *testing.T) {
	assert.False(t, StatusCreate.Terminal())
	assert.True(t, StatusPaid.Terminal())
	assert.True(t, StatusCancel.Terminal())
	assert.True(t, StatusExpired.Terminal())
}
