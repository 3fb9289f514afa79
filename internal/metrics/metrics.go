package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PaymentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_created_total",
			Help: "Total payments created by the ledger",
		},
		[]string{"method", "type"},
	)
	PaymentConfirmations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_confirmations_total",
			Help: "Total payments confirmed (transitioned to paid)",
		},
	)
	PaymentCancellations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_cancellations_total",
			Help: "Total payments cancelled",
		},
	)
	ReferralPayouts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "referral_payouts_total",
			Help: "Total referral commission payments created by the cascade",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(PaymentsCreated)
	prometheus.MustRegister(PaymentConfirmations)
	prometheus.MustRegister(PaymentCancellations)
	prometheus.MustRegister(ReferralPayouts)
}
