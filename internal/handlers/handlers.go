package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mkorchagin/payledger/docs"
	addresshandlers "github.com/mkorchagin/payledger/internal/handlers/addresses"
	authhandlers "github.com/mkorchagin/payledger/internal/handlers/auth"
	paymenthandlers "github.com/mkorchagin/payledger/internal/handlers/payments"
	statshandlers "github.com/mkorchagin/payledger/internal/handlers/stats"
	"github.com/mkorchagin/payledger/internal/metrics"
	mw "github.com/mkorchagin/payledger/internal/middleware"
	"github.com/mkorchagin/payledger/internal/repo"
	"github.com/mkorchagin/payledger/internal/service"
	"github.com/mkorchagin/payledger/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	Finance(w http.ResponseWriter, r *http.Request)
}

type AddressesHandler interface {
	Free(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	PaymentsHandler  PaymentsHandler
	StatsHandler     StatsHandler
	AddressesHandler AddressesHandler
}

func New(s *service.Services, r *repo.Repositories) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		PaymentsHandler:  paymenthandlers.New(s.PaymentService, s.TransactionService, r.PaymentRepo, r.UserRepo),
		StatsHandler:     statshandlers.New(s.StatService),
		AddressesHandler: addresshandlers.New(s.AddressService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		mw.HTTPMetrics,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/users/balance", h.PaymentsHandler.GetBalance)
			r.Post("/payments", h.PaymentsHandler.Create)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Get("/payments", h.PaymentsHandler.List)
				r.Route("/payments/{id}", func(r chi.Router) {
					r.Post("/confirm", h.PaymentsHandler.Confirm)
					r.Post("/cancel", h.PaymentsHandler.Cancel)
				})
				r.Get("/statistics/finance", h.StatsHandler.Finance)
				r.Get("/addresses/free", h.AddressesHandler.Free)
			})
		})
	})

	return r
}
