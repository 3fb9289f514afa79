package service

import (
	"github.com/mkorchagin/payledger/internal/handlers/auth"
	"github.com/mkorchagin/payledger/internal/pg"
	"github.com/mkorchagin/payledger/internal/repo"
	"github.com/mkorchagin/payledger/internal/service/addressservice"
	"github.com/mkorchagin/payledger/internal/service/authservice"
	"github.com/mkorchagin/payledger/internal/service/commissionservice"
	"github.com/mkorchagin/payledger/internal/service/paymentservice"
	"github.com/mkorchagin/payledger/internal/service/referralservice"
	"github.com/mkorchagin/payledger/internal/service/statservice"
	"github.com/mkorchagin/payledger/internal/service/transactionservice"
	pkgauth "github.com/mkorchagin/payledger/pkg/auth"
	"github.com/mkorchagin/payledger/pkg/notify"
)

type Services struct {
	AuthService        auth.Service
	CommissionService  *commissionservice.Service
	PaymentService     *paymentservice.Service
	TransactionService *transactionservice.Service
	ReferralService    *referralservice.Service
	AddressService     *addressservice.Service
	StatService        *statservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier notify.Notifier) *Services {
	commissionService := commissionservice.New(repo.PaymentTypeRepo, repo.SettingsRepo)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.UserRepo, commissionService)
	referralService := referralservice.New(repo.PaymentRepo, repo.UserRepo, commissionService, paymentService)
	transactionService := transactionservice.New(repo.PaymentRepo, repo.TransactionRepo, repo.UserRepo, txManager, referralService)
	addressService := addressservice.New(repo.AddressRepo, repo.NoticeRepo, notifier)
	statService := statservice.New(repo.PaymentRepo, repo.UserRepo, commissionService)
	authService := authservice.New(repo.UserRepo, repo.SettingsRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		CommissionService:  commissionService,
		PaymentService:     paymentService,
		TransactionService: transactionService,
		ReferralService:    referralService,
		AddressService:     addressService,
		StatService:        statService,
	}
}
