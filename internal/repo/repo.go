package repo

import (
	"github.com/mkorchagin/payledger/internal/pg"
	addressrepo "github.com/mkorchagin/payledger/internal/repo/address-repo"
	noticerepo "github.com/mkorchagin/payledger/internal/repo/notice-repo"
	paymentrepo "github.com/mkorchagin/payledger/internal/repo/payment-repo"
	paymenttyperepo "github.com/mkorchagin/payledger/internal/repo/paymenttype-repo"
	settingsrepo "github.com/mkorchagin/payledger/internal/repo/settings-repo"
	transactionrepo "github.com/mkorchagin/payledger/internal/repo/transaction-repo"
	userrepo "github.com/mkorchagin/payledger/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	PaymentRepo     *paymentrepo.Repository
	TransactionRepo *transactionrepo.Repository
	PaymentTypeRepo *paymenttyperepo.Repository
	SettingsRepo    *settingsrepo.Repository
	AddressRepo     *addressrepo.Repository
	NoticeRepo      *noticerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		PaymentRepo:     paymentrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		PaymentTypeRepo: paymenttyperepo.New(conn),
		SettingsRepo:    settingsrepo.New(conn),
		AddressRepo:     addressrepo.New(conn),
		NoticeRepo:      noticerepo.New(conn),
	}
}
