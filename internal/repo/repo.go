package repo

import (
	"github.com/constella/constella/internal/pg"
	merchantrepo "github.com/constella/constella/internal/repo/merchant-repo"
	noncerepo "github.com/constella/constella/internal/repo/nonce-repo"
	paymentrepo "github.com/constella/constella/internal/repo/payment-repo"
	userrepo "github.com/constella/constella/internal/repo/user-repo"
	walletuserrepo "github.com/constella/constella/internal/repo/walletuser-repo"
	"github.com/constella/constella/internal/service/merchantservice"
	"github.com/constella/constella/internal/service/paymentservice"
	"github.com/constella/constella/internal/service/purchaseservice"
	"github.com/constella/constella/internal/service/userservice"
	"github.com/constella/constella/internal/service/walletservice"
)

type PaymentsRepositories struct {
	MerchantRepo merchantservice.Repo
	PaymentRepo  paymentservice.Repo
}

func NewPayments(conn pg.Database, txManager pg.TXManager) *PaymentsRepositories {
	return &PaymentsRepositories{
		MerchantRepo: merchantrepo.New(conn),
		PaymentRepo:  paymentrepo.New(conn, txManager),
	}
}

type StorefrontRepositories struct {
	UserRepo  userservice.Repo
	NonceRepo purchaseservice.NonceRepo
	Users     purchaseservice.UserRepo
}

func NewStorefront(conn pg.Database) *StorefrontRepositories {
	users := userrepo.New(conn)
	return &StorefrontRepositories{
		UserRepo:  users,
		NonceRepo: noncerepo.New(conn),
		Users:     users,
	}
}

type WalletRepositories struct {
	WalletUserRepo walletservice.Repo
}

func NewWallet(conn pg.Database, txManager pg.TXManager) *WalletRepositories {
	return &WalletRepositories{
		WalletUserRepo: walletuserrepo.New(conn, txManager),
	}
}
