package service

import (
	"github.com/constella/constella/internal/config"
	"github.com/constella/constella/internal/handlers/googleauth"
	"github.com/constella/constella/internal/handlers/merchantauth"
	"github.com/constella/constella/internal/handlers/passkey"
	"github.com/constella/constella/internal/handlers/payments"
	"github.com/constella/constella/internal/handlers/purchase"
	"github.com/constella/constella/internal/pricing"
	"github.com/constella/constella/internal/repo"
	"github.com/constella/constella/internal/service/merchantservice"
	"github.com/constella/constella/internal/service/paymentservice"
	"github.com/constella/constella/internal/service/purchaseservice"
	"github.com/constella/constella/internal/service/userservice"
	"github.com/constella/constella/internal/service/walletservice"
	pkgauth "github.com/constella/constella/pkg/auth"
	"github.com/constella/constella/pkg/wallet"
)

type PaymentsServices struct {
	MerchantService merchantauth.Service
	PaymentService  payments.Service
	JWTService      pkgauth.JWTServiceInterface
}

func NewPayments(cfg *config.PaymentsConfig, repos *repo.PaymentsRepositories) *PaymentsServices {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret, "constella-payments")

	return &PaymentsServices{
		MerchantService: merchantservice.New(repos.MerchantRepo, &pkgauth.HashService{}, jwtService),
		PaymentService:  paymentservice.New(repos.PaymentRepo, &wallet.Generator{}, pricing.NewFixed(cfg.ClaimAmount)),
		JWTService:      jwtService,
	}
}

type StorefrontServices struct {
	UserService     googleauth.Service
	PurchaseService purchase.Service
	JWTService      pkgauth.JWTServiceInterface
}

func NewStorefront(cfg *config.StorefrontConfig, repos *repo.StorefrontRepositories, payments purchaseservice.PaymentsClient) *StorefrontServices {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret, "constella-storefront")
	merchant := purchaseservice.MerchantCredentials{
		Username: cfg.MerchantUsername,
		Password: cfg.MerchantPassword,
	}

	return &StorefrontServices{
		UserService:     userservice.New(repos.UserRepo, jwtService),
		PurchaseService: purchaseservice.New(repos.NonceRepo, repos.Users, payments, merchant, cfg.MinPurchaseAmount),
		JWTService:      jwtService,
	}
}

type WalletServices struct {
	WalletService passkey.Service
	JWTService    pkgauth.JWTServiceInterface
}

func NewWallet(cfg *config.WalletConfig, repos *repo.WalletRepositories, ceremony walletservice.Ceremony) *WalletServices {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret, "constella-wallet")

	return &WalletServices{
		WalletService: walletservice.New(repos.WalletUserRepo, ceremony, &wallet.Generator{}, jwtService),
		JWTService:    jwtService,
	}
}
