package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	_ "github.com/constella/constella/docs"
	"github.com/constella/constella/internal/config"
	"github.com/constella/constella/internal/handlers/googleauth"
	"github.com/constella/constella/internal/handlers/merchantauth"
	"github.com/constella/constella/internal/handlers/passkey"
	"github.com/constella/constella/internal/handlers/payments"
	"github.com/constella/constella/internal/handlers/purchase"
	"github.com/constella/constella/internal/service"
	"github.com/constella/constella/pkg/auth"
	"github.com/constella/constella/pkg/utils"
)

type MerchantAuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	Claimed(w http.ResponseWriter, r *http.Request)
	GetByNonce(w http.ResponseWriter, r *http.Request)
}

type GoogleAuthHandler interface {
	Redirect(w http.ResponseWriter, r *http.Request)
	Callback(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	Claim(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type PasskeyHandler interface {
	RegisterStart(w http.ResponseWriter, r *http.Request)
	RegisterFinish(w http.ResponseWriter, r *http.Request)
	LoginStart(w http.ResponseWriter, r *http.Request)
	LoginFinish(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	CheckUsername(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandlers struct {
	AuthHandler    MerchantAuthHandler
	PaymentHandler PaymentHandler

	jwtService auth.JWTServiceInterface
}

func NewPayments(s *service.PaymentsServices) *PaymentsHandlers {
	return &PaymentsHandlers{
		AuthHandler:    merchantauth.New(s.MerchantService),
		PaymentHandler: payments.New(s.PaymentService),
		jwtService:     s.JWTService,
	}
}

func (h *PaymentsHandlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		corsMiddleware(),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", healthCheck)

	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(10, 1*time.Minute))
			r.Post("/signup", h.AuthHandler.Signup)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService, auth.RoleMerchant))
			r.Get("/me", h.AuthHandler.Me)
		})
	})
	r.Route("/api/payments", func(r chi.Router) {
		r.Get("/{nonce}", h.PaymentHandler.GetByNonce)

		// Creation is consumer-facing: the end user supplies the nonce
		// before any merchant is involved.
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(30, 1*time.Minute))
			r.Post("/create", h.PaymentHandler.Create)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService, auth.RoleMerchant))
			r.Post("/claim", h.PaymentHandler.Claim)
			r.Get("/balance", h.PaymentHandler.Balance)
			r.Get("/claimed", h.PaymentHandler.Claimed)
		})
	})

	return r
}

type StorefrontHandlers struct {
	GoogleAuthHandler GoogleAuthHandler
	PurchaseHandler   PurchaseHandler

	jwtService auth.JWTServiceInterface
}

func NewStorefront(cfg *config.StorefrontConfig, s *service.StorefrontServices) *StorefrontHandlers {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}

	return &StorefrontHandlers{
		GoogleAuthHandler: googleauth.New(s.UserService, oauthConfig, cfg.FrontendURL),
		PurchaseHandler:   purchase.New(s.PurchaseService),
		jwtService:        s.JWTService,
	}
}

func (h *StorefrontHandlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		corsMiddleware(),
	)
	r.Get("/health", healthCheck)

	r.Route("/auth/google", func(r chi.Router) {
		r.Use(httprate.LimitByIP(20, 1*time.Minute))
		r.Get("/", h.GoogleAuthHandler.Redirect)
		r.Get("/callback", h.GoogleAuthHandler.Callback)
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/logout", h.PurchaseHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService, auth.RoleUser))
			r.Post("/claim", h.PurchaseHandler.Claim)
			r.Get("/user", h.PurchaseHandler.GetUser)
			r.Post("/purchase", h.PurchaseHandler.Purchase)
			r.Post("/reset", h.PurchaseHandler.Reset)
		})
	})

	return r
}

type WalletHandlers struct {
	PasskeyHandler PasskeyHandler

	jwtService auth.JWTServiceInterface
}

func NewWallet(cfg *config.WalletConfig, s *service.WalletServices) *WalletHandlers {
	return &WalletHandlers{
		PasskeyHandler: passkey.New(s.WalletService, cfg.AdminKey),
		jwtService:     s.JWTService,
	}
}

func (h *WalletHandlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		corsMiddleware(),
	)
	r.Get("/health", healthCheck)

	r.Route("/api/users", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(30, 1*time.Minute))
			r.Post("/register/start", h.PasskeyHandler.RegisterStart)
			r.Post("/register/finish", h.PasskeyHandler.RegisterFinish)
			r.Post("/login/start", h.PasskeyHandler.LoginStart)
			r.Post("/login/finish", h.PasskeyHandler.LoginFinish)
		})

		r.Get("/check-username/{username}", h.PasskeyHandler.CheckUsername)
		r.Delete("/{username}", h.PasskeyHandler.DeleteUser)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService, auth.RoleWallet))
			r.Get("/", h.PasskeyHandler.Profile)
			r.Get("/profile", h.PasskeyHandler.Profile)
		})
	})

	return r
}

func corsMiddleware() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Key"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}
