package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/constella/constella/docs"
	"github.com/constella/constella/internal/config"
	"github.com/constella/constella/internal/handlers/googleauth"
	"github.com/constella/constella/internal/handlers/merchantauth"
	"github.com/constella/constella/internal/handlers/passkey"
	"github.com/constella/constella/internal/handlers/payments"
	"github.com/constella/constella/internal/handlers/purchase"
	"github.com/constella/constella/internal/service"
	"github.com/constella/constella/pkg/auth"
)

func TestNewPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.PaymentsServices{
		MerchantService: merchantauth.NewMockService(ctrl),
		PaymentService:  payments.NewMockService(ctrl),
		JWTService:      auth.NewJWTService("test-secret", "test-issuer"),
	}

	h := NewPayments(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestNewStorefront(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.StorefrontConfig{
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURL:  "http://localhost:3001/auth/google/callback",
		FrontendURL:        "http://localhost:3000",
	}
	services := &service.StorefrontServices{
		UserService:     googleauth.NewMockService(ctrl),
		PurchaseService: purchase.NewMockService(ctrl),
		JWTService:      auth.NewJWTService("test-secret", "test-issuer"),
	}

	h := NewStorefront(cfg, services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestNewWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.WalletConfig{AdminKey: "admin-key"}
	services := &service.WalletServices{
		WalletService: passkey.NewMockService(ctrl),
		JWTService:    auth.NewJWTService("test-secret", "test-issuer"),
	}

	h := NewWallet(cfg, services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestPaymentsInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockMerchantAuthHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)

	mockAuthHandler.EXPECT().Signup(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetByNonce(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()

	h := &PaymentsHandlers{
		AuthHandler:    mockAuthHandler,
		PaymentHandler: mockPaymentHandler,
		jwtService:     auth.NewJWTService("test-secret", "test-issuer"),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/signup", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/auth/me", http.StatusUnauthorized},
		{"POST", "/api/payments/create", http.StatusOK},
		{"POST", "/api/payments/claim", http.StatusUnauthorized},
		{"GET", "/api/payments/balance", http.StatusUnauthorized},
		{"GET", "/api/payments/claimed", http.StatusUnauthorized},
		{"GET", "/api/payments/some-nonce", http.StatusOK},
		{"GET", "/health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestStorefrontInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGoogleHandler := NewMockGoogleAuthHandler(ctrl)
	mockPurchaseHandler := NewMockPurchaseHandler(ctrl)

	mockGoogleHandler.EXPECT().Redirect(gomock.Any(), gomock.Any()).AnyTimes()
	mockGoogleHandler.EXPECT().Callback(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurchaseHandler.EXPECT().Logout(gomock.Any(), gomock.Any()).AnyTimes()

	h := &StorefrontHandlers{
		GoogleAuthHandler: mockGoogleHandler,
		PurchaseHandler:   mockPurchaseHandler,
		jwtService:        auth.NewJWTService("test-secret", "test-issuer"),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/auth/google/", http.StatusOK},
		{"GET", "/auth/google/callback", http.StatusOK},
		{"GET", "/api/logout", http.StatusOK},
		{"POST", "/api/claim", http.StatusUnauthorized},
		{"GET", "/api/user", http.StatusUnauthorized},
		{"POST", "/api/purchase", http.StatusUnauthorized},
		{"POST", "/api/reset", http.StatusUnauthorized},
		{"GET", "/health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestWalletInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPasskeyHandler := NewMockPasskeyHandler(ctrl)

	mockPasskeyHandler.EXPECT().RegisterStart(gomock.Any(), gomock.Any()).AnyTimes()
	mockPasskeyHandler.EXPECT().RegisterFinish(gomock.Any(), gomock.Any()).AnyTimes()
	mockPasskeyHandler.EXPECT().LoginStart(gomock.Any(), gomock.Any()).AnyTimes()
	mockPasskeyHandler.EXPECT().LoginFinish(gomock.Any(), gomock.Any()).AnyTimes()
	mockPasskeyHandler.EXPECT().CheckUsername(gomock.Any(), gomock.Any()).AnyTimes()
	mockPasskeyHandler.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).AnyTimes()

	h := &WalletHandlers{
		PasskeyHandler: mockPasskeyHandler,
		jwtService:     auth.NewJWTService("test-secret", "test-issuer"),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/users/register/start", http.StatusOK},
		{"POST", "/api/users/register/finish", http.StatusOK},
		{"POST", "/api/users/login/start", http.StatusOK},
		{"POST", "/api/users/login/finish", http.StatusOK},
		{"GET", "/api/users/check-username/alice", http.StatusOK},
		{"DELETE", "/api/users/alice", http.StatusOK},
		{"GET", "/api/users/", http.StatusUnauthorized},
		{"GET", "/api/users/profile", http.StatusUnauthorized},
		{"GET", "/health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
