package paymentsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/constella/constella/pkg/clients"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, clients.NewHTTPClient()), srv
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedToken string
		expectedError error
	}{
		{
			name:          "Successful login",
			status:        http.StatusOK,
			body:          `{"token":"jwt-token"}`,
			expectedToken: "jwt-token",
		},
		{
			name:          "Rejected credentials",
			status:        http.StatusUnauthorized,
			body:          `{"message":"Invalid credentials"}`,
			expectedError: ErrUnauthorized,
		},
		{
			name:          "Deactivated merchant account",
			status:        http.StatusForbidden,
			body:          `{"message":"account is deactivated"}`,
			expectedError: ErrUnauthorized,
		},
		{
			name:          "Server error",
			status:        http.StatusInternalServerError,
			body:          `{"message":"Internal server error"}`,
			expectedError: ErrUnavailable,
		},
		{
			name:          "Empty token in response",
			status:        http.StatusOK,
			body:          `{"token":""}`,
			expectedError: ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/login", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			token, err := client.Login(context.Background(), "store", "secret")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestLoginTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL, clients.NewHTTPClient())

	_, err := client.Login(context.Background(), "store", "secret")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClaim(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedError error
	}{
		{
			name:   "Successful claim",
			status: http.StatusOK,
			body:   `{"message":"Payment request claimed successfully","paymentRequest":{"id":"req-1","nonce":"nonce-1","amount":10,"status":"claimed","merchantId":"merchant-1"}}`,
		},
		{
			name:          "Unknown nonce",
			status:        http.StatusNotFound,
			body:          `{"message":"payment request not found"}`,
			expectedError: ErrNotFound,
		},
		{
			name:          "Claimed by another merchant",
			status:        http.StatusConflict,
			body:          `{"message":"payment request already claimed by another merchant"}`,
			expectedError: ErrAlreadyClaimed,
		},
		{
			name:          "Expired token",
			status:        http.StatusUnauthorized,
			body:          `{"message":"Merchant not authorized"}`,
			expectedError: ErrUnauthorized,
		},
		{
			name:          "Server error",
			status:        http.StatusInternalServerError,
			body:          `{"message":"Internal server error"}`,
			expectedError: ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/payments/claim", r.URL.Path)
				assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			payment, err := client.Claim(context.Background(), "jwt-token", "nonce-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, payment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "nonce-1", payment.Nonce)
				assert.Equal(t, 10.0, payment.Amount)
				assert.Equal(t, "merchant-1", payment.MerchantID)
			}
		})
	}
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL, clients.NewHTTPClient())

	for i := 0; i < 5; i++ {
		_, err := client.Login(context.Background(), "store", "secret")
		assert.ErrorIs(t, err, ErrUnavailable)
	}

	// The breaker is now open; the request fails without touching the network.
	_, err := client.Claim(context.Background(), "jwt-token", "nonce-1")
	assert.ErrorIs(t, err, ErrUnavailable)
}
