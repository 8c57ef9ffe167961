package paymentsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/constella/constella/pkg/clients"
)

// Errors the storefront maps onto its own responses. Anything transport- or
// availability-shaped collapses into ErrUnavailable; no retries are made.
var (
	ErrUnauthorized   = errors.New("payments server rejected merchant credentials")
	ErrNotFound       = errors.New("payment request not found")
	ErrAlreadyClaimed = errors.New("payment request already claimed by another merchant")
	ErrUnavailable    = errors.New("payments server unavailable")
)

type ClaimedPayment struct {
	ID            string  `json:"id"`
	Nonce         string  `json:"nonce"`
	WalletAddress string  `json:"walletAddress"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	MerchantID    string  `json:"merchantId"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type claimRequest struct {
	Nonce string `json:"nonce"`
}

type claimResponse struct {
	Message        string         `json:"message"`
	PaymentRequest ClaimedPayment `json:"paymentRequest"`
}

// Client is the typed interface to the merchant-facing payments server. A
// single circuit breaker covers both calls: when the server is down there is
// no point attempting the login half of a login+claim pair either.
type Client struct {
	baseURL string
	client  clients.HTTPClientI
	breaker *gobreaker.CircuitBreaker
}

func New(baseURL string, client clients.HTTPClientI) *Client {
	settings := gobreaker.Settings{
		Name:     "payments-server",
		Interval: time.Minute,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("can't marshal login request: %w", err)
	}

	statusCode, respBody, err := c.post(ctx, c.baseURL+"/api/auth/login", nil, body)
	if err != nil {
		return "", err
	}

	switch statusCode {
	case http.StatusOK:
		var resp loginResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return "", fmt.Errorf("can't parse login response: %w", err)
		}
		if resp.Token == "" {
			return "", fmt.Errorf("login response without token: %w", ErrUnavailable)
		}
		return resp.Token, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	default:
		zap.L().Error("unexpected payments server login status", zap.Int("status", statusCode))
		return "", ErrUnavailable
	}
}

func (c *Client) Claim(ctx context.Context, token, nonce string) (*ClaimedPayment, error) {
	body, err := json.Marshal(claimRequest{Nonce: nonce})
	if err != nil {
		return nil, fmt.Errorf("can't marshal claim request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	statusCode, respBody, err := c.post(ctx, c.baseURL+"/api/payments/claim", headers, body)
	if err != nil {
		return nil, err
	}

	switch statusCode {
	case http.StatusOK:
		var resp claimResponse
		if err := json.Unmarshal(respBody, &resp); err != nil {
			return nil, fmt.Errorf("can't parse claim response: %w", err)
		}
		return &resp.PaymentRequest, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusConflict:
		return nil, ErrAlreadyClaimed
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		zap.L().Error("unexpected payments server claim status", zap.Int("status", statusCode))
		return nil, ErrUnavailable
	}
}

type postResult struct {
	statusCode int
	body       []byte
}

func (c *Client) post(ctx context.Context, url string, headers http.Header, body []byte) (int, []byte, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		statusCode, respBody, err := c.client.Post(ctx, url, headers, body)
		if err != nil {
			return nil, err
		}
		return postResult{statusCode: statusCode, body: respBody}, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return 0, nil, fmt.Errorf("circuit open: %w", ErrUnavailable)
		}
		zap.L().Error("payments server request failed", zap.String("url", url), zap.Error(err))
		return 0, nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	res := result.(postResult)
	return res.statusCode, res.body, nil
}
