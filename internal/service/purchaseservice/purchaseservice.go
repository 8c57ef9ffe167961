package purchaseservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/internal/paymentsclient"
)

type NonceRepo interface {
	FindByNonce(ctx context.Context, nonce string) (*domain.ConsumedNonce, error)
	Create(ctx context.Context, cn *domain.ConsumedNonce) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePurchase(ctx context.Context, userID string, hasPurchased bool) (*domain.User, error)
}

type PaymentsClient interface {
	Login(ctx context.Context, username, password string) (string, error)
	Claim(ctx context.Context, token, nonce string) (*paymentsclient.ClaimedPayment, error)
}

type MerchantCredentials struct {
	Username string
	Password string
}

type Service struct {
	nonces    NonceRepo
	users     UserRepo
	payments  PaymentsClient
	merchant  MerchantCredentials
	minAmount float64
}

func New(nonces NonceRepo, users UserRepo, payments PaymentsClient, merchant MerchantCredentials, minAmount float64) *Service {
	return &Service{
		nonces:    nonces,
		users:     users,
		payments:  payments,
		merchant:  merchant,
		minAmount: minAmount,
	}
}

var (
	ErrNonceConsumed       = errors.New("nonce already consumed")
	ErrInsufficientAmount  = errors.New("insufficient payment amount")
	ErrUserNotFound        = errors.New("user not found")
	ErrPaymentsUnavailable = errors.New("failed to authenticate with payment server")
)

// CompletePurchase consumes the nonce exactly once for this user. The insert
// into consumed_nonces is the durable commit point: nothing before it mutates
// user state, and losing the insert race leaves the user untouched.
func (s *Service) CompletePurchase(ctx context.Context, userID, nonce string) (float64, *domain.User, error) {
	existing, err := s.nonces.FindByNonce(ctx, nonce)
	if err != nil {
		return 0, nil, err
	}
	if existing != nil {
		zap.L().Info("nonce already consumed", zap.String("nonce", nonce))
		return 0, nil, ErrNonceConsumed
	}

	// The login+claim pair is a unit; the login is stateless, so a token
	// whose claim fails is simply discarded.
	token, err := s.payments.Login(ctx, s.merchant.Username, s.merchant.Password)
	if err != nil {
		zap.L().Error("payments server login failed", zap.Error(err))
		return 0, nil, fmt.Errorf("%w: %w", ErrPaymentsUnavailable, err)
	}

	claimed, err := s.payments.Claim(ctx, token, nonce)
	if err != nil {
		zap.L().Error("payments server claim failed", zap.String("nonce", nonce), zap.Error(err))
		return 0, nil, err
	}

	if claimed.Amount < s.minAmount {
		zap.L().Info("claimed amount below minimum price",
			zap.Float64("amount", claimed.Amount),
			zap.Float64("required", s.minAmount),
		)
		return 0, nil, ErrInsufficientAmount
	}

	consumed := &domain.ConsumedNonce{
		Nonce:  nonce,
		UserID: userID,
		Amount: claimed.Amount,
	}
	if err := s.nonces.Create(ctx, consumed); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			zap.L().Info("lost nonce consumption race", zap.String("nonce", nonce))
			return 0, nil, ErrNonceConsumed
		}
		zap.L().Error("can't record consumed nonce", zap.Error(err))
		return 0, nil, err
	}

	user, err := s.users.UpdatePurchase(ctx, userID, true)
	if err != nil {
		zap.L().Error("can't mark user as purchased", zap.Error(err))
		return 0, nil, err
	}

	zap.L().Info("purchase completed", zap.String("userID", userID), zap.Float64("amount", claimed.Amount))
	return claimed.Amount, user, nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// MarkPurchased is the direct demo path that skips the payment protocol.
func (s *Service) MarkPurchased(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.UpdatePurchase(ctx, userID, true)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) ResetPurchase(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.UpdatePurchase(ctx, userID, false)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
