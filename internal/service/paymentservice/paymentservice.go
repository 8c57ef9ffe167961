package paymentservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/internal/pricing"
	"github.com/constella/constella/pkg/wallet"
)

type Repo interface {
	FindByNonce(ctx context.Context, nonce string) (*domain.PaymentRequest, error)
	Create(ctx context.Context, pr *domain.PaymentRequest) error
	Claim(ctx context.Context, nonce, merchantID string, amount float64) (*domain.PaymentRequest, error)
	SumClaimedByMerchant(ctx context.Context, merchantID string) (float64, int, error)
	FindClaimedByMerchant(ctx context.Context, merchantID string, limit, offset int) ([]domain.PaymentRequest, error)
	CountClaimedByMerchant(ctx context.Context, merchantID string) (int, error)
}

type Service struct {
	repo    Repo
	keys    wallet.GeneratorInterface
	pricing pricing.Calculator
}

func New(repo Repo, keys wallet.GeneratorInterface, calculator pricing.Calculator) *Service {
	return &Service{
		repo:    repo,
		keys:    keys,
		pricing: calculator,
	}
}

var (
	ErrNonceAlreadyExists       = errors.New("payment request with this nonce already exists")
	ErrNotFound                 = errors.New("payment request not found")
	ErrClaimedByAnotherMerchant = errors.New("payment request already claimed by another merchant")
)

// CreateRequest allocates a one-time deposit wallet for the nonce. The
// pre-check gives a friendly conflict for the common case; the insert's
// unique constraint settles races.
func (s *Service) CreateRequest(ctx context.Context, nonce string) (*domain.PaymentRequest, error) {
	existing, err := s.repo.FindByNonce(ctx, nonce)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("payment request already exists", zap.String("nonce", nonce))
		return nil, ErrNonceAlreadyExists
	}

	keypair, err := s.keys.Generate()
	if err != nil {
		zap.L().Error("can't generate deposit wallet", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	pr := &domain.PaymentRequest{
		ID:               uuid.NewString(),
		Nonce:            nonce,
		WalletAddress:    keypair.Address,
		WalletPrivateKey: keypair.PrivateKey,
		Amount:           0,
		Status:           domain.PaymentStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, pr); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			zap.L().Info("lost payment request create race", zap.String("nonce", nonce))
			return nil, ErrNonceAlreadyExists
		}
		zap.L().Error("can't create payment request", zap.Error(err))
		return nil, err
	}

	return pr, nil
}

// ClaimRequest transitions the request to claimed for merchantID, computing
// the amount through the pricing policy. Re-claims by the owning merchant are
// idempotent refreshes; a claim against a request owned by another merchant
// fails. The second return value reports whether this was a re-claim.
func (s *Service) ClaimRequest(ctx context.Context, merchantID, nonce string) (*domain.PaymentRequest, bool, error) {
	pr, err := s.repo.FindByNonce(ctx, nonce)
	if err != nil {
		return nil, false, err
	}
	if pr == nil {
		return nil, false, ErrNotFound
	}
	if pr.Status == domain.PaymentStatusClaimed && pr.MerchantID != nil && *pr.MerchantID != merchantID {
		zap.L().Info("payment request claimed by another merchant", zap.String("nonce", nonce))
		return nil, false, ErrClaimedByAnotherMerchant
	}

	amount, err := s.pricing.AmountFor(ctx, pr.WalletAddress)
	if err != nil {
		zap.L().Error("can't compute claim amount", zap.Error(err))
		return nil, false, err
	}

	reclaimed := pr.Status == domain.PaymentStatusClaimed
	updated, err := s.repo.Claim(ctx, nonce, merchantID, amount)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			zap.L().Info("lost payment request claim race", zap.String("nonce", nonce))
			return nil, false, ErrClaimedByAnotherMerchant
		}
		zap.L().Error("can't claim payment request", zap.Error(err))
		return nil, false, err
	}

	return updated, reclaimed, nil
}

func (s *Service) GetBalance(ctx context.Context, merchantID string) (float64, int, error) {
	total, count, err := s.repo.SumClaimedByMerchant(ctx, merchantID)
	if err != nil {
		zap.L().Error("can't get merchant balance", zap.Error(err))
		return 0, 0, err
	}
	return total, count, nil
}

// ListClaimed returns one page of the merchant's claimed requests, most
// recently updated first, plus the total count.
func (s *Service) ListClaimed(ctx context.Context, merchantID string, page, limit int) ([]domain.PaymentRequest, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	var requests []domain.PaymentRequest
	var totalCount int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		requests, err = s.repo.FindClaimedByMerchant(gctx, merchantID, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		totalCount, err = s.repo.CountClaimedByMerchant(gctx, merchantID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't list claimed payment requests", zap.Error(err))
		return nil, 0, err
	}

	return requests, totalCount, nil
}

func (s *Service) GetByNonce(ctx context.Context, nonce string) (*domain.PaymentRequest, error) {
	pr, err := s.repo.FindByNonce(ctx, nonce)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		return nil, ErrNotFound
	}
	return pr, nil
}
