package merchantservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/pkg/auth"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.Merchant, error)
	FindByEmail(ctx context.Context, email string) (*domain.Merchant, error)
	FindByID(ctx context.Context, id string) (*domain.Merchant, error)
	Create(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error)
}

const tokenTTL = 24 * time.Hour

type Service struct {
	repo        Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		repo:        repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is deactivated")
	ErrNotFound           = errors.New("merchant not found")
)

func (s *Service) Signup(ctx context.Context, username, password, name string, email *string) (*domain.Merchant, error) {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find merchant: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("merchant already exists, username: ", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	if email != nil {
		existingEmail, err := s.repo.FindByEmail(ctx, *email)
		if err != nil {
			zap.L().Error("can't find merchant by email: ", zap.Error(err))
			return nil, err
		}
		if existingEmail != nil {
			return nil, ErrEmailTaken
		}
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	merchant := &domain.Merchant{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashedPassword,
		Email:        email,
		Name:         name,
		IsActive:     true,
	}
	newMerchant, err := s.repo.Create(ctx, merchant)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		zap.L().Error("can't create merchant: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("merchant successfully registered", zap.String("username", username))
	return newMerchant, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.Merchant, error) {
	merchant, err := s.repo.FindByUsername(ctx, username)
	if err != nil || merchant == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if !merchant.IsActive {
		zap.L().Info("deactivated merchant login attempt", zap.String("username", username))
		return nil, ErrAccountDisabled
	}
	if ok := s.hashService.ComparePassword(merchant.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("merchant successfully authenticated", zap.String("username", username))
	return merchant, nil
}

func (s *Service) GetProfile(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	merchant, err := s.repo.FindByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, ErrNotFound
	}
	return merchant, nil
}

func (s *Service) GenerateToken(merchantID string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(merchantID, auth.RoleMerchant, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
