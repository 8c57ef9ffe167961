package userservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/pkg/auth"
)

type Repo interface {
	FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

const tokenTTL = 24 * time.Hour

type Service struct {
	repo       Repo
	jwtService auth.JWTServiceInterface
}

func New(repo Repo, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		repo:       repo,
		jwtService: jwtService,
	}
}

// UpsertGoogleUser finds or creates the storefront user for a Google profile.
func (s *Service) UpsertGoogleUser(ctx context.Context, googleID, email, name, picture string) (*domain.User, error) {
	user, err := s.repo.FindByGoogleID(ctx, googleID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &domain.User{
		ID:       uuid.NewString(),
		GoogleID: googleID,
		Email:    email,
		Name:     name,
		Picture:  picture,
	}
	newUser, err := s.repo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) GenerateToken(userID string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, auth.RoleUser, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
