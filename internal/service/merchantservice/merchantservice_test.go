package merchantservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, &auth.HashService{}, auth.NewJWTService("test-secret", "test-issuer"))
	defer ctrl.Finish()
	return service, repo
}

func TestSignup(t *testing.T) {
	service, repo := NewMock(t)
	email := "shop@example.com"

	tests := []struct {
		name          string
		email         *string
		prepareMock   func()
		expectErr     bool
		expectedError error
	}{
		{
			name:  "New merchant registered successfully",
			email: &email,
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(nil, nil)
				repo.EXPECT().FindByEmail(gomock.Any(), email).Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, m *domain.Merchant) (*domain.Merchant, error) {
					return m, nil
				})
			},
		},
		{
			name: "No email skips the email lookup",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, m *domain.Merchant) (*domain.Merchant, error) {
					return m, nil
				})
			},
		},
		{
			name: "Username taken",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(&domain.Merchant{Username: "shop"}, nil)
			},
			expectErr:     true,
			expectedError: ErrUsernameTaken,
		},
		{
			name:  "Email taken",
			email: &email,
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(nil, nil)
				repo.EXPECT().FindByEmail(gomock.Any(), email).Return(&domain.Merchant{}, nil)
			},
			expectErr:     true,
			expectedError: ErrEmailTaken,
		},
		{
			name: "Lost signup race",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(nil, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicate)
			},
			expectErr:     true,
			expectedError: ErrUsernameTaken,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(nil, errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			merchant, err := service.Signup(context.Background(), "shop", "password123", "Shop", tt.email)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				assert.Nil(t, merchant)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, merchant)
				assert.Equal(t, "shop", merchant.Username)
				assert.True(t, merchant.IsActive)
				assert.NotEqual(t, "password123", merchant.PasswordHash)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, repo := NewMock(t)

	hash, err := (&auth.HashService{}).HashPassword("password123")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Valid credentials",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(&domain.Merchant{
					Username:     "shop",
					PasswordHash: hash,
					IsActive:     true,
				}, nil)
			},
		},
		{
			name:     "Wrong password",
			password: "wrongpassword",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(&domain.Merchant{
					Username:     "shop",
					PasswordHash: hash,
					IsActive:     true,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Unknown merchant",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Deactivated account",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(gomock.Any(), "shop").Return(&domain.Merchant{
					Username:     "shop",
					PasswordHash: hash,
					IsActive:     false,
				}, nil)
			},
			expectedError: ErrAccountDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			merchant, err := service.Authenticate(context.Background(), "shop", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, merchant)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, merchant)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Merchant found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "merchant-1").Return(&domain.Merchant{ID: "merchant-1"}, nil)
			},
		},
		{
			name: "Merchant not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "merchant-1").Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			merchant, err := service.GetProfile(context.Background(), "merchant-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "merchant-1", merchant.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken("merchant-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	jwtService := auth.NewJWTService("test-secret", "test-issuer")
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "merchant-1", claims.SubjectID)
	assert.Equal(t, auth.RoleMerchant, claims.Role)
}
