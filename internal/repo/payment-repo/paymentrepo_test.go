package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var paymentColumns = []string{"id", "nonce", "wallet_address", "wallet_private_key", "amount", "status", "merchant_id", "created_at", "updated_at"}

func TestRepository_FindByNonce(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		nonce     string
		mockSetup func()
		expectErr bool
		result    *domain.PaymentRequest
	}{
		{
			name:  "Payment request exists",
			nonce: "nonce-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentColumns).
					AddRow("id-1", "nonce-1", "0xabc", "0xkey", 10.0, "pending", (*string)(nil), timeNow, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("FROM payment_requests")).
					WithArgs("nonce-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.PaymentRequest{
				ID:               "id-1",
				Nonce:            "nonce-1",
				WalletAddress:    "0xabc",
				WalletPrivateKey: "0xkey",
				Amount:           10.0,
				Status:           "pending",
				CreatedAt:        timeNow,
				UpdatedAt:        timeNow,
			},
		},
		{
			name:  "Payment request does not exist",
			nonce: "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payment_requests")).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			nonce: "nonce-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM payment_requests")).
					WithArgs("nonce-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByNonce(context.Background(), tt.nonce)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	pr := &domain.PaymentRequest{
		ID:               "id-1",
		Nonce:            "nonce-1",
		WalletAddress:    "0xabc",
		WalletPrivateKey: "0xkey",
		Amount:           0,
		Status:           "pending",
		CreatedAt:        timeNow,
		UpdatedAt:        timeNow,
	}

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedErr error
	}{
		{
			name: "Create payment request successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_requests")).
					WithArgs("id-1", "nonce-1", "0xabc", "0xkey", 0.0, "pending", timeNow, timeNow).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Duplicate nonce",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_requests")).
					WithArgs("id-1", "nonce-1", "0xabc", "0xkey", 0.0, "pending", timeNow, timeNow).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:   true,
			expectedErr: domain.ErrDuplicate,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payment_requests")).
					WithArgs("id-1", "nonce-1", "0xabc", "0xkey", 0.0, "pending", timeNow, timeNow).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), pr)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Claim(t *testing.T) {
	repo, mock, tx := NewMock(t)
	timeNow := time.Now()
	merchantID := "merchant-1"

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectedErr error
		result      *domain.PaymentRequest
	}{
		{
			name: "Claim pending request successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					rows := pgxmock.NewRows(paymentColumns).
						AddRow("id-1", "nonce-1", "0xabc", "0xkey", 10.0, "claimed", &merchantID, timeNow, timeNow)
					mock.ExpectQuery(regexp.QuoteMeta("UPDATE payment_requests")).
						WithArgs("claimed", "merchant-1", 10.0, "nonce-1", "pending").
						WillReturnRows(rows)
					return fn(ctx)
				})
			},
			expectErr: false,
			result: &domain.PaymentRequest{
				ID:               "id-1",
				Nonce:            "nonce-1",
				WalletAddress:    "0xabc",
				WalletPrivateKey: "0xkey",
				Amount:           10.0,
				Status:           "claimed",
				MerchantID:       &merchantID,
				CreatedAt:        timeNow,
				UpdatedAt:        timeNow,
			},
		},
		{
			name: "Claimed by another merchant",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("UPDATE payment_requests")).
						WithArgs("claimed", "merchant-1", 10.0, "nonce-1", "pending").
						WillReturnError(pgx.ErrNoRows)
					return fn(ctx)
				})
			},
			expectErr:   true,
			expectedErr: domain.ErrConflict,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("UPDATE payment_requests")).
						WithArgs("claimed", "merchant-1", 10.0, "nonce-1", "pending").
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Claim(context.Background(), "nonce-1", "merchant-1", 10.0)
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_SumClaimedByMerchant(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name          string
		mockSetup     func()
		expectErr     bool
		expectedTotal float64
		expectedCount int
	}{
		{
			name: "Sum with claimed requests",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce", "count"}).AddRow(30.0, 3)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0), COUNT(*)")).
					WithArgs("merchant-1", "claimed").
					WillReturnRows(rows)
			},
			expectedTotal: 30.0,
			expectedCount: 3,
		},
		{
			name: "No claimed requests",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"coalesce", "count"}).AddRow(0.0, 0)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0), COUNT(*)")).
					WithArgs("merchant-1", "claimed").
					WillReturnRows(rows)
			},
			expectedTotal: 0,
			expectedCount: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0), COUNT(*)")).
					WithArgs("merchant-1", "claimed").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			total, count, err := repo.SumClaimedByMerchant(context.Background(), "merchant-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, total)
				assert.Equal(t, tt.expectedCount, count)
			}
		})
	}
}

func TestRepository_FindClaimedByMerchant(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()
	merchantID := "merchant-1"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.PaymentRequest
	}{
		{
			name: "Claimed requests found",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentColumns).
					AddRow("id-1", "nonce-1", "0xabc", "0xkey", 10.0, "claimed", &merchantID, timeNow, timeNow).
					AddRow("id-2", "nonce-2", "0xdef", "0xkey2", 10.0, "claimed", &merchantID, timeNow, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY updated_at DESC")).
					WithArgs("merchant-1", "claimed", 10, 0).
					WillReturnRows(rows)
			},
			result: []domain.PaymentRequest{
				{ID: "id-1", Nonce: "nonce-1", WalletAddress: "0xabc", WalletPrivateKey: "0xkey", Amount: 10.0, Status: "claimed", MerchantID: &merchantID, CreatedAt: timeNow, UpdatedAt: timeNow},
				{ID: "id-2", Nonce: "nonce-2", WalletAddress: "0xdef", WalletPrivateKey: "0xkey2", Amount: 10.0, Status: "claimed", MerchantID: &merchantID, CreatedAt: timeNow, UpdatedAt: timeNow},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY updated_at DESC")).
					WithArgs("merchant-1", "claimed", 10, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentColumns).
					AddRow("id-1", "nonce-1", "0xabc", "0xkey", "invalid_value", "claimed", &merchantID, timeNow, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY updated_at DESC")).
					WithArgs("merchant-1", "claimed", 10, 0).
					WillReturnRows(rows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindClaimedByMerchant(context.Background(), "merchant-1", 10, 0)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_CountClaimedByMerchant(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  int
	}{
		{
			name: "Count returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"count"}).AddRow(5)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
					WithArgs("merchant-1", "claimed").
					WillReturnRows(rows)
			},
			expected: 5,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
					WithArgs("merchant-1", "claimed").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			count, err := repo.CountClaimedByMerchant(context.Background(), "merchant-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, count)
			}
		})
	}
}
