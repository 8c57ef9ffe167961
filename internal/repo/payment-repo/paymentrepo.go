package paymentrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/constella/constella/internal/domain"
	"github.com/constella/constella/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByNonce(ctx context.Context, nonce string) (*domain.PaymentRequest, error) {
	query := `
        SELECT id, nonce, wallet_address, wallet_private_key, amount, status, merchant_id, created_at, updated_at
        FROM payment_requests
        WHERE nonce = $1
    `
	row := r.db.QueryRow(ctx, query, nonce)

	var pr domain.PaymentRequest
	err := row.Scan(&pr.ID, &pr.Nonce, &pr.WalletAddress, &pr.WalletPrivateKey, &pr.Amount, &pr.Status, &pr.MerchantID, &pr.CreatedAt, &pr.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment request", zap.Error(err))
		return nil, err
	}
	return &pr, nil
}

// Create inserts a pending payment request. The unique constraint on nonce
// decides the winner between concurrent creates; the loser gets
// domain.ErrDuplicate.
func (r *Repository) Create(ctx context.Context, pr *domain.PaymentRequest) error {
	query := `
        INSERT INTO payment_requests (id, nonce, wallet_address, wallet_private_key, amount, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query, pr.ID, pr.Nonce, pr.WalletAddress, pr.WalletPrivateKey, pr.Amount, pr.Status, pr.CreatedAt, pr.UpdatedAt)
	if pg.IsUniqueViolation(err) {
		return fmt.Errorf("payment request %s: %w", pr.Nonce, domain.ErrDuplicate)
	}
	if err != nil {
		zap.L().Error("can't save payment request", zap.Error(err))
		return err
	}
	return nil
}

// Claim marks the request claimed by merchantID with the given amount. The
// WHERE clause only matches a pending request or one the merchant already
// owns, so a request claimed by another merchant is never overwritten; that
// case surfaces as domain.ErrConflict.
func (r *Repository) Claim(ctx context.Context, nonce, merchantID string, amount float64) (*domain.PaymentRequest, error) {
	query := `
        UPDATE payment_requests
        SET status = $1, merchant_id = $2, amount = $3, updated_at = now()
        WHERE nonce = $4 AND (status = $5 OR merchant_id = $2)
        RETURNING id, nonce, wallet_address, wallet_private_key, amount, status, merchant_id, created_at, updated_at
    `
	var updated domain.PaymentRequest
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, domain.PaymentStatusClaimed, merchantID, amount, nonce, domain.PaymentStatusPending)
		err := row.Scan(&updated.ID, &updated.Nonce, &updated.WalletAddress, &updated.WalletPrivateKey, &updated.Amount, &updated.Status, &updated.MerchantID, &updated.CreatedAt, &updated.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("payment request %s: %w", nonce, domain.ErrConflict)
		}
		if err != nil {
			zap.L().Error("can't claim payment request", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) SumClaimedByMerchant(ctx context.Context, merchantID string) (float64, int, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0), COUNT(*)
        FROM payment_requests
        WHERE merchant_id = $1 AND status = $2
    `
	var total float64
	var count int
	err := r.db.QueryRow(ctx, query, merchantID, domain.PaymentStatusClaimed).Scan(&total, &count)
	if err != nil {
		zap.L().Error("can't sum claimed payment requests", zap.Error(err))
		return 0, 0, err
	}
	return total, count, nil
}

func (r *Repository) FindClaimedByMerchant(ctx context.Context, merchantID string, limit, offset int) ([]domain.PaymentRequest, error) {
	query := `
        SELECT id, nonce, wallet_address, wallet_private_key, amount, status, merchant_id, created_at, updated_at
        FROM payment_requests
        WHERE merchant_id = $1 AND status = $2
        ORDER BY updated_at DESC
        LIMIT $3 OFFSET $4
    `
	rows, err := r.db.Query(ctx, query, merchantID, domain.PaymentStatusClaimed, limit, offset)
	if err != nil {
		zap.L().Error("can't get claimed payment requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.PaymentRequest
	for rows.Next() {
		var pr domain.PaymentRequest
		err := rows.Scan(&pr.ID, &pr.Nonce, &pr.WalletAddress, &pr.WalletPrivateKey, &pr.Amount, &pr.Status, &pr.MerchantID, &pr.CreatedAt, &pr.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan payment request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, pr)
	}
	return requests, nil
}

func (r *Repository) CountClaimedByMerchant(ctx context.Context, merchantID string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM payment_requests
        WHERE merchant_id = $1 AND status = $2
    `
	var count int
	err := r.db.QueryRow(ctx, query, merchantID, domain.PaymentStatusClaimed).Scan(&count)
	if err != nil {
		zap.L().Error("can't count claimed payment requests", zap.Error(err))
		return 0, err
	}
	return count, nil
}
