package noncerepo

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
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByNonce(ctx context.Context, nonce string) (*domain.ConsumedNonce, error) {
	query := `
		SELECT nonce, user_id, amount, consumed_at
		FROM consumed_nonces
		WHERE nonce = $1
	`
	var cn domain.ConsumedNonce
	err := repo.db.QueryRow(ctx, query, nonce).
		Scan(&cn.Nonce, &cn.UserID, &cn.Amount, &cn.ConsumedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find consumed nonce", zap.Error(err))
		return nil, err
	}
	return &cn, nil
}

// Create is the commit point of a purchase: rows are never updated or
// deleted, and the primary key on nonce picks exactly one winner between
// concurrent consumption attempts. The loser gets domain.ErrDuplicate.
func (repo *Repository) Create(ctx context.Context, cn *domain.ConsumedNonce) error {
	query := `
		INSERT INTO consumed_nonces (nonce, user_id, amount)
		VALUES ($1, $2, $3)
	`
	_, err := repo.db.Exec(ctx, query, cn.Nonce, cn.UserID, cn.Amount)
	if pg.IsUniqueViolation(err) {
		return fmt.Errorf("nonce %s: %w", cn.Nonce, domain.ErrDuplicate)
	}
	if err != nil {
		zap.L().Error("can't save consumed nonce", zap.Error(err))
		return err
	}
	return nil
}
