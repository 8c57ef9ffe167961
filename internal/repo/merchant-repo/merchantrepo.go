package merchantrepo

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

const merchantColumns = "id, username, password_hash, email, name, is_active, created_at, updated_at"

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.Merchant, error) {
	query := "SELECT " + merchantColumns + " FROM merchants WHERE username = $1"
	return repo.findOne(ctx, query, username)
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Merchant, error) {
	query := "SELECT " + merchantColumns + " FROM merchants WHERE email = $1"
	return repo.findOne(ctx, query, email)
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Merchant, error) {
	query := "SELECT " + merchantColumns + " FROM merchants WHERE id = $1"
	return repo.findOne(ctx, query, id)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Merchant, error) {
	var m domain.Merchant
	err := repo.db.QueryRow(ctx, query, arg).
		Scan(&m.ID, &m.Username, &m.PasswordHash, &m.Email, &m.Name, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find merchant", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (repo *Repository) Create(ctx context.Context, merchant *domain.Merchant) (*domain.Merchant, error) {
	query := `
		INSERT INTO merchants (id, username, password_hash, email, name, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := repo.db.QueryRow(ctx, query, merchant.ID, merchant.Username, merchant.PasswordHash, merchant.Email, merchant.Name, merchant.IsActive).
		Scan(&merchant.CreatedAt, &merchant.UpdatedAt)
	if pg.IsUniqueViolation(err) {
		return nil, fmt.Errorf("merchant %s: %w", merchant.Username, domain.ErrDuplicate)
	}
	if err != nil {
		zap.L().Error("can't save merchant", zap.Error(err))
		return nil, err
	}
	return merchant, nil
}
