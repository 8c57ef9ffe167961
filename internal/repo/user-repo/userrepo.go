package userrepo

import (
	"context"
	"errors"

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

const userColumns = "id, google_id, email, name, picture, has_purchased, purchased_at, created_at"

func (repo *Repository) FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE google_id = $1"
	return repo.findOne(ctx, query, googleID)
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"
	return repo.findOne(ctx, query, id)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := repo.db.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.Picture, &u.HasPurchased, &u.PurchasedAt, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &u, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, google_id, email, name, picture)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.GoogleID, user.Email, user.Name, user.Picture).
		Scan(&user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// UpdatePurchase flips the purchase flag; purchased_at follows it (now() when
// set, NULL when cleared).
func (repo *Repository) UpdatePurchase(ctx context.Context, userID string, hasPurchased bool) (*domain.User, error) {
	query := `
		UPDATE users
		SET has_purchased = $1,
		    purchased_at = CASE WHEN $1 THEN now() ELSE NULL END
		WHERE id = $2
		RETURNING ` + userColumns
	var u domain.User
	err := repo.db.QueryRow(ctx, query, hasPurchased, userID).
		Scan(&u.ID, &u.GoogleID, &u.Email, &u.Name, &u.Picture, &u.HasPurchased, &u.PurchasedAt, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		zap.L().Error("can't update user purchase state", zap.Error(err))
		return nil, err
	}
	return &u, nil
}
