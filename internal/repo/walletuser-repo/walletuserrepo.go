package walletuserrepo

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

const walletUserColumns = "id, username, wallet_address, wallet_private_key, balance, registered, session_data, created_at, updated_at"

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.WalletUser, error) {
	query := "SELECT " + walletUserColumns + " FROM wallet_users WHERE username = $1"
	return r.findOne(ctx, query, username)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.WalletUser, error) {
	query := "SELECT " + walletUserColumns + " FROM wallet_users WHERE id = $1"
	return r.findOne(ctx, query, id)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.WalletUser, error) {
	var u domain.WalletUser
	err := r.db.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.WalletAddress, &u.WalletPrivateKey, &u.Balance, &u.Registered, &u.SessionData, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find wallet user", zap.Error(err))
		return nil, err
	}
	return &u, nil
}

// CreatePending inserts the temporary row a registration ceremony runs
// against. It stays unregistered until the attestation verifies.
func (r *Repository) CreatePending(ctx context.Context, user *domain.WalletUser) error {
	query := `
		INSERT INTO wallet_users (id, username, registered)
		VALUES ($1, $2, FALSE)
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Username)
	if pg.IsUniqueViolation(err) {
		return fmt.Errorf("wallet user %s: %w", user.Username, domain.ErrDuplicate)
	}
	if err != nil {
		zap.L().Error("can't save wallet user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SaveSession(ctx context.Context, userID string, sessionData []byte) error {
	query := `
		UPDATE wallet_users
		SET session_data = $1, updated_at = now()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, sessionData, userID)
	if err != nil {
		zap.L().Error("can't save ceremony session", zap.Error(err))
		return err
	}
	return nil
}

// CompleteRegistration stores the authenticator and the generated wallet and
// flips the user to registered, in one transaction.
func (r *Repository) CompleteRegistration(ctx context.Context, userID, address, privateKey string, authenticator *domain.Authenticator) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		authQuery := `
			INSERT INTO authenticators (id, user_id, credential_id, public_key, sign_count, transports)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err := r.db.Exec(ctx, authQuery, authenticator.ID, authenticator.UserID, authenticator.CredentialID, authenticator.PublicKey, authenticator.SignCount, authenticator.Transports)
		if pg.IsUniqueViolation(err) {
			return fmt.Errorf("authenticator %s: %w", authenticator.CredentialID, domain.ErrDuplicate)
		}
		if err != nil {
			zap.L().Error("can't save authenticator", zap.Error(err))
			return err
		}

		userQuery := `
			UPDATE wallet_users
			SET registered = TRUE, wallet_address = $1, wallet_private_key = $2, session_data = NULL, updated_at = now()
			WHERE id = $3
		`
		_, err = r.db.Exec(ctx, userQuery, address, privateKey, userID)
		if err != nil {
			zap.L().Error("can't complete wallet user registration", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) Delete(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM wallet_users WHERE id = $1", userID)
	if err != nil {
		zap.L().Error("can't delete wallet user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteByUsername(ctx context.Context, username string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM wallet_users WHERE username = $1", username)
	if err != nil {
		zap.L().Error("can't delete wallet user", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) FindAuthenticators(ctx context.Context, userID string) ([]domain.Authenticator, error) {
	query := `
		SELECT id, user_id, credential_id, public_key, sign_count, transports
		FROM authenticators
		WHERE user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get authenticators", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var authenticators []domain.Authenticator
	for rows.Next() {
		var a domain.Authenticator
		err := rows.Scan(&a.ID, &a.UserID, &a.CredentialID, &a.PublicKey, &a.SignCount, &a.Transports)
		if err != nil {
			zap.L().Error("can't scan authenticator row", zap.Error(err))
			return nil, err
		}
		authenticators = append(authenticators, a)
	}
	return authenticators, nil
}

func (r *Repository) UpdateSignCount(ctx context.Context, credentialID string, signCount uint32) error {
	query := `
		UPDATE authenticators
		SET sign_count = $1
		WHERE credential_id = $2
	`
	_, err := r.db.Exec(ctx, query, signCount, credentialID)
	if err != nil {
		zap.L().Error("can't update authenticator sign count", zap.Error(err))
		return err
	}
	return nil
}
