package domain

import "time"

const (
	// PaymentStatusPending: created, deposit wallet allocated, no merchant yet.
	PaymentStatusPending = "pending"
	// PaymentStatusClaimed: owned by a merchant, amount computed.
	PaymentStatusClaimed = "claimed"
)

type PaymentRequest struct {
	ID               string     `db:"id"`
	Nonce            string     `db:"nonce"`
	WalletAddress    string     `db:"wallet_address"`
	WalletPrivateKey string     `db:"wallet_private_key"`
	Amount           float64    `db:"amount"`
	Status           string     `db:"status"`
	MerchantID       *string    `db:"merchant_id"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

type Merchant struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Email        *string   `db:"email"`
	Name         string    `db:"name"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ConsumedNonce rows are insert-only; an existing row for a nonce is the
// single source of truth for "already used by an end user".
type ConsumedNonce struct {
	Nonce      string    `db:"nonce"`
	UserID     string    `db:"user_id"`
	Amount     float64   `db:"amount"`
	ConsumedAt time.Time `db:"consumed_at"`
}

type User struct {
	ID           string     `db:"id"`
	GoogleID     string     `db:"google_id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	Picture      string     `db:"picture"`
	HasPurchased bool       `db:"has_purchased"`
	PurchasedAt  *time.Time `db:"purchased_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

type WalletUser struct {
	ID               string    `db:"id"`
	Username         string    `db:"username"`
	WalletAddress    *string   `db:"wallet_address"`
	WalletPrivateKey *string   `db:"wallet_private_key"`
	Balance          float64   `db:"balance"`
	Registered       bool      `db:"registered"`
	SessionData      []byte    `db:"session_data"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type Authenticator struct {
	ID           string   `db:"id"`
	UserID       string   `db:"user_id"`
	CredentialID string   `db:"credential_id"`
	PublicKey    []byte   `db:"public_key"`
	SignCount    uint32   `db:"sign_count"`
	Transports   []string `db:"transports"`
}
