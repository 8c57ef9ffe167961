package dto

import "time"

type ClaimPurchaseRequestDTO struct {
	Nonce string `json:"nonce" validate:"required"`
}

type UserDTO struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Picture      string     `json:"picture"`
	HasPurchased bool       `json:"hasPurchased"`
	PurchasedAt  *time.Time `json:"purchasedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type ClaimPurchaseResponseDTO struct {
	Message string  `json:"message"`
	Amount  float64 `json:"amount"`
	User    UserDTO `json:"user"`
}

type PurchaseResponseDTO struct {
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}
