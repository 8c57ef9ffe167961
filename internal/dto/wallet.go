package dto

import "time"

type PasskeyStartRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
}

type WalletUserDTO struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	WalletAddress *string `json:"walletAddress,omitempty"`
	Balance       float64 `json:"balance"`
}

type PasskeyFinishResponseDTO struct {
	Token string        `json:"token"`
	User  WalletUserDTO `json:"user"`
}

type WalletProfileResponseDTO struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	WalletAddress *string   `json:"walletAddress,omitempty"`
	Balance       float64   `json:"balance"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type UsernameAvailabilityResponseDTO struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
