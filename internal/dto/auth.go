package dto

import "time"

type MerchantSignupRequestDTO struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=8"`
	Email    *string `json:"email,omitempty"`
	Name     string  `json:"name" validate:"required"`
}

type MerchantLoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type MerchantDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type MerchantAuthResponseDTO struct {
	Message  string      `json:"message"`
	Merchant MerchantDTO `json:"merchant"`
	Token    string      `json:"token"`
}

type MerchantProfileResponseDTO struct {
	Merchant MerchantDTO `json:"merchant"`
}
