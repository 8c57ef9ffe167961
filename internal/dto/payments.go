package dto

import "time"

type CreatePaymentRequestDTO struct {
	Nonce string `json:"nonce" validate:"required"`
}

type ClaimPaymentRequestDTO struct {
	Nonce string `json:"nonce" validate:"required"`
}

// PaymentRequestDTO carries the public fields of a payment request; the
// deposit wallet's private key is never serialized.
type PaymentRequestDTO struct {
	ID            string    `json:"id"`
	Nonce         string    `json:"nonce"`
	WalletAddress string    `json:"walletAddress"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	MerchantID    *string   `json:"merchantId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type PaymentRequestResponseDTO struct {
	Message        string            `json:"message"`
	PaymentRequest PaymentRequestDTO `json:"paymentRequest"`
}

type GetPaymentRequestResponseDTO struct {
	PaymentRequest PaymentRequestDTO `json:"paymentRequest"`
}

type BalanceResponseDTO struct {
	MerchantID           string  `json:"merchantId"`
	TotalBalance         float64 `json:"totalBalance"`
	ClaimedRequestsCount int     `json:"claimedRequestsCount"`
}

type PaginationDTO struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalCount int  `json:"totalCount"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type ClaimedRequestsResponseDTO struct {
	ClaimedRequests []PaymentRequestDTO `json:"claimedRequests"`
	Pagination      PaginationDTO       `json:"pagination"`
}
