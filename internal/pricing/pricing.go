package pricing

import "context"

// Calculator decides the amount credited when a payment request is claimed.
// It is injected into the claim path so pricing policy can change without
// touching the claim state machine.
type Calculator interface {
	AmountFor(ctx context.Context, walletAddress string) (float64, error)
}

// Fixed credits a flat amount for every claim.
// TODO: replace with a calculator that derives the amount from deposits
// observed on the request's wallet address.
type Fixed struct {
	amount float64
}

func NewFixed(amount float64) *Fixed {
	return &Fixed{amount: amount}
}

func (f *Fixed) AmountFor(ctx context.Context, walletAddress string) (float64, error) {
	return f.amount, nil
}
