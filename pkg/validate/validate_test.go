package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNonce(t *testing.T) {
	tests := []struct {
		name  string
		nonce string
		valid bool
	}{
		{name: "Simple nonce", nonce: "order-123", valid: true},
		{name: "Mixed case", nonce: "Order.123_ABC", valid: true},
		{name: "Max length", nonce: strings.Repeat("a", 128), valid: true},
		{name: "Empty", nonce: "", valid: false},
		{name: "Too long", nonce: strings.Repeat("a", 129), valid: false},
		{name: "Contains space", nonce: "order 123", valid: false},
		{name: "Contains slash", nonce: "order/123", valid: false},
		{name: "Non-ASCII", nonce: "заказ-123", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsNonce(tt.nonce))
		})
	}
}

func TestIsUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "Simple username", username: "alice", valid: true},
		{name: "Digits and separators", username: "alice.01_x-y", valid: true},
		{name: "Minimum length", username: "abc", valid: true},
		{name: "Maximum length", username: strings.Repeat("a", 50), valid: true},
		{name: "Too short", username: "ab", valid: false},
		{name: "Too long", username: strings.Repeat("a", 51), valid: false},
		{name: "Uppercase rejected", username: "Alice", valid: false},
		{name: "Contains space", username: "ali ce", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsUsername(tt.username))
		})
	}
}
