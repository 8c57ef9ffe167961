package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	generator := &Generator{}

	first, err := generator.Generate()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Address, "0x"))
	assert.Len(t, first.Address, 42)
	assert.True(t, strings.HasPrefix(first.PrivateKey, "0x"))
	assert.Len(t, first.PrivateKey, 66)

	second, err := generator.Generate()
	assert.NoError(t, err)
	assert.NotEqual(t, first.Address, second.Address)
	assert.NotEqual(t, first.PrivateKey, second.PrivateKey)
}
