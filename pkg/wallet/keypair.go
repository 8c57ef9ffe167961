package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Keypair is a freshly generated Ethereum-style wallet. The private key never
// leaves the owning service's store.
type Keypair struct {
	Address    string
	PrivateKey string
}

type GeneratorInterface interface {
	Generate() (*Keypair, error)
}

type Generator struct{}

func (g *Generator) Generate() (*Keypair, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("can't generate wallet key: %w", err)
	}
	return &Keypair{
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: "0x" + hex.EncodeToString(crypto.FromECDSA(key)),
	}, nil
}
