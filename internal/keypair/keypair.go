// Package keypair loads and creates the signing keypair of the board account.
//
// The file is a JSON array with the 64 secret-key bytes, the same format
// solana-keygen writes.
package keypair

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
)

// DefaultFileName is the file written by the createkeypair utility
const DefaultFileName = "keypair.json"

// Keypair is the local credential that authorizes initialization of the board account.
// Its public key is the board account address.
type Keypair struct {
	PrivateKey solana.PrivateKey
}

// PublicKey returns the keypair's public key
func (k *Keypair) PublicKey() solana.PublicKey {
	return k.PrivateKey.PublicKey()
}

// Sign returns the private key for this keypair's public key, nil for any other.
// Usable as a getter for (*solana.Transaction).PartialSign.
func (k *Keypair) Sign(key solana.PublicKey) *solana.PrivateKey {
	if k.PublicKey().Equals(key) {
		return &k.PrivateKey
	}
	return nil
}

// Load reads a keypair file
func Load(path string) (*Keypair, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load keypair %s: %w", path, err)
	}
	return &Keypair{PrivateKey: key}, nil
}

// Generate creates a new keypair and writes it to path.
// An existing non-empty file is never overwritten.
func Generate(path string) (*Keypair, error) {
	if fileInfo, err := os.Stat(path); err == nil && fileInfo.Size() > 0 {
		return nil, fmt.Errorf("keypair file %s is not empty: %w", path, os.ErrExist)
	}

	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}

	// []byte would be marshaled as base64, keygen format wants numbers
	values := make([]int, len(key))
	for i, b := range key {
		values[i] = int(b)
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keypair: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write keypair: %w", err)
	}

	return &Keypair{PrivateKey: key}, nil
}
