// Package wallettest provides an in-memory wallet provider for tests.
package wallettest

import (
	"context"
	"sync"

	"github.com/AlexZinkM/gif-portal/internal/wallet"

	"github.com/gagliardetto/solana-go"
)

// Provider approves every request unless Reject is set.
// Silent connects succeed only when Trusted.
type Provider struct {
	mu sync.Mutex

	Key     solana.PrivateKey
	Trusted bool
	Phantom bool
	Reject  bool

	Connects []wallet.ConnectOptions
	Signed   int
}

// New returns a Phantom-like provider with a fresh key
func New(trusted bool) *Provider {
	return &Provider{Key: solana.NewWallet().PrivateKey, Trusted: trusted, Phantom: true}
}

// PublicKey returns the wallet address
func (p *Provider) PublicKey() solana.PublicKey {
	return p.Key.PublicKey()
}

func (p *Provider) IsPhantom() bool { return p.Phantom }

func (p *Provider) Connect(_ context.Context, opts wallet.ConnectOptions) (solana.PublicKey, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Connects = append(p.Connects, opts)
	if opts.OnlyIfTrusted && !p.Trusted {
		return solana.PublicKey{}, wallet.ErrNotTrusted
	}
	if p.Reject {
		return solana.PublicKey{}, wallet.ErrUserRejected
	}
	return p.Key.PublicKey(), nil
}

func (p *Provider) SignTransaction(_ context.Context, tx *solana.Transaction) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Reject {
		return wallet.ErrUserRejected
	}
	p.Signed++
	_, err := tx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(p.Key.PublicKey()) {
			return &p.Key
		}
		return nil
	})
	return err
}
