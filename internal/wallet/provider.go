// Package wallet finds a wallet provider in the environment and manages the
// single wallet session the portal works with.
package wallet

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrProviderNotFound means no wallet provider is available in the environment
	ErrProviderNotFound = errors.New("solana wallet provider not found, get a Phantom wallet")
	// ErrConnectionRejected means the provider refused to connect
	ErrConnectionRejected = errors.New("wallet connection rejected")
	// ErrNotTrusted means a silent connect was attempted for an origin the user never approved
	ErrNotTrusted = errors.New("origin is not trusted by the wallet")
	// ErrUserRejected means the user declined an interactive request
	ErrUserRejected = errors.New("user rejected the request")
)

// ConnectOptions mirrors the provider connect options
type ConnectOptions struct {
	// OnlyIfTrusted connects without prompting, and only if the user approved this origin before
	OnlyIfTrusted bool
}

// Provider is a wallet that can reveal its public key and sign transactions
type Provider interface {
	IsPhantom() bool
	Connect(ctx context.Context, opts ConnectOptions) (solana.PublicKey, error)
	// SignTransaction adds the wallet's signature; other signatures are left untouched.
	SignTransaction(ctx context.Context, tx *solana.Transaction) error
}

// Environment is where a provider may have been injected
type Environment interface {
	Provider() (Provider, bool)
}

// StaticEnvironment always exposes the same provider, or none when P is nil
type StaticEnvironment struct {
	P Provider
}

// Provider implements Environment
func (e StaticEnvironment) Provider() (Provider, bool) {
	return e.P, e.P != nil
}
