package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// Session is an established connection to the user's wallet
type Session struct {
	PublicKey solana.PublicKey
	Connected bool

	provider Provider
}

// PublicKeyString returns the session identity as base58
func (s *Session) PublicKeyString() string {
	return s.PublicKey.String()
}

// SignTransaction asks the session's provider to sign tx
func (s *Session) SignTransaction(ctx context.Context, tx *solana.Transaction) error {
	if s == nil || s.provider == nil || !s.Connected {
		return errors.New("no wallet session")
	}
	return s.provider.SignTransaction(ctx, tx)
}

// Establisher owns the only active session.
type Establisher struct {
	env    Environment
	logger *zap.Logger

	mu      sync.Mutex
	current *Session
}

// NewEstablisher creates an Establisher for providers found in env
func NewEstablisher(env Environment, logger *zap.Logger) *Establisher {
	return &Establisher{env: env, logger: logger}
}

// Connect requests a connection from the provider. Interactive mode lets the
// provider ask the user; silent mode only succeeds for a trusted origin.
// A successful call replaces the current session.
// Every failure wraps ErrConnectionRejected.
func (e *Establisher) Connect(ctx context.Context, interactive bool) (*Session, error) {
	p, ok := e.env.Provider()
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrConnectionRejected, ErrProviderNotFound)
	}

	publicKey, err := p.Connect(ctx, ConnectOptions{OnlyIfTrusted: !interactive})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionRejected, err)
	}

	session := &Session{PublicKey: publicKey, Connected: true, provider: p}

	e.mu.Lock()
	e.current = session
	e.mu.Unlock()

	e.logger.Info("Connected with Public Key",
		zap.String("address", publicKey.String()),
		zap.Bool("interactive", interactive),
	)
	return session, nil
}

// Current returns the active session
func (e *Establisher) Current() (*Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current, e.current != nil
}

// Disconnect drops the active session
func (e *Establisher) Disconnect() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current != nil {
		e.logger.Info("Disconnected", zap.String("address", e.current.PublicKeyString()))
	}
	e.current = nil
}
