// Package portal drives the GIF board: wallet session, board initialization
// and GIF submission against the remote program.
package portal

import (
	"context"
	"errors"
	"sync"

	"github.com/AlexZinkM/gif-portal/internal/wallet"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// State of the submission workflow
type State string

const (
	StateDisconnected  State = "disconnected"
	StateUninitialized State = "uninitialized"
	StateReady         State = "ready"
	StateUnavailable   State = "unavailable" // board account read failed
)

// Status is a snapshot of the portal
type Status struct {
	State   State
	Session *wallet.Session
	Notices []string
	Err     error
}

// Portal runs the workflow Disconnected -> Uninitialized -> Ready.
// Operations that talk to the wallet or the program are serialized by opMu;
// mu guards only the cached state and is never held across a remote call,
// so Status and Gifs answer while an operation is in flight.
type Portal struct {
	env         wallet.Environment
	establisher *wallet.Establisher
	bridge      *Bridge
	logger      *zap.Logger

	opMu sync.Mutex

	mu      sync.Mutex
	account AccountState
	fetched bool
	gen     uint64 // bumped by Disconnect, stale reads are dropped
	notices []string
}

// New creates a Portal
func New(env wallet.Environment, bridge *Bridge, logger *zap.Logger) *Portal {
	return &Portal{
		env:         env,
		establisher: wallet.NewEstablisher(env, logger),
		bridge:      bridge,
		logger:      logger,
	}
}

// Bridge returns the underlying bridge
func (p *Portal) Bridge() *Bridge {
	return p.bridge
}

// Load detects the provider and tries a silent connect.
// Silent connect failures are logged and dropped.
func (p *Portal) Load(ctx context.Context) wallet.Detection {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	d := wallet.Detect(p.env, p.logger)
	if !d.Found {
		p.mu.Lock()
		p.notices = append(p.notices, wallet.ErrProviderNotFound.Error())
		p.mu.Unlock()
		return d
	}

	if _, err := p.establisher.Connect(ctx, false); err != nil {
		p.logger.Debug("Silent connect failed", zap.Error(err))
		return d
	}
	p.refresh(ctx)
	return d
}

// Connect performs an interactive connect and reads the board account
func (p *Portal) Connect(ctx context.Context) (*wallet.Session, error) {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	session, err := p.establisher.Connect(ctx, true)
	if err != nil {
		p.logger.Error("Wallet connect failed", zap.Error(err))
		return nil, err
	}
	p.refresh(ctx)
	return session, nil
}

// Disconnect drops the session and the cached board state.
// It does not wait for an operation in flight; that operation's board read is discarded.
func (p *Portal) Disconnect() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.establisher.Disconnect()
	p.account = AccountState{}
	p.fetched = false
	p.gen++
}

// Session returns the active wallet session
func (p *Portal) Session() (*wallet.Session, bool) {
	return p.establisher.Current()
}

// Status returns the current workflow state
func (p *Portal) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	session, _ := p.establisher.Current()
	return Status{
		State:   p.stateLocked(),
		Session: session,
		Notices: append([]string(nil), p.notices...),
		Err:     p.account.Err,
	}
}

// Refresh re-reads the board account
func (p *Portal) Refresh(ctx context.Context) (State, error) {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	if _, ok := p.establisher.Current(); !ok {
		return StateDisconnected, ErrNoSession
	}
	state := p.refresh(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked(), state.Err
}

// Initialize creates the board account. It is only sent when a fresh read
// finds no account; an existing account or a failed read stops it locally.
func (p *Portal) Initialize(ctx context.Context) (solana.Signature, error) {
	p.opMu.Lock()
	defer p.opMu.Unlock()

	session, ok := p.establisher.Current()
	if !ok {
		return solana.Signature{}, ErrNoSession
	}

	// Read the board first
	switch state := p.refresh(ctx); state.Status {
	case AccountReady:
		return solana.Signature{}, ErrAlreadyInitialized
	case AccountError:
		return solana.Signature{}, state.Err
	}

	// Create the account
	sig, err := p.bridge.InitializeAccount(ctx, session)
	if err != nil {
		p.logger.Error("Error creating BaseAccount account", zap.Error(err))
		return sig, err
	}
	p.logger.Info("Created a new BaseAccount",
		zap.String("address", p.bridge.BaseAccount().String()),
		zap.String("tx_id", sig.String()),
	)

	p.refresh(ctx)
	return sig, nil
}

// SubmitGif appends link to the board and then re-reads the board once.
// An empty link fails before any other check.
func (p *Portal) SubmitGif(ctx context.Context, link string) (solana.Signature, error) {
	if link == "" {
		p.logger.Info("Empty input. Try again.")
		return solana.Signature{}, ErrEmptyGifLink
	}

	p.opMu.Lock()
	defer p.opMu.Unlock()

	session, ok := p.establisher.Current()
	if !ok {
		return solana.Signature{}, ErrNoSession
	}

	p.mu.Lock()
	missing := p.fetched && p.account.Status == AccountNotInitialized
	p.mu.Unlock()
	if missing {
		return solana.Signature{}, ErrNotInitialized
	}

	sig, err := p.bridge.SubmitGif(ctx, session, link)
	if err != nil {
		p.logger.Error("Error sending GIF", zap.String("gif_link", link), zap.Error(err))
		return sig, err
	}
	p.logger.Info("GIF successfully sent to program", zap.String("gif_link", link), zap.String("tx_id", sig.String()))

	p.refresh(ctx)
	return sig, nil
}

// Gifs returns the board as of the last read.
func (p *Portal) Gifs() (*BaseAccount, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.stateLocked() {
	case StateDisconnected:
		return nil, ErrNoSession
	case StateUninitialized:
		return nil, ErrNotInitialized
	case StateUnavailable:
		return nil, p.account.Err
	}
	return p.account.Account, nil
}

// refresh reads the board account without holding mu and stores the result,
// unless Disconnect ran in the meantime. Callers hold opMu.
func (p *Portal) refresh(ctx context.Context) AccountState {
	p.mu.Lock()
	gen := p.gen
	p.mu.Unlock()

	state := p.bridge.FetchAccount(ctx)
	if state.Status == AccountError {
		p.logger.Error("Error in getGifList", zap.Error(state.Err))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen == gen {
		p.account = state
		p.fetched = true
	}
	return state
}

func (p *Portal) stateLocked() State {
	if _, ok := p.establisher.Current(); !ok {
		return StateDisconnected
	}
	if !p.fetched {
		return StateUninitialized
	}
	switch p.account.Status {
	case AccountReady:
		return StateReady
	case AccountError:
		return StateUnavailable
	default:
		return StateUninitialized
	}
}

// IsClientError reports whether err was caused by the caller rather than the remote side
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptyGifLink) ||
		errors.Is(err, ErrNoSession) ||
		errors.Is(err, ErrAlreadyInitialized) ||
		errors.Is(err, ErrNotInitialized)
}
