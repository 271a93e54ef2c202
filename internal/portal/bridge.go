package portal

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/gif-portal/internal/client"
	"github.com/AlexZinkM/gif-portal/internal/config"
	"github.com/AlexZinkM/gif-portal/internal/keypair"
	"github.com/AlexZinkM/gif-portal/internal/wallet"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountStatus tags the outcome of a board account read
type AccountStatus int

const (
	AccountNotInitialized AccountStatus = iota
	AccountReady
	AccountError
)

func (s AccountStatus) String() string {
	switch s {
	case AccountNotInitialized:
		return "not_initialized"
	case AccountReady:
		return "ready"
	default:
		return "error"
	}
}

// AccountState is the result of FetchAccount. Account is set only when Ready,
// Err only when Error.
type AccountState struct {
	Status  AccountStatus
	Account *BaseAccount
	Err     error
}

// Bridge issues the board program's remote procedures.
// Every call uses a fresh RPC client and its own timeout.
type Bridge struct {
	cfg       *config.Config
	programID solana.PublicKey
	keypair   *keypair.Keypair
	newClient client.Factory
	logger    *zap.Logger
}

// BridgeOption customizes a Bridge
type BridgeOption func(*Bridge)

// WithClientFactory replaces the RPC client factory
func WithClientFactory(f client.Factory) BridgeOption {
	return func(b *Bridge) {
		b.newClient = f
	}
}

// NewBridge creates a Bridge for the configured program and board keypair
func NewBridge(cfg *config.Config, kp *keypair.Keypair, logger *zap.Logger, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		cfg:       cfg,
		programID: cfg.ProgramPublicKey(),
		keypair:   kp,
		newClient: client.NewFactory(cfg),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BaseAccount returns the board account address
func (b *Bridge) BaseAccount() solana.PublicKey {
	return b.keypair.PublicKey()
}

// ProgramID returns the board program id
func (b *Bridge) ProgramID() solana.PublicKey {
	return b.programID
}

// FetchAccount reads the board account. A missing account is NotInitialized;
// every other failure is Error.
func (b *Bridge) FetchAccount(ctx context.Context) AccountState {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.RPCTimeout)
	defer cancel()

	acc, err := b.newClient().GetAccount(ctx, b.BaseAccount())
	if err != nil {
		if errors.Is(err, client.ErrAccountNotFound) {
			return AccountState{Status: AccountNotInitialized}
		}
		return AccountState{Status: AccountError, Err: &AccountFetchError{Err: err}}
	}

	if !acc.Owner.Equals(b.programID) {
		return AccountState{
			Status: AccountError,
			Err:    &AccountFetchError{Err: fmt.Errorf("account owned by %s, expected %s", acc.Owner, b.programID)},
		}
	}

	if acc.Data == nil {
		return AccountState{Status: AccountError, Err: &AccountFetchError{Err: errors.New("account has no data")}}
	}
	account, err := DecodeBaseAccount(acc.Data.GetBinary())
	if err != nil {
		return AccountState{Status: AccountError, Err: &AccountFetchError{Err: err}}
	}
	return AccountState{Status: AccountReady, Account: account}
}

// InitializeAccount sends startStuffOff, signed by the board keypair and the session wallet.
// Calling it for an existing account fails remotely and the error is returned.
func (b *Bridge) InitializeAccount(ctx context.Context, session *wallet.Session) (solana.Signature, error) {
	if session == nil || !session.Connected {
		return solana.Signature{}, ErrNoSession
	}

	ix := NewStartStuffOffInstruction(b.programID, b.BaseAccount(), session.PublicKey)
	return b.send(ctx, "startStuffOff", session, []solana.Instruction{ix}, b.signWithKeypair)
}

// SubmitGif sends addGif with link. An empty link is rejected before anything else.
func (b *Bridge) SubmitGif(ctx context.Context, session *wallet.Session, link string) (solana.Signature, error) {
	if link == "" {
		return solana.Signature{}, ErrEmptyGifLink
	}
	if session == nil || !session.Connected {
		return solana.Signature{}, ErrNoSession
	}

	ix, err := NewAddGifInstruction(b.programID, b.BaseAccount(), session.PublicKey, link)
	if err != nil {
		return solana.Signature{}, err
	}
	return b.send(ctx, "addGif", session, []solana.Instruction{ix})
}

// Balance returns the session wallet balance in lamports
func (b *Bridge) Balance(ctx context.Context, session *wallet.Session) (uint64, error) {
	if session == nil || !session.Connected {
		return 0, ErrNoSession
	}
	ctx, cancel := context.WithTimeout(ctx, b.cfg.RPCTimeout)
	defer cancel()

	return b.newClient().GetBalance(ctx, session.PublicKey)
}

// Airdrop requests lamports for the session wallet from the cluster faucet
func (b *Bridge) Airdrop(ctx context.Context, session *wallet.Session, lamports uint64) (solana.Signature, error) {
	if session == nil || !session.Connected {
		return solana.Signature{}, ErrNoSession
	}
	if lamports == 0 {
		return solana.Signature{}, errors.New("airdrop amount must be positive")
	}
	ctx, cancel := context.WithTimeout(ctx, b.cfg.RPCTimeout)
	defer cancel()

	sig, err := b.newClient().RequestAirdrop(ctx, session.PublicKey, lamports)
	if err != nil {
		return sig, &RemoteCallError{Method: "requestAirdrop", Err: err}
	}
	return sig, nil
}

func (b *Bridge) send(ctx context.Context, method string, session *wallet.Session, instructions []solana.Instruction, extra ...client.Signer) (solana.Signature, error) {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.RPCTimeout)
	defer cancel()

	requestID := uuid.NewString()
	logger := b.logger.With(
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("user", session.PublicKeyString()),
	)
	logger.Debug("Sending remote call")

	signers := append(extra, session.SignTransaction)
	sig, err := b.newClient().SendInstructions(ctx, session.PublicKey, instructions, signers...)
	if err != nil {
		return sig, &RemoteCallError{Method: method, Err: err}
	}

	logger.Info("Remote call confirmed", zap.String("tx_id", sig.String()))
	return sig, nil
}

func (b *Bridge) signWithKeypair(_ context.Context, tx *solana.Transaction) error {
	_, err := tx.PartialSign(b.keypair.Sign)
	return err
}
