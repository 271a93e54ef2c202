package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexZinkM/gif-portal/internal/config"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// ErrAccountNotFound is returned when the requested account does not exist on chain
var ErrAccountNotFound = errors.New("account not found")

// confirmPollInterval is how often signature status is polled while waiting for confirmation
var confirmPollInterval = 500 * time.Millisecond

// RPC is the subset of *rpc.Client used by SolanaClient
type RPC interface {
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetBalance(ctx context.Context, publicKey solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64, commitment rpc.CommitmentType) (solana.Signature, error)
}

var _ RPC = (*rpc.Client)(nil)

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient  RPC
	commitment rpc.CommitmentType
}

// Factory builds a fresh SolanaClient for a single call
type Factory func() *SolanaClient

// NewSolanaClient creates a new Solana client bound to the configured cluster.
func NewSolanaClient(cfg *config.Config) *SolanaClient {
	return NewSolanaClientWithRPC(rpc.New(cfg.SolanaRPCURL), cfg.CommitmentType())
}

// NewSolanaClientWithRPC creates a client over an existing RPC implementation
func NewSolanaClientWithRPC(r RPC, commitment rpc.CommitmentType) *SolanaClient {
	return &SolanaClient{
		rpcClient:  r,
		commitment: commitment,
	}
}

// NewFactory returns a Factory that creates a new client per call
func NewFactory(cfg *config.Config) Factory {
	return func() *SolanaClient {
		return NewSolanaClient(cfg)
	}
}

// Commitment returns the commitment level used by this client
func (c *SolanaClient) Commitment() rpc.CommitmentType {
	return c.commitment
}

// GetAccount returns raw account info, or ErrAccountNotFound if the account does not exist
func (c *SolanaClient) GetAccount(ctx context.Context, address solana.PublicKey) (*rpc.Account, error) {
	out, err := c.rpcClient.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: c.commitment,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account info: %w", err)
	}
	if out == nil || out.Value == nil {
		return nil, ErrAccountNotFound
	}
	return out.Value, nil
}

// GetBalance gets SOL balance in lamports
func (c *SolanaClient) GetBalance(ctx context.Context, address solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(ctx, address, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// Signer signs a built transaction before it is sent.
// Several signers may each add their own signature.
type Signer func(ctx context.Context, tx *solana.Transaction) error

// SendInstructions builds a transaction paid by payer, lets every signer sign it,
// sends it and waits until it reaches the client's commitment.
func (c *SolanaClient) SendInstructions(ctx context.Context, payer solana.PublicKey, instructions []solana.Instruction, signers ...Signer) (solana.Signature, error) {
	// Get latest blockhash
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}
	if recent == nil || recent.Value == nil {
		return solana.Signature{}, errors.New("failed to get recent blockhash: empty response")
	}

	// Create transaction
	tx, err := solana.NewTransaction(
		instructions,
		recent.Value.Blockhash,
		solana.TransactionPayer(payer),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Sign transaction, each signer adds its own signature
	for _, sign := range signers {
		if err := sign(ctx, tx); err != nil {
			return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
		}
	}

	// Send transaction
	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: c.commitment,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	// Wait for confirmation
	if err := c.WaitForConfirmation(ctx, sig); err != nil {
		return sig, err
	}
	return sig, nil
}

// WaitForConfirmation polls the signature status until it reaches the client's
// commitment, the transaction fails, or ctx is done.
func (c *SolanaClient) WaitForConfirmation(ctx context.Context, sig solana.Signature) error {
	ticker := time.NewTicker(confirmPollInterval)
	defer ticker.Stop()

	for {
		// Get signature status (nil while the node has not seen it yet)
		out, err := c.rpcClient.GetSignatureStatuses(ctx, false, sig)
		if err != nil && !errors.Is(err, rpc.ErrNotFound) {
			return fmt.Errorf("failed to get signature status: %w", err)
		}
		if err == nil && out != nil && len(out.Value) > 0 && out.Value[0] != nil {
			status := out.Value[0]
			if status.Err != nil {
				return fmt.Errorf("transaction %s failed: %v", sig, status.Err)
			}
			if reached(confirmationLevel(status), c.commitment) {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("transaction %s not confirmed: %w", sig, ctx.Err())
		case <-ticker.C:
		}
	}
}

// RequestAirdrop asks the cluster faucet for lamports and waits for confirmation
func (c *SolanaClient) RequestAirdrop(ctx context.Context, address solana.PublicKey, lamports uint64) (solana.Signature, error) {
	// Request lamports from the faucet
	sig, err := c.rpcClient.RequestAirdrop(ctx, address, lamports, c.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to request airdrop: %w", err)
	}

	// Wait for confirmation
	if err := c.WaitForConfirmation(ctx, sig); err != nil {
		return sig, err
	}
	return sig, nil
}

// confirmationLevel returns the status level. Nodes that leave confirmationStatus
// empty are read the legacy way: no confirmations count means rooted.
func confirmationLevel(status *rpc.SignatureStatusesResult) rpc.ConfirmationStatusType {
	if status.ConfirmationStatus != "" {
		return status.ConfirmationStatus
	}
	if status.Confirmations == nil {
		return rpc.ConfirmationStatusFinalized
	}
	return rpc.ConfirmationStatusProcessed
}

// reached reports whether status satisfies the wanted commitment
func reached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	rank := map[rpc.ConfirmationStatusType]int{
		rpc.ConfirmationStatusProcessed: 1,
		rpc.ConfirmationStatusConfirmed: 2,
		rpc.ConfirmationStatusFinalized: 3,
	}
	wantRank := map[rpc.CommitmentType]int{
		rpc.CommitmentProcessed: 1,
		rpc.CommitmentConfirmed: 2,
		rpc.CommitmentFinalized: 3,
	}[want]
	if wantRank == 0 {
		wantRank = 1
	}
	return rank[status] >= wantRank
}
