package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/AlexZinkM/gif-portal/internal/crypto"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// PasswordSource hands out a copy of the keystore password.
// Caller must zero the returned slice after use.
type PasswordSource interface {
	Bytes() ([]byte, error)
}

// LocalProvider is a wallet backed by an encrypted .cwt keystore on disk.
// Unlocking the keystore with the operator password is the approval step.
type LocalProvider struct {
	filePath string
	password PasswordSource
	logger   *zap.Logger

	mu      sync.Mutex
	trusted bool
}

// IsPhantom is always false: this is a local keystore, not the Phantom extension
func (p *LocalProvider) IsPhantom() bool {
	return false
}

// Connect returns the keystore address. A silent connect needs prior trust;
// an interactive connect decrypts the keystore and then trusts the origin.
func (p *LocalProvider) Connect(_ context.Context, opts ConnectOptions) (solana.PublicKey, error) {
	address, err := crypto.ReadWalletAddress(p.filePath)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to read wallet address: %w", err)
	}
	publicKey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid address: %w", err)
	}

	p.mu.Lock()
	trusted := p.trusted
	p.mu.Unlock()

	if opts.OnlyIfTrusted {
		if !trusted {
			return solana.PublicKey{}, ErrNotTrusted
		}
		return publicKey, nil
	}

	wallet, err := p.unlock(publicKey)
	if err != nil {
		return solana.PublicKey{}, err
	}
	clear(wallet)

	p.mu.Lock()
	p.trusted = true
	p.mu.Unlock()
	return publicKey, nil
}

// SignTransaction signs tx with the keystore key if it is one of the signers
func (p *LocalProvider) SignTransaction(_ context.Context, tx *solana.Transaction) error {
	address, err := crypto.ReadWalletAddress(p.filePath)
	if err != nil {
		return fmt.Errorf("failed to read wallet address: %w", err)
	}
	publicKey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}

	isSigner := false
	for _, key := range tx.Message.Signers() {
		if key.Equals(publicKey) {
			isSigner = true
			break
		}
	}
	if !isSigner {
		return fmt.Errorf("wallet %s is not a signer of this transaction", publicKey)
	}

	wallet, err := p.unlock(publicKey)
	if err != nil {
		return err
	}
	defer clear(wallet)

	if _, err := tx.PartialSign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(publicKey) {
			return &wallet
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}

	p.logger.Debug("Transaction signed", zap.String("address", publicKey.String()))
	return nil
}

// unlock decrypts the keystore and checks that the key matches the address.
// Caller must clear the returned key.
func (p *LocalProvider) unlock(publicKey solana.PublicKey) (solana.PrivateKey, error) {
	passwordBytes, err := p.password.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUserRejected, err)
	}
	defer clear(passwordBytes)

	_, walletData, err := crypto.DecryptWallet(p.filePath, passwordBytes)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidPassword) {
			return nil, fmt.Errorf("%w: %w", ErrUserRejected, err)
		}
		return nil, fmt.Errorf("failed to decrypt wallet: %w", err)
	}

	if len(walletData.PrivateKey) != 64 {
		clear(walletData.PrivateKey)
		return nil, errors.New("invalid private key length")
	}

	wallet := solana.PrivateKey(walletData.PrivateKey)
	if !wallet.PublicKey().Equals(publicKey) {
		clear(wallet)
		return nil, errors.New("private key does not match address")
	}
	return wallet, nil
}

// FileEnvironment exposes a LocalProvider when the keystore file exists
type FileEnvironment struct {
	filePath string
	password PasswordSource
	trusted  bool
	logger   *zap.Logger

	once     sync.Once
	provider *LocalProvider
}

// NewFileEnvironment creates an environment around the keystore at filePath.
// trusted pre-approves silent connects.
func NewFileEnvironment(filePath string, password PasswordSource, trusted bool, logger *zap.Logger) *FileEnvironment {
	return &FileEnvironment{
		filePath: filePath,
		password: password,
		trusted:  trusted,
		logger:   logger,
	}
}

// Provider implements Environment. The same provider is returned every time
// so that trust survives across calls.
func (e *FileEnvironment) Provider() (Provider, bool) {
	if !crypto.KeystoreExists(e.filePath) {
		return nil, false
	}
	e.once.Do(func() {
		e.provider = &LocalProvider{
			filePath: e.filePath,
			password: e.password,
			logger:   e.logger,
			trusted:  e.trusted,
		}
	})
	return e.provider, true
}
