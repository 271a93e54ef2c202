package config

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// It is built once by Load and passed by pointer; nothing mutates it afterwards.
// Note: Password is prompted at runtime and kept in a Password, not here.
type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	SolanaRPCURL   string        `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	ProgramID      string        `envconfig:"SOLANA_PROGRAM_ID" required:"true"`
	Commitment     string        `envconfig:"SOLANA_COMMITMENT" default:"processed"`
	KeypairPath    string        `envconfig:"KEYPAIR_PATH" default:"keypair.json"`
	WalletFilePath string        `envconfig:"WALLET_FILE_PATH" required:"true"`
	WalletTrusted  bool          `envconfig:"WALLET_TRUSTED" default:"false"`
	RPCTimeout     time.Duration `envconfig:"RPC_TIMEOUT" default:"30s"`
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WalletConfig is the part of the configuration the keystore commands need.
type WalletConfig struct {
	WalletFilePath string `envconfig:"WALLET_FILE_PATH" required:"true"`
}

// LoadWallet reads only the keystore settings, so generating a wallet
// works before the program id is known.
func LoadWallet() (*WalletConfig, error) {
	cfg := &WalletConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.WalletFilePath == "" {
		return nil, errors.New("WALLET_FILE_PATH must not be empty")
	}
	return cfg, nil
}

// Validate checks values that envconfig cannot check by itself.
func (c *Config) Validate() error {
	if c.SolanaRPCURL == "" {
		return errors.New("SOLANA_RPC_URL must not be empty")
	}
	if _, err := solana.PublicKeyFromBase58(c.ProgramID); err != nil {
		return fmt.Errorf("invalid SOLANA_PROGRAM_ID: %w", err)
	}
	switch rpc.CommitmentType(c.Commitment) {
	case rpc.CommitmentProcessed, rpc.CommitmentFinalized:
	default:
		return fmt.Errorf("SOLANA_COMMITMENT must be processed or finalized, got %q", c.Commitment)
	}
	if c.RPCTimeout <= 0 {
		return errors.New("RPC_TIMEOUT must be positive")
	}
	return nil
}

// ProgramPublicKey returns the remote program id. Validate guarantees it parses.
func (c *Config) ProgramPublicKey() solana.PublicKey {
	return solana.MustPublicKeyFromBase58(c.ProgramID)
}

// CommitmentType returns the commitment used for reads and confirmations
func (c *Config) CommitmentType() rpc.CommitmentType {
	return rpc.CommitmentType(c.Commitment)
}

// Password holds the keystore password in memory.
type Password struct {
	mu    sync.Mutex
	bytes []byte
}

// NewPassword copies raw into a new Password.
func NewPassword(raw []byte) *Password {
	p := &Password{bytes: make([]byte, len(raw))}
	copy(p.bytes, raw)
	return p
}

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input).
// Call this at startup before the server begins handling requests.
func PromptForPassword() (*Password, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter wallet password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	defer clear(raw)
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return NewPassword(raw), nil
}

// Bytes returns a copy of the password.
// Caller must zero the returned slice after use for security.
func (p *Password) Bytes() ([]byte, error) {
	if p == nil {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.bytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(p.bytes))
	copy(out, p.bytes)
	return out, nil
}

// Clear wipes the password from memory.
func (p *Password) Clear() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.bytes)
	p.bytes = nil
}
