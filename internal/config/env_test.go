package config

import (
	"testing"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProgramID = "Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOLANA_PROGRAM_ID", testProgramID)
	t.Setenv("WALLET_FILE_PATH", "/tmp/wallet.cwt")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.devnet.solana.com", cfg.SolanaRPCURL)
	assert.Equal(t, rpc.CommitmentProcessed, cfg.CommitmentType())
	assert.Equal(t, "keypair.json", cfg.KeypairPath)
	assert.Equal(t, 30*time.Second, cfg.RPCTimeout)
	assert.False(t, cfg.WalletTrusted)
	assert.Equal(t, testProgramID, cfg.ProgramPublicKey().String())
}

func TestLoadMissingProgramID(t *testing.T) {
	t.Setenv("SOLANA_PROGRAM_ID", "")
	t.Setenv("WALLET_FILE_PATH", "/tmp/wallet.cwt")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadWalletWithoutProgramID(t *testing.T) {
	t.Setenv("SOLANA_PROGRAM_ID", "")
	t.Setenv("WALLET_FILE_PATH", "/tmp/wallet.cwt")

	cfg, err := LoadWallet()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/wallet.cwt", cfg.WalletFilePath)
}

func TestLoadWalletEmptyPath(t *testing.T) {
	t.Setenv("WALLET_FILE_PATH", "")

	_, err := LoadWallet()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		SolanaRPCURL: "http://localhost:8899",
		ProgramID:    testProgramID,
		Commitment:   "finalized",
		RPCTimeout:   time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "confirmed commitment is not accepted", mutate: func(c *Config) { c.Commitment = "confirmed" }, wantErr: true},
		{name: "bad program id", mutate: func(c *Config) { c.ProgramID = "not-a-key" }, wantErr: true},
		{name: "empty rpc url", mutate: func(c *Config) { c.SolanaRPCURL = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.RPCTimeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordBytesIsCopy(t *testing.T) {
	p := NewPassword([]byte("dev"))

	b, err := p.Bytes()
	require.NoError(t, err)
	clear(b)

	again, err := p.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("dev"), again)

	p.Clear()
	_, err = p.Bytes()
	assert.Error(t, err)

	var nilPassword *Password
	_, err = nilPassword.Bytes()
	assert.Error(t, err)
}
