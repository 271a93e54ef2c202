package crypto

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/gif-portal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	restore := SetWorkFactor(1 << 10)
	code := m.Run()
	restore()
	os.Exit(code)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	data := &model.WalletData{PrivateKey: []byte{1, 2, 3, 4}, CreatedAt: "2026-01-01T00:00:00Z"}

	err := EncryptWallet(path, "solana", "addr", "qr", data, []byte("dev"))
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, utf8BOM, raw[:3])

	address, err := ReadWalletAddress(path)
	require.NoError(t, err)
	assert.Equal(t, "addr", address)

	header, decoded, err := DecryptWallet(path, []byte("dev"))
	require.NoError(t, err)
	assert.Equal(t, "solana", header.Network)
	assert.Equal(t, data.PrivateKey, decoded.PrivateKey)
	assert.Equal(t, data.CreatedAt, decoded.CreatedAt)
	assert.True(t, KeystoreExists(path))
}

func TestDecryptWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	require.NoError(t, EncryptWallet(path, "solana", "addr", "", &model.WalletData{}, []byte("dev")))

	_, _, err := DecryptWallet(path, []byte("nope"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestEncryptRefusesNonEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	err := EncryptWallet(path, "solana", "addr", "", &model.WalletData{}, []byte("dev"))
	assert.True(t, errors.Is(err, os.ErrExist))
}

func TestEncryptRequiresExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.json")
	err := EncryptWallet(path, "solana", "addr", "", &model.WalletData{}, []byte("dev"))
	assert.Error(t, err)
}

func TestReadWalletAddressMissingFile(t *testing.T) {
	_, err := ReadWalletAddress(filepath.Join(t.TempDir(), "missing.cwt"))
	assert.Error(t, err)
	assert.False(t, KeystoreExists(filepath.Join(t.TempDir(), "missing.cwt")))
}
