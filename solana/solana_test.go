package solana

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlexZinkM/gif-portal/internal/client"
	"github.com/AlexZinkM/gif-portal/internal/client/clienttest"
	"github.com/AlexZinkM/gif-portal/internal/config"
	"github.com/AlexZinkM/gif-portal/internal/crypto"
	"github.com/AlexZinkM/gif-portal/internal/keypair"
	"github.com/AlexZinkM/gif-portal/internal/portal"
	"github.com/AlexZinkM/gif-portal/internal/wallet"
	"github.com/AlexZinkM/gif-portal/internal/wallet/wallettest"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	restore := crypto.SetWorkFactor(1 << 10)
	code := m.Run()
	restore()
	os.Exit(code)
}

func TestGenerateWallet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")

	address, err := GenerateWallet(path, []byte("dev"))
	require.NoError(t, err)
	_, err = solana.PublicKeyFromBase58(address)
	require.NoError(t, err)

	cwt, data, err := crypto.DecryptWallet(path, []byte("dev"))
	require.NoError(t, err)
	assert.Equal(t, address, cwt.Address)
	assert.Equal(t, networkSolana, cwt.Network)
	assert.NotEmpty(t, cwt.QR)
	assert.Equal(t, address, solana.PrivateKey(data.PrivateKey).PublicKey().String())

	_, err = GenerateWallet(path, []byte("dev"))
	assert.True(t, IsFileExistsError(err))
}

func TestGenerateWalletExtension(t *testing.T) {
	_, err := GenerateWallet(filepath.Join(t.TempDir(), "wallet.json"), []byte("dev"))
	assert.Error(t, err)
	assert.False(t, IsFileExistsError(err))
}

func TestGenerateWalletEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	_, err := GenerateWallet(path, []byte("dev"))
	assert.NoError(t, err)
}

func connectedBridge(t *testing.T) (*portal.Bridge, *wallet.Session, *clienttest.FakeRPC) {
	t.Helper()
	fake := clienttest.New()
	cfg := &config.Config{
		SolanaRPCURL: "http://localhost:8899",
		ProgramID:    solana.NewWallet().PublicKey().String(),
		Commitment:   "finalized",
		RPCTimeout:   time.Second,
	}
	require.NoError(t, cfg.Validate())

	factory := func() *client.SolanaClient {
		return client.NewSolanaClientWithRPC(fake, cfg.CommitmentType())
	}
	kp := &keypair.Keypair{PrivateKey: solana.NewWallet().PrivateKey}
	bridge := portal.NewBridge(cfg, kp, zap.NewNop(), portal.WithClientFactory(factory))

	p := wallettest.New(false)
	session, err := wallet.NewEstablisher(wallet.StaticEnvironment{P: p}, zap.NewNop()).Connect(context.Background(), true)
	require.NoError(t, err)
	return bridge, session, fake
}

func TestGetBalance(t *testing.T) {
	bridge, session, fake := connectedBridge(t)
	fake.Balances[session.PublicKey] = 24981836

	balance, err := GetBalance(context.Background(), bridge, session)
	require.NoError(t, err)
	assert.Equal(t, session.PublicKeyString(), balance.Address)
	assert.Equal(t, "0.024981836", balance.SOL)
}

func TestAirdrop(t *testing.T) {
	bridge, session, fake := connectedBridge(t)

	resp, err := Airdrop(context.Background(), bridge, session, "2")
	require.NoError(t, err)
	assert.Equal(t, "2.000000000", resp.SOL)
	assert.NotEmpty(t, resp.TxID)
	assert.Equal(t, []uint64{2 * solana.LAMPORTS_PER_SOL}, fake.Airdrops)

	for _, amount := range []string{"", "0", "-1", "1.2.3"} {
		_, err := Airdrop(context.Background(), bridge, session, amount)
		var amountErr *AmountError
		assert.ErrorAs(t, err, &amountErr, amount)
	}
	assert.Len(t, fake.Airdrops, 1)
}
