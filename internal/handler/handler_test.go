package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AlexZinkM/gif-portal/internal/client"
	"github.com/AlexZinkM/gif-portal/internal/client/clienttest"
	"github.com/AlexZinkM/gif-portal/internal/config"
	"github.com/AlexZinkM/gif-portal/internal/crypto"
	"github.com/AlexZinkM/gif-portal/internal/keypair"
	"github.com/AlexZinkM/gif-portal/internal/model"
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

type testServer struct {
	rpc      *clienttest.FakeRPC
	provider *wallettest.Provider
	board    *keypair.Keypair
	cfg      *config.Config
	portal   *portal.Portal
	portalH  *PortalHandler
	walletH  *WalletHandler
}

func newTestServer(t *testing.T, env wallet.Environment, provider *wallettest.Provider) *testServer {
	t.Helper()

	s := &testServer{
		rpc:      clienttest.New(),
		provider: provider,
		board:    &keypair.Keypair{PrivateKey: solana.NewWallet().PrivateKey},
	}
	s.cfg = &config.Config{
		SolanaRPCURL:   "http://localhost:8899",
		ProgramID:      solana.NewWallet().PublicKey().String(),
		Commitment:     "processed",
		RPCTimeout:     5 * time.Second,
		WalletFilePath: filepath.Join(t.TempDir(), "wallet.cwt"),
	}
	require.NoError(t, s.cfg.Validate())

	factory := func() *client.SolanaClient {
		return client.NewSolanaClientWithRPC(s.rpc, s.cfg.CommitmentType())
	}
	bridge := portal.NewBridge(s.cfg, s.board, zap.NewNop(), portal.WithClientFactory(factory))
	s.portal = portal.New(env, bridge, zap.NewNop())
	s.portalH = NewPortalHandler(s.portal, s.cfg)
	s.walletH = NewWalletHandler(s.portal, s.cfg.WalletFilePath, config.NewPassword([]byte("dev")))

	// any send creates the board account
	s.rpc.OnSend = func(*solana.Transaction) {
		s.seedBoard(t)
	}
	return s
}

func (s *testServer) seedBoard(t *testing.T) {
	t.Helper()
	raw, err := portal.EncodeBaseAccount(&portal.BaseAccount{
		TotalGifs: 1,
		GifList:   []portal.GifItem{{GifLink: "https://media.giphy.com/a.gif", UserAddress: s.provider.PublicKey()}},
	})
	require.NoError(t, err)
	s.rpc.SetAccount(s.board.PublicKey(), s.cfg.ProgramPublicKey(), raw)
}

func connected(t *testing.T) *testServer {
	t.Helper()
	p := wallettest.New(true)
	s := newTestServer(t, wallet.StaticEnvironment{P: p}, p)
	s.portal.Load(context.Background())
	return s
}

func do(h http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestStatusWithoutProvider(t *testing.T) {
	s := newTestServer(t, wallet.StaticEnvironment{}, wallettest.New(true))
	s.portal.Load(context.Background())

	rec := do(s.portalH.Status, http.MethodGet, "/portal/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.StatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "disconnected", resp.State)
	assert.False(t, resp.Connected)
	assert.Len(t, resp.Notices, 1)
	assert.Equal(t, s.board.PublicKey().String(), resp.BaseAccount)
}

func TestStatusMethodNotAllowed(t *testing.T) {
	s := connected(t)
	rec := do(s.portalH.Status, http.MethodPost, "/portal/status", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestConnectWithoutProvider(t *testing.T) {
	s := newTestServer(t, wallet.StaticEnvironment{}, wallettest.New(true))

	rec := do(s.portalH.Connect, http.MethodPost, "/portal/connect", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "PROVIDER_NOT_FOUND", decodeError(t, rec).Code)
}

func TestConnectRejected(t *testing.T) {
	p := wallettest.New(false)
	p.Reject = true
	s := newTestServer(t, wallet.StaticEnvironment{P: p}, p)

	rec := do(s.portalH.Connect, http.MethodPost, "/portal/connect", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "CONNECTION_REJECTED", decodeError(t, rec).Code)
}

func TestConnectAndDisconnect(t *testing.T) {
	p := wallettest.New(false)
	s := newTestServer(t, wallet.StaticEnvironment{P: p}, p)

	rec := do(s.portalH.Connect, http.MethodPost, "/portal/connect", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var session model.SessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
	assert.Equal(t, p.PublicKey().String(), session.Address)
	assert.Equal(t, "uninitialized", session.State)

	rec = do(s.portalH.Disconnect, http.MethodPost, "/portal/disconnect", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, portal.StateDisconnected, s.portal.Status().State)
}

func TestInitializeAndList(t *testing.T) {
	s := connected(t)

	rec := do(s.portalH.Gifs, http.MethodGet, "/portal/gifs", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "NOT_INITIALIZED", decodeError(t, rec).Code)

	rec = do(s.portalH.Initialize, http.MethodPost, "/portal/initialize", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tx model.TxResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tx))
	assert.NotEmpty(t, tx.TxID)

	rec = do(s.portalH.Gifs, http.MethodGet, "/portal/gifs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list model.GifListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Equal(t, uint64(1), list.TotalGifs)
	require.Len(t, list.Gifs, 1)
	assert.Equal(t, s.provider.PublicKey().String(), list.Gifs[0].UserAddress)

	rec = do(s.portalH.Initialize, http.MethodPost, "/portal/initialize", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_INITIALIZED", decodeError(t, rec).Code)
	assert.Equal(t, 1, s.rpc.SentCount())
}

func TestSubmitGif(t *testing.T) {
	s := connected(t)
	s.seedBoard(t)
	s.portal.Refresh(context.Background())

	rec := do(s.portalH.Gifs, http.MethodPost, "/portal/gifs", model.GifRequest{GifLink: "https://media.giphy.com/b.gif"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, s.rpc.SentCount())
}

func TestSubmitEmptyGif(t *testing.T) {
	s := connected(t)

	rec := do(s.portalH.Gifs, http.MethodPost, "/portal/gifs", model.GifRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_GIF_LINK", decodeError(t, rec).Code)
	assert.Equal(t, 0, s.rpc.SentCount())
}

func TestSubmitInvalidBody(t *testing.T) {
	s := connected(t)

	req := httptest.NewRequest(http.MethodPost, "/portal/gifs", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.portalH.Gifs(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_BODY", decodeError(t, rec).Code)
}

func TestSubmitRemoteFailure(t *testing.T) {
	s := connected(t)
	s.seedBoard(t)
	s.portal.Refresh(context.Background())
	s.rpc.SendErr = errors.New("blockhash not found")

	rec := do(s.portalH.Gifs, http.MethodPost, "/portal/gifs", model.GifRequest{GifLink: "a"})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "REMOTE_CALL_FAILED", decodeError(t, rec).Code)
}

func TestGifsWithoutSession(t *testing.T) {
	p := wallettest.New(false)
	s := newTestServer(t, wallet.StaticEnvironment{P: p}, p)

	rec := do(s.portalH.Gifs, http.MethodGet, "/portal/gifs", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(s.portalH.Gifs, http.MethodDelete, "/portal/gifs", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBalanceAndAirdrop(t *testing.T) {
	s := connected(t)

	rec := do(s.walletH.Airdrop, http.MethodPost, "/wallet/airdrop", model.AirdropRequest{Amount: "1.5"})
	require.Equal(t, http.StatusOK, rec.Code)
	var airdrop model.AirdropResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&airdrop))
	assert.Equal(t, "1.500000000", airdrop.SOL)

	rec = do(s.walletH.GetBalance, http.MethodGet, "/wallet/balance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var balance model.BalanceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&balance))
	assert.Equal(t, s.provider.PublicKey().String(), balance.Address)
	assert.Equal(t, "1.500000000", balance.SOL)

	rec = do(s.walletH.Airdrop, http.MethodPost, "/wallet/airdrop", model.AirdropRequest{Amount: "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_AMOUNT", decodeError(t, rec).Code)
}

func TestBalanceWithoutSession(t *testing.T) {
	p := wallettest.New(false)
	s := newTestServer(t, wallet.StaticEnvironment{P: p}, p)

	rec := do(s.walletH.GetBalance, http.MethodGet, "/wallet/balance", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NO_SESSION", decodeError(t, rec).Code)
}

func TestGenerate(t *testing.T) {
	s := connected(t)

	rec := do(s.walletH.Generate, http.MethodPost, "/wallet/generate", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp model.GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)

	address, err := crypto.ReadWalletAddress(s.cfg.WalletFilePath)
	require.NoError(t, err)
	assert.Equal(t, resp.Address, address)

	rec = do(s.walletH.Generate, http.MethodPost, "/wallet/generate", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "FILE_EXISTS", decodeError(t, rec).Code)
}
