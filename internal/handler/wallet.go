package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/gif-portal/internal/model"
	"github.com/AlexZinkM/gif-portal/internal/portal"
	"github.com/AlexZinkM/gif-portal/internal/wallet"
	"github.com/AlexZinkM/gif-portal/solana"
)

// WalletHandler serves the local wallet: keystore generation, balance and faucet
type WalletHandler struct {
	portal   *portal.Portal
	filePath string
	password wallet.PasswordSource
}

// NewWalletHandler creates a new WalletHandler for the keystore at filePath
func NewWalletHandler(p *portal.Portal, filePath string, password wallet.PasswordSource) *WalletHandler {
	return &WalletHandler{
		portal:   p,
		filePath: filePath,
		password: password,
	}
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new Solana wallet and saves it to the configured .cwt keystore
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. should be POST", http.StatusMethodNotAllowed)
		return
	}

	passwordBytes, err := h.password.Bytes()
	if err != nil {
		writeError(w, http.StatusBadRequest, "NO_PASSWORD", err)
		return
	}
	defer clear(passwordBytes)

	address, err := solana.GenerateWallet(h.filePath, passwordBytes)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

// GetBalance handles GET /wallet/balance
// @Summary      Get wallet balance
// @Description  Gets the SOL balance of the connected wallet
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      401  {object}  model.ErrorResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	session, ok := h.portal.Session()
	if !ok {
		writeDomainError(w, portal.ErrNoSession)
		return
	}

	balance, err := solana.GetBalance(r.Context(), h.portal.Bridge(), session)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// Airdrop handles POST /wallet/airdrop
// @Summary      Request airdrop
// @Description  Requests SOL from the cluster faucet for the connected wallet (devnet/testnet)
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.AirdropRequest  true  "Amount in SOL"
// @Success      200      {object}  model.AirdropResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Router       /wallet/airdrop [post]
func (h *WalletHandler) Airdrop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.AirdropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body: %w", err))
		return
	}

	session, ok := h.portal.Session()
	if !ok {
		writeDomainError(w, portal.ErrNoSession)
		return
	}

	resp, err := solana.Airdrop(r.Context(), h.portal.Bridge(), session, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
