package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/gif-portal/internal/config"
	"github.com/AlexZinkM/gif-portal/internal/model"
	"github.com/AlexZinkM/gif-portal/internal/portal"
)

// PortalHandler serves the GIF board workflow
type PortalHandler struct {
	portal  *portal.Portal
	network string
}

// NewPortalHandler creates a new PortalHandler
func NewPortalHandler(p *portal.Portal, cfg *config.Config) *PortalHandler {
	return &PortalHandler{portal: p, network: cfg.SolanaRPCURL}
}

// Status handles GET /portal/status
// @Summary      Get portal status
// @Description  Returns the workflow state, the connected wallet and any detection notices
// @Tags         portal
// @Produce      json
// @Success      200  {object}  model.StatusResponse
// @Router       /portal/status [get]
func (h *PortalHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	status := h.portal.Status()
	resp := model.StatusResponse{
		State:       string(status.State),
		Network:     h.network,
		ProgramID:   h.portal.Bridge().ProgramID().String(),
		BaseAccount: h.portal.Bridge().BaseAccount().String(),
		Notices:     status.Notices,
	}
	if status.Session != nil {
		resp.Connected = status.Session.Connected
		resp.Address = status.Session.PublicKeyString()
	}
	if status.State == portal.StateUnavailable && status.Err != nil {
		resp.Error = status.Err.Error()
	}

	writeJSON(w, http.StatusOK, resp)
}

// Connect handles POST /portal/connect
// @Summary      Connect wallet
// @Description  Interactive connect; on success the board account is read
// @Tags         portal
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Failure      403  {object}  model.ErrorResponse
// @Failure      503  {object}  model.ErrorResponse
// @Router       /portal/connect [post]
func (h *PortalHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	session, err := h.portal.Connect(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SessionResponse{
		Address:   session.PublicKeyString(),
		Connected: session.Connected,
		State:     string(h.portal.Status().State),
	})
}

// Disconnect handles POST /portal/disconnect
// @Summary      Disconnect wallet
// @Tags         portal
// @Produce      json
// @Success      200  {object}  model.SessionResponse
// @Router       /portal/disconnect [post]
func (h *PortalHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	h.portal.Disconnect()
	writeJSON(w, http.StatusOK, model.SessionResponse{State: string(portal.StateDisconnected)})
}

// Initialize handles POST /portal/initialize
// @Summary      Initialize the board
// @Description  Sends startStuffOff, creating the board account. Refused when the account exists.
// @Tags         portal
// @Produce      json
// @Success      200  {object}  model.TxResponse
// @Failure      401  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /portal/initialize [post]
func (h *PortalHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	sig, err := h.portal.Initialize(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TxResponse{TxID: sig.String()})
}

// Gifs handles GET and POST /portal/gifs
func (h *PortalHandler) Gifs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListGifs(w, r)
	case http.MethodPost:
		h.SubmitGif(w, r)
	default:
		http.Error(w, "Method not allowed. Should be GET or POST", http.StatusMethodNotAllowed)
	}
}

// ListGifs handles GET /portal/gifs
// @Summary      List GIFs
// @Description  Returns the board as of the last read
// @Tags         portal
// @Produce      json
// @Success      200  {object}  model.GifListResponse
// @Failure      401  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /portal/gifs [get]
func (h *PortalHandler) ListGifs(w http.ResponseWriter, r *http.Request) {
	board, err := h.portal.Gifs()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := model.GifListResponse{TotalGifs: board.TotalGifs, Gifs: make([]model.Gif, 0, len(board.GifList))}
	for _, item := range board.GifList {
		resp.Gifs = append(resp.Gifs, model.Gif{
			GifLink:     item.GifLink,
			UserAddress: item.UserAddress.String(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// SubmitGif handles POST /portal/gifs
// @Summary      Submit a GIF
// @Description  Sends addGif with the link as given; the board is re-read afterwards
// @Tags         portal
// @Accept       json
// @Produce      json
// @Param        request  body      model.GifRequest  true  "GIF link"
// @Success      200      {object}  model.TxResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /portal/gifs [post]
func (h *PortalHandler) SubmitGif(w http.ResponseWriter, r *http.Request) {
	var req model.GifRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", fmt.Errorf("invalid request body: %w", err))
		return
	}

	sig, err := h.portal.SubmitGif(r.Context(), req.GifLink)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TxResponse{TxID: sig.String()})
}
