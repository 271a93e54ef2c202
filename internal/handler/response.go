package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/gif-portal/internal/model"
	"github.com/AlexZinkM/gif-portal/internal/portal"
	"github.com/AlexZinkM/gif-portal/internal/wallet"
	"github.com/AlexZinkM/gif-portal/solana"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

// writeDomainError maps portal, wallet and keystore errors to a status code
func writeDomainError(w http.ResponseWriter, err error) {
	var amountErr *solana.AmountError
	switch {
	case errors.Is(err, portal.ErrEmptyGifLink):
		writeError(w, http.StatusBadRequest, "EMPTY_GIF_LINK", err)
	case errors.As(err, &amountErr):
		writeError(w, http.StatusBadRequest, "INVALID_AMOUNT", err)
	case errors.Is(err, portal.ErrNoSession):
		writeError(w, http.StatusUnauthorized, "NO_SESSION", err)
	case errors.Is(err, wallet.ErrProviderNotFound):
		writeError(w, http.StatusServiceUnavailable, "PROVIDER_NOT_FOUND", err)
	case errors.Is(err, wallet.ErrConnectionRejected):
		writeError(w, http.StatusForbidden, "CONNECTION_REJECTED", err)
	case errors.Is(err, portal.ErrAlreadyInitialized):
		writeError(w, http.StatusConflict, "ALREADY_INITIALIZED", err)
	case errors.Is(err, portal.ErrNotInitialized):
		writeError(w, http.StatusConflict, "NOT_INITIALIZED", err)
	case solana.IsFileExistsError(err):
		writeError(w, http.StatusConflict, "FILE_EXISTS", err)
	case portal.IsRemoteCallError(err):
		writeError(w, http.StatusBadGateway, "REMOTE_CALL_FAILED", err)
	case portal.IsAccountFetchError(err):
		writeError(w, http.StatusBadGateway, "ACCOUNT_FETCH_FAILED", err)
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL", err)
	}
}
