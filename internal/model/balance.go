package model

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address string `json:"address"`
	SOL     string `json:"sol"`
}

// AirdropRequest represents request for POST /wallet/airdrop
type AirdropRequest struct {
	Amount string `json:"amount" binding:"required"` // SOL, decimal string
}

// AirdropResponse represents response for POST /wallet/airdrop
type AirdropResponse struct {
	TxID string `json:"txId"`
	SOL  string `json:"sol"`
}
