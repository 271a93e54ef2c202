package model

// StatusResponse represents response for GET /portal/status
type StatusResponse struct {
	State       string   `json:"state"` // disconnected, uninitialized, ready, unavailable
	Connected   bool     `json:"connected"`
	Address     string   `json:"address,omitempty"`
	Network     string   `json:"network"`
	ProgramID   string   `json:"programId"`
	BaseAccount string   `json:"baseAccount"`
	Notices     []string `json:"notices,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// SessionResponse represents response for POST /portal/connect
type SessionResponse struct {
	Address   string `json:"address"`
	Connected bool   `json:"connected"`
	State     string `json:"state"`
}

// GifRequest represents request for POST /portal/gifs
type GifRequest struct {
	GifLink string `json:"gifLink" binding:"required"`
}

// Gif is one board entry
type Gif struct {
	GifLink     string `json:"gifLink"`
	UserAddress string `json:"userAddress"`
}

// GifListResponse represents response for GET /portal/gifs
type GifListResponse struct {
	TotalGifs uint64 `json:"totalGifs"`
	Gifs      []Gif  `json:"gifs"`
}

// TxResponse represents response for calls that send a transaction
type TxResponse struct {
	TxID string `json:"txId"`
}
