package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/gif-portal/internal/common"
	"github.com/AlexZinkM/gif-portal/internal/model"
	"github.com/AlexZinkM/gif-portal/internal/portal"
	"github.com/AlexZinkM/gif-portal/internal/wallet"
)

// GetBalance gets the SOL balance of the connected wallet
func GetBalance(ctx context.Context, bridge *portal.Bridge, session *wallet.Session) (*model.BalanceResponse, error) {
	lamports, err := bridge.Balance(ctx, session)
	if err != nil {
		return nil, err
	}

	return &model.BalanceResponse{
		Address: session.PublicKeyString(),
		SOL:     common.LamportsToSOL(lamports),
	}, nil
}

// Airdrop requests amount SOL (decimal string) for the connected wallet.
// Only devnet and testnet clusters have a faucet.
func Airdrop(ctx context.Context, bridge *portal.Bridge, session *wallet.Session, amount string) (*model.AirdropResponse, error) {
	lamports, err := common.SOLToLamports(amount)
	if err != nil {
		return nil, &AmountError{Message: fmt.Sprintf("invalid amount: %v", err)}
	}
	if lamports == 0 {
		return nil, &AmountError{Message: "amount must be positive"}
	}

	sig, err := bridge.Airdrop(ctx, session, lamports)
	if err != nil {
		return nil, err
	}

	return &model.AirdropResponse{
		TxID: sig.String(),
		SOL:  common.LamportsToSOL(lamports),
	}, nil
}

// AmountError is an error for a malformed airdrop amount
type AmountError struct {
	Message string
}

func (e *AmountError) Error() string {
	return e.Message
}
