// Package clienttest provides an in-memory RPC for tests.
package clienttest

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// FakeRPC implements client.RPC on top of in-memory maps and counts every call.
type FakeRPC struct {
	mu sync.Mutex

	Accounts   map[solana.PublicKey]*rpc.Account
	AccountErr error
	Balances   map[solana.PublicKey]uint64
	SendErr    error
	TxErr      interface{} // reported as status.Err of every sent transaction

	// Status, when set, is reported for every signature instead of a finalized status
	Status *rpc.SignatureStatusesResult

	// OnSend is called with every transaction that is accepted, before it is recorded.
	OnSend func(tx *solana.Transaction)

	Sent          []*solana.Transaction
	AccountCalls  int
	BlockhashCall int
	Airdrops      []uint64
}

// New returns an empty FakeRPC
func New() *FakeRPC {
	return &FakeRPC{
		Accounts: map[solana.PublicKey]*rpc.Account{},
		Balances: map[solana.PublicKey]uint64{},
	}
}

// SetAccount stores an account owned by owner with the given data
func (f *FakeRPC) SetAccount(address, owner solana.PublicKey, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Accounts[address] = &rpc.Account{
		Lamports: 1,
		Owner:    owner,
		Data:     rpc.DataBytesOrJSONFromBytes(data),
	}
}

// SentCount returns how many transactions were sent
func (f *FakeRPC) SentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Sent)
}

// Calls returns how many account reads were made
func (f *FakeRPC) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.AccountCalls
}

func (f *FakeRPC) GetAccountInfoWithOpts(_ context.Context, account solana.PublicKey, _ *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AccountCalls++
	if f.AccountErr != nil {
		return nil, f.AccountErr
	}
	acc, ok := f.Accounts[account]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: acc}, nil
}

func (f *FakeRPC) GetBalance(_ context.Context, publicKey solana.PublicKey, _ rpc.CommitmentType) (*rpc.GetBalanceResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &rpc.GetBalanceResult{Value: f.Balances[publicKey]}, nil
}

func (f *FakeRPC) GetLatestBlockhash(_ context.Context, _ rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BlockhashCall++
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{Blockhash: solana.Hash{1, 2, 3}, LastValidBlockHeight: 100},
	}, nil
}

func (f *FakeRPC) SendTransactionWithOpts(_ context.Context, tx *solana.Transaction, _ rpc.TransactionOpts) (solana.Signature, error) {
	if f.SendErr != nil {
		return solana.Signature{}, f.SendErr
	}
	if f.OnSend != nil {
		f.OnSend(tx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Sent = append(f.Sent, tx)
	if len(tx.Signatures) == 0 {
		return solana.Signature{}, nil
	}
	return tx.Signatures[0], nil
}

func (f *FakeRPC) GetSignatureStatuses(_ context.Context, _ bool, sigs ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &rpc.GetSignatureStatusesResult{}
	for range sigs {
		if f.Status != nil {
			status := *f.Status
			out.Value = append(out.Value, &status)
			continue
		}
		out.Value = append(out.Value, &rpc.SignatureStatusesResult{
			ConfirmationStatus: rpc.ConfirmationStatusFinalized,
			Err:                f.TxErr,
		})
	}
	return out, nil
}

func (f *FakeRPC) RequestAirdrop(_ context.Context, account solana.PublicKey, lamports uint64, _ rpc.CommitmentType) (solana.Signature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Airdrops = append(f.Airdrops, lamports)
	f.Balances[account] += lamports
	return solana.Signature{9}, nil
}
