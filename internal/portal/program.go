package portal

import (
	"bytes"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// Anchor discriminators of the board program
var (
	startStuffOffDiscriminator = bin.SighashInstruction("startStuffOff")
	addGifDiscriminator        = bin.SighashInstruction("addGif")
	baseAccountDiscriminator   = bin.Sighash(bin.SIGHASH_ACCOUNT_NAMESPACE, "BaseAccount")
)

// GifItem is one entry of the board
type GifItem struct {
	GifLink     string
	UserAddress solana.PublicKey
}

// BaseAccount is the board account state kept by the program
type BaseAccount struct {
	TotalGifs uint64
	GifList   []GifItem
}

type addGifArgs struct {
	GifLink string
}

// NewStartStuffOffInstruction builds the one-time board initialization.
// baseAccount and user both sign; user pays for the account.
func NewStartStuffOffInstruction(programID, baseAccount, user solana.PublicKey) solana.Instruction {
	return solana.NewInstruction(
		programID,
		solana.AccountMetaSlice{
			solana.Meta(baseAccount).WRITE().SIGNER(),
			solana.Meta(user).WRITE().SIGNER(),
			solana.Meta(solana.SystemProgramID),
		},
		append([]byte{}, startStuffOffDiscriminator...),
	)
}

// NewAddGifInstruction builds the append call carrying link
func NewAddGifInstruction(programID, baseAccount, user solana.PublicKey, link string) (solana.Instruction, error) {
	args, err := bin.MarshalBorsh(addGifArgs{GifLink: link})
	if err != nil {
		return nil, fmt.Errorf("failed to encode addGif args: %w", err)
	}

	data := make([]byte, 0, len(addGifDiscriminator)+len(args))
	data = append(data, addGifDiscriminator...)
	data = append(data, args...)

	return solana.NewInstruction(
		programID,
		solana.AccountMetaSlice{
			solana.Meta(baseAccount).WRITE(),
			solana.Meta(user).WRITE().SIGNER(),
		},
		data,
	), nil
}

// DecodeBaseAccount decodes raw account data, discriminator included.
// Trailing bytes (unused allocated space) are ignored.
func DecodeBaseAccount(data []byte) (*BaseAccount, error) {
	if len(data) < bin.ACCOUNT_DISCRIMINATOR_SIZE {
		return nil, errors.New("account data too short")
	}
	if !bytes.Equal(data[:bin.ACCOUNT_DISCRIMINATOR_SIZE], baseAccountDiscriminator) {
		return nil, errors.New("account is not a BaseAccount")
	}

	var account BaseAccount
	if err := bin.UnmarshalBorsh(&account, data[bin.ACCOUNT_DISCRIMINATOR_SIZE:]); err != nil {
		return nil, fmt.Errorf("failed to decode BaseAccount: %w", err)
	}
	return &account, nil
}

// EncodeBaseAccount is the inverse of DecodeBaseAccount
func EncodeBaseAccount(account *BaseAccount) ([]byte, error) {
	body, err := bin.MarshalBorsh(account)
	if err != nil {
		return nil, fmt.Errorf("failed to encode BaseAccount: %w", err)
	}
	return append(append([]byte{}, baseAccountDiscriminator...), body...), nil
}
