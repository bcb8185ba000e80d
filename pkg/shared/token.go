package shared

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
)

// FindAssociatedTokenAddress derives the associated token account for the
// given wallet and mint.
func FindAssociatedTokenAddress(wallet solana.PublicKey, mint solana.PublicKey) (solana.PublicKey, error) {
	address, _, err := solana.FindAssociatedTokenAddress(wallet, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive associated token address: %w", err)
	}
	return address, nil
}

// FindOrCreateAssociatedTokenAccount derives the associated token account
// for wallet/mint and, when the account does not exist yet, returns the
// create instruction to prepend to the transaction. The instruction is nil
// when the account already exists.
func FindOrCreateAssociatedTokenAccount(
	ctx context.Context,
	client RPCClient,
	payer solana.PublicKey,
	wallet solana.PublicKey,
	mint solana.PublicKey,
) (solana.PublicKey, solana.Instruction, error) {
	address, err := FindAssociatedTokenAddress(wallet, mint)
	if err != nil {
		return solana.PublicKey{}, nil, err
	}

	accountInfo, err := client.GetAccountInfo(ctx, address)
	if err != nil && !errors.Is(err, rpc.ErrNotFound) {
		return solana.PublicKey{}, nil, fmt.Errorf("failed to look up token account %s: %w", address, err)
	}
	if err == nil && accountInfo != nil && accountInfo.Value != nil {
		return address, nil, nil
	}

	createInstruction := associatedtokenaccount.NewCreateInstruction(payer, wallet, mint).Build()
	return address, createInstruction, nil
}

// UiToNative converts a UI amount to the native integer representation for a
// mint with the given decimal count.
func UiToNative(amount float64, decimals uint8) uint64 {
	if amount <= 0 {
		return 0
	}
	return uint64(math.Round(amount * math.Pow10(int(decimals))))
}

// NativeToUi converts a native integer amount to its UI representation.
func NativeToUi(amount uint64, decimals uint8) float64 {
	return float64(amount) / math.Pow10(int(decimals))
}

// WrapSolInstructions returns the wrapped-SOL token account for owner along
// with the instructions that fund it with the given number of lamports:
// create the WSOL associated account if needed, transfer lamports into it,
// and sync its native balance.
func WrapSolInstructions(
	ctx context.Context,
	client RPCClient,
	owner solana.PublicKey,
	lamports uint64,
) (solana.PublicKey, []solana.Instruction, error) {
	if lamports == 0 {
		return solana.PublicKey{}, nil, fmt.Errorf("lamports must be positive")
	}

	wrappedAccount, createInstruction, err := FindOrCreateAssociatedTokenAccount(
		ctx, client, owner, owner, solana.WrappedSol,
	)
	if err != nil {
		return solana.PublicKey{}, nil, err
	}

	instructions := make([]solana.Instruction, 0, 3)
	if createInstruction != nil {
		instructions = append(instructions, createInstruction)
	}
	instructions = append(instructions,
		system.NewTransferInstruction(lamports, owner, wrappedAccount).Build(),
		token.NewSyncNativeInstruction(wrappedAccount).Build(),
	)

	return wrappedAccount, instructions, nil
}

// UnwrapSolInstruction closes the owner's wrapped-SOL associated account,
// returning its lamports to the owner.
func UnwrapSolInstruction(owner solana.PublicKey) (solana.Instruction, error) {
	wrappedAccount, err := FindAssociatedTokenAddress(owner, solana.WrappedSol)
	if err != nil {
		return nil, err
	}

	return token.NewCloseAccountInstruction(wrappedAccount, owner, owner, nil).Build(), nil
}
