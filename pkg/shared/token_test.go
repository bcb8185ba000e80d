package shared

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

func TestUiToNative(t *testing.T) {
	if got := UiToNative(1.5, USDCDecimals); got != 1_500_000 {
		t.Fatalf("unexpected native amount: %d", got)
	}
	if got := UiToNative(0, USDCDecimals); got != 0 {
		t.Fatalf("expected zero, got %d", got)
	}
	if got := UiToNative(-3, USDCDecimals); got != 0 {
		t.Fatalf("expected zero for negative input, got %d", got)
	}
}

func TestNativeToUi(t *testing.T) {
	if got := NativeToUi(2_250_000, USDCDecimals); got != 2.25 {
		t.Fatalf("unexpected UI amount: %f", got)
	}
}

func TestUiNativeRoundTrip(t *testing.T) {
	if got := NativeToUi(UiToNative(12.34, USDCDecimals), USDCDecimals); got != 12.34 {
		t.Fatalf("round trip drifted: %f", got)
	}
}

func TestFindAssociatedTokenAddressDeterministic(t *testing.T) {
	wallet := solana.NewWallet().PublicKey()

	first, err := FindAssociatedTokenAddress(wallet, USDCMintDevnet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := FindAssociatedTokenAddress(wallet, USDCMintDevnet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Equals(second) {
		t.Fatal("derivation must be deterministic")
	}
}

func TestFindOrCreateAssociatedTokenAccountMissing(t *testing.T) {
	wallet := solana.NewWallet().PublicKey()
	client := &fakeRPCClient{}

	address, createInstruction, err := FindOrCreateAssociatedTokenAccount(
		context.Background(), client, wallet, wallet, USDCMintDevnet,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if createInstruction == nil {
		t.Fatal("expected create instruction for missing account")
	}
	if address.IsZero() {
		t.Fatal("expected derived address")
	}
}

func TestFindOrCreateAssociatedTokenAccountExisting(t *testing.T) {
	wallet := solana.NewWallet().PublicKey()
	expected, err := FindAssociatedTokenAddress(wallet, USDCMintDevnet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client := &fakeRPCClient{
		accounts: map[solana.PublicKey]*rpc.Account{
			expected: {Owner: solana.TokenProgramID},
		},
	}

	address, createInstruction, err := FindOrCreateAssociatedTokenAccount(
		context.Background(), client, wallet, wallet, USDCMintDevnet,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if createInstruction != nil {
		t.Fatal("expected no create instruction for existing account")
	}
	if !address.Equals(expected) {
		t.Fatalf("unexpected address: %s", address)
	}
}

func TestWrapSolInstructions(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	client := &fakeRPCClient{}

	account, instructions, err := WrapSolInstructions(context.Background(), client, owner, 1_000_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.IsZero() {
		t.Fatal("expected wrapped account address")
	}
	// create + transfer + sync when the WSOL account does not exist yet
	if len(instructions) != 3 {
		t.Fatalf("expected 3 instructions, got %d", len(instructions))
	}
}

func TestWrapSolInstructionsRejectsZero(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	if _, _, err := WrapSolInstructions(context.Background(), &fakeRPCClient{}, owner, 0); err == nil {
		t.Fatal("expected error for zero lamports")
	}
}

func TestUnwrapSolInstruction(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	instruction, err := UnwrapSolInstruction(owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !instruction.ProgramID().Equals(solana.TokenProgramID) {
		t.Fatalf("unexpected program: %s", instruction.ProgramID())
	}
}
