package shared

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
)

type fakeRPCClient struct {
	blockhashErr error
	sendErr      error
	sentCount    int

	statusSequence [][]*rpc.SignatureStatusesResult
	statusCalls    int

	accounts map[solana.PublicKey]*rpc.Account
}

func (f *fakeRPCClient) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	if f.blockhashErr != nil {
		return nil, f.blockhashErr
	}
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{
			Blockhash:            solana.Hash{1, 2, 3},
			LastValidBlockHeight: 100,
		},
	}, nil
}

func (f *fakeRPCClient) SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error) {
	if f.sendErr != nil {
		return solana.Signature{}, f.sendErr
	}
	f.sentCount++
	return tx.Signatures[0], nil
}

func (f *fakeRPCClient) GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	if len(f.statusSequence) == 0 {
		return &rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{nil}}, nil
	}
	index := f.statusCalls
	if index >= len(f.statusSequence) {
		index = len(f.statusSequence) - 1
	}
	f.statusCalls++
	return &rpc.GetSignatureStatusesResult{Value: f.statusSequence[index]}, nil
}

func (f *fakeRPCClient) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	if value, ok := f.accounts[account]; ok {
		return &rpc.GetAccountInfoResult{Value: value}, nil
	}
	return nil, rpc.ErrNotFound
}

func (f *fakeRPCClient) GetTokenAccountBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetTokenAccountBalanceResult, error) {
	return &rpc.GetTokenAccountBalanceResult{}, nil
}

func (f *fakeRPCClient) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error) {
	return 2039280, nil
}

func confirmedStatus() []*rpc.SignatureStatusesResult {
	return []*rpc.SignatureStatusesResult{{ConfirmationStatus: rpc.ConfirmationStatusConfirmed}}
}

func TestSubmitTransactionConfirms(t *testing.T) {
	payer := solana.NewWallet()
	recipient := solana.NewWallet()
	client := &fakeRPCClient{statusSequence: [][]*rpc.SignatureStatusesResult{confirmedStatus()}}

	instruction := system.NewTransferInstruction(1, payer.PublicKey(), recipient.PublicKey()).Build()

	signature, err := SubmitTransaction(
		context.Background(),
		client,
		[]solana.Instruction{instruction},
		payer.PublicKey(),
		[]solana.PrivateKey{payer.PrivateKey},
		SubmitOptions{},
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signature.IsZero() {
		t.Fatal("expected a signature")
	}
	if client.sentCount != 1 {
		t.Fatalf("expected one send, got %d", client.sentCount)
	}
}

func TestSubmitTransactionRequiresInstructions(t *testing.T) {
	payer := solana.NewWallet()
	_, err := SubmitTransaction(
		context.Background(),
		&fakeRPCClient{},
		nil,
		payer.PublicKey(),
		[]solana.PrivateKey{payer.PrivateKey},
		SubmitOptions{},
		nil,
	)
	if err == nil {
		t.Fatal("expected error for empty instruction list")
	}
}

func TestSubmitTransactionSendFailure(t *testing.T) {
	payer := solana.NewWallet()
	recipient := solana.NewWallet()
	client := &fakeRPCClient{sendErr: fmt.Errorf("blockhash not found")}

	instruction := system.NewTransferInstruction(1, payer.PublicKey(), recipient.PublicKey()).Build()

	_, err := SubmitTransaction(
		context.Background(),
		client,
		[]solana.Instruction{instruction},
		payer.PublicKey(),
		[]solana.PrivateKey{payer.PrivateKey},
		SubmitOptions{},
		nil,
	)
	if err == nil {
		t.Fatal("expected send error to propagate")
	}
}

func TestAwaitConfirmationOnChainFailure(t *testing.T) {
	client := &fakeRPCClient{
		statusSequence: [][]*rpc.SignatureStatusesResult{
			{{Err: map[string]any{"InstructionError": []any{0, "Custom"}}}},
		},
	}

	err := AwaitConfirmation(
		context.Background(),
		client,
		solana.Signature{9},
		rpc.CommitmentConfirmed,
		time.Second,
	)
	if err == nil {
		t.Fatal("expected on-chain failure to surface")
	}
}

func TestAwaitConfirmationTimeout(t *testing.T) {
	client := &fakeRPCClient{}

	err := AwaitConfirmation(
		context.Background(),
		client,
		solana.Signature{9},
		rpc.CommitmentConfirmed,
		50*time.Millisecond,
	)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestConfirmationSatisfies(t *testing.T) {
	if !confirmationSatisfies(rpc.ConfirmationStatusFinalized, rpc.CommitmentConfirmed) {
		t.Fatal("finalized must satisfy confirmed")
	}
	if confirmationSatisfies(rpc.ConfirmationStatusProcessed, rpc.CommitmentConfirmed) {
		t.Fatal("processed must not satisfy confirmed")
	}
	if !confirmationSatisfies(rpc.ConfirmationStatusProcessed, rpc.CommitmentProcessed) {
		t.Fatal("processed must satisfy processed")
	}
}
