package shared

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

const confirmationPollInterval = 500 * time.Millisecond

// SubmitOptions controls transaction submission and confirmation.
type SubmitOptions struct {
	// Commitment to wait for after sending. Defaults to confirmed.
	Commitment rpc.CommitmentType
	// SkipPreflight disables the simulation pass before submission.
	SkipPreflight bool
	// Timeout bounds the confirmation wait. Defaults to 60s.
	Timeout time.Duration
}

// SubmitTransaction builds a transaction from the given instructions with a
// fresh blockhash, signs it with the provided signers, sends it, and waits
// for the requested commitment. It returns the transaction signature.
func SubmitTransaction(
	ctx context.Context,
	client RPCClient,
	instructions []solana.Instruction,
	feePayer solana.PublicKey,
	signers []solana.PrivateKey,
	options SubmitOptions,
	logger *zap.Logger,
) (solana.Signature, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(instructions) == 0 {
		return solana.Signature{}, fmt.Errorf("at least one instruction is required")
	}
	if len(signers) == 0 {
		return solana.Signature{}, fmt.Errorf("at least one signer is required")
	}

	commitment := options.Commitment
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	blockhashResult, err := client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to fetch latest blockhash: %w", err)
	}

	transaction, err := solana.NewTransaction(
		instructions,
		blockhashResult.Value.Blockhash,
		solana.TransactionPayer(feePayer),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to build transaction: %w", err)
	}

	_, err = transaction.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for index := range signers {
			if signers[index].PublicKey().Equals(key) {
				return &signers[index]
			}
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	signature, err := client.SendTransactionWithOpts(ctx, transaction, rpc.TransactionOpts{
		SkipPreflight:       options.SkipPreflight,
		PreflightCommitment: commitment,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.Debug("transaction sent",
		zap.Stringer("signature", signature),
		zap.String("commitment", string(commitment)),
	)

	if err := AwaitConfirmation(ctx, client, signature, commitment, timeout); err != nil {
		return signature, err
	}

	return signature, nil
}

// AwaitConfirmation polls signature status until the requested commitment is
// reached, the transaction fails, or the timeout expires.
func AwaitConfirmation(
	ctx context.Context,
	client RPCClient,
	signature solana.Signature,
	commitment rpc.CommitmentType,
	timeout time.Duration,
) error {
	deadlineCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(confirmationPollInterval)
	defer ticker.Stop()

	for {
		statuses, err := client.GetSignatureStatuses(deadlineCtx, true, signature)
		if err == nil && statuses != nil && len(statuses.Value) > 0 && statuses.Value[0] != nil {
			status := statuses.Value[0]
			if status.Err != nil {
				return fmt.Errorf("transaction %s failed on chain: %v", signature, status.Err)
			}
			if confirmationSatisfies(status.ConfirmationStatus, commitment) {
				return nil
			}
		}

		select {
		case <-deadlineCtx.Done():
			return fmt.Errorf("timed out waiting for confirmation of %s: %w", signature, deadlineCtx.Err())
		case <-ticker.C:
		}
	}
}

func confirmationSatisfies(status rpc.ConfirmationStatusType, commitment rpc.CommitmentType) bool {
	rank := map[rpc.ConfirmationStatusType]int{
		rpc.ConfirmationStatusProcessed: 0,
		rpc.ConfirmationStatusConfirmed: 1,
		rpc.ConfirmationStatusFinalized: 2,
	}

	required := 1
	switch commitment {
	case rpc.CommitmentProcessed:
		required = 0
	case rpc.CommitmentFinalized:
		required = 2
	}

	achieved, known := rank[status]
	return known && achieved >= required
}
