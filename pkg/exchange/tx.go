package exchange

import (
	"github.com/gagliardetto/solana-go"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type initArgs struct {
	ExpectedAmount    uint64
	InitializerAmount uint64
	IsSale            bool
	Bump              uint8
}

type cancelArgs struct {
	Amount uint64
}

type acceptArgs struct {
	ExpectedAmount uint64
}

// InitAccounts collects the accounts of an exchange_init instruction.
type InitAccounts struct {
	Initializer                    solana.PublicKey
	Release                        solana.PublicKey
	ReleaseMint                    solana.PublicKey
	Exchange                       solana.PublicKey
	ExchangeSigner                 solana.PublicKey
	ExchangeEscrowTokenAccount     solana.PublicKey
	InitializerSendingTokenAccount solana.PublicKey
}

// BuildInitInstruction builds the exchange_init instruction escrowing the
// initializer's side of the trade. The exchange account is a fresh keypair
// that must co-sign the transaction.
func BuildInitInstruction(accounts InitAccounts, options InitOptions, signerBump uint8) (solana.Instruction, error) {
	if err := ValidateInitOptions(options); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("exchange_init", initArgs{
		ExpectedAmount:    options.ExpectedAmount,
		InitializerAmount: options.InitializerAmount,
		IsSale:            options.IsSale,
		Bump:              signerBump,
	})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Initializer, true, true),
		solana.NewAccountMeta(accounts.Release, false, false),
		solana.NewAccountMeta(accounts.ReleaseMint, false, false),
		solana.NewAccountMeta(accounts.Exchange, true, true),
		solana.NewAccountMeta(accounts.ExchangeSigner, false, false),
		solana.NewAccountMeta(accounts.ExchangeEscrowTokenAccount, true, false),
		solana.NewAccountMeta(accounts.InitializerSendingTokenAccount, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildCancelInstruction builds the exchange_cancel instruction returning the
// escrowed amount to the initializer.
func BuildCancelInstruction(
	initializer solana.PublicKey,
	exchange solana.PublicKey,
	exchangeSigner solana.PublicKey,
	exchangeEscrowTokenAccount solana.PublicKey,
	initializerTokenAccount solana.PublicKey,
	amount uint64,
) (solana.Instruction, error) {
	data, err := shared.EncodeInstruction("exchange_cancel", cancelArgs{Amount: amount})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(initializer, true, true),
		solana.NewAccountMeta(exchange, true, false),
		solana.NewAccountMeta(exchangeSigner, false, false),
		solana.NewAccountMeta(exchangeEscrowTokenAccount, true, false),
		solana.NewAccountMeta(initializerTokenAccount, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// AcceptAccounts collects the accounts of an exchange_accept instruction.
type AcceptAccounts struct {
	Taker                           solana.PublicKey
	Initializer                     solana.PublicKey
	Exchange                        solana.PublicKey
	ExchangeSigner                  solana.PublicKey
	ExchangeEscrowTokenAccount      solana.PublicKey
	TakerSendingTokenAccount        solana.PublicKey
	TakerExpectedTokenAccount       solana.PublicKey
	InitializerExpectedTokenAccount solana.PublicKey
	Release                         solana.PublicKey
	ReleaseSigner                   solana.PublicKey
	RoyaltyTokenAccount             solana.PublicKey
}

// BuildAcceptInstruction builds the exchange_accept instruction settling both
// sides of the trade and paying the release's resale royalty.
func BuildAcceptInstruction(accounts AcceptAccounts, expectedAmount uint64) (solana.Instruction, error) {
	data, err := shared.EncodeInstruction("exchange_accept", acceptArgs{ExpectedAmount: expectedAmount})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Taker, true, true),
		solana.NewAccountMeta(accounts.Initializer, true, false),
		solana.NewAccountMeta(accounts.Exchange, true, false),
		solana.NewAccountMeta(accounts.ExchangeSigner, false, false),
		solana.NewAccountMeta(accounts.ExchangeEscrowTokenAccount, true, false),
		solana.NewAccountMeta(accounts.TakerSendingTokenAccount, true, false),
		solana.NewAccountMeta(accounts.TakerExpectedTokenAccount, true, false),
		solana.NewAccountMeta(accounts.InitializerExpectedTokenAccount, true, false),
		solana.NewAccountMeta(accounts.Release, true, false),
		solana.NewAccountMeta(accounts.ReleaseSigner, false, false),
		solana.NewAccountMeta(accounts.RoyaltyTokenAccount, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}
