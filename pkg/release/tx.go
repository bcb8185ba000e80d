package release

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type initViaHubArgs struct {
	Amount           uint64
	Price            uint64
	ResalePercentage uint64
	Name             string
	Symbol           string
	URI              string
}

type purchaseArgs struct {
	Amount uint64
}

type revenueShareTransferArgs struct {
	PercentShare uint64
}

type updateMetadataArgs struct {
	URI string
}

// InitViaHubAccounts collects the accounts of a release_init_via_hub
// instruction.
type InitViaHubAccounts struct {
	Authority           solana.PublicKey
	Release             solana.PublicKey
	ReleaseSigner       solana.PublicKey
	ReleaseMint         solana.PublicKey
	Hub                 solana.PublicKey
	HubSigner           solana.PublicKey
	HubCollaborator     solana.PublicKey
	HubContent          solana.PublicKey
	HubRelease          solana.PublicKey
	PaymentMint         solana.PublicKey
	RoyaltyTokenAccount solana.PublicKey
}

// BuildInitViaHubInstruction builds the release_init_via_hub instruction.
func BuildInitViaHubInstruction(accounts InitViaHubAccounts, options InitViaHubOptions) (solana.Instruction, error) {
	if err := ValidateInitViaHubOptions(options); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("release_init_via_hub", initViaHubArgs{
		Amount:           options.Amount,
		Price:            options.Price,
		ResalePercentage: options.ResalePercentage,
		Name:             options.Name,
		Symbol:           options.Symbol,
		URI:              options.MetadataURI,
	})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Authority, true, true),
		solana.NewAccountMeta(accounts.Release, true, false),
		solana.NewAccountMeta(accounts.ReleaseSigner, false, false),
		solana.NewAccountMeta(accounts.ReleaseMint, true, true),
		solana.NewAccountMeta(accounts.Hub, true, false),
		solana.NewAccountMeta(accounts.HubSigner, false, false),
		solana.NewAccountMeta(accounts.HubCollaborator, false, false),
		solana.NewAccountMeta(accounts.HubContent, true, false),
		solana.NewAccountMeta(accounts.HubRelease, true, false),
		solana.NewAccountMeta(accounts.PaymentMint, false, false),
		solana.NewAccountMeta(accounts.RoyaltyTokenAccount, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// PurchaseAccounts collects the accounts shared by release_purchase and
// release_purchase_via_hub.
type PurchaseAccounts struct {
	Payer                        solana.PublicKey
	Release                      solana.PublicKey
	ReleaseSigner                solana.PublicKey
	ReleaseMint                  solana.PublicKey
	PaymentMint                  solana.PublicKey
	PayerTokenAccount            solana.PublicKey
	PurchaserReleaseTokenAccount solana.PublicKey
	RoyaltyTokenAccount          solana.PublicKey
}

// BuildPurchaseInstruction builds the release_purchase instruction. Amount
// is the expected price in native payment mint units; the program rejects
// the purchase when it no longer matches the release price.
func BuildPurchaseInstruction(accounts PurchaseAccounts, amount uint64) (solana.Instruction, error) {
	data, err := shared.EncodeInstruction("release_purchase", purchaseArgs{Amount: amount})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(shared.ProgramID, purchaseMetas(accounts), data), nil
}

// HubPurchaseAccounts extends PurchaseAccounts with the hub accounts that
// earn a referral fee.
type HubPurchaseAccounts struct {
	PurchaseAccounts
	Hub             solana.PublicKey
	HubRelease      solana.PublicKey
	HubSigner       solana.PublicKey
	HubTokenAccount solana.PublicKey
}

// BuildPurchaseViaHubInstruction builds the release_purchase_via_hub
// instruction.
func BuildPurchaseViaHubInstruction(accounts HubPurchaseAccounts, amount uint64) (solana.Instruction, error) {
	data, err := shared.EncodeInstruction("release_purchase_via_hub", purchaseArgs{Amount: amount})
	if err != nil {
		return nil, err
	}

	metas := purchaseMetas(accounts.PurchaseAccounts)
	metas = append(metas,
		solana.NewAccountMeta(accounts.Hub, true, false),
		solana.NewAccountMeta(accounts.HubRelease, true, false),
		solana.NewAccountMeta(accounts.HubSigner, false, false),
		solana.NewAccountMeta(accounts.HubTokenAccount, true, false),
	)

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

func purchaseMetas(accounts PurchaseAccounts) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Payer, true, true),
		solana.NewAccountMeta(accounts.Release, true, false),
		solana.NewAccountMeta(accounts.ReleaseSigner, false, false),
		solana.NewAccountMeta(accounts.ReleaseMint, true, false),
		solana.NewAccountMeta(accounts.PaymentMint, false, false),
		solana.NewAccountMeta(accounts.PayerTokenAccount, true, false),
		solana.NewAccountMeta(accounts.PurchaserReleaseTokenAccount, true, false),
		solana.NewAccountMeta(accounts.RoyaltyTokenAccount, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
	}
}

// BuildRevenueShareCollectInstruction builds the
// release_revenue_share_collect instruction moving the caller's accrued
// revenue from the royalty token account to their own.
func BuildRevenueShareCollectInstruction(
	authority solana.PublicKey,
	authorityTokenAccount solana.PublicKey,
	release solana.PublicKey,
	releaseSigner solana.PublicKey,
	royaltyTokenAccount solana.PublicKey,
	paymentMint solana.PublicKey,
) (solana.Instruction, error) {
	data, err := shared.EncodeInstruction("release_revenue_share_collect", nil)
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(authorityTokenAccount, true, false),
		solana.NewAccountMeta(release, true, false),
		solana.NewAccountMeta(releaseSigner, false, false),
		solana.NewAccountMeta(royaltyTokenAccount, true, false),
		solana.NewAccountMeta(paymentMint, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildRevenueShareTransferInstruction builds the
// release_revenue_share_transfer instruction handing part of the caller's
// share to another authority.
func BuildRevenueShareTransferInstruction(
	authority solana.PublicKey,
	release solana.PublicKey,
	releaseSigner solana.PublicKey,
	royaltyTokenAccount solana.PublicKey,
	recipient solana.PublicKey,
	percentShare uint64,
) (solana.Instruction, error) {
	if percentShare == 0 || percentShare > PercentageDenominator {
		return nil, fmt.Errorf("percent share must be in (0, %d]", PercentageDenominator)
	}

	data, err := shared.EncodeInstruction("release_revenue_share_transfer", revenueShareTransferArgs{
		PercentShare: percentShare,
	})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(release, true, false),
		solana.NewAccountMeta(releaseSigner, false, false),
		solana.NewAccountMeta(royaltyTokenAccount, true, false),
		solana.NewAccountMeta(recipient, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildCloseEditionInstruction builds the release_close_edition instruction
// stopping further primary sales.
func BuildCloseEditionInstruction(
	authority solana.PublicKey,
	release solana.PublicKey,
	releaseSigner solana.PublicKey,
	releaseMint solana.PublicKey,
) (solana.Instruction, error) {
	data, err := shared.EncodeInstruction("release_close_edition", nil)
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(release, true, false),
		solana.NewAccountMeta(releaseSigner, false, false),
		solana.NewAccountMeta(releaseMint, true, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildUpdateMetadataInstruction builds the release_update_metadata
// instruction.
func BuildUpdateMetadataInstruction(
	authority solana.PublicKey,
	release solana.PublicKey,
	uri string,
) (solana.Instruction, error) {
	if err := ValidateMetadataURI(uri); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("release_update_metadata", updateMetadataArgs{URI: uri})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, false, true),
		solana.NewAccountMeta(release, true, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}
