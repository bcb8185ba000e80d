package hub

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type initArgs struct {
	Handle        string
	URI           string
	PublishFee    uint64
	ReferralFee   uint64
	HubSignerBump uint8
}

type updateConfigArgs struct {
	URI         string
	PublishFee  uint64
	ReferralFee uint64
}

type collaboratorArgs struct {
	CanAddContent      bool
	CanAddCollaborator bool
	Allowance          int64
}

type withdrawArgs struct {
	Amount uint64
}

// InitAccounts collects the accounts of a hub_init instruction.
type InitAccounts struct {
	Authority              solana.PublicKey
	Hub                    solana.PublicKey
	HubSigner              solana.PublicKey
	Collaborator           solana.PublicKey
	PaymentMint            solana.PublicKey
	HubPaymentTokenAccount solana.PublicKey
}

// BuildInitInstruction builds the hub_init instruction.
func BuildInitInstruction(accounts InitAccounts, hubSignerBump uint8, options InitOptions) (solana.Instruction, error) {
	if err := ValidateHandle(options.Handle); err != nil {
		return nil, err
	}
	if err := ValidateURI(options.URI); err != nil {
		return nil, err
	}
	if err := ValidateFees(options.PublishFee, options.ReferralFee); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("hub_init", initArgs{
		Handle:        options.Handle,
		URI:           options.URI,
		PublishFee:    options.PublishFee,
		ReferralFee:   options.ReferralFee,
		HubSignerBump: hubSignerBump,
	})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Authority, true, true),
		solana.NewAccountMeta(accounts.Hub, true, false),
		solana.NewAccountMeta(accounts.HubSigner, true, false),
		solana.NewAccountMeta(accounts.Collaborator, true, false),
		solana.NewAccountMeta(accounts.PaymentMint, false, false),
		solana.NewAccountMeta(accounts.HubPaymentTokenAccount, true, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
		solana.NewAccountMeta(solana.SPLAssociatedTokenAccountProgramID, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildUpdateConfigInstruction builds the hub_update_config instruction.
func BuildUpdateConfigInstruction(
	authority solana.PublicKey,
	hub solana.PublicKey,
	options UpdateConfigOptions,
) (solana.Instruction, error) {
	if err := ValidateURI(options.URI); err != nil {
		return nil, err
	}
	if err := ValidateFees(options.PublishFee, options.ReferralFee); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("hub_update_config", updateConfigArgs{
		URI:         options.URI,
		PublishFee:  options.PublishFee,
		ReferralFee: options.ReferralFee,
	})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, false, true),
		solana.NewAccountMeta(hub, true, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildAddCollaboratorInstruction builds the hub_add_collaborator instruction.
func BuildAddCollaboratorInstruction(
	authority solana.PublicKey,
	authorityCollaborator solana.PublicKey,
	hub solana.PublicKey,
	collaboratorAccount solana.PublicKey,
	collaborator solana.PublicKey,
	options CollaboratorOptions,
) (solana.Instruction, error) {
	if err := ValidateCollaboratorOptions(options); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("hub_add_collaborator", collaboratorArgs{
		CanAddContent:      options.CanAddContent,
		CanAddCollaborator: options.CanAddCollaborator,
		Allowance:          options.Allowance,
	})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(authorityCollaborator, false, false),
		solana.NewAccountMeta(hub, false, false),
		solana.NewAccountMeta(collaboratorAccount, true, false),
		solana.NewAccountMeta(collaborator, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildUpdateCollaboratorPermissionsInstruction builds the
// hub_update_collaborator_permissions instruction.
func BuildUpdateCollaboratorPermissionsInstruction(
	authority solana.PublicKey,
	authorityCollaborator solana.PublicKey,
	hub solana.PublicKey,
	collaboratorAccount solana.PublicKey,
	options CollaboratorOptions,
) (solana.Instruction, error) {
	if err := ValidateCollaboratorOptions(options); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("hub_update_collaborator_permissions", collaboratorArgs{
		CanAddContent:      options.CanAddContent,
		CanAddCollaborator: options.CanAddCollaborator,
		Allowance:          options.Allowance,
	})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, false, true),
		solana.NewAccountMeta(authorityCollaborator, false, false),
		solana.NewAccountMeta(hub, false, false),
		solana.NewAccountMeta(collaboratorAccount, true, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildRemoveCollaboratorInstruction builds the hub_remove_collaborator
// instruction. Rent from the closed collaborator account returns to the
// collaborator wallet.
func BuildRemoveCollaboratorInstruction(
	authority solana.PublicKey,
	hub solana.PublicKey,
	collaboratorAccount solana.PublicKey,
	collaborator solana.PublicKey,
) (solana.Instruction, error) {
	data, err := shared.EncodeInstruction("hub_remove_collaborator", nil)
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(hub, false, false),
		solana.NewAccountMeta(collaboratorAccount, true, false),
		solana.NewAccountMeta(collaborator, true, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildAddReleaseInstruction builds the hub_add_release instruction used to
// repost an existing release into a hub.
func BuildAddReleaseInstruction(
	authority solana.PublicKey,
	authorityCollaborator solana.PublicKey,
	hub solana.PublicKey,
	release solana.PublicKey,
	hubContent solana.PublicKey,
	hubRelease solana.PublicKey,
) (solana.Instruction, error) {
	data, err := shared.EncodeInstruction("hub_add_release", nil)
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(hub, true, false),
		solana.NewAccountMeta(release, false, false),
		solana.NewAccountMeta(hubContent, true, false),
		solana.NewAccountMeta(hubRelease, true, false),
		solana.NewAccountMeta(authorityCollaborator, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildContentToggleVisibilityInstruction builds the
// hub_content_toggle_visibility instruction.
func BuildContentToggleVisibilityInstruction(
	authority solana.PublicKey,
	hub solana.PublicKey,
	hubContent solana.PublicKey,
	child solana.PublicKey,
) (solana.Instruction, error) {
	data, err := shared.EncodeInstruction("hub_content_toggle_visibility", nil)
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, false, true),
		solana.NewAccountMeta(hub, false, false),
		solana.NewAccountMeta(hubContent, true, false),
		solana.NewAccountMeta(child, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

// BuildWithdrawInstruction builds the hub_withdraw instruction moving
// accrued fees from the hub signer's token account to the authority's.
func BuildWithdrawInstruction(
	authority solana.PublicKey,
	hub solana.PublicKey,
	hubSigner solana.PublicKey,
	withdrawSource solana.PublicKey,
	withdrawDestination solana.PublicKey,
	paymentMint solana.PublicKey,
	amount uint64,
) (solana.Instruction, error) {
	if amount == 0 {
		return nil, fmt.Errorf("withdraw amount must be positive")
	}

	data, err := shared.EncodeInstruction("hub_withdraw", withdrawArgs{Amount: amount})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(authority, true, true),
		solana.NewAccountMeta(hub, false, false),
		solana.NewAccountMeta(hubSigner, false, false),
		solana.NewAccountMeta(withdrawSource, true, false),
		solana.NewAccountMeta(withdrawDestination, true, false),
		solana.NewAccountMeta(paymentMint, false, false),
		solana.NewAccountMeta(solana.TokenProgramID, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}
