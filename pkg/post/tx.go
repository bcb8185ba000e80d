package post

import (
	"github.com/gagliardetto/solana-go"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type initViaHubArgs struct {
	Slug string
	URI  string
}

type updateViaHubPostArgs struct {
	URI string
}

// InitViaHubAccounts collects the accounts of a post_init_via_hub
// instruction.
type InitViaHubAccounts struct {
	Author          solana.PublicKey
	Hub             solana.PublicKey
	Post            solana.PublicKey
	HubPost         solana.PublicKey
	HubContent      solana.PublicKey
	HubCollaborator solana.PublicKey
}

// ReferenceReleaseAccounts collects the additional accounts used when a post
// references a release.
type ReferenceReleaseAccounts struct {
	Release           solana.PublicKey
	ReleaseHubRelease solana.PublicKey
	ReleaseHubContent solana.PublicKey
}

// BuildInitViaHubInstruction builds the post_init_via_hub instruction.
func BuildInitViaHubInstruction(accounts InitViaHubAccounts, slug string, uri string) (solana.Instruction, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}
	if err := ValidateURI(uri); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("post_init_via_hub", initViaHubArgs{Slug: slug, URI: uri})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(shared.ProgramID, initMetas(accounts), data), nil
}

// BuildInitViaHubWithReferenceReleaseInstruction builds the
// post_init_via_hub_with_reference_release instruction, which also reposts
// the referenced release into the hub.
func BuildInitViaHubWithReferenceReleaseInstruction(
	accounts InitViaHubAccounts,
	reference ReferenceReleaseAccounts,
	slug string,
	uri string,
) (solana.Instruction, error) {
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}
	if err := ValidateURI(uri); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("post_init_via_hub_with_reference_release", initViaHubArgs{
		Slug: slug,
		URI:  uri,
	})
	if err != nil {
		return nil, err
	}

	metas := initMetas(accounts)
	metas = append(metas,
		solana.NewAccountMeta(reference.Release, false, false),
		solana.NewAccountMeta(reference.ReleaseHubRelease, true, false),
		solana.NewAccountMeta(reference.ReleaseHubContent, true, false),
	)

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}

func initMetas(accounts InitViaHubAccounts) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(accounts.Author, true, true),
		solana.NewAccountMeta(accounts.Hub, true, false),
		solana.NewAccountMeta(accounts.Post, true, false),
		solana.NewAccountMeta(accounts.HubPost, true, false),
		solana.NewAccountMeta(accounts.HubContent, true, false),
		solana.NewAccountMeta(accounts.HubCollaborator, false, false),
		solana.NewAccountMeta(solana.SystemProgramID, false, false),
		solana.NewAccountMeta(solana.SysVarRentPubkey, false, false),
	}
}

// BuildUpdateViaHubPostInstruction builds the post_update_via_hub_post
// instruction pointing a post at a new content URI.
func BuildUpdateViaHubPostInstruction(
	author solana.PublicKey,
	hub solana.PublicKey,
	postAccount solana.PublicKey,
	hubPost solana.PublicKey,
	hubCollaborator solana.PublicKey,
	uri string,
) (solana.Instruction, error) {
	if err := ValidateURI(uri); err != nil {
		return nil, err
	}

	data, err := shared.EncodeInstruction("post_update_via_hub_post", updateViaHubPostArgs{URI: uri})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.NewAccountMeta(author, false, true),
		solana.NewAccountMeta(hub, false, false),
		solana.NewAccountMeta(postAccount, true, false),
		solana.NewAccountMeta(hubPost, false, false),
		solana.NewAccountMeta(hubCollaborator, false, false),
	}

	return solana.NewInstruction(shared.ProgramID, metas, data), nil
}
