package hub

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

// PDA seed prefixes of the Nina program's hub accounts.
const (
	hubSeed             = "nina-hub"
	hubSignerSeed       = "nina-hub-signer"
	hubCollaboratorSeed = "nina-hub-collaborator"
	hubContentSeed      = "nina-hub-content"
	hubReleaseSeed      = "nina-hub-release"
	hubPostSeed         = "nina-hub-post"
)

// HubAddress derives the hub account for a handle.
func HubAddress(handle string) (solana.PublicKey, uint8, error) {
	return derive([][]byte{[]byte(hubSeed), []byte(handle)})
}

// HubSignerAddress derives the signing authority owned by a hub.
func HubSignerAddress(hub solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive([][]byte{[]byte(hubSignerSeed), hub.Bytes()})
}

// CollaboratorAddress derives the collaborator account for a hub member.
func CollaboratorAddress(hub solana.PublicKey, collaborator solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive([][]byte{[]byte(hubCollaboratorSeed), hub.Bytes(), collaborator.Bytes()})
}

// ContentAddress derives the content account tying a child account to a hub.
func ContentAddress(hub solana.PublicKey, child solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive([][]byte{[]byte(hubContentSeed), hub.Bytes(), child.Bytes()})
}

// ReleaseAddress derives the hub-release account for a release shown in a hub.
func ReleaseAddress(hub solana.PublicKey, release solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive([][]byte{[]byte(hubReleaseSeed), hub.Bytes(), release.Bytes()})
}

// PostAddress derives the hub-post account for a post published in a hub.
func PostAddress(hub solana.PublicKey, post solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive([][]byte{[]byte(hubPostSeed), hub.Bytes(), post.Bytes()})
}

func derive(seeds [][]byte) (solana.PublicKey, uint8, error) {
	address, bump, err := solana.FindProgramAddress(seeds, shared.ProgramID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive program address: %w", err)
	}
	return address, bump, nil
}
