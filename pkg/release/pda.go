package release

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

// PDA seed prefixes of the Nina program's release accounts.
const (
	releaseSeed       = "nina-release"
	releaseSignerSeed = "nina-release-signer"
)

// ReleaseAddress derives the release account for a release mint.
func ReleaseAddress(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive([][]byte{[]byte(releaseSeed), mint.Bytes()})
}

// SignerAddress derives the signing authority owned by a release. The
// release signer holds the royalty token account and escrowed revenue.
func SignerAddress(release solana.PublicKey) (solana.PublicKey, uint8, error) {
	return derive([][]byte{[]byte(releaseSignerSeed), release.Bytes()})
}

func derive(seeds [][]byte) (solana.PublicKey, uint8, error) {
	address, bump, err := solana.FindProgramAddress(seeds, shared.ProgramID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive program address: %w", err)
	}
	return address, bump, nil
}
