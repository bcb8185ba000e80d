package post

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

// postSeed is the PDA seed prefix of the Nina program's post accounts.
const postSeed = "nina-post"

// PostAddress derives the post account for a slug published in a hub.
func PostAddress(hub solana.PublicKey, slug string) (solana.PublicKey, uint8, error) {
	address, bump, err := solana.FindProgramAddress(
		[][]byte{[]byte(postSeed), hub.Bytes(), []byte(slug)},
		shared.ProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive program address: %w", err)
	}
	return address, bump, nil
}
