package exchange

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

// exchangeSignerSeed is the PDA seed prefix of exchange signing authorities.
const exchangeSignerSeed = "nina-exchange"

// SignerAddress derives the signing authority owned by an exchange. The
// exchange signer holds the escrow token account.
func SignerAddress(exchange solana.PublicKey) (solana.PublicKey, uint8, error) {
	address, bump, err := solana.FindProgramAddress(
		[][]byte{[]byte(exchangeSignerSeed), exchange.Bytes()},
		shared.ProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive program address: %w", err)
	}
	return address, bump, nil
}
