package shared

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const (
	NetworkMainnet = "mainnet"
	NetworkDevnet  = "devnet"
)

// ProgramID is the Nina program deployed on both mainnet and devnet.
var ProgramID = solana.MustPublicKeyFromBase58("ninaN2tm9vUkxoanvGcNApEeWiidLMM2TdBX8HoJuL4")

var (
	USDCMintMainnet = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	USDCMintDevnet  = solana.MustPublicKeyFromBase58("4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU")
)

// USDCDecimals is the decimal count of the USDC payment mint on both networks.
const USDCDecimals uint8 = 6

// Endpoints carries the per-network service addresses the SDK talks to.
type Endpoints struct {
	RPC         string
	Indexer     string
	FileService string
	USDCMint    solana.PublicKey
}

// NormalizeNetwork performs the requested operation.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkDevnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkDevnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// EndpointsForNetwork returns the default endpoints for the given network.
func EndpointsForNetwork(network string) (Endpoints, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return Endpoints{}, err
	}

	if normalized == NetworkMainnet {
		return Endpoints{
			RPC:         rpc.MainNetBeta_RPC,
			Indexer:     "https://api.ninaprotocol.com/v1",
			FileService: "https://files.ninaprotocol.com",
			USDCMint:    USDCMintMainnet,
		}, nil
	}

	return Endpoints{
		RPC:         rpc.DevNet_RPC,
		Indexer:     "https://dev.api.ninaprotocol.com/v1",
		FileService: "https://dev.files.ninaprotocol.com",
		USDCMint:    USDCMintDevnet,
	}, nil
}

// NewRPCClient creates an RPC client for the given network, or for the
// endpoint override when one is provided.
func NewRPCClient(network string, endpoint string) (*rpc.Client, error) {
	if strings.TrimSpace(endpoint) != "" {
		return rpc.New(strings.TrimSpace(endpoint)), nil
	}

	endpoints, err := EndpointsForNetwork(network)
	if err != nil {
		return nil, err
	}

	return rpc.New(endpoints.RPC), nil
}
