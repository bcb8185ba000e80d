package exchange

import (
	"go.uber.org/zap"

	"github.com/nina-protocol/nina-sdk-go/pkg/indexer"
	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type ClientConfig struct {
	Network     string
	RPCEndpoint string
	IndexerURL  string
	PrivateKey  string

	// RPC overrides the RPC client, used by tests.
	RPC    shared.RPCClient
	Logger *zap.Logger
}

type InitOptions struct {
	Release string
	// IsSale is true when the initializer offers a release token for
	// payment, false when they offer payment for a release token.
	IsSale bool
	// ExpectedAmount is the native amount the initializer wants back: the
	// asking price for a sale, a single release token for a buy offer.
	ExpectedAmount uint64
	// InitializerAmount is the native amount escrowed: a single release
	// token for a sale, the bid for a buy offer.
	InitializerAmount uint64
}

type AcceptOptions struct {
	Exchange string
	// ExpectedAmount is the native amount the taker agrees to hand over.
	// The accept fails when it no longer matches the exchange, protecting
	// the taker against a repriced offer.
	ExpectedAmount uint64
}

type TxResult struct {
	Signature string `json:"signature"`
}

type InitResult struct {
	Signature string            `json:"signature"`
	PublicKey string            `json:"publicKey"`
	Exchange  *indexer.Exchange `json:"exchange,omitempty"`
}
