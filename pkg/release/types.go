package release

import (
	"go.uber.org/zap"

	"github.com/nina-protocol/nina-sdk-go/pkg/indexer"
	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

// PercentageDenominator is the base revenue share percentages are expressed
// in: a share of 250_000 is 25%.
const PercentageDenominator uint64 = 1_000_000

type ClientConfig struct {
	Network     string
	RPCEndpoint string
	IndexerURL  string
	PrivateKey  string

	// RPC overrides the RPC client, used by tests.
	RPC    shared.RPCClient
	Logger *zap.Logger
}

type InitViaHubOptions struct {
	Hub string
	// Amount is the edition size: how many copies can be sold.
	Amount uint64
	// Price is the native amount of the payment mint per copy.
	Price uint64
	// ResalePercentage is the royalty taken on secondary sales, in
	// millionths.
	ResalePercentage uint64
	Name             string
	Symbol           string
	MetadataURI      string
}

type RevenueShareTransferOptions struct {
	Release string
	// Recipient receives the transferred share.
	Recipient string
	// PercentShare is the portion of the caller's share to hand over, in
	// millionths.
	PercentShare uint64
}

type TxResult struct {
	Signature string `json:"signature"`
}

type InitResult struct {
	Signature string           `json:"signature"`
	Mint      string           `json:"mint"`
	Release   *indexer.Release `json:"release,omitempty"`
}

type PurchaseResult struct {
	Signature string           `json:"signature"`
	Release   *indexer.Release `json:"release,omitempty"`
}
