package post

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

type InitViaHubOptions struct {
	Hub  string
	Slug string
	URI  string
	// ReferenceRelease optionally names a release the post is about. The
	// release is reposted into the hub alongside the post.
	ReferenceRelease string
}

type TxResult struct {
	Signature string `json:"signature"`
}

type InitResult struct {
	Signature string        `json:"signature"`
	Post      *indexer.Post `json:"post,omitempty"`
}
