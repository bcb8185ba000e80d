package hub

import (
	"go.uber.org/zap"

	"github.com/nina-protocol/nina-sdk-go/pkg/indexer"
	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

// ContentType identifies the kind of child account a hub-content entry
// points at.
type ContentType string

const (
	ContentTypeRelease ContentType = "release"
	ContentTypePost    ContentType = "post"
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
	Handle      string
	URI         string
	PublishFee  uint64
	ReferralFee uint64
}

type UpdateConfigOptions struct {
	URI         string
	PublishFee  uint64
	ReferralFee uint64
}

type CollaboratorOptions struct {
	Collaborator       string
	CanAddContent      bool
	CanAddCollaborator bool
	// Allowance limits how many pieces of content the collaborator may add.
	// -1 means unlimited.
	Allowance int64
}

type TxResult struct {
	Signature string `json:"signature"`
}

type InitResult struct {
	Signature string       `json:"signature"`
	Hub       *indexer.Hub `json:"hub,omitempty"`
}
