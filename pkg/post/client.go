package post

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/nina-protocol/nina-sdk-go/pkg/hub"
	"github.com/nina-protocol/nina-sdk-go/pkg/indexer"
	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type Client struct {
	rpcClient     shared.RPCClient
	indexerClient *indexer.Client
	wallet        solana.PrivateKey
	authority     solana.PublicKey
	logger        *zap.Logger
}

// NewClient creates a new Client.
func NewClient(config ClientConfig) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(config.PrivateKey) == "" {
		return nil, fmt.Errorf("private key is required")
	}
	wallet, err := shared.ParsePrivateKey(config.PrivateKey)
	if err != nil {
		return nil, err
	}

	rpcClient := config.RPC
	if rpcClient == nil {
		rpcClient, err = shared.NewRPCClient(network, config.RPCEndpoint)
		if err != nil {
			return nil, err
		}
	}

	indexerClient, err := indexer.NewClient(indexer.Config{
		Network: network,
		BaseURL: config.IndexerURL,
	})
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		rpcClient:     rpcClient,
		indexerClient: indexerClient,
		wallet:        wallet,
		authority:     wallet.PublicKey(),
		logger:        logger,
	}, nil
}

// Indexer returns the configured indexing API client.
func (c *Client) Indexer() *indexer.Client {
	return c.indexerClient
}

// Authority returns the wallet public key write operations sign with.
func (c *Client) Authority() solana.PublicKey {
	return c.authority
}

// InitViaHub publishes a post in a hub. The returned Post is nil when the
// indexer has not observed the transaction yet.
func (c *Client) InitViaHub(ctx context.Context, options InitViaHubOptions) (InitResult, error) {
	if err := ValidateInitViaHubOptions(options); err != nil {
		return InitResult{}, err
	}
	hubAccount, err := parsePublicKey(options.Hub, "hub")
	if err != nil {
		return InitResult{}, err
	}

	postAccount, _, err := PostAddress(hubAccount, options.Slug)
	if err != nil {
		return InitResult{}, err
	}
	hubPost, _, err := hub.PostAddress(hubAccount, postAccount)
	if err != nil {
		return InitResult{}, err
	}
	hubContent, _, err := hub.ContentAddress(hubAccount, postAccount)
	if err != nil {
		return InitResult{}, err
	}
	hubCollaborator, _, err := hub.CollaboratorAddress(hubAccount, c.authority)
	if err != nil {
		return InitResult{}, err
	}

	accounts := InitViaHubAccounts{
		Author:          c.authority,
		Hub:             hubAccount,
		Post:            postAccount,
		HubPost:         hubPost,
		HubContent:      hubContent,
		HubCollaborator: hubCollaborator,
	}

	var instruction solana.Instruction
	if strings.TrimSpace(options.ReferenceRelease) == "" {
		instruction, err = BuildInitViaHubInstruction(accounts, options.Slug, options.URI)
	} else {
		var reference ReferenceReleaseAccounts
		reference, err = c.referenceAccounts(hubAccount, options.ReferenceRelease)
		if err != nil {
			return InitResult{}, err
		}
		instruction, err = BuildInitViaHubWithReferenceReleaseInstruction(accounts, reference, options.Slug, options.URI)
	}
	if err != nil {
		return InitResult{}, err
	}

	signature, err := c.submit(ctx, []solana.Instruction{instruction})
	if err != nil {
		return InitResult{}, err
	}

	result := InitResult{Signature: signature.String()}
	created, fetchErr := c.indexerClient.GetPost(ctx, postAccount.String())
	if fetchErr != nil {
		c.logger.Debug("post not yet indexed",
			zap.String("post", postAccount.String()),
			zap.Error(fetchErr),
		)
		return result, nil
	}
	result.Post = created
	return result, nil
}

func (c *Client) referenceAccounts(hubAccount solana.PublicKey, referenceRelease string) (ReferenceReleaseAccounts, error) {
	releaseAccount, err := parsePublicKey(referenceRelease, "reference release")
	if err != nil {
		return ReferenceReleaseAccounts{}, err
	}
	releaseHubRelease, _, err := hub.ReleaseAddress(hubAccount, releaseAccount)
	if err != nil {
		return ReferenceReleaseAccounts{}, err
	}
	releaseHubContent, _, err := hub.ContentAddress(hubAccount, releaseAccount)
	if err != nil {
		return ReferenceReleaseAccounts{}, err
	}
	return ReferenceReleaseAccounts{
		Release:           releaseAccount,
		ReleaseHubRelease: releaseHubRelease,
		ReleaseHubContent: releaseHubContent,
	}, nil
}

// UpdateViaHubPost points the post with the given slug at a new content URI.
func (c *Client) UpdateViaHubPost(ctx context.Context, hubPublicKey string, slug string, uri string) (TxResult, error) {
	if err := ValidateSlug(slug); err != nil {
		return TxResult{}, err
	}
	hubAccount, err := parsePublicKey(hubPublicKey, "hub")
	if err != nil {
		return TxResult{}, err
	}

	postAccount, _, err := PostAddress(hubAccount, slug)
	if err != nil {
		return TxResult{}, err
	}
	hubPost, _, err := hub.PostAddress(hubAccount, postAccount)
	if err != nil {
		return TxResult{}, err
	}
	hubCollaborator, _, err := hub.CollaboratorAddress(hubAccount, c.authority)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildUpdateViaHubPostInstruction(
		c.authority, hubAccount, postAccount, hubPost, hubCollaborator, uri,
	)
	if err != nil {
		return TxResult{}, err
	}

	signature, err := c.submit(ctx, []solana.Instruction{instruction})
	if err != nil {
		return TxResult{}, err
	}
	return TxResult{Signature: signature.String()}, nil
}

// FetchAll returns the requested value.
func (c *Client) FetchAll(ctx context.Context, options indexer.QueryOptions) ([]indexer.Post, error) {
	return c.indexerClient.GetPosts(ctx, options)
}

// Fetch returns the requested value.
func (c *Client) Fetch(ctx context.Context, publicKey string) (*indexer.Post, error) {
	return c.indexerClient.GetPost(ctx, publicKey)
}

func (c *Client) submit(ctx context.Context, instructions []solana.Instruction) (solana.Signature, error) {
	return shared.SubmitTransaction(
		ctx,
		c.rpcClient,
		instructions,
		c.authority,
		[]solana.PrivateKey{c.wallet},
		shared.SubmitOptions{},
		c.logger,
	)
}

func parsePublicKey(raw string, label string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(strings.TrimSpace(raw))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid %s public key: %w", label, err)
	}
	return key, nil
}
