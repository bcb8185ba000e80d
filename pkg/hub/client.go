package hub

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/nina-protocol/nina-sdk-go/pkg/indexer"
	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type Client struct {
	rpcClient     shared.RPCClient
	indexerClient *indexer.Client
	wallet        solana.PrivateKey
	authority     solana.PublicKey
	paymentMint   solana.PublicKey
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

	endpoints, err := shared.EndpointsForNetwork(network)
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
		paymentMint:   endpoints.USDCMint,
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

// Init creates a hub for the configured wallet. The returned Hub is nil when
// the indexer has not observed the transaction yet.
func (c *Client) Init(ctx context.Context, options InitOptions) (InitResult, error) {
	hubAccount, _, err := HubAddress(options.Handle)
	if err != nil {
		return InitResult{}, err
	}
	hubSigner, hubSignerBump, err := HubSignerAddress(hubAccount)
	if err != nil {
		return InitResult{}, err
	}
	collaboratorAccount, _, err := CollaboratorAddress(hubAccount, c.authority)
	if err != nil {
		return InitResult{}, err
	}
	hubTokenAccount, err := shared.FindAssociatedTokenAddress(hubSigner, c.paymentMint)
	if err != nil {
		return InitResult{}, err
	}

	instruction, err := BuildInitInstruction(InitAccounts{
		Authority:              c.authority,
		Hub:                    hubAccount,
		HubSigner:              hubSigner,
		Collaborator:           collaboratorAccount,
		PaymentMint:            c.paymentMint,
		HubPaymentTokenAccount: hubTokenAccount,
	}, hubSignerBump, options)
	if err != nil {
		return InitResult{}, err
	}

	signature, err := c.submit(ctx, []solana.Instruction{instruction})
	if err != nil {
		return InitResult{}, err
	}

	result := InitResult{Signature: signature.String()}
	created, fetchErr := c.indexerClient.GetHub(ctx, options.Handle)
	if fetchErr != nil {
		c.logger.Debug("hub not yet indexed", zap.String("handle", options.Handle), zap.Error(fetchErr))
		return result, nil
	}
	result.Hub = created
	return result, nil
}

// UpdateConfig updates the hub's URI and fee configuration.
func (c *Client) UpdateConfig(ctx context.Context, hubPublicKey string, options UpdateConfigOptions) (TxResult, error) {
	hubAccount, err := parsePublicKey(hubPublicKey, "hub")
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildUpdateConfigInstruction(c.authority, hubAccount, options)
	if err != nil {
		return TxResult{}, err
	}

	signature, err := c.submit(ctx, []solana.Instruction{instruction})
	if err != nil {
		return TxResult{}, err
	}
	return TxResult{Signature: signature.String()}, nil
}

// AddCollaborator grants another wallet content or collaborator permissions
// on a hub.
func (c *Client) AddCollaborator(ctx context.Context, hubPublicKey string, options CollaboratorOptions) (TxResult, error) {
	if err := ValidateCollaboratorOptions(options); err != nil {
		return TxResult{}, err
	}
	hubAccount, err := parsePublicKey(hubPublicKey, "hub")
	if err != nil {
		return TxResult{}, err
	}
	collaborator, err := parsePublicKey(options.Collaborator, "collaborator")
	if err != nil {
		return TxResult{}, err
	}

	authorityCollaborator, _, err := CollaboratorAddress(hubAccount, c.authority)
	if err != nil {
		return TxResult{}, err
	}
	collaboratorAccount, _, err := CollaboratorAddress(hubAccount, collaborator)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildAddCollaboratorInstruction(
		c.authority, authorityCollaborator, hubAccount, collaboratorAccount, collaborator, options,
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

// UpdateCollaboratorPermissions changes an existing collaborator's
// permissions and allowance.
func (c *Client) UpdateCollaboratorPermissions(ctx context.Context, hubPublicKey string, options CollaboratorOptions) (TxResult, error) {
	if err := ValidateCollaboratorOptions(options); err != nil {
		return TxResult{}, err
	}
	hubAccount, err := parsePublicKey(hubPublicKey, "hub")
	if err != nil {
		return TxResult{}, err
	}
	collaborator, err := parsePublicKey(options.Collaborator, "collaborator")
	if err != nil {
		return TxResult{}, err
	}

	authorityCollaborator, _, err := CollaboratorAddress(hubAccount, c.authority)
	if err != nil {
		return TxResult{}, err
	}
	collaboratorAccount, _, err := CollaboratorAddress(hubAccount, collaborator)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildUpdateCollaboratorPermissionsInstruction(
		c.authority, authorityCollaborator, hubAccount, collaboratorAccount, options,
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

// RemoveCollaborator removes a collaborator from a hub.
func (c *Client) RemoveCollaborator(ctx context.Context, hubPublicKey string, collaboratorPublicKey string) (TxResult, error) {
	hubAccount, err := parsePublicKey(hubPublicKey, "hub")
	if err != nil {
		return TxResult{}, err
	}
	collaborator, err := parsePublicKey(collaboratorPublicKey, "collaborator")
	if err != nil {
		return TxResult{}, err
	}

	collaboratorAccount, _, err := CollaboratorAddress(hubAccount, collaborator)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildRemoveCollaboratorInstruction(c.authority, hubAccount, collaboratorAccount, collaborator)
	if err != nil {
		return TxResult{}, err
	}

	signature, err := c.submit(ctx, []solana.Instruction{instruction})
	if err != nil {
		return TxResult{}, err
	}
	return TxResult{Signature: signature.String()}, nil
}

// AddRelease reposts an existing release into a hub.
func (c *Client) AddRelease(ctx context.Context, hubPublicKey string, releasePublicKey string) (TxResult, error) {
	hubAccount, err := parsePublicKey(hubPublicKey, "hub")
	if err != nil {
		return TxResult{}, err
	}
	release, err := parsePublicKey(releasePublicKey, "release")
	if err != nil {
		return TxResult{}, err
	}

	authorityCollaborator, _, err := CollaboratorAddress(hubAccount, c.authority)
	if err != nil {
		return TxResult{}, err
	}
	hubContent, _, err := ContentAddress(hubAccount, release)
	if err != nil {
		return TxResult{}, err
	}
	hubRelease, _, err := ReleaseAddress(hubAccount, release)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildAddReleaseInstruction(
		c.authority, authorityCollaborator, hubAccount, release, hubContent, hubRelease,
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

// ContentToggleVisibility hides or re-shows a piece of hub content.
func (c *Client) ContentToggleVisibility(ctx context.Context, hubPublicKey string, childPublicKey string) (TxResult, error) {
	hubAccount, err := parsePublicKey(hubPublicKey, "hub")
	if err != nil {
		return TxResult{}, err
	}
	child, err := parsePublicKey(childPublicKey, "content")
	if err != nil {
		return TxResult{}, err
	}

	hubContent, _, err := ContentAddress(hubAccount, child)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildContentToggleVisibilityInstruction(c.authority, hubAccount, hubContent, child)
	if err != nil {
		return TxResult{}, err
	}

	signature, err := c.submit(ctx, []solana.Instruction{instruction})
	if err != nil {
		return TxResult{}, err
	}
	return TxResult{Signature: signature.String()}, nil
}

// Withdraw moves accrued fees from the hub signer's token account to the
// authority's associated token account, creating it if needed.
func (c *Client) Withdraw(ctx context.Context, hubPublicKey string, amount uint64) (TxResult, error) {
	hubAccount, err := parsePublicKey(hubPublicKey, "hub")
	if err != nil {
		return TxResult{}, err
	}

	hubSigner, _, err := HubSignerAddress(hubAccount)
	if err != nil {
		return TxResult{}, err
	}
	withdrawSource, err := shared.FindAssociatedTokenAddress(hubSigner, c.paymentMint)
	if err != nil {
		return TxResult{}, err
	}
	withdrawDestination, createDestination, err := shared.FindOrCreateAssociatedTokenAccount(
		ctx, c.rpcClient, c.authority, c.authority, c.paymentMint,
	)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildWithdrawInstruction(
		c.authority, hubAccount, hubSigner, withdrawSource, withdrawDestination, c.paymentMint, amount,
	)
	if err != nil {
		return TxResult{}, err
	}

	instructions := make([]solana.Instruction, 0, 2)
	if createDestination != nil {
		instructions = append(instructions, createDestination)
	}
	instructions = append(instructions, instruction)

	signature, err := c.submit(ctx, instructions)
	if err != nil {
		return TxResult{}, err
	}
	return TxResult{Signature: signature.String()}, nil
}

// FetchAll returns the requested value.
func (c *Client) FetchAll(ctx context.Context, options indexer.QueryOptions) ([]indexer.Hub, error) {
	return c.indexerClient.GetHubs(ctx, options)
}

// Fetch returns a hub by public key or handle.
func (c *Client) Fetch(ctx context.Context, publicKeyOrHandle string) (*indexer.Hub, error) {
	return c.indexerClient.GetHub(ctx, publicKeyOrHandle)
}

// FetchReleases returns the requested value.
func (c *Client) FetchReleases(ctx context.Context, publicKeyOrHandle string, options indexer.QueryOptions) ([]indexer.Release, error) {
	return c.indexerClient.GetHubReleases(ctx, publicKeyOrHandle, options)
}

// FetchPosts returns the requested value.
func (c *Client) FetchPosts(ctx context.Context, publicKeyOrHandle string, options indexer.QueryOptions) ([]indexer.Post, error) {
	return c.indexerClient.GetHubPosts(ctx, publicKeyOrHandle, options)
}

// FetchCollaborators returns the requested value.
func (c *Client) FetchCollaborators(ctx context.Context, publicKeyOrHandle string) ([]indexer.Collaborator, error) {
	return c.indexerClient.GetHubCollaborators(ctx, publicKeyOrHandle)
}

// FetchContent returns the hub with its releases, posts, and collaborators.
func (c *Client) FetchContent(ctx context.Context, publicKeyOrHandle string) (*indexer.HubContent, error) {
	return c.indexerClient.GetHubContent(ctx, publicKeyOrHandle)
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
