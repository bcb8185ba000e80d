package release

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/nina-protocol/nina-sdk-go/pkg/hub"
	"github.com/nina-protocol/nina-sdk-go/pkg/indexer"
	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

// mintAccountSize is the byte size of an SPL token mint account.
const mintAccountSize = 82

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

// InitViaHub publishes a release through a hub. A fresh mint keypair is
// generated and co-signs the transaction. The returned Release is nil when
// the indexer has not observed the transaction yet.
func (c *Client) InitViaHub(ctx context.Context, options InitViaHubOptions) (InitResult, error) {
	if err := ValidateInitViaHubOptions(options); err != nil {
		return InitResult{}, err
	}
	hubAccount, err := parsePublicKey(options.Hub, "hub")
	if err != nil {
		return InitResult{}, err
	}

	mint := solana.NewWallet()
	releaseAccount, _, err := ReleaseAddress(mint.PublicKey())
	if err != nil {
		return InitResult{}, err
	}
	releaseSigner, _, err := SignerAddress(releaseAccount)
	if err != nil {
		return InitResult{}, err
	}

	hubSigner, _, err := hub.HubSignerAddress(hubAccount)
	if err != nil {
		return InitResult{}, err
	}
	hubCollaborator, _, err := hub.CollaboratorAddress(hubAccount, c.authority)
	if err != nil {
		return InitResult{}, err
	}
	hubContent, _, err := hub.ContentAddress(hubAccount, releaseAccount)
	if err != nil {
		return InitResult{}, err
	}
	hubRelease, _, err := hub.ReleaseAddress(hubAccount, releaseAccount)
	if err != nil {
		return InitResult{}, err
	}
	royaltyTokenAccount, err := shared.FindAssociatedTokenAddress(releaseSigner, c.paymentMint)
	if err != nil {
		return InitResult{}, err
	}

	rentExemption, err := c.rpcClient.GetMinimumBalanceForRentExemption(ctx, mintAccountSize, rpc.CommitmentFinalized)
	if err != nil {
		return InitResult{}, fmt.Errorf("failed to fetch rent exemption: %w", err)
	}

	createMint := system.NewCreateAccountInstruction(
		rentExemption,
		mintAccountSize,
		solana.TokenProgramID,
		c.authority,
		mint.PublicKey(),
	).Build()

	initInstruction, err := BuildInitViaHubInstruction(InitViaHubAccounts{
		Authority:           c.authority,
		Release:             releaseAccount,
		ReleaseSigner:       releaseSigner,
		ReleaseMint:         mint.PublicKey(),
		Hub:                 hubAccount,
		HubSigner:           hubSigner,
		HubCollaborator:     hubCollaborator,
		HubContent:          hubContent,
		HubRelease:          hubRelease,
		PaymentMint:         c.paymentMint,
		RoyaltyTokenAccount: royaltyTokenAccount,
	}, options)
	if err != nil {
		return InitResult{}, err
	}

	signature, err := shared.SubmitTransaction(
		ctx,
		c.rpcClient,
		[]solana.Instruction{createMint, initInstruction},
		c.authority,
		[]solana.PrivateKey{c.wallet, mint.PrivateKey},
		shared.SubmitOptions{},
		c.logger,
	)
	if err != nil {
		return InitResult{}, err
	}

	result := InitResult{
		Signature: signature.String(),
		Mint:      mint.PublicKey().String(),
	}
	created, fetchErr := c.indexerClient.GetRelease(ctx, releaseAccount.String())
	if fetchErr != nil {
		c.logger.Debug("release not yet indexed",
			zap.String("release", releaseAccount.String()),
			zap.Error(fetchErr),
		)
		return result, nil
	}
	result.Release = created
	return result, nil
}

// Purchase buys one copy of a release at its listed price.
func (c *Client) Purchase(ctx context.Context, releasePublicKey string) (PurchaseResult, error) {
	state, accounts, prelude, err := c.preparePurchase(ctx, releasePublicKey)
	if err != nil {
		return PurchaseResult{}, err
	}

	instruction, err := BuildPurchaseInstruction(accounts, state.AccountData.Price)
	if err != nil {
		return PurchaseResult{}, err
	}

	return c.finishPurchase(ctx, releasePublicKey, append(prelude, instruction))
}

// PurchaseViaHub buys one copy of a release through a hub, paying the hub
// its referral fee.
func (c *Client) PurchaseViaHub(ctx context.Context, releasePublicKey string, hubPublicKey string) (PurchaseResult, error) {
	hubAccount, err := parsePublicKey(hubPublicKey, "hub")
	if err != nil {
		return PurchaseResult{}, err
	}

	state, accounts, prelude, err := c.preparePurchase(ctx, releasePublicKey)
	if err != nil {
		return PurchaseResult{}, err
	}

	hubSigner, _, err := hub.HubSignerAddress(hubAccount)
	if err != nil {
		return PurchaseResult{}, err
	}
	hubRelease, _, err := hub.ReleaseAddress(hubAccount, accounts.Release)
	if err != nil {
		return PurchaseResult{}, err
	}
	hubTokenAccount, err := shared.FindAssociatedTokenAddress(hubSigner, accounts.PaymentMint)
	if err != nil {
		return PurchaseResult{}, err
	}

	instruction, err := BuildPurchaseViaHubInstruction(HubPurchaseAccounts{
		PurchaseAccounts: accounts,
		Hub:              hubAccount,
		HubRelease:       hubRelease,
		HubSigner:        hubSigner,
		HubTokenAccount:  hubTokenAccount,
	}, state.AccountData.Price)
	if err != nil {
		return PurchaseResult{}, err
	}

	return c.finishPurchase(ctx, releasePublicKey, append(prelude, instruction))
}

// preparePurchase fetches release state, checks it is purchasable, and
// assembles the shared account set plus any token account preludes (payment
// account creation or SOL wrapping).
func (c *Client) preparePurchase(ctx context.Context, releasePublicKey string) (*indexer.Release, PurchaseAccounts, []solana.Instruction, error) {
	releaseAccount, err := parsePublicKey(releasePublicKey, "release")
	if err != nil {
		return nil, PurchaseAccounts{}, nil, err
	}

	state, err := c.indexerClient.GetRelease(ctx, releasePublicKey)
	if err != nil {
		return nil, PurchaseAccounts{}, nil, NewNotFoundError(releasePublicKey)
	}
	if state.AccountData.EditionClosed {
		return nil, PurchaseAccounts{}, nil, NewEditionClosedError(releasePublicKey)
	}
	if state.AccountData.RemainingSupply == 0 {
		return nil, PurchaseAccounts{}, nil, NewSoldOutError(releasePublicKey)
	}

	releaseMint, err := parsePublicKey(state.Mint, "release mint")
	if err != nil {
		return nil, PurchaseAccounts{}, nil, err
	}
	paymentMint, err := parsePublicKey(state.AccountData.PaymentMint, "payment mint")
	if err != nil {
		return nil, PurchaseAccounts{}, nil, err
	}

	releaseSigner, _, err := SignerAddress(releaseAccount)
	if err != nil {
		return nil, PurchaseAccounts{}, nil, err
	}
	royaltyTokenAccount, err := shared.FindAssociatedTokenAddress(releaseSigner, paymentMint)
	if err != nil {
		return nil, PurchaseAccounts{}, nil, err
	}

	prelude := make([]solana.Instruction, 0, 4)

	var payerTokenAccount solana.PublicKey
	if paymentMint.Equals(solana.WrappedSol) {
		wrapped, wrapInstructions, wrapErr := shared.WrapSolInstructions(
			ctx, c.rpcClient, c.authority, state.AccountData.Price,
		)
		if wrapErr != nil {
			return nil, PurchaseAccounts{}, nil, wrapErr
		}
		payerTokenAccount = wrapped
		prelude = append(prelude, wrapInstructions...)
	} else {
		account, createInstruction, ataErr := shared.FindOrCreateAssociatedTokenAccount(
			ctx, c.rpcClient, c.authority, c.authority, paymentMint,
		)
		if ataErr != nil {
			return nil, PurchaseAccounts{}, nil, ataErr
		}
		payerTokenAccount = account
		if createInstruction != nil {
			prelude = append(prelude, createInstruction)
		}
	}

	purchaserReleaseTokenAccount, createReleaseAccount, err := shared.FindOrCreateAssociatedTokenAccount(
		ctx, c.rpcClient, c.authority, c.authority, releaseMint,
	)
	if err != nil {
		return nil, PurchaseAccounts{}, nil, err
	}
	if createReleaseAccount != nil {
		prelude = append(prelude, createReleaseAccount)
	}

	accounts := PurchaseAccounts{
		Payer:                        c.authority,
		Release:                      releaseAccount,
		ReleaseSigner:                releaseSigner,
		ReleaseMint:                  releaseMint,
		PaymentMint:                  paymentMint,
		PayerTokenAccount:            payerTokenAccount,
		PurchaserReleaseTokenAccount: purchaserReleaseTokenAccount,
		RoyaltyTokenAccount:          royaltyTokenAccount,
	}

	return state, accounts, prelude, nil
}

func (c *Client) finishPurchase(ctx context.Context, releasePublicKey string, instructions []solana.Instruction) (PurchaseResult, error) {
	signature, err := c.submit(ctx, instructions)
	if err != nil {
		return PurchaseResult{}, err
	}

	result := PurchaseResult{Signature: signature.String()}
	updated, fetchErr := c.indexerClient.GetRelease(ctx, releasePublicKey)
	if fetchErr != nil {
		c.logger.Debug("release not yet re-indexed",
			zap.String("release", releasePublicKey),
			zap.Error(fetchErr),
		)
		return result, nil
	}
	result.Release = updated
	return result, nil
}

// RevenueShareCollect collects the caller's accrued revenue for a release
// into their associated token account, creating it if needed.
func (c *Client) RevenueShareCollect(ctx context.Context, releasePublicKey string) (TxResult, error) {
	releaseAccount, err := parsePublicKey(releasePublicKey, "release")
	if err != nil {
		return TxResult{}, err
	}

	state, err := c.indexerClient.GetRelease(ctx, releasePublicKey)
	if err != nil {
		return TxResult{}, NewNotFoundError(releasePublicKey)
	}
	paymentMint, err := parsePublicKey(state.AccountData.PaymentMint, "payment mint")
	if err != nil {
		return TxResult{}, err
	}

	releaseSigner, _, err := SignerAddress(releaseAccount)
	if err != nil {
		return TxResult{}, err
	}
	royaltyTokenAccount, err := shared.FindAssociatedTokenAddress(releaseSigner, paymentMint)
	if err != nil {
		return TxResult{}, err
	}
	authorityTokenAccount, createInstruction, err := shared.FindOrCreateAssociatedTokenAccount(
		ctx, c.rpcClient, c.authority, c.authority, paymentMint,
	)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildRevenueShareCollectInstruction(
		c.authority, authorityTokenAccount, releaseAccount, releaseSigner, royaltyTokenAccount, paymentMint,
	)
	if err != nil {
		return TxResult{}, err
	}

	instructions := make([]solana.Instruction, 0, 2)
	if createInstruction != nil {
		instructions = append(instructions, createInstruction)
	}
	instructions = append(instructions, instruction)

	signature, err := c.submit(ctx, instructions)
	if err != nil {
		return TxResult{}, err
	}
	return TxResult{Signature: signature.String()}, nil
}

// RevenueShareTransfer hands part of the caller's revenue share to another
// authority.
func (c *Client) RevenueShareTransfer(ctx context.Context, options RevenueShareTransferOptions) (TxResult, error) {
	if err := ValidateRevenueShareTransferOptions(options); err != nil {
		return TxResult{}, err
	}
	releaseAccount, err := parsePublicKey(options.Release, "release")
	if err != nil {
		return TxResult{}, err
	}
	recipient, err := parsePublicKey(options.Recipient, "recipient")
	if err != nil {
		return TxResult{}, err
	}

	releaseSigner, _, err := SignerAddress(releaseAccount)
	if err != nil {
		return TxResult{}, err
	}

	state, err := c.indexerClient.GetRelease(ctx, options.Release)
	if err != nil {
		return TxResult{}, NewNotFoundError(options.Release)
	}
	paymentMint, err := parsePublicKey(state.AccountData.PaymentMint, "payment mint")
	if err != nil {
		return TxResult{}, err
	}
	royaltyTokenAccount, err := shared.FindAssociatedTokenAddress(releaseSigner, paymentMint)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildRevenueShareTransferInstruction(
		c.authority, releaseAccount, releaseSigner, royaltyTokenAccount, recipient, options.PercentShare,
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

// CloseEdition permanently stops primary sales of a release.
func (c *Client) CloseEdition(ctx context.Context, releasePublicKey string) (TxResult, error) {
	releaseAccount, err := parsePublicKey(releasePublicKey, "release")
	if err != nil {
		return TxResult{}, err
	}

	state, err := c.indexerClient.GetRelease(ctx, releasePublicKey)
	if err != nil {
		return TxResult{}, NewNotFoundError(releasePublicKey)
	}
	releaseMint, err := parsePublicKey(state.Mint, "release mint")
	if err != nil {
		return TxResult{}, err
	}

	releaseSigner, _, err := SignerAddress(releaseAccount)
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildCloseEditionInstruction(c.authority, releaseAccount, releaseSigner, releaseMint)
	if err != nil {
		return TxResult{}, err
	}

	signature, err := c.submit(ctx, []solana.Instruction{instruction})
	if err != nil {
		return TxResult{}, err
	}
	return TxResult{Signature: signature.String()}, nil
}

// UpdateMetadata points a release at a new metadata URI.
func (c *Client) UpdateMetadata(ctx context.Context, releasePublicKey string, uri string) (TxResult, error) {
	releaseAccount, err := parsePublicKey(releasePublicKey, "release")
	if err != nil {
		return TxResult{}, err
	}

	instruction, err := BuildUpdateMetadataInstruction(c.authority, releaseAccount, uri)
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
func (c *Client) FetchAll(ctx context.Context, options indexer.QueryOptions) ([]indexer.Release, error) {
	return c.indexerClient.GetReleases(ctx, options)
}

// Fetch returns the requested value.
func (c *Client) Fetch(ctx context.Context, publicKey string) (*indexer.Release, error) {
	return c.indexerClient.GetRelease(ctx, publicKey)
}

// FetchCollectors returns the requested value.
func (c *Client) FetchCollectors(ctx context.Context, publicKey string) ([]indexer.Collector, error) {
	return c.indexerClient.GetReleaseCollectors(ctx, publicKey)
}

// FetchHubs returns the hubs a release appears in.
func (c *Client) FetchHubs(ctx context.Context, publicKey string, options indexer.QueryOptions) ([]indexer.Hub, error) {
	return c.indexerClient.GetReleaseHubs(ctx, publicKey, options)
}

// FetchExchanges returns the requested value.
func (c *Client) FetchExchanges(ctx context.Context, publicKey string, options indexer.QueryOptions) ([]indexer.Exchange, error) {
	return c.indexerClient.GetReleaseExchanges(ctx, publicKey, options)
}

// FetchRevenueShareRecipients returns the requested value.
func (c *Client) FetchRevenueShareRecipients(ctx context.Context, publicKey string) ([]indexer.RevenueShareRecipient, error) {
	return c.indexerClient.GetReleaseRevenueShareRecipients(ctx, publicKey)
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
