package exchange

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/nina-protocol/nina-sdk-go/pkg/indexer"
	"github.com/nina-protocol/nina-sdk-go/pkg/release"
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

// Init opens an exchange, escrowing the initializer's side of the trade in a
// token account owned by the exchange signer. A fresh exchange keypair
// co-signs the transaction. The returned Exchange is nil when the indexer has
// not observed the transaction yet.
func (c *Client) Init(ctx context.Context, options InitOptions) (InitResult, error) {
	if err := ValidateInitOptions(options); err != nil {
		return InitResult{}, err
	}
	releaseAccount, err := parsePublicKey(options.Release, "release")
	if err != nil {
		return InitResult{}, err
	}

	state, err := c.indexerClient.GetRelease(ctx, options.Release)
	if err != nil {
		return InitResult{}, release.NewNotFoundError(options.Release)
	}
	releaseMint, err := parsePublicKey(state.Mint, "release mint")
	if err != nil {
		return InitResult{}, err
	}
	paymentMint, err := parsePublicKey(state.AccountData.PaymentMint, "payment mint")
	if err != nil {
		return InitResult{}, err
	}

	// a sale escrows the release token, a buy offer escrows payment
	escrowMint := releaseMint
	if !options.IsSale {
		escrowMint = paymentMint
	}

	exchangeKeypair := solana.NewWallet()
	exchangeSigner, signerBump, err := SignerAddress(exchangeKeypair.PublicKey())
	if err != nil {
		return InitResult{}, err
	}

	instructions := make([]solana.Instruction, 0, 5)

	escrowTokenAccount, createEscrow, err := shared.FindOrCreateAssociatedTokenAccount(
		ctx, c.rpcClient, c.authority, exchangeSigner, escrowMint,
	)
	if err != nil {
		return InitResult{}, err
	}
	if createEscrow != nil {
		instructions = append(instructions, createEscrow)
	}

	var sendingTokenAccount solana.PublicKey
	if !options.IsSale && escrowMint.Equals(solana.WrappedSol) {
		wrapped, wrapInstructions, wrapErr := shared.WrapSolInstructions(
			ctx, c.rpcClient, c.authority, options.InitializerAmount,
		)
		if wrapErr != nil {
			return InitResult{}, wrapErr
		}
		sendingTokenAccount = wrapped
		instructions = append(instructions, wrapInstructions...)
	} else {
		account, createSending, ataErr := shared.FindOrCreateAssociatedTokenAccount(
			ctx, c.rpcClient, c.authority, c.authority, escrowMint,
		)
		if ataErr != nil {
			return InitResult{}, ataErr
		}
		sendingTokenAccount = account
		if createSending != nil {
			instructions = append(instructions, createSending)
		}
	}

	initInstruction, err := BuildInitInstruction(InitAccounts{
		Initializer:                    c.authority,
		Release:                        releaseAccount,
		ReleaseMint:                    releaseMint,
		Exchange:                       exchangeKeypair.PublicKey(),
		ExchangeSigner:                 exchangeSigner,
		ExchangeEscrowTokenAccount:     escrowTokenAccount,
		InitializerSendingTokenAccount: sendingTokenAccount,
	}, options, signerBump)
	if err != nil {
		return InitResult{}, err
	}
	instructions = append(instructions, initInstruction)

	signature, err := shared.SubmitTransaction(
		ctx,
		c.rpcClient,
		instructions,
		c.authority,
		[]solana.PrivateKey{c.wallet, exchangeKeypair.PrivateKey},
		shared.SubmitOptions{},
		c.logger,
	)
	if err != nil {
		return InitResult{}, err
	}

	result := InitResult{
		Signature: signature.String(),
		PublicKey: exchangeKeypair.PublicKey().String(),
	}
	created, fetchErr := c.indexerClient.GetExchange(ctx, result.PublicKey)
	if fetchErr != nil {
		c.logger.Debug("exchange not yet indexed",
			zap.String("exchange", result.PublicKey),
			zap.Error(fetchErr),
		)
		return result, nil
	}
	result.Exchange = created
	return result, nil
}

// Cancel closes an open exchange, returning the escrowed amount to the
// initializer.
func (c *Client) Cancel(ctx context.Context, exchangePublicKey string) (TxResult, error) {
	exchangeAccount, err := parsePublicKey(exchangePublicKey, "exchange")
	if err != nil {
		return TxResult{}, err
	}

	state, err := c.indexerClient.GetExchange(ctx, exchangePublicKey)
	if err != nil {
		return TxResult{}, NewNotFoundError(exchangePublicKey)
	}
	if state.Cancelled {
		return TxResult{}, NewCancelledError(exchangePublicKey)
	}

	escrowMint, _, err := c.exchangeMints(ctx, state)
	if err != nil {
		return TxResult{}, err
	}

	exchangeSigner, _, err := SignerAddress(exchangeAccount)
	if err != nil {
		return TxResult{}, err
	}
	escrowTokenAccount, err := shared.FindAssociatedTokenAddress(exchangeSigner, escrowMint)
	if err != nil {
		return TxResult{}, err
	}

	instructions := make([]solana.Instruction, 0, 2)
	initializerTokenAccount, createInstruction, err := shared.FindOrCreateAssociatedTokenAccount(
		ctx, c.rpcClient, c.authority, c.authority, escrowMint,
	)
	if err != nil {
		return TxResult{}, err
	}
	if createInstruction != nil {
		instructions = append(instructions, createInstruction)
	}

	cancelInstruction, err := BuildCancelInstruction(
		c.authority, exchangeAccount, exchangeSigner, escrowTokenAccount,
		initializerTokenAccount, state.InitializerAmount,
	)
	if err != nil {
		return TxResult{}, err
	}
	instructions = append(instructions, cancelInstruction)

	signature, err := c.submit(ctx, instructions)
	if err != nil {
		return TxResult{}, err
	}
	return TxResult{Signature: signature.String()}, nil
}

// Accept settles an exchange as the taker, handing over the expected amount
// and paying the release's resale royalty. The accept is refused locally when
// the exchange is cancelled or its expected amount no longer matches.
func (c *Client) Accept(ctx context.Context, options AcceptOptions) (TxResult, error) {
	if err := ValidateAcceptOptions(options); err != nil {
		return TxResult{}, err
	}
	exchangeAccount, err := parsePublicKey(options.Exchange, "exchange")
	if err != nil {
		return TxResult{}, err
	}

	state, err := c.indexerClient.GetExchange(ctx, options.Exchange)
	if err != nil {
		return TxResult{}, NewNotFoundError(options.Exchange)
	}
	if state.Cancelled {
		return TxResult{}, NewCancelledError(options.Exchange)
	}
	if state.ExpectedAmount != options.ExpectedAmount {
		return TxResult{}, NewAmountMismatchError(options.Exchange, options.ExpectedAmount, state.ExpectedAmount)
	}

	initializer, err := parsePublicKey(state.Initializer, "initializer")
	if err != nil {
		return TxResult{}, err
	}
	releaseAccount, err := parsePublicKey(state.Release, "release")
	if err != nil {
		return TxResult{}, err
	}

	escrowMint, expectedMint, err := c.exchangeMints(ctx, state)
	if err != nil {
		return TxResult{}, err
	}

	// the royalty is paid in the trade's payment mint: the expected side of
	// a sale, the escrowed side of a buy offer
	paymentMint := expectedMint
	if !state.IsSale {
		paymentMint = escrowMint
	}

	exchangeSigner, _, err := SignerAddress(exchangeAccount)
	if err != nil {
		return TxResult{}, err
	}
	escrowTokenAccount, err := shared.FindAssociatedTokenAddress(exchangeSigner, escrowMint)
	if err != nil {
		return TxResult{}, err
	}
	releaseSigner, _, err := release.SignerAddress(releaseAccount)
	if err != nil {
		return TxResult{}, err
	}
	royaltyTokenAccount, err := shared.FindAssociatedTokenAddress(releaseSigner, paymentMint)
	if err != nil {
		return TxResult{}, err
	}

	instructions := make([]solana.Instruction, 0, 6)

	// the taker hands over what the initializer expects and receives what
	// the escrow holds
	var takerSendingTokenAccount solana.PublicKey
	if expectedMint.Equals(solana.WrappedSol) {
		wrapped, wrapInstructions, wrapErr := shared.WrapSolInstructions(
			ctx, c.rpcClient, c.authority, options.ExpectedAmount,
		)
		if wrapErr != nil {
			return TxResult{}, wrapErr
		}
		takerSendingTokenAccount = wrapped
		instructions = append(instructions, wrapInstructions...)
	} else {
		account, createInstruction, ataErr := shared.FindOrCreateAssociatedTokenAccount(
			ctx, c.rpcClient, c.authority, c.authority, expectedMint,
		)
		if ataErr != nil {
			return TxResult{}, ataErr
		}
		takerSendingTokenAccount = account
		if createInstruction != nil {
			instructions = append(instructions, createInstruction)
		}
	}

	takerExpectedTokenAccount, createTakerExpected, err := shared.FindOrCreateAssociatedTokenAccount(
		ctx, c.rpcClient, c.authority, c.authority, escrowMint,
	)
	if err != nil {
		return TxResult{}, err
	}
	if createTakerExpected != nil {
		instructions = append(instructions, createTakerExpected)
	}

	initializerExpectedTokenAccount, createInitializerExpected, err := shared.FindOrCreateAssociatedTokenAccount(
		ctx, c.rpcClient, c.authority, initializer, expectedMint,
	)
	if err != nil {
		return TxResult{}, err
	}
	if createInitializerExpected != nil {
		instructions = append(instructions, createInitializerExpected)
	}

	acceptInstruction, err := BuildAcceptInstruction(AcceptAccounts{
		Taker:                           c.authority,
		Initializer:                     initializer,
		Exchange:                        exchangeAccount,
		ExchangeSigner:                  exchangeSigner,
		ExchangeEscrowTokenAccount:      escrowTokenAccount,
		TakerSendingTokenAccount:        takerSendingTokenAccount,
		TakerExpectedTokenAccount:       takerExpectedTokenAccount,
		InitializerExpectedTokenAccount: initializerExpectedTokenAccount,
		Release:                         releaseAccount,
		ReleaseSigner:                   releaseSigner,
		RoyaltyTokenAccount:             royaltyTokenAccount,
	}, options.ExpectedAmount)
	if err != nil {
		return TxResult{}, err
	}
	instructions = append(instructions, acceptInstruction)

	signature, err := c.submit(ctx, instructions)
	if err != nil {
		return TxResult{}, err
	}
	return TxResult{Signature: signature.String()}, nil
}

// exchangeMints resolves the mint held in escrow and the mint the initializer
// expects back for an exchange.
func (c *Client) exchangeMints(ctx context.Context, state *indexer.Exchange) (solana.PublicKey, solana.PublicKey, error) {
	releaseState, err := c.indexerClient.GetRelease(ctx, state.Release)
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, release.NewNotFoundError(state.Release)
	}
	releaseMint, err := parsePublicKey(releaseState.Mint, "release mint")
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}
	paymentMint, err := parsePublicKey(releaseState.AccountData.PaymentMint, "payment mint")
	if err != nil {
		return solana.PublicKey{}, solana.PublicKey{}, err
	}

	if state.IsSale {
		return releaseMint, paymentMint, nil
	}
	return paymentMint, releaseMint, nil
}

// FetchAll returns the requested value.
func (c *Client) FetchAll(ctx context.Context, options indexer.QueryOptions) ([]indexer.Exchange, error) {
	return c.indexerClient.GetExchanges(ctx, options)
}

// Fetch returns the requested value.
func (c *Client) Fetch(ctx context.Context, publicKey string) (*indexer.Exchange, error) {
	return c.indexerClient.GetExchange(ctx, publicKey)
}

// FetchForRelease returns the exchanges open against a release.
func (c *Client) FetchForRelease(ctx context.Context, releasePublicKey string, options indexer.QueryOptions) ([]indexer.Exchange, error) {
	return c.indexerClient.GetReleaseExchanges(ctx, releasePublicKey, options)
}

// FetchForAccount returns the exchanges an account has initialized or
// completed.
func (c *Client) FetchForAccount(ctx context.Context, accountPublicKey string, options indexer.QueryOptions) ([]indexer.Exchange, error) {
	return c.indexerClient.GetAccountExchanges(ctx, accountPublicKey, options)
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
