package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/nina-protocol/nina-sdk-go/pkg/indexer"
	"github.com/nina-protocol/nina-sdk-go/pkg/shared"
)

type fakeRPCClient struct {
	sentCount int
}

func (f *fakeRPCClient) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{Blockhash: solana.Hash{7}, LastValidBlockHeight: 1},
	}, nil
}

func (f *fakeRPCClient) SendTransactionWithOpts(ctx context.Context, tx *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error) {
	f.sentCount++
	return tx.Signatures[0], nil
}

func (f *fakeRPCClient) GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	return &rpc.GetSignatureStatusesResult{
		Value: []*rpc.SignatureStatusesResult{{ConfirmationStatus: rpc.ConfirmationStatusConfirmed}},
	}, nil
}

func (f *fakeRPCClient) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	return nil, rpc.ErrNotFound
}

func (f *fakeRPCClient) GetTokenAccountBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetTokenAccountBalanceResult, error) {
	return &rpc.GetTokenAccountBalanceResult{}, nil
}

func (f *fakeRPCClient) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error) {
	return 2039280, nil
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *fakeRPCClient) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	fake := &fakeRPCClient{}
	client, err := NewClient(ClientConfig{
		Network:    "devnet",
		PrivateKey: solana.NewWallet().PrivateKey.String(),
		IndexerURL: server.URL,
		RPC:        fake,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client, fake
}

func serveRelease(t *testing.T, state indexer.Release) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(fmt.Sprintf("/releases/%s", state.PublicKey), func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]indexer.Release{"release": state})
	})
	return mux
}

func purchasableRelease() indexer.Release {
	mint := solana.NewWallet().PublicKey()
	releaseAccount, _, _ := ReleaseAddress(mint)
	return indexer.Release{
		PublicKey: releaseAccount.String(),
		Mint:      mint.String(),
		AccountData: indexer.ReleaseAccountData{
			Price:           5_000_000,
			PaymentMint:     shared.USDCMintDevnet.String(),
			TotalSupply:     100,
			RemainingSupply: 42,
		},
	}
}

func TestNewClientRequiresPrivateKey(t *testing.T) {
	_, err := NewClient(ClientConfig{Network: "devnet"})
	if err == nil {
		t.Fatal("expected error for missing private key")
	}
}

func TestInitViaHubToleratesIndexerLag(t *testing.T) {
	hubAccount := solana.NewWallet().PublicKey()
	client, fake := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))

	options := validInitOptions()
	options.Hub = hubAccount.String()
	result, err := client.InitViaHub(context.Background(), options)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.sentCount != 1 {
		t.Fatalf("expected one transaction, got %d", fake.sentCount)
	}
	if result.Mint == "" {
		t.Fatal("expected a mint public key")
	}
	if result.Release != nil {
		t.Fatal("expected nil release while the indexer lags")
	}
}

func TestPurchaseSubmitsAndRefetches(t *testing.T) {
	state := purchasableRelease()
	client, fake := newTestClient(t, serveRelease(t, state))

	result, err := client.Purchase(context.Background(), state.PublicKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.sentCount != 1 {
		t.Fatalf("expected one transaction, got %d", fake.sentCount)
	}
	if result.Release == nil || result.Release.PublicKey != state.PublicKey {
		t.Fatalf("expected refetched release, got %+v", result.Release)
	}
}

func TestPurchaseRejectsSoldOutRelease(t *testing.T) {
	state := purchasableRelease()
	state.AccountData.RemainingSupply = 0
	client, _ := newTestClient(t, serveRelease(t, state))

	_, err := client.Purchase(context.Background(), state.PublicKey)
	var soldOut SoldOutError
	if !errors.As(err, &soldOut) {
		t.Fatalf("expected SoldOutError, got %v", err)
	}
}

func TestPurchaseRejectsClosedEdition(t *testing.T) {
	state := purchasableRelease()
	state.AccountData.EditionClosed = true
	client, _ := newTestClient(t, serveRelease(t, state))

	_, err := client.Purchase(context.Background(), state.PublicKey)
	var closed EditionClosedError
	if !errors.As(err, &closed) {
		t.Fatalf("expected EditionClosedError, got %v", err)
	}
}

func TestPurchaseUnknownReleaseIsNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))

	_, err := client.Purchase(context.Background(), solana.NewWallet().PublicKey().String())
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestPurchaseViaHubSubmits(t *testing.T) {
	state := purchasableRelease()
	client, fake := newTestClient(t, serveRelease(t, state))

	result, err := client.PurchaseViaHub(context.Background(), state.PublicKey, solana.NewWallet().PublicKey().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.sentCount != 1 {
		t.Fatalf("expected one transaction, got %d", fake.sentCount)
	}
	if result.Signature == "" {
		t.Fatal("expected a signature")
	}
}

func TestRevenueShareTransferRejectsInvalidShare(t *testing.T) {
	client, fake := newTestClient(t, http.NewServeMux())

	_, err := client.RevenueShareTransfer(context.Background(), RevenueShareTransferOptions{
		Release:      solana.NewWallet().PublicKey().String(),
		Recipient:    solana.NewWallet().PublicKey().String(),
		PercentShare: PercentageDenominator + 1,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if fake.sentCount != 0 {
		t.Fatalf("expected no transaction, got %d", fake.sentCount)
	}
}

func TestUpdateMetadataSubmits(t *testing.T) {
	client, fake := newTestClient(t, http.NewServeMux())

	result, err := client.UpdateMetadata(
		context.Background(),
		solana.NewWallet().PublicKey().String(),
		"ar://new-metadata",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.sentCount != 1 {
		t.Fatalf("expected one transaction, got %d", fake.sentCount)
	}
	if result.Signature == "" {
		t.Fatal("expected a signature")
	}
}

func TestFetchDelegatesToIndexer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/releases", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"releases": []indexer.Release{{PublicKey: "releasepk"}},
			"total":    1,
		})
	})
	client, _ := newTestClient(t, mux)

	releases, err := client.FetchAll(context.Background(), indexer.QueryOptions{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(releases) != 1 || releases[0].PublicKey != "releasepk" {
		t.Fatalf("unexpected releases: %+v", releases)
	}
}
