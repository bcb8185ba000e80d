package post

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/nina-protocol/nina-sdk-go/pkg/indexer"
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

func TestNewClientRequiresPrivateKey(t *testing.T) {
	_, err := NewClient(ClientConfig{Network: "devnet"})
	if err == nil {
		t.Fatal("expected error for missing private key")
	}
}

func TestInitViaHubSubmitsAndRefetches(t *testing.T) {
	hubAccount := solana.NewWallet().PublicKey()
	postAccount, _, err := PostAddress(hubAccount, "my-post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/posts/"+postAccount.String(), func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]indexer.Post{
			"post": {PublicKey: postAccount.String(), Slug: "my-post"},
		})
	})
	client, fake := newTestClient(t, mux)

	result, err := client.InitViaHub(context.Background(), InitViaHubOptions{
		Hub:  hubAccount.String(),
		Slug: "my-post",
		URI:  "ar://post-content",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.sentCount != 1 {
		t.Fatalf("expected one transaction, got %d", fake.sentCount)
	}
	if result.Post == nil || result.Post.Slug != "my-post" {
		t.Fatalf("expected refetched post, got %+v", result.Post)
	}
}

func TestInitViaHubToleratesIndexerLag(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))

	result, err := client.InitViaHub(context.Background(), InitViaHubOptions{
		Hub:  solana.NewWallet().PublicKey().String(),
		Slug: "my-post",
		URI:  "ar://post-content",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Post != nil {
		t.Fatal("expected nil post while the indexer lags")
	}
}

func TestInitViaHubWithReferenceRelease(t *testing.T) {
	client, fake := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}))

	result, err := client.InitViaHub(context.Background(), InitViaHubOptions{
		Hub:              solana.NewWallet().PublicKey().String(),
		Slug:             "about-a-release",
		URI:              "ar://post-content",
		ReferenceRelease: solana.NewWallet().PublicKey().String(),
	})
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

func TestInitViaHubRejectsBadReferenceRelease(t *testing.T) {
	client, fake := newTestClient(t, http.NewServeMux())

	_, err := client.InitViaHub(context.Background(), InitViaHubOptions{
		Hub:              solana.NewWallet().PublicKey().String(),
		Slug:             "my-post",
		URI:              "ar://post-content",
		ReferenceRelease: "not-base58!",
	})
	if err == nil {
		t.Fatal("expected error for malformed reference release key")
	}
	if fake.sentCount != 0 {
		t.Fatalf("expected no transaction, got %d", fake.sentCount)
	}
}

func TestUpdateViaHubPostSubmits(t *testing.T) {
	client, fake := newTestClient(t, http.NewServeMux())

	result, err := client.UpdateViaHubPost(
		context.Background(),
		solana.NewWallet().PublicKey().String(),
		"my-post",
		"ar://updated-content",
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
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"posts": []indexer.Post{{PublicKey: "postpk"}},
			"total": 1,
		})
	})
	client, _ := newTestClient(t, mux)

	posts, err := client.FetchAll(context.Background(), indexer.QueryOptions{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 || posts[0].PublicKey != "postpk" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
}
