package shared

import "testing"

func TestNormalizeNetworkDefaultsToDevnet(t *testing.T) {
	network, err := NormalizeNetwork("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if network != NetworkDevnet {
		t.Fatalf("expected devnet, got %q", network)
	}
}

func TestNormalizeNetworkTrimsAndLowers(t *testing.T) {
	network, err := NormalizeNetwork("  MainNet ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if network != NetworkMainnet {
		t.Fatalf("expected mainnet, got %q", network)
	}
}

func TestNormalizeNetworkRejectsUnknown(t *testing.T) {
	_, err := NormalizeNetwork("testnet")
	if err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestEndpointsForNetworkMainnet(t *testing.T) {
	endpoints, err := EndpointsForNetwork(NetworkMainnet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if endpoints.Indexer != "https://api.ninaprotocol.com/v1" {
		t.Fatalf("unexpected indexer endpoint: %s", endpoints.Indexer)
	}
	if !endpoints.USDCMint.Equals(USDCMintMainnet) {
		t.Fatalf("unexpected payment mint: %s", endpoints.USDCMint)
	}
}

func TestEndpointsForNetworkDevnet(t *testing.T) {
	endpoints, err := EndpointsForNetwork(NetworkDevnet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if endpoints.Indexer != "https://dev.api.ninaprotocol.com/v1" {
		t.Fatalf("unexpected indexer endpoint: %s", endpoints.Indexer)
	}
	if !endpoints.USDCMint.Equals(USDCMintDevnet) {
		t.Fatalf("unexpected payment mint: %s", endpoints.USDCMint)
	}
}

func TestNewRPCClientEndpointOverride(t *testing.T) {
	client, err := NewRPCClient(NetworkDevnet, "http://localhost:8899")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client")
	}
}

func TestNewRPCClientRejectsUnknownNetwork(t *testing.T) {
	_, err := NewRPCClient("badnet", "")
	if err == nil {
		t.Fatal("expected error for unsupported network")
	}
}
