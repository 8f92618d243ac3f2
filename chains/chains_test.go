package chains_test

import (
	"errors"
	"testing"

	"github.com/ourzora/addrbook/chains"
)

func TestGetChainByName(t *testing.T) {
	chain, err := chains.GetChain("mainnet")
	if err != nil {
		t.Fatalf("GetChain: %s", err)
	}
	if chain.ChainID != 1 {
		t.Errorf("mainnet chain id = %d, want 1", chain.ChainID)
	}
}

func TestGetChainByAlternativeName(t *testing.T) {
	chain, err := chains.GetChain("ethereum")
	if err != nil {
		t.Fatalf("GetChain: %s", err)
	}
	if chain.Name != "mainnet" {
		t.Errorf("alternative name resolved to %q, want mainnet", chain.Name)
	}
}

func TestGetChainByID(t *testing.T) {
	chain, err := chains.GetChainByID(7777777)
	if err != nil {
		t.Fatalf("GetChainByID: %s", err)
	}
	if chain.Name != "zora" {
		t.Errorf("chain 7777777 = %q, want zora", chain.Name)
	}
}

func TestGetChainNotFound(t *testing.T) {
	_, err := chains.GetChain("no-such-chain")
	if !errors.Is(err, chains.ErrChainNotFound) {
		t.Fatalf("expected ErrChainNotFound, got %v", err)
	}
}

func TestNewChainFromJSON(t *testing.T) {
	chain, err := chains.NewChainFromJSON([]byte(`{
		"name": "zora-sepolia",
		"alternative_names": ["zsep"],
		"chain_id": 999999999,
		"explorer_url": "https://sepolia.explorer.zora.energy"
	}`))
	if err != nil {
		t.Fatalf("NewChainFromJSON: %s", err)
	}
	if chain.ChainID != 999999999 {
		t.Errorf("chain id = %d, want 999999999", chain.ChainID)
	}
}

func TestNewChainFromJSONRejectsMissingFields(t *testing.T) {
	if _, err := chains.NewChainFromJSON([]byte(`{"chain_id": 5}`)); err == nil {
		t.Error("expected an error for a config without a name")
	}
	if _, err := chains.NewChainFromJSON([]byte(`{"name": "x"}`)); err == nil {
		t.Error("expected an error for a config without a chain_id")
	}
	if _, err := chains.NewChainFromJSON([]byte(`nope`)); err == nil {
		t.Error("expected an error for invalid json")
	}
}

func TestDescribeChainID(t *testing.T) {
	for input, want := range map[string]string{
		"1":       "1 (mainnet)",
		"7777777": "7777777 (zora)",
		"424242":  "424242",  // unknown id passes through
		"hardhat": "hardhat", // non-numeric ids are opaque
	} {
		if got := chains.DescribeChainID(input); got != want {
			t.Errorf("DescribeChainID(%q) = %q, want %q", input, got, want)
		}
	}
}
