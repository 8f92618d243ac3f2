package chains

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"
)

// Insert more Chain entries here to recognize more networks out of the box.
var supportedChains = []Chain{
	{Name: "mainnet", AlternativeNames: []string{"ethereum"}, ChainID: 1, ExplorerURL: "https://etherscan.io"},
	{Name: "ropsten", ChainID: 3, ExplorerURL: "https://ropsten.etherscan.io"},
	{Name: "rinkeby", ChainID: 4, ExplorerURL: "https://rinkeby.etherscan.io"},
	{Name: "goerli", ChainID: 5, ExplorerURL: "https://goerli.etherscan.io"},
	{Name: "optimism", ChainID: 10, ExplorerURL: "https://optimistic.etherscan.io"},
	{Name: "polygon", AlternativeNames: []string{"matic"}, ChainID: 137, ExplorerURL: "https://polygonscan.com"},
	{Name: "base", ChainID: 8453, ExplorerURL: "https://basescan.org"},
	{Name: "arbitrum", ChainID: 42161, ExplorerURL: "https://arbiscan.io"},
	{Name: "mumbai", ChainID: 80001, ExplorerURL: "https://mumbai.polygonscan.com"},
	{Name: "zora-goerli", ChainID: 999, ExplorerURL: "https://testnet.explorer.zora.energy"},
	{Name: "zora", ChainID: 7777777, ExplorerURL: "https://explorer.zora.energy"},
	{Name: "sepolia", ChainID: 11155111, ExplorerURL: "https://sepolia.etherscan.io"},
}

var globalSupportedChains = newSupportedChains()

var ErrChainNotFound = fmt.Errorf("chain not found")

type registry struct {
	chains     map[string]Chain
	chainsByID map[uint64]Chain
}

func (r *registry) getChain(name string) (Chain, error) {
	res, found := r.chains[name]
	if !found {
		return Chain{}, fmt.Errorf("chain name '%s': %w", name, ErrChainNotFound)
	}
	return res, nil
}

func (r *registry) getChainByID(id uint64) (Chain, error) {
	res, found := r.chainsByID[id]
	if !found {
		return Chain{}, fmt.Errorf("chain id %d: %w", id, ErrChainNotFound)
	}
	return res, nil
}

// all returns every registered chain, built-in and custom, sorted by chain
// id. Alternative-name aliases point at the same Chain, so iterating the
// by-id map yields each chain exactly once.
func (r *registry) all() []Chain {
	result := make([]Chain, 0, len(r.chainsByID))
	for _, c := range r.chainsByID {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ChainID < result[j].ChainID
	})
	return result
}

func (r *registry) register(c Chain) {
	r.chains[c.Name] = c
	r.chainsByID[c.ChainID] = c
	for _, an := range c.AlternativeNames {
		r.chains[an] = c
	}
}

func newSupportedChains() *registry {
	result := &registry{
		chains:     map[string]Chain{},
		chainsByID: map[uint64]Chain{},
	}
	for _, c := range supportedChains {
		if _, found := result.chains[c.Name]; found {
			panic(fmt.Errorf("chain with name or alternative name of '%s' already exists", c.Name))
		}
		for _, an := range c.AlternativeNames {
			if _, found := result.chains[an]; found {
				panic(fmt.Errorf("chain with name or alternative name of '%s' already exists", an))
			}
		}
		result.register(c)
	}

	// load custom chains from ~/.addrbook/chains/
	customChains, err := loadCustomChains()
	if err != nil {
		fmt.Printf("WARNING: Failed to load custom chains: %s. Ignore and continue with built-in chains.\n", err)
		return result
	}
	for _, c := range customChains {
		result.register(c)
	}
	return result
}

func loadCustomChains() ([]Chain, error) {
	usr, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	customChainsDir := filepath.Join(usr.HomeDir, ".addrbook", "chains")
	files, err := filepath.Glob(filepath.Join(customChainsDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob json files in ~/.addrbook/chains: %w", err)
	}

	chains := []Chain{}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", file, err)
		}
		chain, err := NewChainFromJSON(content)
		if err != nil {
			fmt.Printf("failed to parse chain from file %s: %s. Ignore and continue with other custom chains.\n", file, err)
			continue
		}
		chains = append(chains, chain)
	}
	return chains, nil
}

// GetChain looks a chain up by name or alternative name.
func GetChain(name string) (Chain, error) {
	return globalSupportedChains.getChain(name)
}

// GetChainByID looks a chain up by its numeric chain id.
func GetChainByID(id uint64) (Chain, error) {
	return globalSupportedChains.getChainByID(id)
}

// GetSupportedChains returns every chain the tool recognizes, built-in and
// custom, sorted by chain id.
func GetSupportedChains() []Chain {
	return globalSupportedChains.all()
}

// AddChain registers a custom chain and stores it to ~/.addrbook/chains/ so
// it survives across invocations.
func AddChain(chain Chain) error {
	globalSupportedChains.register(chain)

	usr, err := user.Current()
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	customChainsDir := filepath.Join(usr.HomeDir, ".addrbook", "chains")
	os.MkdirAll(customChainsDir, 0755)

	content, err := chain.MarshalConfig()
	if err != nil {
		return fmt.Errorf("failed to marshal chain: %w", err)
	}

	err = os.WriteFile(filepath.Join(customChainsDir, fmt.Sprintf("%s.json", chain.Name)), content, 0644)
	if err != nil {
		return fmt.Errorf("failed to write the new chain to file: %w", err)
	}
	return nil
}

// DescribeChainID annotates a raw chain id string with the chain name when
// the id is numeric and known, e.g. "1" becomes "1 (mainnet)". Unknown or
// non-numeric ids are returned verbatim: chain ids in address book file
// names are opaque and never validated.
func DescribeChainID(chainID string) string {
	id, err := strconv.ParseUint(chainID, 10, 64)
	if err != nil {
		return chainID
	}
	chain, err := GetChainByID(id)
	if err != nil {
		return chainID
	}
	return fmt.Sprintf("%s (%s)", chainID, chain.Name)
}
