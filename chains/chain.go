package chains

import (
	"encoding/json"
	"fmt"
)

// Chain describes a known network. It is static metadata only: the tool
// never talks to a node or an explorer, chain entries exist so that command
// output can annotate numeric chain ids with something a human recognizes.
type Chain struct {
	Name             string   `json:"name"`
	AlternativeNames []string `json:"alternative_names"`
	ChainID          uint64   `json:"chain_id"`
	ExplorerURL      string   `json:"explorer_url"`
}

// NewChainFromJSON parses a chain config from its JSON form, the same
// format custom chains are stored in under ~/.addrbook/chains/.
func NewChainFromJSON(content []byte) (Chain, error) {
	chain := Chain{}
	if err := json.Unmarshal(content, &chain); err != nil {
		return Chain{}, err
	}
	if chain.Name == "" {
		return Chain{}, fmt.Errorf("chain config must have a name")
	}
	if chain.ChainID == 0 {
		return Chain{}, fmt.Errorf("chain config must have a non-zero chain_id")
	}
	return chain, nil
}

func (c Chain) MarshalConfig() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
