package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ourzora/addrbook/chains"
	"github.com/ourzora/addrbook/config"
	"github.com/ourzora/addrbook/db"
	"github.com/ourzora/addrbook/ui"
)

var getCmd = &cobra.Command{
	Use:   "get <chainId> <name>",
	Short: "Look up one contract's address, falling back to fuzzy matching",
	Long: `Prints the address recorded for a contract name on a chain. When there is
no exact match, the closest fuzzy matches over the chain's contract names
are shown instead, so a partial name like "media" still finds
"MediaFactory".`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGet(ui.NewTerminalUI(), config.AddressesDir, args[0], args[1])
	},
}

func runGet(u ui.UI, dir, chainID, name string) error {
	path := db.FilePath(dir, chainID)
	book, err := db.Load(path)
	if err != nil {
		return err
	}

	if addr, found := book.Get(name); found {
		u.KeyValue([][2]string{
			{"Contract", name},
			{"Address", addr},
			{"Chain", chains.DescribeChainID(chainID)},
			{"Book", path},
		})
		return nil
	}

	matches, _ := db.Search(name, db.NewChainFuzzySource(chainID, book))
	if len(matches) == 0 {
		return fmt.Errorf("no contract matching '%s' in %s", name, path)
	}

	u.Warn("No exact match for '%s' in %s. Closest matches:", name, path)
	rows := [][]string{}
	for _, m := range matches {
		rows = append(rows, []string{m.Name, m.Address})
	}
	u.Table([]string{"Contract", "Address"}, rows)
	return nil
}

func init() {
	rootCmd.AddCommand(getCmd)
}
