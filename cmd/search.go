package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ourzora/addrbook/bleve"
	"github.com/ourzora/addrbook/chains"
	"github.com/ourzora/addrbook/config"
	"github.com/ourzora/addrbook/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search across every chain's address book",
	Long: `Searches contract names and addresses across all chains using a local
full-text index (kept under ~/.addrbook, rebuilt automatically whenever
the books change). Matches are ranked best first.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearch(ui.NewTerminalUI(), config.AddressesDir, strings.Join(args, " "))
	},
}

func runSearch(u ui.UI, dir, query string) error {
	index, err := bleve.NewIndexDB(u, dir)
	if err != nil {
		return err
	}

	entries, scores := index.Search(query)
	if len(entries) == 0 {
		u.Warn("No contracts matching '%s'.", query)
		return nil
	}

	rows := [][]string{}
	for i, entry := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", scores[i]),
			chains.DescribeChainID(entry.ChainID),
			u.Style(ui.StyledText{Text: entry.Name, Severity: ui.SeveritySuccess}),
			entry.Address,
		})
	}
	u.Table([]string{"Score", "Chain", "Contract", "Address"}, rows)
	return nil
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
