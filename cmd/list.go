package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ourzora/addrbook/chains"
	"github.com/ourzora/addrbook/config"
	"github.com/ourzora/addrbook/db"
	"github.com/ourzora/addrbook/ui"
)

var listCmd = &cobra.Command{
	Use:          "list [chainId]",
	Short:        "Show the address book for one chain, or all chains",
	Long:         ``,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(ui.NewTerminalUI(), config.AddressesDir, args)
	},
}

func runList(u ui.UI, dir string, args []string) error {
	if len(args) == 1 {
		return listChain(u, dir, args[0])
	}
	return listAll(u, dir)
}

func listChain(u ui.UI, dir, chainID string) error {
	path := db.FilePath(dir, chainID)
	book, err := db.Load(path)
	if err != nil {
		return err
	}
	if book.Len() == 0 {
		u.Warn("No addresses recorded in %s.", path)
		return nil
	}

	u.Info("Chain %s:", chains.DescribeChainID(chainID))
	rows := [][]string{}
	for _, name := range book.Names() {
		rows = append(rows, []string{name, book.Data[name]})
	}
	u.Table([]string{"Contract", "Address"}, rows)
	return nil
}

func listAll(u ui.UI, dir string) error {
	ids, err := db.ChainIDs(dir)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		u.Warn("No address books found in %s.", dir)
		return nil
	}

	groups := [][][]string{}
	total := 0
	for _, id := range ids {
		book, err := db.Load(db.FilePath(dir, id))
		if err != nil {
			return err
		}
		group := [][]string{}
		for _, name := range book.Names() {
			group = append(group, []string{chains.DescribeChainID(id), name, book.Data[name]})
			total++
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	u.TableWithGroups([]string{"Chain", "Contract", "Address"}, groups)
	u.Info("%d contract(s) across %d chain(s).", total, len(ids))
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
}
