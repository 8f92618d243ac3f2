package cmd

import (
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/ourzora/addrbook/chains"
	"github.com/ourzora/addrbook/config"
	"github.com/ourzora/addrbook/db"
	"github.com/ourzora/addrbook/ui"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [chainId]",
	Short: "Sanity-check the addresses recorded in a book",
	Long: `Checks every entry of the given chain's book (or of every book when no
chain id is given) entirely offline:

  - an entry whose address is not a valid hex address is an error
  - an entry whose address is valid but not EIP55-checksummed is a warning

The update operation itself never validates anything — addresses are
recorded exactly as given. verify exists so a team can catch a mangled
copy-paste before it propagates into other tooling. Exits non-zero when
any entry is invalid; warnings alone do not fail.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(ui.NewTerminalUI(), config.AddressesDir, args)
	},
}

func runVerify(u ui.UI, dir string, args []string) error {
	var ids []string
	if len(args) == 1 {
		ids = []string{args[0]}
	} else {
		var err error
		ids, err = db.ChainIDs(dir)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			u.Warn("No address books found in %s.", dir)
			return nil
		}
	}

	invalid := 0
	warned := 0
	checked := 0
	for _, id := range ids {
		path := db.FilePath(dir, id)
		book, err := db.Load(path)
		if err != nil {
			return err
		}
		if len(ids) > 1 {
			u.Section(path)
		}
		for _, name := range book.Names() {
			addr := book.Data[name]
			checked++
			if !ethcommon.IsHexAddress(addr) {
				u.Error("%s: %s: '%s' is not a valid hex address", chains.DescribeChainID(id), name, addr)
				invalid++
				continue
			}
			if ethcommon.HexToAddress(addr).Hex() != addr {
				u.Warn("%s: %s: %s is not EIP55-checksummed", chains.DescribeChainID(id), name, addr)
				warned++
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d address(es) invalid", invalid, checked)
	}
	if warned > 0 {
		u.Warn("%d address(es) checked, %d checksum warning(s).", checked, warned)
		return nil
	}
	u.Success("%d address(es) checked, all valid.", checked)
	return nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
