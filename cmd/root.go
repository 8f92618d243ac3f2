package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ourzora/addrbook/config"
	"github.com/ourzora/addrbook/ui"
)

// rootCmd represents the base command. Called without a subcommand it IS the
// update operation: a chain id followed by pairs of contract name and
// address, exactly the surface deploy scripts drive.
var rootCmd = &cobra.Command{
	Use:   "addrbook <chainId> <name> <address> [<name> <address> ...]",
	Short: "Maintain per-chain JSON books of deployed contract addresses",
	Long: `addrbook records where a protocol's contracts are deployed, one JSON file
per chain under the addresses/ directory of the deploy repo:

	addresses/1.json
	addresses/7777777.json
	...

Each file is a flat JSON object mapping contract name to address, keys
sorted, 2-space indented. Invoked with positional arguments, addrbook
merges the given pairs into the chain's book and rewrites it:

	addrbook 1 MediaFactory 0xabc... Market 0xdef...

Later pairs win over earlier ones for the same name, including within a
single invocation; redeploying a contract is just running the tool again.
The book is rewritten in place (no atomic rename), and the addresses/
directory must already exist — run addrbook from the root of the deploy
repo, not from inside a subdirectory.

No validation is performed on the chain id or the addresses. Use
'addrbook verify' to sanity-check a book after the fact.

Concurrent invocations against the same chain are last-writer-wins; the
tool does no locking.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(ui.NewTerminalUI(), config.AddressesDir, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Any error exits non-zero.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.AddressesDir, "dir", "d", "addresses", "directory holding the per-chain address book json files")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
