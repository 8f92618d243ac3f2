package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ourzora/addrbook/chains"
	"github.com/ourzora/addrbook/ui"
)

var (
	ChainConfig string
	ChainForce  bool
)

var addChainCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new chain to the known chains list locally",
	Long: `--config flag is supported to pass a new chain config json filepath OR pass a json string. The json should be in the following format:
	{
		"name": "zora-sepolia",
		"alternative_names": ["zsep"],
		"chain_id": 999999999,
		"explorer_url": "https://sepolia.explorer.zora.energy"
	}

Known chains are only used to annotate chain ids in command output — they
never gate which chain ids an address book may use.`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := cmd.Flags().GetString("config")
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			return
		}

		var newChain chains.Chain
		config = strings.TrimSpace(config)
		if config != "" && strings.HasPrefix(config, "{") && strings.HasSuffix(config, "}") {
			newChain, err = chains.NewChainFromJSON([]byte(config))
			if err != nil {
				fmt.Printf("The provided json is not valid: %s\n", err)
				return
			}
		} else if config != "" {
			// in this case, config is supposed to be a path to a json file
			jsonFile, err := os.Open(config)
			if err != nil {
				fmt.Printf("Couldn't open the provided json file: %s\n", err)
				return
			}
			defer jsonFile.Close()

			jsonBytes, err := io.ReadAll(jsonFile)
			if err != nil {
				fmt.Printf("Couldn't read the provided json file: %s\n", err)
				return
			}
			newChain, err = chains.NewChainFromJSON(jsonBytes)
			if err != nil {
				fmt.Printf("The provided json is not a valid chain config: %s\n", err)
				return
			}
		} else {
			fmt.Printf("No --config provided. Abort.\n")
			return
		}

		allNames := []string{newChain.Name}
		allNames = append(allNames, newChain.AlternativeNames...)

		for _, name := range allNames {
			_, err = chains.GetChain(name)
			if err == nil && !ChainForce {
				fmt.Printf("Chain with name %s already exists. Abort. If you want to update the chain, use flag --force.\n", name)
				return
			}
			if err == nil && ChainForce {
				fmt.Printf("Chain with name %s already exists. We will replace it with the new chain.\n", name)
			}
		}

		err = chains.AddChain(newChain)
		if err != nil {
			fmt.Printf("Failed to add the new chain: %s\n", err)
			return
		}
		fmt.Printf("Chain %s with chain ID %d added and saved to ~/.addrbook/chains/.\n", newChain.Name, newChain.ChainID)
	},
}

var listChainCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of the known chains",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.NewTerminalUI()
		rows := [][]string{}
		for _, c := range chains.GetSupportedChains() {
			name := c.Name
			if len(c.AlternativeNames) > 0 {
				name = fmt.Sprintf("%s (%s)", c.Name, strings.Join(c.AlternativeNames, ", "))
			}
			rows = append(rows, []string{fmt.Sprintf("%d", c.ChainID), name, c.ExplorerURL})
		}
		u.Table([]string{"Chain ID", "Name", "Explorer"}, rows)

		u.Info("If you want to recognize more chains, use: addrbook chains add")
		u.Info("To remove a custom chain, delete the corresponding json file in ~/.addrbook/chains/.")
	},
}

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "Manage the chains addrbook recognizes",
	Long:  ``,
}

func init() {
	addChainCmd.PersistentFlags().StringVarP(&ChainConfig, "config", "c", "", "Path to the chain config json file, or an inline json string")
	addChainCmd.PersistentFlags().BoolVarP(&ChainForce, "force", "f", false, "Force adding the chain even if it already exists")

	chainsCmd.AddCommand(listChainCmd)
	chainsCmd.AddCommand(addChainCmd)
	rootCmd.AddCommand(chainsCmd)
}
