package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ourzora/addrbook/config"
	"github.com/ourzora/addrbook/db"
	"github.com/ourzora/addrbook/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export <chainId>",
	Short: "Write a chain's address book canonically to stdout or a file",
	Long: `Emits the chain's book in its canonical serialized form (sorted keys,
2-space indent, trailing newline). Without --output the JSON goes to
stdout for piping; with --output it is written to the given file.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(ui.NewTerminalUI(), config.AddressesDir, args[0], config.JSONOutputFile)
	},
}

func runExport(u ui.UI, dir, chainID, outputFile string) error {
	path := db.FilePath(dir, chainID)
	book, err := db.Load(path)
	if err != nil {
		return err
	}
	if book.Len() == 0 {
		return fmt.Errorf("no addresses recorded in %s", path)
	}

	content, err := book.Marshal()
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err = os.WriteFile(outputFile, content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		u.Success("%s: exported %d contract(s) to %s.", path, book.Len(), outputFile)
		return nil
	}

	_, err = u.Writer().Write(content)
	return err
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&config.JSONOutputFile, "output", "o", "", "Write the exported book to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
