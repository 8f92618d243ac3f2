package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ourzora/addrbook/config"
	"github.com/ourzora/addrbook/db"
	"github.com/ourzora/addrbook/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <chainId> <file.json>",
	Short: "Merge a name-to-address JSON file into a chain's address book",
	Long: `Reads a flat JSON object mapping contract names to addresses — the same
shape the books themselves use — and merges it into the chain's book.
Imported entries overwrite existing names, exactly like pairs given on the
command line do. Useful for pulling addresses produced by another deploy
tool into the book in one go.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(ui.NewTerminalUI(), config.AddressesDir, args[0], args[1])
	},
}

func runImport(u ui.UI, dir, chainID, file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read import file %s: %w", file, err)
	}

	imported := map[string]string{}
	if err = json.Unmarshal(content, &imported); err != nil {
		return fmt.Errorf("%s: %w: %s", file, db.ErrMalformed, err)
	}
	if len(imported) == 0 {
		return fmt.Errorf("%s has no entries to import", file)
	}

	path := db.FilePath(dir, chainID)
	book, err := db.Load(path)
	if err != nil {
		return err
	}

	book.Merge(imported)

	if err = book.Save(path); err != nil {
		return err
	}
	u.Success("%s: %d contract(s) imported from %s.", path, len(imported), file)
	return nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
