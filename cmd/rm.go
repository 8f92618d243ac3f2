package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ourzora/addrbook/config"
	"github.com/ourzora/addrbook/db"
	"github.com/ourzora/addrbook/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <chainId> <name> [<name> ...]",
	Short: "Remove contract entries from a chain's address book",
	Long: `Removes one or more contract entries from a chain's book and rewrites the
file canonically. Every given name must exist — a single typo aborts the
whole command before anything is written. Asks for confirmation unless
--force is given.`,
	Args:          cobra.MinimumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRm(ui.NewTerminalUI(), config.AddressesDir, config.Force, args[0], args[1:])
	},
}

func runRm(u ui.UI, dir string, force bool, chainID string, names []string) error {
	path := db.FilePath(dir, chainID)
	book, err := db.Load(path)
	if err != nil {
		return err
	}

	// validate everything before mutating so the file is never written
	// when any name is wrong
	for _, name := range names {
		if _, found := book.Get(name); !found {
			return fmt.Errorf("'%s': %w (in %s)", name, db.ErrNoEntry, path)
		}
	}

	if !force {
		if !u.Confirm(fmt.Sprintf("Remove %d contract(s) from %s?", len(names), path), false) {
			u.Info("Aborted.")
			return nil
		}
	}

	for _, name := range names {
		if err = book.Remove(name); err != nil {
			return err
		}
	}

	if err = book.Save(path); err != nil {
		return err
	}
	u.Success("%s: %d contract(s) removed.", path, len(names))
	return nil
}

func init() {
	rmCmd.PersistentFlags().BoolVarP(&config.Force, "force", "f", false, "Remove without asking for confirmation")
	rootCmd.AddCommand(rmCmd)
}
