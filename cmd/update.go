package cmd

import (
	"errors"

	"github.com/ourzora/addrbook/db"
	"github.com/ourzora/addrbook/ui"
)

// errInvalidArgs carries the exact message the original deploy script raised,
// so existing tooling that greps for it keeps working.
var errInvalidArgs = errors.New("args must be chainid followed by pairs of contract name, contract address")

// runUpdate is the core operation: merge (name, address) pairs into the
// book for args[0] and rewrite it canonically. args holds everything after
// the program name: a chain id followed by at least one full pair, so the
// count must be odd and at least 3.
//
// The book on disk is only touched after every pair is merged in memory;
// any validation or load failure leaves the file exactly as it was.
func runUpdate(u ui.UI, dir string, args []string) error {
	if len(args) < 3 || len(args)%2 == 0 {
		return errInvalidArgs
	}

	chainID := args[0]
	path := db.FilePath(dir, chainID)

	book, err := db.Load(path)
	if err != nil {
		return err
	}

	for i := 1; i < len(args); i += 2 {
		book.Set(args[i], args[i+1])
	}

	if err = book.Save(path); err != nil {
		return err
	}

	u.Success("%s: %d contract(s) saved.", path, (len(args)-1)/2)
	return nil
}
