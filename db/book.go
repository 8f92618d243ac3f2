package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrMalformed = fmt.Errorf("address book is not valid JSON")
	ErrNoEntry   = fmt.Errorf("no such contract in address book")
)

// Book is one chain's address book: a flat mapping from contract name to
// its deployed address. Addresses are opaque strings, the book does not
// validate or normalize them.
//
// The on-disk form is canonical: a JSON object with keys sorted ascending,
// 2-space indentation and a single trailing newline. Load and Save are the
// only disk operations; a Book never caches anything between invocations.
type Book struct {
	Data map[string]string
}

func NewBook() *Book {
	return &Book{Data: map[string]string{}}
}

// FilePath returns the address book path for a chain id, <dir>/<chainId>.json.
// The chain id is used verbatim, there is no validation of its format.
func FilePath(dir, chainID string) string {
	return filepath.Join(dir, chainID+".json")
}

// Load reads the address book at path. A missing file is not an error and
// yields an empty book, matching the first deployment to a new chain. A file
// that exists but does not parse as a flat string-to-string JSON object is
// terminal and wraps ErrMalformed.
func Load(path string) (*Book, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read address book %s: %w", path, err)
	}

	data := map[string]string{}
	if err = json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", path, ErrMalformed, err)
	}
	return &Book{Data: data}, nil
}

// Set records an address for a contract name. Last write wins, there is no
// conflict detection: redeploying a contract is the normal reason to call
// this tool twice with the same name.
func (b *Book) Set(name, address string) {
	b.Data[name] = address
}

func (b *Book) Get(name string) (string, bool) {
	addr, found := b.Data[name]
	return addr, found
}

// Remove deletes a contract entry. It returns ErrNoEntry if the name is not
// in the book so callers can refuse to write anything on a typo.
func (b *Book) Remove(name string) error {
	if _, found := b.Data[name]; !found {
		return fmt.Errorf("'%s': %w", name, ErrNoEntry)
	}
	delete(b.Data, name)
	return nil
}

// Merge copies every entry of other into the book, overwriting existing
// names. Iteration order does not matter since duplicate keys inside a
// single JSON object cannot survive unmarshalling.
func (b *Book) Merge(other map[string]string) {
	for name, addr := range other {
		b.Data[name] = addr
	}
}

// Names returns the contract names sorted ascending, the same order the
// persisted file uses.
func (b *Book) Names() []string {
	names := make([]string, 0, len(b.Data))
	for name := range b.Data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b *Book) Len() int {
	return len(b.Data)
}

// Marshal serializes the book to its canonical on-disk form: sorted keys,
// 2-space indent, trailing newline. encoding/json already sorts map keys,
// which is exactly the order the format requires.
func (b *Book) Marshal() ([]byte, error) {
	content, err := json.MarshalIndent(b.Data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(content, '\n'), nil
}

// Save writes the canonical serialization to path, overwriting any previous
// content. The write is a plain overwrite, not an atomic replace: a crash
// mid-write can truncate the file. The containing directory must already
// exist; Save does not create it.
func (b *Book) Save(path string) error {
	content, err := b.Marshal()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write address book %s: %w", path, err)
	}
	return nil
}

// ChainIDs returns the chain ids that have an address book under dir,
// sorted ascending as strings.
func ChainIDs(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob address books in %s: %w", dir, err)
	}

	ids := []string{}
	for _, file := range files {
		ids = append(ids, strings.TrimSuffix(filepath.Base(file), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
