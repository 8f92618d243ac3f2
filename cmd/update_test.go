package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ourzora/addrbook/db"
	"github.com/ourzora/addrbook/ui"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %s", path, err)
	}
	return string(content)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %s", path, err)
	}
}

func TestUpdateRejectsInvalidArgCounts(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{},                               // nothing at all
		{"1"},                            // chain id alone, zero pairs
		{"1", "Market"},                  // one incomplete pair
		{"1", "Market", "0x1", "AsksV1"}, // trailing odd argument
	} {
		u := ui.NewRecordingUI()
		err := runUpdate(u, dir, args)
		if err == nil {
			t.Fatalf("args %v: expected an error", args)
		}
		if err.Error() != "args must be chainid followed by pairs of contract name, contract address" {
			t.Errorf("args %v: unexpected message %q", args, err.Error())
		}
	}
}

func TestUpdateInvalidArgsLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := db.FilePath(dir, "1")
	prior := "{\n  \"Market\": \"0x1\"\n}\n"
	writeFile(t, path, prior)

	err := runUpdate(ui.NewRecordingUI(), dir, []string{"1", "Market", "0x9", "AsksV1"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := readFile(t, path); got != prior {
		t.Errorf("file changed on validation failure:\nbefore: %q\nafter:  %q", prior, got)
	}
}

func TestUpdateCreatesCanonicalFile(t *testing.T) {
	dir := t.TempDir()

	err := runUpdate(ui.NewRecordingUI(), dir, []string{"1", "A", "0x1", "B", "0x2"})
	if err != nil {
		t.Fatalf("runUpdate: %s", err)
	}

	want := "{\n  \"A\": \"0x1\",\n  \"B\": \"0x2\"\n}\n"
	if got := readFile(t, db.FilePath(dir, "1")); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUpdateSortsRegardlessOfInputOrder(t *testing.T) {
	dir := t.TempDir()

	err := runUpdate(ui.NewRecordingUI(), dir, []string{"1", "Z", "1", "A", "2"})
	if err != nil {
		t.Fatalf("runUpdate: %s", err)
	}

	want := "{\n  \"A\": \"2\",\n  \"Z\": \"1\"\n}\n"
	if got := readFile(t, db.FilePath(dir, "1")); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUpdateMergesIntoExistingBook(t *testing.T) {
	dir := t.TempDir()
	path := db.FilePath(dir, "1")
	writeFile(t, path, "{\n  \"A\": \"0x1\"\n}\n")

	if err := runUpdate(ui.NewRecordingUI(), dir, []string{"1", "B", "0x2"}); err != nil {
		t.Fatalf("runUpdate: %s", err)
	}
	want := "{\n  \"A\": \"0x1\",\n  \"B\": \"0x2\"\n}\n"
	if got := readFile(t, path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	// redeploying overwrites
	if err := runUpdate(ui.NewRecordingUI(), dir, []string{"1", "A", "0x9"}); err != nil {
		t.Fatalf("runUpdate: %s", err)
	}
	want = "{\n  \"A\": \"0x9\",\n  \"B\": \"0x2\"\n}\n"
	if got := readFile(t, path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUpdateLastPairWinsWithinOneInvocation(t *testing.T) {
	dir := t.TempDir()

	err := runUpdate(ui.NewRecordingUI(), dir, []string{"1", "A", "0x1", "A", "0x2"})
	if err != nil {
		t.Fatalf("runUpdate: %s", err)
	}
	want := "{\n  \"A\": \"0x2\"\n}\n"
	if got := readFile(t, db.FilePath(dir, "1")); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	args := []string{"1", "Market", "0xdef", "MediaFactory", "0xabc"}

	if err := runUpdate(ui.NewRecordingUI(), dir, args); err != nil {
		t.Fatalf("first runUpdate: %s", err)
	}
	first := readFile(t, db.FilePath(dir, "1"))

	if err := runUpdate(ui.NewRecordingUI(), dir, args); err != nil {
		t.Fatalf("second runUpdate: %s", err)
	}
	if second := readFile(t, db.FilePath(dir, "1")); second != first {
		t.Errorf("second run changed the file:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestUpdateMalformedExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := db.FilePath(dir, "1")
	writeFile(t, path, "not json")

	err := runUpdate(ui.NewRecordingUI(), dir, []string{"1", "A", "0x1"})
	if !errors.Is(err, db.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if got := readFile(t, path); got != "not json" {
		t.Errorf("malformed file was rewritten to %q", got)
	}
}

func TestUpdateMissingAddressesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "addresses")

	err := runUpdate(ui.NewRecordingUI(), dir, []string{"1", "A", "0x1"})
	if err == nil {
		t.Fatal("expected an error for a missing addresses directory")
	}
}
