package db_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ourzora/addrbook/db"
)

func writeBook(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %s", path, err)
	}
}

func readBook(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %s", path, err)
	}
	return string(content)
}

func TestFilePath(t *testing.T) {
	got := db.FilePath("addresses", "7777777")
	want := filepath.Join("addresses", "7777777.json")
	if got != want {
		t.Errorf("FilePath = %q, want %q", got, want)
	}
}

func TestLoadMissingFileYieldsEmptyBook(t *testing.T) {
	book, err := db.Load(filepath.Join(t.TempDir(), "1.json"))
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	if book.Len() != 0 {
		t.Errorf("expected empty book, got %d entries", book.Len())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.json")
	writeBook(t, path, "not json at all")

	_, err := db.Load(path)
	if !errors.Is(err, db.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestMarshalCanonicalForm(t *testing.T) {
	book := db.NewBook()
	book.Set("Z", "1")
	book.Set("A", "2")

	content, err := book.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %s", err)
	}
	want := "{\n  \"A\": \"2\",\n  \"Z\": \"1\"\n}\n"
	if string(content) != want {
		t.Errorf("Marshal = %q, want %q", content, want)
	}
}

func TestMarshalEmptyBook(t *testing.T) {
	content, err := db.NewBook().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %s", err)
	}
	if string(content) != "{}\n" {
		t.Errorf("Marshal = %q, want %q", content, "{}\n")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.json")

	book := db.NewBook()
	book.Set("Market", "0xdef")
	if err := book.Save(path); err != nil {
		t.Fatalf("Save: %s", err)
	}

	loaded, err := db.Load(path)
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	if addr, _ := loaded.Get("Market"); addr != "0xdef" {
		t.Errorf("Get(Market) = %q, want %q", addr, "0xdef")
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.json")

	book := db.NewBook()
	book.Set("A", "0x1")
	book.Set("B", "0x2")
	if err := book.Save(path); err != nil {
		t.Fatalf("first Save: %s", err)
	}
	first := readBook(t, path)

	if err := book.Save(path); err != nil {
		t.Fatalf("second Save: %s", err)
	}
	if second := readBook(t, path); second != first {
		t.Errorf("second Save changed the file:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestSaveMissingDirFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses", "1.json")
	book := db.NewBook()
	book.Set("A", "0x1")
	if err := book.Save(path); err == nil {
		t.Fatal("expected Save into a missing directory to fail")
	}
}

func TestRemove(t *testing.T) {
	book := db.NewBook()
	book.Set("A", "0x1")

	if err := book.Remove("A"); err != nil {
		t.Fatalf("Remove: %s", err)
	}
	if err := book.Remove("A"); !errors.Is(err, db.ErrNoEntry) {
		t.Fatalf("expected ErrNoEntry, got %v", err)
	}
}

func TestMergeOverwrites(t *testing.T) {
	book := db.NewBook()
	book.Set("A", "0x1")
	book.Merge(map[string]string{"A": "0x9", "B": "0x2"})

	if addr, _ := book.Get("A"); addr != "0x9" {
		t.Errorf("Get(A) = %q, want %q", addr, "0x9")
	}
	if addr, _ := book.Get("B"); addr != "0x2" {
		t.Errorf("Get(B) = %q, want %q", addr, "0x2")
	}
}

func TestNamesSorted(t *testing.T) {
	book := db.NewBook()
	book.Set("Market", "0x1")
	book.Set("AsksV1", "0x2")
	book.Set("MediaFactory", "0x3")

	want := []string{"AsksV1", "Market", "MediaFactory"}
	if got := book.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestChainIDs(t *testing.T) {
	dir := t.TempDir()
	writeBook(t, filepath.Join(dir, "137.json"), "{}\n")
	writeBook(t, filepath.Join(dir, "1.json"), "{}\n")
	writeBook(t, filepath.Join(dir, "notes.txt"), "ignored")

	ids, err := db.ChainIDs(dir)
	if err != nil {
		t.Fatalf("ChainIDs: %s", err)
	}
	want := []string{"1", "137"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ChainIDs = %v, want %v", ids, want)
	}
}
