package db_test

import (
	"testing"

	"github.com/ourzora/addrbook/db"
)

func seedSource(t *testing.T) db.FuzzySource {
	t.Helper()
	mainnet := db.NewBook()
	mainnet.Set("MediaFactory", "0x1111")
	mainnet.Set("Market", "0x2222")

	zora := db.NewBook()
	zora.Set("AsksV1", "0x3333")

	source := db.NewChainFuzzySource("1", mainnet)
	return append(source, db.NewChainFuzzySource("7777777", zora)...)
}

func TestSearchFindsByPartialName(t *testing.T) {
	matches, scores := db.Search("media", seedSource(t))
	if len(matches) == 0 {
		t.Fatal("expected at least one match for 'media'")
	}
	if matches[0].Name != "MediaFactory" {
		t.Errorf("best match = %q, want MediaFactory", matches[0].Name)
	}
	if matches[0].ChainID != "1" {
		t.Errorf("best match chain = %q, want 1", matches[0].ChainID)
	}
	if len(scores) != len(matches) {
		t.Errorf("scores/matches length mismatch: %d vs %d", len(scores), len(matches))
	}
}

func TestSearchFindsByAddress(t *testing.T) {
	matches, _ := db.Search("0x3333", seedSource(t))
	if len(matches) == 0 {
		t.Fatal("expected a match for '0x3333'")
	}
	if matches[0].Name != "AsksV1" {
		t.Errorf("best match = %q, want AsksV1", matches[0].Name)
	}
}

func TestSearchNoMatch(t *testing.T) {
	matches, scores := db.Search("zzzzqqqq", seedSource(t))
	if len(matches) != 0 || len(scores) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestNewFuzzySourceSkipsMalformedBooks(t *testing.T) {
	dir := t.TempDir()

	good := db.NewBook()
	good.Set("Market", "0x1")
	if err := good.Save(db.FilePath(dir, "1")); err != nil {
		t.Fatalf("Save: %s", err)
	}
	writeBook(t, db.FilePath(dir, "999"), "not json")

	source := db.NewFuzzySource(dir)
	if source.Len() != 1 {
		t.Fatalf("expected 1 entry from the good book, got %d", source.Len())
	}
	if source[0].Name != "Market" {
		t.Errorf("entry = %q, want Market", source[0].Name)
	}
}
