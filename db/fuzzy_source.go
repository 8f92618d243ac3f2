package db

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Entry is one address book line together with the chain it belongs to.
type Entry struct {
	ChainID string
	Name    string
	Address string
}

type FuzzySource []Entry

func (s FuzzySource) Len() int {
	return len(s)
}

func (s FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", strings.Replace(s[i].Name, " ", "_", -1), s[i].Address)
}

// NewChainFuzzySource builds a fuzzy source from one chain's book.
func NewChainFuzzySource(chainID string, b *Book) FuzzySource {
	result := FuzzySource{}
	for _, name := range b.Names() {
		result = append(result, Entry{
			ChainID: chainID,
			Name:    name,
			Address: b.Data[name],
		})
	}
	return result
}

// NewFuzzySource builds a fuzzy source from every address book under dir.
// Books that fail to load are skipped, search should not die on one
// malformed file.
func NewFuzzySource(dir string) FuzzySource {
	result := FuzzySource{}
	ids, err := ChainIDs(dir)
	if err != nil {
		return result
	}
	for _, id := range ids {
		book, err := Load(FilePath(dir, id))
		if err != nil {
			continue
		}
		result = append(result, NewChainFuzzySource(id, book)...)
	}
	return result
}

// Search returns at most 10 entries matching input, best first, together
// with their match scores.
func Search(input string, source FuzzySource) ([]Entry, []int) {
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	result := []Entry{}
	scores := []int{}
	for i := 0; i < 10; i++ {
		if i >= len(matches) {
			break
		}
		result = append(result, source[matches[i].Index])
		scores = append(scores, matches[i].Score)
	}
	return result, scores
}
