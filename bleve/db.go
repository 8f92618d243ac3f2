// Package bleve maintains a full-text search index over every address book
// entry under the addresses directory. The index lives in
// ~/.addrbook/index.bleve and is rebuilt from scratch whenever the mod-time
// hash of the address book files changes, so removed entries never linger
// as stale documents. The last indexed hash is remembered in the cache
// package's store.
package bleve

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	bleve "github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"

	"github.com/ourzora/addrbook/cache"
	"github.com/ourzora/addrbook/db"
	"github.com/ourzora/addrbook/ui"
)

var (
	BLEVE_DATA_PATH string = filepath.Join(getHomeDir(), ".addrbook", "index.bleve")
	indexDB         *IndexDB
	once            sync.Once
)

const indexHashCacheKey = "addrbook_index_hash"

func getHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}
	return home
}

// booksHash derives a cheap fingerprint of the address books under dir from
// their mod times. Any write to any book changes the hash, which is all the
// invalidation we need.
func booksHash(dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return "", err
	}
	var timestamp int64
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		timestamp += info.ModTime().UnixNano()
	}
	return fmt.Sprintf("%d_%d", len(files), timestamp), nil
}

type IndexDB struct {
	index bleve.Index
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = en.AnalyzerName

	keywordFieldMapping := bleve.NewTextFieldMapping()

	defaultMapping := bleve.NewDocumentMapping()
	defaultMapping.AddFieldMappingsAt("name", textFieldMapping)
	defaultMapping.AddFieldMappingsAt("address", keywordFieldMapping)
	defaultMapping.AddFieldMappingsAt("chain", keywordFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", defaultMapping)

	indexMapping.TypeField = "type"
	indexMapping.DefaultAnalyzer = "en"

	return indexMapping
}

// indexDoc is the document shape stored in bleve. Field order matters:
// Search reads values back positionally from doc.Fields.
type indexDoc struct {
	Chain   string `json:"chain"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func loadIndex(u ui.UI, dir string, idb *IndexDB) error {
	hash, err := booksHash(dir)
	if err != nil {
		return err
	}

	lastHash, _ := cache.GetCache(indexHashCacheKey)
	_, statErr := os.Stat(BLEVE_DATA_PATH)
	upToDate := statErr == nil && lastHash == hash

	if upToDate {
		index, err := bleve.Open(BLEVE_DATA_PATH)
		if err != nil {
			// the index dir exists but doesn't open; fall through to a rebuild
			upToDate = false
		} else {
			idb.index = index
			return nil
		}
	}

	if !upToDate {
		stop := u.Spinner("Rebuilding address search index...")
		defer stop()

		// rebuild from scratch so entries removed from the books don't
		// survive as stale documents
		if err = os.RemoveAll(BLEVE_DATA_PATH); err != nil {
			return fmt.Errorf("failed to remove stale search index: %w", err)
		}
		os.MkdirAll(filepath.Dir(BLEVE_DATA_PATH), 0755)

		index, err := bleve.New(BLEVE_DATA_PATH, buildIndexMapping())
		if err != nil {
			return fmt.Errorf("failed to create search index: %w", err)
		}
		idb.index = index

		if err = indexEntries(index, db.NewFuzzySource(dir)); err != nil {
			return err
		}
		if err = cache.SetCache(indexHashCacheKey, hash); err != nil {
			return fmt.Errorf("failed to remember search index hash: %w", err)
		}
	}
	return nil
}

// NewIndexDB opens (or rebuilds) the search index over the address books
// under dir. The instance is a process-wide singleton, the tool never needs
// two indexes in one invocation.
func NewIndexDB(u ui.UI, dir string) (*IndexDB, error) {
	var resError error
	once.Do(func() {
		indexDB = &IndexDB{}
		resError = loadIndex(u, dir, indexDB)
	})
	return indexDB, resError
}

// Search runs a match-phrase-or-fuzzy disjunction query against the index
// and returns the matching entries, best first, with their scores.
func (idb *IndexDB) Search(input string) ([]db.Entry, []int) {
	matchQuery := bleve.NewMatchPhraseQuery(input)
	fuzzyQuery := bleve.NewFuzzyQuery(input)
	fuzzyQuery.Fuzziness = 1
	query := bleve.NewDisjunctionQuery(matchQuery, fuzzyQuery)
	request := bleve.NewSearchRequest(query)
	searchResults, err := idb.index.Search(request)
	if err != nil {
		fmt.Printf("Address book search failed: %s\n", err)
		return []db.Entry{}, []int{}
	}

	results := []db.Entry{}
	resultScores := []int{}
	for _, searchResult := range searchResults.Hits {
		doc, err := idb.index.Document(searchResult.ID)
		if err != nil {
			fmt.Printf("getting entry data for %s failed: %s. Ignored.", searchResult.ID, err)
			continue
		}
		resultScores = append(resultScores, int(searchResult.Score*1000000))
		results = append(results, db.Entry{
			ChainID: string(doc.Fields[0].Value()),
			Name:    string(doc.Fields[1].Value()),
			Address: string(doc.Fields[2].Value()),
		})
	}
	return results, resultScores
}

func indexEntries(i bleve.Index, entries []db.Entry) error {
	batch := i.NewBatch()
	batchCount := 0
	for _, entry := range entries {
		batch.Index(fmt.Sprintf("%s/%s", entry.ChainID, entry.Name), indexDoc{
			Chain:   entry.ChainID,
			Name:    entry.Name,
			Address: entry.Address,
		})
		batchCount++

		if batchCount >= 1000 {
			if err := i.Batch(batch); err != nil {
				return err
			}
			batch = i.NewBatch()
			batchCount = 0
		}
	}
	// flush the last batch
	if batchCount > 0 {
		if err := i.Batch(batch); err != nil {
			return err
		}
	}
	return nil
}
