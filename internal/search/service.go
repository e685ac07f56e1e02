// Package search answers stem queries against a built index. A document
// matches when it contains every stem of the query; its hit carries the
// union of the matching paragraph positions.
package search

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/vkovalenko/go-doc-indexer/index"
	"github.com/vkovalenko/go-doc-indexer/internal/stemmer"
	"github.com/vkovalenko/go-doc-indexer/internal/tokenizer"
	"github.com/vkovalenko/go-doc-indexer/services"
	"github.com/vkovalenko/go-doc-indexer/store"
)

// Service executes read-only queries against the index.
type Service struct {
	invertedIndex *index.InvertedIndex
	collection    *store.CollectionStore
}

// NewService creates a search Service.
func NewService(invertedIndex *index.InvertedIndex, collection *store.CollectionStore) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if collection == nil {
		return nil, fmt.Errorf("collection store cannot be nil")
	}
	return &Service{
		invertedIndex: invertedIndex,
		collection:    collection,
	}, nil
}

// Search stems the query words and intersects their postings, starting from
// the rarest stem so the candidate set shrinks as early as possible.
func (s *Service) Search(query string) services.SearchResult {
	start := time.Now()

	stems := queryStems(query)
	result := services.SearchResult{
		Hits:  make([]services.SearchHit, 0),
		Query: query,
		Stems: stems,
	}
	if len(stems) == 0 {
		result.Took = time.Since(start).Milliseconds()
		return result
	}

	// Fetch postings for every stem up front; any absent stem empties the
	// intersection immediately.
	postingsByStem := make([][]index.DocPosting, len(stems))
	for i, stem := range stems {
		postings, ok := s.invertedIndex.Lookup(stem)
		if !ok {
			result.Took = time.Since(start).Milliseconds()
			return result
		}
		postingsByStem[i] = postings
	}

	// Rarest stem first.
	sort.Slice(postingsByStem, func(i, j int) bool {
		return len(postingsByStem[i]) < len(postingsByStem[j])
	})

	candidates := make(map[int]map[int]struct{})
	for _, dp := range postingsByStem[0] {
		positions := make(map[int]struct{}, len(dp.ParagraphPositions))
		for _, pos := range dp.ParagraphPositions {
			positions[pos] = struct{}{}
		}
		candidates[dp.DocIndex] = positions
	}

	for _, postings := range postingsByStem[1:] {
		withStem := make(map[int][]int, len(postings))
		for _, dp := range postings {
			withStem[dp.DocIndex] = dp.ParagraphPositions
		}
		for docIndex, positions := range candidates {
			morePositions, ok := withStem[docIndex]
			if !ok {
				delete(candidates, docIndex)
				continue
			}
			for _, pos := range morePositions {
				positions[pos] = struct{}{}
			}
		}
		if len(candidates) == 0 {
			break
		}
	}

	for docIndex, positionSet := range candidates {
		positions := make([]int, 0, len(positionSet))
		for pos := range positionSet {
			positions = append(positions, pos)
		}
		sort.Ints(positions)

		hit := services.SearchHit{DocIndex: docIndex, ParagraphPositions: positions}
		if doc, ok := s.collection.Get(docIndex); ok {
			hit.FileName = doc.FileName
			hit.FilePath = doc.FilePath
		}
		result.Hits = append(result.Hits, hit)
	}
	sort.Slice(result.Hits, func(i, j int) bool {
		return result.Hits[i].DocIndex < result.Hits[j].DocIndex
	})

	result.Count = len(result.Hits)
	result.Took = time.Since(start).Milliseconds()
	return result
}

// queryStems tokenizes and stems the query the same way the builder indexes
// text, so query keys and index keys always agree.
func queryStems(query string) []string {
	stems := make([]string, 0)
	seen := make(map[string]struct{})
	for _, token := range tokenizer.Tokenize(query) {
		stem := stemmer.Stem(token)
		if utf8.RuneCountInString(stem) < index.MinStemLength {
			continue
		}
		if _, dup := seen[stem]; dup {
			continue
		}
		seen[stem] = struct{}{}
		stems = append(stems, stem)
	}
	return stems
}
