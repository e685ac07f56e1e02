// Package index implements the word-level inverted index: a mapping from
// stems to the documents (and paragraph positions within them) that contain
// them, together with the collection size observed at build time.
package index

import (
	"encoding/json"
	"sort"
	"sync"
	"unicode/utf8"
)

// MinStemLength is the minimum number of runes a stem must have to be
// indexed. Shorter stems are too weak to disambiguate and mostly add noise.
const MinStemLength = 2

// InvertedIndex maps stems to per-document postings. Internally postings are
// keyed by document index so find-or-create is O(1); the ordered-list wire
// form of the artifact is produced only at (de)serialization time.
type InvertedIndex struct {
	mu             sync.RWMutex
	postings       map[string]map[int]*posting
	totalDocuments int
}

// New creates an empty InvertedIndex.
func New() *InvertedIndex {
	return &InvertedIndex{
		postings: make(map[string]map[int]*posting),
	}
}

// Add records that stem occurs in paragraph paragraphPos of document
// docIndex. Re-adding the same triple is a no-op, which keeps the
// one-posting-per-(stem, document) invariant by construction.
func (ii *InvertedIndex) Add(stem string, docIndex, paragraphPos int) {
	ii.mu.Lock()
	defer ii.mu.Unlock()
	ii.addUnsafe(stem, docIndex, paragraphPos)
}

// AddDocument merges the stems of one document (stem -> paragraph positions
// in first-seen order) into the index under a single lock acquisition. This
// is the union-by-document-index merge used by the parallel builder.
func (ii *InvertedIndex) AddDocument(docIndex int, stems map[string][]int) {
	ii.mu.Lock()
	defer ii.mu.Unlock()
	for stem, positions := range stems {
		for _, pos := range positions {
			ii.addUnsafe(stem, docIndex, pos)
		}
	}
}

func (ii *InvertedIndex) addUnsafe(stem string, docIndex, paragraphPos int) {
	docs, ok := ii.postings[stem]
	if !ok {
		docs = make(map[int]*posting)
		ii.postings[stem] = docs
	}
	p, ok := docs[docIndex]
	if !ok {
		p = newPosting()
		docs[docIndex] = p
	}
	p.add(paragraphPos)
}

// SetTotalDocuments records the collection size observed during the build.
func (ii *InvertedIndex) SetTotalDocuments(n int) {
	ii.mu.Lock()
	defer ii.mu.Unlock()
	ii.totalDocuments = n
}

// TotalDocuments returns the collection size recorded at build time.
func (ii *InvertedIndex) TotalDocuments() int {
	ii.mu.RLock()
	defer ii.mu.RUnlock()
	return ii.totalDocuments
}

// Lookup returns the postings for stem in wire form, sorted by document
// index. The second return value reports whether the stem is a key at all.
func (ii *InvertedIndex) Lookup(stem string) ([]DocPosting, bool) {
	ii.mu.RLock()
	defer ii.mu.RUnlock()
	docs, ok := ii.postings[stem]
	if !ok {
		return nil, false
	}
	return wirePostings(docs), true
}

// MaxDocIndex returns the highest document index appearing in any posting,
// or -1 when the index holds no postings at all.
func (ii *InvertedIndex) MaxDocIndex() int {
	ii.mu.RLock()
	defer ii.mu.RUnlock()
	maxIdx := -1
	for _, docs := range ii.postings {
		for docIndex := range docs {
			if docIndex > maxIdx {
				maxIdx = docIndex
			}
		}
	}
	return maxIdx
}

// Stats returns the recorded collection size and the number of distinct
// stems in the index.
func (ii *InvertedIndex) Stats() (totalDocuments, stems int) {
	ii.mu.RLock()
	defer ii.mu.RUnlock()
	return ii.totalDocuments, len(ii.postings)
}

// Cleanup removes stems shorter than MinStemLength, postings with no
// paragraph positions, and stems left with no postings. It returns the
// number of removed entries.
func (ii *InvertedIndex) Cleanup() int {
	ii.mu.Lock()
	defer ii.mu.Unlock()

	removed := 0
	for stem, docs := range ii.postings {
		if utf8.RuneCountInString(stem) < MinStemLength {
			delete(ii.postings, stem)
			removed++
			continue
		}
		for docIndex, p := range docs {
			if len(p.order) == 0 {
				delete(docs, docIndex)
				removed++
			}
		}
		if len(docs) == 0 {
			delete(ii.postings, stem)
			removed++
		}
	}
	return removed
}

// jsonInvertedIndexData is a helper struct for the JSON artifact schema. It
// carries the ordered-list wire form and excludes the mutex.
type jsonInvertedIndexData struct {
	WordToDocs     map[string][]DocPosting `json:"word_to_docs"`
	TotalDocuments int                     `json:"total_documents"`
}

// MarshalJSON implements json.Marshaler. Postings are serialized sorted by
// document index so rebuilding from the same collection produces an
// identical artifact.
func (ii *InvertedIndex) MarshalJSON() ([]byte, error) {
	ii.mu.RLock()
	defer ii.mu.RUnlock()

	wordToDocs := make(map[string][]DocPosting, len(ii.postings))
	for stem, docs := range ii.postings {
		wordToDocs[stem] = wirePostings(docs)
	}
	return json.Marshal(jsonInvertedIndexData{
		WordToDocs:     wordToDocs,
		TotalDocuments: ii.totalDocuments,
	})
}

// UnmarshalJSON implements json.Unmarshaler, rebuilding the internal
// per-document maps from the ordered-list wire form.
func (ii *InvertedIndex) UnmarshalJSON(data []byte) error {
	decoded := jsonInvertedIndexData{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	ii.mu.Lock()
	defer ii.mu.Unlock()

	ii.postings = make(map[string]map[int]*posting, len(decoded.WordToDocs))
	for stem, wires := range decoded.WordToDocs {
		docs := make(map[int]*posting, len(wires))
		for _, dp := range wires {
			p, ok := docs[dp.DocIndex]
			if !ok {
				p = newPosting()
				docs[dp.DocIndex] = p
			}
			for _, pos := range dp.ParagraphPositions {
				p.add(pos)
			}
		}
		ii.postings[stem] = docs
	}
	ii.totalDocuments = decoded.TotalDocuments
	return nil
}

func wirePostings(docs map[int]*posting) []DocPosting {
	result := make([]DocPosting, 0, len(docs))
	for docIndex, p := range docs {
		result = append(result, p.wire(docIndex))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DocIndex < result[j].DocIndex
	})
	return result
}
