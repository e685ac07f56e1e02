// Package verifier checks a built inverted index against the document
// collection it was built from. It detects the two structural problems a
// stale or truncated build produces: a word missing where it is expected,
// and a collection suffix that was never indexed.
package verifier

import (
	"fmt"

	"github.com/vkovalenko/go-doc-indexer/index"
	"github.com/vkovalenko/go-doc-indexer/internal/stemmer"
	"github.com/vkovalenko/go-doc-indexer/services"
	"github.com/vkovalenko/go-doc-indexer/store"
)

// maxReportedUnindexed caps how many unindexed document names a coverage
// report carries; the count is always exact.
const maxReportedUnindexed = 10

// Service is pure read/diagnostic logic over an index and its source
// collection. It never mutates the index.
type Service struct {
	invertedIndex *index.InvertedIndex
	collection    *store.CollectionStore
}

// NewService creates a verifier over the given index and collection.
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

// VerifyWord stems word, looks the stem up, and reports what the index knows
// about it together with a coverage check of the whole index. When
// expectedDocIndex is non-nil the report states whether that document
// appears among the stem's postings.
func (s *Service) VerifyWord(word string, expectedDocIndex *int) services.VerificationReport {
	stem := stemmer.Stem(word)

	report := services.VerificationReport{
		Word:             word,
		Stem:             stem,
		ExpectedDocIndex: expectedDocIndex,
		Coverage:         s.CheckCoverage(),
	}

	postings, found := s.invertedIndex.Lookup(stem)
	report.Found = found
	report.Postings = postings

	if expectedDocIndex != nil {
		for _, dp := range postings {
			if dp.DocIndex == *expectedDocIndex {
				report.ExpectedDocFound = true
				report.ExpectedDocParagraphs = dp.ParagraphPositions
				break
			}
		}
	}
	return report
}

// CheckCoverage compares the highest document index present in the index
// against the last index of the collection. Documents past the highest
// indexed one were never visited by the build. A document with no indexable
// tokens at the tail of the collection triggers the same signal; that false
// positive is inherent to the heuristic and reported as-is.
func (s *Service) CheckCoverage() services.CoverageReport {
	collectionSize := s.collection.Len()
	totalDocuments := s.invertedIndex.TotalDocuments()
	maxDocIndex := s.invertedIndex.MaxDocIndex()

	report := services.CoverageReport{
		CollectionSize: collectionSize,
		TotalDocuments: totalDocuments,
		MaxDocIndex:    maxDocIndex,
		StaleTotal:     totalDocuments != collectionSize,
	}

	if maxDocIndex < collectionSize-1 {
		report.Incomplete = true
		report.UnindexedCount = collectionSize - maxDocIndex - 1
		for docIndex := maxDocIndex + 1; docIndex < collectionSize && len(report.UnindexedDocuments) < maxReportedUnindexed; docIndex++ {
			doc, ok := s.collection.Get(docIndex)
			if !ok {
				break
			}
			report.UnindexedDocuments = append(report.UnindexedDocuments, services.UnindexedDocument{
				DocIndex: docIndex,
				FileName: doc.FileName,
			})
		}
	}
	return report
}
