// Package builder implements the full-pass construction of the inverted
// index from the document collection.
package builder

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/vkovalenko/go-doc-indexer/index"
	"github.com/vkovalenko/go-doc-indexer/internal/stemmer"
	"github.com/vkovalenko/go-doc-indexer/internal/tokenizer"
	"github.com/vkovalenko/go-doc-indexer/model"
	"github.com/vkovalenko/go-doc-indexer/store"
)

// Service builds an InvertedIndex over a document collection. Each document's
// contribution is computed independently and merged union-by-document-index,
// so the build may fan out across workers without risking duplicate postings.
type Service struct {
	invertedIndex *index.InvertedIndex
	collection    *store.CollectionStore
	workers       int
}

// NewService creates a new build Service writing into invertedIndex.
func NewService(invertedIndex *index.InvertedIndex, collection *store.CollectionStore, workers int) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if collection == nil {
		return nil, fmt.Errorf("collection store cannot be nil")
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", workers)
	}
	return &Service{
		invertedIndex: invertedIndex,
		collection:    collection,
		workers:       workers,
	}, nil
}

// Build runs a single full pass over the collection in document order,
// tokenizing and stemming every paragraph and merging the resulting postings
// into the index. It records the collection size as the index's
// total_documents and finishes with a cleanup pass. The progress callback,
// when non-nil, is invoked after each document.
func (s *Service) Build(ctx context.Context, progress func(current, total int)) error {
	docs := s.collection.Documents()
	total := len(docs)

	var done atomic.Int64
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for docIndex, doc := range docs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		group.Go(func() error {
			s.invertedIndex.AddDocument(docIndex, documentStems(docIndex, doc))
			if progress != nil {
				progress(int(done.Add(1)), total)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	s.invertedIndex.SetTotalDocuments(total)
	if removed := s.invertedIndex.Cleanup(); removed > 0 {
		log.Printf("Build cleanup removed %d invalid index entries", removed)
	}
	return nil
}

// documentStems tokenizes and stems every paragraph of one document,
// returning stem -> paragraph positions in first-seen order. Stems shorter
// than the index minimum are dropped; a paragraph with invalid text is
// skipped without failing the document.
func documentStems(docIndex int, doc model.DocumentRecord) map[string][]int {
	stems := make(map[string][]int)
	for paragraphPos, paragraph := range doc.Paragraphs {
		if !utf8.ValidString(paragraph.Text) {
			log.Printf("Warning: skipping malformed paragraph %d of document %d (%s)", paragraphPos, docIndex, doc.FileName)
			continue
		}
		for token := range tokenizer.Tokens(paragraph.Text) {
			stem := stemmer.Stem(token)
			if utf8.RuneCountInString(stem) < index.MinStemLength {
				continue
			}
			stems[stem] = append(stems[stem], paragraphPos)
		}
	}
	return stems
}
