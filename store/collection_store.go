// Package store holds the in-memory document collection loaded from the
// ingestion artifact. The collection is immutable once loaded; Replace swaps
// the whole collection when the artifact is re-read.
package store

import (
	"sync"

	"github.com/vkovalenko/go-doc-indexer/model"
)

type CollectionStore struct {
	mu         sync.RWMutex
	collection *model.DocumentCollection
}

// NewCollectionStore wraps an already-decoded document collection.
func NewCollectionStore(collection *model.DocumentCollection) *CollectionStore {
	if collection == nil {
		collection = &model.DocumentCollection{}
	}
	return &CollectionStore{collection: collection}
}

// Len returns the number of documents in the collection.
func (s *CollectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection.Len()
}

// Get returns the document at docIndex and whether it exists.
func (s *CollectionStore) Get(docIndex int) (model.DocumentRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if docIndex < 0 || docIndex >= len(s.collection.Documents) {
		return model.DocumentRecord{}, false
	}
	return s.collection.Documents[docIndex], true
}

// Documents returns the ordered document slice. Callers must treat it as
// read-only.
func (s *CollectionStore) Documents() []model.DocumentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collection.Documents
}

// Replace swaps in a freshly loaded collection.
func (s *CollectionStore) Replace(collection *model.DocumentCollection) {
	if collection == nil {
		collection = &model.DocumentCollection{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = collection
}
