// Package engine wires the collection store, the inverted index, and the
// builder, verifier, and search services behind the services.IndexManager
// contract consumed by the API layer.
package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/vkovalenko/go-doc-indexer/config"
	"github.com/vkovalenko/go-doc-indexer/index"
	"github.com/vkovalenko/go-doc-indexer/internal/builder"
	apperrors "github.com/vkovalenko/go-doc-indexer/internal/errors"
	"github.com/vkovalenko/go-doc-indexer/internal/jobs"
	"github.com/vkovalenko/go-doc-indexer/internal/persistence"
	"github.com/vkovalenko/go-doc-indexer/internal/search"
	"github.com/vkovalenko/go-doc-indexer/internal/verifier"
	"github.com/vkovalenko/go-doc-indexer/model"
	"github.com/vkovalenko/go-doc-indexer/services"
	"github.com/vkovalenko/go-doc-indexer/store"
)

// Engine owns the in-memory index and collection and coordinates rebuilds.
// It implements the services.IndexManager interface.
type Engine struct {
	mu            sync.RWMutex
	cfg           *config.Config
	collection    *store.CollectionStore
	invertedIndex *index.InvertedIndex
	jobManager    *jobs.Manager
}

// NewEngine loads both artifacts from disk and returns a ready engine. A
// missing inverted index is not an error — the engine starts empty and a
// rebuild creates it. A missing or malformed document collection is fatal:
// there is nothing to index or verify against.
func NewEngine(cfg *config.Config, jobManager *jobs.Manager) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if jobManager == nil {
		return nil, fmt.Errorf("job manager cannot be nil")
	}

	collection, err := loadCollection(cfg.Data.CollectionFile)
	if err != nil {
		return nil, err
	}

	invertedIndex := index.New()
	if err := persistence.LoadJSON(cfg.Data.IndexFile, invertedIndex); err != nil {
		if os.IsNotExist(err) {
			log.Printf("Inverted index %s not found, starting empty (run a rebuild to create it)", cfg.Data.IndexFile)
		} else {
			return nil, apperrors.NewArtifactLoadError(cfg.Data.IndexFile, err)
		}
	}

	totalDocs, stems := invertedIndex.Stats()
	log.Printf("Engine ready: %d documents in collection, index covers %d documents with %d distinct stems",
		collection.Len(), totalDocs, stems)

	return &Engine{
		cfg:           cfg,
		collection:    collection,
		invertedIndex: invertedIndex,
		jobManager:    jobManager,
	}, nil
}

func loadCollection(path string) (*store.CollectionStore, error) {
	var collection model.DocumentCollection
	if err := persistence.LoadJSON(path, &collection); err != nil {
		return nil, apperrors.NewArtifactLoadError(path, err)
	}
	if collection.Documents == nil {
		return nil, apperrors.NewSchemaViolationError(path, "documents")
	}
	return store.NewCollectionStore(&collection), nil
}

// RebuildIndex runs a full synchronous build over the collection and persists
// the resulting artifact. The live index is only swapped after the build and
// the save both succeed, so a failed rebuild leaves the previous index
// serving.
func (e *Engine) RebuildIndex() (services.IndexStats, error) {
	return e.rebuild(context.Background(), nil)
}

func (e *Engine) rebuild(ctx context.Context, progress func(current, total int)) (services.IndexStats, error) {
	// Re-read the collection so a rebuild picks up documents added since
	// startup.
	collection, err := loadCollection(e.cfg.Data.CollectionFile)
	if err != nil {
		return services.IndexStats{}, err
	}

	fresh := index.New()
	buildService, err := builder.NewService(fresh, collection, e.cfg.Indexer.Workers)
	if err != nil {
		return services.IndexStats{}, fmt.Errorf("failed to create builder: %w", err)
	}
	if err := buildService.Build(ctx, progress); err != nil {
		return services.IndexStats{}, fmt.Errorf("index build failed: %w", err)
	}

	if err := persistence.SaveJSON(e.cfg.Data.IndexFile, fresh); err != nil {
		return services.IndexStats{}, fmt.Errorf("failed to persist inverted index: %w", err)
	}

	e.mu.Lock()
	e.invertedIndex = fresh
	e.collection.Replace(&model.DocumentCollection{Documents: collection.Documents()})
	e.mu.Unlock()

	totalDocs, stems := fresh.Stats()
	log.Printf("Rebuild complete: %d documents, %d distinct stems, saved to %s",
		totalDocs, stems, e.cfg.Data.IndexFile)

	return services.IndexStats{
		TotalDocuments: totalDocs,
		DistinctStems:  stems,
		CollectionSize: collection.Len(),
	}, nil
}

// VerifyWord checks a single word against the index and reports coverage.
func (e *Engine) VerifyWord(word string, expectedDocIndex *int) (services.VerificationReport, error) {
	if strings.TrimSpace(word) == "" {
		return services.VerificationReport{}, apperrors.NewValidationError("word", "cannot be empty")
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	verifyService, err := verifier.NewService(e.invertedIndex, e.collection)
	if err != nil {
		return services.VerificationReport{}, fmt.Errorf("failed to create verifier: %w", err)
	}
	return verifyService.VerifyWord(word, expectedDocIndex), nil
}

// Search finds documents containing every stem of the query.
func (e *Engine) Search(query string) (services.SearchResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	searchService, err := search.NewService(e.invertedIndex, e.collection)
	if err != nil {
		return services.SearchResult{}, fmt.Errorf("failed to create search service: %w", err)
	}
	return searchService.Search(query), nil
}

// Stats returns current index and collection statistics.
func (e *Engine) Stats() services.IndexStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	totalDocs, stems := e.invertedIndex.Stats()
	return services.IndexStats{
		TotalDocuments: totalDocs,
		DistinctStems:  stems,
		CollectionSize: e.collection.Len(),
	}
}

// GetJob returns the status of a background job.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}
