package services

import (
	"github.com/vkovalenko/go-doc-indexer/index"
	"github.com/vkovalenko/go-doc-indexer/model"
)

// CoverageReport describes how much of the document collection the index
// actually covers. A MaxDocIndex below CollectionSize-1 means documents past
// it were never indexed — the signature of a truncated or aborted build.
// Note that a trailing document with no indexable tokens produces the same
// signal; the report carries the unindexed document names so a reader can
// tell the two apart.
type CoverageReport struct {
	CollectionSize     int                 `json:"collection_size"`
	TotalDocuments     int                 `json:"total_documents"` // collection size recorded in the index at build time
	MaxDocIndex        int                 `json:"max_doc_index"`   // -1 when the index holds no postings
	UnindexedCount     int                 `json:"unindexed_count"`
	Incomplete         bool                `json:"incomplete"`
	StaleTotal         bool                `json:"stale_total"` // recorded total does not match the live collection
	UnindexedDocuments []UnindexedDocument `json:"unindexed_documents,omitempty"`
}

// UnindexedDocument identifies a document the coverage check found missing
// from the index.
type UnindexedDocument struct {
	DocIndex int    `json:"doc_index"`
	FileName string `json:"file_name"`
}

// VerificationReport is the structured outcome of verifying one word against
// the index. Not-found words and coverage gaps are findings, not errors.
type VerificationReport struct {
	Word                  string             `json:"word"`
	Stem                  string             `json:"stem"`
	Found                 bool               `json:"found"`
	Postings              []index.DocPosting `json:"postings,omitempty"`
	ExpectedDocIndex      *int               `json:"expected_doc_index,omitempty"`
	ExpectedDocFound      bool               `json:"expected_doc_found"`
	ExpectedDocParagraphs []int              `json:"expected_doc_paragraphs,omitempty"`
	Coverage              CoverageReport     `json:"coverage"`
}

// SearchHit is one document matching every stem of a search query.
type SearchHit struct {
	DocIndex           int    `json:"doc_index"`
	FileName           string `json:"file_name"`
	FilePath           string `json:"file_path"`
	ParagraphPositions []int  `json:"paragraph_positions"`
}

// SearchResult is the response to a stem search.
type SearchResult struct {
	Hits  []SearchHit `json:"hits"`
	Count int         `json:"count"`
	Query string      `json:"query"`
	Stems []string    `json:"stems"`
	Took  int64       `json:"took"` // milliseconds
}

// IndexStats summarizes the index and the collection it was built from.
type IndexStats struct {
	TotalDocuments int `json:"total_documents"`
	DistinctStems  int `json:"distinct_stems"`
	CollectionSize int `json:"collection_size"`
}

// IndexManager is the engine-facing contract the API layer depends on.
type IndexManager interface {
	// RebuildIndex runs a full synchronous build over the collection and
	// persists the artifact.
	RebuildIndex() (IndexStats, error)

	// RebuildIndexAsync starts a background rebuild and returns its job ID.
	RebuildIndexAsync() (string, error)

	// VerifyWord checks a word (and optionally an expected document index)
	// against the index and reports coverage.
	VerifyWord(word string, expectedDocIndex *int) (VerificationReport, error)

	// Search finds documents containing every stem of the query.
	Search(query string) (SearchResult, error)

	// Stats returns current index statistics.
	Stats() IndexStats

	// GetJob returns the status of a background job.
	GetJob(jobID string) (*model.Job, error)
}
