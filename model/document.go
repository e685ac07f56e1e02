// Package model defines the wire types shared between the document
// collection artifact, the index builder, and the API layer.
package model

// Paragraph is the indexable unit of granularity. Only Text participates in
// indexing; any other fields of the ingestion schema are opaque here.
type Paragraph struct {
	Text string `json:"text"`
}

// DocumentRecord is one parsed document of the collection. FileName,
// FilePath and WordCount are diagnostics metadata produced by the ingestion
// component; indexing logic reads only Paragraphs.
type DocumentRecord struct {
	FileName   string      `json:"file_name"`
	FilePath   string      `json:"file_path"`
	WordCount  int         `json:"word_count"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// DocumentCollection is the read-only input artifact of a build: an ordered
// list of documents whose position is their stable document index.
type DocumentCollection struct {
	Documents []DocumentRecord `json:"documents"`
}

// Len returns the number of documents in the collection.
func (c *DocumentCollection) Len() int {
	return len(c.Documents)
}
