package verifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkovalenko/go-doc-indexer/index"
	"github.com/vkovalenko/go-doc-indexer/internal/builder"
	"github.com/vkovalenko/go-doc-indexer/model"
	"github.com/vkovalenko/go-doc-indexer/store"
)

func buildFixture(t *testing.T, docs []model.DocumentRecord) (*index.InvertedIndex, *store.CollectionStore) {
	t.Helper()
	collection := store.NewCollectionStore(&model.DocumentCollection{Documents: docs})
	ii := index.New()
	svc, err := builder.NewService(ii, collection, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Build(context.Background(), nil))
	return ii, collection
}

func TestVerifyWordFound(t *testing.T) {
	ii, collection := buildFixture(t, []model.DocumentRecord{
		{FileName: "a.docx", Paragraphs: []model.Paragraph{{Text: "лейтенант БАБИЧ"}}},
		{FileName: "b.docx", Paragraphs: []model.Paragraph{{Text: "село Веселе"}, {Text: "знову БАБИЧА згадано"}}},
	})
	svc, err := NewService(ii, collection)
	require.NoError(t, err)

	expected := 1
	report := svc.VerifyWord("БАБИЧА", &expected)

	assert.Equal(t, "БАБИЧА", report.Word)
	assert.Equal(t, "бабич", report.Stem)
	assert.True(t, report.Found)
	require.Len(t, report.Postings, 2)
	assert.True(t, report.ExpectedDocFound)
	assert.Equal(t, []int{1}, report.ExpectedDocParagraphs)
	assert.False(t, report.Coverage.Incomplete)
	assert.False(t, report.Coverage.StaleTotal)
}

func TestVerifyWordNotFound(t *testing.T) {
	ii, collection := buildFixture(t, []model.DocumentRecord{
		{Paragraphs: []model.Paragraph{{Text: "село Веселе"}}},
	})
	svc, err := NewService(ii, collection)
	require.NoError(t, err)

	report := svc.VerifyWord("вертоліт", nil)
	assert.False(t, report.Found)
	assert.Empty(t, report.Postings)
	assert.False(t, report.ExpectedDocFound)
}

func TestVerifyWordExpectedDocMissing(t *testing.T) {
	ii, collection := buildFixture(t, []model.DocumentRecord{
		{Paragraphs: []model.Paragraph{{Text: "БАБИЧ тут"}}},
		{Paragraphs: []model.Paragraph{{Text: "а тут немає"}}},
	})
	svc, err := NewService(ii, collection)
	require.NoError(t, err)

	expected := 1
	report := svc.VerifyWord("бабич", &expected)
	assert.True(t, report.Found)
	assert.False(t, report.ExpectedDocFound)
	assert.Nil(t, report.ExpectedDocParagraphs)
}

// A trailing document without a single indexable token looks exactly like a
// truncated build to the coverage heuristic. The verifier must report it,
// not suppress it.
func TestCoverageGapFromEmptyTrailingDocument(t *testing.T) {
	ii, collection := buildFixture(t, []model.DocumentRecord{
		{FileName: "a.docx", Paragraphs: []model.Paragraph{{Text: "перший документ села"}}},
		{FileName: "b.docx", Paragraphs: []model.Paragraph{{Text: "другий документ"}}},
		{FileName: "c.docx", Paragraphs: []model.Paragraph{{Text: "!!! ---"}}},
	})
	svc, err := NewService(ii, collection)
	require.NoError(t, err)

	coverage := svc.CheckCoverage()
	assert.Equal(t, 3, coverage.TotalDocuments, "empty document still counts toward the build total")
	assert.Equal(t, 3, coverage.CollectionSize)
	assert.Equal(t, 1, coverage.MaxDocIndex)
	assert.True(t, coverage.Incomplete)
	assert.Equal(t, 1, coverage.UnindexedCount)
	require.Len(t, coverage.UnindexedDocuments, 1)
	assert.Equal(t, 2, coverage.UnindexedDocuments[0].DocIndex)
	assert.Equal(t, "c.docx", coverage.UnindexedDocuments[0].FileName)
	assert.False(t, coverage.StaleTotal)
}

// Documents appended to the collection after the index snapshot was taken are
// invisible to search. This is the bug class the verifier exists to catch.
func TestCoverageStaleIndexAfterCollectionGrowth(t *testing.T) {
	ii, collection := buildFixture(t, []model.DocumentRecord{
		{FileName: "a.docx", Paragraphs: []model.Paragraph{{Text: "старий документ"}}},
	})
	collection.Replace(&model.DocumentCollection{Documents: []model.DocumentRecord{
		{FileName: "a.docx", Paragraphs: []model.Paragraph{{Text: "старий документ"}}},
		{FileName: "новий_2025.docx", Paragraphs: []model.Paragraph{{Text: "доданий пізніше БАБИЧ"}}},
	}})

	svc, err := NewService(ii, collection)
	require.NoError(t, err)

	report := svc.VerifyWord("БАБИЧ", nil)
	assert.False(t, report.Found)
	assert.True(t, report.Coverage.Incomplete)
	assert.True(t, report.Coverage.StaleTotal)
	assert.Equal(t, 1, report.Coverage.UnindexedCount)
	assert.Equal(t, "новий_2025.docx", report.Coverage.UnindexedDocuments[0].FileName)
}

func TestCoverageEmptyIndex(t *testing.T) {
	collection := store.NewCollectionStore(&model.DocumentCollection{Documents: []model.DocumentRecord{
		{FileName: "a.docx"},
		{FileName: "b.docx"},
	}})
	svc, err := NewService(index.New(), collection)
	require.NoError(t, err)

	coverage := svc.CheckCoverage()
	assert.Equal(t, -1, coverage.MaxDocIndex)
	assert.True(t, coverage.Incomplete)
	assert.Equal(t, 2, coverage.UnindexedCount)
}
