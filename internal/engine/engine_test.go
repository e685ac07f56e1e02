package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkovalenko/go-doc-indexer/config"
	apperrors "github.com/vkovalenko/go-doc-indexer/internal/errors"
	"github.com/vkovalenko/go-doc-indexer/internal/jobs"
	"github.com/vkovalenko/go-doc-indexer/model"
)

func writeCollection(t *testing.T, path string, collection model.DocumentCollection) {
	t.Helper()
	data, err := json.Marshal(collection)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))
}

func testCollection() model.DocumentCollection {
	return model.DocumentCollection{
		Documents: []model.DocumentRecord{
			{
				FileName: "protocol_1.txt",
				FilePath: "/data/protocol_1.txt",
				Paragraphs: []model.Paragraph{
					{Text: "Протокол засідання підписав Бабич."},
					{Text: "Бабича обрано головою комісії."},
				},
			},
			{
				FileName: "protocol_2.txt",
				FilePath: "/data/protocol_2.txt",
				Paragraphs: []model.Paragraph{
					{Text: "Засідання відбулося у Донецьку."},
				},
			},
		},
	}
}

func newTestEngine(t *testing.T) (*Engine, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Data: config.DataConfig{
			CollectionFile: filepath.Join(dir, "documents_index.json"),
			IndexFile:      filepath.Join(dir, "inverted_index.json"),
		},
		Indexer: config.IndexerConfig{Workers: 2},
	}
	writeCollection(t, cfg.Data.CollectionFile, testCollection())

	jobManager := jobs.NewManager(1)
	t.Cleanup(jobManager.Stop)

	eng, err := NewEngine(cfg, jobManager)
	require.NoError(t, err)
	return eng, cfg
}

func TestNewEngineMissingCollection(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Data: config.DataConfig{
			CollectionFile: filepath.Join(dir, "missing.json"),
			IndexFile:      filepath.Join(dir, "inverted_index.json"),
		},
		Indexer: config.IndexerConfig{Workers: 1},
	}
	jobManager := jobs.NewManager(1)
	defer jobManager.Stop()

	_, err := NewEngine(cfg, jobManager)
	assert.ErrorIs(t, err, apperrors.ErrArtifactNotFound)
}

func TestNewEngineCollectionMissingDocumentsField(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Data: config.DataConfig{
			CollectionFile: filepath.Join(dir, "documents_index.json"),
			IndexFile:      filepath.Join(dir, "inverted_index.json"),
		},
		Indexer: config.IndexerConfig{Workers: 1},
	}
	require.NoError(t, os.WriteFile(cfg.Data.CollectionFile, []byte(`{}`), 0600))
	jobManager := jobs.NewManager(1)
	defer jobManager.Stop()

	_, err := NewEngine(cfg, jobManager)
	assert.ErrorIs(t, err, apperrors.ErrSchemaViolation)
}

func TestNewEngineStartsEmptyWithoutIndexArtifact(t *testing.T) {
	eng, _ := newTestEngine(t)

	stats := eng.Stats()
	assert.Equal(t, 0, stats.TotalDocuments)
	assert.Equal(t, 0, stats.DistinctStems)
	assert.Equal(t, 2, stats.CollectionSize)
}

func TestRebuildIndexPersistsArtifact(t *testing.T) {
	eng, cfg := newTestEngine(t)

	stats, err := eng.RebuildIndex()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Equal(t, 2, stats.CollectionSize)
	assert.True(t, stats.DistinctStems > 0)

	data, err := os.ReadFile(cfg.Data.IndexFile)
	require.NoError(t, err)
	var artifact map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &artifact))
	assert.Contains(t, artifact, "word_to_docs")
	assert.Contains(t, artifact, "total_documents")
}

func TestRebuildSurvivesRestart(t *testing.T) {
	eng, cfg := newTestEngine(t)
	_, err := eng.RebuildIndex()
	require.NoError(t, err)

	jobManager := jobs.NewManager(1)
	defer jobManager.Stop()
	reloaded, err := NewEngine(cfg, jobManager)
	require.NoError(t, err)

	stats := reloaded.Stats()
	assert.Equal(t, 2, stats.TotalDocuments)
	assert.True(t, stats.DistinctStems > 0)
}

func TestVerifyWord(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.RebuildIndex()
	require.NoError(t, err)

	expected := 0
	report, err := eng.VerifyWord("Бабича", &expected)
	require.NoError(t, err)
	assert.True(t, report.Found)
	assert.Equal(t, "бабич", report.Stem)
	assert.True(t, report.ExpectedDocFound)
	assert.Equal(t, []int{0, 1}, report.ExpectedDocParagraphs)
	assert.False(t, report.Coverage.Incomplete)
}

func TestVerifyWordEmptyInput(t *testing.T) {
	eng, _ := newTestEngine(t)

	_, err := eng.VerifyWord("   ", nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestSearch(t *testing.T) {
	eng, _ := newTestEngine(t)
	_, err := eng.RebuildIndex()
	require.NoError(t, err)

	result, err := eng.Search("засідання")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	result, err = eng.Search("засідання Донецьку")
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, 1, result.Hits[0].DocIndex)
	assert.Equal(t, "protocol_2.txt", result.Hits[0].FileName)
}

func TestRebuildIndexAsync(t *testing.T) {
	eng, _ := newTestEngine(t)

	jobID, err := eng.RebuildIndexAsync()
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	deadline := time.Now().Add(3 * time.Second)
	for {
		job, err := eng.GetJob(jobID)
		require.NoError(t, err)
		if job.Status == model.JobStatusCompleted {
			require.NotNil(t, job.Progress)
			assert.Equal(t, job.Progress.Total, job.Progress.Current)
			break
		}
		require.NotEqual(t, model.JobStatusFailed, job.Status, "rebuild job failed: %s", job.Error)
		require.True(t, time.Now().Before(deadline), "rebuild job did not complete in time")
		time.Sleep(5 * time.Millisecond)
	}

	stats := eng.Stats()
	assert.Equal(t, 2, stats.TotalDocuments)
}
