package engine

import (
	"context"
	"fmt"

	"github.com/vkovalenko/go-doc-indexer/model"
)

// RebuildIndexAsync starts a background rebuild through the job manager and
// returns its job ID immediately. Progress is reported per indexed document
// and can be polled via GetJob.
func (e *Engine) RebuildIndexAsync() (string, error) {
	jobID := e.jobManager.CreateJob(model.JobTypeRebuildIndex, map[string]string{
		"index_file": e.cfg.Data.IndexFile,
	})

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		stats, err := e.rebuild(ctx, func(current, total int) {
			e.jobManager.UpdateJobProgress(job.ID, current, total, "indexing documents")
		})
		if err != nil {
			return err
		}
		e.jobManager.UpdateJobProgress(job.ID, stats.CollectionSize, stats.CollectionSize,
			fmt.Sprintf("indexed %d documents (%d distinct stems)", stats.TotalDocuments, stats.DistinctStems))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to start rebuild job: %w", err)
	}
	return jobID, nil
}
