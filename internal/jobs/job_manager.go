package jobs

import (
	"fmt"
)

// Job is a background task with an explicit lifecycle.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	sweepJob     *DeliverySweepJob
	retentionJob *ArchiveRetentionJob
}

// NewJobManager creates a job manager over the sweep and retention jobs.
func NewJobManager(sweepJob *DeliverySweepJob, retentionJob *ArchiveRetentionJob) *JobManager {
	return &JobManager{
		sweepJob:     sweepJob,
		retentionJob: retentionJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery sweep job: %w", err)
	}

	if err := jm.retentionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sweepJob.Stop()
		return fmt.Errorf("failed to start archive retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running cycles to finish.
func (jm *JobManager) StopAll() {
	jm.retentionJob.Stop()
	jm.sweepJob.Stop()
}

var (
	_ Job = (*DeliverySweepJob)(nil)
	_ Job = (*ArchiveRetentionJob)(nil)
)
