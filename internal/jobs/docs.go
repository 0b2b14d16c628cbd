// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic maintenance of the delivery store.
//
// # Available Jobs
//
// 1. DeliverySweepJob - archives Finished deliveries (default every second)
// 2. ArchiveRetentionJob - removes Archived deliveries older than the retention window (default every 5 seconds)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	sweepJob, _ := jobs.NewDeliverySweepJob(sweepHandler, time.Second, logger)
//	retentionJob, _ := jobs.NewArchiveRetentionJob(reapHandler, 5*time.Second, logger)
//	jobManager := jobs.NewJobManager(sweepJob, retentionJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Jobs run on cron.Every schedules wrapped in SkipIfStillRunning, so one cycle of
// a job never overlaps the next. cron has one-second resolution; shorter intervals
// are rejected at construction.
//
// # Error Handling
//
// - Sweep job ignores the expected empty-store result
// - Retention job logs all errors as they indicate system issues
// - StopAll waits for in-progress cycles, so callers may tear down the store afterwards
package jobs
