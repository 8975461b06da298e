// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PurgeCancelledJob - Periodically removes cancelled delivery records
// older than the configured retention window. Delivered records are kept
// forever; only cancellations age out.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, schedule, retention, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The purge job schedule is a standard 5-field cron expression supplied by
// configuration (PURGE_SCHEDULE), defaulting to hourly.
//
// # Error Handling
//
// Purge failures are logged and retried on the next tick; a failed run never
// stops the scheduler.
package jobs
