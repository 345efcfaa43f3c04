// Package jobs provides scheduled background tasks for the courier system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the courier service.
//
// # Available Jobs
//
// 1. SLASweepJob - Runs every minute to evaluate delivery deadlines and alert on breaches
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(slaReportHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses the cron expression "0 * * * * *", running at the top of
// every minute. Deadlines are minute-granular, so sweeping more often only
// burns database reads.
//
// # Error Handling
//
// The sweep is read-only and alert-only: a breach is logged, never acted on.
// Order state changes exclusively through scans and explicit commands.
package jobs
