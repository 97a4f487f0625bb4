// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order flow.
//
// # Available Jobs
//
// 1. StalledOrderJob - Runs every minute to report confirmed orders that
// were never handed to a courier
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stalledOrdersHandler, time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stalled order job is observational only: it logs what it finds and
// never mutates orders, since courier assignment is deliberately best-effort
// without retries. Failed job starts will stop any already running jobs.
package jobs
