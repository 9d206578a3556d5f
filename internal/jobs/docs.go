// Package jobs provides scheduled background tasks for the print store.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the storefront.
//
// # Available Jobs
//
// 1. RetentionJob - Runs on a configurable schedule (daily by default) to
// purge delivered and cancelled orders, plus closed price requests, older
// than the retention window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, "0 3 * * *", 90, logger)
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
// The retention sweep logs failures and retries on the next scheduled run;
// a failed sweep never blocks the storefront.
package jobs
