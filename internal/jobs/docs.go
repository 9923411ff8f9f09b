// Package jobs provides scheduled background tasks for the shipping engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for automatic label generation.
//
// # Available Jobs
//
// 1. ShippingScheduleJob - Runs hourly to dispatch shipping batches for
// organizations whose configured check hour matches the current hour in the
// reference timezone.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required stores and handlers
//	jobManager := jobs.NewJobManager(orgStore, orderStore, batchHandler, location, logger)
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
// The schedule job uses the cron expression "0 0 * * * *": it fires at the
// top of every hour and decides per organization whether a batch is due. The
// due-hour comparison happens in one fixed reference timezone, so an
// organization's check hour means the same wall-clock time regardless of
// where the engine runs.
//
// # Error Handling
//
// - A failure while listing organizations skips the whole tick and is retried
//   next hour.
// - Per-organization failures are logged and never block other organizations.
package jobs
