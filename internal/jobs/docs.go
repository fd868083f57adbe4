// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. PendingOrdersJob - Runs every minute to report how many orders are still awaiting payment
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(pendingCountHandler, logger)
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
// The pending orders job uses the cron expression "0 * * * * *" which means
// it runs at the start of every minute. Payment and shipping happen in other
// services, so the job observes the backlog rather than acting on it.
//
// # Error Handling
//
// - The pending orders job logs every failure; a failing count means the store is unreachable
// - Failed job starts will stop any already running jobs
package jobs
