// Package jobs provides scheduled background tasks for the item ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Runs every second to publish pending outbox notifications to observers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchNotificationsHandler, logger)
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
// The relay job uses the cron expression "* * * * * *" which means it runs
// every second. Each tick drains at most one batch of the outbox, so a burst
// of mutations is relayed over the following ticks.
//
// # Error Handling
//
// - The relay job treats an empty outbox as the idle state and does not log it
// - Any other error is logged and the next tick retries the batch
// - Failed job starts will stop any already running jobs
package jobs
