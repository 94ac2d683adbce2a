// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order workflow.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Runs every second to drain the notification
// outbox and publish pending messages to the customer-notification queue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outbox, publisher, logger)
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
// The relay uses the cron expression "* * * * * *" which means it runs every
// second. The tight cadence keeps notification latency low without coupling
// command handlers to the broker.
//
// # Error Handling
//
// - A fetch failure aborts the tick; the next tick retries the whole batch
// - A publish failure skips that message and leaves it pending
// - A mark-sent failure means the message is re-published later; consumers
//   must tolerate duplicate notifications
package jobs
