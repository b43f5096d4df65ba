// Package jobs provides scheduled background tasks for the laundry operations system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the order lifecycle depends on.
//
// # Available Jobs
//
// 1. TransferDispatchJob - Runs every minute to batch pending-routing orders into
// transfer runs and claim drivers for them
// 2. ReminderSweepJob - Runs daily to create and escalate collection reminders for
// orders left on the collection shelf
// 3. NotificationRelayJob - Runs every five seconds to drain the notification
// outbox to the message broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchHandler, remindersHandler, uowFactory, publisher, logger)
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
// - Dispatch job ignores the empty-sweep business error (nothing pending)
// - Sweep job logs per-order failures from the result summary without aborting
// - Relay job burns an attempt per failed publish and gives up after the cap
// - Failed job starts will stop any already running jobs
package jobs
