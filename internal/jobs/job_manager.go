package jobs

import (
	"fmt"
	"log/slog"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	transferDispatchJob  *TransferDispatchJob
	reminderSweepJob     *ReminderSweepJob
	notificationRelayJob *NotificationRelayJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchTransfersCommandHandler,
	remindersHandler commands.SendDueRemindersCommandHandler,
	notificationUoWFactory NotificationUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		transferDispatchJob:  NewTransferDispatchJob(dispatchHandler, logger),
		reminderSweepJob:     NewReminderSweepJob(remindersHandler, logger),
		notificationRelayJob: NewNotificationRelayJob(notificationUoWFactory, publisher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.transferDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start transfer dispatch job: %w", err)
	}

	if err := jm.reminderSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.transferDispatchJob.Stop()
		return fmt.Errorf("failed to start reminder sweep job: %w", err)
	}

	if err := jm.notificationRelayJob.Start(); err != nil {
		jm.reminderSweepJob.Stop()
		jm.transferDispatchJob.Stop()
		return fmt.Errorf("failed to start notification relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRelayJob.Stop()
	jm.reminderSweepJob.Stop()
	jm.transferDispatchJob.Stop()
}
