package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundryops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReminderSweepJob manages the daily collection reminder sweep. Runs every
// morning to escalate reminders for orders left on the collection shelf.
type ReminderSweepJob struct {
	handler commands.SendDueRemindersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReminderSweepJob creates a new job for the reminder sweep.
// Uses SendDueRemindersCommandHandler to evaluate the shelf once a day.
func NewReminderSweepJob(handler commands.SendDueRemindersCommandHandler, logger *slog.Logger) *ReminderSweepJob {
	return &ReminderSweepJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "reminder_sweep_job"),
	}
}

// Start begins the reminder sweep job to run daily at 08:00.
func (j *ReminderSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 8 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewSendDueRemindersCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Reminder sweep command invalid", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reminder sweep failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Reminder sweep finished",
			"scanned", result.Scanned,
			"sent", result.Sent,
			"skipped", result.Skipped,
			"failed", result.Failed,
		)
		for _, failure := range result.Failures {
			j.logger.WarnContext(ctx, "Reminder sweep order failed",
				"order_id", failure.OrderID.String(),
				"error", failure.Reason,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reminder sweep job started (running daily at 08:00)")
	return nil
}

// Stop stops the reminder sweep job.
func (j *ReminderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reminder sweep job stopped")
}
