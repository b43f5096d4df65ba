package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundryops/internal/core/domain/model/notification"
	"laundryops/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const (
	// relayBatchSize bounds how many outbox rows one relay pass drains.
	relayBatchSize = 50

	// relayMaxAttempts is how many publish attempts a notification gets
	// before the relay marks it failed for good.
	relayMaxAttempts = 5

	// relayMessageDelay is the fixed pause between consecutive publishes so
	// the messaging collaborator is never flooded.
	relayMessageDelay = 250 * time.Millisecond
)

// NotificationUoW manages the transaction around one outbox row update.
type NotificationUoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	NotificationRepository() ports.NotificationRepository
}

// NotificationUoWFactory creates new notification unit of work instances.
type NotificationUoWFactory interface {
	Create() NotificationUoW
}

// NotificationRelayJob drains the notification outbox to the broker. Runs
// every five seconds; each pass publishes pending rows oldest first and marks
// them sent once the broker confirms.
type NotificationRelayJob struct {
	uowFactory NotificationUoWFactory
	publisher  ports.NotificationPublisher
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewNotificationRelayJob creates a new job for relaying outbox notifications.
func NewNotificationRelayJob(
	uowFactory NotificationUoWFactory,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		uowFactory: uowFactory,
		publisher:  publisher,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_relay_job"),
	}
}

// Start begins the notification relay job to run every five seconds.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.relayPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification relay pass failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every 5 seconds)")
	return nil
}

// Stop stops the notification relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}

// relayPending publishes one batch of pending outbox rows. A publish failure
// only burns an attempt on its own row; the pass carries on with the rest.
func (j *NotificationRelayJob) relayPending(ctx context.Context) error {
	pending, err := j.uowFactory.Create().NotificationRepository().GetAllPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for i, row := range pending {
		if i > 0 {
			time.Sleep(relayMessageDelay)
		}

		publishErr := j.publisher.Publish(ctx, row)
		if markErr := j.recordOutcome(ctx, row, publishErr); markErr != nil {
			j.logger.ErrorContext(ctx, "Failed to persist notification outcome",
				"notification_id", row.ID().String(),
				"error", markErr,
			)
		}

		if publishErr != nil {
			j.logger.WarnContext(ctx, "Notification publish failed",
				"notification_id", row.ID().String(),
				"attempts", row.Attempts(),
				"error", publishErr,
			)
		}
	}

	return nil
}

// recordOutcome persists the publish result in its own short transaction.
func (j *NotificationRelayJob) recordOutcome(
	ctx context.Context,
	row *notification.Notification,
	publishErr error,
) error {
	var markErr error
	if publishErr == nil {
		markErr = row.MarkSent(time.Now().UTC())
	} else {
		markErr = row.MarkAttemptFailed(relayMaxAttempts)
	}
	if markErr != nil {
		return markErr
	}

	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.NotificationRepository().Update(ctx, row); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	return uow.Commit(ctx)
}
