package ports

import (
	"context"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the notification
// outbox. Handlers append rows in the same transaction as the state change
// that warrants them; the relay job drains pending rows to the broker.
type NotificationRepository interface {
	// Add persists a new outbox notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing outbox notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllPending retrieves up to limit pending notifications in creation
	// order, oldest first.
	GetAllPending(ctx context.Context, limit int) ([]*notification.Notification, error)
}
