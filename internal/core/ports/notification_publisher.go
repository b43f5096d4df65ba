package ports

import (
	"context"

	"laundryops/internal/core/domain/model/notification"
)

// NotificationPublisher sends customer notifications to the external messaging
// collaborator. Delivery is at-least-once: the relay may publish the same
// notification twice after a crash, and consumers deduplicate on its id.
type NotificationPublisher interface {
	// Publish sends one notification request to the broker. A nil error
	// means the broker confirmed receipt.
	Publish(ctx context.Context, aggregate *notification.Notification) error
}
