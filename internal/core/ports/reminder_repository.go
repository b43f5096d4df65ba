package ports

import (
	"context"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/reminder"
)

// ReminderRepository defines the persistence contract for collection
// reminders. Each order carries at most one reminder row that advances
// through the escalation tiers in place.
type ReminderRepository interface {
	// Add persists a new reminder to storage.
	Add(ctx context.Context, aggregate *reminder.Reminder) error

	// Update persists changes to an existing reminder.
	Update(ctx context.Context, aggregate *reminder.Reminder) error

	// GetByOrderID retrieves the reminder attached to an order.
	// Returns an ObjectNotFound error when the order has no reminder yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*reminder.Reminder, error)
}
