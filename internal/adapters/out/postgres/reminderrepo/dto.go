// Package reminderrepo persists collection reminders. Each order carries at
// most one reminder row that advances through the escalation tiers in place.
package reminderrepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/reminder"

	"github.com/google/uuid"
)

// ReminderDTO represents the database structure for persisting reminders.
type ReminderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Tier          string
	Status        string
	CustomerName  string
	CustomerPhone string
	CreatedAt     time.Time
	SentAt        *time.Time
}

// TableName specifies the database table name for reminder entities.
func (ReminderDTO) TableName() string {
	return "collection_reminders"
}

// fromDomain converts a reminder aggregate to its database representation.
func fromDomain(aggregate *reminder.Reminder) ReminderDTO {
	return ReminderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		Tier:          aggregate.Tier().String(),
		Status:        aggregate.Status().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone().String(),
		CreatedAt:     aggregate.CreatedAt(),
		SentAt:        aggregate.SentAt(),
	}
}

// toDomain converts a database DTO to a reminder aggregate.
func toDomain(dto ReminderDTO) (*reminder.Reminder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	tier, err := reminder.TierFromString(dto.Tier)
	if err != nil {
		return nil, err
	}

	status, err := reminder.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	return reminder.RestoreReminder(
		id, orderID, tier, status, dto.CustomerName, phone, dto.CreatedAt, dto.SentAt,
	)
}
