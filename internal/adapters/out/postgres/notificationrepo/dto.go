// Package notificationrepo persists the notification outbox. Rows are written
// in the same transaction as the state change that warrants them and drained
// to the broker by the relay job.
package notificationrepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting outbox
// notifications.
type NotificationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Phone      string
	TemplateID string
	Params     string
	Status     string `gorm:"index"`
	Attempts   int
	CreatedAt  time.Time
	SentAt     *time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification aggregate to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		Phone:      aggregate.Phone().String(),
		TemplateID: aggregate.TemplateID(),
		Params:     aggregate.Params(),
		Status:     aggregate.Status().String(),
		Attempts:   aggregate.Attempts(),
		CreatedAt:  aggregate.CreatedAt(),
		SentAt:     aggregate.SentAt(),
	}
}

// toDomain converts a database DTO to a notification aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	status, err := notification.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, orderID, phone, dto.TemplateID, dto.Params, status, dto.Attempts, dto.CreatedAt, dto.SentAt,
	)
}
