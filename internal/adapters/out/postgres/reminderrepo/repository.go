package reminderrepo

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/reminder"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReminderRepository implements ports.ReminderRepository using GORM.
type GormReminderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReminderRepository creates a new GORM reminder repository.
func NewGormReminderRepository(db *gorm.DB, tracker aggregateTracker) *GormReminderRepository {
	return &GormReminderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reminder to the database.
func (r *GormReminderRepository) Add(ctx context.Context, aggregate *reminder.Reminder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing reminder to the database.
func (r *GormReminderRepository) Update(ctx context.Context, aggregate *reminder.Reminder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ReminderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reminderID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderID retrieves the reminder attached to an order.
func (r *GormReminderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*reminder.Reminder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ReminderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
