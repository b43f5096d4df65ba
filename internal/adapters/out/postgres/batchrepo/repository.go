package batchrepo

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/batch"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProcessingBatchRepository implements ports.ProcessingBatchRepository
// using GORM.
type GormProcessingBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProcessingBatchRepository creates a new GORM processing batch
// repository.
func NewGormProcessingBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormProcessingBatchRepository {
	return &GormProcessingBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new processing batch with its member links to the database.
func (r *GormProcessingBatchRepository) Add(ctx context.Context, aggregate *batch.ProcessingBatch) error {
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

// Update saves an existing processing batch to the database. The member set
// is fixed after creation; only the batch row itself changes.
func (r *GormProcessingBatchRepository) Update(ctx context.Context, aggregate *batch.ProcessingBatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProcessingBatchDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"started_at":   dto.StartedAt,
			"completed_at": dto.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("batchID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a processing batch with its member links by ID.
func (r *GormProcessingBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.ProcessingBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProcessingBatchDTO
	err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Staff").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batchID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
