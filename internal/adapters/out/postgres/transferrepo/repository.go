package transferrepo

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/transfer"
	"laundryops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransferBatchRepository implements ports.TransferBatchRepository using
// GORM.
type GormTransferBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransferBatchRepository creates a new GORM transfer batch repository.
func NewGormTransferBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormTransferBatchRepository {
	return &GormTransferBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transfer batch with its member links to the database.
func (r *GormTransferBatchRepository) Add(ctx context.Context, aggregate *transfer.TransferBatch) error {
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

// Update saves an existing transfer batch to the database. The member set is
// fixed after creation; only the batch row itself changes.
func (r *GormTransferBatchRepository) Update(ctx context.Context, aggregate *transfer.TransferBatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TransferBatchDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"driver_id":     dto.DriverID,
			"status":        dto.Status,
			"dispatched_at": dto.DispatchedAt,
			"arrived_at":    dto.ArrivedAt,
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

// Get retrieves a transfer batch with its member links by ID.
func (r *GormTransferBatchRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.TransferBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransferBatchDTO
	err := r.db.WithContext(ctx).
		Preload("Members").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batchID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUndispatched retrieves pending transfer batches that have no driver
// yet, oldest first.
func (r *GormTransferBatchRepository) GetAllUndispatched(ctx context.Context) ([]*transfer.TransferBatch, error) {
	var dtos []TransferBatchDTO
	err := r.db.WithContext(ctx).
		Preload("Members").
		Where("status = ? AND driver_id IS NULL", transfer.Pending.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	batches := make([]*transfer.TransferBatch, 0, len(dtos))
	for _, dto := range dtos {
		restored, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		batches = append(batches, restored)
	}

	return batches, nil
}

// ActiveBatchCounts returns the number of pending or in-transit batches per
// driver id. Drivers without active batches are absent from the map.
func (r *GormTransferBatchRepository) ActiveBatchCounts(
	ctx context.Context,
	driverIDs []kernel.UUID,
) (map[string]int, error) {
	counts := make(map[string]int, len(driverIDs))
	if len(driverIDs) == 0 {
		return counts, nil
	}

	rawIDs := make([]uuid.UUID, len(driverIDs))
	for i, id := range driverIDs {
		rawIDs[i] = id.Bytes()
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT driver_id, COUNT(*)
		FROM transfer_batches
		WHERE driver_id IN ?
		  AND status IN ?
		GROUP BY driver_id
	`, rawIDs, []string{transfer.Pending.String(), transfer.InTransit.String()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var driverID uuid.UUID
		var count int

		if err = rows.Scan(&driverID, &count); err != nil {
			return nil, err
		}
		counts[driverID.String()] = count
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ClaimDriver assigns a driver to a batch and moves it in transit, but only
// if no driver holds the batch yet. The conditional write is what makes
// concurrent dispatchers safe: exactly one of them touches the row.
func (r *GormTransferBatchRepository) ClaimDriver(
	ctx context.Context,
	batchID kernel.UUID,
	driverID kernel.UUID,
	now time.Time,
) (bool, error) {
	if err := errors.Join(batchID.Validate(), driverID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&TransferBatchDTO{}).
		Where("id = ? AND driver_id IS NULL AND status = ?", batchID.Bytes(), transfer.Pending.String()).
		Updates(map[string]any{
			"driver_id":     driverID.Bytes(),
			"status":        transfer.InTransit.String(),
			"dispatched_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
