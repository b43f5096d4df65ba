// Package ports defines repository interfaces for the laundry operations domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"laundryops/internal/core/domain/model/batch"
	"laundryops/internal/core/domain/model/kernel"
)

// ProcessingBatchRepository defines the persistence contract for processing
// batch aggregates. A batch row carries its member order ids; member state
// itself lives in the orders table and moves through OrderRepository.
type ProcessingBatchRepository interface {
	// Add persists a new processing batch to storage.
	// The batch must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *batch.ProcessingBatch) error

	// Update persists changes to an existing processing batch.
	// The batch must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *batch.ProcessingBatch) error

	// Get retrieves a processing batch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*batch.ProcessingBatch, error)
}
