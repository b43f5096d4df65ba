package ports

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/transfer"
)

// TransferBatchRepository defines the persistence contract for transfer
// batches. Dispatch concurrency is resolved here: assigning a driver is a
// conditional write, not a read-modify-write of the aggregate.
type TransferBatchRepository interface {
	// Add persists a new transfer batch to storage.
	Add(ctx context.Context, aggregate *transfer.TransferBatch) error

	// Update persists changes to an existing transfer batch.
	Update(ctx context.Context, aggregate *transfer.TransferBatch) error

	// Get retrieves a transfer batch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transfer.TransferBatch, error)

	// GetAllUndispatched retrieves pending transfer batches that have no
	// driver yet, oldest first.
	GetAllUndispatched(ctx context.Context) ([]*transfer.TransferBatch, error)

	// ActiveBatchCounts returns the number of pending or in-transit batches
	// per driver id. Drivers without active batches are absent from the map.
	ActiveBatchCounts(ctx context.Context, driverIDs []kernel.UUID) (map[string]int, error)

	// ClaimDriver assigns a driver to a batch and moves it in transit, but
	// only if no driver holds the batch yet. Returns false when the claim is
	// lost to a concurrent dispatcher; the caller then moves on.
	ClaimDriver(ctx context.Context, batchID kernel.UUID, driverID kernel.UUID, now time.Time) (bool, error)
}
