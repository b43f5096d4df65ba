package ports

import (
	"context"

	"laundryops/internal/core/domain/model/driver"
	"laundryops/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for transfer drivers.
type DriverRepository interface {
	// Add persists a new driver to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllActiveByBranch retrieves the active drivers working out of a
	// branch. This is the candidate set for dispatching that branch's
	// transfer batches.
	GetAllActiveByBranch(ctx context.Context, branchID kernel.UUID) ([]*driver.Driver, error)
}
