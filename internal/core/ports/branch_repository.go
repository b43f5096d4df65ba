package ports

import (
	"context"

	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"
)

// BranchRepository defines the persistence contract for branch aggregates.
// Branches change rarely; the hot path is lookups during intake and routing.
type BranchRepository interface {
	// Add persists a new branch to storage.
	Add(ctx context.Context, aggregate *branch.Branch) error

	// Update persists changes to an existing branch.
	Update(ctx context.Context, aggregate *branch.Branch) error

	// Get retrieves a branch by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)
}
