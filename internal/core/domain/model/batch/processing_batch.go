package batch

import (
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// Domain errors for processing batch operations.
var (
	// ErrProcessingBatchIsNotConstructed is returned when using an improperly
	// initialized ProcessingBatch.
	ErrProcessingBatchIsNotConstructed = errors.New(
		"ProcessingBatch must be created via NewProcessingBatch constructor",
	)
)

// ProcessingBatch groups orders at one branch so staff can advance them
// through a workstation stage together instead of scanning each garment.
//
// The batch is a document describing the group; the member orders stay the
// source of truth for their own status. Starting a batch moves every member
// into the batch stage, completing it moves every member out, and both bulk
// moves are all-or-nothing.
//
// Business rules:
//   - The stage must be a workstation stage
//   - A batch needs at least one member and members must be distinct
//   - The batch lifecycle is pending -> in_progress -> completed, no skips
type ProcessingBatch struct {
	// id uniquely identifies the batch
	id kernel.UUID

	// branchID is the branch whose workstation runs the batch
	branchID kernel.UUID

	// stage is the workstation stage the batch moves its members through
	stage order.Status

	// orderIDs are the member orders, distinct and at least one
	orderIDs []kernel.UUID

	// staffIDs are the staff members working the batch (may be empty)
	staffIDs []kernel.UUID

	// status is the batch lifecycle state
	status Status

	// createdAt is when the batch document was created
	createdAt time.Time

	// startedAt is when the batch moved to in_progress (nil before)
	startedAt *time.Time

	// completedAt is when the batch moved to completed (nil before)
	completedAt *time.Time

	// guard ensures the batch was properly constructed
	guard guard.ConstructorGuard
}

// NewProcessingBatch creates a pending batch document.
//
// Parameters:
//   - id: Unique identifier for the batch
//   - branchID: Branch whose workstation runs the batch
//   - stage: Workstation stage the batch targets
//   - orderIDs: Member orders (at least one, no duplicates)
//   - staffIDs: Staff working the batch (may be empty)
//   - createdAt: Creation time
//
// Returns:
//   - *ProcessingBatch: The created batch in pending status
//   - error: Aggregated validation errors, if any
func NewProcessingBatch(
	id kernel.UUID,
	branchID kernel.UUID,
	stage order.Status,
	orderIDs []kernel.UUID,
	staffIDs []kernel.UUID,
	createdAt time.Time,
) (*ProcessingBatch, error) {
	batch := &ProcessingBatch{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batch.setID(id),
		batch.setBranchID(branchID),
		batch.setStage(stage),
		batch.setOrderIDs(orderIDs),
		batch.setStaffIDs(staffIDs),
	); err != nil {
		return nil, err
	}

	return batch, nil
}

// RestoreProcessingBatch reconstructs a ProcessingBatch from persistent storage.
func RestoreProcessingBatch(
	id kernel.UUID,
	branchID kernel.UUID,
	stage order.Status,
	orderIDs []kernel.UUID,
	staffIDs []kernel.UUID,
	status Status,
	createdAt time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
) (*ProcessingBatch, error) {
	batch := &ProcessingBatch{
		createdAt:   createdAt,
		startedAt:   startedAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batch.setID(id),
		batch.setBranchID(branchID),
		batch.setStage(stage),
		batch.setOrderIDs(orderIDs),
		batch.setStaffIDs(staffIDs),
		batch.setStatus(status),
	); err != nil {
		return nil, err
	}

	return batch, nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *ProcessingBatch) IsEqual(other *ProcessingBatch) bool {
	if other == nil {
		return false
	}
	return b.id.IsEqual(other.id)
}

// Validate checks if the ProcessingBatch was properly constructed.
func (b *ProcessingBatch) Validate() error {
	if b == nil {
		return ErrProcessingBatchIsNotConstructed
	}
	return b.guard.Validate(ErrProcessingBatchIsNotConstructed)
}

// ID returns the unique identifier of the batch.
func (b *ProcessingBatch) ID() kernel.UUID {
	return b.id
}

// BranchID returns the branch whose workstation runs the batch.
func (b *ProcessingBatch) BranchID() kernel.UUID {
	return b.branchID
}

// Stage returns the workstation stage the batch targets.
func (b *ProcessingBatch) Stage() order.Status {
	return b.stage
}

// OrderIDs returns the member orders. The returned slice is a copy.
func (b *ProcessingBatch) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(b.orderIDs))
	copy(out, b.orderIDs)
	return out
}

// StaffIDs returns the staff working the batch. The returned slice is a copy.
func (b *ProcessingBatch) StaffIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(b.staffIDs))
	copy(out, b.staffIDs)
	return out
}

// Status returns the batch lifecycle state.
func (b *ProcessingBatch) Status() Status {
	return b.status
}

// CreatedAt returns when the batch document was created.
func (b *ProcessingBatch) CreatedAt() time.Time {
	return b.createdAt
}

// StartedAt returns when the batch moved to in_progress.
// Returns nil while the batch is pending.
func (b *ProcessingBatch) StartedAt() *time.Time {
	return b.startedAt
}

// CompletedAt returns when the batch moved to completed.
// Returns nil before completion.
func (b *ProcessingBatch) CompletedAt() *time.Time {
	return b.completedAt
}

// Start moves a pending batch to in_progress. The caller advances the member
// orders into the batch stage in the same transaction.
func (b *ProcessingBatch) Start(now time.Time) error {
	if b.status != Pending {
		return errs.NewStateTransitionIsInvalidError(
			"batch status", b.status.String(), InProgress.String(),
		)
	}

	b.status = InProgress
	b.startedAt = &now
	return nil
}

// Complete moves an in_progress batch to completed. The caller advances the
// member orders out of the batch stage in the same transaction.
func (b *ProcessingBatch) Complete(now time.Time) error {
	if b.status != InProgress {
		return errs.NewStateTransitionIsInvalidError(
			"batch status", b.status.String(), Completed.String(),
		)
	}

	b.status = Completed
	b.completedAt = &now
	return nil
}

// ContainsOrder reports whether the given order is a member of the batch.
func (b *ProcessingBatch) ContainsOrder(orderID kernel.UUID) bool {
	for _, id := range b.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// setID sets the batch identifier with validation.
func (b *ProcessingBatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

// setBranchID sets the owning branch with validation.
func (b *ProcessingBatch) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	b.branchID = branchID
	return nil
}

// setStage validates and sets the target workstation stage.
func (b *ProcessingBatch) setStage(stage order.Status) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	if !stage.IsWorkstationStage() {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a workstation stage", stage),
		)
	}

	b.stage = stage
	return nil
}

// setOrderIDs validates and sets the member orders. Duplicates are rejected
// because the bulk member updates count affected rows against the member
// count.
func (b *ProcessingBatch) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIDs are required")
	}

	seen := make(map[string]struct{}, len(orderIDs))
	for _, orderID := range orderIDs {
		if err := orderID.Validate(); err != nil {
			return err
		}
		if _, ok := seen[orderID.String()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"orderIDs are invalid",
				fmt.Errorf("order %s appears more than once", orderID),
			)
		}
		seen[orderID.String()] = struct{}{}
	}

	b.orderIDs = make([]kernel.UUID, len(orderIDs))
	copy(b.orderIDs, orderIDs)
	return nil
}

// setStaffIDs validates and sets the staff assignments.
func (b *ProcessingBatch) setStaffIDs(staffIDs []kernel.UUID) error {
	for _, staffID := range staffIDs {
		if err := staffID.Validate(); err != nil {
			return err
		}
	}

	b.staffIDs = make([]kernel.UUID, len(staffIDs))
	copy(b.staffIDs, staffIDs)
	return nil
}

// setStatus validates and sets the lifecycle state during restoration.
func (b *ProcessingBatch) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	b.status = status
	return nil
}
