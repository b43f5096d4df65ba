package transfer

import (
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// Domain errors for transfer batch operations.
var (
	// ErrTransferBatchIsNotConstructed is returned when using an improperly
	// initialized TransferBatch.
	ErrTransferBatchIsNotConstructed = errors.New(
		"TransferBatch must be created via NewTransferBatch constructor",
	)
)

// TransferBatch is one physical run of orders from a satellite branch to its
// main store. The dispatch sweep builds a batch per satellite with pending
// orders, claims a driver for it, and the driver's arrival hands every member
// over to intake at the main store.
//
// Business rules:
//   - Source and destination branches must differ
//   - A batch needs at least one member and members must be distinct
//   - A driver is claimed exactly once; dispatch requires a claimed driver
//   - The lifecycle is pending -> in_transit -> delivered, no skips
type TransferBatch struct {
	// id uniquely identifies the transfer batch
	id kernel.UUID

	// satelliteBranchID is the branch the orders leave from
	satelliteBranchID kernel.UUID

	// mainStoreBranchID is the branch the orders are carried to
	mainStoreBranchID kernel.UUID

	// driverID is the driver claimed for the run (nil until claimed)
	driverID *kernel.UUID

	// orderIDs are the member orders, distinct and at least one
	orderIDs []kernel.UUID

	// status is the transfer lifecycle state
	status Status

	// createdAt is when the batch was built
	createdAt time.Time

	// dispatchedAt is when the driver left with the batch (nil before)
	dispatchedAt *time.Time

	// arrivedAt is when the batch reached the main store (nil before)
	arrivedAt *time.Time

	// guard ensures the batch was properly constructed
	guard guard.ConstructorGuard
}

// NewTransferBatch builds a pending transfer batch for one satellite run.
//
// Parameters:
//   - id: Unique identifier for the batch
//   - satelliteBranchID: Branch the orders leave from
//   - mainStoreBranchID: Branch the orders are carried to
//   - orderIDs: Member orders (at least one, no duplicates)
//   - createdAt: Build time
//
// Returns:
//   - *TransferBatch: The created batch in pending status with no driver
//   - error: Aggregated validation errors, if any
func NewTransferBatch(
	id kernel.UUID,
	satelliteBranchID kernel.UUID,
	mainStoreBranchID kernel.UUID,
	orderIDs []kernel.UUID,
	createdAt time.Time,
) (*TransferBatch, error) {
	batch := &TransferBatch{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batch.setID(id),
		batch.setRoute(satelliteBranchID, mainStoreBranchID),
		batch.setOrderIDs(orderIDs),
	); err != nil {
		return nil, err
	}

	return batch, nil
}

// RestoreTransferBatch reconstructs a TransferBatch from persistent storage.
// A batch past pending must carry the driver who claimed it.
func RestoreTransferBatch(
	id kernel.UUID,
	satelliteBranchID kernel.UUID,
	mainStoreBranchID kernel.UUID,
	driverID *kernel.UUID,
	orderIDs []kernel.UUID,
	status Status,
	createdAt time.Time,
	dispatchedAt *time.Time,
	arrivedAt *time.Time,
) (*TransferBatch, error) {
	batch := &TransferBatch{
		createdAt:    createdAt,
		dispatchedAt: dispatchedAt,
		arrivedAt:    arrivedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batch.setID(id),
		batch.setRoute(satelliteBranchID, mainStoreBranchID),
		batch.setOrderIDs(orderIDs),
		batch.setDriverID(driverID),
		batch.setStatus(status),
	); err != nil {
		return nil, err
	}

	if batch.status != Pending && batch.driverID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"driverID is invalid",
			fmt.Errorf("a %s transfer batch must have a driver", batch.status),
		)
	}

	return batch, nil
}

// IsEqual compares two transfer batches by their unique identifiers.
func (b *TransferBatch) IsEqual(other *TransferBatch) bool {
	if other == nil {
		return false
	}
	return b.id.IsEqual(other.id)
}

// Validate checks if the TransferBatch was properly constructed.
func (b *TransferBatch) Validate() error {
	if b == nil {
		return ErrTransferBatchIsNotConstructed
	}
	return b.guard.Validate(ErrTransferBatchIsNotConstructed)
}

// ID returns the unique identifier of the transfer batch.
func (b *TransferBatch) ID() kernel.UUID {
	return b.id
}

// SatelliteBranchID returns the branch the orders leave from.
func (b *TransferBatch) SatelliteBranchID() kernel.UUID {
	return b.satelliteBranchID
}

// MainStoreBranchID returns the branch the orders are carried to.
func (b *TransferBatch) MainStoreBranchID() kernel.UUID {
	return b.mainStoreBranchID
}

// DriverID returns the driver claimed for the run.
// Returns nil while the batch waits for a driver.
func (b *TransferBatch) DriverID() *kernel.UUID {
	return b.driverID
}

// OrderIDs returns the member orders. The returned slice is a copy.
func (b *TransferBatch) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(b.orderIDs))
	copy(out, b.orderIDs)
	return out
}

// Status returns the transfer lifecycle state.
func (b *TransferBatch) Status() Status {
	return b.status
}

// CreatedAt returns when the batch was built.
func (b *TransferBatch) CreatedAt() time.Time {
	return b.createdAt
}

// DispatchedAt returns when the driver left with the batch.
// Returns nil while the batch is pending.
func (b *TransferBatch) DispatchedAt() *time.Time {
	return b.dispatchedAt
}

// ArrivedAt returns when the batch reached the main store.
// Returns nil before arrival.
func (b *TransferBatch) ArrivedAt() *time.Time {
	return b.arrivedAt
}

// Dispatch puts the batch on the road with the claimed driver. The caller
// marks the member orders in transit in the same transaction.
func (b *TransferBatch) Dispatch(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if b.status != Pending {
		return errs.NewStateTransitionIsInvalidError(
			"transfer status", b.status.String(), InTransit.String(),
		)
	}

	b.driverID = &driverID
	b.status = InTransit
	b.dispatchedAt = &now
	return nil
}

// Arrive records the batch reaching the main store. The caller hands the
// member orders over to intake in the same transaction.
func (b *TransferBatch) Arrive(now time.Time) error {
	if b.status != InTransit {
		return errs.NewStateTransitionIsInvalidError(
			"transfer status", b.status.String(), Delivered.String(),
		)
	}

	b.status = Delivered
	b.arrivedAt = &now
	return nil
}

// setID sets the batch identifier with validation.
func (b *TransferBatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

// setRoute validates the source and destination branches together.
func (b *TransferBatch) setRoute(satelliteBranchID, mainStoreBranchID kernel.UUID) error {
	if err := errors.Join(satelliteBranchID.Validate(), mainStoreBranchID.Validate()); err != nil {
		return err
	}

	if satelliteBranchID.IsEqual(mainStoreBranchID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"mainStoreBranchID is invalid",
			fmt.Errorf("transfer from %s to itself", satelliteBranchID),
		)
	}

	b.satelliteBranchID = satelliteBranchID
	b.mainStoreBranchID = mainStoreBranchID
	return nil
}

// setOrderIDs validates and sets the member orders.
func (b *TransferBatch) setOrderIDs(orderIDs []kernel.UUID) error {
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

// setDriverID validates and sets the claimed driver during restoration.
func (b *TransferBatch) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	b.driverID = driverID
	return nil
}

// setStatus validates and sets the lifecycle state during restoration.
func (b *TransferBatch) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	b.status = status
	return nil
}
