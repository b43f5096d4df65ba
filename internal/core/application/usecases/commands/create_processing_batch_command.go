package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var (
	ErrCreateProcessingBatchCommandIsNotConstructed = errors.New(
		"CreateProcessingBatchCommand must be created via NewCreateProcessingBatchCommand constructor",
	)
	ErrBatchNeedsOrders = errors.New("a processing batch needs at least one order")
)

// CreateProcessingBatchCommand builds a batch document grouping orders at
// one branch workstation stage so staff can advance them together.
type CreateProcessingBatchCommand struct { //nolint:recvcheck //using for validation
	batchID  kernel.UUID
	branchID kernel.UUID
	stage    order.Status
	orderIDs []kernel.UUID
	staffIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateProcessingBatchCommand creates a command to build a processing
// batch. The stage must be a workstation stage and at least one member
// order is required; staff may be left empty and assigned at start.
func NewCreateProcessingBatchCommand(
	batchID kernel.UUID,
	branchID kernel.UUID,
	stage order.Status,
	orderIDs []kernel.UUID,
	staffIDs []kernel.UUID,
) (CreateProcessingBatchCommand, error) {
	batchCommand := CreateProcessingBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batchCommand.setBatchID(batchID),
		batchCommand.setBranchID(branchID),
		batchCommand.setStage(stage),
		batchCommand.setOrderIDs(orderIDs),
		batchCommand.setStaffIDs(staffIDs),
	); err != nil {
		return CreateProcessingBatchCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProcessingBatchCommandIsNotConstructed if validation fails.
func (c CreateProcessingBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateProcessingBatchCommandIsNotConstructed)
}

// BatchID returns the identifier for the new batch.
func (c CreateProcessingBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// BranchID returns the branch whose workstation runs the batch.
func (c CreateProcessingBatchCommand) BranchID() kernel.UUID {
	return c.branchID
}

// Stage returns the workstation stage the batch targets.
func (c CreateProcessingBatchCommand) Stage() order.Status {
	return c.stage
}

// OrderIDs returns the member orders.
func (c CreateProcessingBatchCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// StaffIDs returns the staff working the batch.
func (c CreateProcessingBatchCommand) StaffIDs() []kernel.UUID {
	return c.staffIDs
}

func (c *CreateProcessingBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CreateProcessingBatchCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *CreateProcessingBatchCommand) setStage(stage order.Status) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	if !stage.IsWorkstationStage() {
		return errs.NewValueIsInvalidError("stage is not a workstation stage")
	}

	c.stage = stage
	return nil
}

func (c *CreateProcessingBatchCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrBatchNeedsOrders
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}

func (c *CreateProcessingBatchCommand) setStaffIDs(staffIDs []kernel.UUID) error {
	for _, id := range staffIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.staffIDs = staffIDs
	return nil
}
