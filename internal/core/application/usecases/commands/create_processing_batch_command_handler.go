package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/batch"
	"laundryops/internal/pkg/errs"
)

// CreateProcessingBatchCommandHandler handles processing batch creation.
// Verifies every member order exists before the batch document is written;
// a batch referencing a phantom order would poison its later bulk moves.
type CreateProcessingBatchCommandHandler struct {
	uowFactory ProcessingBatchUoWFactory
}

// NewCreateProcessingBatchCommandHandler creates a handler for batch creation.
// Requires a ProcessingBatchUoWFactory for transactional persistence.
func NewCreateProcessingBatchCommandHandler(uowFactory ProcessingBatchUoWFactory) CreateProcessingBatchCommandHandler {
	return CreateProcessingBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the batch document in pending status.
// Returns ErrNoOrderFound when any member order does not exist.
func (h CreateProcessingBatchCommandHandler) Handle(ctx context.Context, cmd CreateProcessingBatchCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().GetAllByIDs(ctx, cmd.OrderIDs()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoOrderFound
		}
		return err
	}

	newBatch, err := batch.NewProcessingBatch(
		cmd.BatchID(),
		cmd.BranchID(),
		cmd.Stage(),
		cmd.OrderIDs(),
		cmd.StaffIDs(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.ProcessingBatchRepository().Add(ctx, newBatch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
