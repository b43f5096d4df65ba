package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"
)

// ErrNoBatchFound reports that the batch a command referenced does not exist.
var ErrNoBatchFound = errors.New("no batch found")

// stageEntryStatus maps a workstation stage to the garment status its
// member orders must currently hold for a batch at that stage to start.
// The queue is fed by inspection; every later stage is fed by its
// predecessor in the pipeline.
func stageEntryStatus(stage order.Status) (order.Status, bool) {
	entries := map[order.Status]order.Status{
		order.Queued:       order.Inspection,
		order.Washing:      order.Queued,
		order.Drying:       order.Washing,
		order.Ironing:      order.Drying,
		order.QualityCheck: order.Ironing,
		order.Packaging:    order.QualityCheck,
	}

	entry, ok := entries[stage]
	return entry, ok
}

// StartProcessingBatchCommandHandler handles batch starts: the batch moves
// pending -> in_progress and every member order enters the batch stage with
// routing processing, all in one transaction. A member that drifted out of
// the expected garment status fails the whole start; the batch is never
// applied to some members and not others.
//
// Example:
//
//	handler := NewStartProcessingBatchCommandHandler(uowFactory)
//	cmd, _ := NewStartProcessingBatchCommand(batchID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("batch start failed: %w", err)
//	}
type StartProcessingBatchCommandHandler struct {
	uowFactory ProcessingBatchUoWFactory
}

// NewStartProcessingBatchCommandHandler creates a handler for batch starts.
// Requires a ProcessingBatchUoWFactory for transactional persistence.
func NewStartProcessingBatchCommandHandler(uowFactory ProcessingBatchUoWFactory) StartProcessingBatchCommandHandler {
	return StartProcessingBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle starts the batch and bulk-moves its members into the batch stage.
// Returns ErrNoBatchFound when the batch does not exist and
// ports.ErrBulkUpdateIncomplete when any member could not move, in which
// case nothing is committed.
func (h StartProcessingBatchCommandHandler) Handle(ctx context.Context, cmd StartProcessingBatchCommand) error {
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

	batchRepo := uow.ProcessingBatchRepository()

	startingBatch, err := batchRepo.Get(ctx, cmd.BatchID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoBatchFound
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = startingBatch.Start(now); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, startingBatch); err != nil {
		return err
	}

	entryStatus, ok := stageEntryStatus(startingBatch.Stage())
	if !ok {
		return errs.NewValueIsInvalidError("stage is not a workstation stage")
	}

	stage := startingBatch.Stage()
	processing := order.RoutingProcessing
	err = uow.OrderRepository().UpdateAllByIDs(ctx, ports.BulkOrderUpdate{
		IDs:              startingBatch.OrderIDs(),
		ExpectedStatus:   entryStatus,
		NewStatus:        stage,
		NewRoutingStatus: &processing,
		AssignedStage:    &stage,
	})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
