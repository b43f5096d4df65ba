package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/batch"
	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"
)

// ErrFailedOrderNotInBatch reports that a quality-check failure list named
// an order that is not a member of the batch.
var ErrFailedOrderNotInBatch = errors.New("failed order is not a member of the batch")

// stageExitStatus maps a workstation stage to the garment status its member
// orders advance to when a batch at that stage completes. Quality check and
// packaging are handled separately: quality check splits pass/fail and
// packaging splits local/transferred returns.
func stageExitStatus(stage order.Status) (order.Status, bool) {
	exits := map[order.Status]order.Status{
		order.Queued:  order.Washing,
		order.Washing: order.Drying,
		order.Drying:  order.Ironing,
		order.Ironing: order.QualityCheck,
	}

	exit, ok := exits[stage]
	return exit, ok
}

// CompleteProcessingBatchCommandHandler handles batch completion: the batch
// moves in_progress -> completed and every member order advances out of the
// batch stage in one transaction, all-or-nothing.
//
// Stage-specific rules:
//   - Quality check: members named in failedOrderIDs return to washing, the
//     rest advance to packaging.
//   - Packaging: transferred orders complete processing (sorting window,
//     queued_for_delivery, ready_for_return); local orders go straight to
//     ready and notify the customer.
//   - Every other stage: members advance to the pipeline successor.
type CompleteProcessingBatchCommandHandler struct {
	uowFactory BatchCompletionUoWFactory
}

// NewCompleteProcessingBatchCommandHandler creates a handler for batch
// completion. Requires a BatchCompletionUoWFactory because packaging
// completion reads branch sorting windows and enqueues notifications.
func NewCompleteProcessingBatchCommandHandler(uowFactory BatchCompletionUoWFactory) CompleteProcessingBatchCommandHandler {
	return CompleteProcessingBatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle completes the batch and advances its members.
// Returns ErrNoBatchFound when the batch does not exist,
// ErrFailedOrderNotInBatch when the failure list names a non-member, and
// ports.ErrBulkUpdateIncomplete when any member could not move; nothing is
// committed in the failure cases.
func (h CompleteProcessingBatchCommandHandler) Handle(ctx context.Context, cmd CompleteProcessingBatchCommand) error {
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

	completingBatch, err := batchRepo.Get(ctx, cmd.BatchID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoBatchFound
	}
	if err != nil {
		return err
	}

	for _, failedID := range cmd.FailedOrderIDs() {
		if !completingBatch.ContainsOrder(failedID) {
			return ErrFailedOrderNotInBatch
		}
	}

	now := time.Now().UTC()
	if err = completingBatch.Complete(now); err != nil {
		return err
	}

	if err = batchRepo.Update(ctx, completingBatch); err != nil {
		return err
	}

	switch completingBatch.Stage() {
	case order.QualityCheck:
		err = h.completeQualityCheck(ctx, uow, completingBatch, cmd.FailedOrderIDs())
	case order.Packaging:
		err = h.completePackaging(ctx, uow, completingBatch, now)
	default:
		err = h.advanceToSuccessor(ctx, uow, completingBatch)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// advanceToSuccessor bulk-moves every member to the stage's pipeline
// successor, keeping it stage-assigned for the next workstation.
func (h CompleteProcessingBatchCommandHandler) advanceToSuccessor(
	ctx context.Context,
	uow BatchCompletionUoW,
	completingBatch *batch.ProcessingBatch,
) error {
	exitStatus, ok := stageExitStatus(completingBatch.Stage())
	if !ok {
		return errs.NewValueIsInvalidError("stage has no pipeline successor")
	}

	assigned := order.RoutingAssigned
	return uow.OrderRepository().UpdateAllByIDs(ctx, ports.BulkOrderUpdate{
		IDs:              completingBatch.OrderIDs(),
		ExpectedStatus:   completingBatch.Stage(),
		NewStatus:        exitStatus,
		NewRoutingStatus: &assigned,
		AssignedStage:    &exitStatus,
	})
}

// completeQualityCheck splits the members: failed checks return to washing
// for another pass, passed checks advance to packaging.
func (h CompleteProcessingBatchCommandHandler) completeQualityCheck(
	ctx context.Context,
	uow BatchCompletionUoW,
	completingBatch *batch.ProcessingBatch,
	failedOrderIDs []kernel.UUID,
) error {
	failed := make(map[string]bool, len(failedOrderIDs))
	for _, id := range failedOrderIDs {
		failed[id.String()] = true
	}

	passedIDs := make([]kernel.UUID, 0, len(completingBatch.OrderIDs()))
	for _, id := range completingBatch.OrderIDs() {
		if !failed[id.String()] {
			passedIDs = append(passedIDs, id)
		}
	}

	orderRepo := uow.OrderRepository()
	assigned := order.RoutingAssigned

	if len(failedOrderIDs) > 0 {
		washing := order.Washing
		err := orderRepo.UpdateAllByIDs(ctx, ports.BulkOrderUpdate{
			IDs:              failedOrderIDs,
			ExpectedStatus:   order.QualityCheck,
			NewStatus:        washing,
			NewRoutingStatus: &assigned,
			AssignedStage:    &washing,
		})
		if err != nil {
			return err
		}
	}

	if len(passedIDs) > 0 {
		packaging := order.Packaging
		err := orderRepo.UpdateAllByIDs(ctx, ports.BulkOrderUpdate{
			IDs:              passedIDs,
			ExpectedStatus:   order.QualityCheck,
			NewStatus:        packaging,
			NewRoutingStatus: &assigned,
			AssignedStage:    &packaging,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// completePackaging finishes the cleaning pipeline for every member.
// Transferred orders enter their sorting window through the aggregate's
// processing completion; local orders go straight onto the shelf and the
// customer is notified. Members are loaded and updated individually because
// the two return paths stamp different fields, but all writes still share
// the batch transaction.
func (h CompleteProcessingBatchCommandHandler) completePackaging(
	ctx context.Context,
	uow BatchCompletionUoW,
	completingBatch *batch.ProcessingBatch,
	now time.Time,
) error {
	orderRepo := uow.OrderRepository()

	members, err := orderRepo.GetAllByIDs(ctx, completingBatch.OrderIDs())
	if err != nil {
		return err
	}

	sortingWindow := h.sortingWindow(ctx, uow, completingBatch.BranchID())

	for _, member := range members {
		if member.IsTransferred() {
			if err = member.CompleteProcessing(now, sortingWindow); err != nil {
				return err
			}
		} else {
			if err = member.ChangeStatus(order.Ready, now); err != nil {
				return err
			}
		}

		if err = orderRepo.Update(ctx, member); err != nil {
			return err
		}

		if err = enqueueStatusNotification(ctx, uow.NotificationRepository(), member, now); err != nil {
			return err
		}
	}

	return nil
}

// sortingWindow reads the batch branch's configured sorting window, falling
// back to the default when the branch lookup fails.
func (h CompleteProcessingBatchCommandHandler) sortingWindow(
	ctx context.Context,
	uow BatchCompletionUoW,
	branchID kernel.UUID,
) time.Duration {
	processingBranch, err := uow.BranchRepository().Get(ctx, branchID)
	if err != nil {
		return branch.DefaultSortingWindow
	}

	return processingBranch.SortingWindow()
}
