package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"
)

// ArriveTransferCommandHandler handles transfer arrival at the main store:
// the batch moves in_transit -> delivered and every member order is handed
// to intake (routing received, garment to inspection, arrival stamped), all
// in one transaction.
//
// Example:
//
//	handler := NewArriveTransferCommandHandler(uowFactory)
//	cmd, _ := NewArriveTransferCommand(batchID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("arrival recording failed: %w", err)
//	}
type ArriveTransferCommandHandler struct {
	uowFactory ArrivalUoWFactory
}

// NewArriveTransferCommandHandler creates a handler for transfer arrivals.
// Requires an ArrivalUoWFactory for transactional persistence.
func NewArriveTransferCommandHandler(uowFactory ArrivalUoWFactory) ArriveTransferCommandHandler {
	return ArriveTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the batch arrival and hands its members to intake.
// Returns ErrNoBatchFound when the batch does not exist and
// ports.ErrBulkUpdateIncomplete when any member could not be handed over,
// in which case nothing is committed.
func (h ArriveTransferCommandHandler) Handle(ctx context.Context, cmd ArriveTransferCommand) error {
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

	transferRepo := uow.TransferBatchRepository()

	arrivingBatch, err := transferRepo.Get(ctx, cmd.BatchID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoBatchFound
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = arrivingBatch.Arrive(now); err != nil {
		return err
	}

	if err = transferRepo.Update(ctx, arrivingBatch); err != nil {
		return err
	}

	inTransit := order.RoutingInTransit
	received := order.RoutingReceived
	err = uow.OrderRepository().UpdateAllByIDs(ctx, ports.BulkOrderUpdate{
		IDs:                   arrivingBatch.OrderIDs(),
		ExpectedStatus:        order.Received,
		NewStatus:             order.Inspection,
		ExpectedRoutingStatus: &inTransit,
		NewRoutingStatus:      &received,
		ArrivedAt:             &now,
	})
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
