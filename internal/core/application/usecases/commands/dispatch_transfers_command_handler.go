package commands

import (
	"context"
	"errors"
	"slices"
	"time"

	"laundryops/internal/core/domain/model/driver"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/transfer"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/core/ports"
)

// ErrNoPendingTransfers reports that the sweep found nothing to dispatch.
// This is an expected outcome between busy periods, not a failure.
var ErrNoPendingTransfers = errors.New("no pending transfers found")

// DispatchTransfersCommandHandler handles the transfer dispatch sweep.
//
// The sweep builds one transfer batch per satellite that has orders waiting
// for their main store, then tries to put every undispatched batch (new and
// left over from earlier sweeps) on the road. The driver pick is advisory:
// the claim is a conditional write, and a lost claim just moves the sweep
// to the next candidate. A batch no driver can take stays pending for the
// next sweep, which is a normal outcome.
//
// Example:
//
//	handler := NewDispatchTransfersCommandHandler(uowFactory)
//	err := handler.Handle(ctx, NewDispatchTransfersCommand())
//	if err != nil && !errors.Is(err, ErrNoPendingTransfers) {
//	    return fmt.Errorf("dispatch sweep failed: %w", err)
//	}
type DispatchTransfersCommandHandler struct {
	uowFactory DispatchUoWFactory
	picker     services.DriverPicker
}

// NewDispatchTransfersCommandHandler creates a handler for the dispatch
// sweep. Requires a DispatchUoWFactory for transactional persistence.
func NewDispatchTransfersCommandHandler(uowFactory DispatchUoWFactory) DispatchTransfersCommandHandler {
	return DispatchTransfersCommandHandler{
		uowFactory: uowFactory,
		picker:     services.NewDriverPicker(),
	}
}

// Handle runs one dispatch sweep.
// Returns ErrNoPendingTransfers when there is nothing to batch or dispatch.
func (h DispatchTransfersCommandHandler) Handle(ctx context.Context, cmd DispatchTransfersCommand) error {
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

	undispatched, err := transferRepo.GetAllUndispatched(ctx)
	if err != nil {
		return err
	}

	newBatches, err := h.buildBatches(ctx, uow, undispatched)
	if err != nil {
		return err
	}

	worklist := append(undispatched, newBatches...)
	if len(worklist) == 0 {
		return ErrNoPendingTransfers
	}

	now := time.Now().UTC()
	for _, pendingBatch := range worklist {
		if err = h.dispatchBatch(ctx, uow, pendingBatch, now); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// buildBatches groups the pending-routing orders not already booked on an
// undispatched batch into one new transfer batch per satellite run.
func (h DispatchTransfersCommandHandler) buildBatches(
	ctx context.Context,
	uow DispatchUoW,
	undispatched []*transfer.TransferBatch,
) ([]*transfer.TransferBatch, error) {
	pendingOrders, err := uow.OrderRepository().GetAllInPendingRouting(ctx)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool)
	for _, existing := range undispatched {
		for _, orderID := range existing.OrderIDs() {
			booked[orderID.String()] = true
		}
	}

	type run struct {
		satellite kernel.UUID
		mainStore kernel.UUID
		orderIDs  []kernel.UUID
	}

	runs := make(map[string]*run)
	runOrder := make([]string, 0)
	for _, pendingOrder := range pendingOrders {
		if booked[pendingOrder.ID().String()] || pendingOrder.ProcessingBranchID() == nil {
			continue
		}

		key := pendingOrder.OwningBranchID().String()
		if _, ok := runs[key]; !ok {
			runs[key] = &run{
				satellite: pendingOrder.OwningBranchID(),
				mainStore: *pendingOrder.ProcessingBranchID(),
			}
			runOrder = append(runOrder, key)
		}
		runs[key].orderIDs = append(runs[key].orderIDs, pendingOrder.ID())
	}

	transferRepo := uow.TransferBatchRepository()
	batches := make([]*transfer.TransferBatch, 0, len(runs))
	for _, key := range runOrder {
		satelliteRun := runs[key]
		newBatch, batchErr := transfer.NewTransferBatch(
			kernel.NewUUID(),
			satelliteRun.satellite,
			satelliteRun.mainStore,
			satelliteRun.orderIDs,
			time.Now().UTC(),
		)
		if batchErr != nil {
			return nil, batchErr
		}

		if batchErr = transferRepo.Add(ctx, newBatch); batchErr != nil {
			return nil, batchErr
		}

		batches = append(batches, newBatch)
	}

	return batches, nil
}

// dispatchBatch tries to put one batch on the road: score the satellite's
// active drivers, claim the best pick, and mark the member orders in
// transit. A lost claim drops the candidate and retries with the next one;
// running out of candidates leaves the batch pending.
func (h DispatchTransfersCommandHandler) dispatchBatch(
	ctx context.Context,
	uow DispatchUoW,
	pendingBatch *transfer.TransferBatch,
	now time.Time,
) error {
	candidates, err := uow.DriverRepository().GetAllActiveByBranch(ctx, pendingBatch.SatelliteBranchID())
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		return nil
	}

	transferRepo := uow.TransferBatchRepository()

	candidateIDs := make([]kernel.UUID, len(candidates))
	for i, candidate := range candidates {
		candidateIDs[i] = candidate.ID()
	}

	activeCounts, err := transferRepo.ActiveBatchCounts(ctx, candidateIDs)
	if err != nil {
		return err
	}

	for len(candidates) > 0 {
		pick, pickErr := h.picker.Pick(candidates, activeCounts)
		if pickErr != nil {
			return pickErr
		}
		if pick == nil {
			return nil
		}

		claimed, claimErr := transferRepo.ClaimDriver(ctx, pendingBatch.ID(), pick.ID(), now)
		if claimErr != nil {
			return claimErr
		}

		if claimed {
			return h.markMembersInTransit(ctx, uow, pendingBatch)
		}

		candidates = slices.DeleteFunc(candidates, func(d *driver.Driver) bool {
			return d.IsEqual(pick)
		})
	}

	return nil
}

// markMembersInTransit bulk-moves the batch members onto the run. The
// garment status stays at received for the whole transfer leg.
func (h DispatchTransfersCommandHandler) markMembersInTransit(
	ctx context.Context,
	uow DispatchUoW,
	dispatchedBatch *transfer.TransferBatch,
) error {
	pending := order.RoutingPending
	inTransit := order.RoutingInTransit
	return uow.OrderRepository().UpdateAllByIDs(ctx, ports.BulkOrderUpdate{
		IDs:                   dispatchedBatch.OrderIDs(),
		ExpectedStatus:        order.Received,
		NewStatus:             order.Received,
		ExpectedRoutingStatus: &pending,
		NewRoutingStatus:      &inTransit,
	})
}
