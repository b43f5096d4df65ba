package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
)

// ErrNoOrderFound reports that the order a command referenced does not exist.
var ErrNoOrderFound = errors.New("no order found")

// RouteOrderCommandHandler handles the routing engine actions on a single
// order: resolving the processing branch, recording arrival, stage
// assignment, processing start and processing completion.
//
// Every action loads the order, applies the matching aggregate method, and
// persists the result in one transaction, so the garment status and the
// routing status always move together.
//
// Example:
//
//	handler := NewRouteOrderCommandHandler(uowFactory)
//	cmd, _ := NewRouteOrderCommand(orderID, MarkReceived, nil, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("routing action failed: %w", err)
//	}
type RouteOrderCommandHandler struct {
	uowFactory OrderBranchUoWFactory
}

// NewRouteOrderCommandHandler creates a handler for routing engine actions.
// Requires an OrderBranchUoWFactory because routing reads branch
// configuration (hierarchy, sorting windows) while mutating the order.
func NewRouteOrderCommandHandler(uowFactory OrderBranchUoWFactory) RouteOrderCommandHandler {
	return RouteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the command's routing action to its order.
// Returns ErrNoOrderFound when the order does not exist and ErrNoBranchFound
// when route_to_workstation cannot resolve the owning branch. Illegal moves
// surface as state transition errors and leave the order untouched.
func (h RouteOrderCommandHandler) Handle(ctx context.Context, cmd RouteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	routedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	switch cmd.Action() {
	case RouteToWorkstation:
		owningBranch, branchErr := uow.BranchRepository().Get(ctx, routedOrder.OwningBranchID())
		if errors.Is(branchErr, errs.ErrObjectNotFound) {
			return ErrNoBranchFound
		}
		if branchErr != nil {
			return branchErr
		}

		processingBranchID, transferRequired := owningBranch.ResolveProcessingBranch()
		err = routedOrder.RouteToWorkstation(processingBranchID, transferRequired, now)

	case MarkReceived:
		err = routedOrder.MarkReceived(now)

	case AssignToStage:
		err = routedOrder.AssignStage(*cmd.Stage(), cmd.StaffID())

	case MarkProcessing:
		err = routedOrder.MarkProcessing(cmd.StaffID())

	case CompleteProcessing:
		err = routedOrder.CompleteProcessing(now, h.sortingWindow(ctx, uow, routedOrder))

	default:
		return cmd.Action().Validate()
	}

	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, routedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// sortingWindow reads the processing branch's sorting window for a
// completing order. A missing branch reference or a failed lookup falls
// back to the default window rather than blocking the completion.
func (h RouteOrderCommandHandler) sortingWindow(
	ctx context.Context,
	uow OrderBranchUoW,
	completing *order.Order,
) time.Duration {
	processingBranchID := completing.ProcessingBranchID()
	if processingBranchID == nil {
		return branch.DefaultSortingWindow
	}

	processingBranch, err := uow.BranchRepository().Get(ctx, *processingBranchID)
	if err != nil {
		return branch.DefaultSortingWindow
	}

	return processingBranch.SortingWindow()
}
