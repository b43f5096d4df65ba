package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"
)

// ErrNoBranchFound reports that the branch a command referenced does not exist.
var ErrNoBranchFound = errors.New("no branch found")

// defaultReadyEstimate is the turnaround quoted to the customer at intake
// when no explicit estimate is taken.
const defaultReadyEstimate = 48 * time.Hour

// CreateOrderCommandHandler handles the business logic for order intake.
// Generates the human-readable tag number from the branch's daily sequence,
// runs auto-classification, and persists the order in "received" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, branchID, "Aisyah Rahman", &phone, 4, amount)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order intake failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderBranchUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires an OrderBranchUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderBranchUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order intake command.
// Looks up the intake branch, draws the next tag sequence for the day, builds
// the tag number, applies auto-classification and persists the new order.
// Returns ErrNoBranchFound when the branch does not exist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	branchRepo := uow.BranchRepository()
	orderRepo := uow.OrderRepository()

	intakeBranch, err := branchRepo.Get(ctx, cmd.BranchID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoBranchFound
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	sequence, err := orderRepo.NextTagSequence(ctx, intakeBranch.ID(), now)
	if err != nil {
		return err
	}

	tagNumber := order.BuildTagNumber(intakeBranch.Code(), now, sequence)
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		tagNumber,
		intakeBranch.ID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.ItemCount(),
		cmd.TotalAmount(),
		now.Add(defaultReadyEstimate),
		now,
	)
	if err != nil {
		return err
	}

	classification := services.NewClassifier().Classify(newOrder.ItemCount(), newOrder.TotalAmount())
	if err = newOrder.ApplyAutoClassification(classification); err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
