package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
)

// RecordPaymentCommandHandler handles payment recording against an order.
//
// The paid total moves only through the store's atomic increment, never
// through a read-modify-write of the aggregate, so concurrent payments
// against the same order cannot lose updates. The ledger row, the
// increment and the recomputed payment status commit as one transaction.
//
// Example:
//
//	handler := NewRecordPaymentCommandHandler(uowFactory)
//	cmd, _ := NewRecordPaymentCommand(orderID, amount, order.MethodCard)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment recording failed: %w", err)
//	}
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
// Requires an OrderUoWFactory for transactional persistence.
func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the payment: appends the ledger row, atomically increments
// the order's paid amount, and derives the settlement state from the
// post-increment total. Returns ErrNoOrderFound when the order does not exist.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	paidOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	record, err := order.NewPaymentRecord(
		kernel.NewUUID(),
		paidOrder.ID(),
		cmd.Amount(),
		cmd.Method(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.AddPayment(ctx, record); err != nil {
		return err
	}

	paidTotal, err := orderRepo.IncrementPaid(ctx, paidOrder.ID(), cmd.Amount())
	if err != nil {
		return err
	}

	paymentStatus := order.DerivePaymentStatus(paidOrder.TotalAmount(), paidTotal)
	if err = orderRepo.SetPaymentStatus(ctx, paidOrder.ID(), paymentStatus); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
