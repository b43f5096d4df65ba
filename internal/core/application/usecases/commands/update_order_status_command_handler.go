package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/notification"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles staff-driven garment status moves.
// Transitions into a notification-required status (ready, out_for_delivery,
// delivered) enqueue the customer message into the outbox in the same
// transaction as the status change, so the two commit or fail together.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.OutForDelivery)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderNotificationUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for garment status
// moves. Requires an OrderNotificationUoWFactory so the outbox append shares
// the order's transaction.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderNotificationUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the order to the command's target status.
// Illegal transitions are rejected with a state transition error; the order
// is never coerced to a nearby status. Returns ErrNoOrderFound when the
// order does not exist.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	movingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = movingOrder.ChangeStatus(cmd.NextStatus(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, movingOrder); err != nil {
		return err
	}

	if err = enqueueStatusNotification(ctx, uow.NotificationRepository(), movingOrder, now); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// enqueueStatusNotification appends the customer message for a
// notification-required status to the outbox. Customers without a phone on
// file are skipped; there is nowhere to deliver the message.
func enqueueStatusNotification(
	ctx context.Context,
	notificationRepo ports.NotificationRepository,
	notifiedOrder *order.Order,
	now time.Time,
) error {
	if !notifiedOrder.Status().RequiresNotification() {
		return nil
	}

	phone := notifiedOrder.CustomerPhone()
	if phone == nil {
		return nil
	}

	templateID, ok := notification.TemplateForStatus(notifiedOrder.Status())
	if !ok {
		return nil
	}

	params := map[string]string{
		"tag_number":    notifiedOrder.TagNumber(),
		"customer_name": notifiedOrder.CustomerName(),
	}
	if notifiedOrder.Status() == order.Ready {
		params["collection_method"] = notifiedOrder.Classification().String()
	}

	outboxRow, err := notification.NewNotification(
		kernel.NewUUID(),
		notifiedOrder.ID(),
		*phone,
		templateID,
		params,
		now,
	)
	if err != nil {
		return err
	}

	return notificationRepo.Add(ctx, outboxRow)
}
