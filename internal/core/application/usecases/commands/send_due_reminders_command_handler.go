package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/notification"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/reminder"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"
)

// SendDueRemindersResult summarizes one reminder sweep pass.
type SendDueRemindersResult struct {
	// Scanned is the number of awaiting-collection orders evaluated.
	Scanned int

	// Sent is the number of reminder notifications enqueued.
	Sent int

	// Skipped is the number of orders evaluated but left alone: not yet
	// due, already reminded at the due tier, finished escalating, or not
	// reachable.
	Skipped int

	// Failed is the number of orders whose processing rolled back.
	Failed int

	// Failures lists why each failed order rolled back.
	Failures []SweepFailure
}

// SweepFailure records one order the sweep could not process.
type SweepFailure struct {
	OrderID kernel.UUID
	Reason  error
}

// SendDueRemindersCommandHandler handles the collection reminder sweep.
//
// The sweep walks every order awaiting collection, works out which
// escalation tier is due from how long the order has sat on the shelf, and
// enqueues the tier's message to the notification outbox. Each order is
// processed in its own transaction so one bad order cannot sink the whole
// pass; failures roll back that order only and are reported in the result.
//
// Example:
//
//	handler := NewSendDueRemindersCommandHandler(uowFactory)
//	cmd, _ := NewSendDueRemindersCommand(time.Now().UTC())
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("reminder sweep failed: %w", err)
//	}
type SendDueRemindersCommandHandler struct {
	uowFactory ReminderSweepUoWFactory
	planner    services.ReminderPlanner
}

// NewSendDueRemindersCommandHandler creates a handler for the reminder
// sweep. Requires a ReminderSweepUoWFactory for transactional persistence.
func NewSendDueRemindersCommandHandler(uowFactory ReminderSweepUoWFactory) SendDueRemindersCommandHandler {
	return SendDueRemindersCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewReminderPlanner(),
	}
}

// Handle runs one reminder sweep pass and returns its summary. The returned
// error covers the pass itself (command validation, loading the worklist);
// per-order failures are collected in the result instead.
func (h SendDueRemindersCommandHandler) Handle(
	ctx context.Context,
	cmd SendDueRemindersCommand,
) (SendDueRemindersResult, error) {
	var result SendDueRemindersResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	worklist, err := h.loadWorklist(ctx)
	if err != nil {
		return result, err
	}

	for _, awaitingOrder := range worklist {
		result.Scanned++

		sent, orderErr := h.processOrder(ctx, awaitingOrder, cmd.Now())
		switch {
		case orderErr != nil:
			result.Failed++
			result.Failures = append(result.Failures, SweepFailure{
				OrderID: awaitingOrder.ID(),
				Reason:  orderErr,
			})
		case sent:
			result.Sent++
		default:
			result.Skipped++
		}
	}

	return result, nil
}

// loadWorklist reads the awaiting-collection orders in a short read-only
// transaction of its own.
func (h SendDueRemindersCommandHandler) loadWorklist(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	worklist, err := uow.OrderRepository().GetAllAwaitingCollection(ctx)
	if err != nil {
		return nil, err
	}

	return worklist, uow.Commit(ctx)
}

// processOrder evaluates one order in its own transaction. Returns whether a
// reminder message was enqueued; an error rolls back this order only.
func (h SendDueRemindersCommandHandler) processOrder(
	ctx context.Context,
	awaitingOrder *order.Order,
	now time.Time,
) (bool, error) {
	dueTier, due := reminder.TierForDays(h.planner.DaysUncollected(awaitingOrder, now))
	if !due {
		return false, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderReminder, created, err := h.reminderAtTier(ctx, uow, awaitingOrder, dueTier, now)
	if err != nil {
		return false, err
	}
	if orderReminder == nil {
		return false, uow.Commit(ctx)
	}

	sent := false
	if h.planner.ShouldSend(awaitingOrder, orderReminder) {
		if err = h.enqueueReminder(ctx, uow, awaitingOrder, orderReminder, now); err != nil {
			return false, err
		}
		sent = true
	}

	reminderRepo := uow.ReminderRepository()
	if created {
		err = reminderRepo.Add(ctx, orderReminder)
	} else {
		err = reminderRepo.Update(ctx, orderReminder)
	}
	if err != nil {
		return false, err
	}

	return sent, uow.Commit(ctx)
}

// reminderAtTier loads the order's reminder and brings it up to the due
// tier, creating it when the order was never reminded. Returns nil when the
// order cannot be reminded (no phone on file) or the escalation sequence is
// already finished.
func (h SendDueRemindersCommandHandler) reminderAtTier(
	ctx context.Context,
	uow ReminderSweepUoW,
	awaitingOrder *order.Order,
	dueTier reminder.Tier,
	now time.Time,
) (*reminder.Reminder, bool, error) {
	orderReminder, err := uow.ReminderRepository().GetByOrderID(ctx, awaitingOrder.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		if awaitingOrder.CustomerPhone() == nil {
			return nil, false, nil
		}

		created, createErr := reminder.NewReminder(
			kernel.NewUUID(),
			awaitingOrder.ID(),
			dueTier,
			awaitingOrder.CustomerName(),
			*awaitingOrder.CustomerPhone(),
			now,
		)
		return created, true, createErr
	}
	if err != nil {
		return nil, false, err
	}

	if orderReminder.IsFinished() {
		return nil, false, nil
	}

	switch {
	case orderReminder.Tier().Before(dueTier):
		err = orderReminder.EscalateTo(dueTier)
	case h.planner.NeedsMonthlyRepeat(orderReminder, now):
		err = orderReminder.RepeatMonthly()
	}
	if err != nil {
		return nil, false, err
	}

	return orderReminder, false, nil
}

// enqueueReminder appends the tier's message to the notification outbox and
// marks the tier sent. The relay owns actual delivery; at-least-once is the
// contract here.
func (h SendDueRemindersCommandHandler) enqueueReminder(
	ctx context.Context,
	uow ReminderSweepUoW,
	awaitingOrder *order.Order,
	orderReminder *reminder.Reminder,
	now time.Time,
) error {
	payload := h.planner.BuildPayload(
		awaitingOrder,
		orderReminder.Tier(),
		h.planner.DaysUncollected(awaitingOrder, now),
	)

	reminderNotification, err := notification.NewNotification(
		kernel.NewUUID(),
		awaitingOrder.ID(),
		orderReminder.CustomerPhone(),
		notification.CollectionReminderTemplate(orderReminder.Tier().Urgency()),
		payload,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, reminderNotification); err != nil {
		return err
	}

	return orderReminder.MarkSent(now)
}
