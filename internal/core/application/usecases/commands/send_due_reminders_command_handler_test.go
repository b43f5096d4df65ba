package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/notification"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/reminder"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sweepNow = time.Date(2026, time.June, 1, 8, 0, 0, 0, time.UTC)

// readyOrderOnShelf builds a ready order that has sat uncollected for the
// given number of whole days as of sweepNow.
func readyOrderOnShelf(t *testing.T, daysOnShelf int) *order.Order {
	t.Helper()

	sorted := sweepNow.Add(-time.Duration(daysOnShelf)*24*time.Hour - time.Hour)
	params := defaultOrderParams(t)
	params.Status = order.Ready
	params.RoutingStatus = order.RoutingAssigned
	params.SortedAt = &sorted
	return restoreTestOrder(t, params)
}

func restoreTestReminder(
	t *testing.T,
	orderID kernel.UUID,
	tier reminder.Tier,
	status reminder.Status,
	sentAt *time.Time,
) *reminder.Reminder {
	t.Helper()

	restored, err := reminder.RestoreReminder(
		kernel.NewUUID(), orderID, tier, status,
		"Aisyah Rahman", mustPhone(t, "+60123456789"),
		testIntakeTime, sentAt,
	)
	require.NoError(t, err)
	return restored
}

// worklistUoW wires a unit of work that serves the sweep's initial
// awaiting-collection read.
func worklistUoW(ctx context.Context, orders []*order.Order) *MockReminderSweepUoW {
	orderRepo := new(MockOrderRepository)
	uow := new(MockReminderSweepUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllAwaitingCollection", ctx).Return(orders, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	return uow
}

func TestSendDueRemindersCommandHandler_Handle_CreatesFirstReminder(t *testing.T) {
	ctx := t.Context()

	shelfOrder := readyOrderOnShelf(t, 8)
	cmd, err := commands.NewSendDueRemindersCommand(sweepNow)
	require.NoError(t, err)

	reminderRepo := new(MockReminderRepository)
	notificationRepo := new(MockNotificationRepository)
	orderUoW := new(MockReminderSweepUoW)

	orderUoW.On("Begin", ctx).Return(nil).Once()
	orderUoW.On("ReminderRepository").Return(reminderRepo)
	orderUoW.On("NotificationRepository").Return(notificationRepo).Once()
	reminderRepo.On("GetByOrderID", ctx, shelfOrder.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", shelfOrder.ID())).
		Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	reminderRepo.On("Add", ctx, mock.AnythingOfType("*reminder.Reminder")).Return(nil).Once()
	orderUoW.On("Commit", ctx).Return(nil).Once()
	orderUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReminderSweepUoWFactory)
	factory.On("Create").Return(worklistUoW(ctx, []*order.Order{shelfOrder})).Once()
	factory.On("Create").Return(orderUoW).Once()

	handler := commands.NewSendDueRemindersCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.Failed)

	// A week on the shelf gets the gentle first-tier reminder.
	savedReminder := reminderRepo.Calls[1].Arguments[1].(*reminder.Reminder)
	assert.Equal(t, shelfOrder.ID(), savedReminder.OrderID())
	assert.Equal(t, reminder.Tier7Days, savedReminder.Tier())
	assert.Equal(t, reminder.Sent, savedReminder.Status())

	outboxRow := notificationRepo.Calls[0].Arguments[1].(*notification.Notification)
	assert.Equal(t, notification.CollectionReminderTemplate("normal"), outboxRow.TemplateID())
	params, err := outboxRow.DecodeParams()
	require.NoError(t, err)
	assert.Equal(t, "8", params["days_uncollected"])
	assert.Equal(t, shelfOrder.TagNumber(), params["tag_number"])
}

func TestSendDueRemindersCommandHandler_Handle_EscalatesExistingReminder(t *testing.T) {
	ctx := t.Context()

	shelfOrder := readyOrderOnShelf(t, 31)
	lastSent := sweepNow.Add(-17 * 24 * time.Hour)
	existing := restoreTestReminder(t, shelfOrder.ID(), reminder.Tier14Days, reminder.Sent, &lastSent)

	cmd, err := commands.NewSendDueRemindersCommand(sweepNow)
	require.NoError(t, err)

	reminderRepo := new(MockReminderRepository)
	notificationRepo := new(MockNotificationRepository)
	orderUoW := new(MockReminderSweepUoW)

	orderUoW.On("Begin", ctx).Return(nil).Once()
	orderUoW.On("ReminderRepository").Return(reminderRepo)
	orderUoW.On("NotificationRepository").Return(notificationRepo).Once()
	reminderRepo.On("GetByOrderID", ctx, shelfOrder.ID()).Return(existing, nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	reminderRepo.On("Update", ctx, mock.AnythingOfType("*reminder.Reminder")).Return(nil).Once()
	orderUoW.On("Commit", ctx).Return(nil).Once()
	orderUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReminderSweepUoWFactory)
	factory.On("Create").Return(worklistUoW(ctx, []*order.Order{shelfOrder})).Once()
	factory.On("Create").Return(orderUoW).Once()

	handler := commands.NewSendDueRemindersCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, reminder.Tier30Days, existing.Tier())
	assert.Equal(t, reminder.Sent, existing.Status())

	// The thirty-day tier carries the storage-charge warning.
	outboxRow := notificationRepo.Calls[0].Arguments[1].(*notification.Notification)
	assert.Equal(t, notification.CollectionReminderTemplate("urgent"), outboxRow.TemplateID())
	params, err := outboxRow.DecodeParams()
	require.NoError(t, err)
	assert.Equal(t, services.StorageChargeWarning, params["policy_warning"])
}

func TestSendDueRemindersCommandHandler_Handle_MonthlyReminderRepeats(t *testing.T) {
	ctx := t.Context()

	shelfOrder := readyOrderOnShelf(t, 65)
	lastSent := sweepNow.Add(-31 * 24 * time.Hour)
	existing := restoreTestReminder(t, shelfOrder.ID(), reminder.TierMonthly, reminder.Sent, &lastSent)

	cmd, err := commands.NewSendDueRemindersCommand(sweepNow)
	require.NoError(t, err)

	reminderRepo := new(MockReminderRepository)
	notificationRepo := new(MockNotificationRepository)
	orderUoW := new(MockReminderSweepUoW)

	orderUoW.On("Begin", ctx).Return(nil).Once()
	orderUoW.On("ReminderRepository").Return(reminderRepo)
	orderUoW.On("NotificationRepository").Return(notificationRepo).Once()
	reminderRepo.On("GetByOrderID", ctx, shelfOrder.ID()).Return(existing, nil).Once()
	notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	reminderRepo.On("Update", ctx, mock.AnythingOfType("*reminder.Reminder")).Return(nil).Once()
	orderUoW.On("Commit", ctx).Return(nil).Once()
	orderUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReminderSweepUoWFactory)
	factory.On("Create").Return(worklistUoW(ctx, []*order.Order{shelfOrder})).Once()
	factory.On("Create").Return(orderUoW).Once()

	handler := commands.NewSendDueRemindersCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, reminder.TierMonthly, existing.Tier())
	assert.Equal(t, reminder.Sent, existing.Status())
	require.NotNil(t, existing.SentAt())
	assert.True(t, existing.SentAt().Equal(sweepNow))
}

func TestSendDueRemindersCommandHandler_Handle_NotYetDueSkipsWithoutTransaction(t *testing.T) {
	ctx := t.Context()

	shelfOrder := readyOrderOnShelf(t, 3)
	cmd, err := commands.NewSendDueRemindersCommand(sweepNow)
	require.NoError(t, err)

	factory := new(MockReminderSweepUoWFactory)
	factory.On("Create").Return(worklistUoW(ctx, []*order.Order{shelfOrder})).Once()

	handler := commands.NewSendDueRemindersCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 1, result.Skipped)
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestSendDueRemindersCommandHandler_Handle_FinishedReminderSkipped(t *testing.T) {
	ctx := t.Context()

	shelfOrder := readyOrderOnShelf(t, 120)
	lastSent := sweepNow.Add(-10 * 24 * time.Hour)
	finished := restoreTestReminder(t, shelfOrder.ID(), reminder.TierDisposalEligible, reminder.Sent, &lastSent)

	cmd, err := commands.NewSendDueRemindersCommand(sweepNow)
	require.NoError(t, err)

	reminderRepo := new(MockReminderRepository)
	orderUoW := new(MockReminderSweepUoW)

	orderUoW.On("Begin", ctx).Return(nil).Once()
	orderUoW.On("ReminderRepository").Return(reminderRepo).Once()
	reminderRepo.On("GetByOrderID", ctx, shelfOrder.ID()).Return(finished, nil).Once()
	orderUoW.On("Commit", ctx).Return(nil).Once()
	orderUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReminderSweepUoWFactory)
	factory.On("Create").Return(worklistUoW(ctx, []*order.Order{shelfOrder})).Once()
	factory.On("Create").Return(orderUoW).Once()

	handler := commands.NewSendDueRemindersCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	orderUoW.AssertNotCalled(t, "NotificationRepository")
	reminderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestSendDueRemindersCommandHandler_Handle_NoPhoneNeverCreatesReminder(t *testing.T) {
	ctx := t.Context()

	sorted := sweepNow.Add(-10 * 24 * time.Hour)
	params := defaultOrderParams(t)
	params.Status = order.Ready
	params.RoutingStatus = order.RoutingAssigned
	params.SortedAt = &sorted
	params.CustomerPhone = nil
	shelfOrder := restoreTestOrder(t, params)

	cmd, err := commands.NewSendDueRemindersCommand(sweepNow)
	require.NoError(t, err)

	reminderRepo := new(MockReminderRepository)
	orderUoW := new(MockReminderSweepUoW)

	orderUoW.On("Begin", ctx).Return(nil).Once()
	orderUoW.On("ReminderRepository").Return(reminderRepo).Once()
	reminderRepo.On("GetByOrderID", ctx, shelfOrder.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", shelfOrder.ID())).
		Once()
	orderUoW.On("Commit", ctx).Return(nil).Once()
	orderUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReminderSweepUoWFactory)
	factory.On("Create").Return(worklistUoW(ctx, []*order.Order{shelfOrder})).Once()
	factory.On("Create").Return(orderUoW).Once()

	handler := commands.NewSendDueRemindersCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	reminderRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestSendDueRemindersCommandHandler_Handle_FailedOrderDoesNotSinkTheSweep(t *testing.T) {
	ctx := t.Context()

	brokenOrder := readyOrderOnShelf(t, 8)
	healthyOrder := readyOrderOnShelf(t, 8)

	cmd, err := commands.NewSendDueRemindersCommand(sweepNow)
	require.NoError(t, err)

	brokenReminderRepo := new(MockReminderRepository)
	brokenUoW := new(MockReminderSweepUoW)
	brokenUoW.On("Begin", ctx).Return(nil).Once()
	brokenUoW.On("ReminderRepository").Return(brokenReminderRepo).Once()
	brokenReminderRepo.On("GetByOrderID", ctx, brokenOrder.ID()).
		Return(nil, errors.New("database error")).
		Once()
	brokenUoW.On("Rollback", ctx).Return(nil).Once()

	healthyReminderRepo := new(MockReminderRepository)
	healthyNotificationRepo := new(MockNotificationRepository)
	healthyUoW := new(MockReminderSweepUoW)
	healthyUoW.On("Begin", ctx).Return(nil).Once()
	healthyUoW.On("ReminderRepository").Return(healthyReminderRepo)
	healthyUoW.On("NotificationRepository").Return(healthyNotificationRepo).Once()
	healthyReminderRepo.On("GetByOrderID", ctx, healthyOrder.ID()).
		Return(nil, errs.NewObjectNotFoundError("orderID", healthyOrder.ID())).
		Once()
	healthyNotificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once()
	healthyReminderRepo.On("Add", ctx, mock.AnythingOfType("*reminder.Reminder")).Return(nil).Once()
	healthyUoW.On("Commit", ctx).Return(nil).Once()
	healthyUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockReminderSweepUoWFactory)
	factory.On("Create").Return(worklistUoW(ctx, []*order.Order{brokenOrder, healthyOrder})).Once()
	factory.On("Create").Return(brokenUoW).Once()
	factory.On("Create").Return(healthyUoW).Once()

	handler := commands.NewSendDueRemindersCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, brokenOrder.ID(), result.Failures[0].OrderID)
	assert.EqualError(t, result.Failures[0].Reason, "database error")
	brokenUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestNewSendDueRemindersCommand_ZeroTimeRejected(t *testing.T) {
	_, err := commands.NewSendDueRemindersCommand(time.Time{})
	require.Error(t, err)
}
