package commands_test

import (
	"context"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/batch"
	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/driver"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/notification"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/reminder"
	"laundryops/internal/core/domain/model/transfer"
	"laundryops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared repository and unit-of-work test doubles for the command handler
// tests. The repositories mirror the ports interfaces; each unit of work
// mirrors one composition from repositories.go.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInPendingRouting(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingCollection(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateAllByIDs(ctx context.Context, update ports.BulkOrderUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockOrderRepository) NextTagSequence(
	ctx context.Context,
	branchID kernel.UUID,
	day time.Time,
) (int64, error) {
	args := m.Called(ctx, branchID, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) IncrementPaid(
	ctx context.Context,
	orderID kernel.UUID,
	amount kernel.Money,
) (kernel.Money, error) {
	args := m.Called(ctx, orderID, amount)
	return args.Get(0).(kernel.Money), args.Error(1)
}

func (m *MockOrderRepository) SetPaymentStatus(
	ctx context.Context,
	orderID kernel.UUID,
	status order.PaymentStatus,
) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) AddPayment(ctx context.Context, record *order.PaymentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOrderRepository) AddClassificationOverride(
	ctx context.Context,
	record *order.ClassificationOverride,
) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) Add(ctx context.Context, b *branch.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) Update(ctx context.Context, b *branch.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

type MockProcessingBatchRepository struct{ mock.Mock }

func (m *MockProcessingBatchRepository) Add(ctx context.Context, b *batch.ProcessingBatch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockProcessingBatchRepository) Update(ctx context.Context, b *batch.ProcessingBatch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockProcessingBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.ProcessingBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.ProcessingBatch), args.Error(1)
}

type MockTransferBatchRepository struct{ mock.Mock }

func (m *MockTransferBatchRepository) Add(ctx context.Context, b *transfer.TransferBatch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockTransferBatchRepository) Update(ctx context.Context, b *transfer.TransferBatch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockTransferBatchRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.TransferBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.TransferBatch), args.Error(1)
}

func (m *MockTransferBatchRepository) GetAllUndispatched(ctx context.Context) ([]*transfer.TransferBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transfer.TransferBatch), args.Error(1)
}

func (m *MockTransferBatchRepository) ActiveBatchCounts(
	ctx context.Context,
	driverIDs []kernel.UUID,
) (map[string]int, error) {
	args := m.Called(ctx, driverIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockTransferBatchRepository) ClaimDriver(
	ctx context.Context,
	batchID kernel.UUID,
	driverID kernel.UUID,
	now time.Time,
) (bool, error) {
	args := m.Called(ctx, batchID, driverID, now)
	return args.Bool(0), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllActiveByBranch(
	ctx context.Context,
	branchID kernel.UUID,
) ([]*driver.Driver, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockReminderRepository struct{ mock.Mock }

func (m *MockReminderRepository) Add(ctx context.Context, r *reminder.Reminder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReminderRepository) Update(ctx context.Context, r *reminder.Reminder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReminderRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*reminder.Reminder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reminder.Reminder), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) GetAllPending(
	ctx context.Context,
	limit int,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

// txManagerMock embeds the transaction lifecycle shared by every UoW mock.
type txManagerMock struct{ mock.Mock }

func (m *txManagerMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txManagerMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txManagerMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ txManagerMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderBranchUoW struct{ txManagerMock }

func (m *MockOrderBranchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderBranchUoW) BranchRepository() ports.BranchRepository {
	args := m.Called()
	return args.Get(0).(ports.BranchRepository)
}

type MockOrderBranchUoWFactory struct{ mock.Mock }

func (m *MockOrderBranchUoWFactory) Create() commands.OrderBranchUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderBranchUoW)
}

type MockOrderNotificationUoW struct{ txManagerMock }

func (m *MockOrderNotificationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockOrderNotificationUoWFactory struct{ mock.Mock }

func (m *MockOrderNotificationUoWFactory) Create() commands.OrderNotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderNotificationUoW)
}

type MockProcessingBatchUoW struct{ txManagerMock }

func (m *MockProcessingBatchUoW) ProcessingBatchRepository() ports.ProcessingBatchRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessingBatchRepository)
}

func (m *MockProcessingBatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockProcessingBatchUoWFactory struct{ mock.Mock }

func (m *MockProcessingBatchUoWFactory) Create() commands.ProcessingBatchUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcessingBatchUoW)
}

type MockBatchCompletionUoW struct{ txManagerMock }

func (m *MockBatchCompletionUoW) ProcessingBatchRepository() ports.ProcessingBatchRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessingBatchRepository)
}

func (m *MockBatchCompletionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockBatchCompletionUoW) BranchRepository() ports.BranchRepository {
	args := m.Called()
	return args.Get(0).(ports.BranchRepository)
}

func (m *MockBatchCompletionUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockBatchCompletionUoWFactory struct{ mock.Mock }

func (m *MockBatchCompletionUoWFactory) Create() commands.BatchCompletionUoW {
	args := m.Called()
	return args.Get(0).(commands.BatchCompletionUoW)
}

type MockDispatchUoW struct{ txManagerMock }

func (m *MockDispatchUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDispatchUoW) TransferBatchRepository() ports.TransferBatchRepository {
	args := m.Called()
	return args.Get(0).(ports.TransferBatchRepository)
}

func (m *MockDispatchUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockArrivalUoW struct{ txManagerMock }

func (m *MockArrivalUoW) TransferBatchRepository() ports.TransferBatchRepository {
	args := m.Called()
	return args.Get(0).(ports.TransferBatchRepository)
}

func (m *MockArrivalUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockArrivalUoWFactory struct{ mock.Mock }

func (m *MockArrivalUoWFactory) Create() commands.ArrivalUoW {
	args := m.Called()
	return args.Get(0).(commands.ArrivalUoW)
}

type MockReminderSweepUoW struct{ txManagerMock }

func (m *MockReminderSweepUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockReminderSweepUoW) ReminderRepository() ports.ReminderRepository {
	args := m.Called()
	return args.Get(0).(ports.ReminderRepository)
}

func (m *MockReminderSweepUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockReminderSweepUoWFactory struct{ mock.Mock }

func (m *MockReminderSweepUoWFactory) Create() commands.ReminderSweepUoW {
	args := m.Called()
	return args.Get(0).(commands.ReminderSweepUoW)
}
