package commands_test

import (
	"testing"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/batch"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/ports"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingBatchAtStage(t *testing.T, stage order.Status, orderIDs []kernel.UUID) *batch.ProcessingBatch {
	t.Helper()

	pendingBatch, err := batch.NewProcessingBatch(
		kernel.NewUUID(), kernel.NewUUID(), stage, orderIDs, nil, testIntakeTime,
	)
	require.NoError(t, err)
	return pendingBatch
}

func TestStartProcessingBatchCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	startingBatch := pendingBatchAtStage(t, order.Washing, orderIDs)

	cmd, err := commands.NewStartProcessingBatchCommand(startingBatch.ID())
	require.NoError(t, err)

	batchRepo := new(MockProcessingBatchRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockProcessingBatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProcessingBatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", ctx, startingBatch.ID()).Return(startingBatch, nil).Once(),
		batchRepo.On("Update", ctx, mock.AnythingOfType("*batch.ProcessingBatch")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateAllByIDs", ctx, mock.AnythingOfType("ports.BulkOrderUpdate")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProcessingBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartProcessingBatchCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, batch.InProgress, startingBatch.Status())

	// Washing is fed by the queue; every member moves queued -> washing
	// and is booked into the stage with routing processing.
	bulkCall := orderRepo.Calls[0]
	update := bulkCall.Arguments[1].(ports.BulkOrderUpdate)
	assert.Equal(t, orderIDs, update.IDs)
	assert.Equal(t, order.Queued, update.ExpectedStatus)
	assert.Equal(t, order.Washing, update.NewStatus)
	require.NotNil(t, update.NewRoutingStatus)
	assert.Equal(t, order.RoutingProcessing, *update.NewRoutingStatus)
	require.NotNil(t, update.AssignedStage)
	assert.Equal(t, order.Washing, *update.AssignedStage)
}

func TestStartProcessingBatchCommandHandler_Handle_BatchNotFound(t *testing.T) {
	ctx := t.Context()

	batchID := kernel.NewUUID()
	cmd, err := commands.NewStartProcessingBatchCommand(batchID)
	require.NoError(t, err)

	batchRepo := new(MockProcessingBatchRepository)
	uow := new(MockProcessingBatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProcessingBatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", ctx, batchID).Return(nil, errs.NewObjectNotFoundError("batchID", batchID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProcessingBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartProcessingBatchCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoBatchFound)
}

func TestStartProcessingBatchCommandHandler_Handle_AlreadyStartedRejected(t *testing.T) {
	ctx := t.Context()

	orderIDs := []kernel.UUID{kernel.NewUUID()}
	startingBatch := pendingBatchAtStage(t, order.Washing, orderIDs)
	require.NoError(t, startingBatch.Start(testIntakeTime))

	cmd, err := commands.NewStartProcessingBatchCommand(startingBatch.ID())
	require.NoError(t, err)

	batchRepo := new(MockProcessingBatchRepository)
	uow := new(MockProcessingBatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProcessingBatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", ctx, startingBatch.ID()).Return(startingBatch, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProcessingBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartProcessingBatchCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateTransitionIsInvalid)
	batchRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestStartProcessingBatchCommandHandler_Handle_DriftedMemberFailsWholeStart(t *testing.T) {
	ctx := t.Context()

	orderIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	startingBatch := pendingBatchAtStage(t, order.Drying, orderIDs)

	cmd, err := commands.NewStartProcessingBatchCommand(startingBatch.ID())
	require.NoError(t, err)

	batchRepo := new(MockProcessingBatchRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockProcessingBatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProcessingBatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Get", ctx, startingBatch.ID()).Return(startingBatch, nil).Once(),
		batchRepo.On("Update", ctx, mock.AnythingOfType("*batch.ProcessingBatch")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateAllByIDs", ctx, mock.AnythingOfType("ports.BulkOrderUpdate")).
			Return(ports.ErrBulkUpdateIncomplete).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProcessingBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartProcessingBatchCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, ports.ErrBulkUpdateIncomplete)
	uow.AssertNotCalled(t, "Commit", ctx)
}
