package cmd

import (
	"log/slog"

	"laundryops/internal/adapters/out/postgres"
	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/ports"
	"laundryops/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Every handler receives the
// narrowest unit of work factory its transaction needs, all backed by the
// same GORM factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderBranchUoWFactory = FuncOrderBranchUoWFactory(func() commands.OrderBranchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRouteOrderCommandHandler() commands.RouteOrderCommandHandler {
	var f commands.OrderBranchUoWFactory = FuncOrderBranchUoWFactory(func() commands.OrderBranchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRouteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClassifyOrderCommandHandler() commands.ClassifyOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClassifyOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderNotificationUoWFactory = FuncOrderNotificationUoWFactory(func() commands.OrderNotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProcessingBatchCommandHandler() commands.CreateProcessingBatchCommandHandler {
	var f commands.ProcessingBatchUoWFactory = FuncProcessingBatchUoWFactory(func() commands.ProcessingBatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProcessingBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateStartProcessingBatchCommandHandler() commands.StartProcessingBatchCommandHandler {
	var f commands.ProcessingBatchUoWFactory = FuncProcessingBatchUoWFactory(func() commands.ProcessingBatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartProcessingBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteProcessingBatchCommandHandler() commands.CompleteProcessingBatchCommandHandler {
	var f commands.BatchCompletionUoWFactory = FuncBatchCompletionUoWFactory(func() commands.BatchCompletionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteProcessingBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchTransfersCommandHandler() commands.DispatchTransfersCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchTransfersCommandHandler(f)
}

func (c *CompositionRoot) CreateArriveTransferCommandHandler() commands.ArriveTransferCommandHandler {
	var f commands.ArrivalUoWFactory = FuncArrivalUoWFactory(func() commands.ArrivalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArriveTransferCommandHandler(f)
}

func (c *CompositionRoot) CreateSendDueRemindersCommandHandler() commands.SendDueRemindersCommandHandler {
	var f commands.ReminderSweepUoWFactory = FuncReminderSweepUoWFactory(func() commands.ReminderSweepUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendDueRemindersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchMetricsQueryHandler() queries.GetBranchMetricsQueryHandler {
	return queries.NewGetBranchMetricsQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs against the shared handlers and
// the broker publisher.
func (c *CompositionRoot) CreateJobManager(publisher ports.NotificationPublisher, logger *slog.Logger) *jobs.JobManager {
	var f jobs.NotificationUoWFactory = FuncNotificationUoWFactory(func() jobs.NotificationUoW {
		return c.uowFactory.Create()
	})

	return jobs.NewJobManager(
		c.CreateDispatchTransfersCommandHandler(),
		c.CreateSendDueRemindersCommandHandler(),
		f,
		publisher,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderBranchUoWFactory func() commands.OrderBranchUoW

func (f FuncOrderBranchUoWFactory) Create() commands.OrderBranchUoW {
	return f()
}

type FuncOrderNotificationUoWFactory func() commands.OrderNotificationUoW

func (f FuncOrderNotificationUoWFactory) Create() commands.OrderNotificationUoW {
	return f()
}

type FuncProcessingBatchUoWFactory func() commands.ProcessingBatchUoW

func (f FuncProcessingBatchUoWFactory) Create() commands.ProcessingBatchUoW {
	return f()
}

type FuncBatchCompletionUoWFactory func() commands.BatchCompletionUoW

func (f FuncBatchCompletionUoWFactory) Create() commands.BatchCompletionUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncArrivalUoWFactory func() commands.ArrivalUoW

func (f FuncArrivalUoWFactory) Create() commands.ArrivalUoW {
	return f()
}

type FuncReminderSweepUoWFactory func() commands.ReminderSweepUoW

func (f FuncReminderSweepUoWFactory) Create() commands.ReminderSweepUoW {
	return f()
}

type FuncNotificationUoWFactory func() jobs.NotificationUoW

func (f FuncNotificationUoWFactory) Create() jobs.NotificationUoW {
	return f()
}
