// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundryops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition that covers the aggregates
// it touches, which keeps test doubles small and intent visible.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BranchRepoFactory provides access to the branch repository within a transaction.
	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	// ProcessingBatchRepoFactory provides access to the processing batch repository
	// within a transaction.
	ProcessingBatchRepoFactory interface {
		ProcessingBatchRepository() ports.ProcessingBatchRepository
	}

	// TransferBatchRepoFactory provides access to the transfer batch repository
	// within a transaction.
	TransferBatchRepoFactory interface {
		TransferBatchRepository() ports.TransferBatchRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ReminderRepoFactory provides access to the reminder repository within a transaction.
	ReminderRepoFactory interface {
		ReminderRepository() ports.ReminderRepository
	}

	// NotificationRepoFactory provides access to the notification outbox repository
	// within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations, such as
	// classification and payment recording.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderBranchUoW manages transactions for operations that read branch
	// configuration while mutating orders: intake and routing.
	OrderBranchUoW interface {
		TxManager
		OrderRepoFactory
		BranchRepoFactory
	}

	// OrderBranchUoWFactory creates new order/branch unit of work instances.
	OrderBranchUoWFactory interface {
		Create() OrderBranchUoW
	}

	// OrderNotificationUoW manages transactions that mutate an order and
	// append to the notification outbox atomically.
	OrderNotificationUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
	}

	// OrderNotificationUoWFactory creates new order/notification unit of work instances.
	OrderNotificationUoWFactory interface {
		Create() OrderNotificationUoW
	}

	// ProcessingBatchUoW manages transactions for batch creation and start,
	// which touch the batch document and its member orders together.
	ProcessingBatchUoW interface {
		TxManager
		ProcessingBatchRepoFactory
		OrderRepoFactory
	}

	// ProcessingBatchUoWFactory creates new processing batch unit of work instances.
	ProcessingBatchUoWFactory interface {
		Create() ProcessingBatchUoW
	}

	// BatchCompletionUoW manages transactions for batch completion, which
	// additionally reads branch sorting windows and enqueues notifications.
	BatchCompletionUoW interface {
		TxManager
		ProcessingBatchRepoFactory
		OrderRepoFactory
		BranchRepoFactory
		NotificationRepoFactory
	}

	// BatchCompletionUoWFactory creates new batch completion unit of work instances.
	BatchCompletionUoWFactory interface {
		Create() BatchCompletionUoW
	}

	// DispatchUoW manages transactions for the transfer dispatch sweep.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		TransferBatchRepoFactory
		DriverRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// ArrivalUoW manages transactions for transfer arrival, which updates the
	// transfer batch and its member orders together.
	ArrivalUoW interface {
		TxManager
		TransferBatchRepoFactory
		OrderRepoFactory
	}

	// ArrivalUoWFactory creates new arrival unit of work instances.
	ArrivalUoWFactory interface {
		Create() ArrivalUoW
	}

	// ReminderSweepUoW manages transactions for the collection reminder sweep.
	ReminderSweepUoW interface {
		TxManager
		OrderRepoFactory
		ReminderRepoFactory
		NotificationRepoFactory
	}

	// ReminderSweepUoWFactory creates new reminder sweep unit of work instances.
	ReminderSweepUoWFactory interface {
		Create() ReminderSweepUoW
	}
)
