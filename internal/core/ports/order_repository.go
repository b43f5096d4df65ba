package ports

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
)

// ErrBulkUpdateIncomplete reports that a bulk order update matched fewer rows
// than it targeted, meaning a member changed state underneath the batch. The
// enclosing transaction must roll back.
var ErrBulkUpdateIncomplete = errors.New("bulk order update did not reach every targeted order")

// BulkOrderUpdate describes one uniform move applied to a set of orders.
// Implementations apply it in bounded chunks inside the current transaction
// and compare affected rows against the chunk size; a mismatch surfaces as
// ErrBulkUpdateIncomplete. Optional fields are left untouched when nil.
type BulkOrderUpdate struct {
	// IDs are the orders to move.
	IDs []kernel.UUID

	// ExpectedStatus guards the write: rows no longer at this garment status
	// are skipped, which the affected-row check then turns into a failure.
	ExpectedStatus order.Status

	// NewStatus is the garment status every targeted order moves to.
	NewStatus order.Status

	// ExpectedRoutingStatus additionally guards the routing machine when set.
	ExpectedRoutingStatus *order.RoutingStatus

	// NewRoutingStatus moves the routing machine when set.
	NewRoutingStatus *order.RoutingStatus

	// AssignedStage records the workstation stage the orders now sit in.
	AssignedStage *order.Status

	// SortedAt stamps sorting completion when set.
	SortedAt *time.Time

	// EarliestDeliveryAt stamps the earliest delivery time when set.
	EarliestDeliveryAt *time.Time

	// ArrivedAt stamps arrival at the processing branch when set.
	ArrivedAt *time.Time
}

// OrderRepository defines the persistence contract for order aggregates.
// Beyond single-aggregate reads and writes it carries the bulk and atomic
// operations the routing engine and payment writer depend on.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByIDs retrieves the orders with the given identifiers.
	// Every identifier must resolve; a missing row is an ObjectNotFound error.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// GetAllInPendingRouting retrieves orders waiting for a transfer run to
	// their processing branch. Used by the dispatch sweep, which groups the
	// result by owning branch.
	GetAllInPendingRouting(ctx context.Context) ([]*order.Order, error)

	// GetAllAwaitingCollection retrieves ready orders still on the collection
	// shelf. Used by the reminder sweep.
	GetAllAwaitingCollection(ctx context.Context) ([]*order.Order, error)

	// UpdateAllByIDs applies one uniform move to a set of orders.
	//
	// Business rules:
	//   - Runs inside the current transaction; the caller owns commit/rollback
	//   - Chunked into bounded IN (...) statements regardless of batch size
	//   - Affected rows are compared per chunk; any mismatch returns
	//     ErrBulkUpdateIncomplete so the whole batch rolls back
	//
	// Example:
	//   processing := order.RoutingProcessing
	//   err := repo.UpdateAllByIDs(ctx, ports.BulkOrderUpdate{
	//       IDs:              batch.OrderIDs(),
	//       ExpectedStatus:   order.Queued,
	//       NewStatus:        order.Washing,
	//       NewRoutingStatus: &processing,
	//   })
	UpdateAllByIDs(ctx context.Context, update BulkOrderUpdate) error

	// NextTagSequence atomically increments and returns the per-branch,
	// per-day counter used to build tag numbers.
	NextTagSequence(ctx context.Context, branchID kernel.UUID, day time.Time) (int64, error)

	// IncrementPaid atomically adds amount to the order's paid total and
	// returns the total after the increment, read under the row lock.
	IncrementPaid(ctx context.Context, orderID kernel.UUID, amount kernel.Money) (kernel.Money, error)

	// SetPaymentStatus persists a recomputed derived payment status.
	SetPaymentStatus(ctx context.Context, orderID kernel.UUID, status order.PaymentStatus) error

	// AddPayment appends a ledger row for a received payment.
	AddPayment(ctx context.Context, record *order.PaymentRecord) error

	// AddClassificationOverride appends a classification override audit record.
	AddClassificationOverride(ctx context.Context, record *order.ClassificationOverride) error
}
