package queries

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var (
	ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
		"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
	)

	// ErrOrderSummaryNotFound is returned when no order carries the
	// requested identifier.
	ErrOrderSummaryNotFound = errors.New("no order found")
)

// GetOrderSummaryQuery retrieves the staff-dashboard view of one order:
// where the garments are, how the order will get back to the customer, and
// how much of it is paid for.
//
// Example:
//
//	query, err := NewGetOrderSummaryQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid summary query: %w", err)
//	}
//
//	summary, err := handler.Handle(ctx, query)
//	if errors.Is(err, ErrOrderSummaryNotFound) {
//	    return echo.NewHTTPError(http.StatusNotFound)
//	}
type GetOrderSummaryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a summary query for the given order.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderSummaryQueryIsNotConstructed if validation fails.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the order the summary is requested for.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderSummaryQueryResponse is the order read model for the staff
// dashboard. Statuses and classifications carry their wire names.
type GetOrderSummaryQueryResponse struct {
	ID                  kernel.UUID
	TagNumber           string
	OwningBranchID      kernel.UUID
	ProcessingBranchID  *kernel.UUID
	Status              string
	RoutingStatus       string
	AssignedStage       *string
	Classification      string
	ClassificationBasis string
	CustomerName        string
	CustomerPhone       *string
	ItemCount           int
	TotalAmount         kernel.Money
	PaidAmount          kernel.Money
	PaymentStatus       string
	CreatedAt           time.Time
	ArrivedAt           *time.Time
	SortedAt            *time.Time
	EarliestDeliveryAt  *time.Time
	EstimatedReadyAt    *time.Time
}
