package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler reads one order's dashboard view from the
// database. Uses a direct SQL query for optimal read performance in the
// CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderSummaryQueryHandler(db)
//	query, _ := NewGetOrderSummaryQuery(orderID)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order summary: %v", err)
//	    return err
//	}
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary
// queries. Requires a GORM database connection for query execution.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the summary query for one order.
// Returns ErrOrderSummaryNotFound when the order does not exist.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	var summary GetOrderSummaryQueryResponse

	if err := query.Validate(); err != nil {
		return summary, err
	}

	var id uuid.UUID
	var processingBranchID *uuid.UUID
	var owningBranchID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tag_number,
			owning_branch_id,
			processing_branch_id,
			status,
			routing_status,
			assigned_stage,
			classification,
			classification_basis,
			customer_name,
			customer_phone,
			item_count,
			total_amount,
			paid_amount,
			payment_status,
			created_at,
			arrived_at,
			sorted_at,
			earliest_delivery_at,
			estimated_ready_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&summary.TagNumber,
		&owningBranchID,
		&processingBranchID,
		&summary.Status,
		&summary.RoutingStatus,
		&summary.AssignedStage,
		&summary.Classification,
		&summary.ClassificationBasis,
		&summary.CustomerName,
		&summary.CustomerPhone,
		&summary.ItemCount,
		&summary.TotalAmount,
		&summary.PaidAmount,
		&summary.PaymentStatus,
		&summary.CreatedAt,
		&summary.ArrivedAt,
		&summary.SortedAt,
		&summary.EarliestDeliveryAt,
		&summary.EstimatedReadyAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return summary, ErrOrderSummaryNotFound
	}
	if err != nil {
		return summary, err
	}

	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return summary, err
	}
	if summary.OwningBranchID, err = kernel.UUIDFromBytes(owningBranchID[:]); err != nil {
		return summary, err
	}
	if processingBranchID != nil {
		converted, convErr := kernel.UUIDFromBytes(processingBranchID[:])
		if convErr != nil {
			return summary, convErr
		}
		summary.ProcessingBranchID = &converted
	}

	return summary, nil
}
