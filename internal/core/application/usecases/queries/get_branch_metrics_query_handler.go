package queries

import (
	"context"

	"laundryops/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetBranchMetricsQueryHandler reads one branch's load picture straight from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern; nothing here goes through the aggregates.
//
// Example:
//
//	handler := NewGetBranchMetricsQueryHandler(db)
//	query, _ := NewGetBranchMetricsQuery(branchID)
//
//	metrics, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get branch metrics: %v", err)
//	    return err
//	}
type GetBranchMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetBranchMetricsQueryHandler creates a handler for branch metrics
// queries. Requires a GORM database connection for query execution.
func NewGetBranchMetricsQueryHandler(db *gorm.DB) GetBranchMetricsQueryHandler {
	return GetBranchMetricsQueryHandler{db: db}
}

// Handle executes the metrics query for one branch.
//
// Queue depths count the orders the branch is processing, grouped by
// workstation stage. The routing counters look at the branch from both
// sides: pending and in-transit count the branch's own orders waiting for or
// riding a transfer, ready-for-return counts finished orders the branch
// processed for its satellites.
func (h GetBranchMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetBranchMetricsQuery,
) (GetBranchMetricsQueryResponse, error) {
	response := GetBranchMetricsQueryResponse{
		BranchID:    query.BranchID(),
		StageDepths: make(map[string]int),
	}

	if err := query.Validate(); err != nil {
		return response, err
	}

	workstationStages := []order.Status{
		order.Queued, order.Washing, order.Drying,
		order.Ironing, order.QualityCheck, order.Packaging,
	}
	stageNames := make([]string, len(workstationStages))
	for i, stage := range workstationStages {
		stageNames[i] = stage.String()
		response.StageDepths[stage.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE processing_branch_id = ?
		  AND status IN ?
		GROUP BY status
	`, query.BranchID().String(), stageNames).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	for rows.Next() {
		var stage string
		var depth int

		if err = rows.Scan(&stage, &depth); err != nil {
			return response, err
		}
		response.StageDepths[stage] = depth
	}
	if err = rows.Err(); err != nil {
		return response, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE owning_branch_id = ? AND routing_status = ?),
			COUNT(*) FILTER (WHERE owning_branch_id = ? AND routing_status = ?),
			COUNT(*) FILTER (WHERE processing_branch_id = ? AND routing_status = ?)
		FROM orders
	`,
		query.BranchID().String(), order.RoutingPending.String(),
		query.BranchID().String(), order.RoutingInTransit.String(),
		query.BranchID().String(), order.RoutingReadyForReturn.String(),
	).Row().Scan(&response.PendingRouting, &response.InTransit, &response.ReadyForReturn)
	if err != nil {
		return response, err
	}

	return response, nil
}
