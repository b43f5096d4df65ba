package queries

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var (
	ErrGetBranchMetricsQueryIsNotConstructed = errors.New(
		"GetBranchMetricsQuery must be created via NewGetBranchMetricsQuery constructor",
	)
)

// GetBranchMetricsQuery retrieves the operational load picture of one branch:
// how deep each workstation queue is, how many orders wait for or ride a
// transfer, and how many finished orders wait for the return leg.
//
// Example:
//
//	query, err := NewGetBranchMetricsQuery(branchID)
//	if err != nil {
//	    return fmt.Errorf("invalid metrics query: %w", err)
//	}
//
//	metrics, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get branch metrics: %w", err)
//	}
//
//	fmt.Printf("washing queue depth: %d\n", metrics.StageDepths["washing"])
type GetBranchMetricsQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBranchMetricsQuery creates a metrics query for the given branch.
func NewGetBranchMetricsQuery(branchID kernel.UUID) (GetBranchMetricsQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetBranchMetricsQuery{}, err
	}

	return GetBranchMetricsQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBranchMetricsQueryIsNotConstructed if validation fails.
func (q GetBranchMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchMetricsQueryIsNotConstructed)
}

// BranchID returns the branch the metrics are requested for.
func (q GetBranchMetricsQuery) BranchID() kernel.UUID {
	return q.branchID
}

// GetBranchMetricsQueryResponse is the read model of one branch's load.
//
// StageDepths maps workstation stage wire names ("queued", "washing",
// "drying", "ironing", "quality_check", "packaging") to the number of orders
// currently held at that stage; stages with no orders carry a zero entry.
type GetBranchMetricsQueryResponse struct {
	BranchID       kernel.UUID
	StageDepths    map[string]int
	PendingRouting int
	InTransit      int
	ReadyForReturn int
}
