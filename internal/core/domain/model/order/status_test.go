package order_test

import (
	"fmt"
	"testing"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Received,
		order.Inspection,
		order.Queued,
		order.Washing,
		order.Drying,
		order.Ironing,
		order.QualityCheck,
		order.Packaging,
		order.QueuedForDelivery,
		order.Ready,
		order.OutForDelivery,
		order.Delivered,
		order.Collected,
		order.Disposed,
		order.Cancelled,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all defined statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(16),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Received, "received"},
			{order.Inspection, "inspection"},
			{order.Queued, "queued"},
			{order.Washing, "washing"},
			{order.Drying, "drying"},
			{order.Ironing, "ironing"},
			{order.QualityCheck, "quality_check"},
			{order.Packaging, "packaging"},
			{order.QueuedForDelivery, "queued_for_delivery"},
			{order.Ready, "ready"},
			{order.OutForDelivery, "out_for_delivery"},
			{order.Delivered, "delivered"},
			{order.Collected, "collected"},
			{order.Disposed, "disposed"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(999)} {
			assert.Equal(t, "unknown", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should parse %s", status.String()), func(t *testing.T) {
				parsed, err := order.StatusFromString(status.String())

				require.NoError(t, err)
				assert.Equal(t, status, parsed)
			})
		}
	})

	t.Run("should reject unknown wire names", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "Ready", "READY", "shampooing"} {
			t.Run(fmt.Sprintf("should reject %q", raw), func(t *testing.T) {
				parsed, err := order.StatusFromString(raw)

				require.Error(t, err)
				assert.Equal(t, order.Unknown, parsed)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should allow every move in the pipeline table", func(t *testing.T) {
		moves := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Received, order.Queued},
			{order.Queued, order.Washing},
			{order.Washing, order.Drying},
			{order.Drying, order.Ironing},
			{order.Ironing, order.QualityCheck},
			{order.QualityCheck, order.Packaging},
			{order.QualityCheck, order.Washing},
			{order.Packaging, order.Ready},
			{order.Ready, order.OutForDelivery},
			{order.Ready, order.Collected},
			{order.OutForDelivery, order.Delivered},
		}

		for _, move := range moves {
			t.Run(fmt.Sprintf("should allow %s to %s", move.from, move.to), func(t *testing.T) {
				assert.True(t, move.from.CanTransitionTo(move.to))
			})
		}
	})

	t.Run("should never allow a self-loop", func(t *testing.T) {
		for _, status := range allStatuses() {
			assert.False(t, status.CanTransitionTo(status),
				"%s must not transition to itself", status)
		}
	})

	t.Run("should reject skipping a stage", func(t *testing.T) {
		assert.False(t, order.Received.CanTransitionTo(order.Washing))
		assert.False(t, order.Washing.CanTransitionTo(order.Ironing))
		assert.False(t, order.Ironing.CanTransitionTo(order.Packaging))
		assert.False(t, order.Packaging.CanTransitionTo(order.Delivered))
	})

	t.Run("should reject moving backwards outside failed QA", func(t *testing.T) {
		assert.False(t, order.Drying.CanTransitionTo(order.Washing))
		assert.False(t, order.Ready.CanTransitionTo(order.Packaging))
		assert.False(t, order.Ironing.CanTransitionTo(order.Drying))
	})

	t.Run("should keep policy statuses out of the table entirely", func(t *testing.T) {
		policyStatuses := []order.Status{
			order.Inspection,
			order.QueuedForDelivery,
			order.Disposed,
			order.Cancelled,
		}

		for _, policy := range policyStatuses {
			t.Run(fmt.Sprintf("no table rows touch %s", policy), func(t *testing.T) {
				assert.Empty(t, policy.ValidNextStatuses())
				for _, status := range allStatuses() {
					assert.False(t, status.CanTransitionTo(policy),
						"%s must not reach %s through the table", status, policy)
				}
			})
		}
	})
}

func TestStatus_ValidNextStatuses(t *testing.T) {
	t.Run("should return empty sets for terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Delivered, order.Collected} {
			assert.Empty(t, status.ValidNextStatuses())
		}
	})

	t.Run("should give quality_check exactly two successors", func(t *testing.T) {
		next := order.QualityCheck.ValidNextStatuses()

		assert.Len(t, next, 2)
		assert.Contains(t, next, order.Packaging)
		assert.Contains(t, next, order.Washing)
	})

	t.Run("should give every other processing stage at most one successor", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.QualityCheck || status == order.Ready {
				continue
			}
			assert.LessOrEqual(t, len(status.ValidNextStatuses()), 1,
				"%s should have at most one successor", status)
		}
	})

	t.Run("should let ready split into delivery and collection", func(t *testing.T) {
		next := order.Ready.ValidNextStatuses()

		assert.Len(t, next, 2)
		assert.Contains(t, next, order.OutForDelivery)
		assert.Contains(t, next, order.Collected)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should walk the whole pipeline", func(t *testing.T) {
		status := order.Received

		for _, next := range []order.Status{
			order.Queued,
			order.Washing,
			order.Drying,
			order.Ironing,
			order.QualityCheck,
			order.Packaging,
			order.Ready,
			order.Collected,
		} {
			moved, err := status.TransitionTo(next)
			require.NoError(t, err)
			status = moved
		}

		assert.Equal(t, order.Collected, status)
	})

	t.Run("should send failed QA back to washing", func(t *testing.T) {
		status, err := order.QualityCheck.TransitionTo(order.Washing)

		require.NoError(t, err)
		assert.Equal(t, order.Washing, status)
	})

	t.Run("should reject an illegal move with a conflict error", func(t *testing.T) {
		status, err := order.Received.TransitionTo(order.Drying)

		require.Error(t, err)
		assert.Equal(t, order.Unknown, status)
		require.ErrorIs(t, err, errs.ErrStateTransitionIsInvalid)
		assert.Contains(t, err.Error(), "cannot move from received to drying")
	})

	t.Run("should reject an invalid target status", func(t *testing.T) {
		_, err := order.Received.TransitionTo(order.Unknown)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should not mutate the receiver on failure", func(t *testing.T) {
		status := order.Delivered

		_, err := status.TransitionTo(order.Ready)

		require.Error(t, err)
		assert.Equal(t, order.Delivered, status)
	})
}

func TestStatus_RequiresNotification(t *testing.T) {
	t.Run("should require notification for customer-facing statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Ready, order.OutForDelivery, order.Delivered} {
			assert.True(t, status.RequiresNotification(), "%s must notify the customer", status)
		}
	})

	t.Run("should not require notification for any other status", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.Ready || status == order.OutForDelivery || status == order.Delivered {
				continue
			}
			assert.False(t, status.RequiresNotification(), "%s must not notify the customer", status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []order.Status{order.Delivered, order.Collected, order.Disposed, order.Cancelled}

	t.Run("should mark the four exit statuses terminal", func(t *testing.T) {
		for _, status := range terminal {
			assert.True(t, status.IsTerminal(), "%s is terminal", status)
		}
	})

	t.Run("should keep every pipeline status non-terminal", func(t *testing.T) {
		for _, status := range allStatuses() {
			if status == order.Delivered || status == order.Collected ||
				status == order.Disposed || status == order.Cancelled {
				continue
			}
			assert.False(t, status.IsTerminal(), "%s is not terminal", status)
		}
	})
}

func TestStatus_IsWorkstationStage(t *testing.T) {
	t.Run("should accept the six workstation stages", func(t *testing.T) {
		stages := []order.Status{
			order.Queued,
			order.Washing,
			order.Drying,
			order.Ironing,
			order.QualityCheck,
			order.Packaging,
		}

		for _, stage := range stages {
			assert.True(t, stage.IsWorkstationStage(), "%s is a workstation stage", stage)
		}
	})

	t.Run("should reject statuses outside the workstations", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Received,
			order.Inspection,
			order.QueuedForDelivery,
			order.Ready,
			order.OutForDelivery,
			order.Delivered,
			order.Collected,
			order.Unknown,
		} {
			assert.False(t, status.IsWorkstationStage(), "%s is not a workstation stage", status)
		}
	})
}

func TestStatus_Group(t *testing.T) {
	t.Run("should group statuses for reporting", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected order.Group
		}{
			{order.Received, order.GroupPending},
			{order.Inspection, order.GroupPending},
			{order.Queued, order.GroupPending},
			{order.Washing, order.GroupProcessing},
			{order.Drying, order.GroupProcessing},
			{order.Ironing, order.GroupProcessing},
			{order.QualityCheck, order.GroupProcessing},
			{order.Packaging, order.GroupProcessing},
			{order.QueuedForDelivery, order.GroupProcessing},
			{order.Ready, order.GroupReady},
			{order.OutForDelivery, order.GroupReady},
			{order.Delivered, order.GroupCompleted},
			{order.Collected, order.GroupCompleted},
			{order.Disposed, order.GroupCompleted},
			{order.Cancelled, order.GroupCompleted},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should group %s as %s", tc.status, tc.expected), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.Group())
			})
		}
	})
}
