package order_test

import (
	"testing"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allRoutingStatuses() []order.RoutingStatus {
	return []order.RoutingStatus{
		order.RoutingUnrouted,
		order.RoutingPending,
		order.RoutingAssigned,
		order.RoutingProcessing,
		order.RoutingReadyForReturn,
		order.RoutingReceived,
		order.RoutingInTransit,
	}
}

func TestRoutingStatus_Validate(t *testing.T) {
	t.Run("should validate every named routing status", func(t *testing.T) {
		for _, s := range allRoutingStatuses() {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		for _, s := range []order.RoutingStatus{order.RoutingUnknown, order.RoutingStatus(-1), order.RoutingStatus(42)} {
			err := s.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "routing status is invalid")
		}
	})
}

func TestRoutingStatus_String(t *testing.T) {
	t.Run("should use the persisted wire names", func(t *testing.T) {
		expected := map[order.RoutingStatus]string{
			order.RoutingUnrouted:       "unrouted",
			order.RoutingPending:        "pending",
			order.RoutingAssigned:       "assigned",
			order.RoutingProcessing:     "processing",
			order.RoutingReadyForReturn: "ready_for_return",
			order.RoutingReceived:       "received",
			order.RoutingInTransit:      "in_transit",
		}
		for s, str := range expected {
			assert.Equal(t, str, s.String())
		}
	})

	t.Run("should fall back to unknown", func(t *testing.T) {
		assert.Equal(t, "unknown", order.RoutingUnknown.String())
		assert.Equal(t, "unknown", order.RoutingStatus(42).String())
	})
}

func TestRoutingStatusFromString(t *testing.T) {
	t.Run("should round-trip every routing status", func(t *testing.T) {
		for _, s := range allRoutingStatuses() {
			parsed, err := order.RoutingStatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject names outside the domain", func(t *testing.T) {
		for _, raw := range []string{"", "unknown", "Pending", "IN_TRANSIT", "shipped"} {
			parsed, err := order.RoutingStatusFromString(raw)

			require.Error(t, err, "raw %q", raw)
			assert.Equal(t, order.RoutingUnknown, parsed)
		}
	})
}

func TestRoutingStatus_IsTransferLeg(t *testing.T) {
	t.Run("should flag only the two transfer legs", func(t *testing.T) {
		assert.True(t, order.RoutingPending.IsTransferLeg())
		assert.True(t, order.RoutingInTransit.IsTransferLeg())

		for _, s := range []order.RoutingStatus{
			order.RoutingUnrouted, order.RoutingAssigned, order.RoutingProcessing,
			order.RoutingReadyForReturn, order.RoutingReceived,
		} {
			assert.False(t, s.IsTransferLeg(), "routing status %s", s)
		}
	})
}
