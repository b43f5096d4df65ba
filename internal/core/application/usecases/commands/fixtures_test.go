package commands_test

import (
	"testing"
	"time"

	"laundryops/internal/core/domain/model/branch"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// Shared fixture builders for the command handler tests.

var testIntakeTime = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func mustPhone(t *testing.T, raw string) kernel.Phone {
	t.Helper()

	phone, err := kernel.NewPhone(raw)
	require.NoError(t, err)
	return phone
}

// defaultOrderParams returns restore parameters for a freshly taken-in order.
// Tests mutate the returned struct to set up the state they need.
func defaultOrderParams(t *testing.T) order.RestoreOrderParams {
	t.Helper()

	phone := mustPhone(t, "+60123456789")
	return order.RestoreOrderParams{
		ID:                  kernel.NewUUID(),
		TagNumber:           "ORD-KL01-20260314-0007",
		OwningBranchID:      kernel.NewUUID(),
		Status:              order.Received,
		RoutingStatus:       order.RoutingUnrouted,
		Classification:      order.CustomerCollects,
		ClassificationBasis: order.BasisAuto,
		CustomerName:        "Aisyah Rahman",
		CustomerPhone:       &phone,
		ItemCount:           4,
		TotalAmount:         kernel.MustMoneyFromString("86.00"),
		PaidAmount:          kernel.ZeroMoney(),
		PaymentStatus:       order.PaymentUnpaid,
		CreatedAt:           testIntakeTime,
	}
}

func restoreTestOrder(t *testing.T, params order.RestoreOrderParams) *order.Order {
	t.Helper()

	restored, err := order.RestoreOrder(params)
	require.NoError(t, err)
	return restored
}

func newTestMainStore(t *testing.T) *branch.Branch {
	t.Helper()

	mainStore, err := branch.NewBranch(kernel.NewUUID(), "Central Plant", "KL01", branch.MainStore, nil, 6)
	require.NoError(t, err)
	return mainStore
}

func newTestSatellite(t *testing.T, mainStoreID kernel.UUID) *branch.Branch {
	t.Helper()

	satellite, err := branch.NewBranch(kernel.NewUUID(), "Bangsar Drop-off", "BG02", branch.Satellite, &mainStoreID, 6)
	require.NoError(t, err)
	return satellite
}
