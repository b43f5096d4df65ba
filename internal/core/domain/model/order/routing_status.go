package order

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// RoutingStatus tracks where an order is in the inter-branch routing flow,
// independent of the garment-processing Status but correlated with it by
// policy: the transfer legs (pending, in_transit) hold the garment at
// received, and ready_for_return implies queued_for_delivery.
//
// Routing flow:
//
//	unrouted ──┬──> pending ──> in_transit ──> received ──┐
//	           │    (satellite order awaiting transfer)   │
//	           │                                          v
//	           └──────────────────────────────────> assigned ──> processing
//	                (processed at the owning branch)                 │
//	                                                                 v
//	                                                         ready_for_return
//
// Only the routing policy methods on Order mutate this value; no call site
// writes it directly.
type RoutingStatus int

const (
	// RoutingUnknown represents an invalid or undefined routing status.
	RoutingUnknown RoutingStatus = iota

	// RoutingUnrouted is the initial routing status before a processing
	// branch has been resolved.
	RoutingUnrouted

	// RoutingPending indicates the order awaits transfer to its main store.
	RoutingPending

	// RoutingAssigned indicates the order is at its processing branch with a
	// workstation stage assigned or awaiting one.
	RoutingAssigned

	// RoutingProcessing indicates workstation staff are working the order.
	RoutingProcessing

	// RoutingReadyForReturn indicates processing finished and the order is in
	// its sorting window before return to the customer.
	RoutingReadyForReturn

	// RoutingReceived indicates the order arrived at the branch it needs to
	// be at, either after a transfer or after sorting.
	RoutingReceived

	// RoutingInTransit indicates the order is on a driver's transfer run.
	RoutingInTransit
)

// getRoutingStatusStrings returns a map of RoutingStatus values to their
// string representations. All values are included for string conversion.
func getRoutingStatusStrings() map[RoutingStatus]string {
	return map[RoutingStatus]string{
		RoutingUnknown:        "unknown",
		RoutingUnrouted:       "unrouted",
		RoutingPending:        "pending",
		RoutingAssigned:       "assigned",
		RoutingProcessing:     "processing",
		RoutingReadyForReturn: "ready_for_return",
		RoutingReceived:       "received",
		RoutingInTransit:      "in_transit",
	}
}

// getValidRoutingStatusStrings returns a map of only valid RoutingStatus values.
func getValidRoutingStatusStrings() map[RoutingStatus]string {
	strings := getRoutingStatusStrings()
	delete(strings, RoutingUnknown)
	return strings
}

// Validate checks if the RoutingStatus value is valid.
func (s RoutingStatus) Validate() error {
	if _, ok := getValidRoutingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"routing status is invalid",
			fmt.Errorf("%d is not a valid routing status", s),
		)
	}
	return nil
}

// String returns the wire name of the routing status, e.g. "ready_for_return".
// Returns "unknown" for invalid values.
func (s RoutingStatus) String() string {
	if str, ok := getRoutingStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// RoutingStatusFromString parses a wire name back into a RoutingStatus.
func RoutingStatusFromString(raw string) (RoutingStatus, error) {
	for status, str := range getValidRoutingStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return RoutingUnknown, errs.NewValueIsInvalidErrorWithCause(
		"routing status is invalid",
		fmt.Errorf("%q is not a valid routing status", raw),
	)
}

// IsTransferLeg reports whether the order is waiting for or riding a
// transfer run. Garment status must stay at received while this holds.
func (s RoutingStatus) IsTransferLeg() bool {
	return s == RoutingPending || s == RoutingInTransit
}
