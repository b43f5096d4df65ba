package order

import (
	"fmt"
	"slices"

	"laundryops/internal/pkg/errs"
)

// Status represents the garment-processing state of an order.
// It implements a state machine with a fixed transition table to ensure
// garments move through the correct cleaning workflow.
//
// Pipeline transitions:
//
//	received ──> queued ──> washing ──> drying ──> ironing ──> quality_check
//	                           ^                                    │
//	                           └──────────── (failed QA) ───────────┤
//	                                                                v
//	              collected <── ready <── packaging <───────────────┘
//	                             │
//	                             └──> out_for_delivery ──> delivered
//
// The statuses inspection, queued_for_delivery, disposed, and cancelled sit
// outside the fixed table. They are entered and exited only through the
// routing policy methods on Order: arrival moves a garment into inspection,
// processing completion into queued_for_delivery, and disposal or
// cancellation out of the pipeline entirely.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status when an order is taken in at a branch.
	Received

	// Inspection indicates the garment is being inspected at its processing
	// branch before entering the cleaning pipeline.
	Inspection

	// Queued indicates the garment has passed inspection and is waiting for
	// a washing workstation.
	Queued

	// Washing indicates the garment is at the washing stage.
	Washing

	// Drying indicates the garment is at the drying stage.
	Drying

	// Ironing indicates the garment is at the ironing stage.
	Ironing

	// QualityCheck indicates the garment is being checked after ironing.
	// Failed checks send the garment back to washing.
	QualityCheck

	// Packaging indicates the garment passed quality check and is being packed.
	Packaging

	// QueuedForDelivery indicates processing is complete and the garment is
	// waiting for the sorting window before it can be returned to the customer.
	QueuedForDelivery

	// Ready indicates the garment is sorted and available for collection or
	// delivery. Entering this status notifies the customer.
	Ready

	// OutForDelivery indicates the garment left the branch with a delivery
	// driver. Entering this status notifies the customer.
	OutForDelivery

	// Delivered indicates the garment reached the customer. Terminal.
	// Entering this status notifies the customer.
	Delivered

	// Collected indicates the customer picked the garment up. Terminal.
	Collected

	// Disposed indicates the garment was disposed of after the uncollected
	// goods period expired. Terminal.
	Disposed

	// Cancelled indicates the order was cancelled before processing started.
	// Terminal.
	Cancelled
)

// Group is a derived view of a status used for dashboards and reporting.
// It plays no part in transition decisions.
type Group string

const (
	// GroupPending covers orders that have not started cleaning yet.
	GroupPending Group = "pending"

	// GroupProcessing covers orders inside the cleaning pipeline.
	GroupProcessing Group = "processing"

	// GroupReady covers orders waiting to be returned to the customer.
	GroupReady Group = "ready"

	// GroupCompleted covers orders in a terminal status.
	GroupCompleted Group = "completed"
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Received:          "received",
		Inspection:        "inspection",
		Queued:            "queued",
		Washing:           "washing",
		Drying:            "drying",
		Ironing:           "ironing",
		QualityCheck:      "quality_check",
		Packaging:         "packaging",
		QueuedForDelivery: "queued_for_delivery",
		Ready:             "ready",
		OutForDelivery:    "out_for_delivery",
		Delivered:         "delivered",
		Collected:         "collected",
		Disposed:          "disposed",
		Cancelled:         "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, Unknown)
	return strings
}

// getStatusTransitions returns the fixed garment transition table.
// The policy-managed statuses carry empty rows: nothing reaches or leaves
// them through this table.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Received:          {Queued},
		Queued:            {Washing},
		Washing:           {Drying},
		Drying:            {Ironing},
		Ironing:           {QualityCheck},
		QualityCheck:      {Packaging, Washing},
		Packaging:         {Ready},
		Ready:             {OutForDelivery, Collected},
		OutForDelivery:    {Delivered},
		Delivered:         {},
		Collected:         {},
		Inspection:        {},
		QueuedForDelivery: {},
		Disposed:          {},
		Cancelled:         {},
	}
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "quality_check".
//
// Returns "unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value. The wire
// names are persisted and exposed over the API, so they must stay stable.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a Status.
//
// Returns:
//   - the matching Status for a valid wire name
//   - (Unknown, error) if no valid status carries that name
//
// Used when reading statuses from the database and from API requests.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", raw))
}

// CanTransitionTo reports whether the fixed table allows moving from s to next.
//
// The table never allows a self-loop and never leads into the policy-managed
// statuses; those moves belong to the routing policy methods on Order.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(getStatusTransitions()[s], next)
}

// ValidNextStatuses returns the statuses reachable from s through the fixed
// table. Terminal and policy-managed statuses yield an empty slice.
func (s Status) ValidNextStatuses() []Status {
	return slices.Clone(getStatusTransitions()[s])
}

// TransitionTo validates the move from s to next against the fixed table.
//
// Returns:
//   - (next, nil) when the table allows the move
//   - (Unknown, error) when it does not
//
// Callers must reject the error rather than coerce the order to a
// different status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewStateTransitionIsInvalidError("status", s.String(), next.String())
	}

	return next, nil
}

// RequiresNotification reports whether entering this status must notify the
// customer. Any transition into ready, out_for_delivery, or delivered
// triggers an outbound notification, regardless of the path taken.
func (s Status) RequiresNotification() bool {
	return s == Ready || s == OutForDelivery || s == Delivered
}

// IsTerminal reports whether the status allows no further moves of any kind,
// neither through the table nor through routing policy.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Collected || s == Disposed || s == Cancelled
}

// IsWorkstationStage reports whether the status names a stage a branch
// workstation can hold a garment at. Only these statuses are valid targets
// for stage assignment and processing batches.
func (s Status) IsWorkstationStage() bool {
	switch s {
	case Queued, Washing, Drying, Ironing, QualityCheck, Packaging:
		return true
	default:
		return false
	}
}

// Group returns the reporting group of the status.
//
// The grouping is a derived view for dashboards only; transition logic
// never consults it.
func (s Status) Group() Group {
	switch s {
	case Received, Inspection, Queued:
		return GroupPending
	case Washing, Drying, Ironing, QualityCheck, Packaging, QueuedForDelivery:
		return GroupProcessing
	case Ready, OutForDelivery:
		return GroupReady
	default:
		return GroupCompleted
	}
}
