package transfer

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Status is the lifecycle state of a transfer batch.
//
//	pending ──> in_transit ──> delivered
type Status int

const (
	// StatusUnknown is the zero value and is not a valid transfer status.
	StatusUnknown Status = iota

	// Pending means the batch is built and waiting for a driver.
	Pending

	// InTransit means a driver is carrying the batch to the main store.
	InTransit

	// Delivered means the batch arrived and its orders were received.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		InTransit:     "in_transit",
		Delivered:     "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, StatusUnknown)
	return strings
}

// Validate checks if the transfer status is one of the valid named values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transfer status is invalid",
			fmt.Errorf("%d is not a valid transfer status", s),
		)
	}
	return nil
}

// String returns the persisted wire name of the transfer status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a transfer Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transfer status is invalid",
		fmt.Errorf("%q is not a valid transfer status", raw),
	)
}
