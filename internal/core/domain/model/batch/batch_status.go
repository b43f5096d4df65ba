package batch

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Status is the lifecycle state of a processing batch.
//
//	pending ──> in_progress ──> completed
type Status int

const (
	// StatusUnknown is the zero value and is not a valid batch status.
	StatusUnknown Status = iota

	// Pending means the batch document exists but work has not started.
	Pending

	// InProgress means the batch members were advanced into the batch stage.
	InProgress

	// Completed means the batch members were advanced out of the batch stage.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		InProgress:    "in_progress",
		Completed:     "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, StatusUnknown)
	return strings
}

// Validate checks if the batch status is one of the valid named values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"batch status is invalid",
			fmt.Errorf("%d is not a valid batch status", s),
		)
	}
	return nil
}

// String returns the persisted wire name of the batch status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a batch Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"batch status is invalid",
		fmt.Errorf("%q is not a valid batch status", raw),
	)
}
