package reminder

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Status is the send state of the reminder's current tier. Escalating to a
// new tier re-arms the reminder back to pending.
type Status int

const (
	// StatusUnknown is the zero value and is not a valid reminder status.
	StatusUnknown Status = iota

	// Pending means the current tier's reminder has not been sent yet.
	Pending

	// Sent means the current tier's reminder went out.
	Sent

	// Failed means sending the current tier's reminder failed.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Sent:          "sent",
		Failed:        "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, StatusUnknown)
	return strings
}

// Validate checks if the reminder status is one of the valid named values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"reminder status is invalid",
			fmt.Errorf("%d is not a valid reminder status", s),
		)
	}
	return nil
}

// String returns the persisted wire name of the reminder status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a reminder Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"reminder status is invalid",
		fmt.Errorf("%q is not a valid reminder status", raw),
	)
}
