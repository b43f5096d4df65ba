package notification

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Status is the delivery state of an outbox notification.
type Status int

const (
	// StatusUnknown is the zero value and is not a valid notification status.
	StatusUnknown Status = iota

	// Pending means the notification waits in the outbox for the relay.
	Pending

	// Sent means the broker confirmed the publish.
	Sent

	// Failed means the relay gave up after exhausting its attempts.
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

// Validate checks if the notification status is one of the valid named values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification status is invalid",
			fmt.Errorf("%d is not a valid notification status", s),
		)
	}
	return nil
}

// String returns the persisted wire name of the notification status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name back into a notification Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"notification status is invalid",
		fmt.Errorf("%q is not a valid notification status", raw),
	)
}
