package commands

import (
	"errors"
	"time"

	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var ErrSendDueRemindersCommandIsNotConstructed = errors.New(
	"SendDueRemindersCommand must be created via NewSendDueRemindersCommand constructor",
)

// SendDueRemindersCommand runs one pass of the collection reminder sweep as
// of a given instant. The instant is explicit so the sweep is reproducible
// and testable; jobs pass the wall clock.
type SendDueRemindersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewSendDueRemindersCommand creates a command to run the reminder sweep.
func NewSendDueRemindersCommand(now time.Time) (SendDueRemindersCommand, error) {
	sweepCommand := SendDueRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := sweepCommand.setNow(now); err != nil {
		return SendDueRemindersCommand{}, err
	}

	return sweepCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendDueRemindersCommandIsNotConstructed if validation fails.
func (c SendDueRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendDueRemindersCommandIsNotConstructed)
}

// Now returns the instant the sweep evaluates thresholds against.
func (c SendDueRemindersCommand) Now() time.Time {
	return c.now
}

func (c *SendDueRemindersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now is required")
	}

	c.now = now
	return nil
}
