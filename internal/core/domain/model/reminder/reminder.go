package reminder

import (
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// Domain errors for reminder operations.
var (
	// ErrReminderIsNotConstructed is returned when using an improperly
	// initialized Reminder.
	ErrReminderIsNotConstructed = errors.New("Reminder must be created via NewReminder constructor")
)

// Reminder tracks collection escalation for one uncollected ready order.
// Each order has at most one reminder; the reminder carries the tier
// currently due and whether that tier's message went out. The sweep
// escalates the tier as thresholds elapse, re-arming the status to pending,
// and the reminder is finished once the disposal-eligible message is sent.
//
// Customer contact fields are denormalized at creation so reminder history
// survives later order edits.
type Reminder struct {
	// id uniquely identifies the reminder
	id kernel.UUID

	// orderID is the uncollected order the reminder tracks
	orderID kernel.UUID

	// tier is the escalation level currently due
	tier Tier

	// status is the send state of the current tier
	status Status

	// customerName is the denormalized recipient name
	customerName string

	// customerPhone is the denormalized recipient phone
	customerPhone kernel.Phone

	// createdAt is when the reminder was first created
	createdAt time.Time

	// sentAt is when the most recent tier message went out (nil before any)
	sentAt *time.Time

	// guard ensures the reminder was properly constructed
	guard guard.ConstructorGuard
}

// NewReminder creates a pending reminder at the given tier for an
// uncollected order.
func NewReminder(
	id kernel.UUID,
	orderID kernel.UUID,
	tier Tier,
	customerName string,
	customerPhone kernel.Phone,
	createdAt time.Time,
) (*Reminder, error) {
	reminder := &Reminder{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reminder.setID(id),
		reminder.setOrderID(orderID),
		reminder.setTier(tier),
		reminder.setContact(customerName, customerPhone),
	); err != nil {
		return nil, err
	}

	return reminder, nil
}

// RestoreReminder reconstructs a Reminder from persistent storage.
func RestoreReminder(
	id kernel.UUID,
	orderID kernel.UUID,
	tier Tier,
	status Status,
	customerName string,
	customerPhone kernel.Phone,
	createdAt time.Time,
	sentAt *time.Time,
) (*Reminder, error) {
	reminder := &Reminder{
		createdAt: createdAt,
		sentAt:    sentAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reminder.setID(id),
		reminder.setOrderID(orderID),
		reminder.setTier(tier),
		reminder.setStatus(status),
		reminder.setContact(customerName, customerPhone),
	); err != nil {
		return nil, err
	}

	return reminder, nil
}

// IsEqual compares two reminders by their unique identifiers.
func (r *Reminder) IsEqual(other *Reminder) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

// Validate checks if the Reminder was properly constructed via NewReminder.
func (r *Reminder) Validate() error {
	if r == nil {
		return ErrReminderIsNotConstructed
	}
	return r.guard.Validate(ErrReminderIsNotConstructed)
}

// ID returns the unique identifier of the reminder.
func (r *Reminder) ID() kernel.UUID {
	return r.id
}

// OrderID returns the uncollected order the reminder tracks.
func (r *Reminder) OrderID() kernel.UUID {
	return r.orderID
}

// Tier returns the escalation level currently due.
func (r *Reminder) Tier() Tier {
	return r.tier
}

// Status returns the send state of the current tier.
func (r *Reminder) Status() Status {
	return r.status
}

// CustomerName returns the denormalized recipient name.
func (r *Reminder) CustomerName() string {
	return r.customerName
}

// CustomerPhone returns the denormalized recipient phone.
func (r *Reminder) CustomerPhone() kernel.Phone {
	return r.customerPhone
}

// CreatedAt returns when the reminder was first created.
func (r *Reminder) CreatedAt() time.Time {
	return r.createdAt
}

// SentAt returns when the most recent tier message went out.
// Returns nil before the first send.
func (r *Reminder) SentAt() *time.Time {
	return r.sentAt
}

// IsFinished reports whether the escalation sequence is over: the
// disposal-eligible message has been sent and nothing follows it.
func (r *Reminder) IsFinished() bool {
	return r.tier == TierDisposalEligible && r.status == Sent
}

// MarkSent records that the current tier's message went out.
func (r *Reminder) MarkSent(now time.Time) error {
	if r.status != Pending {
		return errs.NewStateTransitionIsInvalidError(
			"reminder status", r.status.String(), Sent.String(),
		)
	}

	r.status = Sent
	r.sentAt = &now
	return nil
}

// MarkFailed records that sending the current tier's message failed. A
// failed tier is not retried; the next escalation re-arms the reminder.
func (r *Reminder) MarkFailed() error {
	if r.status != Pending {
		return errs.NewStateTransitionIsInvalidError(
			"reminder status", r.status.String(), Failed.String(),
		)
	}

	r.status = Failed
	return nil
}

// EscalateTo moves the reminder to a later tier and re-arms it to pending.
// The target must come strictly after the current tier in the escalation
// sequence.
func (r *Reminder) EscalateTo(tier Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	if tierIndex(tier) <= tierIndex(r.tier) {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"tier", r.tier.String(), tier.String(),
			fmt.Errorf("%s does not escalate %s", tier, r.tier),
		)
	}

	r.tier = tier
	r.status = Pending
	return nil
}

// RepeatMonthly re-arms a monthly reminder for its next thirty-day window.
func (r *Reminder) RepeatMonthly() error {
	if r.tier != TierMonthly {
		return errs.NewStateTransitionIsInvalidErrorWithCause(
			"tier", r.tier.String(), TierMonthly.String(),
			fmt.Errorf("only the monthly tier repeats, reminder is at %s", r.tier),
		)
	}

	if r.status == Pending {
		return errs.NewStateTransitionIsInvalidError(
			"reminder status", r.status.String(), Pending.String(),
		)
	}

	r.status = Pending
	return nil
}

// setID sets the reminder identifier with validation.
func (r *Reminder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

// setOrderID sets the tracked order with validation.
func (r *Reminder) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	r.orderID = orderID
	return nil
}

// setTier validates and sets the escalation level.
func (r *Reminder) setTier(tier Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	r.tier = tier
	return nil
}

// setStatus validates and sets the send state during restoration.
func (r *Reminder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	r.status = status
	return nil
}

// setContact validates and sets the denormalized recipient fields.
func (r *Reminder) setContact(customerName string, customerPhone kernel.Phone) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName is required")
	}
	if err := customerPhone.Validate(); err != nil {
		return err
	}

	r.customerName = customerName
	r.customerPhone = customerPhone
	return nil
}
