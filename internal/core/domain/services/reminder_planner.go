package services

import (
	"strconv"
	"time"

	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/reminder"
)

// Policy warnings carried verbatim in reminder payloads. The wording is part
// of the customer-facing contract; do not edit without the business.
const (
	// StorageChargeWarning rides the 30_days tier.
	StorageChargeWarning = "Storage charges apply to items held longer than 30 days."

	// DisposalWarning rides the disposal_eligible tier.
	DisposalWarning = "Items uncollected for 90 days or more may be disposed of under our uncollected goods policy."
)

// ReminderPlanner is a domain service with the pure decision logic of the
// reminder sweep: whether a reminder may be sent at all, how long an order
// has sat uncollected, when a monthly reminder re-arms, and what goes into
// the notification payload.
type ReminderPlanner struct{}

// NewReminderPlanner creates a new ReminderPlanner instance.
func NewReminderPlanner() ReminderPlanner {
	return ReminderPlanner{}
}

// ShouldSend reports whether the reminder's current tier may be sent for the
// order. Collection reminders are pointless once the order left the shelf
// (collected, disposed, cancelled), for orders the platform delivers, for
// reminders whose current tier already went out, and for customers with no
// phone on file.
func (p ReminderPlanner) ShouldSend(o *order.Order, r *reminder.Reminder) bool {
	switch o.Status() {
	case order.Collected, order.Disposed, order.Cancelled:
		return false
	}

	if o.Classification() == order.DeliveryRequired {
		return false
	}

	if r.Status() != reminder.Pending {
		return false
	}

	if o.CustomerPhone() == nil {
		return false
	}

	return true
}

// DaysUncollected computes how many whole days the order has sat ready
// without collection. The baseline is the best known shelf timestamp: the
// actual sort completion, else the earliest-delivery time, else the intake
// estimate. The result is floored and never negative.
func (p ReminderPlanner) DaysUncollected(o *order.Order, now time.Time) int {
	baseline := o.SortedAt()
	if baseline == nil {
		baseline = o.EarliestDeliveryAt()
	}
	if baseline == nil {
		baseline = o.EstimatedReadyAt()
	}
	if baseline == nil {
		return 0
	}

	days := int(now.Sub(*baseline).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// NeedsMonthlyRepeat reports whether a monthly reminder is due to re-arm for
// its next thirty-day window. A monthly tier that never went out re-arms
// immediately so the next sweep retries it.
func (p ReminderPlanner) NeedsMonthlyRepeat(r *reminder.Reminder, now time.Time) bool {
	if r.Tier() != reminder.TierMonthly || r.Status() == reminder.Pending {
		return false
	}

	if r.SentAt() == nil {
		return true
	}

	interval := time.Duration(reminder.MonthlyRepeatInterval) * 24 * time.Hour
	return now.Sub(*r.SentAt()) >= interval
}

// BuildPayload assembles the notification parameters for a reminder tier.
// The 30_days and disposal_eligible tiers carry their policy warnings
// verbatim.
func (p ReminderPlanner) BuildPayload(o *order.Order, tier reminder.Tier, daysUncollected int) map[string]string {
	params := map[string]string{
		"tag_number":       o.TagNumber(),
		"customer_name":    o.CustomerName(),
		"days_uncollected": strconv.Itoa(daysUncollected),
		"urgency":          tier.Urgency(),
	}

	switch tier {
	case reminder.Tier30Days:
		params["policy_warning"] = StorageChargeWarning
	case reminder.TierDisposalEligible:
		params["policy_warning"] = DisposalWarning
	}

	return params
}
