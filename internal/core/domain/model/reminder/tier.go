package reminder

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Tier is the escalation level of a collection reminder. Tiers form an
// ordered sequence driven by how long a ready order has sat uncollected:
//
//	7_days ──> 14_days ──> 30_days ──> monthly ──> disposal_eligible
//
// The monthly tier repeats every thirty days until the disposal threshold is
// reached; disposal_eligible is the end of the sequence.
type Tier int

const (
	// TierUnknown is the zero value and is not a valid tier.
	TierUnknown Tier = iota

	// Tier7Days is the first gentle reminder after a week uncollected.
	Tier7Days

	// Tier14Days is the second reminder after two weeks uncollected.
	Tier14Days

	// Tier30Days warns that storage charges apply from thirty days.
	Tier30Days

	// TierMonthly repeats every thirty days between the storage-charge and
	// disposal thresholds.
	TierMonthly

	// TierDisposalEligible warns that the order may be disposed of under the
	// uncollected goods policy.
	TierDisposalEligible
)

// Escalation thresholds in days uncollected.
const (
	threshold7Days    = 7
	threshold14Days   = 14
	threshold30Days   = 30
	thresholdMonthly  = 60
	thresholdDisposal = 90

	// MonthlyRepeatInterval is how often the monthly tier re-arms.
	MonthlyRepeatInterval = 30
)

func getTierStrings() map[Tier]string {
	return map[Tier]string{
		TierUnknown:          "unknown",
		Tier7Days:            "7_days",
		Tier14Days:           "14_days",
		Tier30Days:           "30_days",
		TierMonthly:          "monthly",
		TierDisposalEligible: "disposal_eligible",
	}
}

func getValidTierStrings() map[Tier]string {
	strings := getTierStrings()
	delete(strings, TierUnknown)
	return strings
}

// tierSequence returns the escalation order of the tiers.
func tierSequence() []Tier {
	return []Tier{Tier7Days, Tier14Days, Tier30Days, TierMonthly, TierDisposalEligible}
}

// tierIndex returns the position of the tier in the escalation sequence,
// or -1 for values outside it.
func tierIndex(t Tier) int {
	for i, tier := range tierSequence() {
		if tier == t {
			return i
		}
	}
	return -1
}

// Validate checks if the tier is one of the valid named values.
func (t Tier) Validate() error {
	if _, ok := getValidTierStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"tier is invalid",
			fmt.Errorf("%d is not a valid reminder tier", t),
		)
	}
	return nil
}

// String returns the persisted wire name of the tier.
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TierFromString parses a wire name back into a Tier.
func TierFromString(raw string) (Tier, error) {
	for tier, str := range getValidTierStrings() {
		if str == raw {
			return tier, nil
		}
	}
	return TierUnknown, errs.NewValueIsInvalidErrorWithCause(
		"tier is invalid",
		fmt.Errorf("%q is not a valid reminder tier", raw),
	)
}

// Next returns the tier that follows this one in the escalation sequence.
// Returns nil after disposal_eligible, the end of the sequence.
func (t Tier) Next() *Tier {
	idx := tierIndex(t)
	sequence := tierSequence()
	if idx < 0 || idx == len(sequence)-1 {
		return nil
	}

	next := sequence[idx+1]
	return &next
}

// Before reports whether this tier comes earlier in the escalation sequence
// than the other. Values outside the sequence are never before anything.
func (t Tier) Before(other Tier) bool {
	idx, otherIdx := tierIndex(t), tierIndex(other)
	return idx >= 0 && otherIdx >= 0 && idx < otherIdx
}

// Urgency returns the message framing for the tier: "normal", "high", or
// "urgent". The framing picks the notification template.
func (t Tier) Urgency() string {
	switch t {
	case Tier7Days:
		return "normal"
	case Tier14Days:
		return "high"
	default:
		return "urgent"
	}
}

// TierForDays determines which escalation tier is due for an order that has
// sat uncollected for the given number of days. The second return value is
// false when no reminder is due yet.
func TierForDays(daysUncollected int) (Tier, bool) {
	switch {
	case daysUncollected >= thresholdDisposal:
		return TierDisposalEligible, true
	case daysUncollected >= thresholdMonthly:
		return TierMonthly, true
	case daysUncollected >= threshold30Days:
		return Tier30Days, true
	case daysUncollected >= threshold14Days:
		return Tier14Days, true
	case daysUncollected >= threshold7Days:
		return Tier7Days, true
	default:
		return TierUnknown, false
	}
}
