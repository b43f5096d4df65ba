package services

import (
	"laundryops/internal/core/domain/model/driver"
)

// driverLoadWeight scales a driver's active transfer-batch count into a
// load score. The weight keeps room below one batch for finer-grained
// signals if they are ever added.
const driverLoadWeight = 10

// DriverPicker is a domain service that selects the least-loaded active
// driver for a transfer run. It is a greedy, stateless-per-call heuristic:
// the pick does not reserve the driver, so the caller must claim the pick
// with a conditional write and come back for the next candidate when the
// claim is lost.
//
// Business rules:
//   - Only active drivers are considered
//   - Score = active (pending + in-transit) batch count x a fixed weight
//   - Lower score wins; ties keep the first candidate
//   - No candidates is a normal outcome, not an error
type DriverPicker struct{}

// NewDriverPicker creates a new DriverPicker instance.
func NewDriverPicker() DriverPicker {
	return DriverPicker{}
}

// Pick returns the least-loaded active driver, or nil when no driver is
// available. activeBatchCounts maps driver id strings to that driver's
// current pending plus in-transit transfer-batch count; missing entries
// count as zero.
//
// The returned driver is a suggestion only. Claiming it is the caller's job.
func (p DriverPicker) Pick(drivers []*driver.Driver, activeBatchCounts map[string]int) (*driver.Driver, error) {
	var (
		best      *driver.Driver
		bestScore int
	)

	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return nil, err
		}

		if !d.IsActive() {
			continue
		}

		score := activeBatchCounts[d.ID().String()] * driverLoadWeight
		if best == nil || score < bestScore {
			best = d
			bestScore = score
		}
	}

	if best == nil {
		return nil, nil //nolint:nilnil // no driver available is a normal outcome
	}

	return best, nil
}
