package order

import (
	"fmt"
	"strings"
	"time"
)

// tagDateLayout is the YYMMDD day component of a tag number.
const tagDateLayout = "060102"

// BuildTagNumber formats the human-readable ticket identifier for an order,
// e.g. "ORD-KLCC-260823-0042". The sequence comes from the store's atomic
// per-branch, per-day counter, never from reading back the latest tag.
func BuildTagNumber(branchCode string, day time.Time, sequence int64) string {
	return fmt.Sprintf("ORD-%s-%s-%04d", strings.ToUpper(branchCode), day.Format(tagDateLayout), sequence)
}
