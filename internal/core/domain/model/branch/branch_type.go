package branch

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// BranchType distinguishes full-facility main stores from collection-point
// satellites. Only main stores run workstations; satellites take orders in
// and hand finished orders back, forwarding the work itself.
type BranchType int

const (
	// BranchTypeUnknown is the zero value and is not a valid branch type.
	BranchTypeUnknown BranchType = iota

	// MainStore is a branch with processing workstations.
	MainStore

	// Satellite is a collection point attached to a main store.
	Satellite
)

func getBranchTypeStrings() map[BranchType]string {
	return map[BranchType]string{
		BranchTypeUnknown: "unknown",
		MainStore:         "main_store",
		Satellite:         "satellite",
	}
}

func getValidBranchTypeStrings() map[BranchType]string {
	strings := getBranchTypeStrings()
	delete(strings, BranchTypeUnknown)
	return strings
}

// Validate checks if the branch type is one of the valid named values.
func (t BranchType) Validate() error {
	if _, ok := getValidBranchTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"branch type is invalid",
			fmt.Errorf("%d is not a valid branch type", t),
		)
	}
	return nil
}

// String returns the persisted wire name of the branch type.
func (t BranchType) String() string {
	if str, ok := getBranchTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// BranchTypeFromString parses a wire name back into a BranchType.
func BranchTypeFromString(raw string) (BranchType, error) {
	for branchType, str := range getValidBranchTypeStrings() {
		if str == raw {
			return branchType, nil
		}
	}
	return BranchTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"branch type is invalid",
		fmt.Errorf("%q is not a valid branch type", raw),
	)
}
