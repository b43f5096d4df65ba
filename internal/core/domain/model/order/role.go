package order

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Role is the staff role of an actor performing an order operation.
// Only manager-tier roles may override a delivery classification.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAttendant is counter staff taking orders in and handing them out.
	RoleAttendant

	// RoleSupervisor runs a branch shift but cannot override classifications.
	RoleSupervisor

	// RoleManager manages a branch. Manager tier.
	RoleManager

	// RoleOwner owns the business. Manager tier.
	RoleOwner
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleAttendant:  "attendant",
		RoleSupervisor: "supervisor",
		RoleManager:    "manager",
		RoleOwner:      "owner",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	strings := getRoleStrings()
	delete(strings, RoleUnknown)
	return strings
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, e.g. "supervisor".
// Returns "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a wire name back into a Role.
func RoleFromString(raw string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == raw {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", raw))
}

// CanOverrideClassification reports whether the role belongs to the manager
// tier allowed to override an order's delivery classification.
func (r Role) CanOverrideClassification() bool {
	return r == RoleManager || r == RoleOwner
}
