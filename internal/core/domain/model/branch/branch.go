package branch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// DefaultSortingWindow is the hold applied between processing completion and
// shelf availability when a branch does not configure its own window.
const DefaultSortingWindow = 6 * time.Hour

// Domain errors for branch operations.
var (
	// ErrBranchIsNotConstructed is returned when using an improperly initialized Branch.
	ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch constructor")
)

// Branch represents one location of the business: either a main store with
// processing workstations or a satellite collection point attached to one.
//
// Key responsibilities:
//   - Resolving which branch processes an order taken in at this branch
//   - Supplying the branch code used in customer-facing tag numbers
//   - Supplying the sorting window applied after processing completes
//
// Business rules:
//   - A satellite must reference an existing main store (not itself)
//   - A main store has no parent reference
//   - A non-positive sorting window falls back to DefaultSortingWindow
type Branch struct {
	// id uniquely identifies the branch
	id kernel.UUID

	// name is the human-readable branch name
	name string

	// code is the short uppercase code embedded in tag numbers
	code string

	// branchType distinguishes main stores from satellites
	branchType BranchType

	// mainStoreID is the parent main store (nil for main stores)
	mainStoreID *kernel.UUID

	// sortingWindowHours is the configured sorting hold (0 means unset)
	sortingWindowHours int

	// guard ensures the branch was properly constructed
	guard guard.ConstructorGuard
}

// NewBranch creates a new Branch with the specified parameters.
//
// Parameters:
//   - id: Unique identifier for the branch
//   - name: Human-readable name (must be non-empty)
//   - code: Short code embedded in tag numbers (must be non-blank)
//   - branchType: MainStore or Satellite
//   - mainStoreID: Parent main store, required for satellites and forbidden
//     for main stores
//   - sortingWindowHours: Configured sorting hold in hours (0 means unset,
//     negative is invalid)
//
// Returns:
//   - *Branch: A fully initialized branch
//   - error: Aggregated validation errors, if any
func NewBranch(
	id kernel.UUID,
	name string,
	code string,
	branchType BranchType,
	mainStoreID *kernel.UUID,
	sortingWindowHours int,
) (*Branch, error) {
	branch := &Branch{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		branch.setID(id),
		branch.setName(name),
		branch.setCode(code),
		branch.setHierarchy(branchType, mainStoreID),
		branch.setSortingWindowHours(sortingWindowHours),
	); err != nil {
		return nil, err
	}

	return branch, nil
}

// RestoreBranch reconstructs a Branch from persistent storage. Branches carry
// no derived state beyond their stored fields, so restoration applies the
// same validation as creation.
func RestoreBranch(
	id kernel.UUID,
	name string,
	code string,
	branchType BranchType,
	mainStoreID *kernel.UUID,
	sortingWindowHours int,
) (*Branch, error) {
	return NewBranch(id, name, code, branchType, mainStoreID, sortingWindowHours)
}

// IsEqual compares two branches by their unique identifiers.
func (b *Branch) IsEqual(other *Branch) bool {
	if other == nil {
		return false
	}
	return b.id.IsEqual(other.id)
}

// Validate checks if the Branch was properly constructed via NewBranch.
func (b *Branch) Validate() error {
	if b == nil {
		return ErrBranchIsNotConstructed
	}
	return b.guard.Validate(ErrBranchIsNotConstructed)
}

// ID returns the unique identifier of the branch.
func (b *Branch) ID() kernel.UUID {
	return b.id
}

// Name returns the human-readable branch name.
func (b *Branch) Name() string {
	return b.name
}

// Code returns the short branch code embedded in tag numbers.
func (b *Branch) Code() string {
	return b.code
}

// Type returns whether the branch is a main store or a satellite.
func (b *Branch) Type() BranchType {
	return b.branchType
}

// MainStoreID returns the parent main store of a satellite.
// Returns nil for main stores.
func (b *Branch) MainStoreID() *kernel.UUID {
	return b.mainStoreID
}

// SortingWindowHours returns the configured sorting hold in hours.
// Zero means the branch uses DefaultSortingWindow.
func (b *Branch) SortingWindowHours() int {
	return b.sortingWindowHours
}

// IsMainStore reports whether the branch runs processing workstations.
func (b *Branch) IsMainStore() bool {
	return b.branchType == MainStore
}

// IsSatellite reports whether the branch is a collection point.
func (b *Branch) IsSatellite() bool {
	return b.branchType == Satellite
}

// SortingWindow returns the hold between processing completion and shelf
// availability, falling back to DefaultSortingWindow when the branch has no
// configured value.
func (b *Branch) SortingWindow() time.Duration {
	if b.sortingWindowHours <= 0 {
		return DefaultSortingWindow
	}
	return time.Duration(b.sortingWindowHours) * time.Hour
}

// ResolveProcessingBranch decides where an order taken in at this branch is
// processed. A main store processes its own intake; a satellite forwards the
// work to its main store, which requires a physical transfer.
//
// Returns:
//   - kernel.UUID: The branch that will process the order
//   - bool: Whether the order must ride a transfer run to get there
func (b *Branch) ResolveProcessingBranch() (kernel.UUID, bool) {
	if b.branchType == Satellite {
		return *b.mainStoreID, true
	}
	return b.id, false
}

// setID sets the branch identifier with validation.
func (b *Branch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

// setName sets the branch name with validation.
func (b *Branch) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	b.name = name
	return nil
}

// setCode normalizes and sets the branch code. Codes are stored uppercase so
// tag numbers come out the same regardless of how the code was entered.
func (b *Branch) setCode(code string) error {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("code is required")
	}

	b.code = strings.ToUpper(trimmed)
	return nil
}

// setHierarchy validates the branch type together with its parent reference.
func (b *Branch) setHierarchy(branchType BranchType, mainStoreID *kernel.UUID) error {
	if err := branchType.Validate(); err != nil {
		return err
	}

	switch branchType {
	case Satellite:
		if mainStoreID == nil {
			return errs.NewValueIsRequiredError("mainStoreID is required")
		}
		if err := mainStoreID.Validate(); err != nil {
			return err
		}
		if mainStoreID.IsEqual(b.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"mainStoreID is invalid",
				fmt.Errorf("satellite %s cannot be its own main store", b.id),
			)
		}
	default:
		if mainStoreID != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"mainStoreID is invalid",
				fmt.Errorf("%s branches do not have a main store", branchType),
			)
		}
	}

	b.branchType = branchType
	b.mainStoreID = mainStoreID
	return nil
}

// setSortingWindowHours sets the configured sorting hold with validation.
func (b *Branch) setSortingWindowHours(hours int) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sortingWindowHours is invalid",
			fmt.Errorf("%d is not a valid sorting window", hours),
		)
	}

	b.sortingWindowHours = hours
	return nil
}
