package driver

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is a delivery driver attached to a branch. Drivers carry their
// branch's transfer batches to the main store; assignment picks the
// least-loaded active driver of the satellite the batch leaves from.
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID

	// name is the driver's display name
	name string

	// branchID is the branch the driver works out of
	branchID kernel.UUID

	// phone is the driver's contact number
	phone kernel.Phone

	// active reports whether the driver currently takes runs
	active bool

	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a new active Driver.
func NewDriver(id kernel.UUID, name string, branchID kernel.UUID, phone kernel.Phone) (*Driver, error) {
	driver := &Driver{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setBranchID(branchID),
		driver.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(id kernel.UUID, name string, branchID kernel.UUID, phone kernel.Phone, active bool) (*Driver, error) {
	driver, err := NewDriver(id, name, branchID, phone)
	if err != nil {
		return nil, err
	}

	driver.active = active
	return driver, nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// Validate checks if the Driver was properly constructed via NewDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the unique identifier of the driver.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// BranchID returns the branch the driver works out of.
func (d *Driver) BranchID() kernel.UUID {
	return d.branchID
}

// Phone returns the driver's contact number.
func (d *Driver) Phone() kernel.Phone {
	return d.phone
}

// IsActive reports whether the driver currently takes runs.
func (d *Driver) IsActive() bool {
	return d.active
}

// setID sets the driver identifier with validation.
func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

// setName sets the driver name with validation.
func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	d.name = name
	return nil
}

// setBranchID sets the home branch with validation.
func (d *Driver) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	d.branchID = branchID
	return nil
}

// setPhone sets the contact number with validation.
func (d *Driver) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	d.phone = phone
	return nil
}
