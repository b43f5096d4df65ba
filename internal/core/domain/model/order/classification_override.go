package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

var (
	// ErrClassificationOverrideIsNotConstructed indicates that the ClassificationOverride
	// was not properly initialized through its constructor function.
	ErrClassificationOverrideIsNotConstructed = errors.New(
		"ClassificationOverride must be created via NewClassificationOverride constructor",
	)
)

// ClassificationOverride is the append-only audit record of a manual
// classification change. Records are written atomically with the order
// update they describe and are never mutated afterwards.
type ClassificationOverride struct {
	// id uniquely identifies the audit record
	id kernel.UUID

	// orderID is the order whose classification changed
	orderID kernel.UUID

	// previousClassification is the classification before the override
	previousClassification Classification

	// newClassification is the classification after the override
	newClassification Classification

	// actorID is the staff member who performed the override
	actorID kernel.UUID

	// actorRole is the role the actor held at override time
	actorRole Role

	// reason is the mandatory justification entered by the actor
	reason string

	// createdAt is when the override happened
	createdAt time.Time

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewClassificationOverride creates an audit record for a classification override.
//
// Returns:
//   - *ClassificationOverride: The created record if all validations pass
//   - error: Aggregated validation errors, if any
func NewClassificationOverride(
	id kernel.UUID,
	orderID kernel.UUID,
	previousClassification Classification,
	newClassification Classification,
	actorID kernel.UUID,
	actorRole Role,
	reason string,
	createdAt time.Time,
) (*ClassificationOverride, error) {
	record := &ClassificationOverride{
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOrderID(orderID),
		record.setClassifications(previousClassification, newClassification),
		record.setActor(actorID, actorRole),
		record.setReason(reason),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreClassificationOverride reconstructs an audit record from persistent storage.
func RestoreClassificationOverride(
	id kernel.UUID,
	orderID kernel.UUID,
	previousClassification Classification,
	newClassification Classification,
	actorID kernel.UUID,
	actorRole Role,
	reason string,
	createdAt time.Time,
) (*ClassificationOverride, error) {
	return NewClassificationOverride(
		id, orderID, previousClassification, newClassification, actorID, actorRole, reason, createdAt,
	)
}

// ID returns the unique identifier of the audit record.
func (c *ClassificationOverride) ID() kernel.UUID {
	return c.id
}

// OrderID returns the order whose classification changed.
func (c *ClassificationOverride) OrderID() kernel.UUID {
	return c.orderID
}

// PreviousClassification returns the classification before the override.
func (c *ClassificationOverride) PreviousClassification() Classification {
	return c.previousClassification
}

// NewClassification returns the classification after the override.
func (c *ClassificationOverride) NewClassification() Classification {
	return c.newClassification
}

// ActorID returns the staff member who performed the override.
func (c *ClassificationOverride) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role the actor held at override time.
func (c *ClassificationOverride) ActorRole() Role {
	return c.actorRole
}

// Reason returns the justification entered by the actor.
func (c *ClassificationOverride) Reason() string {
	return c.reason
}

// CreatedAt returns when the override happened.
func (c *ClassificationOverride) CreatedAt() time.Time {
	return c.createdAt
}

// Validate checks if the ClassificationOverride entity is in a valid state.
func (c *ClassificationOverride) Validate() error {
	if c == nil {
		return ErrClassificationOverrideIsNotConstructed
	}
	return c.guard.Validate(ErrClassificationOverrideIsNotConstructed)
}

func (c *ClassificationOverride) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *ClassificationOverride) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClassificationOverride) setClassifications(previous, next Classification) error {
	if err := errors.Join(previous.Validate(), next.Validate()); err != nil {
		return err
	}

	// an override that changes nothing is not worth an audit record
	if next == previous {
		return errs.NewValueIsInvalidErrorWithCause(
			"newClassification is invalid",
			fmt.Errorf("override does not change the %s classification", previous),
		)
	}

	c.previousClassification = previous
	c.newClassification = next
	return nil
}

func (c *ClassificationOverride) setActor(actorID kernel.UUID, actorRole Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}

func (c *ClassificationOverride) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason is required")
	}

	c.reason = reason
	return nil
}
