package commands

import (
	"errors"
	"strings"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

var (
	ErrClassifyOrderCommandIsNotConstructed = errors.New(
		"ClassifyOrderCommand must be created via NewClassifyOrderCommand constructor",
	)
	ErrOverrideReasonIsRequired = errors.New("a reason is required to override the classification")
)

// ClassificationOverrideRequest carries the fields of an explicit manual
// override: who is overriding, with what role, to which classification, and
// why. All fields are required when an override is requested.
type ClassificationOverrideRequest struct {
	ActorID           kernel.UUID
	ActorRole         order.Role
	NewClassification order.Classification
	Reason            string
}

// ClassifyOrderCommand re-evaluates an order's return-method classification.
// Without an override request the automatic rules run (and lose against a
// sticky manual basis); with one, the override is validated and applied with
// its audit record.
//
// Example:
//
//	override := &ClassificationOverrideRequest{
//	    ActorID:           managerID,
//	    ActorRole:         order.RoleManager,
//	    NewClassification: order.DeliveryRequired,
//	    Reason:            "bulky curtain set, customer has no car",
//	}
//	cmd, err := NewClassifyOrderCommand(orderID, override)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type ClassifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	override *ClassificationOverrideRequest

	guard guard.ConstructorGuard
}

// NewClassifyOrderCommand creates a command to classify or re-classify an
// order. A nil override requests an automatic run; a non-nil override must
// carry a valid actor, a manager-tier role check happens in the aggregate,
// a valid classification and a non-blank reason.
func NewClassifyOrderCommand(orderID kernel.UUID, override *ClassificationOverrideRequest) (ClassifyOrderCommand, error) {
	classifyCommand := ClassifyOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		classifyCommand.setOrderID(orderID),
		classifyCommand.setOverride(override),
	); err != nil {
		return ClassifyOrderCommand{}, err
	}

	return classifyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClassifyOrderCommandIsNotConstructed if validation fails.
func (c ClassifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrClassifyOrderCommandIsNotConstructed)
}

// OrderID returns the order being classified.
func (c ClassifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Override returns the manual override request, nil for an automatic run.
func (c ClassifyOrderCommand) Override() *ClassificationOverrideRequest {
	return c.override
}

func (c *ClassifyOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClassifyOrderCommand) setOverride(override *ClassificationOverrideRequest) error {
	if override == nil {
		return nil
	}

	if err := errors.Join(
		override.ActorID.Validate(),
		override.ActorRole.Validate(),
		override.NewClassification.Validate(),
	); err != nil {
		return err
	}

	if strings.TrimSpace(override.Reason) == "" {
		return ErrOverrideReasonIsRequired
	}

	c.override = override
	return nil
}
