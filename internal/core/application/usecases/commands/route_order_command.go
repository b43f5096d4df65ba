package commands

import (
	"errors"
	"fmt"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

var (
	ErrRouteOrderCommandIsNotConstructed = errors.New(
		"RouteOrderCommand must be created via NewRouteOrderCommand constructor",
	)
	ErrStageIsRequired = errors.New("stage is required for the assign_to_stage action")
)

// RouteAction names one routing engine operation applied to a single order.
type RouteAction int

const (
	// RouteActionUnknown represents an invalid or undefined routing action.
	RouteActionUnknown RouteAction = iota

	// RouteToWorkstation resolves the order's processing branch and opens a
	// transfer leg when the owning branch is a satellite.
	RouteToWorkstation

	// MarkReceived records arrival at the processing branch.
	MarkReceived

	// AssignToStage books the order into a workstation stage.
	AssignToStage

	// MarkProcessing flags the order as actively worked on.
	MarkProcessing

	// CompleteProcessing closes processing and opens the sorting window.
	CompleteProcessing
)

func getRouteActionStrings() map[RouteAction]string {
	return map[RouteAction]string{
		RouteActionUnknown: "unknown",
		RouteToWorkstation: "route_to_workstation",
		MarkReceived:       "mark_received",
		AssignToStage:      "assign_to_stage",
		MarkProcessing:     "mark_processing",
		CompleteProcessing: "complete_processing",
	}
}

func getValidRouteActionStrings() map[RouteAction]string {
	strings := getRouteActionStrings()
	delete(strings, RouteActionUnknown)
	return strings
}

// Validate checks if the RouteAction is one of the valid named actions.
func (a RouteAction) Validate() error {
	if _, ok := getValidRouteActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"action is invalid",
			fmt.Errorf("%d is not a valid routing action", a),
		)
	}
	return nil
}

// String returns the wire name of the action, e.g. "mark_received".
// Returns "unknown" for invalid values.
func (a RouteAction) String() string {
	if str, ok := getRouteActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// RouteActionFromString parses a wire name back into a RouteAction.
// Unknown names are a validation failure, never coerced.
func RouteActionFromString(raw string) (RouteAction, error) {
	for action, str := range getValidRouteActionStrings() {
		if str == raw {
			return action, nil
		}
	}
	return RouteActionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"action is invalid",
		fmt.Errorf("%q is not a valid routing action", raw),
	)
}

// RouteOrderCommand applies one routing engine action to an order.
// The stage is required for assign_to_stage and ignored otherwise; the staff
// identifier is optional for the actions that accept one.
//
// Example:
//
//	stage := order.Washing
//	cmd, err := NewRouteOrderCommand(orderID, AssignToStage, &stage, &staffID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type RouteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  RouteAction
	stage   *order.Status
	staffID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRouteOrderCommand creates a command to apply a routing action to an order.
// Validates the order id, the action name, and the stage when the action
// requires one.
func NewRouteOrderCommand(
	orderID kernel.UUID,
	action RouteAction,
	stage *order.Status,
	staffID *kernel.UUID,
) (RouteOrderCommand, error) {
	routeCommand := RouteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeCommand.setOrderID(orderID),
		routeCommand.setAction(action),
		routeCommand.setStage(action, stage),
		routeCommand.setStaffID(staffID),
	); err != nil {
		return RouteOrderCommand{}, err
	}

	return routeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRouteOrderCommandIsNotConstructed if validation fails.
func (c RouteOrderCommand) Validate() error {
	return c.guard.Validate(ErrRouteOrderCommandIsNotConstructed)
}

// OrderID returns the order the action applies to.
func (c RouteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the routing action to apply.
func (c RouteOrderCommand) Action() RouteAction {
	return c.action
}

// Stage returns the target workstation stage, set only for assign_to_stage.
func (c RouteOrderCommand) Stage() *order.Status {
	return c.stage
}

// StaffID returns the optional staff member tied to the action.
func (c RouteOrderCommand) StaffID() *kernel.UUID {
	return c.staffID
}

func (c *RouteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RouteOrderCommand) setAction(action RouteAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}

func (c *RouteOrderCommand) setStage(action RouteAction, stage *order.Status) error {
	if action == AssignToStage && stage == nil {
		return ErrStageIsRequired
	}

	if stage != nil {
		if err := stage.Validate(); err != nil {
			return err
		}
	}

	c.stage = stage
	return nil
}

func (c *RouteOrderCommand) setStaffID(staffID *kernel.UUID) error {
	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
	}

	c.staffID = staffID
	return nil
}
