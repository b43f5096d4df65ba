package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrPaymentAmountIsInvalid = errors.New("payment amount must be greater than 0")
)

// RecordPaymentCommand registers a payment taken against an order.
//
// Example:
//
//	amount := kernel.MustMoneyFromString("25.00")
//	cmd, err := NewRecordPaymentCommand(orderID, amount, order.MethodCash)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money
	method  order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
// The amount must be positive and the method one of the named values.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	amount kernel.Money,
	method order.PaymentMethod,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setAmount(amount),
		paymentCommand.setMethod(method),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordPaymentCommandIsNotConstructed if validation fails.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the order the payment applies to.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the paid amount.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns how the payment was made.
func (c RecordPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() || amount.Amount().IsNegative() {
		return ErrPaymentAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
