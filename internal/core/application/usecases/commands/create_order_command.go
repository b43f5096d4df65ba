package commands

import (
	"errors"
	"strings"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrItemCountIsInvalid     = errors.New("item count must be greater than 0")
	ErrTotalAmountIsInvalid   = errors.New("total amount must not be negative")
)

// CreateOrderCommand represents an intake request for a new laundry order.
// Encapsulates the customer details and quote taken at the counter; the tag
// number, classification and ready estimate are derived by the handler.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	amount := kernel.MustMoneyFromString("86.00")
//	cmd, err := NewCreateOrderCommand(orderID, branchID, "Aisyah Rahman", &phone, 4, amount)
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	branchID      kernel.UUID
	customerName  string
	customerPhone *kernel.Phone
	itemCount     int
	totalAmount   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new laundry order.
// Validates identifiers, the customer name, the garment count and the quoted
// amount. The phone is optional; walk-in customers may leave none.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	branchID kernel.UUID,
	customerName string,
	customerPhone *kernel.Phone,
	itemCount int,
	totalAmount kernel.Money,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBranchID(branchID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setCustomerPhone(customerPhone),
		orderCommand.setItemCount(itemCount),
		orderCommand.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BranchID returns the branch taking the order in.
func (c CreateOrderCommand) BranchID() kernel.UUID {
	return c.branchID
}

// CustomerName returns the customer display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer contact number, nil when none on file.
func (c CreateOrderCommand) CustomerPhone() *kernel.Phone {
	return c.customerPhone
}

// ItemCount returns the number of garments taken in.
func (c CreateOrderCommand) ItemCount() int {
	return c.itemCount
}

// TotalAmount returns the quoted price.
func (c CreateOrderCommand) TotalAmount() kernel.Money {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(customerPhone *kernel.Phone) error {
	if customerPhone != nil {
		if err := customerPhone.Validate(); err != nil {
			return err
		}
	}

	c.customerPhone = customerPhone
	return nil
}

func (c *CreateOrderCommand) setItemCount(itemCount int) error {
	if itemCount <= 0 {
		return ErrItemCountIsInvalid
	}

	c.itemCount = itemCount
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount kernel.Money) error {
	if totalAmount.Amount().IsNegative() {
		return ErrTotalAmountIsInvalid
	}

	c.totalAmount = totalAmount
	return nil
}
