package order

import (
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

var (
	// ErrPaymentRecordIsNotConstructed indicates that the PaymentRecord was not
	// properly initialized through the NewPaymentRecord constructor function.
	ErrPaymentRecordIsNotConstructed = errors.New("PaymentRecord must be created via NewPaymentRecord constructor")
)

// PaymentStatus is the derived settlement state of an order. It is never
// written directly: it is recomputed from the total and paid amounts after
// every atomic payment increment.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentUnpaid indicates nothing has been paid against the order.
	PaymentUnpaid

	// PaymentPartial indicates a payment smaller than the total was recorded.
	PaymentPartial

	// PaymentPaid indicates the paid amount covers the order total.
	PaymentPaid
)

// getPaymentStatusStrings returns a map of PaymentStatus values to their
// string representations.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentUnpaid:        "unpaid",
		PaymentPartial:       "partial",
		PaymentPaid:          "paid",
	}
}

// getValidPaymentStatusStrings returns a map of only valid PaymentStatus values.
func getValidPaymentStatusStrings() map[PaymentStatus]string {
	strings := getPaymentStatusStrings()
	delete(strings, PaymentStatusUnknown)
	return strings
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the wire name of the payment status, e.g. "partial".
// Returns "unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatusFromString parses a wire name back into a PaymentStatus.
func PaymentStatusFromString(raw string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", raw),
	)
}

// DerivePaymentStatus computes the settlement state from the order total and
// the amount paid so far. Callers must pass the post-increment paid amount
// read back from the store, never a locally accumulated one.
func DerivePaymentStatus(total, paid kernel.Money) PaymentStatus {
	switch {
	case paid.IsZero():
		return PaymentUnpaid
	case paid.GreaterThanOrEqual(total):
		return PaymentPaid
	default:
		return PaymentPartial
	}
}

// PaymentMethod is how a payment against an order was made.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// MethodCash is a cash payment at the counter.
	MethodCash

	// MethodCard is a card payment through the point of sale.
	MethodCard

	// MethodTransfer is a bank transfer reconciled by the back office.
	MethodTransfer
)

// getPaymentMethodStrings returns a map of PaymentMethod values to their
// string representations.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		MethodCash:           "cash",
		MethodCard:           "card",
		MethodTransfer:       "transfer",
	}
}

// getValidPaymentMethodStrings returns a map of only valid PaymentMethod values.
func getValidPaymentMethodStrings() map[PaymentMethod]string {
	strings := getPaymentMethodStrings()
	delete(strings, PaymentMethodUnknown)
	return strings
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire name of the payment method, e.g. "cash".
// Returns "unknown" for invalid values.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentMethodFromString parses a wire name back into a PaymentMethod.
func PaymentMethodFromString(raw string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == raw {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", raw),
	)
}

// PaymentRecord is one row of the append-only payment ledger. Every recorded
// payment inserts exactly one record in the same transaction as the atomic
// increment of the order's paid amount. Records are never mutated.
type PaymentRecord struct {
	// id uniquely identifies the ledger entry
	id kernel.UUID

	// orderID is the order the payment was made against
	orderID kernel.UUID

	// amount is the paid amount, always positive
	amount kernel.Money

	// method is how the payment was made
	method PaymentMethod

	// createdAt is when the payment was recorded
	createdAt time.Time

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewPaymentRecord creates a ledger entry for a payment against an order.
//
// Parameters:
//   - id: Unique identifier for the ledger entry
//   - orderID: The order the payment applies to
//   - amount: The paid amount (must be positive)
//   - method: How the payment was made
//   - createdAt: When the payment was recorded
//
// Returns:
//   - *PaymentRecord: The created ledger entry if all validations pass
//   - error: Aggregated validation errors, if any
func NewPaymentRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method PaymentMethod,
	createdAt time.Time,
) (*PaymentRecord, error) {
	record := &PaymentRecord{
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOrderID(orderID),
		record.setAmount(amount),
		record.setMethod(method),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestorePaymentRecord reconstructs a ledger entry from persistent storage.
func RestorePaymentRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	method PaymentMethod,
	createdAt time.Time,
) (*PaymentRecord, error) {
	return NewPaymentRecord(id, orderID, amount, method, createdAt)
}

// ID returns the unique identifier of the ledger entry.
func (p *PaymentRecord) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the payment was made against.
func (p *PaymentRecord) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the paid amount.
func (p *PaymentRecord) Amount() kernel.Money {
	return p.amount
}

// Method returns how the payment was made.
func (p *PaymentRecord) Method() PaymentMethod {
	return p.method
}

// CreatedAt returns when the payment was recorded.
func (p *PaymentRecord) CreatedAt() time.Time {
	return p.createdAt
}

// Validate checks if the PaymentRecord entity is in a valid state.
func (p *PaymentRecord) Validate() error {
	if p == nil {
		return ErrPaymentRecordIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentRecordIsNotConstructed)
}

func (p *PaymentRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *PaymentRecord) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	p.orderID = orderID
	return nil
}

func (p *PaymentRecord) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is not a positive payment amount", amount),
		)
	}

	p.amount = amount
	return nil
}

func (p *PaymentRecord) setMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	p.method = method
	return nil
}
