package kernel

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"laundryops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts (order totals, payments,
// outstanding balances). It wraps a fixed-point decimal to keep arithmetic
// exact under concurrent payment recording; amounts are always rounded to
// two decimal places.
//
// The zero value is a valid zero amount. Negative amounts are rejected by
// the constructors because nothing in the order ledger ever owes the
// customer a negative balance.
//
// Money implements driver.Valuer and sql.Scanner so it maps onto a
// decimal(20,2) column, and json.Marshaler/Unmarshaler so API payloads carry
// amounts as fixed-point strings.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of amount 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount, rounding to two places.
// Returns an invalid-value error for negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewMoneyFromString parses a Money from its decimal string form, e.g. "1250.50".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoneyFromString parses a Money and panics on failure.
// Intended for constants and test fixtures only.
func MustMoneyFromString(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(2)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Value implements driver.Valuer for database persistence.
func (m Money) Value() (driver.Value, error) {
	return m.amount.StringFixed(2), nil
}

// Scan implements sql.Scanner, accepting the textual and numeric forms
// the postgres driver may hand back for a decimal column.
func (m *Money) Scan(value any) error {
	if value == nil {
		m.amount = decimal.Zero
		return nil
	}

	switch v := value.(type) {
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return err
		}
		m.amount = d
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return err
		}
		m.amount = d
	case float64:
		m.amount = decimal.NewFromFloat(v)
	case int64:
		m.amount = decimal.NewFromInt(v)
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}
	return nil
}

// MarshalJSON renders the amount as a fixed-point string, e.g. "1250.50".
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.amount.StringFixed(2))
}

// UnmarshalJSON accepts either a JSON string or a bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		d, numErr := decimal.NewFromString(string(data))
		if numErr != nil {
			return numErr
		}
		m.amount = d.Round(2)
		return nil
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	m.amount = d.Round(2)
	return nil
}
