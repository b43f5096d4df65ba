package kernel

import (
	"fmt"
	"strings"

	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

const (
	// phoneMinDigits is the minimum number of digits for a dialable number.
	phoneMinDigits = 7
	// phoneMaxDigits is the maximum number of digits permitted by E.164.
	phoneMaxDigits = 15
)

// ErrPhoneIsNotConstructed indicates that a Phone was not created through NewPhone.
// This error is returned when validating a zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

// Phone is a value object holding a customer contact number in normalized form.
// Formatting characters (spaces, dashes, dots, parentheses) are stripped during
// construction; an optional leading plus sign is preserved. Phone is immutable
// and safe for concurrent use.
//
// Reminder and notification flows depend on a valid phone being present, so the
// constructor rejects anything that cannot plausibly be dialed.
//
// Example usage:
//
//	phone, err := kernel.NewPhone("+254 712 345-678")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(phone.String()) // "+254712345678"
type Phone struct {
	number string
	guard  guard.ConstructorGuard
}

// NewPhone creates a Phone from a raw string, normalizing formatting characters
// and validating digit count.
//
// Returns:
//   - Phone: the normalized phone number
//   - error: a required-value error for empty input, or an invalid-value error
//     when the normalized number contains non-digits or has an implausible length
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	normalized := strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "").Replace(trimmed)

	digits := normalized
	if strings.HasPrefix(digits, "+") {
		digits = digits[1:]
	}

	if digits == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return Phone{}, errs.NewValueIsInvalidErrorWithCause(
				"phone",
				fmt.Errorf("%q contains a non-digit character", raw),
			)
		}
	}

	if len(digits) < phoneMinDigits || len(digits) > phoneMaxDigits {
		return Phone{}, errs.NewValueIsOutOfRangeError("phone digits", len(digits), phoneMinDigits, phoneMaxDigits)
	}

	return Phone{
		number: normalized,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Phone was created through NewPhone.
// The zero value of Phone is invalid and fails this validation.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// String returns the normalized number, implementing fmt.Stringer.
func (p Phone) String() string {
	return p.number
}

// IsEqual compares two phones by their normalized numbers.
func (p Phone) IsEqual(other Phone) bool {
	return p.number == other.number
}
