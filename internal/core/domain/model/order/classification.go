package order

import (
	"fmt"

	"laundryops/internal/pkg/errs"
)

// Classification is the return method decided for an order: the customer
// either collects it at the branch or has it delivered.
type Classification int

const (
	// ClassificationUnknown represents an invalid or undefined classification.
	ClassificationUnknown Classification = iota

	// CustomerCollects indicates the customer picks the order up at the branch.
	CustomerCollects

	// DeliveryRequired indicates the order is returned by delivery.
	// Collection reminders do not apply to these orders.
	DeliveryRequired
)

// getClassificationStrings returns a map of Classification values to their
// string representations.
func getClassificationStrings() map[Classification]string {
	return map[Classification]string{
		ClassificationUnknown: "unknown",
		CustomerCollects:      "customer_collects",
		DeliveryRequired:      "delivery_required",
	}
}

// getValidClassificationStrings returns a map of only valid Classification values.
func getValidClassificationStrings() map[Classification]string {
	strings := getClassificationStrings()
	delete(strings, ClassificationUnknown)
	return strings
}

// Validate checks if the Classification value is valid.
func (c Classification) Validate() error {
	if _, ok := getValidClassificationStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"classification is invalid",
			fmt.Errorf("%d is not a valid classification", c),
		)
	}
	return nil
}

// String returns the wire name of the classification, e.g. "customer_collects".
// Returns "unknown" for invalid values.
func (c Classification) String() string {
	if str, ok := getClassificationStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// ClassificationFromString parses a wire name back into a Classification.
func ClassificationFromString(raw string) (Classification, error) {
	for classification, str := range getValidClassificationStrings() {
		if str == raw {
			return classification, nil
		}
	}
	return ClassificationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"classification is invalid",
		fmt.Errorf("%q is not a valid classification", raw),
	)
}

// Basis records how an order's classification was decided.
type Basis int

const (
	// BasisUnknown represents an invalid or undefined basis.
	BasisUnknown Basis = iota

	// BasisAuto indicates the classification came from the automatic rules.
	BasisAuto

	// BasisManual indicates a manager overrode the classification. A manual
	// basis is sticky: automatic re-classification never replaces it.
	BasisManual
)

// getBasisStrings returns a map of Basis values to their string representations.
func getBasisStrings() map[Basis]string {
	return map[Basis]string{
		BasisUnknown: "unknown",
		BasisAuto:    "auto",
		BasisManual:  "manual",
	}
}

// getValidBasisStrings returns a map of only valid Basis values.
func getValidBasisStrings() map[Basis]string {
	strings := getBasisStrings()
	delete(strings, BasisUnknown)
	return strings
}

// Validate checks if the Basis value is valid.
func (b Basis) Validate() error {
	if _, ok := getValidBasisStrings()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"classification basis is invalid",
			fmt.Errorf("%d is not a valid classification basis", b),
		)
	}
	return nil
}

// String returns the wire name of the basis, either "auto" or "manual".
// Returns "unknown" for invalid values.
func (b Basis) String() string {
	if str, ok := getBasisStrings()[b]; ok {
		return str
	}
	return "unknown"
}

// BasisFromString parses a wire name back into a Basis.
func BasisFromString(raw string) (Basis, error) {
	for basis, str := range getValidBasisStrings() {
		if str == raw {
			return basis, nil
		}
	}
	return BasisUnknown, errs.NewValueIsInvalidErrorWithCause(
		"classification basis is invalid",
		fmt.Errorf("%q is not a valid classification basis", raw),
	)
}
