package services

import (
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
)

// Classification thresholds. Orders at or above either threshold are too
// valuable or too bulky to sit on the collection shelf, so the platform
// offers delivery for them.
const (
	// classifierItemThreshold is the garment count from which delivery is offered.
	classifierItemThreshold = 12
)

// classifierAmountThreshold is the order value from which delivery is offered.
var classifierAmountThreshold = kernel.MustMoneyFromString("150.00")

// Classifier is a domain service that picks an order's return method from
// its attributes. The result carries the auto basis; a manual override at
// the order aggregate is sticky and wins over any later auto run.
//
// Example usage:
//
//	classifier := NewClassifier()
//	classification := classifier.Classify(order.ItemCount(), order.TotalAmount())
//	_ = order.ApplyAutoClassification(classification)
type Classifier struct{}

// NewClassifier creates a new Classifier instance.
func NewClassifier() Classifier {
	return Classifier{}
}

// Classify picks the return method for an order from its garment count and
// total value. Orders below both thresholds are collected by the customer.
func (c Classifier) Classify(itemCount int, totalAmount kernel.Money) order.Classification {
	if itemCount >= classifierItemThreshold {
		return order.DeliveryRequired
	}
	if totalAmount.GreaterThanOrEqual(classifierAmountThreshold) {
		return order.DeliveryRequired
	}
	return order.CustomerCollects
}
