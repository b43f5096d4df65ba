package services_test

import (
	"testing"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := services.NewClassifier()

	t.Run("should default to customer collection for a small order", func(t *testing.T) {
		result := classifier.Classify(3, kernel.MustMoneyFromString("45.00"))

		assert.Equal(t, order.CustomerCollects, result)
	})

	t.Run("should keep customer collection just below both thresholds", func(t *testing.T) {
		result := classifier.Classify(11, kernel.MustMoneyFromString("149.99"))

		assert.Equal(t, order.CustomerCollects, result)
	})

	t.Run("should require delivery at the item threshold", func(t *testing.T) {
		result := classifier.Classify(12, kernel.MustMoneyFromString("60.00"))

		assert.Equal(t, order.DeliveryRequired, result)
	})

	t.Run("should require delivery above the item threshold", func(t *testing.T) {
		result := classifier.Classify(40, kernel.MustMoneyFromString("10.00"))

		assert.Equal(t, order.DeliveryRequired, result)
	})

	t.Run("should require delivery at the amount threshold", func(t *testing.T) {
		result := classifier.Classify(2, kernel.MustMoneyFromString("150.00"))

		assert.Equal(t, order.DeliveryRequired, result)
	})

	t.Run("should require delivery above the amount threshold", func(t *testing.T) {
		result := classifier.Classify(1, kernel.MustMoneyFromString("480.50"))

		assert.Equal(t, order.DeliveryRequired, result)
	})

	t.Run("should require delivery when both thresholds are crossed", func(t *testing.T) {
		result := classifier.Classify(25, kernel.MustMoneyFromString("312.00"))

		assert.Equal(t, order.DeliveryRequired, result)
	})

	t.Run("should work with zero value Classifier", func(t *testing.T) {
		var zeroClassifier services.Classifier

		result := zeroClassifier.Classify(12, kernel.MustMoneyFromString("5.00"))

		assert.Equal(t, order.DeliveryRequired, result)
	})
}
