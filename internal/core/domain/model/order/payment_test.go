package order_test

import (
	"testing"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus(t *testing.T) {
	t.Run("should round-trip valid payment statuses through strings", func(t *testing.T) {
		for _, s := range []order.PaymentStatus{order.PaymentUnpaid, order.PaymentPartial, order.PaymentPaid} {
			require.NoError(t, s.Validate())

			parsed, err := order.PaymentStatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown payment status", func(t *testing.T) {
		require.Error(t, order.PaymentStatusUnknown.Validate())

		_, err := order.PaymentStatusFromString("settled")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestPaymentMethod(t *testing.T) {
	t.Run("should round-trip valid payment methods through strings", func(t *testing.T) {
		for _, m := range []order.PaymentMethod{order.MethodCash, order.MethodCard, order.MethodTransfer} {
			require.NoError(t, m.Validate())

			parsed, err := order.PaymentMethodFromString(m.String())

			require.NoError(t, err)
			assert.Equal(t, m, parsed)
		}
	})

	t.Run("should reject unknown payment method", func(t *testing.T) {
		require.Error(t, order.PaymentMethodUnknown.Validate())

		_, err := order.PaymentMethodFromString("cheque")

		require.Error(t, err)
	})
}

func TestNewPaymentRecord(t *testing.T) {
	validID := kernel.NewUUID()
	validOrderID := kernel.NewUUID()
	createdAt := time.Date(2026, 8, 23, 11, 30, 0, 0, time.UTC)

	t.Run("should create a valid payment record", func(t *testing.T) {
		amount := kernel.MustMoneyFromString("45.50")

		record, err := order.NewPaymentRecord(validID, validOrderID, amount, order.MethodCard, createdAt)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.True(t, record.ID().IsEqual(validID))
		assert.True(t, record.OrderID().IsEqual(validOrderID))
		assert.True(t, record.Amount().IsEqual(amount))
		assert.Equal(t, order.MethodCard, record.Method())
		assert.Equal(t, createdAt, record.CreatedAt())
	})

	t.Run("should reject a zero amount", func(t *testing.T) {
		record, err := order.NewPaymentRecord(validID, validOrderID, kernel.ZeroMoney(), order.MethodCash, createdAt)

		require.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "amount is invalid")
		assert.Contains(t, err.Error(), "0.00 is not a positive payment amount")
	})

	t.Run("should reject an unknown method", func(t *testing.T) {
		record, err := order.NewPaymentRecord(
			validID, validOrderID, kernel.MustMoneyFromString("10.00"), order.PaymentMethodUnknown, createdAt,
		)

		require.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "payment method is invalid")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		record, err := order.NewPaymentRecord(invalidID, invalidID, kernel.ZeroMoney(), order.PaymentMethodUnknown, createdAt)

		require.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "amount is invalid")
		assert.Contains(t, err.Error(), "payment method is invalid")
	})

	t.Run("should restore a persisted payment record", func(t *testing.T) {
		record, err := order.RestorePaymentRecord(
			validID, validOrderID, kernel.MustMoneyFromString("45.50"), order.MethodTransfer, createdAt,
		)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.Equal(t, order.MethodTransfer, record.Method())
	})

	t.Run("should fail validation for a zero-value record", func(t *testing.T) {
		var record order.PaymentRecord

		err := record.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrPaymentRecordIsNotConstructed, err)
	})
}
