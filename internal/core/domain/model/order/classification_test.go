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

func TestClassification(t *testing.T) {
	t.Run("should round-trip valid classifications through strings", func(t *testing.T) {
		for _, c := range []order.Classification{order.CustomerCollects, order.DeliveryRequired} {
			require.NoError(t, c.Validate())

			parsed, err := order.ClassificationFromString(c.String())

			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("should reject unknown and invalid values", func(t *testing.T) {
		require.Error(t, order.ClassificationUnknown.Validate())
		require.Error(t, order.Classification(99).Validate())

		_, err := order.ClassificationFromString("pickup")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestBasis(t *testing.T) {
	t.Run("should round-trip valid bases through strings", func(t *testing.T) {
		for _, b := range []order.Basis{order.BasisAuto, order.BasisManual} {
			require.NoError(t, b.Validate())

			parsed, err := order.BasisFromString(b.String())

			require.NoError(t, err)
			assert.Equal(t, b, parsed)
		}
	})

	t.Run("should reject unknown basis", func(t *testing.T) {
		require.Error(t, order.BasisUnknown.Validate())

		_, err := order.BasisFromString("guess")

		require.Error(t, err)
	})
}

func TestRole(t *testing.T) {
	t.Run("should round-trip valid roles through strings", func(t *testing.T) {
		roles := []order.Role{order.RoleAttendant, order.RoleSupervisor, order.RoleManager, order.RoleOwner}
		for _, r := range roles {
			require.NoError(t, r.Validate())

			parsed, err := order.RoleFromString(r.String())

			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("should only let managers and owners override classifications", func(t *testing.T) {
		assert.False(t, order.RoleAttendant.CanOverrideClassification())
		assert.False(t, order.RoleSupervisor.CanOverrideClassification())
		assert.True(t, order.RoleManager.CanOverrideClassification())
		assert.True(t, order.RoleOwner.CanOverrideClassification())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		require.Error(t, order.RoleUnknown.Validate())

		_, err := order.RoleFromString("ceo")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"ceo" is not a valid role`)
	})
}

func TestNewClassificationOverride(t *testing.T) {
	validID := kernel.NewUUID()
	validOrderID := kernel.NewUUID()
	validActorID := kernel.NewUUID()
	createdAt := time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC)

	t.Run("should create a valid audit record", func(t *testing.T) {
		record, err := order.NewClassificationOverride(
			validID, validOrderID,
			order.CustomerCollects, order.DeliveryRequired,
			validActorID, order.RoleManager,
			"customer requested delivery", createdAt,
		)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.True(t, record.ID().IsEqual(validID))
		assert.True(t, record.OrderID().IsEqual(validOrderID))
		assert.Equal(t, order.CustomerCollects, record.PreviousClassification())
		assert.Equal(t, order.DeliveryRequired, record.NewClassification())
		assert.True(t, record.ActorID().IsEqual(validActorID))
		assert.Equal(t, order.RoleManager, record.ActorRole())
		assert.Equal(t, "customer requested delivery", record.Reason())
		assert.Equal(t, createdAt, record.CreatedAt())
	})

	t.Run("should reject identical previous and new classifications", func(t *testing.T) {
		record, err := order.NewClassificationOverride(
			validID, validOrderID,
			order.DeliveryRequired, order.DeliveryRequired,
			validActorID, order.RoleManager,
			"no change at all", createdAt,
		)

		require.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "newClassification is invalid")
	})

	t.Run("should reject a blank reason", func(t *testing.T) {
		record, err := order.NewClassificationOverride(
			validID, validOrderID,
			order.CustomerCollects, order.DeliveryRequired,
			validActorID, order.RoleManager,
			"   ", createdAt,
		)

		require.Error(t, err)
		assert.Nil(t, record)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		record, err := order.NewClassificationOverride(
			invalidID, invalidID,
			order.ClassificationUnknown, order.ClassificationUnknown,
			invalidID, order.RoleUnknown,
			"", createdAt,
		)

		require.Error(t, err)
		assert.Nil(t, record)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "reason is required")
	})

	t.Run("should fail validation for a zero-value record", func(t *testing.T) {
		var record order.ClassificationOverride

		err := record.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrClassificationOverrideIsNotConstructed, err)
	})
}
