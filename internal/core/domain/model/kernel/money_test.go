package kernel_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

func TestNewMoney(t *testing.T) {
	t.Run("should round to two decimal places", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.005"))

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse a fixed-point string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("1250.50")

		require.NoError(t, err)
		assert.Equal(t, "1250.50", m.String())
	})

	t.Run("should reject garbage input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("twelve")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-5.00")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should keep decimal arithmetic exact", func(t *testing.T) {
		a := kernel.MustMoneyFromString("0.10")
		b := kernel.MustMoneyFromString("0.20")

		sum := a.Add(b)

		assert.Equal(t, "0.30", sum.String())
		assert.True(t, sum.IsEqual(kernel.MustMoneyFromString("0.3")))
	})
}

func TestMoney_GreaterThanOrEqual(t *testing.T) {
	paid := kernel.MustMoneyFromString("100.00")
	total := kernel.MustMoneyFromString("100.00")

	assert.True(t, paid.GreaterThanOrEqual(total))
	assert.False(t, kernel.MustMoneyFromString("99.99").GreaterThanOrEqual(total))
}

func TestMoney_JSON(t *testing.T) {
	t.Run("should marshal as fixed-point string", func(t *testing.T) {
		m := kernel.MustMoneyFromString("1250.5")

		data, err := json.Marshal(m)

		require.NoError(t, err)
		assert.JSONEq(t, `"1250.50"`, string(data))
	})

	t.Run("should unmarshal from string", func(t *testing.T) {
		var m kernel.Money

		err := json.Unmarshal([]byte(`"75.25"`), &m)

		require.NoError(t, err)
		assert.Equal(t, "75.25", m.String())
	})

	t.Run("should unmarshal from bare number", func(t *testing.T) {
		var m kernel.Money

		err := json.Unmarshal([]byte(`75.25`), &m)

		require.NoError(t, err)
		assert.Equal(t, "75.25", m.String())
	})
}

func TestMoney_Scan(t *testing.T) {
	t.Run("should scan byte slice from database", func(t *testing.T) {
		var m kernel.Money

		err := m.Scan([]byte("42.00"))

		require.NoError(t, err)
		assert.Equal(t, "42.00", m.String())
	})

	t.Run("should scan nil as zero", func(t *testing.T) {
		var m kernel.Money

		err := m.Scan(nil)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject unsupported types", func(t *testing.T) {
		var m kernel.Money

		err := m.Scan(true)

		assert.Error(t, err)
	})
}
