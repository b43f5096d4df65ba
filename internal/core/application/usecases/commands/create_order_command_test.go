package commands_test

import (
	"testing"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	branchID := kernel.NewUUID()
	phone := mustPhone(t, "+60123456789")
	amount := kernel.MustMoneyFromString("86.00")

	cmd, err := commands.NewCreateOrderCommand(orderID, branchID, "Aisyah Rahman", &phone, 4, amount)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, branchID, cmd.BranchID())
	assert.Equal(t, "Aisyah Rahman", cmd.CustomerName())
	assert.Equal(t, &phone, cmd.CustomerPhone())
	assert.Equal(t, 4, cmd.ItemCount())
	assert.True(t, amount.IsEqual(cmd.TotalAmount()))
}

func TestNewCreateOrderCommand_NoPhone(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Aisyah Rahman", nil, 4, kernel.MustMoneyFromString("86.00"),
	)
	require.NoError(t, err)
	assert.Nil(t, cmd.CustomerPhone())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(
		invalidID, kernel.NewUUID(), "Aisyah Rahman", nil, 4, kernel.MustMoneyFromString("86.00"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyCustomerName(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "   ", nil, 4, kernel.MustMoneyFromString("86.00"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
}

func TestNewCreateOrderCommand_InvalidItemCount(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Aisyah Rahman", nil, 0, kernel.MustMoneyFromString("86.00"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemCountIsInvalid)
}

func TestNewCreateOrderCommand_NegativeTotalAmount(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Aisyah Rahman", nil, 4, kernel.MustMoneyFromString("-1.00"),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTotalAmountIsInvalid)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
