package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should build domain items from the specs", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("CUST-001", testItemSpecs(t), "ring the bell")

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "CUST-001", cmd.CustomerID())
		assert.Equal(t, "ring the bell", cmd.Notes())
		require.Len(t, cmd.Items(), 2)
		assert.Equal(t, "PROD-001", cmd.Items()[0].ProductCode())
		assert.True(t, cmd.Items()[0].Subtotal().IsEqual(mustMoney(t, "200.00")))
	})

	t.Run("should reject a missing customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", testItemSpecs(t), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCustomerIDIsRequired)
	})

	t.Run("should reject an empty item list", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("CUST-001", nil, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidItems)
	})

	t.Run("should reject an invalid item line", func(t *testing.T) {
		specs := []commands.ItemSpec{
			{ProductCode: "PROD-001", ProductName: "Laptop", Quantity: 0, UnitPrice: mustMoney(t, "10.00")},
		}

		_, err := commands.NewCreateOrderCommand("CUST-001", specs, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidItems)
	})
}

func TestCreateOrderCommand_Validate(t *testing.T) {
	t.Run("should reject a directly instantiated command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
