package kernel_test

import (
	"testing"

	"orders/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from a positive amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(100.50))

		require.NoError(t, err)
		assert.NoError(t, m.Validate())
		assert.Equal(t, "100.5", m.String())
	})

	t.Run("should allow zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.NoError(t, m.Validate())
		assert.False(t, m.IsPositive())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount is invalid")
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse a decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("15999.99")

		require.NoError(t, err)
		assert.Equal(t, "15999.99", m.String())
	})

	t.Run("should reject a non-numeric string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("not-a-number")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount is invalid")
	})

	t.Run("should reject a negative string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-5")

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts exactly", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("0.1")
		b, _ := kernel.NewMoneyFromString("0.2")

		sum := a.Add(b)

		assert.Equal(t, "0.3", sum.String())
		assert.NoError(t, sum.Validate())
	})

	t.Run("should multiply by an integer quantity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("100.00")

		total := price.MultiplyBy(2)

		expected, _ := kernel.NewMoneyFromString("200.00")
		assert.True(t, total.IsEqual(expected))
	})

	t.Run("should not mutate the receiver", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10")
		b, _ := kernel.NewMoneyFromString("5")

		_ = a.Add(b)

		assert.Equal(t, "10", a.String())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare numerically regardless of representation", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("250.00")
		b, _ := kernel.NewMoneyFromString("250")

		assert.True(t, a.IsEqual(b))
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("should accept ZeroMoney", func(t *testing.T) {
		assert.NoError(t, kernel.ZeroMoney().Validate())
	})
}
