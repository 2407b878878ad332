package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountArithmetic(t *testing.T) {
	t.Run("add same currency", func(t *testing.T) {
		sum, err := Cents(10_000).Add(Cents(2_500))
		require.NoError(t, err)
		assert.Equal(t, int64(12_500), sum.MinorUnits())
		assert.Equal(t, USD, sum.Currency())
	})

	t.Run("add across currencies needs conversion", func(t *testing.T) {
		_, err := Cents(100).Add(NewAmount(100, EUR))
		var convErr ConversionNeededError
		require.ErrorAs(t, err, &convErr)
		assert.Equal(t, USD, convErr.Left)
		assert.Equal(t, EUR, convErr.Right)
	})

	t.Run("neg", func(t *testing.T) {
		assert.Equal(t, int64(-100), Cents(100).Neg().MinorUnits())
		assert.Equal(t, int64(100), Cents(-100).Neg().MinorUnits())
	})

	t.Run("scalar multiply and divide", func(t *testing.T) {
		assert.Equal(t, int64(300), Cents(100).MulInt(3).MinorUnits())
		assert.Equal(t, int64(50), Cents(100).DivInt(2).MinorUnits())
	})

	t.Run("ratio scaling loses nothing on exact ratios", func(t *testing.T) {
		// $100.00 × 3/2 = $150.00
		assert.Equal(t, int64(15_000), Cents(10_000).MulRatio(3, 2).MinorUnits())
		// An odd amount still scales in one step.
		assert.Equal(t, int64(151), Cents(101).MulRatio(3, 2).MinorUnits())
	})
}

func TestAmountComparison(t *testing.T) {
	t.Run("cmp same currency", func(t *testing.T) {
		less, err := Cents(1).Cmp(Cents(2))
		require.NoError(t, err)
		assert.Equal(t, -1, less)

		more, err := Cents(2).Cmp(Cents(1))
		require.NoError(t, err)
		assert.Equal(t, 1, more)

		same, err := Cents(2).Cmp(Cents(2))
		require.NoError(t, err)
		assert.Equal(t, 0, same)
	})

	t.Run("cmp across currencies needs conversion", func(t *testing.T) {
		_, err := Cents(1).Cmp(NewAmount(1, EUR))
		var convErr ConversionNeededError
		assert.ErrorAs(t, err, &convErr)
	})

	t.Run("predicates", func(t *testing.T) {
		assert.True(t, Cents(1).IsPositive())
		assert.False(t, Cents(0).IsPositive())
		assert.False(t, Cents(-1).IsPositive())
		assert.True(t, Zero(USD).IsZero())
		assert.True(t, Cents(5).Equals(Cents(5)))
		assert.False(t, Cents(5).Equals(NewAmount(5, EUR)))
	})
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "USD 150.00", Cents(15_000).String())
	assert.Equal(t, "USD -100.00", Cents(-10_000).String())
	assert.Equal(t, "USD 0.05", Cents(5).String())
	assert.Equal(t, "EUR 1.23", NewAmount(123, EUR).String())
}
