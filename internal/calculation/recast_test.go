package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlacroix/canmort/internal/domain"
)

func TestRecast(t *testing.T) {
	result, err := Recast(
		decimal.NewFromInt(400000),
		decimal.NewFromInt(50000),
		decimal.NewFromFloat(0.0549),
		240, domain.FrequencyMonthly,
	)
	require.NoError(t, err)

	assert.True(t, result.CanRecast)
	assert.Equal(t, "350000.00", result.NewBalance.StringFixed(2))
	assert.True(t, result.NewPayment.LessThan(result.OldPayment))
	assert.Equal(t, result.OldPayment.Sub(result.NewPayment).StringFixed(2), result.Savings.StringFixed(2))

	// Same amortization, smaller balance: the payment scales linearly.
	expected := result.OldPayment.Mul(decimal.NewFromFloat(0.875))
	got, _ := result.NewPayment.Float64()
	want, _ := expected.Float64()
	assert.InDelta(t, want, got, 0.02)
}

func TestRecast_Rejections(t *testing.T) {
	balance := decimal.NewFromInt(400000)
	rate := decimal.NewFromFloat(0.0549)

	result, err := Recast(balance, decimal.Zero, rate, 240, domain.FrequencyMonthly)
	require.NoError(t, err)
	assert.False(t, result.CanRecast)
	assert.NotEmpty(t, result.Reason)
	assert.Equal(t, "400000.00", result.NewBalance.StringFixed(2), "Rejection leaves the state untouched")
	assert.Equal(t, result.OldPayment.StringFixed(2), result.NewPayment.StringFixed(2))

	result, err = Recast(balance, balance, rate, 240, domain.FrequencyMonthly)
	require.NoError(t, err)
	assert.False(t, result.CanRecast, "Full payoff is not a recast")
}

func TestRecast_ResidualSnapsToZero(t *testing.T) {
	balance := decimal.NewFromInt(400000)
	prepay := balance.Sub(decimal.NewFromFloat(0.005))

	result, err := Recast(balance, prepay, decimal.NewFromFloat(0.0549), 240, domain.FrequencyMonthly)
	require.NoError(t, err)

	assert.True(t, result.CanRecast)
	assert.True(t, result.NewBalance.IsZero())
	assert.True(t, result.NewPayment.IsZero())
	assert.Equal(t, result.OldPayment.StringFixed(2), result.Savings.StringFixed(2))
}
