package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlacroix/canmort/internal/domain"
)

func TestChangeFrequency_ToAcceleratedBiweekly(t *testing.T) {
	result, err := ChangeFrequency(
		decimal.NewFromInt(450000),
		decimal.NewFromFloat(0.0549),
		300,
		domain.FrequencyMonthly,
		domain.FrequencyAcceleratedBiweekly,
	)
	require.NoError(t, err)

	assert.True(t, result.CanChange)
	assert.Equal(t, "1372.07", result.NewPayment.StringFixed(2), "Half the monthly payment, 26 times a year")
	assert.Equal(t, "32929.68", result.AnnualPaymentOld.StringFixed(2))
	assert.Equal(t, "35673.82", result.AnnualPaymentNew.StringFixed(2))
	assert.Equal(t, "2744.14", result.AnnualAccelerated.StringFixed(2), "One extra monthly payment per year")
}

func TestChangeFrequency_ToBiweekly(t *testing.T) {
	result, err := ChangeFrequency(
		decimal.NewFromInt(450000),
		decimal.NewFromFloat(0.0549),
		300,
		domain.FrequencyMonthly,
		domain.FrequencyBiweekly,
	)
	require.NoError(t, err)

	assert.True(t, result.CanChange)
	assert.Equal(t, "1264.99", result.NewPayment.StringFixed(2))
	assert.True(t, result.AnnualAccelerated.IsZero(), "Plain biweekly re-solves the annuity, no acceleration")
}

func TestChangeFrequency_SameFrequency(t *testing.T) {
	result, err := ChangeFrequency(
		decimal.NewFromInt(450000),
		decimal.NewFromFloat(0.0549),
		300,
		domain.FrequencyMonthly,
		domain.FrequencyMonthly,
	)
	require.NoError(t, err)

	assert.False(t, result.CanChange, "Same-frequency change is a verdict, not an error")
	assert.NotEmpty(t, result.Reason)
}
