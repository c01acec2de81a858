package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlacroix/canmort/internal/domain"
)

func TestBlendAndExtend(t *testing.T) {
	result, err := BlendAndExtend(BlendAndExtendInput{
		Balance:                     decimal.NewFromInt(400000),
		CurrentRate:                 decimal.NewFromFloat(0.055),
		MarketRate:                  decimal.NewFromFloat(0.04),
		MonthsRemainingInTerm:       24,
		NewTermMonths:               60,
		RemainingAmortizationMonths: 300,
		Frequency:                   domain.FrequencyMonthly,
	})
	require.NoError(t, err)

	assert.True(t, result.CanBlend)
	// 24 months at 5.5% and 36 at 4%, weighted over 60.
	assert.Equal(t, "0.0460", result.BlendedRate.StringFixed(4))
	assert.True(t, result.NewPayment.LessThan(result.OldPayment))
}

func TestBlendAndExtend_MaturedTerm(t *testing.T) {
	result, err := BlendAndExtend(BlendAndExtendInput{
		Balance:                     decimal.NewFromInt(400000),
		CurrentRate:                 decimal.NewFromFloat(0.055),
		MarketRate:                  decimal.NewFromFloat(0.04),
		MonthsRemainingInTerm:       0,
		NewTermMonths:               60,
		RemainingAmortizationMonths: 300,
		Frequency:                   domain.FrequencyMonthly,
	})
	require.NoError(t, err)
	assert.False(t, result.CanBlend)
	assert.NotEmpty(t, result.Reason)
}

func TestBlendAndExtend_TermTooShort(t *testing.T) {
	result, err := BlendAndExtend(BlendAndExtendInput{
		Balance:                     decimal.NewFromInt(400000),
		CurrentRate:                 decimal.NewFromFloat(0.055),
		MarketRate:                  decimal.NewFromFloat(0.04),
		MonthsRemainingInTerm:       24,
		NewTermMonths:               24,
		RemainingAmortizationMonths: 300,
		Frequency:                   domain.FrequencyMonthly,
	})
	require.NoError(t, err)
	assert.False(t, result.CanBlend, "Extension must add time beyond the current term")
}

func TestBlendAndExtend_InvalidAmortization(t *testing.T) {
	_, err := BlendAndExtend(BlendAndExtendInput{
		Balance:               decimal.NewFromInt(400000),
		CurrentRate:           decimal.NewFromFloat(0.055),
		MonthsRemainingInTerm: 24,
		NewTermMonths:         60,
		Frequency:             domain.FrequencyMonthly,
	})
	assert.ErrorIs(t, err, ErrInvalidAmortization)
}
