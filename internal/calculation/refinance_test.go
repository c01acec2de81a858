package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlacroix/canmort/internal/domain"
)

func TestAnalyzeRefinance_Worthwhile(t *testing.T) {
	result, err := AnalyzeRefinance(RefinanceInput{
		Balance:                     decimal.NewFromInt(400000),
		CurrentRate:                 decimal.NewFromFloat(0.06),
		NewRate:                     decimal.NewFromFloat(0.04),
		MarketRate:                  decimal.NewFromFloat(0.055),
		MonthsRemainingInTerm:       24,
		RemainingAmortizationMonths: 300,
		Frequency:                   domain.FrequencyMonthly,
		TermType:                    domain.TermFixed,
		ClosingCosts:                decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	// 3-month interest ($6,000) beats the small IRD at a 0.5% differential.
	assert.Equal(t, MethodThreeMonth, result.Penalty.Method)
	assert.Equal(t, "6000.00", result.Penalty.Amount.StringFixed(2))

	assert.Equal(t, "2559.23", result.OldPayment.StringFixed(2))
	assert.Equal(t, "2104.08", result.NewPayment.StringFixed(2))
	assert.Equal(t, "455.15", result.PaymentSavings.StringFixed(2))

	// 2% saved on $400,000 over the 2 years left in the term.
	assert.Equal(t, "16000.00", result.InterestSavings.StringFixed(2))
	assert.Equal(t, "8500.00", result.NetBenefit.StringFixed(2))
	assert.Equal(t, 17, result.BreakEvenMonths)
	assert.True(t, result.Worthwhile)
}

func TestAnalyzeRefinance_PenaltyEatsTheSavings(t *testing.T) {
	result, err := AnalyzeRefinance(RefinanceInput{
		Balance:                     decimal.NewFromInt(400000),
		CurrentRate:                 decimal.NewFromFloat(0.055),
		NewRate:                     decimal.NewFromFloat(0.04),
		MarketRate:                  decimal.NewFromFloat(0.04),
		MonthsRemainingInTerm:       24,
		RemainingAmortizationMonths: 300,
		Frequency:                   domain.FrequencyMonthly,
		TermType:                    domain.TermFixed,
		ClosingCosts:                decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	assert.Equal(t, MethodIRD, result.Penalty.Method)
	assert.Equal(t, "12000.00", result.Penalty.Amount.StringFixed(2))
	assert.Equal(t, "-1500.00", result.NetBenefit.StringFixed(2), "IRD plus closing costs exceed the interest saved")
	assert.False(t, result.Worthwhile)
}

func TestAnalyzeRefinance_RateIncrease(t *testing.T) {
	result, err := AnalyzeRefinance(RefinanceInput{
		Balance:                     decimal.NewFromInt(400000),
		CurrentRate:                 decimal.NewFromFloat(0.04),
		NewRate:                     decimal.NewFromFloat(0.055),
		MarketRate:                  decimal.NewFromFloat(0.055),
		MonthsRemainingInTerm:       24,
		RemainingAmortizationMonths: 300,
		Frequency:                   domain.FrequencyMonthly,
		TermType:                    domain.TermFixed,
		ClosingCosts:                decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	assert.True(t, result.InterestSavings.IsZero())
	assert.Equal(t, 0, result.BreakEvenMonths, "Higher payment never breaks even")
	assert.False(t, result.Worthwhile)
}
