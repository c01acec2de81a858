package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlacroix/canmort/internal/domain"
)

func TestEffectivePeriodicRate_Monthly(t *testing.T) {
	periodic, err := EffectivePeriodicRate(decimal.NewFromFloat(0.0549), domain.FrequencyMonthly)
	require.NoError(t, err)

	f, _ := periodic.Float64()
	assert.InDelta(t, 0.0045235345, f, 1e-9, "Semi-annual compounding periodic rate")
}

func TestEffectivePeriodicRate_Invalid(t *testing.T) {
	_, err := EffectivePeriodicRate(decimal.NewFromFloat(-0.01), domain.FrequencyMonthly)
	assert.ErrorIs(t, err, ErrInvalidRate, "Negative rate is a contract violation")

	_, err = EffectivePeriodicRate(decimal.NewFromFloat(0.05), domain.PaymentFrequency("daily"))
	assert.ErrorIs(t, err, ErrInvalidFrequency, "Unknown frequency is a contract violation")
}

func TestRateConversionRoundTrip(t *testing.T) {
	// Compounding the periodic rate back paymentsPerYear times must
	// reproduce the effective annual rate, independent of frequency.
	frequencies := []domain.PaymentFrequency{
		domain.FrequencyMonthly,
		domain.FrequencySemiMonthly,
		domain.FrequencyBiweekly,
		domain.FrequencyAcceleratedBiweekly,
		domain.FrequencyWeekly,
		domain.FrequencyAcceleratedWeekly,
	}
	rates := []float64{0.0, 0.0299, 0.0549, 0.10}

	for _, freq := range frequencies {
		for _, rate := range rates {
			annual := decimal.NewFromFloat(rate)
			periodic, err := EffectivePeriodicRate(annual, freq)
			require.NoError(t, err)
			ear, err := EffectiveAnnualRate(annual)
			require.NoError(t, err)
			perYear, err := PaymentsPerYear(freq)
			require.NoError(t, err)

			p, _ := periodic.Float64()
			want, _ := ear.Float64()
			got := pow1p(p, perYear)
			assert.InDelta(t, want, got, 1e-9, "round trip for %s at %v", freq, rate)
		}
	}
}

func pow1p(p float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= 1 + p
	}
	return result - 1
}

func TestTriggerRate_InvertsInterestOnlyPayment(t *testing.T) {
	balance := decimal.NewFromInt(450000)
	payment := decimal.NewFromFloat(2744.14)

	trigger, err := TriggerRate(payment, balance, domain.FrequencyMonthly)
	require.NoError(t, err)

	f, _ := trigger.Float64()
	assert.InDelta(t, 0.0743018, f, 1e-6, "Rate where the payment is exactly interest-only")
}

func TestTriggerRate_RoundTrip(t *testing.T) {
	// At the trigger rate the interest portion equals the payment.
	balance := decimal.NewFromInt(380000)
	payment := decimal.NewFromFloat(1900.00)

	trigger, err := TriggerRate(payment, balance, domain.FrequencyBiweekly)
	require.NoError(t, err)
	interest, err := InterestPortion(balance, trigger, domain.FrequencyBiweekly)
	require.NoError(t, err)

	p, _ := payment.Float64()
	i, _ := interest.Float64()
	assert.InDelta(t, p, i, 0.01)
}

func TestTriggerRate_InvalidBalance(t *testing.T) {
	_, err := TriggerRate(decimal.NewFromInt(1000), decimal.Zero, domain.FrequencyMonthly)
	assert.ErrorIs(t, err, ErrInvalidBalance)
}
