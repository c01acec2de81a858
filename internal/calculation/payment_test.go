package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlacroix/canmort/internal/domain"
)

func TestCalculatePayment(t *testing.T) {
	balance := decimal.NewFromInt(450000)
	rate := decimal.NewFromFloat(0.0549)

	tests := []struct {
		name      string
		frequency domain.PaymentFrequency
		expected  string
	}{
		{"monthly", domain.FrequencyMonthly, "2744.14"},
		{"biweekly re-solves the annuity", domain.FrequencyBiweekly, "1264.99"},
		{"accelerated biweekly is half the monthly", domain.FrequencyAcceleratedBiweekly, "1372.07"},
		{"accelerated weekly is a quarter of the monthly", domain.FrequencyAcceleratedWeekly, "686.04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := CalculatePayment(balance, rate, 300, tt.frequency)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, payment.StringFixed(2))
		})
	}
}

func TestCalculatePayment_ZeroRate(t *testing.T) {
	payment, err := CalculatePayment(decimal.NewFromInt(120000), decimal.Zero, 120, domain.FrequencyMonthly)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", payment.StringFixed(2), "Zero rate amortizes linearly")
}

func TestCalculatePayment_InvalidAmortization(t *testing.T) {
	_, err := CalculatePayment(decimal.NewFromInt(100000), decimal.NewFromFloat(0.05), 0, domain.FrequencyMonthly)
	assert.ErrorIs(t, err, ErrInvalidAmortization)
}

func TestPaymentMonotonicity(t *testing.T) {
	balance := decimal.NewFromInt(400000)

	// Payment strictly increases with rate.
	prev := decimal.Zero
	for _, rate := range []float64{0.02, 0.04, 0.06, 0.08} {
		payment, err := CalculatePayment(balance, decimal.NewFromFloat(rate), 300, domain.FrequencyMonthly)
		require.NoError(t, err)
		assert.True(t, payment.GreaterThan(prev), "payment at %v should exceed payment at lower rate", rate)
		prev = payment
	}

	// Payment strictly decreases as amortization lengthens.
	prev = decimal.NewFromInt(1 << 30)
	for _, months := range []int{120, 180, 240, 300, 360} {
		payment, err := CalculatePayment(balance, decimal.NewFromFloat(0.0549), months, domain.FrequencyMonthly)
		require.NoError(t, err)
		assert.True(t, payment.LessThan(prev), "payment over %d months should be below shorter amortization", months)
		prev = payment
	}
}

func TestCalculatePaymentBreakdown(t *testing.T) {
	breakdown, err := CalculatePaymentBreakdown(BreakdownInput{
		Balance:               decimal.NewFromInt(450000),
		RegularPaymentAmount:  decimal.NewFromFloat(2744.14),
		ExtraPrepaymentAmount: decimal.NewFromInt(500),
		AnnualRate:            decimal.NewFromFloat(0.0549),
		Frequency:             domain.FrequencyMonthly,
	})
	require.NoError(t, err)

	assert.Equal(t, "2035.59", breakdown.Interest.StringFixed(2))
	assert.Equal(t, "708.55", breakdown.Principal.StringFixed(2))
	assert.Equal(t, "1208.55", breakdown.TotalPrincipal.StringFixed(2), "Prepayment goes entirely to principal")
	assert.False(t, breakdown.TriggerRateHit)
}

func TestCalculatePaymentBreakdown_TriggerHit(t *testing.T) {
	// Payment below the interest portion: principal floors at zero and the
	// trigger flag is set.
	breakdown, err := CalculatePaymentBreakdown(BreakdownInput{
		Balance:              decimal.NewFromInt(450000),
		RegularPaymentAmount: decimal.NewFromInt(1500),
		AnnualRate:           decimal.NewFromFloat(0.0549),
		Frequency:            domain.FrequencyMonthly,
	})
	require.NoError(t, err)

	assert.True(t, breakdown.TriggerRateHit)
	assert.True(t, breakdown.Principal.IsZero())
}

func TestRemainingAmortization(t *testing.T) {
	months, err := RemainingAmortization(
		decimal.NewFromInt(450000),
		decimal.NewFromFloat(2744.14),
		decimal.NewFromFloat(0.0549),
		domain.FrequencyMonthly,
	)
	require.NoError(t, err)
	assert.InDelta(t, 300, months, 1, "Payment solved for 300 months inverts back")
}

func TestRemainingAmortization_Undefined(t *testing.T) {
	months, err := RemainingAmortization(
		decimal.NewFromInt(450000),
		decimal.NewFromInt(1500),
		decimal.NewFromFloat(0.0549),
		domain.FrequencyMonthly,
	)
	require.NoError(t, err)
	assert.Equal(t, AmortizationUndefined, months, "Interest-only or worse never amortizes")
}

func TestPrepaymentRoom(t *testing.T) {
	original := decimal.NewFromInt(500000)
	limit := decimal.NewFromInt(15) // 15% privilege = $75,000/year

	room := PrepaymentRoom(original, limit, decimal.Zero, decimal.NewFromInt(50000))
	assert.Equal(t, "25000.00", room.StringFixed(2))

	room = PrepaymentRoom(original, limit, decimal.NewFromInt(10000), decimal.NewFromInt(50000))
	assert.Equal(t, "35000.00", room.StringFixed(2), "Unused room carried forward extends the privilege")

	room = PrepaymentRoom(original, limit, decimal.Zero, decimal.NewFromInt(80000))
	assert.True(t, room.IsZero(), "Room never goes negative")
}

func TestWithinPrepaymentLimit(t *testing.T) {
	original := decimal.NewFromInt(500000)
	limit := decimal.NewFromInt(15) // 15% privilege = $75,000/year

	assert.True(t, WithinPrepaymentLimit(decimal.NewFromInt(50000), decimal.Zero, original, limit, decimal.Zero))
	assert.True(t, WithinPrepaymentLimit(decimal.NewFromInt(25000), decimal.NewFromInt(50000), original, limit, decimal.Zero),
		"Limit is based on the original amount, not the balance")
	assert.False(t, WithinPrepaymentLimit(decimal.NewFromInt(25001), decimal.NewFromInt(50000), original, limit, decimal.Zero))
	assert.True(t, WithinPrepaymentLimit(decimal.NewFromInt(25001), decimal.NewFromInt(50000), original, limit, decimal.NewFromInt(5000)))
}
