package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPremiumRate(t *testing.T) {
	tests := []struct {
		name string
		ltv  float64
		want string
	}{
		{"conventional pays nothing", 80, "0.00"},
		{"lowest band", 65, "0.00"},
		{"mid band", 82.5, "2.40"},
		{"ninety percent", 90, "2.80"},
		{"ninety-five percent", 95, "3.10"},
		{"top band", 97, "4.00"},
		{"full leverage", 100, "4.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := PremiumRate(ProviderCMHC, decimal.NewFromFloat(tt.ltv))
			require.NoError(t, err)
			assert.Equal(t, tt.want, rate.StringFixed(2))
		})
	}
}

func TestPremiumRate_Uninsurable(t *testing.T) {
	_, err := PremiumRate(ProviderCMHC, decimal.NewFromFloat(100.01))
	assert.ErrorIs(t, err, ErrInvalidLTV)

	_, err = PremiumRate(InsuranceProvider("acme"), decimal.NewFromInt(90))
	assert.ErrorIs(t, err, ErrInvalidLTV)
}

func TestIsHighRatio(t *testing.T) {
	assert.False(t, IsHighRatio(decimal.NewFromInt(80)))
	assert.True(t, IsHighRatio(decimal.NewFromFloat(80.01)))
}

func TestInsurancePremium(t *testing.T) {
	result, err := InsurancePremium(
		ProviderCMHC,
		decimal.NewFromInt(450000),
		decimal.NewFromInt(500000),
		MLINone, PremiumCapitalized,
	)
	require.NoError(t, err)

	assert.Equal(t, "90.00", result.LTV.StringFixed(2))
	assert.True(t, result.HighRatio)
	assert.Equal(t, "2.80", result.PremiumRate.StringFixed(2))
	assert.Equal(t, "12600.00", result.Premium.StringFixed(2))
	assert.Equal(t, "462600.00", result.TotalMortgageAmount.StringFixed(2), "Capitalized premium joins the principal")
}

func TestInsurancePremium_MLISelectDiscount(t *testing.T) {
	result, err := InsurancePremium(
		ProviderCMHC,
		decimal.NewFromInt(450000),
		decimal.NewFromInt(500000),
		MLILevel20, PremiumUpfront,
	)
	require.NoError(t, err)

	assert.Equal(t, "10080.00", result.Premium.StringFixed(2), "20% off the standard premium")
	assert.Equal(t, "450000.00", result.TotalMortgageAmount.StringFixed(2), "Upfront premium stays out of the principal")
}

func TestInsurancePremium_Conventional(t *testing.T) {
	result, err := InsurancePremium(
		ProviderSagen,
		decimal.NewFromInt(400000),
		decimal.NewFromInt(500000),
		MLINone, PremiumUpfront,
	)
	require.NoError(t, err)

	assert.False(t, result.HighRatio)
	assert.True(t, result.Premium.IsZero())
}

func TestInsurancePremium_Invalid(t *testing.T) {
	_, err := InsurancePremium(ProviderCMHC, decimal.NewFromInt(510000), decimal.NewFromInt(500000), MLINone, PremiumUpfront)
	assert.ErrorIs(t, err, ErrInvalidLTV, "Underwater loans are uninsurable")

	_, err = InsurancePremium(ProviderCMHC, decimal.NewFromInt(450000), decimal.Zero, MLINone, PremiumUpfront)
	assert.ErrorIs(t, err, ErrInvalidBalance)
}
