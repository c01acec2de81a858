package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func TestClampVariableRate(t *testing.T) {
	current := decimal.NewFromFloat(0.05)
	capWidth := decimalPtr(0.02)
	floor := decimalPtr(0.03)

	result, err := ClampVariableRate(decimal.NewFromFloat(0.06), current, capWidth, floor)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "0.0600", result.EffectiveRate.StringFixed(4))

	result, err = ClampVariableRate(decimal.NewFromFloat(0.08), current, capWidth, floor)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.True(t, result.ClampedAtCap)
	assert.Equal(t, "0.0700", result.EffectiveRate.StringFixed(4), "Cap is a width above the current rate")

	result, err = ClampVariableRate(decimal.NewFromFloat(0.02), current, capWidth, floor)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.True(t, result.ClampedAtFloor)
	assert.Equal(t, "0.0300", result.EffectiveRate.StringFixed(4), "Floor is an absolute rate")
}

func TestClampVariableRate_Unbounded(t *testing.T) {
	result, err := ClampVariableRate(decimal.NewFromFloat(0.15), decimal.NewFromFloat(0.05), nil, nil)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "0.1500", result.EffectiveRate.StringFixed(4))
}

func TestClampVariableRate_Invalid(t *testing.T) {
	_, err := ClampVariableRate(decimal.NewFromFloat(-0.01), decimal.NewFromFloat(0.05), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestApproachingLimits(t *testing.T) {
	base := decimal.NewFromFloat(0.045)
	capWidth := decimalPtr(0.02) // upper bound 0.065
	floor := decimalPtr(0.03)    // width below base 0.015

	near := ApproachingLimits(decimal.NewFromFloat(0.064), base, capWidth, floor, decimal.Zero)
	assert.True(t, near.ApproachingCap, "Within 10% of the cap width")
	assert.False(t, near.ApproachingFloor)

	low := ApproachingLimits(decimal.NewFromFloat(0.031), base, capWidth, floor, decimal.Zero)
	assert.False(t, low.ApproachingCap)
	assert.True(t, low.ApproachingFloor)

	mid := ApproachingLimits(decimal.NewFromFloat(0.05), base, capWidth, floor, decimal.Zero)
	assert.False(t, mid.ApproachingCap)
	assert.False(t, mid.ApproachingFloor)
}

func TestApproachingLimits_CustomThreshold(t *testing.T) {
	base := decimal.NewFromFloat(0.045)
	capWidth := decimalPtr(0.02)

	// 0.06 is 0.005 from the cap: outside the 10% default but inside 30%.
	rate := decimal.NewFromFloat(0.06)
	assert.False(t, ApproachingLimits(rate, base, capWidth, nil, decimal.Zero).ApproachingCap)
	assert.True(t, ApproachingLimits(rate, base, capWidth, nil, decimal.NewFromFloat(0.3)).ApproachingCap)
}
