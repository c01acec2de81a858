package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrepaymentFrequencyAnnualAmount(t *testing.T) {
	amount := decimal.NewFromInt(500)

	tests := []struct {
		name      string
		frequency PrepaymentFrequency
		year      int
		want      string
	}{
		{"monthly totals twelve payments", PrepayMonthly, 1, "6000.00"},
		{"quarterly totals four", PrepayQuarterly, 3, "2000.00"},
		{"annually passes through", PrepayAnnually, 5, "500.00"},
		{"lump sum in year one", PrepayLumpSum, 1, "500.00"},
		{"lump sum after year one", PrepayLumpSum, 2, "0.00"},
		{"unknown frequency", PrepaymentFrequency("biweekly"), 1, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.frequency.AnnualAmount(amount, tt.year)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestNewRiskRatio(t *testing.T) {
	plain := NewRiskRatio(decimal.NewFromInt(6000), decimal.NewFromInt(6420))
	assert.False(t, plain.Infinite)
	assert.Equal(t, "0.93", plain.String())

	zeroOverZero := NewRiskRatio(decimal.Zero, decimal.Zero)
	assert.False(t, zeroOverZero.Infinite)
	assert.Equal(t, "0.00", zeroOverZero.String())

	overZero := NewRiskRatio(decimal.NewFromInt(100), decimal.Zero)
	assert.True(t, overZero.Infinite)
	assert.Equal(t, "inf", overZero.String())
}

func TestHELOCAvailableCredit(t *testing.T) {
	h := &HELOCAccount{
		CreditLimit:    decimal.NewFromInt(100000),
		CurrentBalance: decimal.NewFromInt(40000),
	}
	assert.Equal(t, "60000.00", h.AvailableCredit().StringFixed(2))

	h.CurrentBalance = decimal.NewFromInt(120000)
	assert.True(t, h.AvailableCredit().IsZero(), "Over-limit balance floors at zero")
}
