package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInterestDeduction(t *testing.T) {
	savings := InterestDeduction(
		decimal.NewFromInt(390),
		decimal.NewFromInt(100),
		decimal.NewFromFloat(0.30),
	)
	assert.Equal(t, "117.00", savings.StringFixed(2))

	// Mixed-use borrowing: only the investment share deducts.
	partial := InterestDeduction(
		decimal.NewFromInt(390),
		decimal.NewFromInt(50),
		decimal.NewFromFloat(0.30),
	)
	assert.Equal(t, "58.50", partial.StringFixed(2))

	assert.True(t, InterestDeduction(decimal.NewFromInt(390), decimal.Zero, decimal.NewFromFloat(0.30)).IsZero())
}

func TestInvestmentIncomeTax(t *testing.T) {
	marginal := decimal.NewFromFloat(0.30)

	tests := []struct {
		name       string
		income     int64
		incomeType IncomeType
		want       string
	}{
		{"interest fully taxable", 420, IncomeInterest, "126.00"},
		{"capital gains at half inclusion", 420, IncomeCapitalGains, "63.00"},
		{"eligible dividends grossed up less credit", 1000, IncomeEligibleDividend, "206.73"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := InvestmentIncomeTax(decimal.NewFromInt(tt.income), tt.incomeType, marginal)
			assert.Equal(t, tt.want, tax.StringFixed(2))
		})
	}
}

func TestInvestmentIncomeTax_DividendCreditFloorsAtZero(t *testing.T) {
	// At a low marginal rate the dividend credit exceeds the tax owed.
	tax := InvestmentIncomeTax(decimal.NewFromInt(1000), IncomeEligibleDividend, decimal.NewFromFloat(0.10))
	assert.True(t, tax.IsZero())
}

func TestInvestmentIncomeTax_NoIncome(t *testing.T) {
	assert.True(t, InvestmentIncomeTax(decimal.Zero, IncomeInterest, decimal.NewFromFloat(0.30)).IsZero())
	assert.True(t, InvestmentIncomeTax(decimal.NewFromInt(-50), IncomeInterest, decimal.NewFromFloat(0.30)).IsZero())
}
