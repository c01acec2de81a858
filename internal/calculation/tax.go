package calculation

import (
	"github.com/shopspring/decimal"
)

// IncomeType is the Canadian tax character of investment income.
type IncomeType string

const (
	IncomeInterest         IncomeType = "interest"
	IncomeCapitalGains     IncomeType = "capital_gains"
	IncomeEligibleDividend IncomeType = "eligible_dividends"
)

var (
	capitalGainsInclusion = decimal.NewFromFloat(0.5)
	dividendGrossUp       = decimal.NewFromFloat(1.38)
	dividendTaxCredit     = decimal.NewFromFloat(0.150198) // federal eligible-dividend credit on grossed-up amount
)

// InterestDeduction is the tax savings from deductible borrowing costs:
// only the portion of interest tied to investment use qualifies.
// investmentUsePercent is 0-100; marginalTaxRate is a decimal.
func InterestDeduction(interestPaid, investmentUsePercent, marginalTaxRate decimal.Decimal) decimal.Decimal {
	eligible := interestPaid.Mul(investmentUsePercent).Div(hundred)
	return roundCents(eligible.Mul(marginalTaxRate))
}

// InvestmentIncomeTax estimates the tax on investment income by its
// character. Interest is fully taxable; capital gains at the 50% inclusion
// rate; eligible dividends are grossed up and offset by the dividend tax
// credit.
func InvestmentIncomeTax(income decimal.Decimal, incomeType IncomeType, marginalTaxRate decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	switch incomeType {
	case IncomeCapitalGains:
		return roundCents(income.Mul(capitalGainsInclusion).Mul(marginalTaxRate))
	case IncomeEligibleDividend:
		grossed := income.Mul(dividendGrossUp)
		tax := grossed.Mul(marginalTaxRate).Sub(grossed.Mul(dividendTaxCredit))
		if tax.IsNegative() {
			tax = decimal.Zero
		}
		return roundCents(tax)
	default:
		return roundCents(income.Mul(marginalTaxRate))
	}
}
