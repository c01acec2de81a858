package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrepaymentFrequency controls how often the Smith Maneuver strategy applies
// its configured prepayment.
type PrepaymentFrequency string

const (
	PrepayMonthly   PrepaymentFrequency = "monthly"
	PrepayQuarterly PrepaymentFrequency = "quarterly"
	PrepayAnnually  PrepaymentFrequency = "annually"
	PrepayLumpSum   PrepaymentFrequency = "lump_sum"
)

// AnnualAmount converts a per-occurrence prepayment into the total applied
// in a given projection year (1-based). Lump sums apply in year 1 only.
func (f PrepaymentFrequency) AnnualAmount(amount decimal.Decimal, year int) decimal.Decimal {
	switch f {
	case PrepayMonthly:
		return amount.Mul(decimal.NewFromInt(12))
	case PrepayQuarterly:
		return amount.Mul(decimal.NewFromInt(4))
	case PrepayAnnually:
		return amount
	case PrepayLumpSum:
		if year == 1 {
			return amount
		}
		return decimal.Zero
	}
	return decimal.Zero
}

// SmithStrategy configures a Smith Maneuver projection. It holds no computed
// results. Fields named *Percent are 0-100; *Rate fields are decimals
// (0.07 for 7%).
type SmithStrategy struct {
	StartDate            time.Time           `yaml:"start_date" json:"startDate"`
	PrepaymentAmount     decimal.Decimal     `yaml:"prepayment_amount" json:"prepaymentAmount"`
	PrepaymentFrequency  PrepaymentFrequency `yaml:"prepayment_frequency" json:"prepaymentFrequency"`
	BorrowingPercent     decimal.Decimal     `yaml:"borrowing_percent" json:"borrowingPercent"`
	ExpectedReturnRate   decimal.Decimal     `yaml:"expected_return_rate" json:"expectedReturnRate"`
	MarginalTaxRate      decimal.Decimal     `yaml:"marginal_tax_rate" json:"marginalTaxRate"`
	InvestmentUsePercent decimal.Decimal     `yaml:"investment_use_percent" json:"investmentUsePercent"`
	ProjectionYears      int                 `yaml:"projection_years" json:"projectionYears"`
}

// RiskRatio is a ratio with explicit zero-denominator semantics: when the
// denominator is zero the ratio is 0 if the numerator is also zero, infinite
// otherwise. decimal has no Inf, so the sentinel is carried as a flag.
type RiskRatio struct {
	Value    decimal.Decimal `json:"value"`
	Infinite bool            `json:"infinite"`
}

// NewRiskRatio divides numerator by denominator with the documented
// zero-denominator handling.
func NewRiskRatio(numerator, denominator decimal.Decimal) RiskRatio {
	if denominator.IsZero() {
		return RiskRatio{Infinite: numerator.GreaterThan(decimal.Zero)}
	}
	return RiskRatio{Value: numerator.Div(denominator)}
}

// String renders the ratio for reports.
func (r RiskRatio) String() string {
	if r.Infinite {
		return "inf"
	}
	return r.Value.StringFixed(2)
}

// YearlyProjectionPoint is one simulated year of a Smith Maneuver
// projection. Generated fresh on every projection call; never persisted by
// the engine.
type YearlyProjectionPoint struct {
	Year              int             `json:"year"`
	MortgageBalance   decimal.Decimal `json:"mortgageBalance"`
	HelocBalance      decimal.Decimal `json:"helocBalance"`
	InvestmentValue   decimal.Decimal `json:"investmentValue"`
	TotalPrepayments  decimal.Decimal `json:"totalPrepayments"`
	TotalBorrowings   decimal.Decimal `json:"totalBorrowings"`
	HelocInterestPaid decimal.Decimal `json:"helocInterestPaid"`
	InvestmentReturns decimal.Decimal `json:"investmentReturns"`
	TaxSavings        decimal.Decimal `json:"taxSavings"`
	NetBenefit        decimal.Decimal `json:"netBenefit"`
	LeverageRatio     RiskRatio       `json:"leverageRatio"`
	InterestCoverage  RiskRatio       `json:"interestCoverage"`
}
