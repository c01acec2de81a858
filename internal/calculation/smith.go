package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// ProjectionInput is the full starting state for a Smith Maneuver
// projection: the strategy plus the numeric mortgage, HELOC and investment
// positions it operates on.
type ProjectionInput struct {
	Strategy        domain.SmithStrategy
	MortgageBalance decimal.Decimal
	HomeValue       decimal.Decimal
	MaxLTVPercent   decimal.Decimal
	HelocBalance    decimal.Decimal
	InvestmentValue decimal.Decimal
	PrimeRate       decimal.Decimal // percentage points
	InterestSpread  decimal.Decimal // percentage points
	IncomeType      IncomeType
}

// ProjectSmithManeuver runs the year-indexed state machine for exactly
// ProjectionYears iterations. Per year: apply the configured prepayment to
// the mortgage, re-borrow the freed HELOC room at the borrowing percentage
// and invest it immediately, accrue a year of HELOC interest and investment
// returns, then settle tax savings, net benefit and risk ratios. The loop
// never terminates early; a paid-off mortgage leaves the HELOC and
// investment dynamics running for the remaining years. Re-running with
// identical input reproduces the identical sequence.
func ProjectSmithManeuver(in ProjectionInput) ([]domain.YearlyProjectionPoint, error) {
	if in.Strategy.ProjectionYears <= 0 {
		return nil, ErrInvalidAmortization
	}
	if in.MortgageBalance.IsNegative() || in.HelocBalance.IsNegative() || in.InvestmentValue.IsNegative() {
		return nil, ErrInvalidBalance
	}

	mortgage := in.MortgageBalance
	heloc := in.HelocBalance
	investment := in.InvestmentValue
	borrowFraction := in.Strategy.BorrowingPercent.Div(hundred)
	helocRate := helocAnnualRate(in.PrimeRate, in.InterestSpread)

	var (
		points                  []domain.YearlyProjectionPoint
		cumPrepay, cumBorrowing decimal.Decimal
	)
	for year := 1; year <= in.Strategy.ProjectionYears; year++ {
		prepay := in.Strategy.PrepaymentFrequency.AnnualAmount(in.Strategy.PrepaymentAmount, year)
		if prepay.GreaterThan(mortgage) {
			prepay = mortgage
		}

		roomIncrease := CreditRoomIncrease(prepay, in.HomeValue, in.MaxLTVPercent, mortgage)
		borrow := roomIncrease.Mul(borrowFraction)
		mortgage = mortgage.Sub(prepay)
		heloc = heloc.Add(borrow)
		investment = investment.Add(borrow)

		helocInterest := roundCents(heloc.Mul(helocRate))
		returns := roundCents(investment.Mul(in.Strategy.ExpectedReturnRate))

		taxSavings := InterestDeduction(helocInterest, in.Strategy.InvestmentUsePercent, in.Strategy.MarginalTaxRate)
		investmentTax := InvestmentIncomeTax(returns, in.IncomeType, in.Strategy.MarginalTaxRate)
		netBenefit := returns.Sub(investmentTax).Sub(helocInterest.Sub(taxSavings))

		investment = investment.Add(returns)
		cumPrepay = cumPrepay.Add(prepay)
		cumBorrowing = cumBorrowing.Add(borrow)

		points = append(points, domain.YearlyProjectionPoint{
			Year:              year,
			MortgageBalance:   roundCents(mortgage),
			HelocBalance:      roundCents(heloc),
			InvestmentValue:   roundCents(investment),
			TotalPrepayments:  roundCents(cumPrepay),
			TotalBorrowings:   roundCents(cumBorrowing),
			HelocInterestPaid: helocInterest,
			InvestmentReturns: returns,
			TaxSavings:        taxSavings,
			NetBenefit:        roundCents(netBenefit),
			LeverageRatio:     domain.NewRiskRatio(heloc, investment),
			InterestCoverage:  domain.NewRiskRatio(returns, helocInterest),
		})
	}
	return points, nil
}

// ROIResult aggregates a projection into strategy-level analytics.
type ROIResult struct {
	TotalPrepayments  decimal.Decimal  `json:"totalPrepayments"`
	TotalBorrowings   decimal.Decimal  `json:"totalBorrowings"`
	TotalInterestPaid decimal.Decimal  `json:"totalInterestPaid"`
	TotalTaxSavings   decimal.Decimal  `json:"totalTaxSavings"`
	TotalReturns      decimal.Decimal  `json:"totalReturns"`
	TotalNetBenefit   decimal.Decimal  `json:"totalNetBenefit"`
	ROI               domain.RiskRatio `json:"roi"`
	BreakEvenYear     int              `json:"breakEvenYear"` // 0 when never positive
}

// ROIAnalysis sums a projection. ROI is cumulative net benefit over total
// borrowings; break-even is the first year cumulative net benefit turns
// positive.
func ROIAnalysis(points []domain.YearlyProjectionPoint) ROIResult {
	var result ROIResult
	cumNet := decimal.Zero
	for _, p := range points {
		result.TotalInterestPaid = result.TotalInterestPaid.Add(p.HelocInterestPaid)
		result.TotalTaxSavings = result.TotalTaxSavings.Add(p.TaxSavings)
		result.TotalReturns = result.TotalReturns.Add(p.InvestmentReturns)
		cumNet = cumNet.Add(p.NetBenefit)
		if result.BreakEvenYear == 0 && cumNet.GreaterThan(decimal.Zero) {
			result.BreakEvenYear = p.Year
		}
	}
	if n := len(points); n > 0 {
		result.TotalPrepayments = points[n-1].TotalPrepayments
		result.TotalBorrowings = points[n-1].TotalBorrowings
	}
	result.TotalNetBenefit = cumNet
	result.ROI = domain.NewRiskRatio(cumNet, result.TotalBorrowings)
	return result
}
