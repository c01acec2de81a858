package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// Debt-service limits from OSFI guideline B-20 as applied by insured-lending
// rules: GDS 39%, TDS 44%, qualifying floor 5.25%.
var (
	gdsLimit           = decimal.NewFromInt(39)
	tdsLimit           = decimal.NewFromInt(44)
	qualifyingFloor    = decimal.NewFromFloat(0.0525)
	stressRateIncrease = decimal.NewFromFloat(0.02)
	warningFraction    = decimal.NewFromFloat(0.9)
)

// RatioStatus classifies a debt-service ratio against its limit.
type RatioStatus string

const (
	RatioOK          RatioStatus = "ok"
	RatioApproaching RatioStatus = "approaching" // within 90% of the limit
	RatioExceeded    RatioStatus = "exceeded"
)

func classifyRatio(ratio, limit decimal.Decimal) RatioStatus {
	switch {
	case ratio.GreaterThan(limit):
		return RatioExceeded
	case ratio.GreaterThanOrEqual(limit.Mul(warningFraction)):
		return RatioApproaching
	default:
		return RatioOK
	}
}

// HousingCosts is the monthly shelter cost used in the GDS numerator.
// Half of condo fees count, per standard underwriting practice.
func HousingCosts(monthlyPayment, propertyTax, heatingCosts, condoFees decimal.Decimal) decimal.Decimal {
	half := decimal.NewFromFloat(0.5)
	return monthlyPayment.Add(propertyTax).Add(heatingCosts).Add(condoFees.Mul(half))
}

// GDS returns the gross debt service ratio as a percentage (0-100).
func GDS(housingCosts, grossAnnualIncome decimal.Decimal) (decimal.Decimal, error) {
	if grossAnnualIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidBalance
	}
	monthlyIncome := grossAnnualIncome.Div(twelve)
	return housingCosts.Div(monthlyIncome).Mul(hundred), nil
}

// TDS returns the total debt service ratio as a percentage (0-100):
// housing costs plus all other monthly debt payments over monthly income.
func TDS(housingCosts, otherDebtPayments, grossAnnualIncome decimal.Decimal) (decimal.Decimal, error) {
	return GDS(housingCosts.Add(otherDebtPayments), grossAnnualIncome)
}

// StressTestRate is the B-20 qualifying rate: the greater of the contract
// rate plus 2% and the 5.25% floor.
func StressTestRate(contractRate decimal.Decimal) decimal.Decimal {
	qualifying := contractRate.Add(stressRateIncrease)
	if qualifying.LessThan(qualifyingFloor) {
		return qualifyingFloor
	}
	return qualifying
}

// QualifyingPayment is the monthly payment at the qualifying rate.
// Underwriting convention uses a simple monthly rate (annual/12), not the
// semi-annual compounding used for actual mortgage payments.
func QualifyingPayment(principal, qualifyingRate decimal.Decimal, amortizationMonths int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidBalance
	}
	if amortizationMonths <= 0 {
		return decimal.Zero, ErrInvalidAmortization
	}
	if qualifyingRate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	monthly := qualifyingRate.Div(twelve)
	return annuityPayment(principal, monthly, float64(amortizationMonths)), nil
}

// StressTestInput bundles the borrower and loan figures for CheckStressTest.
type StressTestInput struct {
	Principal          decimal.Decimal
	ContractRate       decimal.Decimal
	AmortizationMonths int
	GrossAnnualIncome  decimal.Decimal
	PropertyTax        decimal.Decimal
	HeatingCosts       decimal.Decimal
	CondoFees          decimal.Decimal
	OtherDebtPayments  decimal.Decimal
}

// StressTestResult reports the qualification verdict. A failed test is data,
// not an error.
type StressTestResult struct {
	QualifyingRate    decimal.Decimal `json:"qualifyingRate"`
	QualifyingPayment decimal.Decimal `json:"qualifyingPayment"`
	GDS               decimal.Decimal `json:"gds"`
	TDS               decimal.Decimal `json:"tds"`
	GDSStatus         RatioStatus     `json:"gdsStatus"`
	TDSStatus         RatioStatus     `json:"tdsStatus"`
	Passed            bool            `json:"passed"`
}

// CheckStressTest qualifies a borrower at the stress-test rate and evaluates
// both debt-service ratios against the B-20 limits.
func CheckStressTest(in StressTestInput) (StressTestResult, error) {
	qualifyingRate := StressTestRate(in.ContractRate)
	payment, err := QualifyingPayment(in.Principal, qualifyingRate, in.AmortizationMonths)
	if err != nil {
		return StressTestResult{}, err
	}
	housing := HousingCosts(payment, in.PropertyTax, in.HeatingCosts, in.CondoFees)
	gds, err := GDS(housing, in.GrossAnnualIncome)
	if err != nil {
		return StressTestResult{}, err
	}
	tds, err := TDS(housing, in.OtherDebtPayments, in.GrossAnnualIncome)
	if err != nil {
		return StressTestResult{}, err
	}
	return StressTestResult{
		QualifyingRate:    qualifyingRate,
		QualifyingPayment: payment,
		GDS:               gds,
		TDS:               tds,
		GDSStatus:         classifyRatio(gds, gdsLimit),
		TDSStatus:         classifyRatio(tds, tdsLimit),
		Passed:            gds.LessThanOrEqual(gdsLimit) && tds.LessThanOrEqual(tdsLimit),
	}, nil
}

// MaximumMortgageAmount inverts the stress test: the largest principal whose
// qualifying payment keeps both ratios at their limits. The binding
// constraint is whichever limit allows less room for the mortgage payment.
func MaximumMortgageAmount(contractRate decimal.Decimal, amortizationMonths int, grossAnnualIncome, propertyTax, heatingCosts, condoFees, otherDebtPayments decimal.Decimal) (decimal.Decimal, error) {
	if grossAnnualIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidBalance
	}
	if amortizationMonths <= 0 {
		return decimal.Zero, ErrInvalidAmortization
	}
	monthlyIncome := grossAnnualIncome.Div(twelve)
	half := decimal.NewFromFloat(0.5)
	fixedHousing := propertyTax.Add(heatingCosts).Add(condoFees.Mul(half))

	gdsRoom := monthlyIncome.Mul(gdsLimit).Div(hundred).Sub(fixedHousing)
	tdsRoom := monthlyIncome.Mul(tdsLimit).Div(hundred).Sub(fixedHousing).Sub(otherDebtPayments)
	maxPayment := gdsRoom
	if tdsRoom.LessThan(maxPayment) {
		maxPayment = tdsRoom
	}
	if maxPayment.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	qualifyingRate := StressTestRate(contractRate)
	monthly := qualifyingRate.Div(twelve)
	if monthly.IsZero() {
		return roundCents(maxPayment.Mul(decimal.NewFromInt(int64(amortizationMonths)))), nil
	}
	// PV = P * (1 - (1+r)^-n) / r
	r, _ := monthly.Float64()
	discount := 1 - math.Pow(1+r, -float64(amortizationMonths))
	principal := maxPayment.Mul(decimal.NewFromFloat(discount)).Div(monthly)
	return roundCents(principal), nil
}
