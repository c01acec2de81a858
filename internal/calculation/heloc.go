package calculation

import (
	"github.com/shopspring/decimal"
)

// HELOC rates use simple monthly/daily division, not the semi-annual
// mortgage compounding convention.
var daysPerYear = decimal.NewFromInt(365)

// DefaultHelocAmortizationMonths is the repayment schedule assumed for
// principal-plus-interest minimum payments.
const DefaultHelocAmortizationMonths = 300

// HelocPaymentType selects the minimum-payment formula.
type HelocPaymentType string

const (
	HelocInterestOnly          HelocPaymentType = "interest_only"
	HelocPrincipalPlusInterest HelocPaymentType = "principal_plus_interest"
)

// HelocCreditLimit is the re-advanceable room: home value at the maximum LTV
// less the first-mortgage balance, never negative.
func HelocCreditLimit(homeValue, maxLTVPercent, mortgageBalance decimal.Decimal) decimal.Decimal {
	limit := homeValue.Mul(maxLTVPercent).Div(hundred).Sub(mortgageBalance)
	if limit.IsNegative() {
		return decimal.Zero
	}
	return roundCents(limit)
}

// CreditRoomIncrease is the new borrowing room a principal prepayment frees
// on a re-advanceable HELOC. Room grows dollar-for-dollar with principal
// paid, but never beyond the prepayment itself and never while the combined
// position is already over the LTV ceiling.
func CreditRoomIncrease(prepayment, homeValue, maxLTVPercent, mortgageBalanceBefore decimal.Decimal) decimal.Decimal {
	if prepayment.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	before := HelocCreditLimit(homeValue, maxLTVPercent, mortgageBalanceBefore)
	after := HelocCreditLimit(homeValue, maxLTVPercent, mortgageBalanceBefore.Sub(prepayment))
	increase := after.Sub(before)
	if increase.GreaterThan(prepayment) {
		return prepayment
	}
	return increase
}

// AvailableCreditAfterPrepayment is the unused room once a prepayment has
// grown the limit.
func AvailableCreditAfterPrepayment(prepayment, homeValue, maxLTVPercent, mortgageBalanceBefore, helocBalance decimal.Decimal) decimal.Decimal {
	limit := HelocCreditLimit(homeValue, maxLTVPercent, mortgageBalanceBefore.Sub(prepayment))
	available := limit.Sub(helocBalance)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// helocAnnualRate converts prime + spread (both percentage points) to a
// decimal rate.
func helocAnnualRate(primeRate, spread decimal.Decimal) decimal.Decimal {
	return primeRate.Add(spread).Div(hundred)
}

// DailyInterest is one day of simple interest at prime + spread.
func DailyInterest(balance, primeRate, spread decimal.Decimal) (decimal.Decimal, error) {
	if balance.IsNegative() {
		return decimal.Zero, ErrInvalidBalance
	}
	rate := helocAnnualRate(primeRate, spread)
	if rate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	return roundCents(balance.Mul(rate).Div(daysPerYear)), nil
}

// MonthlyInterest is one month of simple interest at prime + spread.
func MonthlyInterest(balance, primeRate, spread decimal.Decimal) (decimal.Decimal, error) {
	if balance.IsNegative() {
		return decimal.Zero, ErrInvalidBalance
	}
	rate := helocAnnualRate(primeRate, spread)
	if rate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	return roundCents(balance.Mul(rate).Div(twelve)), nil
}

// HelocMinimumPayment is the interest-only payment, or an amortized
// principal-plus-interest payment over amortizationMonths (default 300)
// using a simple monthly rate.
func HelocMinimumPayment(balance, primeRate, spread decimal.Decimal, paymentType HelocPaymentType, amortizationMonths int) (decimal.Decimal, error) {
	if paymentType == HelocInterestOnly {
		return MonthlyInterest(balance, primeRate, spread)
	}
	if balance.IsNegative() {
		return decimal.Zero, ErrInvalidBalance
	}
	if balance.IsZero() {
		return decimal.Zero, nil
	}
	if amortizationMonths <= 0 {
		amortizationMonths = DefaultHelocAmortizationMonths
	}
	rate := helocAnnualRate(primeRate, spread)
	if rate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	monthly := rate.Div(twelve)
	return annuityPayment(balance, monthly, float64(amortizationMonths)), nil
}

// HelocPaymentBreakdown splits a HELOC payment into interest and principal.
// Principal is floored at zero when the payment does not cover interest.
type HelocPaymentBreakdown struct {
	Interest   decimal.Decimal `json:"interest"`
	Principal  decimal.Decimal `json:"principal"`
	NewBalance decimal.Decimal `json:"newBalance"`
}

// SplitHelocPayment applies one payment against a HELOC balance.
func SplitHelocPayment(balance, payment, primeRate, spread decimal.Decimal) (HelocPaymentBreakdown, error) {
	interest, err := MonthlyInterest(balance, primeRate, spread)
	if err != nil {
		return HelocPaymentBreakdown{}, err
	}
	principal := payment.Sub(interest)
	if principal.IsNegative() {
		principal = decimal.Zero
	}
	if principal.GreaterThan(balance) {
		principal = balance
	}
	return HelocPaymentBreakdown{
		Interest:   interest,
		Principal:  roundCents(principal),
		NewBalance: roundCents(balance.Sub(principal)),
	}, nil
}
