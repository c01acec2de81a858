package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// Penalty methods as they appear on lender statements.
const (
	MethodIRD        = "IRD"
	MethodThreeMonth = "3-Month Interest"
	MethodNone       = "None"
)

var four = decimal.NewFromInt(4)

// ThreeMonthInterestPenalty is three months of simple interest on the
// balance at the contract rate.
func ThreeMonthInterestPenalty(balance, annualRate decimal.Decimal) (decimal.Decimal, error) {
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidBalance
	}
	if annualRate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	return roundCents(balance.Mul(annualRate).Div(four)), nil
}

// IRDPenalty is the interest rate differential: the interest the lender
// loses by reinvesting the balance at today's market rate for the remainder
// of the term. Zero when the market rate is at or above the contract rate.
func IRDPenalty(balance, contractRate, marketRate decimal.Decimal, monthsRemaining int) (decimal.Decimal, error) {
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidBalance
	}
	if contractRate.IsNegative() || marketRate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	if monthsRemaining <= 0 || marketRate.GreaterThanOrEqual(contractRate) {
		return decimal.Zero, nil
	}
	differential := contractRate.Sub(marketRate)
	years := decimal.NewFromInt(int64(monthsRemaining)).Div(twelve)
	return roundCents(balance.Mul(differential).Mul(years)), nil
}

// PenaltyResult reports a prepayment penalty and the method that produced it.
type PenaltyResult struct {
	Amount             decimal.Decimal `json:"amount"`
	Method             string          `json:"method"`
	ThreeMonthInterest decimal.Decimal `json:"threeMonthInterest"`
	IRD                decimal.Decimal `json:"ird"`
}

// StandardPenalty applies the standard closed-mortgage rule: the greater of
// three months' interest and the IRD, tagged with the method that produced
// the amount. Open mortgages carry no penalty; callers model them via
// PenaltyByMethod.
func StandardPenalty(balance, contractRate, marketRate decimal.Decimal, monthsRemaining int) (PenaltyResult, error) {
	threeMonth, err := ThreeMonthInterestPenalty(balance, contractRate)
	if err != nil {
		return PenaltyResult{}, err
	}
	ird, err := IRDPenalty(balance, contractRate, marketRate, monthsRemaining)
	if err != nil {
		return PenaltyResult{}, err
	}
	result := PenaltyResult{ThreeMonthInterest: threeMonth, IRD: ird}
	if ird.GreaterThan(threeMonth) {
		result.Amount = ird
		result.Method = MethodIRD
	} else {
		result.Amount = threeMonth
		result.Method = MethodThreeMonth
	}
	return result, nil
}

// PenaltyByMethod computes a penalty under an explicitly chosen product
// rule. "open_mortgage" products break for free, and variable-rate products
// are charged three months' interest regardless of rate movement.
func PenaltyByMethod(method string, balance, contractRate, marketRate decimal.Decimal, monthsRemaining int, termType domain.TermType) (PenaltyResult, error) {
	variable := termType == domain.TermVariableChangingPayment || termType == domain.TermVariableFixedPayment
	switch {
	case method == "open_mortgage":
		return PenaltyResult{Amount: decimal.Zero, Method: MethodNone}, nil
	case method == "three_month_interest" || variable:
		threeMonth, err := ThreeMonthInterestPenalty(balance, contractRate)
		if err != nil {
			return PenaltyResult{}, err
		}
		return PenaltyResult{Amount: threeMonth, Method: MethodThreeMonth, ThreeMonthInterest: threeMonth}, nil
	default:
		return StandardPenalty(balance, contractRate, marketRate, monthsRemaining)
	}
}

// DefaultOverLimitPenaltyPercent is the typical charge on prepayments over
// the annual privilege.
var DefaultOverLimitPenaltyPercent = decimal.NewFromFloat(1.5)

// OverLimitPenalty prices the portion of a prepayment over the available
// privilege: a flat percentage of the excess.
func OverLimitPenalty(overLimitAmount, penaltyPercent decimal.Decimal) decimal.Decimal {
	if overLimitAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return roundCents(overLimitAmount.Mul(penaltyPercent).Div(hundred))
}

// PrepaymentWithPenalty nets a prepayment against the over-limit penalty it
// triggers, giving the effective principal reduction per dollar spent.
type PrepaymentWithPenalty struct {
	Prepayment         decimal.Decimal `json:"prepayment"`
	OverLimitAmount    decimal.Decimal `json:"overLimitAmount"`
	Penalty            decimal.Decimal `json:"penalty"`
	EffectiveReduction decimal.Decimal `json:"effectiveReduction"`
	WithinLimit        bool            `json:"withinLimit"`
}

// EvaluatePrepayment reports whether a prepayment fits the available
// privilege, counting unused room carried forward from prior years, and what
// the portion over the limit costs.
func EvaluatePrepayment(prepayment, yearToDatePrepayments, originalPrincipal, annualLimitPercent, carryForward, penaltyPercent decimal.Decimal) PrepaymentWithPenalty {
	room := PrepaymentRoom(originalPrincipal, annualLimitPercent, carryForward, yearToDatePrepayments)
	excess := prepayment.Sub(room)
	if excess.IsNegative() {
		excess = decimal.Zero
	}
	penalty := OverLimitPenalty(excess, penaltyPercent)
	return PrepaymentWithPenalty{
		Prepayment:         prepayment,
		OverLimitAmount:    excess,
		Penalty:            penalty,
		EffectiveReduction: prepayment.Sub(penalty),
		WithinLimit:        excess.IsZero(),
	}
}
