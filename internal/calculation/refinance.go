package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// RefinanceInput describes breaking the current term to refinance at a new
// rate.
type RefinanceInput struct {
	Balance                     decimal.Decimal
	CurrentRate                 decimal.Decimal
	NewRate                     decimal.Decimal
	MarketRate                  decimal.Decimal
	MonthsRemainingInTerm       int
	RemainingAmortizationMonths int
	Frequency                   domain.PaymentFrequency
	TermType                    domain.TermType
	ClosingCosts                decimal.Decimal
}

// RefinanceResult compares the cost of breaking against the interest saved
// over the remainder of the current term.
type RefinanceResult struct {
	Penalty         PenaltyResult   `json:"penalty"`
	OldPayment      decimal.Decimal `json:"oldPayment"`
	NewPayment      decimal.Decimal `json:"newPayment"`
	PaymentSavings  decimal.Decimal `json:"paymentSavings"`
	InterestSavings decimal.Decimal `json:"interestSavings"`
	BreakEvenMonths int             `json:"breakEvenMonths"`
	NetBenefit      decimal.Decimal `json:"netBenefit"`
	Worthwhile      bool            `json:"worthwhile"`
}

// AnalyzeRefinance prices a break-and-refinance: the prepayment penalty plus
// closing costs against the simple-interest saving over the months left in
// the term. Break-even is the months of payment savings needed to recover
// the costs; zero savings means no break-even.
func AnalyzeRefinance(in RefinanceInput) (RefinanceResult, error) {
	penalty, err := PenaltyByMethod("", in.Balance, in.CurrentRate, in.MarketRate, in.MonthsRemainingInTerm, in.TermType)
	if err != nil {
		return RefinanceResult{}, err
	}
	oldPayment, err := CalculatePayment(in.Balance, in.CurrentRate, in.RemainingAmortizationMonths, in.Frequency)
	if err != nil {
		return RefinanceResult{}, err
	}
	newPayment, err := CalculatePayment(in.Balance, in.NewRate, in.RemainingAmortizationMonths, in.Frequency)
	if err != nil {
		return RefinanceResult{}, err
	}

	paymentSavings := oldPayment.Sub(newPayment)
	years := decimal.NewFromInt(int64(in.MonthsRemainingInTerm)).Div(twelve)
	interestSavings := in.Balance.Mul(in.CurrentRate.Sub(in.NewRate)).Mul(years)
	if interestSavings.IsNegative() {
		interestSavings = decimal.Zero
	}
	totalCost := penalty.Amount.Add(in.ClosingCosts)
	netBenefit := interestSavings.Sub(totalCost)

	breakEven := 0
	if paymentSavings.GreaterThan(decimal.Zero) {
		months := totalCost.Div(paymentSavings).Ceil().IntPart()
		breakEven = int(months)
	}
	return RefinanceResult{
		Penalty:         penalty,
		OldPayment:      oldPayment,
		NewPayment:      newPayment,
		PaymentSavings:  roundCents(paymentSavings),
		InterestSavings: roundCents(interestSavings),
		BreakEvenMonths: breakEven,
		NetBenefit:      roundCents(netBenefit),
		Worthwhile:      netBenefit.GreaterThan(decimal.Zero) && (breakEven == 0 || breakEven <= in.MonthsRemainingInTerm),
	}, nil
}
