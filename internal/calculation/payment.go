package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// AmortizationUndefined is the remaining-amortization sentinel returned when
// the payment does not cover interest (trigger rate hit).
const AmortizationUndefined = -1

// CalculatePayment computes the periodic payment for a balance amortized
// over amortizationMonths at the given frequency.
//
// Accelerated frequencies do not re-solve the annuity: the monthly payment
// is divided by 2 (accelerated biweekly) or 4 (accelerated weekly). Paying
// half the monthly amount 26 times a year is the equivalent of one extra
// monthly payment annually, which is what produces the faster payoff.
func CalculatePayment(balance, annualRate decimal.Decimal, amortizationMonths int, frequency domain.PaymentFrequency) (decimal.Decimal, error) {
	if amortizationMonths <= 0 {
		return decimal.Zero, ErrInvalidAmortization
	}
	switch frequency {
	case domain.FrequencyAcceleratedBiweekly:
		monthly, err := CalculateMonthlyPayment(balance, annualRate, amortizationMonths)
		if err != nil {
			return decimal.Zero, err
		}
		return roundCents(monthly.Div(decimal.NewFromInt(2))), nil
	case domain.FrequencyAcceleratedWeekly:
		monthly, err := CalculateMonthlyPayment(balance, annualRate, amortizationMonths)
		if err != nil {
			return decimal.Zero, err
		}
		return roundCents(monthly.Div(decimal.NewFromInt(4))), nil
	}

	periodic, err := EffectivePeriodicRate(annualRate, frequency)
	if err != nil {
		return decimal.Zero, err
	}
	perYear, err := PaymentsPerYear(frequency)
	if err != nil {
		return decimal.Zero, err
	}
	totalPayments := float64(amortizationMonths) / 12 * float64(perYear)
	return annuityPayment(balance, periodic, totalPayments), nil
}

// CalculateMonthlyPayment is the monthly-frequency payment, used directly
// and as the base for the accelerated divide rule.
func CalculateMonthlyPayment(balance, annualRate decimal.Decimal, amortizationMonths int) (decimal.Decimal, error) {
	if amortizationMonths <= 0 {
		return decimal.Zero, ErrInvalidAmortization
	}
	periodic, err := EffectivePeriodicRate(annualRate, domain.FrequencyMonthly)
	if err != nil {
		return decimal.Zero, err
	}
	return annuityPayment(balance, periodic, float64(amortizationMonths)), nil
}

// annuityPayment solves P = (r*PV) / (1 - (1+r)^-n), falling back to PV/n
// when r is zero. Rounded to the cent.
func annuityPayment(balance, periodicRate decimal.Decimal, totalPayments float64) decimal.Decimal {
	if periodicRate.IsZero() {
		return roundCents(balance.Div(decimal.NewFromFloat(totalPayments)))
	}
	r, _ := periodicRate.Float64()
	discount := 1 - math.Pow(1+r, -totalPayments)
	payment := periodicRate.Mul(balance).Div(decimal.NewFromFloat(discount))
	return roundCents(payment)
}

// InterestPortion returns the interest accrued on a balance for one payment
// period, rounded to the cent.
func InterestPortion(balance, annualRate decimal.Decimal, frequency domain.PaymentFrequency) (decimal.Decimal, error) {
	periodic, err := EffectivePeriodicRate(annualRate, frequency)
	if err != nil {
		return decimal.Zero, err
	}
	return roundCents(balance.Mul(periodic)), nil
}

// BreakdownInput describes a single payment to split into interest,
// principal and prepayment.
type BreakdownInput struct {
	Balance               decimal.Decimal
	RegularPaymentAmount  decimal.Decimal
	ExtraPrepaymentAmount decimal.Decimal
	AnnualRate            decimal.Decimal
	Frequency             domain.PaymentFrequency
}

// PaymentBreakdown is the interest/principal split of one payment.
// TriggerRateHit is set when the regular payment does not cover interest,
// meaning the balance would grow.
type PaymentBreakdown struct {
	Interest       decimal.Decimal `json:"interest"`
	Principal      decimal.Decimal `json:"principal"`
	Prepayment     decimal.Decimal `json:"prepayment"`
	TotalPrincipal decimal.Decimal `json:"totalPrincipal"`
	TriggerRateHit bool            `json:"triggerRateHit"`
}

// CalculatePaymentBreakdown splits a payment. Interest is the periodic rate
// applied to the balance; principal is the regular payment less interest,
// floored at zero; any extra prepayment goes entirely to principal.
func CalculatePaymentBreakdown(in BreakdownInput) (PaymentBreakdown, error) {
	interest, err := InterestPortion(in.Balance, in.AnnualRate, in.Frequency)
	if err != nil {
		return PaymentBreakdown{}, err
	}
	principal := roundCents(in.RegularPaymentAmount.Sub(interest))
	hit := in.RegularPaymentAmount.LessThan(interest)
	if principal.IsNegative() {
		principal = decimal.Zero
	}
	return PaymentBreakdown{
		Interest:       interest,
		Principal:      principal,
		Prepayment:     in.ExtraPrepaymentAmount,
		TotalPrincipal: principal.Add(in.ExtraPrepaymentAmount),
		TriggerRateHit: hit,
	}, nil
}

// RemainingAmortization returns the months needed to retire the balance at
// the given payment, via n = -log(1 - r*PV/P) / log(1+r). Returns
// AmortizationUndefined when the payment does not cover interest.
func RemainingAmortization(balance, paymentAmount, annualRate decimal.Decimal, frequency domain.PaymentFrequency) (int, error) {
	periodic, err := EffectivePeriodicRate(annualRate, frequency)
	if err != nil {
		return 0, err
	}
	perYear, err := PaymentsPerYear(frequency)
	if err != nil {
		return 0, err
	}
	if paymentAmount.LessThanOrEqual(decimal.Zero) {
		return 0, ErrInvalidBalance
	}
	if periodic.IsZero() {
		payments, _ := balance.Div(paymentAmount).Float64()
		return int(math.Round(payments / float64(perYear) * 12)), nil
	}
	interestOnly := balance.Mul(periodic)
	if paymentAmount.LessThanOrEqual(interestOnly) {
		return AmortizationUndefined, nil
	}
	r, _ := periodic.Float64()
	ratio, _ := periodic.Mul(balance).Div(paymentAmount).Float64()
	payments := -math.Log(1-ratio) / math.Log(1+r)
	return int(math.Round(payments / float64(perYear) * 12)), nil
}

// PrepaymentRoom is the privilege left this year: the annual limit on the
// original mortgage amount, plus unused room carried forward, less what has
// been used. Canadian lenders base the limit on the original amount, not the
// current balance, and reset it each calendar year.
func PrepaymentRoom(originalPrincipal, annualLimitPercent, carryForward, yearToDatePrepayments decimal.Decimal) decimal.Decimal {
	limit := originalPrincipal.Mul(annualLimitPercent).Div(hundred)
	room := limit.Add(carryForward).Sub(yearToDatePrepayments)
	if room.IsNegative() {
		return decimal.Zero
	}
	return room
}

// WithinPrepaymentLimit reports whether a proposed prepayment stays inside
// the available privilege.
func WithinPrepaymentLimit(prepayment, yearToDatePrepayments, originalPrincipal, annualLimitPercent, carryForward decimal.Decimal) bool {
	return prepayment.LessThanOrEqual(PrepaymentRoom(originalPrincipal, annualLimitPercent, carryForward, yearToDatePrepayments))
}
