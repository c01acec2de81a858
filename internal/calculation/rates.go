// Package calculation implements the Canadian mortgage calculation engine:
// semi-annual rate conversion, payments, debt-service and stress-test
// checks, penalties, lifecycle events, HELOC credit and interest, insurance
// premiums and Smith Maneuver projections. Every function is pure; inputs
// are value objects and results are freshly allocated.
package calculation

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// Contract-violation errors. Business-rule rejections are returned as data
// (verdict structs), never as errors.
var (
	ErrInvalidRate         = errors.New("annual rate must be a non-negative finite number")
	ErrInvalidFrequency    = errors.New("unsupported payment frequency")
	ErrInvalidAmortization = errors.New("amortization months must be positive")
	ErrInvalidBalance      = errors.New("balance must be positive")
	ErrInvalidLTV          = errors.New("ltv ratio outside insurable range")
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// roundCents rounds a monetary amount to the cent, half up. Applied at final
// steps only; rates are never rounded mid-computation.
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PaymentsPerYear returns the number of payments per year for a frequency.
func PaymentsPerYear(frequency domain.PaymentFrequency) (int, error) {
	n, ok := frequency.PaymentsPerYear()
	if !ok {
		return 0, ErrInvalidFrequency
	}
	return n, nil
}

// EffectivePeriodicRate converts a nominal annual rate into the effective
// rate per payment period. Canadian mortgages compound semi-annually
// regardless of payment frequency:
//
//	semiAnnual = annual/2
//	EAR        = (1 + semiAnnual)^2 - 1
//	periodic   = (1 + EAR)^(1/paymentsPerYear) - 1
//
// Accelerated frequencies use the rate of their 26/52 period count; the
// accelerated payment amount is handled in CalculatePayment.
func EffectivePeriodicRate(annualRate decimal.Decimal, frequency domain.PaymentFrequency) (decimal.Decimal, error) {
	if annualRate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	perYear, err := PaymentsPerYear(frequency)
	if err != nil {
		return decimal.Zero, err
	}
	rate, _ := annualRate.Float64()
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return decimal.Zero, ErrInvalidRate
	}
	ear := math.Pow(1+rate/2, 2) - 1
	periodic := math.Pow(1+ear, 1/float64(perYear)) - 1
	return decimal.NewFromFloat(periodic), nil
}

// EffectiveAnnualRate returns (1 + annual/2)^2 - 1, the semi-annually
// compounded effective annual rate.
func EffectiveAnnualRate(annualRate decimal.Decimal) (decimal.Decimal, error) {
	if annualRate.IsNegative() {
		return decimal.Zero, ErrInvalidRate
	}
	rate, _ := annualRate.Float64()
	return decimal.NewFromFloat(math.Pow(1+rate/2, 2) - 1), nil
}

// TriggerRate is the inverse of EffectivePeriodicRate: the nominal annual
// rate at which a fixed payment exactly equals the interest-only payment on
// the balance. Above it, the payment no longer covers interest and the
// balance grows.
func TriggerRate(paymentAmount, balance decimal.Decimal, frequency domain.PaymentFrequency) (decimal.Decimal, error) {
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidBalance
	}
	perYear, err := PaymentsPerYear(frequency)
	if err != nil {
		return decimal.Zero, err
	}
	periodic, _ := paymentAmount.Div(balance).Float64()
	ear := math.Pow(1+periodic, float64(perYear)) - 1
	semiAnnual := math.Pow(1+ear, 0.5) - 1
	return decimal.NewFromFloat(semiAnnual * 2), nil
}
