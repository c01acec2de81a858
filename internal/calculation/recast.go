package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// RecastResult is the state transition from a lump-sum recast. A rejected
// recast carries CanRecast=false and a user-facing reason; rejections are
// data, not errors.
type RecastResult struct {
	CanRecast  bool            `json:"canRecast"`
	Reason     string          `json:"reason,omitempty"`
	NewBalance decimal.Decimal `json:"newBalance"`
	NewPayment decimal.Decimal `json:"newPayment"`
	OldPayment decimal.Decimal `json:"oldPayment"`
	Savings    decimal.Decimal `json:"savings"` // per-payment reduction
}

// Recast applies a lump-sum prepayment and re-solves the payment over the
// same remaining amortization at the same rate. The payment drops; the
// amortization length does not change. A residual balance under one cent
// snaps to zero with a zero payment.
func Recast(balance, prepayment, annualRate decimal.Decimal, remainingAmortizationMonths int, frequency domain.PaymentFrequency) (RecastResult, error) {
	oldPayment, err := CalculatePayment(balance, annualRate, remainingAmortizationMonths, frequency)
	if err != nil {
		return RecastResult{}, err
	}
	if prepayment.LessThanOrEqual(decimal.Zero) {
		return RecastResult{
			CanRecast:  false,
			Reason:     "prepayment must be greater than zero",
			NewBalance: balance,
			NewPayment: oldPayment,
			OldPayment: oldPayment,
		}, nil
	}
	if prepayment.GreaterThanOrEqual(balance) {
		return RecastResult{
			CanRecast:  false,
			Reason:     "prepayment exceeds balance; use a payoff instead",
			NewBalance: balance,
			NewPayment: oldPayment,
			OldPayment: oldPayment,
		}, nil
	}

	newBalance := balance.Sub(prepayment)
	if newBalance.LessThan(paidOffThreshold) {
		return RecastResult{
			CanRecast:  true,
			NewBalance: decimal.Zero,
			NewPayment: decimal.Zero,
			OldPayment: oldPayment,
			Savings:    oldPayment,
		}, nil
	}
	newPayment, err := CalculatePayment(newBalance, annualRate, remainingAmortizationMonths, frequency)
	if err != nil {
		return RecastResult{}, err
	}
	return RecastResult{
		CanRecast:  true,
		NewBalance: newBalance,
		NewPayment: newPayment,
		OldPayment: oldPayment,
		Savings:    oldPayment.Sub(newPayment),
	}, nil
}
