package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// FrequencyChangeResult reports the payment at a new frequency, or the
// reason the change cannot apply.
type FrequencyChangeResult struct {
	CanChange         bool                    `json:"canChange"`
	Reason            string                  `json:"reason,omitempty"`
	OldFrequency      domain.PaymentFrequency `json:"oldFrequency"`
	NewFrequency      domain.PaymentFrequency `json:"newFrequency"`
	NewPayment        decimal.Decimal         `json:"newPayment"`
	AnnualPaymentOld  decimal.Decimal         `json:"annualPaymentOld"`
	AnnualPaymentNew  decimal.Decimal         `json:"annualPaymentNew"`
	AnnualAccelerated decimal.Decimal         `json:"annualAccelerated"` // extra principal per year from acceleration
}

// ChangeFrequency re-solves the payment at a new frequency using the current
// balance, rate and remaining amortization. Changing to the same frequency is
// rejected as a business rule, not an error. Accelerated targets report the
// extra annual principal their divide rule produces.
func ChangeFrequency(balance, annualRate decimal.Decimal, remainingAmortizationMonths int, oldFrequency, newFrequency domain.PaymentFrequency) (FrequencyChangeResult, error) {
	if oldFrequency == newFrequency {
		return FrequencyChangeResult{
			CanChange:    false,
			Reason:       "payment frequency is already " + string(newFrequency),
			OldFrequency: oldFrequency,
			NewFrequency: newFrequency,
		}, nil
	}
	oldPerYear, err := PaymentsPerYear(oldFrequency)
	if err != nil {
		return FrequencyChangeResult{}, err
	}
	newPerYear, err := PaymentsPerYear(newFrequency)
	if err != nil {
		return FrequencyChangeResult{}, err
	}

	oldPayment, err := CalculatePayment(balance, annualRate, remainingAmortizationMonths, oldFrequency)
	if err != nil {
		return FrequencyChangeResult{}, err
	}
	newPayment, err := CalculatePayment(balance, annualRate, remainingAmortizationMonths, newFrequency)
	if err != nil {
		return FrequencyChangeResult{}, err
	}

	annualOld := oldPayment.Mul(decimal.NewFromInt(int64(oldPerYear)))
	annualNew := newPayment.Mul(decimal.NewFromInt(int64(newPerYear)))
	accelerated := decimal.Zero
	if newFrequency.IsAccelerated() {
		accelerated = annualNew.Sub(annualOld)
	}
	return FrequencyChangeResult{
		CanChange:         true,
		OldFrequency:      oldFrequency,
		NewFrequency:      newFrequency,
		NewPayment:        newPayment,
		AnnualPaymentOld:  roundCents(annualOld),
		AnnualPaymentNew:  roundCents(annualNew),
		AnnualAccelerated: roundCents(accelerated),
	}, nil
}
