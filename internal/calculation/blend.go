package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// BlendAndExtendInput describes an early renewal that blends the remaining
// term's rate with today's market rate over a new full term.
type BlendAndExtendInput struct {
	Balance                     decimal.Decimal
	CurrentRate                 decimal.Decimal
	MarketRate                  decimal.Decimal
	MonthsRemainingInTerm       int
	NewTermMonths               int
	RemainingAmortizationMonths int
	Frequency                   domain.PaymentFrequency
}

// BlendAndExtendResult reports the blended rate and the payment it produces.
type BlendAndExtendResult struct {
	CanBlend    bool            `json:"canBlend"`
	Reason      string          `json:"reason,omitempty"`
	BlendedRate decimal.Decimal `json:"blendedRate"`
	NewPayment  decimal.Decimal `json:"newPayment"`
	OldPayment  decimal.Decimal `json:"oldPayment"`
}

// BlendAndExtend computes the time-weighted blended rate: the old rate
// covers the months left in the current term, the market rate covers the
// extension, weighted over the new term length. No penalty applies; the
// blend is how the lender recovers the rate differential.
func BlendAndExtend(in BlendAndExtendInput) (BlendAndExtendResult, error) {
	if in.NewTermMonths <= 0 || in.RemainingAmortizationMonths <= 0 {
		return BlendAndExtendResult{}, ErrInvalidAmortization
	}
	if in.MonthsRemainingInTerm <= 0 {
		return BlendAndExtendResult{
			CanBlend: false,
			Reason:   "term has already matured; renew at market instead",
		}, nil
	}
	if in.MonthsRemainingInTerm >= in.NewTermMonths {
		return BlendAndExtendResult{
			CanBlend: false,
			Reason:   "new term must be longer than the months remaining",
		}, nil
	}

	oldPayment, err := CalculatePayment(in.Balance, in.CurrentRate, in.RemainingAmortizationMonths, in.Frequency)
	if err != nil {
		return BlendAndExtendResult{}, err
	}

	remaining := decimal.NewFromInt(int64(in.MonthsRemainingInTerm))
	extension := decimal.NewFromInt(int64(in.NewTermMonths - in.MonthsRemainingInTerm))
	newTerm := decimal.NewFromInt(int64(in.NewTermMonths))
	blended := in.CurrentRate.Mul(remaining).Add(in.MarketRate.Mul(extension)).Div(newTerm)

	newPayment, err := CalculatePayment(in.Balance, blended, in.RemainingAmortizationMonths, in.Frequency)
	if err != nil {
		return BlendAndExtendResult{}, err
	}
	return BlendAndExtendResult{
		CanBlend:    true,
		BlendedRate: blended,
		NewPayment:  newPayment,
		OldPayment:  oldPayment,
	}, nil
}
