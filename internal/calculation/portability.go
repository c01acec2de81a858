package calculation

import (
	"github.com/shopspring/decimal"
)

// maxPortableLTV: lenders port at most 95% of the new purchase price.
var maxPortableLTV = decimal.NewFromFloat(0.95)

// PortabilityInput describes a port of an existing mortgage to a new
// property.
type PortabilityInput struct {
	CurrentBalance   decimal.Decimal
	OriginalAmount   decimal.Decimal
	OldPropertyPrice decimal.Decimal
	NewPropertyPrice decimal.Decimal
	CurrentRate      decimal.Decimal
	TopUpRate        decimal.Decimal
}

// PortabilityResult is the ported/top-up split and the blended rate when a
// top-up applies.
type PortabilityResult struct {
	CanPort       bool            `json:"canPort"`
	Reason        string          `json:"reason,omitempty"`
	PortedAmount  decimal.Decimal `json:"portedAmount"`
	TopUpRequired decimal.Decimal `json:"topUpRequired"`
	BlendedRate   decimal.Decimal `json:"blendedRate"`
	TotalMortgage decimal.Decimal `json:"totalMortgage"`
}

// Portability computes how much of an existing mortgage carries to a new
// property. The ported amount is capped at both the original mortgage amount
// and 95% of the new price. When trading up, the top-up preserves the
// borrower's equity position; the blended rate is the balance-weighted
// average of the ported rate and the top-up rate.
func Portability(in PortabilityInput) (PortabilityResult, error) {
	if in.CurrentBalance.LessThanOrEqual(decimal.Zero) {
		return PortabilityResult{
			CanPort: false,
			Reason:  "no balance to port",
		}, nil
	}
	if in.NewPropertyPrice.LessThanOrEqual(decimal.Zero) {
		return PortabilityResult{}, ErrInvalidBalance
	}

	ported := decimal.Min(
		decimal.Min(in.CurrentBalance, in.OriginalAmount),
		in.NewPropertyPrice.Mul(maxPortableLTV),
	)

	topUp := decimal.Zero
	if in.NewPropertyPrice.GreaterThan(in.OldPropertyPrice) {
		equityShortfall := in.NewPropertyPrice.Sub(in.OldPropertyPrice).Sub(in.OldPropertyPrice.Sub(in.OriginalAmount))
		topUp = decimal.Max(decimal.Zero, equityShortfall)
	}

	blended := in.CurrentRate
	if topUp.GreaterThan(decimal.Zero) {
		total := ported.Add(topUp)
		blended = ported.Mul(in.CurrentRate).Add(topUp.Mul(in.TopUpRate)).Div(total)
	}

	return PortabilityResult{
		CanPort:       true,
		PortedAmount:  roundCents(ported),
		TopUpRequired: roundCents(topUp),
		BlendedRate:   blended,
		TotalMortgage: roundCents(ported.Add(topUp)),
	}, nil
}
