package calculation

import (
	"github.com/shopspring/decimal"
)

// defaultLimitThreshold: "approaching limit" fires within 10% of the
// cap/floor width.
var defaultLimitThreshold = decimal.NewFromFloat(0.1)

// RateClampResult reports a proposed variable-rate change validated against
// the term's cap and floor. Valid is false whenever clamping altered the
// proposed rate; EffectiveRate always carries the rate to apply.
type RateClampResult struct {
	Valid          bool            `json:"valid"`
	ProposedRate   decimal.Decimal `json:"proposedRate"`
	EffectiveRate  decimal.Decimal `json:"effectiveRate"`
	ClampedAtCap   bool            `json:"clampedAtCap"`
	ClampedAtFloor bool            `json:"clampedAtFloor"`
}

// ClampVariableRate bounds a proposed rate to [floor, currentRate+cap].
// The cap is a width above the current rate; the floor is an absolute rate.
// A nil cap or floor leaves that side unbounded.
func ClampVariableRate(proposed, currentRate decimal.Decimal, rateCap, rateFloor *decimal.Decimal) (RateClampResult, error) {
	if proposed.IsNegative() || currentRate.IsNegative() {
		return RateClampResult{}, ErrInvalidRate
	}
	result := RateClampResult{
		Valid:         true,
		ProposedRate:  proposed,
		EffectiveRate: proposed,
	}
	if rateCap != nil {
		if upper := currentRate.Add(*rateCap); proposed.GreaterThan(upper) {
			result.Valid = false
			result.ClampedAtCap = true
			result.EffectiveRate = upper
		}
	}
	if rateFloor != nil && proposed.LessThan(*rateFloor) {
		result.Valid = false
		result.ClampedAtFloor = true
		result.EffectiveRate = *rateFloor
	}
	return result, nil
}

// LimitProximity flags a rate that sits close to its cap or floor.
type LimitProximity struct {
	ApproachingCap   bool            `json:"approachingCap"`
	ApproachingFloor bool            `json:"approachingFloor"`
	DistanceToCap    decimal.Decimal `json:"distanceToCap"`
	DistanceToFloor  decimal.Decimal `json:"distanceToFloor"`
}

// ApproachingLimits checks whether the current rate is within a threshold
// fraction of the cap or floor width. A zero threshold uses the 10% default.
func ApproachingLimits(currentRate, baseRate decimal.Decimal, rateCap, rateFloor *decimal.Decimal, threshold decimal.Decimal) LimitProximity {
	if threshold.LessThanOrEqual(decimal.Zero) {
		threshold = defaultLimitThreshold
	}
	var proximity LimitProximity
	if rateCap != nil && rateCap.GreaterThan(decimal.Zero) {
		upper := baseRate.Add(*rateCap)
		proximity.DistanceToCap = upper.Sub(currentRate)
		proximity.ApproachingCap = proximity.DistanceToCap.LessThanOrEqual(rateCap.Mul(threshold))
	}
	if rateFloor != nil {
		width := baseRate.Sub(*rateFloor)
		proximity.DistanceToFloor = currentRate.Sub(*rateFloor)
		if width.GreaterThan(decimal.Zero) {
			proximity.ApproachingFloor = proximity.DistanceToFloor.LessThanOrEqual(width.Mul(threshold))
		}
	}
	return proximity
}
