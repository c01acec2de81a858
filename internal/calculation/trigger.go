package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// TriggerStatus classifies a variable-fixed mortgage's distance to its
// trigger rate.
type TriggerStatus string

const (
	TriggerHit           TriggerStatus = "hit"
	TriggerAtRisk        TriggerStatus = "at_risk"
	TriggerSafe          TriggerStatus = "safe"
	TriggerNotApplicable TriggerStatus = "not_applicable"
)

// triggerRiskBuffer: within half a percentage point of the trigger rate the
// mortgage is flagged at risk.
var triggerRiskBuffer = decimal.NewFromFloat(0.005)

// TriggerAnalysis is the trigger-rate monitoring result for one mortgage.
type TriggerAnalysis struct {
	Status            TriggerStatus   `json:"status"`
	TriggerRate       decimal.Decimal `json:"triggerRate"`
	CurrentRate       decimal.Decimal `json:"currentRate"`
	DistanceToTrigger decimal.Decimal `json:"distanceToTrigger"`
}

// MonitorTriggerRate evaluates trigger-rate risk. Only variable-rate
// fixed-payment mortgages can hit a trigger rate; other term types report
// not-applicable rather than an error.
func MonitorTriggerRate(termType domain.TermType, paymentAmount, balance, currentRate decimal.Decimal, frequency domain.PaymentFrequency) (TriggerAnalysis, error) {
	if termType != domain.TermVariableFixedPayment {
		return TriggerAnalysis{Status: TriggerNotApplicable, CurrentRate: currentRate}, nil
	}
	trigger, err := TriggerRate(paymentAmount, balance, frequency)
	if err != nil {
		return TriggerAnalysis{}, err
	}
	distance := trigger.Sub(currentRate)
	status := TriggerSafe
	switch {
	case distance.LessThanOrEqual(decimal.Zero):
		status = TriggerHit
	case distance.LessThanOrEqual(triggerRiskBuffer):
		status = TriggerAtRisk
	}
	return TriggerAnalysis{
		Status:            status,
		TriggerRate:       trigger,
		CurrentRate:       currentRate,
		DistanceToTrigger: distance,
	}, nil
}
