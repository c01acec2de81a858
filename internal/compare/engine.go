package compare

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/calculation"
	"github.com/tlacroix/canmort/internal/domain"
)

// CompareEngine runs the strategy and baseline paths.
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a comparison engine.
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare projects the plan's Smith Maneuver strategy and a
// prepayment-only baseline over the strategy's horizon. Both paths apply
// the identical prepayment stream to the mortgage; only the strategy path
// re-borrows and invests the freed room.
func (ce *CompareEngine) Compare(plan *domain.Plan, asOf time.Time) (*ComparisonSet, error) {
	if plan.Strategy == nil {
		return nil, fmt.Errorf("compare plan %q: no strategy configured", plan.Name)
	}
	if plan.Heloc == nil {
		return nil, fmt.Errorf("compare plan %q: no heloc configured", plan.Name)
	}
	term := domain.ActiveTerm(plan.Terms, asOf)
	if term == nil {
		return nil, fmt.Errorf("compare plan %q: no term covers %s", plan.Name, asOf.Format("2006-01-02"))
	}
	strategy := *plan.Strategy
	years := strategy.ProjectionYears

	projection, err := calculation.ProjectSmithManeuver(calculation.ProjectionInput{
		Strategy:        strategy,
		MortgageBalance: plan.Mortgage.CurrentBalance,
		HomeValue:       plan.Mortgage.PropertyValue,
		MaxLTVPercent:   plan.Heloc.MaxLTVPercent,
		HelocBalance:    plan.Heloc.CurrentBalance,
		InvestmentValue: decimal.Zero,
		PrimeRate:       plan.Rates.PrimeRate,
		InterestSpread:  plan.Heloc.InterestSpread,
		IncomeType:      calculation.IncomeCapitalGains,
	})
	if err != nil {
		return nil, fmt.Errorf("compare plan %q: strategy projection: %w", plan.Name, err)
	}
	roi := calculation.ROIAnalysis(projection)

	baseline, err := ce.baselineSchedule(plan, term, years)
	if err != nil {
		return nil, fmt.Errorf("compare plan %q: baseline: %w", plan.Name, err)
	}

	last := projection[len(projection)-1]
	smith := StrategyMetrics{
		Name:             "Smith Maneuver",
		MortgageBalance:  baseline.MortgageBalance,
		HelocBalance:     last.HelocBalance,
		InvestmentValue:  last.InvestmentValue,
		InterestPaid:     baseline.InterestPaid.Add(roi.TotalInterestPaid),
		TaxSavings:       roi.TotalTaxSavings,
		TotalPrepayments: last.TotalPrepayments,
	}
	smith.NetPosition = smith.InvestmentValue.Sub(smith.HelocBalance).Sub(smith.MortgageBalance)
	baseline.NetPosition = baseline.MortgageBalance.Neg()

	set := &ComparisonSet{
		PlanName:   plan.Name,
		Years:      years,
		Smith:      smith,
		Baseline:   baseline,
		Advantage:  roi.TotalNetBenefit,
		Projection: projection,
	}
	set.Recommendations = recommendations(roi, last)
	return set, nil
}

// baselineSchedule amortizes the mortgage with regular payments plus the
// strategy's prepayment stream, no borrowing.
func (ce *CompareEngine) baselineSchedule(plan *domain.Plan, term *domain.Term, years int) (StrategyMetrics, error) {
	freq := term.PaymentFrequency
	perYear, err := calculation.PaymentsPerYear(freq)
	if err != nil {
		return StrategyMetrics{}, err
	}
	var prepayments []calculation.PrepaymentEvent
	if plan.Strategy.PrepaymentFrequency == domain.PrepayLumpSum {
		prepayments = append(prepayments, calculation.PrepaymentEvent{
			Type:               calculation.PrepaymentOneTime,
			Amount:             plan.Strategy.PrepaymentAmount,
			StartPaymentNumber: 1,
		})
	} else if annual := plan.Strategy.PrepaymentFrequency.AnnualAmount(plan.Strategy.PrepaymentAmount, 1); annual.GreaterThan(decimal.Zero) {
		// Express the stream as a per-payment amount so every frequency
		// carries the same annual total.
		prepayments = append(prepayments, calculation.PrepaymentEvent{
			Type:               calculation.PrepaymentPerPayment,
			Amount:             annual.Div(decimal.NewFromInt(int64(perYear))),
			StartPaymentNumber: 1,
		})
	}

	schedule, err := calculation.GenerateSchedule(calculation.ScheduleInput{
		Principal:          plan.Mortgage.CurrentBalance,
		AnnualRate:         term.AnnualRate(),
		AmortizationMonths: plan.Mortgage.AmortizationMonths,
		Frequency:          freq,
		StartDate:          plan.Mortgage.StartDate,
		FixedPaymentAmount: term.RegularPaymentAmount,
		Prepayments:        prepayments,
		MaxPayments:        years * perYear,
	})
	if err != nil {
		return StrategyMetrics{}, err
	}

	metrics := StrategyMetrics{
		Name:             "Prepayment Only",
		InterestPaid:     schedule.Summary.TotalInterest,
		TotalPrepayments: schedule.Summary.TotalPrepayments,
	}
	if n := len(schedule.Payments); n > 0 {
		metrics.MortgageBalance = schedule.Payments[n-1].RemainingBalance
	} else {
		metrics.MortgageBalance = plan.Mortgage.CurrentBalance
	}
	return metrics, nil
}

func recommendations(roi calculation.ROIResult, last domain.YearlyProjectionPoint) []string {
	var recs []string
	if roi.TotalNetBenefit.GreaterThan(decimal.Zero) {
		recs = append(recs, fmt.Sprintf("Strategy nets %s over the horizon; break-even in year %d.",
			"$"+roi.TotalNetBenefit.StringFixed(2), roi.BreakEvenYear))
	} else {
		recs = append(recs, "Strategy does not break even over the horizon; prepayment-only is ahead.")
	}
	if last.LeverageRatio.Infinite || last.LeverageRatio.Value.GreaterThan(decimal.NewFromFloat(0.8)) {
		recs = append(recs, "Leverage ratio is high; a market decline would leave the HELOC undercollateralized.")
	}
	if !last.InterestCoverage.Infinite && last.InterestCoverage.Value.LessThan(decimal.NewFromInt(1)) {
		recs = append(recs, "Investment returns do not cover HELOC interest; the strategy depends on tax savings.")
	}
	return recs
}
