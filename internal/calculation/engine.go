package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// Logger is the engine's logging hook. The default is a no-op; the CLI
// installs a real implementation under --debug.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Engine orchestrates the calculators for a full plan run. It holds no
// mutable state beyond configuration and is safe for concurrent use.
type Engine struct {
	Logger Logger
	Now    func() time.Time
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		Logger: NopLogger{},
		Now:    time.Now,
	}
}

// SetLogger replaces the engine's logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
}

// PlanResult is everything a full plan run produces. Sections are nil when
// the plan lacks the inputs they need.
type PlanResult struct {
	PlanName       string                         `json:"planName"`
	ActiveRate     decimal.Decimal                `json:"activeRate"`
	RegularPayment decimal.Decimal                `json:"regularPayment"`
	LTV            decimal.Decimal                `json:"ltv"`
	Trigger        *TriggerAnalysis               `json:"trigger,omitempty"`
	StressTest     *StressTestResult              `json:"stressTest,omitempty"`
	Penalty        *PenaltyResult                 `json:"penalty,omitempty"`
	HelocLimit     decimal.Decimal                `json:"helocLimit"`
	Projection     []domain.YearlyProjectionPoint `json:"projection,omitempty"`
	ROI            *ROIResult                     `json:"roi,omitempty"`
}

// RunPlan evaluates every calculator the plan's inputs support: the active
// term's payment, trigger-rate risk, stress test, break penalty at today's
// market rate, HELOC room, and the Smith Maneuver projection when a strategy
// is configured.
func (e *Engine) RunPlan(plan *domain.Plan) (*PlanResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("run plan: nil plan")
	}
	now := e.Now()
	term := domain.ActiveTerm(plan.Terms, now)
	if term == nil {
		return nil, fmt.Errorf("run plan %q: no term covers %s", plan.Name, now.Format("2006-01-02"))
	}
	rate := term.AnnualRate()
	e.Logger.Debugf("plan %s: active term %s, rate %s", plan.Name, term.Type, rate.String())

	result := &PlanResult{
		PlanName:   plan.Name,
		ActiveRate: rate,
		LTV:        plan.Mortgage.LTV(),
	}

	payment := term.RegularPaymentAmount
	if payment.LessThanOrEqual(decimal.Zero) {
		var err error
		payment, err = CalculatePayment(plan.Mortgage.CurrentBalance, rate, plan.Mortgage.AmortizationMonths, term.PaymentFrequency)
		if err != nil {
			return nil, fmt.Errorf("run plan %q: payment: %w", plan.Name, err)
		}
	}
	result.RegularPayment = payment

	trigger, err := MonitorTriggerRate(term.Type, payment, plan.Mortgage.CurrentBalance, rate, term.PaymentFrequency)
	if err != nil {
		return nil, fmt.Errorf("run plan %q: trigger rate: %w", plan.Name, err)
	}
	result.Trigger = &trigger
	if trigger.Status == TriggerHit {
		e.Logger.Warnf("plan %s: trigger rate hit, balance growing", plan.Name)
	}

	if plan.Qualification != nil {
		stress, err := CheckStressTest(StressTestInput{
			Principal:          plan.Mortgage.CurrentBalance,
			ContractRate:       rate,
			AmortizationMonths: plan.Mortgage.AmortizationMonths,
			GrossAnnualIncome:  plan.Qualification.GrossAnnualIncome,
			PropertyTax:        plan.Qualification.PropertyTax,
			HeatingCosts:       plan.Qualification.HeatingCosts,
			CondoFees:          plan.Qualification.CondoFees,
			OtherDebtPayments:  plan.Qualification.OtherDebtPayments,
		})
		if err != nil {
			return nil, fmt.Errorf("run plan %q: stress test: %w", plan.Name, err)
		}
		result.StressTest = &stress
	}

	if plan.Rates.MarketRate.GreaterThan(decimal.Zero) {
		monthsLeft := int(term.EndDate.Sub(now).Hours() / 24 / 30)
		if monthsLeft > 0 {
			penalty, err := PenaltyByMethod("", plan.Mortgage.CurrentBalance, rate, plan.Rates.MarketRate, monthsLeft, term.Type)
			if err != nil {
				return nil, fmt.Errorf("run plan %q: penalty: %w", plan.Name, err)
			}
			result.Penalty = &penalty
		}
	}

	if plan.Heloc != nil {
		result.HelocLimit = HelocCreditLimit(plan.Mortgage.PropertyValue, plan.Heloc.MaxLTVPercent, plan.Mortgage.CurrentBalance)
	}

	if plan.Strategy != nil && plan.Heloc != nil {
		projection, err := ProjectSmithManeuver(ProjectionInput{
			Strategy:        *plan.Strategy,
			MortgageBalance: plan.Mortgage.CurrentBalance,
			HomeValue:       plan.Mortgage.PropertyValue,
			MaxLTVPercent:   plan.Heloc.MaxLTVPercent,
			HelocBalance:    plan.Heloc.CurrentBalance,
			InvestmentValue: decimal.Zero,
			PrimeRate:       plan.Rates.PrimeRate,
			InterestSpread:  plan.Heloc.InterestSpread,
			IncomeType:      IncomeCapitalGains,
		})
		if err != nil {
			return nil, fmt.Errorf("run plan %q: projection: %w", plan.Name, err)
		}
		result.Projection = projection
		roi := ROIAnalysis(projection)
		result.ROI = &roi
		e.Logger.Infof("plan %s: %d-year projection, net benefit %s", plan.Name, len(projection), roi.TotalNetBenefit.StringFixed(2))
	}
	return result, nil
}
