// Package config loads and validates YAML plan files.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tlacroix/canmort/internal/domain"
)

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan validates a loaded plan.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if plan.Name == "" {
		return fmt.Errorf("plan name is required")
	}
	if err := ip.validateMortgage(&plan.Mortgage); err != nil {
		return fmt.Errorf("mortgage validation failed: %w", err)
	}
	if len(plan.Terms) == 0 {
		return fmt.Errorf("at least one term is required")
	}
	for i := range plan.Terms {
		if err := ip.validateTerm(i, &plan.Terms[i]); err != nil {
			return fmt.Errorf("term %d validation failed: %w", i, err)
		}
	}
	for i := 1; i < len(plan.Terms); i++ {
		if plan.Terms[i].StartDate.Before(plan.Terms[i-1].EndDate) {
			return fmt.Errorf("term %d overlaps term %d", i, i-1)
		}
	}
	if plan.Heloc != nil {
		if err := ip.validateHeloc(plan.Heloc); err != nil {
			return fmt.Errorf("heloc validation failed: %w", err)
		}
	}
	if plan.Strategy != nil {
		if err := ip.validateStrategy(plan.Strategy); err != nil {
			return fmt.Errorf("strategy validation failed: %w", err)
		}
	}
	if plan.Qualification != nil {
		if plan.Qualification.GrossAnnualIncome.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("gross annual income must be positive")
		}
	}
	return nil
}

func (ip *InputParser) validateMortgage(m *domain.MortgageState) error {
	if m.OriginalPrincipal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("original principal must be positive")
	}
	if m.CurrentBalance.IsNegative() {
		return fmt.Errorf("current balance cannot be negative")
	}
	if m.CurrentBalance.GreaterThan(m.OriginalPrincipal) {
		return fmt.Errorf("current balance cannot exceed original principal")
	}
	if m.PropertyValue.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("property value must be positive")
	}
	if m.AmortizationMonths <= 0 {
		return fmt.Errorf("amortization months must be positive")
	}
	if _, ok := m.PaymentFrequency.PaymentsPerYear(); !ok {
		return fmt.Errorf("unsupported payment frequency %q", m.PaymentFrequency)
	}
	if m.AnnualPrepaymentLimitPercent.IsNegative() || m.AnnualPrepaymentLimitPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("annual prepayment limit must be between 0 and 100")
	}
	return nil
}

func (ip *InputParser) validateTerm(i int, t *domain.Term) error {
	switch t.Type {
	case domain.TermFixed:
		if t.FixedRate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("fixed term requires a positive fixed rate")
		}
	case domain.TermVariableChangingPayment, domain.TermVariableFixedPayment:
		if t.PrimeRate.IsZero() && t.LockedSpread.IsZero() {
			return fmt.Errorf("variable term requires prime rate and locked spread")
		}
	default:
		return fmt.Errorf("unknown term type %q", t.Type)
	}
	if !t.EndDate.After(t.StartDate) {
		return fmt.Errorf("end date must be after start date")
	}
	if _, ok := t.PaymentFrequency.PaymentsPerYear(); !ok {
		return fmt.Errorf("unsupported payment frequency %q", t.PaymentFrequency)
	}
	if t.RegularPaymentAmount.IsNegative() {
		return fmt.Errorf("regular payment amount cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateHeloc(h *domain.HELOCAccount) error {
	if h.CurrentBalance.IsNegative() {
		return fmt.Errorf("heloc balance cannot be negative")
	}
	if h.CreditLimit.IsNegative() {
		return fmt.Errorf("credit limit cannot be negative")
	}
	if h.CurrentBalance.GreaterThan(h.CreditLimit) {
		return fmt.Errorf("heloc balance cannot exceed credit limit")
	}
	if h.MaxLTVPercent.LessThanOrEqual(decimal.Zero) || h.MaxLTVPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("max LTV must be between 0 and 100")
	}
	return nil
}

func (ip *InputParser) validateStrategy(s *domain.SmithStrategy) error {
	if s.PrepaymentAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("prepayment amount must be positive")
	}
	switch s.PrepaymentFrequency {
	case domain.PrepayMonthly, domain.PrepayQuarterly, domain.PrepayAnnually, domain.PrepayLumpSum:
	default:
		return fmt.Errorf("unknown prepayment frequency %q", s.PrepaymentFrequency)
	}
	if s.BorrowingPercent.IsNegative() || s.BorrowingPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("borrowing percent must be between 0 and 100")
	}
	if s.InvestmentUsePercent.IsNegative() || s.InvestmentUsePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("investment use percent must be between 0 and 100")
	}
	if s.MarginalTaxRate.IsNegative() || s.MarginalTaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("marginal tax rate must be a decimal between 0 and 1")
	}
	if s.ProjectionYears <= 0 || s.ProjectionYears > 100 {
		return fmt.Errorf("projection years must be between 1 and 100")
	}
	return nil
}
