package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentFrequency identifies how often mortgage payments are made.
// Accelerated variants pay the same number of times per year as their
// non-accelerated counterparts but use a larger per-payment amount.
type PaymentFrequency string

const (
	FrequencyMonthly             PaymentFrequency = "monthly"
	FrequencySemiMonthly         PaymentFrequency = "semi-monthly"
	FrequencyBiweekly            PaymentFrequency = "biweekly"
	FrequencyAcceleratedBiweekly PaymentFrequency = "accelerated-biweekly"
	FrequencyWeekly              PaymentFrequency = "weekly"
	FrequencyAcceleratedWeekly   PaymentFrequency = "accelerated-weekly"
)

// PaymentsPerYear returns the number of payments per year for the frequency.
// The second return value is false for unrecognized frequencies.
func (f PaymentFrequency) PaymentsPerYear() (int, bool) {
	switch f {
	case FrequencyMonthly:
		return 12, true
	case FrequencySemiMonthly:
		return 24, true
	case FrequencyBiweekly, FrequencyAcceleratedBiweekly:
		return 26, true
	case FrequencyWeekly, FrequencyAcceleratedWeekly:
		return 52, true
	}
	return 0, false
}

// IsAccelerated reports whether the frequency uses the divide-the-monthly
// payment rule.
func (f PaymentFrequency) IsAccelerated() bool {
	return f == FrequencyAcceleratedBiweekly || f == FrequencyAcceleratedWeekly
}

// TermType identifies the rate behavior of a mortgage term.
type TermType string

const (
	// TermFixed is a fixed rate for the whole term.
	TermFixed TermType = "fixed"
	// TermVariableChangingPayment is a variable rate where the payment is
	// recalculated when prime moves.
	TermVariableChangingPayment TermType = "variable-changing"
	// TermVariableFixedPayment is a variable rate with a fixed payment;
	// subject to trigger rate risk.
	TermVariableFixedPayment TermType = "variable-fixed"
)

// MortgageState is the immutable mortgage snapshot fed to the calculators.
// Monetary fields are dollars; rates are decimals (0.0549 for 5.49%).
type MortgageState struct {
	OriginalPrincipal            decimal.Decimal  `yaml:"original_principal" json:"originalPrincipal"`
	CurrentBalance               decimal.Decimal  `yaml:"current_balance" json:"currentBalance"`
	PropertyValue                decimal.Decimal  `yaml:"property_value" json:"propertyValue"`
	AmortizationMonths           int              `yaml:"amortization_months" json:"amortizationMonths"`
	PaymentFrequency             PaymentFrequency `yaml:"payment_frequency" json:"paymentFrequency"`
	StartDate                    time.Time        `yaml:"start_date" json:"startDate"`
	AnnualPrepaymentLimitPercent decimal.Decimal  `yaml:"annual_prepayment_limit_percent" json:"annualPrepaymentLimitPercent"`
	PrepaymentCarryForward       decimal.Decimal  `yaml:"prepayment_carry_forward" json:"prepaymentCarryForward"`
}

// LTV returns the loan-to-value ratio as a percentage (80.00 means 80%).
// Zero property value yields zero.
func (m *MortgageState) LTV() decimal.Decimal {
	if m.PropertyValue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return m.CurrentBalance.Div(m.PropertyValue).Mul(decimal.NewFromInt(100)).Round(2)
}

// Term is one rate period of a mortgage. FixedRate is a decimal annual rate;
// PrimeRate and LockedSpread are percentage points (6.45 means 6.45%), the
// convention used by Canadian variable-rate statements.
type Term struct {
	Type                 TermType         `yaml:"type" json:"type"`
	StartDate            time.Time        `yaml:"start_date" json:"startDate"`
	EndDate              time.Time        `yaml:"end_date" json:"endDate"`
	FixedRate            decimal.Decimal  `yaml:"fixed_rate" json:"fixedRate"`
	PrimeRate            decimal.Decimal  `yaml:"prime_rate" json:"primeRate"`
	LockedSpread         decimal.Decimal  `yaml:"locked_spread" json:"lockedSpread"`
	PaymentFrequency     PaymentFrequency `yaml:"payment_frequency" json:"paymentFrequency"`
	RegularPaymentAmount decimal.Decimal  `yaml:"regular_payment_amount" json:"regularPaymentAmount"`
	RateCap              *decimal.Decimal `yaml:"rate_cap,omitempty" json:"rateCap,omitempty"`
	RateFloor            *decimal.Decimal `yaml:"rate_floor,omitempty" json:"rateFloor,omitempty"`
}

// AnnualRate returns the term's current annual rate as a decimal. Variable
// terms derive it from prime plus the locked spread.
func (t *Term) AnnualRate() decimal.Decimal {
	if t.Type == TermFixed {
		return t.FixedRate
	}
	return t.PrimeRate.Add(t.LockedSpread).Div(decimal.NewFromInt(100))
}

// Contains reports whether the date falls within [StartDate, EndDate].
func (t *Term) Contains(date time.Time) bool {
	return !date.Before(t.StartDate) && !date.After(t.EndDate)
}

// ActiveTerm resolves the term in effect on the given date: the most recent
// term whose range contains the date, otherwise the latest term by start
// date. Returns nil for an empty slice.
func ActiveTerm(terms []Term, date time.Time) *Term {
	var active *Term
	for i := range terms {
		t := &terms[i]
		if t.Contains(date) && (active == nil || t.StartDate.After(active.StartDate)) {
			active = t
		}
	}
	if active != nil {
		return active
	}
	for i := range terms {
		t := &terms[i]
		if active == nil || t.StartDate.After(active.StartDate) {
			active = t
		}
	}
	return active
}

// PaymentRecord is one row of an amortization schedule. RemainingBalance of
// payment n is the input balance of payment n+1.
type PaymentRecord struct {
	PaymentNumber               int             `json:"paymentNumber"`
	PaymentDate                 time.Time       `json:"paymentDate"`
	PaymentAmount               decimal.Decimal `json:"paymentAmount"`
	PrincipalPaid               decimal.Decimal `json:"principalPaid"`
	InterestPaid                decimal.Decimal `json:"interestPaid"`
	PrepaymentAmount            decimal.Decimal `json:"prepaymentAmount"`
	RemainingBalance            decimal.Decimal `json:"remainingBalance"`
	RemainingAmortizationMonths int             `json:"remainingAmortizationMonths"`
	EffectiveRate               decimal.Decimal `json:"effectiveRate"`
	TriggerRateHit              bool            `json:"triggerRateHit"`
}
