// Package output renders plan results as console reports, CSV and JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/calculation"
)

// Formatter renders a plan result to bytes.
type Formatter interface {
	Name() string
	Format(result *calculation.PlanResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName returns the registered formatter with the given name,
// or nil when none matches.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatCurrency formats a decimal as currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatRate formats a decimal rate (0.0549) as a percentage (5.49%).
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// ConsoleFormatter renders the full plan analysis for terminal display.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *calculation.PlanResult) ([]byte, error) {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "MORTGAGE PLAN ANALYSIS: %s\n", result.PlanName)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "CURRENT POSITION")
	fmt.Fprintln(&b, strings.Repeat("-", 30))
	fmt.Fprintf(&b, "  Contract Rate:     %s\n", FormatRate(result.ActiveRate))
	fmt.Fprintf(&b, "  Regular Payment:   %s\n", FormatCurrency(result.RegularPayment))
	fmt.Fprintf(&b, "  Loan-to-Value:     %s\n", FormatPercentage(result.LTV))
	fmt.Fprintln(&b)

	if result.Trigger != nil && result.Trigger.Status != calculation.TriggerNotApplicable {
		fmt.Fprintln(&b, "TRIGGER RATE")
		fmt.Fprintln(&b, strings.Repeat("-", 30))
		fmt.Fprintf(&b, "  Status:            %s\n", result.Trigger.Status)
		fmt.Fprintf(&b, "  Trigger Rate:      %s\n", FormatRate(result.Trigger.TriggerRate))
		fmt.Fprintf(&b, "  Distance:          %s\n", FormatRate(result.Trigger.DistanceToTrigger))
		fmt.Fprintln(&b)
	}

	if result.StressTest != nil {
		st := result.StressTest
		verdict := "FAIL"
		if st.Passed {
			verdict = "PASS"
		}
		fmt.Fprintln(&b, "B-20 STRESS TEST")
		fmt.Fprintln(&b, strings.Repeat("-", 30))
		fmt.Fprintf(&b, "  Qualifying Rate:   %s\n", FormatRate(st.QualifyingRate))
		fmt.Fprintf(&b, "  Qualifying Payment:%s\n", FormatCurrency(st.QualifyingPayment))
		fmt.Fprintf(&b, "  GDS:               %s (%s)\n", FormatPercentage(st.GDS), st.GDSStatus)
		fmt.Fprintf(&b, "  TDS:               %s (%s)\n", FormatPercentage(st.TDS), st.TDSStatus)
		fmt.Fprintf(&b, "  Verdict:           %s\n", verdict)
		fmt.Fprintln(&b)
	}

	if result.Penalty != nil {
		fmt.Fprintln(&b, "BREAK PENALTY (today)")
		fmt.Fprintln(&b, strings.Repeat("-", 30))
		fmt.Fprintf(&b, "  Penalty:           %s (%s)\n", FormatCurrency(result.Penalty.Amount), result.Penalty.Method)
		fmt.Fprintf(&b, "  3-Month Interest:  %s\n", FormatCurrency(result.Penalty.ThreeMonthInterest))
		fmt.Fprintf(&b, "  IRD:               %s\n", FormatCurrency(result.Penalty.IRD))
		fmt.Fprintln(&b)
	}

	if len(result.Projection) > 0 {
		fmt.Fprintln(&b, "SMITH MANEUVER PROJECTION")
		fmt.Fprintln(&b, strings.Repeat("-", 30))
		fmt.Fprintf(&b, "  %-5s %-14s %-14s %-14s %-12s\n", "Year", "Mortgage", "HELOC", "Investments", "Net Benefit")
		for _, p := range result.Projection {
			fmt.Fprintf(&b, "  %-5d %-14s %-14s %-14s %-12s\n",
				p.Year,
				FormatCurrency(p.MortgageBalance),
				FormatCurrency(p.HelocBalance),
				FormatCurrency(p.InvestmentValue),
				FormatCurrency(p.NetBenefit))
		}
		fmt.Fprintln(&b)
	}

	if result.ROI != nil {
		fmt.Fprintln(&b, "STRATEGY SUMMARY")
		fmt.Fprintln(&b, strings.Repeat("-", 30))
		fmt.Fprintf(&b, "  Total Prepayments: %s\n", FormatCurrency(result.ROI.TotalPrepayments))
		fmt.Fprintf(&b, "  Total Borrowings:  %s\n", FormatCurrency(result.ROI.TotalBorrowings))
		fmt.Fprintf(&b, "  HELOC Interest:    %s\n", FormatCurrency(result.ROI.TotalInterestPaid))
		fmt.Fprintf(&b, "  Tax Savings:       %s\n", FormatCurrency(result.ROI.TotalTaxSavings))
		fmt.Fprintf(&b, "  Net Benefit:       %s\n", FormatCurrency(result.ROI.TotalNetBenefit))
		fmt.Fprintf(&b, "  ROI:               %s\n", result.ROI.ROI.String())
		if result.ROI.BreakEvenYear > 0 {
			fmt.Fprintf(&b, "  Break-Even Year:   %d\n", result.ROI.BreakEvenYear)
		}
		fmt.Fprintln(&b)
	}
	return []byte(b.String()), nil
}
