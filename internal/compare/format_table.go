package compare

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	positiveStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	negativeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TableFormatter renders the comparison as a styled console table.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (tf TableFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder

	sb.WriteString(tableTitleStyle.Render(fmt.Sprintf("STRATEGY COMPARISON: %s (%d years)", set.PlanName, set.Years)))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n\n")

	nameWidth := 22
	numWidth := 16
	sb.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-*s %*s %*s %*s",
		nameWidth, "Metric",
		numWidth, set.Smith.Name,
		numWidth, set.Baseline.Name,
		numWidth, "Difference")))
	sb.WriteString("\n")

	rows := []struct {
		label         string
		smith, base   decimal.Decimal
		higherIsWorse bool
	}{
		{"Mortgage Balance", set.Smith.MortgageBalance, set.Baseline.MortgageBalance, true},
		{"HELOC Balance", set.Smith.HelocBalance, set.Baseline.HelocBalance, true},
		{"Investment Value", set.Smith.InvestmentValue, set.Baseline.InvestmentValue, false},
		{"Interest Paid", set.Smith.InterestPaid, set.Baseline.InterestPaid, true},
		{"Tax Savings", set.Smith.TaxSavings, set.Baseline.TaxSavings, false},
		{"Net Position", set.Smith.NetPosition, set.Baseline.NetPosition, false},
	}
	for _, r := range rows {
		diff := r.smith.Sub(r.base)
		diffStr := fmt.Sprintf("%*s", numWidth, "$"+diff.StringFixed(2))
		favorable := diff.GreaterThan(decimal.Zero) != r.higherIsWorse
		switch {
		case diff.IsZero():
		case favorable:
			diffStr = positiveStyle.Render(diffStr)
		default:
			diffStr = negativeStyle.Render(diffStr)
		}
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %s\n",
			nameWidth, r.label,
			numWidth, "$"+r.smith.StringFixed(2),
			numWidth, "$"+r.base.StringFixed(2),
			diffStr))
	}

	sb.WriteString("\n")
	advantage := "$" + set.Advantage.StringFixed(2)
	if set.Advantage.GreaterThan(decimal.Zero) {
		sb.WriteString(fmt.Sprintf("Cumulative strategy benefit: %s\n", positiveStyle.Render(advantage)))
	} else {
		sb.WriteString(fmt.Sprintf("Cumulative strategy benefit: %s\n", negativeStyle.Render(advantage)))
	}

	if len(set.Recommendations) > 0 {
		sb.WriteString("\nNOTES\n")
		sb.WriteString(strings.Repeat("-", 78) + "\n")
		for _, rec := range set.Recommendations {
			sb.WriteString("  - " + rec + "\n")
		}
	}
	return sb.String(), nil
}
