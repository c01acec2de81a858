package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/calculation"
)

// View renders the current scene (required by tea.Model interface).
func (m Model) View() string {
	if m.err != nil {
		return AppStyle.Render(
			ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" +
				HelpStyle.Render("q: quit  r: reload"))
	}
	if m.loading || m.result == nil {
		return AppStyle.Render(TitleStyle.Render("canmort") + "\n\nLoading plan...")
	}

	var body string
	switch m.scene {
	case SceneProjection:
		body = m.viewProjection()
	default:
		body = m.viewSummary()
	}

	help := HelpStyle.Render("tab: switch view  r: recalculate  q: quit")
	return AppStyle.Render(body + "\n\n" + help)
}

func (m Model) viewSummary() string {
	r := m.result
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("MORTGAGE PLAN: " + r.PlanName))
	sb.WriteString("\n")
	sb.WriteString(SubtitleStyle.Render(m.planPath))
	sb.WriteString("\n\n")

	position := metricLine("Contract Rate", formatRate(r.ActiveRate)) +
		metricLine("Regular Payment", "$"+r.RegularPayment.StringFixed(2)) +
		metricLine("Loan-to-Value", r.LTV.StringFixed(2)+"%")
	sb.WriteString(BorderStyle.Render("CURRENT POSITION\n" + position))
	sb.WriteString("\n\n")

	if r.Trigger != nil && r.Trigger.Status != calculation.TriggerNotApplicable {
		style := MetricValueStyle
		if r.Trigger.Status != calculation.TriggerSafe {
			style = MetricNegativeStyle
		}
		trigger := metricLine("Status", style.Render(string(r.Trigger.Status))) +
			metricLine("Trigger Rate", formatRate(r.Trigger.TriggerRate)) +
			metricLine("Distance", formatRate(r.Trigger.DistanceToTrigger))
		sb.WriteString(BorderStyle.Render("TRIGGER RATE\n" + trigger))
		sb.WriteString("\n\n")
	}

	if r.StressTest != nil {
		verdict := MetricPositiveStyle.Render("PASS")
		if !r.StressTest.Passed {
			verdict = MetricNegativeStyle.Render("FAIL")
		}
		stress := metricLine("Qualifying Rate", formatRate(r.StressTest.QualifyingRate)) +
			metricLine("GDS / TDS", fmt.Sprintf("%s%% / %s%%", r.StressTest.GDS.StringFixed(2), r.StressTest.TDS.StringFixed(2))) +
			metricLine("Verdict", verdict)
		sb.WriteString(BorderStyle.Render("B-20 STRESS TEST\n" + stress))
		sb.WriteString("\n\n")
	}

	if r.ROI != nil {
		benefit := MetricPositiveStyle
		if r.ROI.TotalNetBenefit.LessThan(decimal.Zero) {
			benefit = MetricNegativeStyle
		}
		roi := metricLine("Net Benefit", benefit.Render("$"+r.ROI.TotalNetBenefit.StringFixed(2))) +
			metricLine("Total Borrowings", "$"+r.ROI.TotalBorrowings.StringFixed(2)) +
			metricLine("Tax Savings", "$"+r.ROI.TotalTaxSavings.StringFixed(2)) +
			metricLine("ROI", r.ROI.ROI.String())
		sb.WriteString(BorderStyle.Render("SMITH MANEUVER\n" + roi))
	}
	return sb.String()
}

func (m Model) viewProjection() string {
	title := TitleStyle.Render("PROJECTION: " + m.result.PlanName)
	if len(m.result.Projection) == 0 {
		return title + "\n\n" + SubtitleStyle.Render("No strategy configured in this plan.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", m.projectionTable.View())
}

func metricLine(label, value string) string {
	return "\n" + MetricLabelStyle.Render(label) + MetricValueStyle.Render(value)
}

func formatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
