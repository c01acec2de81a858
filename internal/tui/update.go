package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tlacroix/canmort/internal/calculation"
)

// Update handles all messages (required by tea.Model interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.result != nil {
			m.projectionTable = buildProjectionTable(m.result, m.height)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.scene == SceneSummary {
				m.scene = SceneProjection
			} else {
				m.scene = SceneSummary
			}
			return m, nil
		case "r":
			if m.plan != nil {
				m.loading = true
				return m, runPlanCmd(m.calcEngine, m.plan)
			}
			return m, nil
		}
		if m.scene == SceneProjection {
			var cmd tea.Cmd
			m.projectionTable, cmd = m.projectionTable.Update(msg)
			return m, cmd
		}
		return m, nil

	case PlanLoadedMsg:
		m.plan = msg.Plan
		m.err = nil
		return m, runPlanCmd(m.calcEngine, m.plan)

	case ResultMsg:
		m.result = msg.Result
		m.loading = false
		m.err = nil
		m.projectionTable = buildProjectionTable(m.result, m.height)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}
	return m, nil
}

func buildProjectionTable(result *calculation.PlanResult, height int) table.Model {
	columns := []table.Column{
		{Title: "Year", Width: 5},
		{Title: "Mortgage", Width: 13},
		{Title: "HELOC", Width: 13},
		{Title: "Investments", Width: 13},
		{Title: "Net Benefit", Width: 12},
		{Title: "Leverage", Width: 9},
	}
	rows := make([]table.Row, 0, len(result.Projection))
	for _, p := range result.Projection {
		rows = append(rows, table.Row{
			strconv.Itoa(p.Year),
			"$" + p.MortgageBalance.StringFixed(2),
			"$" + p.HelocBalance.StringFixed(2),
			"$" + p.InvestmentValue.StringFixed(2),
			"$" + p.NetBenefit.StringFixed(2),
			p.LeverageRatio.String(),
		})
	}
	tableHeight := height - 8
	if tableHeight < 4 {
		tableHeight = 4
	}
	if tableHeight > len(rows)+1 {
		tableHeight = len(rows) + 1
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(ColorPrimary).BorderForeground(ColorBorder)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)
	return t
}
