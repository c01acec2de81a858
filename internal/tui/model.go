// Package tui is the interactive dashboard: plan summary, stress test and
// the Smith Maneuver projection table.
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tlacroix/canmort/internal/calculation"
	"github.com/tlacroix/canmort/internal/config"
	"github.com/tlacroix/canmort/internal/domain"
)

// Scene identifies the visible screen.
type Scene int

const (
	SceneSummary Scene = iota
	SceneProjection
)

// Model is the application state.
type Model struct {
	scene Scene

	width  int
	height int

	planPath string
	plan     *domain.Plan

	calcEngine *calculation.Engine
	result     *calculation.PlanResult

	projectionTable table.Model

	err     error
	loading bool
}

// NewModel creates the application model for a plan file.
func NewModel(planPath string) Model {
	return Model{
		scene:      SceneSummary,
		planPath:   planPath,
		calcEngine: calculation.NewEngine(),
		width:      80,
		height:     24,
		loading:    true,
	}
}

// Init loads the plan file.
func (m Model) Init() tea.Cmd {
	return loadPlanCmd(m.planPath)
}

// PlanLoadedMsg carries a parsed plan into the model.
type PlanLoadedMsg struct {
	Plan *domain.Plan
}

// ResultMsg carries a finished plan run.
type ResultMsg struct {
	Result *calculation.PlanResult
}

// ErrorMsg carries a load or calculation failure.
type ErrorMsg struct {
	Err error
}

func loadPlanCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return PlanLoadedMsg{Plan: plan}
	}
}

func runPlanCmd(engine *calculation.Engine, plan *domain.Plan) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.RunPlan(plan)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ResultMsg{Result: result}
	}
}
