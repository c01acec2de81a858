package output

import (
	"encoding/json"

	"github.com/tlacroix/canmort/internal/calculation"
)

// JSONFormatter marshals the full plan result for machine consumers.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *calculation.PlanResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
