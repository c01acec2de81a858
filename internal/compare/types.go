// Package compare runs a Smith Maneuver strategy against a plain
// prepayment-only baseline and renders the side-by-side result.
package compare

import (
	"github.com/shopspring/decimal"

	"github.com/tlacroix/canmort/internal/domain"
)

// StrategyMetrics summarizes one strategy path at the projection horizon.
type StrategyMetrics struct {
	Name             string          `json:"name"`
	MortgageBalance  decimal.Decimal `json:"mortgageBalance"`
	HelocBalance     decimal.Decimal `json:"helocBalance"`
	InvestmentValue  decimal.Decimal `json:"investmentValue"`
	InterestPaid     decimal.Decimal `json:"interestPaid"`
	TaxSavings       decimal.Decimal `json:"taxSavings"`
	NetPosition      decimal.Decimal `json:"netPosition"` // investments less all debt
	TotalPrepayments decimal.Decimal `json:"totalPrepayments"`
}

// ComparisonSet is the full comparison output.
type ComparisonSet struct {
	PlanName        string                         `json:"planName"`
	Years           int                            `json:"years"`
	Smith           StrategyMetrics                `json:"smith"`
	Baseline        StrategyMetrics                `json:"baseline"`
	Advantage       decimal.Decimal                `json:"advantage"` // Smith net position minus baseline
	Projection      []domain.YearlyProjectionPoint `json:"projection"`
	Recommendations []string                       `json:"recommendations"`
}

// Formatter renders a comparison set.
type Formatter interface {
	Name() string
	Format(set *ComparisonSet) (string, error)
}
