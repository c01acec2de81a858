package compare

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes the year-by-year projection with the baseline summary
// appended as trailing rows.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(set *ComparisonSet) (string, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "MortgageBalance", "HelocBalance", "InvestmentValue", "NetBenefit", "LeverageRatio", "InterestCoverage"}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, p := range set.Projection {
		row := []string{
			strconv.Itoa(p.Year),
			p.MortgageBalance.StringFixed(2),
			p.HelocBalance.StringFixed(2),
			p.InvestmentValue.StringFixed(2),
			p.NetBenefit.StringFixed(2),
			p.LeverageRatio.String(),
			p.InterestCoverage.String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	summary := [][]string{
		{"Strategy", "MortgageBalance", "HelocBalance", "InvestmentValue", "InterestPaid", "NetPosition", ""},
		{set.Smith.Name, set.Smith.MortgageBalance.StringFixed(2), set.Smith.HelocBalance.StringFixed(2), set.Smith.InvestmentValue.StringFixed(2), set.Smith.InterestPaid.StringFixed(2), set.Smith.NetPosition.StringFixed(2), ""},
		{set.Baseline.Name, set.Baseline.MortgageBalance.StringFixed(2), set.Baseline.HelocBalance.StringFixed(2), set.Baseline.InvestmentValue.StringFixed(2), set.Baseline.InterestPaid.StringFixed(2), set.Baseline.NetPosition.StringFixed(2), ""},
	}
	for _, row := range summary {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
