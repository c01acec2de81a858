package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/tlacroix/canmort/internal/calculation"
)

// CSVFormatter writes the projection time series, one row per year.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *calculation.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "MortgageBalance", "HelocBalance", "InvestmentValue", "TotalPrepayments", "TotalBorrowings", "HelocInterestPaid", "InvestmentReturns", "TaxSavings", "NetBenefit", "LeverageRatio", "InterestCoverage"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range result.Projection {
		row := []string{
			strconv.Itoa(p.Year),
			p.MortgageBalance.StringFixed(2),
			p.HelocBalance.StringFixed(2),
			p.InvestmentValue.StringFixed(2),
			p.TotalPrepayments.StringFixed(2),
			p.TotalBorrowings.StringFixed(2),
			p.HelocInterestPaid.StringFixed(2),
			p.InvestmentReturns.StringFixed(2),
			p.TaxSavings.StringFixed(2),
			p.NetBenefit.StringFixed(2),
			p.LeverageRatio.String(),
			p.InterestCoverage.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
