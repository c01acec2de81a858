package domain

import (
	"github.com/shopspring/decimal"
)

// Qualification holds the borrower figures needed for debt-service and
// stress-test checks. Monthly amounts except GrossAnnualIncome.
type Qualification struct {
	GrossAnnualIncome decimal.Decimal `yaml:"gross_annual_income" json:"grossAnnualIncome"`
	PropertyTax       decimal.Decimal `yaml:"property_tax" json:"propertyTax"`
	HeatingCosts      decimal.Decimal `yaml:"heating_costs" json:"heatingCosts"`
	CondoFees         decimal.Decimal `yaml:"condo_fees" json:"condoFees"`
	OtherDebtPayments decimal.Decimal `yaml:"other_debt_payments" json:"otherDebtPayments"`
}

// MarketRates carries externally sourced rates. The engine performs no
// fetching; callers supply these (e.g. from a Bank of Canada feed). Values
// are percentage points (6.45 means 6.45%) except MarketRate, a decimal
// matching the mortgage rate convention.
type MarketRates struct {
	PrimeRate  decimal.Decimal `yaml:"prime_rate" json:"primeRate"`
	MarketRate decimal.Decimal `yaml:"market_rate" json:"marketRate"`
}

// Plan is the top-level document loaded from a YAML plan file. It bundles
// the state the calculators need; resolving IDs to state is the caller's
// job, so the plan holds values only.
type Plan struct {
	Name          string         `yaml:"name" json:"name"`
	Mortgage      MortgageState  `yaml:"mortgage" json:"mortgage"`
	Terms         []Term         `yaml:"terms" json:"terms"`
	Heloc         *HELOCAccount  `yaml:"heloc,omitempty" json:"heloc,omitempty"`
	Strategy      *SmithStrategy `yaml:"strategy,omitempty" json:"strategy,omitempty"`
	Qualification *Qualification `yaml:"qualification,omitempty" json:"qualification,omitempty"`
	Rates         MarketRates    `yaml:"rates" json:"rates"`
}
