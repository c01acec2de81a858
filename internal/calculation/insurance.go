package calculation

import (
	"github.com/shopspring/decimal"
)

// InsuranceProvider is a Canadian mortgage default insurer.
type InsuranceProvider string

const (
	ProviderCMHC     InsuranceProvider = "cmhc"
	ProviderSagen    InsuranceProvider = "sagen"
	ProviderGenworth InsuranceProvider = "genworth"
)

// PremiumPaymentType controls whether the premium is paid at closing or
// capitalized into the mortgage principal.
type PremiumPaymentType string

const (
	PremiumUpfront     PremiumPaymentType = "upfront"
	PremiumCapitalized PremiumPaymentType = "added_to_principal"
)

// MLISelectDiscount is the CMHC MLI Select premium discount tier.
type MLISelectDiscount int

const (
	MLINone    MLISelectDiscount = 0
	MLILevel10 MLISelectDiscount = 10
	MLILevel20 MLISelectDiscount = 20
	MLILevel30 MLISelectDiscount = 30
)

// ltvBand maps an LTV ceiling to a premium percentage of the loan amount.
type ltvBand struct {
	maxLTV  decimal.Decimal
	premium decimal.Decimal // percent of mortgage amount
}

// Standard premium schedule. All three insurers currently publish identical
// rates, so a single table serves every provider.
var premiumBands = []ltvBand{
	{decimal.NewFromInt(75), decimal.NewFromFloat(0.60)},
	{decimal.NewFromInt(80), decimal.NewFromFloat(1.70)},
	{decimal.NewFromInt(85), decimal.NewFromFloat(2.40)},
	{decimal.NewFromInt(90), decimal.NewFromFloat(2.80)},
	{decimal.NewFromInt(95), decimal.NewFromFloat(3.10)},
	{decimal.NewFromInt(100), decimal.NewFromFloat(4.00)},
}

var highRatioLTV = decimal.NewFromInt(80)

// IsHighRatio reports whether a mortgage needs default insurance: LTV above
// 80%.
func IsHighRatio(ltvPercent decimal.Decimal) bool {
	return ltvPercent.GreaterThan(highRatioLTV)
}

// PremiumRate looks up the premium percentage for an LTV. Conventional
// mortgages (LTV at or under 80%) are zero; LTV over 100% is uninsurable.
func PremiumRate(provider InsuranceProvider, ltvPercent decimal.Decimal) (decimal.Decimal, error) {
	switch provider {
	case ProviderCMHC, ProviderSagen, ProviderGenworth:
	default:
		return decimal.Zero, ErrInvalidLTV
	}
	if ltvPercent.IsNegative() || ltvPercent.GreaterThan(hundred) {
		return decimal.Zero, ErrInvalidLTV
	}
	if !IsHighRatio(ltvPercent) {
		return decimal.Zero, nil
	}
	for _, band := range premiumBands {
		if ltvPercent.LessThanOrEqual(band.maxLTV) {
			return band.premium, nil
		}
	}
	return decimal.Zero, ErrInvalidLTV
}

// PremiumResult is the insurance quote for one mortgage.
type PremiumResult struct {
	LTV                 decimal.Decimal    `json:"ltv"`
	HighRatio           bool               `json:"highRatio"`
	PremiumRate         decimal.Decimal    `json:"premiumRate"`
	Premium             decimal.Decimal    `json:"premium"`
	DiscountApplied     MLISelectDiscount  `json:"discountApplied"`
	PaymentType         PremiumPaymentType `json:"paymentType"`
	TotalMortgageAmount decimal.Decimal    `json:"totalMortgageAmount"`
}

// InsurancePremium quotes the default-insurance premium. The MLI Select
// discount reduces the premium multiplicatively; a capitalized premium is
// added to the mortgage principal, an upfront premium is not.
func InsurancePremium(provider InsuranceProvider, mortgageAmount, propertyValue decimal.Decimal, discount MLISelectDiscount, paymentType PremiumPaymentType) (PremiumResult, error) {
	if propertyValue.LessThanOrEqual(decimal.Zero) || mortgageAmount.LessThanOrEqual(decimal.Zero) {
		return PremiumResult{}, ErrInvalidBalance
	}
	ltv := mortgageAmount.Div(propertyValue).Mul(hundred)
	rate, err := PremiumRate(provider, ltv)
	if err != nil {
		return PremiumResult{}, err
	}

	premium := mortgageAmount.Mul(rate).Div(hundred)
	if discount != MLINone {
		factor := hundred.Sub(decimal.NewFromInt(int64(discount))).Div(hundred)
		premium = premium.Mul(factor)
	}
	premium = roundCents(premium)

	total := mortgageAmount
	if paymentType == PremiumCapitalized {
		total = mortgageAmount.Add(premium)
	}
	return PremiumResult{
		LTV:                 ltv,
		HighRatio:           IsHighRatio(ltv),
		PremiumRate:         rate,
		Premium:             premium,
		DiscountApplied:     discount,
		PaymentType:         paymentType,
		TotalMortgageAmount: roundCents(total),
	}, nil
}
