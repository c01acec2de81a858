package domain

import (
	"github.com/shopspring/decimal"
)

// HELOCAccount is the credit-line snapshot used by the HELOC calculators.
// InterestSpread is percentage points over prime (0.5 means prime + 0.50%).
type HELOCAccount struct {
	CurrentBalance     decimal.Decimal `yaml:"current_balance" json:"currentBalance"`
	CreditLimit        decimal.Decimal `yaml:"credit_limit" json:"creditLimit"`
	MaxLTVPercent      decimal.Decimal `yaml:"max_ltv_percent" json:"maxLtvPercent"`
	HomeValueReference decimal.Decimal `yaml:"home_value_reference" json:"homeValueReference"`
	InterestSpread     decimal.Decimal `yaml:"interest_spread" json:"interestSpread"`
	IsReAdvanceable    bool            `yaml:"is_re_advanceable" json:"isReAdvanceable"`
}

// AvailableCredit returns the room left on the line, floored at zero.
func (h *HELOCAccount) AvailableCredit() decimal.Decimal {
	room := h.CreditLimit.Sub(h.CurrentBalance)
	if room.IsNegative() {
		return decimal.Zero
	}
	return room
}
