package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlacroix/canmort/internal/domain"
)

func TestThreeMonthInterestPenalty(t *testing.T) {
	penalty, err := ThreeMonthInterestPenalty(decimal.NewFromInt(100000), decimal.NewFromFloat(0.05))
	require.NoError(t, err)
	assert.Equal(t, "1250.00", penalty.StringFixed(2))

	_, err = ThreeMonthInterestPenalty(decimal.Zero, decimal.NewFromFloat(0.05))
	assert.ErrorIs(t, err, ErrInvalidBalance)
}

func TestIRDPenalty(t *testing.T) {
	balance := decimal.NewFromInt(100000)

	ird, err := IRDPenalty(balance, decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.03), 24)
	require.NoError(t, err)
	assert.Equal(t, "4000.00", ird.StringFixed(2), "2% differential over 2 years")

	ird, err = IRDPenalty(balance, decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.06), 24)
	require.NoError(t, err)
	assert.True(t, ird.IsZero(), "No differential when market is above contract")

	ird, err = IRDPenalty(balance, decimal.NewFromFloat(0.05), decimal.NewFromFloat(0.03), 0)
	require.NoError(t, err)
	assert.True(t, ird.IsZero(), "Matured term owes nothing")
}

func TestStandardPenalty_TakesGreater(t *testing.T) {
	result, err := StandardPenalty(
		decimal.NewFromInt(100000),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.03),
		24,
	)
	require.NoError(t, err)

	assert.Equal(t, MethodIRD, result.Method)
	assert.Equal(t, "4000.00", result.Amount.StringFixed(2))
	assert.Equal(t, "1250.00", result.ThreeMonthInterest.StringFixed(2))
	assert.Equal(t, "4000.00", result.IRD.StringFixed(2))
}

func TestStandardPenalty_FallsBackToThreeMonth(t *testing.T) {
	result, err := StandardPenalty(
		decimal.NewFromInt(100000),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.06),
		24,
	)
	require.NoError(t, err)

	assert.Equal(t, MethodThreeMonth, result.Method)
	assert.Equal(t, "1250.00", result.Amount.StringFixed(2))
}

func TestStandardPenalty_LargeDifferential(t *testing.T) {
	result, err := StandardPenalty(
		decimal.NewFromInt(100000),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.01),
		48,
	)
	require.NoError(t, err)

	// 4% differential over 4 years dwarfs the $1,250 of 3-month interest.
	assert.Equal(t, MethodIRD, result.Method)
	assert.Equal(t, "16000.00", result.Amount.StringFixed(2))
}

func TestPenaltyByMethod(t *testing.T) {
	balance := decimal.NewFromInt(100000)
	contract := decimal.NewFromFloat(0.05)
	market := decimal.NewFromFloat(0.03)

	open, err := PenaltyByMethod("open_mortgage", balance, contract, market, 24, domain.TermFixed)
	require.NoError(t, err)
	assert.Equal(t, MethodNone, open.Method)
	assert.True(t, open.Amount.IsZero())

	threeMonth, err := PenaltyByMethod("three_month_interest", balance, contract, market, 24, domain.TermFixed)
	require.NoError(t, err)
	assert.Equal(t, MethodThreeMonth, threeMonth.Method)
	assert.Equal(t, "1250.00", threeMonth.Amount.StringFixed(2))

	standard, err := PenaltyByMethod("", balance, contract, market, 24, domain.TermFixed)
	require.NoError(t, err)
	assert.Equal(t, MethodIRD, standard.Method)
}

func TestPenaltyByMethod_VariableProduct(t *testing.T) {
	// Variable products pay 3 months' interest even when the IRD would be
	// far larger.
	result, err := PenaltyByMethod("",
		decimal.NewFromInt(100000),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.01),
		48, domain.TermVariableChangingPayment,
	)
	require.NoError(t, err)

	assert.Equal(t, MethodThreeMonth, result.Method)
	assert.Equal(t, "1250.00", result.Amount.StringFixed(2))
}

func TestOverLimitPenalty(t *testing.T) {
	penalty := OverLimitPenalty(decimal.NewFromInt(5000), DefaultOverLimitPenaltyPercent)
	assert.Equal(t, "75.00", penalty.StringFixed(2), "1.5% of the $5,000 excess")

	penalty = OverLimitPenalty(decimal.NewFromInt(10000), decimal.NewFromInt(3))
	assert.Equal(t, "300.00", penalty.StringFixed(2))

	assert.True(t, OverLimitPenalty(decimal.Zero, DefaultOverLimitPenaltyPercent).IsZero())
	assert.True(t, OverLimitPenalty(decimal.NewFromInt(-100), DefaultOverLimitPenaltyPercent).IsZero())
}

func TestEvaluatePrepayment(t *testing.T) {
	// $75,000 annual privilege, $50,000 already used: $30,000 leaves a
	// $5,000 excess charged at 1.5%.
	result := EvaluatePrepayment(
		decimal.NewFromInt(30000),
		decimal.NewFromInt(50000),
		decimal.NewFromInt(500000),
		decimal.NewFromInt(15),
		decimal.Zero,
		DefaultOverLimitPenaltyPercent,
	)

	assert.False(t, result.WithinLimit)
	assert.Equal(t, "5000.00", result.OverLimitAmount.StringFixed(2))
	assert.Equal(t, "75.00", result.Penalty.StringFixed(2))
	assert.Equal(t, "29925.00", result.EffectiveReduction.StringFixed(2))

	within := EvaluatePrepayment(
		decimal.NewFromInt(20000),
		decimal.Zero,
		decimal.NewFromInt(500000),
		decimal.NewFromInt(15),
		decimal.Zero,
		DefaultOverLimitPenaltyPercent,
	)
	assert.True(t, within.WithinLimit)
	assert.True(t, within.Penalty.IsZero())
	assert.Equal(t, "20000.00", within.EffectiveReduction.StringFixed(2))
}

func TestEvaluatePrepayment_CarryForward(t *testing.T) {
	// The same $5,000 excess disappears when $10,000 of unused room carried
	// forward from last year.
	result := EvaluatePrepayment(
		decimal.NewFromInt(30000),
		decimal.NewFromInt(50000),
		decimal.NewFromInt(500000),
		decimal.NewFromInt(15),
		decimal.NewFromInt(10000),
		DefaultOverLimitPenaltyPercent,
	)

	assert.True(t, result.WithinLimit)
	assert.True(t, result.Penalty.IsZero())
	assert.Equal(t, "30000.00", result.EffectiveReduction.StringFixed(2))
}
