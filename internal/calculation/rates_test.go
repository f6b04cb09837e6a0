package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozplan/retirement-planner/internal/domain"
)

func TestResolveRates_Preset(t *testing.T) {
	input := baseInput()
	input.Goal.AssumptionPreset = "base"
	input.Super.ExpectedReturn = nil
	input.Super.FeeRate = nil
	input.Portfolio.ExpectedReturn = nil
	input.Portfolio.FeeRate = nil
	input.IncomeExpense.WageGrowthRate = nil
	settings := testSettings()

	rates, err := ResolveRates(&input, &settings)
	require.NoError(t, err)

	base := settings.Presets["base"]
	assert.True(t, rates.SuperReturn.Equal(base.SuperReturn))
	assert.True(t, rates.ETFReturn.Equal(base.ETFReturn))
	assert.True(t, rates.Inflation.Equal(base.Inflation))
	assert.True(t, rates.WageGrowth.Equal(base.WageGrowth))
}

func TestResolveRates_PresetNameNormalized(t *testing.T) {
	input := baseInput()
	input.Goal.AssumptionPreset = "  Base "
	settings := testSettings()

	rates, err := ResolveRates(&input, &settings)
	require.NoError(t, err)
	// Explicit overrides in baseInput still win over the preset.
	assert.True(t, rates.SuperReturn.Equal(dec(0.07)))
}

func TestResolveRates_OverridesBeatPreset(t *testing.T) {
	input := baseInput()
	input.Goal.AssumptionPreset = "conservative"
	input.Super.ExpectedReturn = decPtr(0.09)
	input.Portfolio.FeeRate = decPtr(0.002)
	settings := testSettings()

	rates, err := ResolveRates(&input, &settings)
	require.NoError(t, err)
	assert.True(t, rates.SuperReturn.Equal(dec(0.09)))
	assert.True(t, rates.ETFFee.Equal(dec(0.002)))
	// Untouched rates come from the preset.
	cons := settings.Presets["conservative"]
	assert.True(t, rates.PropertyGrowth.Equal(cons.PropertyGrowth))
}

func TestResolveRates_InvestmentOption(t *testing.T) {
	input := baseInput()
	input.Goal.AssumptionPreset = "base"
	input.Super.ExpectedReturn = nil
	input.Super.InvestmentOption = "High_Growth"
	settings := testSettings()

	rates, err := ResolveRates(&input, &settings)
	require.NoError(t, err)
	assert.True(t, rates.SuperReturn.Equal(settings.SuperOptions["high_growth"]))
}

func TestResolveRates_UnknownInvestmentOption(t *testing.T) {
	input := baseInput()
	input.Goal.AssumptionPreset = "base"
	input.Super.ExpectedReturn = nil
	input.Super.InvestmentOption = "moonshot"
	settings := testSettings()

	_, err := ResolveRates(&input, &settings)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "super.investment_option", verr.Field)
}

func TestResolveRates_UnknownPresetWithoutOverrides(t *testing.T) {
	input := baseInput()
	input.Goal.AssumptionPreset = "aggressive-2050"
	input.Portfolio.ExpectedReturn = nil
	settings := testSettings()

	_, err := ResolveRates(&input, &settings)
	require.Error(t, err)

	var perr *InvalidPresetError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "aggressive-2050", perr.Preset)
	assert.Contains(t, perr.Missing, "portfolio.expected_return")
}

func TestResolveRates_UnknownPresetFullyOverridden(t *testing.T) {
	// baseInput pins every rate, so the unrecognized preset name is accepted
	// and inflation falls back to the default.
	input := baseInput()
	settings := testSettings()

	rates, err := ResolveRates(&input, &settings)
	require.NoError(t, err)
	assert.True(t, rates.Inflation.Equal(dec(0.025)))
	assert.True(t, rates.SuperTax.IsZero())
}

func TestResolveRates_PropertyOverrides(t *testing.T) {
	input := baseInput()
	input.Goal.AssumptionPreset = "base"
	input.Property = &domain.Property{
		Value:            dec(800000),
		LoanBalance:      dec(500000),
		InterestRate:     dec(0.06),
		LoanType:         domain.LoanPrincipalAndInterest,
		GrowthRate:       decPtr(0.05),
		RentalGrowthRate: decPtr(0.03),
	}
	settings := testSettings()

	rates, err := ResolveRates(&input, &settings)
	require.NoError(t, err)
	assert.True(t, rates.PropertyGrowth.Equal(dec(0.05)))
	assert.True(t, rates.RentalGrowth.Equal(dec(0.03)))
}
