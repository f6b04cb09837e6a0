package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ozplan/retirement-planner/internal/domain"
)

// defaultInflation is used when an unknown preset is fully overridden;
// inflation has no per-bucket override knob.
var defaultInflation = decimal.NewFromFloat(0.025)

// ResolveRates builds the single RateSet used by every downstream step of a
// run. Resolution order per rate: explicit input override, then the super
// investment-option table (super return only), then the named preset. An
// unrecognized preset is fatal unless the input overrides every rate that
// has an override knob.
func ResolveRates(input *domain.PlannerInput, settings *domain.Settings) (domain.RateSet, error) {
	name := strings.ToLower(strings.TrimSpace(input.Goal.AssumptionPreset))
	preset, ok := settings.Presets[name]
	if !ok {
		missing := missingOverrides(input)
		if len(missing) > 0 {
			return domain.RateSet{}, &InvalidPresetError{Preset: input.Goal.AssumptionPreset, Missing: missing}
		}
		preset = domain.AssumptionPreset{Inflation: defaultInflation}
	}

	rates := domain.RateSet{
		SuperReturn:    preset.SuperReturn,
		SuperFee:       preset.SuperFee,
		SuperTax:       preset.SuperTax,
		ETFReturn:      preset.ETFReturn,
		ETFFee:         preset.ETFFee,
		PropertyGrowth: preset.PropertyGrowth,
		RentalGrowth:   preset.RentalGrowth,
		Inflation:      preset.Inflation,
		WageGrowth:     preset.WageGrowth,
	}

	// Super return: explicit override beats the investment-option table.
	if input.Super.ExpectedReturn != nil {
		rates.SuperReturn = *input.Super.ExpectedReturn
	} else if opt := strings.ToLower(strings.TrimSpace(input.Super.InvestmentOption)); opt != "" {
		r, ok := settings.SuperOptions[opt]
		if !ok {
			return domain.RateSet{}, &ValidationError{
				Field:      "super.investment_option",
				Constraint: "unknown investment option " + input.Super.InvestmentOption,
			}
		}
		rates.SuperReturn = r
	}
	if input.Super.FeeRate != nil {
		rates.SuperFee = *input.Super.FeeRate
	}
	if input.Portfolio.ExpectedReturn != nil {
		rates.ETFReturn = *input.Portfolio.ExpectedReturn
	}
	if input.Portfolio.FeeRate != nil {
		rates.ETFFee = *input.Portfolio.FeeRate
	}
	if input.Property != nil {
		if input.Property.GrowthRate != nil {
			rates.PropertyGrowth = *input.Property.GrowthRate
		}
		if input.Property.RentalGrowthRate != nil {
			rates.RentalGrowth = *input.Property.RentalGrowthRate
		}
	}
	if input.IncomeExpense.WageGrowthRate != nil {
		rates.WageGrowth = *input.IncomeExpense.WageGrowthRate
	}

	return rates, nil
}

// missingOverrides lists the rates a preset-less input fails to pin down.
func missingOverrides(input *domain.PlannerInput) []string {
	var missing []string
	if input.Super.ExpectedReturn == nil && strings.TrimSpace(input.Super.InvestmentOption) == "" {
		missing = append(missing, "super.expected_return")
	}
	if input.Super.FeeRate == nil {
		missing = append(missing, "super.fee_rate")
	}
	if input.Portfolio.ExpectedReturn == nil {
		missing = append(missing, "portfolio.expected_return")
	}
	if input.Portfolio.FeeRate == nil {
		missing = append(missing, "portfolio.fee_rate")
	}
	if input.Property != nil {
		if input.Property.GrowthRate == nil {
			missing = append(missing, "property.growth_rate")
		}
		if input.Property.RentalGrowthRate == nil {
			missing = append(missing, "property.rental_growth_rate")
		}
	}
	if input.IncomeExpense.WageGrowthRate == nil {
		missing = append(missing, "income_expense.wage_growth_rate")
	}
	return missing
}
