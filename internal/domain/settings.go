package domain

import (
	"github.com/shopspring/decimal"
)

// AssumptionPreset is a named table of annual rates. All rates are decimal
// fractions (0.07 = 7%).
type AssumptionPreset struct {
	SuperReturn    decimal.Decimal `yaml:"super_return" json:"super_return"`
	SuperFee       decimal.Decimal `yaml:"super_fee" json:"super_fee"`
	SuperTax       decimal.Decimal `yaml:"super_tax" json:"super_tax"`
	ETFReturn      decimal.Decimal `yaml:"etf_return" json:"etf_return"`
	ETFFee         decimal.Decimal `yaml:"etf_fee" json:"etf_fee"`
	PropertyGrowth decimal.Decimal `yaml:"property_growth" json:"property_growth"`
	RentalGrowth   decimal.Decimal `yaml:"rental_growth" json:"rental_growth"`
	Inflation      decimal.Decimal `yaml:"inflation" json:"inflation"`
	WageGrowth     decimal.Decimal `yaml:"wage_growth" json:"wage_growth"`
}

// RateSet is the single resolved set of rates used by every projection step
// in one run. It is built once by the assumption resolver and never mutated.
type RateSet struct {
	SuperReturn    decimal.Decimal `json:"super_return"`
	SuperFee       decimal.Decimal `json:"super_fee"`
	SuperTax       decimal.Decimal `json:"super_tax"`
	ETFReturn      decimal.Decimal `json:"etf_return"`
	ETFFee         decimal.Decimal `json:"etf_fee"`
	PropertyGrowth decimal.Decimal `json:"property_growth"`
	RentalGrowth   decimal.Decimal `json:"rental_growth"`
	Inflation      decimal.Decimal `json:"inflation"`
	WageGrowth     decimal.Decimal `json:"wage_growth"`
}

// TaxBracket represents a marginal income tax bracket.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"` // use a very large value for the top bracket
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Settings carries the process-wide defaults for a run: assumption presets,
// contribution rules and access ages. It is always passed explicitly into
// the engine, never read from module state, so concurrent runs with
// different settings cannot interfere.
type Settings struct {
	Presets               map[string]AssumptionPreset `yaml:"presets" json:"presets"`
	SuperOptions          map[string]decimal.Decimal  `yaml:"super_options" json:"super_options"`
	ConcessionalCapYearly decimal.Decimal             `yaml:"concessional_cap_yearly" json:"concessional_cap_yearly"`
	PreservationAge       int                         `yaml:"preservation_age" json:"preservation_age"`
	WithdrawalRate        decimal.Decimal             `yaml:"withdrawal_rate" json:"withdrawal_rate"`
	ContributionsTaxRate  decimal.Decimal             `yaml:"contributions_tax_rate" json:"contributions_tax_rate"`
	MarginalTaxBrackets   []TaxBracket                `yaml:"marginal_tax_brackets" json:"marginal_tax_brackets"`
	// PausePropertyExtra controls whether a buffer-triggered pause also
	// suspends discretionary extra loan repayments, not just portfolio DCA.
	PausePropertyExtra bool `yaml:"pause_property_extra" json:"pause_property_extra"`
}

// MarginalRate returns the marginal tax rate for an annual income.
func (s *Settings) MarginalRate(incomeYearly decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	for _, b := range s.MarginalTaxBrackets {
		if incomeYearly.GreaterThan(b.Min) {
			rate = b.Rate
		}
	}
	return rate
}

// DefaultSettings returns the built-in settings: three assumption presets,
// the standard super investment options, and 2024-25 contribution rules.
func DefaultSettings() Settings {
	return Settings{
		Presets: map[string]AssumptionPreset{
			"conservative": {
				SuperReturn:    decimal.NewFromFloat(0.060),
				SuperFee:       decimal.NewFromFloat(0.007),
				SuperTax:       decimal.NewFromFloat(0.10),
				ETFReturn:      decimal.NewFromFloat(0.055),
				ETFFee:         decimal.NewFromFloat(0.002),
				PropertyGrowth: decimal.NewFromFloat(0.025),
				RentalGrowth:   decimal.NewFromFloat(0.020),
				Inflation:      decimal.NewFromFloat(0.025),
				WageGrowth:     decimal.NewFromFloat(0.020),
			},
			"base": {
				SuperReturn:    decimal.NewFromFloat(0.075),
				SuperFee:       decimal.NewFromFloat(0.006),
				SuperTax:       decimal.NewFromFloat(0.10),
				ETFReturn:      decimal.NewFromFloat(0.070),
				ETFFee:         decimal.NewFromFloat(0.0015),
				PropertyGrowth: decimal.NewFromFloat(0.040),
				RentalGrowth:   decimal.NewFromFloat(0.025),
				Inflation:      decimal.NewFromFloat(0.025),
				WageGrowth:     decimal.NewFromFloat(0.030),
			},
			"optimistic": {
				SuperReturn:    decimal.NewFromFloat(0.090),
				SuperFee:       decimal.NewFromFloat(0.005),
				SuperTax:       decimal.NewFromFloat(0.10),
				ETFReturn:      decimal.NewFromFloat(0.085),
				ETFFee:         decimal.NewFromFloat(0.001),
				PropertyGrowth: decimal.NewFromFloat(0.055),
				RentalGrowth:   decimal.NewFromFloat(0.030),
				Inflation:      decimal.NewFromFloat(0.025),
				WageGrowth:     decimal.NewFromFloat(0.035),
			},
		},
		SuperOptions: map[string]decimal.Decimal{
			"high_growth":  decimal.NewFromFloat(0.085),
			"growth":       decimal.NewFromFloat(0.078),
			"balanced":     decimal.NewFromFloat(0.067),
			"conservative": decimal.NewFromFloat(0.052),
		},
		ConcessionalCapYearly: decimal.NewFromInt(30000),
		PreservationAge:       60,
		WithdrawalRate:        decimal.NewFromFloat(0.04),
		ContributionsTaxRate:  decimal.NewFromFloat(0.15),
		MarginalTaxBrackets: []TaxBracket{
			{Min: decimal.Zero, Max: decimal.NewFromInt(18200), Rate: decimal.Zero},
			{Min: decimal.NewFromInt(18200), Max: decimal.NewFromInt(45000), Rate: decimal.NewFromFloat(0.16)},
			{Min: decimal.NewFromInt(45000), Max: decimal.NewFromInt(135000), Rate: decimal.NewFromFloat(0.30)},
			{Min: decimal.NewFromInt(135000), Max: decimal.NewFromInt(190000), Rate: decimal.NewFromFloat(0.37)},
			{Min: decimal.NewFromInt(190000), Max: decimal.NewFromInt(999999999), Rate: decimal.NewFromFloat(0.45)},
		},
		PausePropertyExtra: true,
	}
}
