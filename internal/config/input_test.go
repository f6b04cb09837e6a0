package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
settings:
  concessional_cap_yearly: 27500
  presets:
    house-crash:
      super_return: 0.075
      super_fee: 0.006
      super_tax: 0.10
      etf_return: 0.070
      etf_fee: 0.0015
      property_growth: -0.02
      rental_growth: 0.01
      inflation: 0.03
      wage_growth: 0.02
scenarios:
  - name: sample
    goal:
      current_age: 30
      retire_age: 60
      target_income_yearly: 70000
      assumption_preset: base
    income_expense:
      salary_yearly: 120000
      living_expenses_monthly: 4500
    super:
      balance: 180000
      guarantee_rate: 0.115
      salary_sacrifice_monthly: 500
    portfolio:
      balance: 25000
      dca_monthly: 1500
      allocation:
        mode: single
    buffers:
      balance: 20000
      trigger_months: 2
      recovery_months: 4
`

func TestInputParser_Parse(t *testing.T) {
	file, err := NewInputParser().Parse([]byte(sampleYAML))
	require.NoError(t, err)

	require.Len(t, file.Scenarios, 1)
	sc := file.Scenarios[0]
	assert.Equal(t, "sample", sc.Name)
	assert.Equal(t, 30, sc.Goal.CurrentAge)
	assert.True(t, sc.IncomeExpense.SalaryYearly.Equal(decimal.NewFromInt(120000)))
	assert.True(t, sc.Super.SalarySacrificeMonthly.Equal(decimal.NewFromInt(500)))
}

func TestInputParser_SettingsOverlayDefaults(t *testing.T) {
	file, err := NewInputParser().Parse([]byte(sampleYAML))
	require.NoError(t, err)

	// The file's cap wins; everything it did not mention keeps the default.
	assert.True(t, file.Settings.ConcessionalCapYearly.Equal(decimal.NewFromInt(27500)))
	assert.Equal(t, 60, file.Settings.PreservationAge)
	assert.True(t, file.Settings.WithdrawalRate.Equal(decimal.NewFromFloat(0.04)))
	assert.True(t, file.Settings.PausePropertyExtra)

	// File presets extend the built-in table rather than replacing it.
	custom, ok := file.Settings.Presets["house-crash"]
	require.True(t, ok)
	assert.True(t, custom.PropertyGrowth.Equal(decimal.NewFromFloat(-0.02)))
	_, ok = file.Settings.Presets["base"]
	assert.True(t, ok, "built-in presets must survive the overlay")
}

func TestInputParser_UnnamedScenarioGetsName(t *testing.T) {
	yaml := `
scenarios:
  - goal:
      current_age: 40
      retire_age: 65
      target_capital: 1500000
      assumption_preset: conservative
    income_expense:
      salary_yearly: 90000
      living_expenses_monthly: 3500
    super:
      balance: 120000
      guarantee_rate: 0.115
    portfolio:
      balance: 5000
      allocation:
        mode: single
    buffers:
      balance: 8000
      trigger_months: 1
      recovery_months: 2
`
	file, err := NewInputParser().Parse([]byte(yaml))
	require.NoError(t, err)
	assert.Equal(t, "scenario-1", file.Scenarios[0].Name)
}

func TestInputParser_NoScenarios(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("settings:\n  preservation_age: 60\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios")
}

func TestInputParser_InvalidScenarioNamesIt(t *testing.T) {
	yaml := `
scenarios:
  - name: bad-buffers
    goal:
      current_age: 30
      retire_age: 60
      target_income_yearly: 70000
      assumption_preset: base
    income_expense:
      salary_yearly: 120000
      living_expenses_monthly: 4500
    super:
      balance: 180000
      guarantee_rate: 0.115
    portfolio:
      balance: 25000
      allocation:
        mode: single
    buffers:
      balance: 20000
      trigger_months: 4
      recovery_months: 2
`
	_, err := NewInputParser().Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "bad-buffers"`)
}

func TestInputParser_UnknownPresetSurfacesAtLoad(t *testing.T) {
	yaml := `
scenarios:
  - name: mystery
    goal:
      current_age: 30
      retire_age: 60
      target_income_yearly: 70000
      assumption_preset: moonshot
    income_expense:
      salary_yearly: 120000
      living_expenses_monthly: 4500
    super:
      balance: 180000
      guarantee_rate: 0.115
    portfolio:
      balance: 25000
      allocation:
        mode: single
    buffers:
      balance: 20000
      trigger_months: 2
      recovery_months: 4
`
	_, err := NewInputParser().Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "moonshot")
}

func TestInputParser_MalformedYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("scenarios: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	file, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Scenarios, 1)

	_, err = NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
