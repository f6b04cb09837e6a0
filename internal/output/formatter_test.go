package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozplan/retirement-planner/internal/domain"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func sampleReport() *domain.Report {
	income := dec(65000)
	return &domain.Report{
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Settings:    domain.DefaultSettings(),
		Scenarios: []*domain.ScenarioResult{{
			Input: domain.PlannerInput{
				Name: "sample",
				Goal: domain.Goal{
					CurrentAge:         30,
					RetireAge:          65,
					TargetIncomeYearly: &income,
					AssumptionPreset:   "base",
				},
			},
			KPIs: domain.KPIs{
				NetWorthAtRetirement:     dec(2500000),
				SuperShare:               dec(0.6),
				PortfolioShare:           dec(0.3),
				CashShare:                dec(0.1),
				ProjectedIncomeYearly:    dec(100000),
				ProjectedIncomeMonthly:   dec(8333.33),
				OutsideSuperAtRetirement: dec(1000000),
				TargetMet:                true,
			},
			Series: []domain.MonthlyDataPoint{
				{
					Period:           0,
					Age:              dec(30).Add(dec(1).Div(dec(12))),
					SuperBalance:     dec(151000),
					PortfolioBalance: dec(11000),
					BufferBalance:    dec(10000),
					DCAPaused:        false,
				},
				{
					Period:           1,
					Age:              dec(30).Add(dec(2).Div(dec(12))),
					SuperBalance:     dec(152000),
					PortfolioBalance: dec(12000),
					BufferBalance:    dec(10000),
					DCAPaused:        true,
				},
			},
			Meta: domain.RunMeta{
				Periods:  2,
				Warnings: []string{"discretionary investing paused by the cash buffer policy in 1 period(s)"},
			},
		}},
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "csv", "json", " CSV ", "Json"} {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q", name)
		assert.Equal(t, NormalizeFormatName(name), f.Name())
	}
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, FormatNames())
}

func TestCSVExporter(t *testing.T) {
	data, err := CSVExporter{}.Format(sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 periods

	assert.Equal(t, []string{
		"scenario", "month", "age", "net_worth",
		"super_balance", "outside_super_balance", "cash_balance",
		"property_value", "loan_balance", "dca_paused",
	}, records[0])

	first := records[1]
	assert.Equal(t, "sample", first[0])
	assert.Equal(t, "1", first[1]) // months are one-based
	assert.Equal(t, "30.08", first[2])
	assert.Equal(t, "172000.00", first[3])
	assert.Equal(t, "false", first[9])
	assert.Equal(t, "true", records[2][9])
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleReport())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "Scenario: sample")
	assert.Contains(t, out, "age 30 to 65")
	assert.Contains(t, out, "$2500000.00")
	assert.Contains(t, out, "4.0% withdrawal")
	assert.Contains(t, out, "Goal:                    met")
	assert.Contains(t, out, "WARNING: discretionary investing paused")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleReport())
	require.NoError(t, err)

	var decoded struct {
		Scenarios []struct {
			Input struct {
				Name string `json:"name"`
			} `json:"input"`
			KPIs struct {
				NetWorth  string `json:"net_worth_at_retirement"`
				TargetMet bool   `json:"target_met"`
			} `json:"kpis"`
			Series []struct {
				Period    int  `json:"period"`
				DCAPaused bool `json:"dca_paused"`
			} `json:"series"`
		} `json:"scenarios"`
	}
	require.NoError(t, gojson.Unmarshal(data, &decoded))

	require.Len(t, decoded.Scenarios, 1)
	sc := decoded.Scenarios[0]
	assert.Equal(t, "sample", sc.Input.Name)
	assert.Equal(t, "2500000", sc.KPIs.NetWorth)
	assert.True(t, sc.KPIs.TargetMet)
	require.Len(t, sc.Series, 2)
	assert.True(t, sc.Series[1].DCAPaused)
	assert.False(t, strings.Contains(string(data), "\t"), "indent uses spaces")
}
