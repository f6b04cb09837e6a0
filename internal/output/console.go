package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ozplan/retirement-planner/internal/domain"
	"github.com/ozplan/retirement-planner/pkg/money"
)

// ConsoleFormatter renders a human-readable summary: one KPI block per
// scenario plus any policy warnings the run raised.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var b strings.Builder

	b.WriteString("RETIREMENT PROJECTION\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for _, sc := range report.Scenarios {
		k := sc.KPIs
		fmt.Fprintf(&b, "Scenario: %s\n", sc.Input.Name)
		fmt.Fprintf(&b, "  Horizon:               age %d to %d (%d periods)\n",
			sc.Input.Goal.CurrentAge, sc.Input.Goal.RetireAge, sc.Meta.Periods)
		fmt.Fprintf(&b, "  Net worth at retirement: %s\n", dollars(k.NetWorthAtRetirement))
		fmt.Fprintf(&b, "  Projected income:        %s/yr (%s/mo at %s%% withdrawal)\n",
			dollars(k.ProjectedIncomeYearly), dollars(k.ProjectedIncomeMonthly),
			percent(report.Settings.WithdrawalRate))
		fmt.Fprintf(&b, "  Bucket shares:           super %s%%  portfolio %s%%  property %s%%  cash %s%%\n",
			percent(k.SuperShare), percent(k.PortfolioShare), percent(k.PropertyShare), percent(k.CashShare))
		fmt.Fprintf(&b, "  Outside super:           %s\n", dollars(k.OutsideSuperAtRetirement))
		fmt.Fprintf(&b, "  Bridge period:           %s year(s) required, %s year(s) covered\n",
			k.BridgeYearsRequired.StringFixed(0), k.BridgeYearsCovered.StringFixed(1))
		if k.TargetMet {
			b.WriteString("  Goal:                    met\n")
		} else {
			fmt.Fprintf(&b, "  Goal:                    short by %s/yr (%s/mo, capital gap %s)\n",
				dollars(k.GapYearly), dollars(k.GapMonthly), dollars(k.CapitalGap))
		}
		fmt.Fprintf(&b, "  Total contributions:     %s\n", dollars(k.TotalContributions))
		fmt.Fprintf(&b, "  Total fees paid:         %s\n", dollars(k.TotalFeesPaid))
		if !k.TaxSavingYearly.IsZero() {
			fmt.Fprintf(&b, "  Est. tax saving (yr 1):  %s\n", dollars(k.TaxSavingYearly))
		}
		for _, warning := range sc.Meta.Warnings {
			fmt.Fprintf(&b, "  WARNING: %s\n", warning)
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

func dollars(d decimal.Decimal) string {
	return "$" + money.NewMoneyFromDecimal(d).Round().StringFixed(2)
}

func percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1)
}
