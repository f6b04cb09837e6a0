package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ozplan/retirement-planner/internal/domain"
)

// AggregateKPIs reduces a full trajectory into the headline figures: net
// worth at retirement, per-bucket shares, the withdrawal-rate income
// projection, bridge-period coverage and the gap to the stated goal. It is
// a pure reduction; no projection state is touched.
func AggregateKPIs(input *domain.PlannerInput, settings *domain.Settings, series []domain.MonthlyDataPoint, stats ProjectionStats) (domain.KPIs, []string) {
	var kpis domain.KPIs
	if len(series) == 0 {
		return kpis, nil
	}
	final := series[len(series)-1]

	netWorth := final.NetWorth()
	kpis.NetWorthAtRetirement = netWorth

	if netWorth.GreaterThan(decimal.Zero) {
		kpis.SuperShare = final.SuperBalance.Div(netWorth)
		kpis.PortfolioShare = final.PortfolioBalance.Div(netWorth)
		kpis.CashShare = final.BufferBalance.Div(netWorth)
		kpis.PropertyShare = final.PropertyEquity.Div(netWorth)
	}

	withdrawalRate := settings.WithdrawalRate
	kpis.ProjectedIncomeYearly = netWorth.Mul(withdrawalRate)
	kpis.ProjectedIncomeMonthly = kpis.ProjectedIncomeYearly.Div(twelve)

	// Bridge analysis: the years between retirement and preservation age
	// must be funded from outside super.
	kpis.OutsideSuperAtRetirement = final.PortfolioBalance.Add(final.BufferBalance)
	bridgeYears := settings.PreservationAge - input.Goal.RetireAge
	if bridgeYears < 0 {
		bridgeYears = 0
	}
	kpis.BridgeYearsRequired = decimal.NewFromInt(int64(bridgeYears))

	annualBridgeNeed := decimal.Zero
	switch input.Goal.Mode() {
	case domain.GoalIncome:
		annualBridgeNeed = *input.Goal.TargetIncomeYearly
	case domain.GoalCapital:
		annualBridgeNeed = input.Goal.TargetCapital.Mul(withdrawalRate)
	}
	if annualBridgeNeed.GreaterThan(decimal.Zero) {
		kpis.BridgeYearsCovered = kpis.OutsideSuperAtRetirement.Div(annualBridgeNeed)
	}

	// Gap to goal, with the capital and income figures linked by the same
	// withdrawal-rate assumption in both goal modes.
	switch input.Goal.Mode() {
	case domain.GoalIncome:
		target := *input.Goal.TargetIncomeYearly
		kpis.TargetMet = kpis.ProjectedIncomeYearly.GreaterThanOrEqual(target)
		if !kpis.TargetMet {
			kpis.GapYearly = target.Sub(kpis.ProjectedIncomeYearly)
			kpis.GapMonthly = kpis.GapYearly.Div(twelve)
			kpis.CapitalGap = kpis.GapYearly.Div(withdrawalRate)
		}
	case domain.GoalCapital:
		target := *input.Goal.TargetCapital
		kpis.TargetMet = netWorth.GreaterThanOrEqual(target)
		if !kpis.TargetMet {
			kpis.CapitalGap = target.Sub(netWorth)
			kpis.GapYearly = kpis.CapitalGap.Mul(withdrawalRate)
			kpis.GapMonthly = kpis.GapYearly.Div(twelve)
		}
	}

	kpis.TotalContributions = stats.TotalContributions
	kpis.TotalFeesPaid = stats.TotalFeesPaid
	kpis.TaxSavingYearly = stats.TaxSavingFirstYear

	return kpis, collectWarnings(stats)
}

// collectWarnings turns the run's soft policy flags into human-readable
// warning strings for the result metadata.
func collectWarnings(stats ProjectionStats) []string {
	var warnings []string
	if stats.CapWarningPeriods > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"concessional contributions clamped to the annual cap in %d period(s)", stats.CapWarningPeriods))
	}
	if stats.PausedPeriods > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"discretionary investing paused by the cash buffer policy in %d period(s)", stats.PausedPeriods))
	}
	if stats.FinalBelowTarget {
		warnings = append(warnings, "cash buffer below its recovery target at retirement")
	}
	return warnings
}
