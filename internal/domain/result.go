package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyDataPoint is one period of a projection trajectory. Points are
// emitted in period order and are immutable once emitted.
type MonthlyDataPoint struct {
	Period int             `json:"period"`
	Age    decimal.Decimal `json:"age"`

	SuperBalance     decimal.Decimal `json:"super_balance"`
	PortfolioBalance decimal.Decimal `json:"portfolio_balance"`
	BufferBalance    decimal.Decimal `json:"buffer_balance"`
	PropertyValue    decimal.Decimal `json:"property_value,omitempty"`
	LoanBalance      decimal.Decimal `json:"loan_balance,omitempty"`
	PropertyEquity   decimal.Decimal `json:"property_equity,omitempty"`
	LVR              decimal.Decimal `json:"lvr,omitempty"`
	PropertyCashflow decimal.Decimal `json:"property_cashflow,omitempty"`

	GrossIncomeMonthly    decimal.Decimal `json:"gross_income_monthly"`
	SuperContribution     decimal.Decimal `json:"super_contribution"`
	PortfolioContribution decimal.Decimal `json:"portfolio_contribution"`
	PropertyPayment       decimal.Decimal `json:"property_payment,omitempty"`
	BufferInflow          decimal.Decimal `json:"buffer_inflow"`

	DCAPaused          bool `json:"dca_paused"`
	CapWarning         bool `json:"cap_warning"`
	BuffersBelowTarget bool `json:"buffers_below_target"`
}

// NetWorth returns the sum of all bucket balances, with the property valued
// at equity (value less loan).
func (m *MonthlyDataPoint) NetWorth() decimal.Decimal {
	return m.SuperBalance.
		Add(m.PortfolioBalance).
		Add(m.BufferBalance).
		Add(m.PropertyValue.Sub(m.LoanBalance))
}

// KPIs is the reduction of a full trajectory into headline figures.
type KPIs struct {
	NetWorthAtRetirement decimal.Decimal `json:"net_worth_at_retirement"`

	SuperShare     decimal.Decimal `json:"super_share"`
	PortfolioShare decimal.Decimal `json:"portfolio_share"`
	PropertyShare  decimal.Decimal `json:"property_share"`
	CashShare      decimal.Decimal `json:"cash_share"`

	ProjectedIncomeYearly  decimal.Decimal `json:"projected_income_yearly"`
	ProjectedIncomeMonthly decimal.Decimal `json:"projected_income_monthly"`

	OutsideSuperAtRetirement decimal.Decimal `json:"outside_super_at_retirement"`
	BridgeYearsRequired      decimal.Decimal `json:"bridge_years_required"`
	BridgeYearsCovered       decimal.Decimal `json:"bridge_years_covered"`

	TargetMet  bool            `json:"target_met"`
	GapYearly  decimal.Decimal `json:"gap_yearly"`
	GapMonthly decimal.Decimal `json:"gap_monthly"`
	CapitalGap decimal.Decimal `json:"capital_gap"`

	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalFeesPaid      decimal.Decimal `json:"total_fees_paid"`
	TaxSavingYearly    decimal.Decimal `json:"tax_saving_yearly"`
}

// RunMeta records metadata about a single engine run.
type RunMeta struct {
	Duration time.Duration `json:"duration_ns"`
	Periods  int           `json:"periods"`
	Warnings []string      `json:"warnings,omitempty"`
}

// ScenarioResult is the complete output of one projection run: the input it
// was computed from, the resolved rates, the KPI summary and the full
// monthly trajectory. Read-only to callers after return.
type ScenarioResult struct {
	Input  PlannerInput       `json:"input"`
	Rates  RateSet            `json:"rates"`
	KPIs   KPIs               `json:"kpis"`
	Series []MonthlyDataPoint `json:"series"`
	Meta   RunMeta            `json:"meta"`
}

// Report groups the results of one or more scenarios, run under a single
// Settings value, for output formatting.
type Report struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Settings    Settings          `json:"settings"`
	Scenarios   []*ScenarioResult `json:"scenarios"`
}
