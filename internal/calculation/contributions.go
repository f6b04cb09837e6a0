package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ozplan/retirement-planner/internal/domain"
	"github.com/ozplan/retirement-planner/pkg/fyutil"
)

var twelve = decimal.NewFromInt(12)

// PeriodContribution is the gross contribution flowing into each bucket for
// one period, before buffer-policy gating.
type PeriodContribution struct {
	Employer        decimal.Decimal // super guarantee
	SalarySacrifice decimal.Decimal // after cap clamping
	SuperNet        decimal.Decimal // employer + sacrifice, net of contributions tax
	PortfolioDCA    decimal.Decimal // requested, gated later by the buffer policy
	PropertyExtra   decimal.Decimal // requested extra repayment, gated later
	TaxSaving       decimal.Decimal // estimated saving from salary sacrifice
	CapWarning      bool
}

// ContributionCalculator derives per-period contributions and enforces the
// annual concessional cap. The cap accrues per financial year; period 0 is
// the first month of a financial year.
type ContributionCalculator struct {
	input    *domain.PlannerInput
	cap      decimal.Decimal
	taxRate  decimal.Decimal // contributions tax
	marginal decimal.Decimal // marginal rate on salary, for the saving estimate

	capUsedFY decimal.Decimal
}

// NewContributionCalculator builds a calculator for one run.
func NewContributionCalculator(input *domain.PlannerInput, settings *domain.Settings) *ContributionCalculator {
	taxRate := input.Super.ContributionsTaxRate
	if taxRate.IsZero() {
		taxRate = settings.ContributionsTaxRate
	}
	return &ContributionCalculator{
		input:    input,
		cap:      settings.ConcessionalCapYearly,
		taxRate:  taxRate,
		marginal: settings.MarginalRate(input.IncomeExpense.SalaryYearly),
	}
}

// Compute derives the contributions for a period given the wage-grown
// monthly salary. Cap clamping is silent-and-flagged, never fatal: when the
// unconstrained request would push the financial year's concessional total
// over the cap, salary sacrifice is clamped to the remaining headroom and
// CapWarning is set for the period.
func (cc *ContributionCalculator) Compute(period int, salaryMonthly decimal.Decimal) PeriodContribution {
	if fyutil.IsFYStart(period) {
		cc.capUsedFY = decimal.Zero
	}

	employer := salaryMonthly.Mul(cc.input.Super.GuaranteeRate)
	remainingMonths := decimal.NewFromInt(int64(fyutil.MonthsRemainingInFY(period)))

	// The guarantee for the rest of the financial year is statutory and
	// cannot be reduced, so it is reserved out of the cap before any
	// sacrifice is admitted. Salary only steps at FY boundaries, which keeps
	// the reservation exact.
	headroom := cc.cap.Sub(cc.capUsedFY).Sub(employer.Mul(remainingMonths))
	if headroom.LessThan(decimal.Zero) {
		headroom = decimal.Zero
	}

	requested := cc.input.Super.SalarySacrificeMonthly
	sacrifice := requested
	warning := false
	if ceiling := headroom.Div(remainingMonths); sacrifice.GreaterThan(ceiling) {
		sacrifice = ceiling
		warning = true
	}

	gross := employer.Add(sacrifice)
	cc.capUsedFY = cc.capUsedFY.Add(gross)
	if cc.capUsedFY.GreaterThan(cc.cap) {
		// The guarantee alone can overflow the cap on a high salary.
		warning = true
	}

	saving := sacrifice.Mul(cc.marginal.Sub(cc.taxRate))
	if saving.LessThan(decimal.Zero) {
		saving = decimal.Zero
	}

	pc := PeriodContribution{
		Employer:        employer,
		SalarySacrifice: sacrifice,
		SuperNet:        gross.Mul(decimal.NewFromInt(1).Sub(cc.taxRate)),
		PortfolioDCA:    cc.input.Portfolio.DCAMonthly,
		TaxSaving:       saving,
		CapWarning:      warning,
	}
	if cc.input.HasProperty() {
		pc.PropertyExtra = cc.input.Property.ExtraRepaymentMonthly
	}
	return pc
}
