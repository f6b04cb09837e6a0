package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ozplan/retirement-planner/internal/domain"
	"github.com/ozplan/retirement-planner/pkg/fyutil"
	"github.com/ozplan/retirement-planner/pkg/money"
)

// rateEpsilon guards annuity formulas: below this an interest rate is
// treated as zero and the linear (non-compounded) fallback is used.
var rateEpsilon = decimal.NewFromFloat(1e-9)

const defaultLoanTermYears = 30

// ProjectionStats carries run totals the KPI aggregator folds into the
// summary and its warning strings.
type ProjectionStats struct {
	TotalContributions decimal.Decimal
	TotalFeesPaid      decimal.Decimal
	TaxSavingFirstYear decimal.Decimal
	CapWarningPeriods  int
	PausedPeriods      int
	FinalBelowTarget   bool
}

// Projector advances every bucket from now to the retirement horizon, one
// month at a time. Each period applies growth to the existing balance, then
// adds the period's gated contributions, then subtracts fees and costs.
type Projector struct {
	input    *domain.PlannerInput
	settings *domain.Settings
	rates    domain.RateSet
	logger   Logger
}

// NewProjector builds a projector for one run. All mutable state lives
// inside Run, so a Projector may be reused across runs.
func NewProjector(input *domain.PlannerInput, settings *domain.Settings, rates domain.RateSet, logger Logger) *Projector {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Projector{input: input, settings: settings, rates: rates, logger: logger}
}

// Run produces the full ordered monthly trajectory.
func (p *Projector) Run() ([]domain.MonthlyDataPoint, ProjectionStats, error) {
	in := p.input
	expenses := in.IncomeExpense.LivingExpensesMonthly

	policy, err := NewBufferPolicy(in.Buffers.TriggerMonths, in.Buffers.RecoveryMonths, money.CoverageMonths(in.Buffers.Balance, expenses))
	if err != nil {
		return nil, ProjectionStats{}, err
	}

	years := in.Goal.YearsToRetirement()
	if years <= 0 {
		// Degenerate horizon: report current balances as a single snapshot
		// period with no growth applied.
		return p.snapshot(policy), ProjectionStats{}, nil
	}
	periods := fyutil.PeriodsForYears(years)

	cc := NewContributionCalculator(in, p.settings)

	one := decimal.NewFromInt(1)
	superMonthlyRate := money.MonthlyRate(p.rates.SuperReturn.Mul(one.Sub(p.rates.SuperTax)).Sub(p.rates.SuperFee))
	etfMonthlyRate := money.MonthlyRate(p.rates.ETFReturn.Sub(p.rates.ETFFee))
	bufferMonthlyRate := money.MonthlyRate(in.Buffers.InterestRate)

	// Running balances.
	superBal := in.Super.Balance
	portBal := in.Portfolio.Balance
	bufferBal := in.Buffers.Balance

	var propValue, loanBal, rentMonthly, loanPayment decimal.Decimal
	interestOnly := false
	if in.HasProperty() {
		propValue = in.Property.Value
		loanBal = in.Property.LoanBalance
		rentMonthly = in.Property.RentWeekly.Mul(decimal.NewFromInt(52)).Div(twelve)
		interestOnly = in.Property.LoanType == domain.LoanInterestOnly
		if !interestOnly {
			termYears := in.Property.LoanTermYears
			if termYears <= 0 {
				termYears = defaultLoanTermYears
			}
			loanPayment = amortizedPayment(loanBal, in.Property.InterestRate, termYears*12)
		}
	}

	salaryYearly := in.IncomeExpense.SalaryYearly
	adminFeeMonthly := in.Super.AdminFeeYearly.Div(twelve)

	var stats ProjectionStats
	series := make([]domain.MonthlyDataPoint, 0, periods)

	for period := 0; period < periods; period++ {
		// Annual escalations at the start of each projection year.
		if period > 0 && fyutil.IsFYStart(period) {
			salaryYearly = salaryYearly.Mul(one.Add(p.rates.WageGrowth))
			rentMonthly = rentMonthly.Mul(one.Add(p.rates.RentalGrowth))
			adminFeeMonthly = adminFeeMonthly.Mul(one.Add(p.rates.Inflation))
		}
		salaryMonthly := salaryYearly.Div(twelve)
		grossIncomeMonthly := salaryYearly.Add(in.IncomeExpense.BonusYearly).Div(twelve)

		coverage := money.CoverageMonths(bufferBal, expenses)
		mode := policy.Evaluate(coverage)
		paused := mode == ModePaused

		contrib := cc.Compute(period, salaryMonthly)

		// Gate discretionary contributions. Super is never paused.
		gatedDCA := contrib.PortfolioDCA
		gatedExtra := contrib.PropertyExtra
		redirected := decimal.Zero
		if paused {
			redirected = gatedDCA
			gatedDCA = decimal.Zero
			if p.settings.PausePropertyExtra {
				redirected = redirected.Add(gatedExtra)
				gatedExtra = decimal.Zero
			}
			stats.PausedPeriods++
		}

		// Fee drag is measured on the pre-growth balances.
		periodFees := superBal.Mul(p.rates.SuperFee).Div(twelve).
			Add(portBal.Mul(p.rates.ETFFee).Div(twelve)).
			Add(adminFeeMonthly)

		// Super: net-of-tax-and-fee monthly compounding, contributions net
		// of contributions tax, flat admin fee pro-rated monthly.
		superBal = superBal.Mul(one.Add(superMonthlyRate)).Add(contrib.SuperNet).Sub(adminFeeMonthly)

		// Portfolio.
		portBal = portBal.Mul(one.Add(etfMonthlyRate)).Add(gatedDCA)

		// Property.
		var propertyPayment, propertyCashflow, equity, lvr decimal.Decimal
		if in.HasProperty() {
			propValue = propValue.Mul(one.Add(p.rates.PropertyGrowth.Div(twelve)))

			interest := loanBal.Mul(in.Property.InterestRate).Div(twelve)
			var principal decimal.Decimal
			if loanBal.GreaterThan(decimal.Zero) {
				if interestOnly {
					propertyPayment = interest
				} else {
					principal = loanPayment.Sub(interest)
					if principal.GreaterThan(loanBal) {
						principal = loanBal
					}
					if principal.LessThan(decimal.Zero) {
						principal = decimal.Zero
					}
					propertyPayment = interest.Add(principal)
				}
			}
			loanBal = loanBal.Sub(principal).Sub(gatedExtra)
			if loanBal.LessThan(decimal.Zero) {
				// The loan is the only bucket clamped at zero.
				loanBal = decimal.Zero
			}

			rentEffective := rentMonthly.Mul(one.Sub(in.Property.VacancyRate))
			costs := rentMonthly.Mul(in.Property.ManagementFeeRate).
				Add(rentMonthly.Mul(in.Property.MaintenanceRate)).
				Add(in.Property.InsuranceYearly.Div(twelve)).
				Add(in.Property.CouncilRatesYearly.Div(twelve))
			propertyCashflow = rentEffective.Sub(costs).Sub(propertyPayment)
			propertyPayment = propertyPayment.Add(gatedExtra)

			equity = propValue.Sub(loanBal)
			if propValue.GreaterThan(decimal.Zero) {
				lvr = loanBal.Div(propValue)
			}
		}

		// Buffer: top-up plus anything the pause redirected.
		bufferBal = bufferBal.Mul(one.Add(bufferMonthlyRate)).Add(in.Buffers.TopUpMonthly).Add(redirected)

		superGross := contrib.Employer.Add(contrib.SalarySacrifice)
		stats.TotalContributions = stats.TotalContributions.
			Add(superGross).Add(gatedDCA).Add(gatedExtra).Add(in.Buffers.TopUpMonthly).Add(redirected)
		stats.TotalFeesPaid = stats.TotalFeesPaid.Add(periodFees)
		if fyutil.FYIndex(period) == 0 {
			stats.TaxSavingFirstYear = stats.TaxSavingFirstYear.Add(contrib.TaxSaving)
		}
		if contrib.CapWarning {
			stats.CapWarningPeriods++
		}

		series = append(series, domain.MonthlyDataPoint{
			Period:                period,
			Age:                   fyutil.FractionalAge(in.Goal.CurrentAge, period+1),
			SuperBalance:          superBal,
			PortfolioBalance:      portBal,
			BufferBalance:         bufferBal,
			PropertyValue:         propValue,
			LoanBalance:           loanBal,
			PropertyEquity:        equity,
			LVR:                   lvr,
			PropertyCashflow:      propertyCashflow,
			GrossIncomeMonthly:    grossIncomeMonthly,
			SuperContribution:     superGross,
			PortfolioContribution: gatedDCA,
			PropertyPayment:       propertyPayment,
			BufferInflow:          in.Buffers.TopUpMonthly.Add(redirected),
			DCAPaused:             paused,
			CapWarning:            contrib.CapWarning,
			BuffersBelowTarget:    policy.BelowTarget(coverage),
		})
	}

	if n := len(series); n > 0 {
		stats.FinalBelowTarget = series[n-1].BuffersBelowTarget
	}

	p.logger.Debugf("projection complete: %d periods, total contributions %s, total fees %s",
		len(series), stats.TotalContributions.StringFixed(2), stats.TotalFeesPaid.StringFixed(2))

	return series, stats, nil
}

// snapshot emits the single no-growth period used when the retirement
// horizon is zero or negative.
func (p *Projector) snapshot(policy *BufferPolicy) []domain.MonthlyDataPoint {
	in := p.input
	coverage := money.CoverageMonths(in.Buffers.Balance, in.IncomeExpense.LivingExpensesMonthly)

	point := domain.MonthlyDataPoint{
		Period:             0,
		Age:                decimal.NewFromInt(int64(in.Goal.CurrentAge)),
		SuperBalance:       in.Super.Balance,
		PortfolioBalance:   in.Portfolio.Balance,
		BufferBalance:      in.Buffers.Balance,
		GrossIncomeMonthly: in.IncomeExpense.SalaryYearly.Add(in.IncomeExpense.BonusYearly).Div(twelve),
		DCAPaused:          policy.Paused(),
		BuffersBelowTarget: policy.BelowTarget(coverage),
	}
	if in.HasProperty() {
		point.PropertyValue = in.Property.Value
		point.LoanBalance = in.Property.LoanBalance
		point.PropertyEquity = in.Property.Value.Sub(in.Property.LoanBalance)
		if in.Property.Value.GreaterThan(decimal.Zero) {
			point.LVR = in.Property.LoanBalance.Div(in.Property.Value)
		}
	}
	return []domain.MonthlyDataPoint{point}
}

// amortizedPayment returns the fixed monthly payment for a principal-and-
// interest loan. Near-zero rates fall back to linear repayment to avoid
// non-finite results from the annuity formula.
func amortizedPayment(principal, annualRate decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	monthlyRate := money.MonthlyRate(annualRate)
	if monthlyRate.Abs().LessThan(rateEpsilon) {
		return principal.Div(decimal.NewFromInt(int64(termMonths)))
	}
	factor := money.CompoundFactor(monthlyRate, termMonths)
	return principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
}
