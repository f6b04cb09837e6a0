package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ozplan/retirement-planner/internal/domain"
)

// weightTolerance is the allowed deviation of split portfolio weights from 1.
var weightTolerance = decimal.NewFromFloat(0.001)

// rateFloor and rateCeiling bound every annual rate in the input. Extreme
// values are almost always data-entry mistakes, so they are rejected rather
// than projected.
var (
	rateFloor   = decimal.NewFromInt(-1)
	rateCeiling = decimal.NewFromInt(1)
)

// ValidateInput checks every invariant the engine relies on. It is called
// before any projection work begins; a non-nil error means no projection
// state was created. Soft policy conditions (cap clamping, buffer pauses)
// are never validation failures.
func ValidateInput(input *domain.PlannerInput, settings *domain.Settings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}
	if err := validateGoal(&input.Goal); err != nil {
		return err
	}
	if err := validateIncomeExpense(&input.IncomeExpense); err != nil {
		return err
	}
	if err := validateSuper(&input.Super); err != nil {
		return err
	}
	if err := validatePortfolio(&input.Portfolio); err != nil {
		return err
	}
	if input.Property != nil {
		if err := validateProperty(input.Property); err != nil {
			return err
		}
	}
	return validateBuffers(&input.Buffers)
}

// validateSettings guards the settings fields the projection divides by or
// derives ages from. Library callers can hand the engine any Settings value,
// so these cannot be left to the file loader alone.
func validateSettings(s *domain.Settings) error {
	if !s.WithdrawalRate.IsPositive() {
		return &ValidationError{Field: "settings.withdrawal_rate", Constraint: "must be positive"}
	}
	if !s.ConcessionalCapYearly.IsPositive() {
		return &ValidationError{Field: "settings.concessional_cap_yearly", Constraint: "must be positive"}
	}
	if s.PreservationAge <= 0 {
		return &ValidationError{Field: "settings.preservation_age", Constraint: "must be positive"}
	}
	return nil
}

func validateGoal(g *domain.Goal) error {
	if g.CurrentAge <= 0 {
		return &ValidationError{Field: "goal.current_age", Constraint: "must be positive"}
	}
	if g.RetireAge < g.CurrentAge {
		return &ValidationError{Field: "goal.retire_age", Constraint: "must not be below current age"}
	}
	hasIncome := g.TargetIncomeYearly != nil
	hasCapital := g.TargetCapital != nil
	if hasIncome == hasCapital {
		return &ValidationError{
			Field:      "goal.target_income_yearly/target_capital",
			Constraint: "exactly one retirement target must be set",
		}
	}
	if hasIncome && g.TargetIncomeYearly.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "goal.target_income_yearly", Constraint: "must be positive"}
	}
	if hasCapital && g.TargetCapital.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "goal.target_capital", Constraint: "must be positive"}
	}
	return nil
}

func validateIncomeExpense(ie *domain.IncomeExpense) error {
	if ie.SalaryYearly.LessThan(decimal.Zero) {
		return &ValidationError{Field: "income_expense.salary_yearly", Constraint: "cannot be negative"}
	}
	if ie.LivingExpensesMonthly.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "income_expense.living_expenses_monthly", Constraint: "must be positive"}
	}
	if ie.WageGrowthRate != nil && !rateInRange(*ie.WageGrowthRate) {
		return &ValidationError{Field: "income_expense.wage_growth_rate", Constraint: "must be a decimal fraction between -1 and 1"}
	}
	return nil
}

func validateSuper(s *domain.Super) error {
	if s.Balance.LessThan(decimal.Zero) {
		return &ValidationError{Field: "super.balance", Constraint: "cannot be negative"}
	}
	if s.GuaranteeRate.LessThan(decimal.Zero) || s.GuaranteeRate.GreaterThan(rateCeiling) {
		return &ValidationError{Field: "super.guarantee_rate", Constraint: "must be a decimal fraction between 0 and 1"}
	}
	if s.SalarySacrificeMonthly.LessThan(decimal.Zero) {
		return &ValidationError{Field: "super.salary_sacrifice_monthly", Constraint: "cannot be negative"}
	}
	if s.ExpectedReturn != nil && !rateInRange(*s.ExpectedReturn) {
		return &ValidationError{Field: "super.expected_return", Constraint: "must be a decimal fraction between -1 and 1"}
	}
	return nil
}

func validatePortfolio(p *domain.Portfolio) error {
	if p.Balance.LessThan(decimal.Zero) {
		return &ValidationError{Field: "portfolio.balance", Constraint: "cannot be negative"}
	}
	if p.DCAMonthly.LessThan(decimal.Zero) {
		return &ValidationError{Field: "portfolio.dca_monthly", Constraint: "cannot be negative"}
	}
	if p.Allocation.Mode == domain.AllocationSplit {
		diff := p.Allocation.WeightSum().Sub(decimal.NewFromInt(1)).Abs()
		if diff.GreaterThan(weightTolerance) {
			return &ValidationError{
				Field:      "portfolio.allocation",
				Constraint: "split weights must sum to 1 within 0.001, got " + p.Allocation.WeightSum().String(),
			}
		}
	}
	return nil
}

func validateProperty(p *domain.Property) error {
	if p.Value.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "property.value", Constraint: "must be positive"}
	}
	if p.LoanBalance.LessThan(decimal.Zero) {
		return &ValidationError{Field: "property.loan_balance", Constraint: "cannot be negative"}
	}
	if p.LoanBalance.GreaterThan(p.Value) {
		return &ValidationError{Field: "property.loan_balance", Constraint: "cannot exceed property value"}
	}
	if p.InterestRate.LessThan(decimal.Zero) || p.InterestRate.GreaterThan(rateCeiling) {
		return &ValidationError{Field: "property.interest_rate", Constraint: "must be a decimal fraction between 0 and 1"}
	}
	switch p.LoanType {
	case domain.LoanInterestOnly, domain.LoanPrincipalAndInterest:
	default:
		return &ValidationError{Field: "property.loan_type", Constraint: "must be interest_only or principal_and_interest"}
	}
	return nil
}

func validateBuffers(b *domain.Buffers) error {
	if b.Balance.LessThan(decimal.Zero) {
		return &ValidationError{Field: "buffers.balance", Constraint: "cannot be negative"}
	}
	if b.TriggerMonths.LessThan(decimal.Zero) {
		return &ValidationError{Field: "buffers.trigger_months", Constraint: "cannot be negative"}
	}
	if b.RecoveryMonths.LessThan(b.TriggerMonths) {
		return &InvalidBufferConfigError{TriggerMonths: b.TriggerMonths, RecoveryMonths: b.RecoveryMonths}
	}
	return nil
}

func rateInRange(r decimal.Decimal) bool {
	return r.GreaterThanOrEqual(rateFloor) && r.LessThanOrEqual(rateCeiling)
}
