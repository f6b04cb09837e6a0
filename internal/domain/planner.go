package domain

import (
	"github.com/shopspring/decimal"
)

// GoalMode identifies which retirement target a goal carries.
type GoalMode string

const (
	// GoalIncome targets a yearly retirement income.
	GoalIncome GoalMode = "income"
	// GoalCapital targets a lump-sum capital amount at retirement.
	GoalCapital GoalMode = "capital"
)

// LoanType identifies the repayment structure of a property loan.
type LoanType string

const (
	LoanInterestOnly         LoanType = "interest_only"
	LoanPrincipalAndInterest LoanType = "principal_and_interest"
)

// AllocationMode identifies how the portfolio is split across funds.
type AllocationMode string

const (
	AllocationSingle AllocationMode = "single"
	AllocationSplit  AllocationMode = "split"
)

// Goal holds the retirement target. Exactly one of TargetIncomeYearly or
// TargetCapital must be set; the two are mutually exclusive.
type Goal struct {
	CurrentAge         int              `yaml:"current_age" json:"current_age"`
	RetireAge          int              `yaml:"retire_age" json:"retire_age"`
	TargetIncomeYearly *decimal.Decimal `yaml:"target_income_yearly,omitempty" json:"target_income_yearly,omitempty"`
	TargetCapital      *decimal.Decimal `yaml:"target_capital,omitempty" json:"target_capital,omitempty"`
	RiskProfile        string           `yaml:"risk_profile,omitempty" json:"risk_profile,omitempty"`
	AssumptionPreset   string           `yaml:"assumption_preset" json:"assumption_preset"`
}

// Mode returns which target variant the goal carries. Callers must not rely
// on Mode before the input has passed validation.
func (g *Goal) Mode() GoalMode {
	if g.TargetCapital != nil {
		return GoalCapital
	}
	return GoalIncome
}

// YearsToRetirement returns the whole years between the current and
// retirement ages. May be zero or negative for degenerate inputs.
func (g *Goal) YearsToRetirement() int {
	return g.RetireAge - g.CurrentAge
}

// IncomeExpense holds salary, bonus and living-expense figures.
type IncomeExpense struct {
	SalaryYearly          decimal.Decimal  `yaml:"salary_yearly" json:"salary_yearly"`
	BonusYearly           decimal.Decimal  `yaml:"bonus_yearly,omitempty" json:"bonus_yearly,omitempty"`
	WageGrowthRate        *decimal.Decimal `yaml:"wage_growth_rate,omitempty" json:"wage_growth_rate,omitempty"`
	LivingExpensesMonthly decimal.Decimal  `yaml:"living_expenses_monthly" json:"living_expenses_monthly"`
}

// Super describes the superannuation account. Rate overrides are pointers;
// nil means "use the assumption preset".
type Super struct {
	Balance                decimal.Decimal  `yaml:"balance" json:"balance"`
	GuaranteeRate          decimal.Decimal  `yaml:"guarantee_rate" json:"guarantee_rate"`
	SalarySacrificeMonthly decimal.Decimal  `yaml:"salary_sacrifice_monthly,omitempty" json:"salary_sacrifice_monthly,omitempty"`
	InvestmentOption       string           `yaml:"investment_option,omitempty" json:"investment_option,omitempty"`
	ExpectedReturn         *decimal.Decimal `yaml:"expected_return,omitempty" json:"expected_return,omitempty"`
	FeeRate                *decimal.Decimal `yaml:"fee_rate,omitempty" json:"fee_rate,omitempty"`
	AdminFeeYearly         decimal.Decimal  `yaml:"admin_fee_yearly,omitempty" json:"admin_fee_yearly,omitempty"`
	ContributionsTaxRate   decimal.Decimal  `yaml:"contributions_tax_rate,omitempty" json:"contributions_tax_rate,omitempty"`
}

// Property describes an optional investment or residential property with an
// outstanding loan.
type Property struct {
	Value                 decimal.Decimal  `yaml:"value" json:"value"`
	LoanBalance           decimal.Decimal  `yaml:"loan_balance" json:"loan_balance"`
	InterestRate          decimal.Decimal  `yaml:"interest_rate" json:"interest_rate"`
	LoanType              LoanType         `yaml:"loan_type" json:"loan_type"`
	LoanTermYears         int              `yaml:"loan_term_years,omitempty" json:"loan_term_years,omitempty"`
	RentWeekly            decimal.Decimal  `yaml:"rent_weekly,omitempty" json:"rent_weekly,omitempty"`
	ManagementFeeRate     decimal.Decimal  `yaml:"management_fee_rate,omitempty" json:"management_fee_rate,omitempty"`
	InsuranceYearly       decimal.Decimal  `yaml:"insurance_yearly,omitempty" json:"insurance_yearly,omitempty"`
	CouncilRatesYearly    decimal.Decimal  `yaml:"council_rates_yearly,omitempty" json:"council_rates_yearly,omitempty"`
	MaintenanceRate       decimal.Decimal  `yaml:"maintenance_rate,omitempty" json:"maintenance_rate,omitempty"`
	VacancyRate           decimal.Decimal  `yaml:"vacancy_rate,omitempty" json:"vacancy_rate,omitempty"`
	GrowthRate            *decimal.Decimal `yaml:"growth_rate,omitempty" json:"growth_rate,omitempty"`
	RentalGrowthRate      *decimal.Decimal `yaml:"rental_growth_rate,omitempty" json:"rental_growth_rate,omitempty"`
	ExtraRepaymentMonthly decimal.Decimal  `yaml:"extra_repayment_monthly,omitempty" json:"extra_repayment_monthly,omitempty"`
}

// Allocation is the portfolio's fund split. Weights must sum to 1 within
// a tolerance of 0.001 when the mode is split.
type Allocation struct {
	Mode         AllocationMode  `yaml:"mode" json:"mode"`
	AusWeight    decimal.Decimal `yaml:"aus_weight,omitempty" json:"aus_weight,omitempty"`
	GlobalWeight decimal.Decimal `yaml:"global_weight,omitempty" json:"global_weight,omitempty"`
}

// WeightSum returns the total of the split weights.
func (a Allocation) WeightSum() decimal.Decimal {
	return a.AusWeight.Add(a.GlobalWeight)
}

// Portfolio describes the taxable investment portfolio.
type Portfolio struct {
	Balance        decimal.Decimal  `yaml:"balance" json:"balance"`
	DCAMonthly     decimal.Decimal  `yaml:"dca_monthly,omitempty" json:"dca_monthly,omitempty"`
	Allocation     Allocation       `yaml:"allocation" json:"allocation"`
	ExpectedReturn *decimal.Decimal `yaml:"expected_return,omitempty" json:"expected_return,omitempty"`
	FeeRate        *decimal.Decimal `yaml:"fee_rate,omitempty" json:"fee_rate,omitempty"`
}

// Buffers describes the cash buffer and the pause/resume thresholds,
// both expressed in months of living-expense coverage.
type Buffers struct {
	Balance        decimal.Decimal `yaml:"balance" json:"balance"`
	TopUpMonthly   decimal.Decimal `yaml:"top_up_monthly,omitempty" json:"top_up_monthly,omitempty"`
	TriggerMonths  decimal.Decimal `yaml:"trigger_months" json:"trigger_months"`
	RecoveryMonths decimal.Decimal `yaml:"recovery_months" json:"recovery_months"`
	InterestRate   decimal.Decimal `yaml:"interest_rate,omitempty" json:"interest_rate,omitempty"`
}

// PlannerInput is the complete, validated snapshot of a person's goals,
// income and holdings for one projection run. It is passed by value into
// the engine and never mutated.
type PlannerInput struct {
	Name          string        `yaml:"name" json:"name"`
	Goal          Goal          `yaml:"goal" json:"goal"`
	IncomeExpense IncomeExpense `yaml:"income_expense" json:"income_expense"`
	Super         Super         `yaml:"super" json:"super"`
	Property      *Property     `yaml:"property,omitempty" json:"property,omitempty"`
	Portfolio     Portfolio     `yaml:"portfolio" json:"portfolio"`
	Buffers       Buffers       `yaml:"buffers" json:"buffers"`
}

// HasProperty reports whether the input includes a property bucket.
func (p *PlannerInput) HasProperty() bool {
	return p.Property != nil
}
