package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ozplan/retirement-planner/internal/domain"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// baseInput is the worked scenario used across the engine tests: age 30 to
// 65, $100k salary, $150k super at SG 11.5%, $10k portfolio with $1,000/mo
// DCA, $10k buffer with a 1-month trigger and 3-month recovery against
// $4,000/mo expenses. Rates are pinned by overrides so assertions do not
// depend on the preset tables.
func baseInput() domain.PlannerInput {
	return domain.PlannerInput{
		Name: "base-case",
		Goal: domain.Goal{
			CurrentAge:         30,
			RetireAge:          65,
			TargetIncomeYearly: decPtr(65000),
			AssumptionPreset:   "none",
		},
		IncomeExpense: domain.IncomeExpense{
			SalaryYearly:          dec(100000),
			LivingExpensesMonthly: dec(4000),
			WageGrowthRate:        decPtr(0),
		},
		Super: domain.Super{
			Balance:        dec(150000),
			GuaranteeRate:  dec(0.115),
			ExpectedReturn: decPtr(0.07),
			FeeRate:        decPtr(0),
		},
		Portfolio: domain.Portfolio{
			Balance:        dec(10000),
			DCAMonthly:     dec(1000),
			Allocation:     domain.Allocation{Mode: domain.AllocationSingle},
			ExpectedReturn: decPtr(0.07),
			FeeRate:        decPtr(0),
		},
		Buffers: domain.Buffers{
			Balance:        dec(10000),
			TriggerMonths:  dec(1),
			RecoveryMonths: dec(3),
		},
	}
}

func testSettings() domain.Settings {
	return domain.DefaultSettings()
}
