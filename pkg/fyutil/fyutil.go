package fyutil

import (
	"github.com/shopspring/decimal"
)

// Period arithmetic for monthly projections. Period 0 is the first month of
// a financial year, so contribution caps reset every 12 periods.

// FYIndex returns the zero-based financial year a period falls in
func FYIndex(period int) int {
	if period < 0 {
		return 0
	}
	return period / 12
}

// MonthOfFY returns the zero-based month within the financial year
func MonthOfFY(period int) int {
	if period < 0 {
		return 0
	}
	return period % 12
}

// MonthsRemainingInFY returns how many months remain in the financial year,
// including the current period's month
func MonthsRemainingInFY(period int) int {
	return 12 - MonthOfFY(period)
}

// IsFYStart reports whether the period is the first month of a financial year
func IsFYStart(period int) bool {
	return MonthOfFY(period) == 0
}

// FractionalAge returns the age at a given period as a decimal, where the
// starting age is an integer number of years at period 0
func FractionalAge(startAge int, period int) decimal.Decimal {
	return decimal.NewFromInt(int64(startAge)).
		Add(decimal.NewFromInt(int64(period)).Div(decimal.NewFromInt(12)))
}

// PeriodsForYears converts a whole number of years to monthly periods
func PeriodsForYears(years int) int {
	if years < 0 {
		return 0
	}
	return years * 12
}
