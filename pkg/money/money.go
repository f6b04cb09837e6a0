// Package money holds the decimal helpers shared by the projection engine
// and its output formatters.
package money

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount for display. It embeds decimal.Decimal, so the
// full decimal API remains available on it.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal wraps a decimal amount.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the amount to the nearest cent.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// CoverageMonths returns how many months of the given monthly expense an
// amount covers. Zero when the expense is not positive, so callers never
// divide by zero.
func CoverageMonths(amount, monthlyExpense decimal.Decimal) decimal.Decimal {
	if !monthlyExpense.IsPositive() {
		return decimal.Zero
	}
	return amount.Div(monthlyExpense)
}

// MonthlyRate converts an annual decimal rate to a simple monthly rate.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(decimal.NewFromInt(12))
}

// CompoundFactor returns (1+rate)^periods for an integer period count.
func CompoundFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(periods)))
}
