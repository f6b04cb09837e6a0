package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound(t *testing.T) {
	cases := map[string]string{
		"1234.5678": "1234.57",
		"1234.561":  "1234.56",
		"-10.006":   "-10.01",
	}
	for in, want := range cases {
		d, err := decimal.NewFromString(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := NewMoneyFromDecimal(d).Round().StringFixed(2); got != want {
			t.Errorf("Round(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestCoverageMonths(t *testing.T) {
	got := CoverageMonths(decimal.NewFromInt(12000), decimal.NewFromInt(4000))
	if !got.Equal(decimal.NewFromInt(3)) {
		t.Errorf("CoverageMonths(12000, 4000) = %s, want 3", got)
	}
	if got := CoverageMonths(decimal.NewFromInt(12000), decimal.Zero); !got.IsZero() {
		t.Errorf("CoverageMonths with zero expenses = %s, want 0", got)
	}
	if got := CoverageMonths(decimal.NewFromInt(12000), decimal.NewFromInt(-100)); !got.IsZero() {
		t.Errorf("CoverageMonths with negative expenses = %s, want 0", got)
	}
}

func TestMonthlyRate(t *testing.T) {
	got := MonthlyRate(decimal.NewFromFloat(0.06))
	want := decimal.NewFromFloat(0.005)
	if !got.Equal(want) {
		t.Errorf("MonthlyRate(0.06) = %s, want %s", got, want)
	}
}

func TestCompoundFactor(t *testing.T) {
	// (1.005)^12 = 1.0616778...
	got := CompoundFactor(decimal.NewFromFloat(0.005), 12)
	want := decimal.NewFromFloat(1.0616778)
	if got.Sub(want).Abs().GreaterThan(decimal.NewFromFloat(0.0000001)) {
		t.Errorf("CompoundFactor(0.005, 12) = %s, want ~%s", got, want)
	}

	if !CompoundFactor(decimal.NewFromFloat(0.005), 0).Equal(decimal.NewFromInt(1)) {
		t.Error("CompoundFactor with zero periods should be 1")
	}
}
