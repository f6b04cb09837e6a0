package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError reports a fatal configuration problem in the planner
// input. It names the offending field and the constraint that was violated
// so the caller can surface a specific, actionable message.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Constraint)
}

// InvalidPresetError is returned when the assumption preset name is
// unrecognized and the input does not override every required rate.
type InvalidPresetError struct {
	Preset  string
	Missing []string
}

func (e *InvalidPresetError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("unknown assumption preset %q", e.Preset)
	}
	return fmt.Sprintf("unknown assumption preset %q and no override for: %s",
		e.Preset, strings.Join(e.Missing, ", "))
}

// InvalidBufferConfigError is returned when the buffer recovery target is
// below the pause trigger, which would defeat the hysteresis design.
type InvalidBufferConfigError struct {
	TriggerMonths  decimal.Decimal
	RecoveryMonths decimal.Decimal
}

func (e *InvalidBufferConfigError) Error() string {
	return fmt.Sprintf("buffer recovery target (%s months) must be at least the pause trigger (%s months)",
		e.RecoveryMonths.String(), e.TriggerMonths.String())
}
