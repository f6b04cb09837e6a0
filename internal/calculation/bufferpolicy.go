package calculation

import (
	"github.com/shopspring/decimal"
)

// BufferMode is the buffer policy's current state.
type BufferMode string

const (
	// ModeInvesting means discretionary contributions flow as requested.
	ModeInvesting BufferMode = "investing"
	// ModePaused means discretionary contributions are redirected into the
	// cash buffer until coverage recovers.
	ModePaused BufferMode = "paused"
)

// BufferPolicy is the two-threshold pause/resume state machine. Investing
// pauses when coverage falls strictly below the trigger and resumes only
// once coverage reaches the recovery target. The recovery bar sitting at or
// above the trigger guarantees monotonic sojourns in each state instead of
// flapping near a single boundary.
//
// It is the only stateful component of a run; state never survives a run.
type BufferPolicy struct {
	trigger  decimal.Decimal
	recovery decimal.Decimal
	mode     BufferMode
}

// NewBufferPolicy builds the policy and computes the initial state from the
// starting coverage using the same rule as every later period.
func NewBufferPolicy(triggerMonths, recoveryMonths, initialCoverage decimal.Decimal) (*BufferPolicy, error) {
	if recoveryMonths.LessThan(triggerMonths) {
		return nil, &InvalidBufferConfigError{TriggerMonths: triggerMonths, RecoveryMonths: recoveryMonths}
	}
	bp := &BufferPolicy{trigger: triggerMonths, recovery: recoveryMonths, mode: ModeInvesting}
	if initialCoverage.LessThan(triggerMonths) {
		bp.mode = ModePaused
	}
	return bp, nil
}

// Evaluate advances the state machine for one period given the buffer's
// coverage ratio (balance over monthly expenses) and returns the mode in
// effect for that period.
func (bp *BufferPolicy) Evaluate(coverage decimal.Decimal) BufferMode {
	switch bp.mode {
	case ModeInvesting:
		if coverage.LessThan(bp.trigger) {
			bp.mode = ModePaused
		}
	case ModePaused:
		if coverage.GreaterThanOrEqual(bp.recovery) {
			bp.mode = ModeInvesting
		}
	}
	return bp.mode
}

// Mode returns the current state without advancing it.
func (bp *BufferPolicy) Mode() BufferMode {
	return bp.mode
}

// Paused reports whether discretionary investing is currently suspended.
func (bp *BufferPolicy) Paused() bool {
	return bp.mode == ModePaused
}

// BelowTarget reports whether a coverage ratio sits under the recovery
// target; surfaced as the buffersBelowTarget soft flag.
func (bp *BufferPolicy) BelowTarget(coverage decimal.Decimal) bool {
	return coverage.LessThan(bp.recovery)
}
