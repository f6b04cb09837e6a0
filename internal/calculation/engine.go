package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/ozplan/retirement-planner/internal/domain"
)

// Engine orchestrates a projection run: validate, resolve rates, project,
// aggregate. It holds no per-run state, so one Engine may serve concurrent
// runs with different settings.
type Engine struct {
	Logger Logger
}

// NewEngine creates a new projection engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunScenario executes one projection run. The invocation is atomic: it
// either returns a complete ScenarioResult or fails fast with a validation
// error before any projection work begins. The input is taken by value and
// echoed into the result; the engine never mutates it.
func (e *Engine) RunScenario(ctx context.Context, input domain.PlannerInput, settings domain.Settings) (*domain.ScenarioResult, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateInput(&input, &settings); err != nil {
		return nil, err
	}

	rates, err := ResolveRates(&input, &settings)
	if err != nil {
		return nil, err
	}

	series, stats, err := NewProjector(&input, &settings, rates, e.Logger).Run()
	if err != nil {
		return nil, err
	}

	kpis, warnings := AggregateKPIs(&input, &settings, series, stats)

	result := &domain.ScenarioResult{
		Input:  input,
		Rates:  rates,
		KPIs:   kpis,
		Series: series,
		Meta: domain.RunMeta{
			Duration: time.Since(start),
			Periods:  len(series),
			Warnings: warnings,
		},
	}

	e.Logger.Infof("scenario %q: %d periods, net worth at retirement %s",
		input.Name, len(series), kpis.NetWorthAtRetirement.StringFixed(2))

	return result, nil
}

// RunScenarios runs every input against the same settings and groups the
// results into a report. Inputs are independent; a failure in any one
// aborts the batch with its position in the error.
func (e *Engine) RunScenarios(ctx context.Context, inputs []domain.PlannerInput, settings domain.Settings) (*domain.Report, error) {
	report := &domain.Report{
		GeneratedAt: time.Now(),
		Settings:    settings,
		Scenarios:   make([]*domain.ScenarioResult, 0, len(inputs)),
	}
	for i, input := range inputs {
		result, err := e.RunScenario(ctx, input, settings)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i, input.Name, err)
		}
		report.Scenarios = append(report.Scenarios, result)
	}
	return report, nil
}
