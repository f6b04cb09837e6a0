package output

import (
	gojson "github.com/goccy/go-json"

	"github.com/ozplan/retirement-planner/internal/domain"
)

// JSONFormatter emits the full report, trajectory included, as indented
// JSON for downstream tooling.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return gojson.MarshalIndent(report, "", "  ")
}
