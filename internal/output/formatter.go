package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ozplan/retirement-planner/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(report *domain.Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVExporter{},
	JSONFormatter{},
}

// NormalizeFormatName lowercases and trims a requested format name.
func NormalizeFormatName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetFormatterByName fetches a registered formatter, or nil if unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// FormatNames returns the registered formatter names.
func FormatNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}

// WriteFormatted runs a formatter and writes its output to a timestamped
// report file, returning the filename.
func WriteFormatted(f Formatter, report *domain.Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("retirement_projection_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
