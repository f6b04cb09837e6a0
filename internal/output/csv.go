package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/ozplan/retirement-planner/internal/domain"
)

// CSVExporter writes one row per monthly data point: the shape consumed by
// external reporting tools. Scenario name is the leading column so a
// multi-scenario report stays a single flat file.
type CSVExporter struct{}

func (CSVExporter) Name() string { return "csv" }

func (CSVExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"scenario", "month", "age", "net_worth",
		"super_balance", "outside_super_balance", "cash_balance",
		"property_value", "loan_balance", "dca_paused",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, sc := range report.Scenarios {
		for i := range sc.Series {
			point := &sc.Series[i]
			row := []string{
				sc.Input.Name,
				strconv.Itoa(point.Period + 1),
				point.Age.StringFixed(2),
				point.NetWorth().StringFixed(2),
				point.SuperBalance.StringFixed(2),
				point.PortfolioBalance.StringFixed(2),
				point.BufferBalance.StringFixed(2),
				point.PropertyValue.StringFixed(2),
				point.LoanBalance.StringFixed(2),
				strconv.FormatBool(point.DCAPaused),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
