// Package export renders simulation results for spreadsheet tooling.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/AlbanoAyala/DrillingPlanner/internal/plan"
)

// utf8BOM keeps Excel reading the file as UTF-8, accents intact.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var programHeaders = []string{
	"ID", "Phase", "Activity", "Duration (hrs)", "Cost (USD)",
	"Days From Spud", "Total Cum. Days", "Cumulative Cost (USD)",
}

// WriteProgramCSV writes the calculated program as CSV, one row per line with
// durations and money at two decimals.
func WriteProgramCSV(w io.Writer, result plan.SimulationResult) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(programHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, line := range result.Lines {
		record := []string{
			line.ID,
			line.Phase,
			line.Activity,
			fmt.Sprintf("%.2f", line.CalculatedDuration),
			fmt.Sprintf("%.2f", line.CalculatedCost),
			fmt.Sprintf("%.2f", line.DaysFromSpud),
			fmt.Sprintf("%.2f", line.CumulativeTime),
			fmt.Sprintf("%.2f", line.CumulativeCost),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", line.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
