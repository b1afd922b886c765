package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/expensereport/internal/aggregate"
)

// CSVHeader is the header row written by CSV.
var CSVHeader = []string{"category", "payment_method", "amount"}

// CSV writes one row per (category, payment method) cell of the breakdown,
// every payment method included.
func CSV(w io.Writer, s *aggregate.Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for _, c := range s.Breakdown.Categories() {
		for _, e := range s.Breakdown.Methods(c).Entries() {
			if err := cw.Write([]string{c, e.Key, e.Amount.StringFixed(2)}); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}
	cw.Flush()
	return cw.Error()
}
