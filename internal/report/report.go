// Package report renders an aggregate.Summary for people and for other tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/expensereport/internal/aggregate"
)

// Output formats understood by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Options controls what the renderers include.
type Options struct {
	// TopN is how many categories the ranking section lists.
	TopN int
	// Currency is printed in front of every amount in text output.
	Currency string
	// BreakdownMethods are the payment-method columns of the breakdown table.
	// Other methods are left out of that table only.
	BreakdownMethods []string
}

// DefaultOptions returns the stock report layout.
func DefaultOptions() Options {
	return Options{
		TopN:             3,
		Currency:         "$",
		BreakdownMethods: []string{"Credit Card", "Cash"},
	}
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatCSV}
}

// Render writes s to w in the named format.
func Render(w io.Writer, format string, s *aggregate.Summary, opts Options) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return Text(w, s, opts)
	case FormatJSON:
		return JSON(w, s, opts)
	case FormatCSV:
		return CSV(w, s)
	default:
		return fmt.Errorf("unknown report format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}
