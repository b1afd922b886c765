package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expensereport/internal/aggregate"
)

const (
	labelWidth  = 20
	columnWidth = 15
)

// Text writes the plain-text report.
func Text(w io.Writer, s *aggregate.Summary, opts Options) error {
	var b bytes.Buffer
	money := func(d decimal.Decimal) string {
		return opts.Currency + d.StringFixed(2)
	}

	fmt.Fprintf(&b, "Total Expense: %s\n\n", money(s.Total))

	b.WriteString("Total by Expense Type:\n")
	for _, e := range s.ByCategory.Entries() {
		fmt.Fprintf(&b, "%s: %s\n", e.Key, money(e.Amount))
	}
	b.WriteString("\n")

	b.WriteString("Total by Payment Method:\n")
	for _, e := range s.ByPaymentMethod.Entries() {
		fmt.Fprintf(&b, "%s: %s\n", e.Key, money(e.Amount))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Top %d Expense Types:\n", opts.TopN)
	for _, e := range s.TopCategories(opts.TopN) {
		fmt.Fprintf(&b, "%s: %s\n", e.Key, money(e.Amount))
	}
	b.WriteString("\n")

	if peak, ok := s.PeakDay(); ok {
		fmt.Fprintf(&b, "Day with Highest Expenses: %s with %s\n\n", peak.Key, money(peak.Amount))
	}

	b.WriteString("Month-wise Total Expenses:\n")
	for _, e := range s.Months() {
		fmt.Fprintf(&b, "%02d: %s\n", int(e.Key), money(e.Amount))
	}
	b.WriteString("\n")

	writeBreakdown(&b, s, opts)

	_, err := w.Write(b.Bytes())
	return err
}

func writeBreakdown(b *bytes.Buffer, s *aggregate.Summary, opts Options) {
	cell := func(d decimal.Decimal) string {
		return fmt.Sprintf("%s%-*s", opts.Currency, columnWidth-1, d.StringFixed(2))
	}
	rule := strings.Repeat("-", labelWidth+columnWidth*(len(opts.BreakdownMethods)+1))

	b.WriteString("Expense Type Breakdown by Payment Method:\n")
	cols := []string{fmt.Sprintf("%-*s", labelWidth, "Expense Type")}
	for _, m := range opts.BreakdownMethods {
		cols = append(cols, fmt.Sprintf("%-*s", columnWidth, m))
	}
	cols = append(cols, fmt.Sprintf("%-*s", columnWidth, "Total"))
	b.WriteString(strings.Join(cols, " ") + "\n")
	b.WriteString(rule + "\n")

	for _, category := range s.Breakdown.Categories() {
		row := []string{fmt.Sprintf("%-*s", labelWidth, category)}
		total := decimal.Zero
		for _, m := range opts.BreakdownMethods {
			v := s.Breakdown.Amount(category, m)
			total = total.Add(v)
			row = append(row, cell(v))
		}
		row = append(row, cell(total))
		b.WriteString(strings.Join(row, " ") + "\n")
	}

	b.WriteString(rule + "\n")
	footer := []string{fmt.Sprintf("%-*s", labelWidth, "Total")}
	for _, m := range opts.BreakdownMethods {
		footer = append(footer, cell(s.ByPaymentMethod.Amount(m)))
	}
	footer = append(footer, cell(s.Total))
	b.WriteString(strings.Join(footer, " ") + "\n")
}
