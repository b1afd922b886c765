package report

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expensereport/internal/aggregate"
)

type amountJSON struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type dayJSON struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type monthJSON struct {
	Month  int    `json:"month"`
	Amount string `json:"amount"`
}

type breakdownJSON struct {
	Category string       `json:"category"`
	Methods  []amountJSON `json:"methods"`
}

type summaryJSON struct {
	Total           string          `json:"total"`
	Records         int             `json:"records"`
	ByCategory      []amountJSON    `json:"by_category"`
	ByPaymentMethod []amountJSON    `json:"by_payment_method"`
	TopCategories   []amountJSON    `json:"top_categories"`
	PeakDay         *dayJSON        `json:"peak_day,omitempty"`
	Daily           []dayJSON       `json:"daily"`
	Monthly         []monthJSON     `json:"monthly"`
	Breakdown       []breakdownJSON `json:"breakdown"`
	InvalidDates    []string        `json:"invalid_dates"`
	Undated         string          `json:"undated"`
}

func fixed(d decimal.Decimal) string { return d.StringFixed(2) }

func amounts(entries []aggregate.Entry[string]) []amountJSON {
	out := make([]amountJSON, len(entries))
	for i, e := range entries {
		out[i] = amountJSON{Name: e.Key, Amount: fixed(e.Amount)}
	}
	return out
}

// JSON writes the summary as an indented JSON document. Keyed sections are
// arrays so that insertion order survives.
func JSON(w io.Writer, s *aggregate.Summary, opts Options) error {
	doc := summaryJSON{
		Total:           fixed(s.Total),
		Records:         s.Records,
		ByCategory:      amounts(s.ByCategory.Entries()),
		ByPaymentMethod: amounts(s.ByPaymentMethod.Entries()),
		TopCategories:   amounts(s.TopCategories(opts.TopN)),
		Daily:           []dayJSON{},
		Monthly:         []monthJSON{},
		Breakdown:       []breakdownJSON{},
		InvalidDates:    []string{},
		Undated:         fixed(s.Undated),
	}

	if peak, ok := s.PeakDay(); ok {
		doc.PeakDay = &dayJSON{Date: peak.Key.String(), Amount: fixed(peak.Amount)}
	}
	for _, e := range s.Daily.Entries() {
		doc.Daily = append(doc.Daily, dayJSON{Date: e.Key.String(), Amount: fixed(e.Amount)})
	}
	for _, e := range s.Months() {
		doc.Monthly = append(doc.Monthly, monthJSON{Month: int(e.Key), Amount: fixed(e.Amount)})
	}
	for _, c := range s.Breakdown.Categories() {
		doc.Breakdown = append(doc.Breakdown, breakdownJSON{
			Category: c,
			Methods:  amounts(s.Breakdown.Methods(c).Entries()),
		})
	}
	doc.InvalidDates = append(doc.InvalidDates, s.InvalidDates...)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
