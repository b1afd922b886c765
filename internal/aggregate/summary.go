package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expensereport/internal/model"
)

// Summary holds every aggregate produced by one pass over an expense ledger.
// It is fully populated by Aggregate and must be treated as read-only afterwards.
type Summary struct {
	Total           decimal.Decimal
	ByCategory      *Totals[string]
	ByPaymentMethod *Totals[string]
	Daily           *Totals[model.Date]
	Monthly         *Totals[time.Month] // year discarded
	Breakdown       *Breakdown

	// Records is the number of records folded into the summary.
	Records int
	// InvalidDates lists present but unparseable date values in input order.
	InvalidDates []string
	// Undated sums the amounts of records with a missing or invalid date.
	Undated decimal.Decimal
}

func newSummary() *Summary {
	return &Summary{
		Total:           decimal.Zero,
		Undated:         decimal.Zero,
		ByCategory:      NewTotals[string](),
		ByPaymentMethod: NewTotals[string](),
		Daily:           NewTotals[model.Date](),
		Monthly:         NewTotals[time.Month](),
		Breakdown:       newBreakdown(),
	}
}

// Breakdown is a two-level accumulator: category, then payment method.
type Breakdown struct {
	categories []string
	byCategory map[string]*Totals[string]
}

func newBreakdown() *Breakdown {
	return &Breakdown{byCategory: make(map[string]*Totals[string])}
}

// Add adds amount to the (category, method) cell, creating either level as needed.
func (b *Breakdown) Add(category, method string, amount decimal.Decimal) {
	methods, ok := b.byCategory[category]
	if !ok {
		methods = NewTotals[string]()
		b.byCategory[category] = methods
		b.categories = append(b.categories, category)
	}
	methods.Add(method, amount)
}

// Categories returns the categories in insertion order.
func (b *Breakdown) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

// Methods returns the per-method totals for category, or nil if unseen.
func (b *Breakdown) Methods(category string) *Totals[string] {
	return b.byCategory[category]
}

// Amount returns the (category, method) cell, or zero.
func (b *Breakdown) Amount(category, method string) decimal.Decimal {
	methods, ok := b.byCategory[category]
	if !ok {
		return decimal.Zero
	}
	return methods.Amount(method)
}

// Sum returns the sum over every cell.
func (b *Breakdown) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.categories {
		total = total.Add(b.byCategory[c].Sum())
	}
	return total
}
