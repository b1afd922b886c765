package aggregate

import (
	"sort"
	"time"

	"github.com/cleared-dev/expensereport/internal/model"
)

// TopCategories returns up to n categories with the largest totals, largest
// first. Equal totals keep the order in which the categories were first seen.
func (s *Summary) TopCategories(n int) []Entry[string] {
	if n <= 0 {
		return nil
	}
	entries := s.ByCategory.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Amount.GreaterThan(entries[j].Amount)
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// PeakDay returns the day with the highest total. When several days share the
// maximum, the one seen first in the input wins. ok is false if no record had
// a valid date.
func (s *Summary) PeakDay() (peak Entry[model.Date], ok bool) {
	for _, e := range s.Daily.Entries() {
		if !ok || e.Amount.GreaterThan(peak.Amount) {
			peak, ok = e, true
		}
	}
	return peak, ok
}

// Months returns the monthly totals ordered January to December.
func (s *Summary) Months() []Entry[time.Month] {
	entries := s.Monthly.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}
