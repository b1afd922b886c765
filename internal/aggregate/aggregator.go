// Package aggregate folds expense records into a Summary in a single pass
// and answers ranking queries over the result.
package aggregate

import (
	"log/slog"

	"github.com/cleared-dev/expensereport/internal/logging"
	"github.com/cleared-dev/expensereport/internal/model"
)

// Aggregator folds expense records into a Summary. It holds no mutable state,
// so one Aggregator may be used from several goroutines.
type Aggregator struct {
	logger *slog.Logger
}

// New creates an Aggregator that reports skipped dates to logger.
// A nil logger discards diagnostics.
func New(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Aggregator{logger: logger}
}

// Aggregate folds records with a discarding logger.
func Aggregate(records []model.Expense) *Summary {
	return New(nil).Aggregate(records)
}

// Aggregate folds records, in order, into a fresh Summary.
// Records with an unparseable date still count toward every non-date total.
func (a *Aggregator) Aggregate(records []model.Expense) *Summary {
	s := newSummary()
	for _, r := range records {
		s.Records++
		s.Total = s.Total.Add(r.Amount)
		s.ByCategory.Add(r.Category, r.Amount)
		s.ByPaymentMethod.Add(r.PaymentMethod, r.Amount)

		if !r.HasDate() {
			s.Undated = s.Undated.Add(r.Amount)
		} else if day, err := model.ParseDate(r.Date); err != nil {
			a.logger.Warn("skipping invalid date format", "date", r.Date, "id", r.ID)
			s.InvalidDates = append(s.InvalidDates, r.Date)
			s.Undated = s.Undated.Add(r.Amount)
		} else {
			s.Daily.Add(day, r.Amount)
			s.Monthly.Add(day.Month, r.Amount)
		}

		s.Breakdown.Add(r.Category, r.PaymentMethod, r.Amount)
	}
	return s
}
