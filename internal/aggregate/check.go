package aggregate

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvariantError describes a Summary whose accumulators disagree.
type InvariantError struct {
	Accumulator string
	Got         decimal.Decimal
	Want        decimal.Decimal
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("%s sums to %s, want %s", e.Accumulator, e.Got.StringFixed(2), e.Want.StringFixed(2))
}

// Check cross-checks the accumulators against each other.
// A summary produced by Aggregate always passes.
func (s *Summary) Check() []InvariantError {
	var errs []InvariantError

	sums := []struct {
		name string
		got  decimal.Decimal
	}{
		{"category totals", s.ByCategory.Sum()},
		{"payment method totals", s.ByPaymentMethod.Sum()},
		{"category/payment breakdown", s.Breakdown.Sum()},
	}
	for _, c := range sums {
		if !c.got.Equal(s.Total) {
			errs = append(errs, InvariantError{Accumulator: c.name, Got: c.got, Want: s.Total})
		}
	}

	dated := s.Total.Sub(s.Undated)
	if daily := s.Daily.Sum(); !daily.Equal(dated) {
		errs = append(errs, InvariantError{Accumulator: "daily totals", Got: daily, Want: dated})
	}
	if monthly := s.Monthly.Sum(); !monthly.Equal(dated) {
		errs = append(errs, InvariantError{Accumulator: "monthly totals", Got: monthly, Want: dated})
	}

	return errs
}
