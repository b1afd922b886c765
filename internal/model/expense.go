package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Unknown is the label used when a category or payment method is blank.
const Unknown = "Unknown"

// Expense is one normalized row of the expense ledger.
type Expense struct {
	ID            string // opaque, never aggregated
	Category      string
	Amount        decimal.Decimal
	Date          string // raw value; "" means no date
	PaymentMethod string
}

// HasDate reports whether the row carried a date value at all.
func (e Expense) HasDate() bool {
	return e.Date != ""
}

// dateLayout accepts both zero-padded and unpadded month/day.
const dateLayout = "2006-1-2"

// Date is a calendar day without time or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a year-month-day string such as "2024-01-05".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
