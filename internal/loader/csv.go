package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/expensereport/internal/logging"
	"github.com/cleared-dev/expensereport/internal/model"
)

// Columns names the header fields the CSV parser reads.
type Columns struct {
	ID            string
	Category      string
	Amount        string
	Date          string
	PaymentMethod string
}

// DefaultColumns returns the header names of the stock expenses.csv layout.
func DefaultColumns() Columns {
	return Columns{
		ID:            "expense_id",
		Category:      "expense_type",
		Amount:        "amount",
		Date:          "expense_date",
		PaymentMethod: "payment_method",
	}
}

// CSVParser reads a headed expense ledger. Columns are located by name, so
// their order in the file does not matter.
type CSVParser struct {
	Columns Columns
	Logger  *slog.Logger
}

// NewCSVParser creates a CSVParser for the given header names.
func NewCSVParser(cols Columns, logger *slog.Logger) *CSVParser {
	return &CSVParser{Columns: cols, Logger: logger}
}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// maxAmountExponent bounds the decimal exponent of an amount; Add rescales
// both operands to the smaller exponent.
const maxAmountExponent = 28

type columnIndex struct {
	id, category, amount, date, method int
}

// Parse reads every data row. Rows whose amount is present but not a number
// are dropped; blank fields fall back to their defaults.
func (p *CSVParser) Parse(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading expense CSV header: %w", err)
	}

	idx, err := p.locate(header)
	if err != nil {
		return nil, err
	}

	var expenses []model.Expense
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading expense CSV: %w", err)
		}

		e, err := parseRow(rec, idx)
		if err != nil {
			p.logger().Debug("dropping row", "line", line, "error", err)
			continue
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func (p *CSVParser) locate(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		// A repeated name resolves to its last occurrence.
		pos[h] = i
	}

	find := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, fmt.Errorf("missing column %q in header", name)
		}
		return i, nil
	}

	var idx columnIndex
	var err error
	if idx.id, err = find(p.Columns.ID); err != nil {
		return idx, err
	}
	if idx.category, err = find(p.Columns.Category); err != nil {
		return idx, err
	}
	if idx.amount, err = find(p.Columns.Amount); err != nil {
		return idx, err
	}
	if idx.date, err = find(p.Columns.Date); err != nil {
		return idx, err
	}
	if idx.method, err = find(p.Columns.PaymentMethod); err != nil {
		return idx, err
	}
	return idx, nil
}

func parseRow(rec []string, idx columnIndex) (model.Expense, error) {
	field := func(i int) string {
		if i < len(rec) {
			return rec[i]
		}
		return ""
	}

	amount := decimal.Zero
	if raw := field(idx.amount); raw != "" {
		var err error
		amount, err = decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return model.Expense{}, fmt.Errorf("parsing amount %q: %w", raw, err)
		}
		if exp := amount.Exponent(); exp < -maxAmountExponent || exp > maxAmountExponent {
			return model.Expense{}, fmt.Errorf("amount %q: exponent %d out of range", raw, exp)
		}
	}

	return model.Expense{
		ID:            field(idx.id),
		Category:      orUnknown(field(idx.category)),
		Amount:        amount,
		Date:          field(idx.date),
		PaymentMethod: orUnknown(field(idx.method)),
	}, nil
}

func orUnknown(s string) string {
	if s == "" {
		return model.Unknown
	}
	return s
}

func (p *CSVParser) logger() *slog.Logger {
	if p.Logger == nil {
		return logging.Discard()
	}
	return p.Logger
}
