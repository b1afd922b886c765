package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/expensereport/internal/aggregate"
	"github.com/cleared-dev/expensereport/internal/model"
)

func exp(category, amount, date, method string) model.Expense {
	return model.Expense{
		Category:      category,
		Amount:        decimal.RequireFromString(amount),
		Date:          date,
		PaymentMethod: method,
	}
}

func sampleSummary() *aggregate.Summary {
	return aggregate.Aggregate([]model.Expense{
		exp("Food", "10", "2024-01-05", "Cash"),
		exp("Food", "5", "2024-01-05", "Credit Card"),
		exp("Rent", "50", "2024-03-01", "Bank Transfer"),
		exp("Travel", "20", "2024-03-09", "Cash"),
	})
}

const wantText = `Total Expense: $85.00

Total by Expense Type:
Food: $15.00
Rent: $50.00
Travel: $20.00

Total by Payment Method:
Cash: $30.00
Credit Card: $5.00
Bank Transfer: $50.00

Top 3 Expense Types:
Rent: $50.00
Travel: $20.00
Food: $15.00

Day with Highest Expenses: 2024-03-01 with $50.00

Month-wise Total Expenses:
01: $15.00
03: $70.00

Expense Type Breakdown by Payment Method:
Expense Type         Credit Card     Cash            Total
-----------------------------------------------------------------
Food                 $5.00           $10.00          $15.00
Rent                 $0.00           $0.00           $0.00
Travel               $0.00           $20.00          $20.00
-----------------------------------------------------------------
Total                $5.00           $30.00          $85.00
`

// trimLines drops trailing padding, which the fixed-width table leaves behind.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleSummary(), DefaultOptions()))
	assert.Equal(t, wantText, trimLines(buf.String()))
}

func TestText_ColumnPadding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleSummary(), DefaultOptions()))
	assert.Contains(t, buf.String(), "Total                $5.00           $30.00          $85.00         \n")
}

func TestText_EmptySummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, aggregate.Aggregate(nil), DefaultOptions()))
	out := trimLines(buf.String())

	assert.True(t, strings.HasPrefix(out, "Total Expense: $0.00\n"))
	assert.NotContains(t, out, "Day with Highest Expenses")
	assert.Contains(t, out, "Month-wise Total Expenses:\n\n")
	assert.Contains(t, out, "Total                $0.00           $0.00           $0.00\n")
}

func TestText_Options(t *testing.T) {
	opts := Options{TopN: 1, Currency: "€", BreakdownMethods: []string{"Bank Transfer"}}
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleSummary(), opts))
	out := trimLines(buf.String())

	assert.Contains(t, out, "Top 1 Expense Types:\nRent: €50.00\n\n")
	assert.Contains(t, out, "Expense Type         Bank Transfer   Total\n")
	assert.Contains(t, out, "Rent                 €50.00          €50.00\n")
	assert.Contains(t, out, strings.Repeat("-", 50)+"\n")
}

func TestText_NegativeAmount(t *testing.T) {
	s := aggregate.Aggregate([]model.Expense{exp("Refund", "-5", "", "Cash")})
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, s, DefaultOptions()))
	assert.Contains(t, buf.String(), "Total Expense: $-5.00\n")
}

func TestJSON(t *testing.T) {
	s := aggregate.Aggregate([]model.Expense{
		exp("Food", "10", "2024-01-05", "Cash"),
		exp("Travel", "20", "not-a-date", "Bank Transfer"),
	})

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, s, DefaultOptions()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "30.00", doc["total"])
	assert.EqualValues(t, 2, doc["records"])
	assert.Equal(t, []any{"not-a-date"}, doc["invalid_dates"])
	assert.Equal(t, "20.00", doc["undated"])
	assert.Equal(t, map[string]any{"date": "2024-01-05", "amount": "10.00"}, doc["peak_day"])
	assert.Equal(t, []any{map[string]any{"month": float64(1), "amount": "10.00"}}, doc["monthly"])

	top := doc["top_categories"].([]any)
	require.Len(t, top, 2)
	assert.Equal(t, "Travel", top[0].(map[string]any)["name"])

	breakdown := doc["breakdown"].([]any)
	require.Len(t, breakdown, 2)
	travel := breakdown[1].(map[string]any)
	assert.Equal(t, "Travel", travel["category"])
	assert.Equal(t, []any{map[string]any{"name": "Bank Transfer", "amount": "20.00"}}, travel["methods"])
}

func TestJSON_EmptyHasNoPeakDay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, aggregate.Aggregate(nil), DefaultOptions()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.NotContains(t, doc, "peak_day")
	assert.Equal(t, "0.00", doc["total"])
	assert.Equal(t, []any{}, doc["daily"])
	assert.Equal(t, []any{}, doc["breakdown"])
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, sampleSummary()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"category", "payment_method", "amount"},
		{"Food", "Cash", "10.00"},
		{"Food", "Credit Card", "5.00"},
		{"Rent", "Bank Transfer", "50.00"},
		{"Travel", "Cash", "20.00"},
	}, rows)
}

func TestRender(t *testing.T) {
	s := sampleSummary()
	for _, f := range append(Formats(), "TEXT", "") {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, f, s, DefaultOptions()), "format %q", f)
		assert.NotEmpty(t, buf.String(), "format %q", f)
	}

	err := Render(&bytes.Buffer{}, "xml", s, DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown report format "xml"`)
}
