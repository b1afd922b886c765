package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2024-01-05", Date{2024, time.January, 5}},
		{"2024-1-5", Date{2024, time.January, 5}},
		{"2023-12-31", Date{2023, time.December, 31}},
		{"2024-02-29", Date{2024, time.February, 29}},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		require.NoError(t, err, "ParseDate(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseDate(%q)", tt.in)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"not-a-date", "2024/01/05", "05-01-2024", "2023-02-29", "2024-13-01", "2024-01-05T10:00:00"} {
		_, err := ParseDate(in)
		assert.Error(t, err, "ParseDate(%q)", in)
	}
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2024-01-05", Date{2024, time.January, 5}.String())
	assert.Equal(t, "0999-11-30", Date{999, time.November, 30}.String())
}

func TestExpenseHasDate(t *testing.T) {
	assert.True(t, Expense{Date: "2024-01-05"}.HasDate())
	assert.True(t, Expense{Date: "garbage"}.HasDate())
	assert.False(t, Expense{}.HasDate())
}
