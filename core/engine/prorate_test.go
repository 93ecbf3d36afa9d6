package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestDaysInMonth covers month lengths including leap Februaries.
func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected int
	}{
		{name: "january", t: date(2026, time.January, 10), expected: 31},
		{name: "april", t: date(2026, time.April, 1), expected: 30},
		{name: "february common", t: date(2026, time.February, 28), expected: 28},
		{name: "february leap", t: date(2028, time.February, 1), expected: 29},
		{name: "december", t: date(2026, time.December, 31), expected: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysInMonth(tt.t))
		})
	}
}

// TestProrate checks the remaining-days billing rule.
func TestProrate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		value    float64
		expected float64
	}{
		{
			name:     "mid month",
			date:     date(2026, time.June, 15),
			value:    3000,
			expected: 3000 * 15.0 / 30.0,
		},
		{
			name:     "first day bills all but one day",
			date:     date(2026, time.June, 1),
			value:    3000,
			expected: 3000 * 29.0 / 30.0,
		},
		{
			name:     "last day is unbilled",
			date:     date(2026, time.June, 30),
			value:    3000,
			expected: 0,
		},
		{
			name:     "last day of 31-day month",
			date:     date(2026, time.July, 31),
			value:    5000,
			expected: 0,
		},
		{
			name:     "leap february mid month",
			date:     date(2028, time.February, 14),
			value:    2900,
			expected: 2900 * 15.0 / 29.0,
		},
		{
			name:     "zero value",
			date:     date(2026, time.June, 10),
			value:    0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Prorate(tt.date, tt.value), 0.0001)
		})
	}
}

// TestProrateBounds ensures the pro-rated amount never exceeds the monthly
// value and never goes negative.
func TestProrateBounds(t *testing.T) {
	value := 1234.56
	for day := 1; day <= 31; day++ {
		d := date(2026, time.January, day)
		got := Prorate(d, value)
		assert.GreaterOrEqual(t, got, 0.0, "day %d", day)
		assert.Less(t, got, value, "day %d", day)
	}
}
