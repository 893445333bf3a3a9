package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDay_DateString(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "date 2024-12-12",
			date:     time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
			expected: "20241212",
		},
		{
			name:     "date 2024-01-01",
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "20240101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := Day{Date: tt.date}
			assert.Equal(t, tt.expected, day.DateString())
		})
	}
}

func TestDayOf_TruncatesTime(t *testing.T) {
	day := DayOf(time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), day.Date)
	assert.Equal(t, DayOf(time.Date(2024, 6, 15, 0, 0, 1, 0, time.UTC)), day)
}

func TestDay_Before(t *testing.T) {
	may31 := DayOf(time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC))
	jun1 := DayOf(time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC))

	assert.True(t, may31.Before(jun1))
	assert.False(t, jun1.Before(may31))
	assert.False(t, jun1.Before(jun1))
}

func TestDay_DisplayString(t *testing.T) {
	today := DayOf(time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "today",
			date:     time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC),
			expected: "hari ini",
		},
		{
			name:     "yesterday",
			date:     time.Date(2024, 6, 14, 1, 0, 0, 0, time.UTC),
			expected: "kemarin",
		},
		{
			name:     "earlier in the month before",
			date:     time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			expected: "31.05.2024",
		},
		{
			name:     "specific date",
			date:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			expected: "02.01.2024",
		},
		{
			name:     "never reset",
			date:     time.Time{},
			expected: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := Day{Date: tt.date}
			assert.Equal(t, tt.expected, day.DisplayString(today, "hari ini", "kemarin"))
		})
	}
}

func TestDay_DisplayString_MonthBoundary(t *testing.T) {
	today := DayOf(time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	feb29 := DayOf(time.Date(2024, 2, 29, 20, 0, 0, 0, time.UTC))

	assert.Equal(t, "yesterday", feb29.DisplayString(today, "today", "yesterday"))
}
