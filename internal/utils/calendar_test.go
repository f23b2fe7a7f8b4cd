package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		date, err := ParseDate("2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("Leap day", func(t *testing.T) {
		_, err := ParseDate("2024-02-29")
		assert.NoError(t, err)
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2024/01/15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})

	t.Run("Invalid month", func(t *testing.T) {
		_, err := ParseDate("2024-13-15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "month must be between 1 and 12")
	})

	t.Run("Day past end of month", func(t *testing.T) {
		_, err := ParseDate("2023-02-29")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "day must be between 1 and 28")
	})
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year     int
		month    int
		expected int
	}{
		{2024, 1, 31},  // January
		{2024, 2, 29},  // February (leap year)
		{2023, 2, 28},  // February (non-leap year)
		{1900, 2, 28},  // century, not leap
		{2000, 2, 29},  // divisible by 400
		{2024, 4, 30},  // April
		{2024, 12, 31}, // December
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DaysInMonth(tt.year, tt.month), "year %d month %d", tt.year, tt.month)
	}
}

func TestCalendarDay(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	got := CalendarDay(time.Date(2026, 2, 11, 0, 30, 0, 0, paris))
	assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2026-02-10", FormatDate(got))
}
