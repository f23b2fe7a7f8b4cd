package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the yyyy-mm-dd form rental dates are exchanged in
const DateLayout = "2006-01-02"

// CalendarDay truncates t to midnight UTC of its UTC calendar date
func CalendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}

// ParseDate converts a yyyy-mm-dd formatted string into a midnight UTC time
func ParseDate(dateStr string) (time.Time, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("day must be between 1 and %d", DaysInMonth(year, month))
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
