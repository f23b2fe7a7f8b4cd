package utils

import (
	"fmt"
	"math"
)

// LineTotal is the price of renting one product for duration days. ok is
// false when the amount does not fit the INTEGER cents columns.
func LineTotal(dailyCents, duration int32) (total int32, ok bool) {
	return fitCents(int64(dailyCents) * int64(duration))
}

// AddCents sums two amounts with the same range check as LineTotal
func AddCents(a, b int32) (sum int32, ok bool) {
	return fitCents(int64(a) + int64(b))
}

func fitCents(v int64) (int32, bool) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, false
	}
	return int32(v), true
}

// FormatCents renders an amount of cents as "units.cc"
func FormatCents(cents int32) string {
	sign := ""
	v := int64(cents)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
