package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		daily    int32
		duration int32
		want     int32
		ok       bool
	}{
		{"small", 900, 3, 2700, true},
		{"free", 0, 5, 0, true},
		{"exactly max", math.MaxInt32, 1, math.MaxInt32, true},
		{"max split over days", 1 << 15, 1<<16 - 1, (1 << 15) * (1<<16 - 1), true},
		{"one cent past max", 1 << 30, 2, 0, false},
		{"large duration wraps in int32", 50000, 100000, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LineTotal(tt.daily, tt.duration)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddCents(t *testing.T) {
	sum, ok := AddCents(math.MaxInt32-1, 1)
	assert.True(t, ok)
	assert.Equal(t, int32(math.MaxInt32), sum)

	_, ok = AddCents(math.MaxInt32, 1)
	assert.False(t, ok)

	_, ok = AddCents(2_000_000_000, 2_000_000_000)
	assert.False(t, ok)
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "9.00", FormatCents(900))
	assert.Equal(t, "27.05", FormatCents(2705))
	assert.Equal(t, "0.99", FormatCents(99))
	assert.Equal(t, "-1.50", FormatCents(-150))
	assert.Equal(t, "-21474836.48", FormatCents(math.MinInt32))
}
