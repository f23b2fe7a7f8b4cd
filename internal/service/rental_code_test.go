package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rentalCodePattern = regexp.MustCompile(`^LOCMR-\d{4}-\d{10}$`)

func TestRentalCodeGenerator_Format(t *testing.T) {
	gen := NewRentalCodeGenerator(fixedClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)})

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Regexp(t, rentalCodePattern, code)
	assert.Equal(t, "LOCMR-2026-", code[:11])
}

func TestRentalCodeGenerator_Distinct(t *testing.T) {
	gen := NewRentalCodeGenerator(nil)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, rentalCodePattern, code)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
