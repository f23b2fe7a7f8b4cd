package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"mountainride-backend/internal/domain"
)

var codeSpace = big.NewInt(10_000_000_000)

// Clock abstracts the current time for date stamping
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RentalCodeGenerator produces LOCMR-<year>-<10 digits> codes
type RentalCodeGenerator struct {
	clock Clock
}

func NewRentalCodeGenerator(clock Clock) *RentalCodeGenerator {
	if clock == nil {
		clock = realClock{}
	}
	return &RentalCodeGenerator{clock: clock}
}

func (g *RentalCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to draw rental code: %w", err)
	}
	return fmt.Sprintf("%s-%04d-%010d", domain.RentalCodePrefix, g.clock.Now().Year(), n.Int64()), nil
}
