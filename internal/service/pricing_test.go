package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mountainride-backend/internal/domain"
)

func TestSelectDailyPrice(t *testing.T) {
	rules := []domain.ProductPrice{
		{ID: 1, MinDuration: 1, MaxDuration: 3, DailyPriceCents: 1000},
		{ID: 2, MinDuration: 4, MaxDuration: 7, DailyPriceCents: 800},
	}

	tests := []struct {
		name     string
		duration int32
		want     int32
	}{
		{"first tier", 2, 1000},
		{"lower bound inclusive", 1, 1000},
		{"upper bound inclusive", 7, 800},
		{"second tier", 5, 800},
		{"no tier falls back to base", 10, 1500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectDailyPrice(rules, 1500, tt.duration))
		})
	}
}

func TestSelectDailyPrice_FirstMatchWins(t *testing.T) {
	overlapping := []domain.ProductPrice{
		{ID: 1, MinDuration: 1, MaxDuration: 10, DailyPriceCents: 700},
		{ID: 2, MinDuration: 3, MaxDuration: 5, DailyPriceCents: 500},
	}
	assert.Equal(t, int32(700), SelectDailyPrice(overlapping, 1500, 4))
}

func TestSelectDailyPrice_NoRules(t *testing.T) {
	assert.Equal(t, int32(1500), SelectDailyPrice(nil, 1500, 3))
}

func TestPricingResolver_ResolveDailyPrice(t *testing.T) {
	ctx := context.Background()
	product := &domain.Product{ID: 5, BasePriceCents: 1500}

	t.Run("Success", func(t *testing.T) {
		prices := new(MockProductPriceRepo)
		prices.On("ListByProduct", ctx, int32(5)).Return([]domain.ProductPrice{
			{ProductID: 5, MinDuration: 1, MaxDuration: 3, DailyPriceCents: 900},
		}, nil)

		daily, err := NewPricingResolver(prices).ResolveDailyPrice(ctx, product, 3)
		require.NoError(t, err)
		assert.Equal(t, int32(900), daily)
	})

	t.Run("Store Error", func(t *testing.T) {
		prices := new(MockProductPriceRepo)
		prices.On("ListByProduct", ctx, int32(5)).Return(nil, errors.New("connection reset"))

		_, err := NewPricingResolver(prices).ResolveDailyPrice(ctx, product, 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
