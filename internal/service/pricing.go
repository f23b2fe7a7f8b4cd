package service

import (
	"context"
	"fmt"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/repository"
)

// SelectDailyPrice returns the daily price of the first tier covering
// duration, in the order given, or basePrice when none does.
func SelectDailyPrice(rules []domain.ProductPrice, basePrice, duration int32) int32 {
	for _, rule := range rules {
		if rule.Covers(duration) {
			return rule.DailyPriceCents
		}
	}
	return basePrice
}

// PricingResolver picks the per-day price a product is rented at
type PricingResolver struct {
	prices repository.ProductPriceRepository
}

func NewPricingResolver(prices repository.ProductPriceRepository) *PricingResolver {
	return &PricingResolver{prices: prices}
}

func (r *PricingResolver) ResolveDailyPrice(ctx context.Context, product *domain.Product, duration int32) (int32, error) {
	rules, err := r.prices.ListByProduct(ctx, product.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to load price tiers for product %d: %w", product.ID, err)
	}
	return SelectDailyPrice(rules, product.BasePriceCents, duration), nil
}
