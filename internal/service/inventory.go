package service

import (
	"context"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
)

// InventoryGate guards product availability. Allocate is a compare-and-swap
// on the availability flag, so two callers can never both hold a product.
type InventoryGate struct {
	products repository.ProductRepository
}

func NewInventoryGate(products repository.ProductRepository) *InventoryGate {
	return &InventoryGate{products: products}
}

// CheckAvailable loads the product and fails with a conflict if it is
// already out. It is an early exit only; Allocate is authoritative.
func (g *InventoryGate) CheckAvailable(ctx context.Context, productID int32) (*domain.Product, error) {
	product, err := g.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available {
		return nil, domain.ProductNotAvailable(productID)
	}
	return product, nil
}

func (g *InventoryGate) Allocate(ctx context.Context, productID int32) error {
	ok, err := g.products.Allocate(ctx, productID)
	if err != nil {
		return err
	}
	if !ok {
		logger.Warn("Product allocation lost", "productID", productID)
		return domain.ProductNotAvailable(productID)
	}
	return nil
}

// Release marks the product available again. Releasing an available
// product is a no-op.
func (g *InventoryGate) Release(ctx context.Context, productID int32) error {
	return g.products.Release(ctx, productID)
}
