package postgres

import (
	"context"

	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
)

// RunInTx begins a transaction, hands fn a repository set bound to it and
// commits if fn succeeds. Any error from fn rolls everything back.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, repos *repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	repos := &repository.Repositories{
		Customers:     NewCustomerRepository(tx),
		ProductTypes:  NewProductTypeRepository(tx),
		Products:      NewProductRepository(tx),
		ProductPrices: NewProductPriceRepository(tx),
		Rentals:       NewRentalRepository(tx),
		RentalItems:   NewRentalItemRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("Failed to roll back transaction", "error", rbErr, "cause", err)
		}
		return err
	}
	return tx.Commit()
}
