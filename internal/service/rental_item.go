package service

import (
	"context"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/repository"
)

// rentalItemService edits line items directly. Like the plain rental
// operations it has no pricing or inventory side effects.
type rentalItemService struct {
	itemRepo    repository.RentalItemRepository
	rentalRepo  repository.RentalRepository
	productRepo repository.ProductRepository
}

func NewRentalItemService(itemRepo repository.RentalItemRepository, rentalRepo repository.RentalRepository, productRepo repository.ProductRepository) RentalItemService {
	return &rentalItemService{itemRepo: itemRepo, rentalRepo: rentalRepo, productRepo: productRepo}
}

func (s *rentalItemService) ListRentalItems(ctx context.Context) ([]domain.RentalItem, error) {
	return s.itemRepo.List(ctx)
}

func (s *rentalItemService) GetRentalItem(ctx context.Context, id int32) (*domain.RentalItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *rentalItemService) CreateRentalItem(ctx context.Context, item *domain.RentalItem) error {
	if err := s.checkRefs(ctx, item); err != nil {
		return err
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *rentalItemService) UpdateRentalItem(ctx context.Context, item *domain.RentalItem) error {
	if err := s.checkRefs(ctx, item); err != nil {
		return err
	}
	return s.itemRepo.Update(ctx, item)
}

func (s *rentalItemService) DeleteRentalItem(ctx context.Context, id int32) error {
	return s.itemRepo.Delete(ctx, id)
}

func (s *rentalItemService) checkRefs(ctx context.Context, item *domain.RentalItem) error {
	if _, err := s.rentalRepo.GetByID(ctx, item.RentalID); err != nil {
		return err
	}
	if _, err := s.productRepo.GetByID(ctx, item.ProductID); err != nil {
		return err
	}
	return nil
}
