package service

import (
	"context"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
)

type productTypeService struct {
	typeRepo    repository.ProductTypeRepository
	productRepo repository.ProductRepository
}

func NewProductTypeService(typeRepo repository.ProductTypeRepository, productRepo repository.ProductRepository) ProductTypeService {
	return &productTypeService{typeRepo: typeRepo, productRepo: productRepo}
}

func (s *productTypeService) ListProductTypes(ctx context.Context) ([]domain.ProductType, error) {
	return s.typeRepo.List(ctx)
}

func (s *productTypeService) GetProductType(ctx context.Context, id int32) (*domain.ProductType, error) {
	return s.typeRepo.GetByID(ctx, id)
}

func (s *productTypeService) CreateProductType(ctx context.Context, pt *domain.ProductType) error {
	if pt.Name == "" {
		return domain.InvalidArgument("product type name is required")
	}
	return s.typeRepo.Create(ctx, pt)
}

func (s *productTypeService) UpdateProductType(ctx context.Context, pt *domain.ProductType) error {
	if pt.Name == "" {
		return domain.InvalidArgument("product type name is required")
	}
	return s.typeRepo.Update(ctx, pt)
}

func (s *productTypeService) DeleteProductType(ctx context.Context, id int32) error {
	return s.typeRepo.Delete(ctx, id)
}

func (s *productTypeService) ListProductsByType(ctx context.Context, productTypeID int32) ([]domain.Product, error) {
	if _, err := s.typeRepo.GetByID(ctx, productTypeID); err != nil {
		return nil, err
	}
	return s.productRepo.ListByType(ctx, productTypeID)
}

type productService struct {
	productRepo repository.ProductRepository
	typeRepo    repository.ProductTypeRepository
}

func NewProductService(productRepo repository.ProductRepository, typeRepo repository.ProductTypeRepository) ProductService {
	return &productService{productRepo: productRepo, typeRepo: typeRepo}
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) GetProduct(ctx context.Context, id int32) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// CreateProduct registers a new unit. New products always start available.
func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) error {
	logger.EnterMethod("productService.CreateProduct", "name", product.Name, "typeID", product.ProductTypeID)

	if err := s.validate(ctx, product); err != nil {
		logger.ExitMethodWithError("productService.CreateProduct", err)
		return err
	}
	product.Available = true
	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.ExitMethodWithError("productService.CreateProduct", err)
		return err
	}

	logger.ExitMethod("productService.CreateProduct", "productID", product.ID)
	return nil
}

// UpdateProduct copies catalog fields. Availability is owned by the rental
// flow and is left untouched.
func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if err := s.validate(ctx, product); err != nil {
		return err
	}
	return s.productRepo.Update(ctx, product)
}

func (s *productService) DeleteProduct(ctx context.Context, id int32) error {
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) validate(ctx context.Context, product *domain.Product) error {
	if product.BasePriceCents < 0 {
		return domain.InvalidArgument("base price cannot be negative")
	}
	if _, err := s.typeRepo.GetByID(ctx, product.ProductTypeID); err != nil {
		return err
	}
	return nil
}

type productPriceService struct {
	priceRepo   repository.ProductPriceRepository
	productRepo repository.ProductRepository
}

func NewProductPriceService(priceRepo repository.ProductPriceRepository, productRepo repository.ProductRepository) ProductPriceService {
	return &productPriceService{priceRepo: priceRepo, productRepo: productRepo}
}

func (s *productPriceService) ListProductPrices(ctx context.Context) ([]domain.ProductPrice, error) {
	return s.priceRepo.List(ctx)
}

func (s *productPriceService) GetProductPrice(ctx context.Context, id int32) (*domain.ProductPrice, error) {
	return s.priceRepo.GetByID(ctx, id)
}

// Overlapping tiers are accepted; the lowest id wins at pricing time.
func (s *productPriceService) CreateProductPrice(ctx context.Context, price *domain.ProductPrice) error {
	if err := s.validate(ctx, price); err != nil {
		return err
	}
	return s.priceRepo.Create(ctx, price)
}

func (s *productPriceService) UpdateProductPrice(ctx context.Context, price *domain.ProductPrice) error {
	if err := s.validate(ctx, price); err != nil {
		return err
	}
	return s.priceRepo.Update(ctx, price)
}

func (s *productPriceService) DeleteProductPrice(ctx context.Context, id int32) error {
	return s.priceRepo.Delete(ctx, id)
}

func (s *productPriceService) ListPricesByProduct(ctx context.Context, productID int32) ([]domain.ProductPrice, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.priceRepo.ListByProduct(ctx, productID)
}

func (s *productPriceService) validate(ctx context.Context, price *domain.ProductPrice) error {
	if price.MinDuration > price.MaxDuration {
		return domain.InvalidArgument("min duration %d exceeds max duration %d", price.MinDuration, price.MaxDuration)
	}
	if price.DailyPriceCents < 0 {
		return domain.InvalidArgument("daily price cannot be negative")
	}
	if _, err := s.productRepo.GetByID(ctx, price.ProductID); err != nil {
		return err
	}
	return nil
}
