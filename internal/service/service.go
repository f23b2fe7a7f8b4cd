package service

import (
	"context"

	"mountainride-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Employee, error) // access token, employee
}

type RentalService interface {
	// StartRental books every requested product for the customer in one
	// transaction. Nothing persists unless every item could be allocated.
	StartRental(ctx context.Context, req domain.NewRentalRequest) (*domain.Rental, error)
	FinishRental(ctx context.Context, rentalID int32) (*domain.Rental, error)
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Rental, error)

	ListRentals(ctx context.Context) ([]domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	CreateRental(ctx context.Context, rental *domain.Rental) error
	UpdateRental(ctx context.Context, rental *domain.Rental) error
	DeleteRental(ctx context.Context, id int32) error
	ListRentalItems(ctx context.Context, rentalID int32) ([]domain.RentalItem, error)
	ListRentalsByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int32) error
}

type ProductTypeService interface {
	ListProductTypes(ctx context.Context) ([]domain.ProductType, error)
	GetProductType(ctx context.Context, id int32) (*domain.ProductType, error)
	CreateProductType(ctx context.Context, pt *domain.ProductType) error
	UpdateProductType(ctx context.Context, pt *domain.ProductType) error
	DeleteProductType(ctx context.Context, id int32) error
	ListProductsByType(ctx context.Context, productTypeID int32) ([]domain.Product, error)
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int32) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int32) error
}

type ProductPriceService interface {
	ListProductPrices(ctx context.Context) ([]domain.ProductPrice, error)
	GetProductPrice(ctx context.Context, id int32) (*domain.ProductPrice, error)
	CreateProductPrice(ctx context.Context, price *domain.ProductPrice) error
	UpdateProductPrice(ctx context.Context, price *domain.ProductPrice) error
	DeleteProductPrice(ctx context.Context, id int32) error
	ListPricesByProduct(ctx context.Context, productID int32) ([]domain.ProductPrice, error)
}

type RentalItemService interface {
	ListRentalItems(ctx context.Context) ([]domain.RentalItem, error)
	GetRentalItem(ctx context.Context, id int32) (*domain.RentalItem, error)
	CreateRentalItem(ctx context.Context, item *domain.RentalItem) error
	UpdateRentalItem(ctx context.Context, item *domain.RentalItem) error
	DeleteRentalItem(ctx context.Context, id int32) error
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, customer *domain.Customer, rental *domain.Rental) error
	SendRentalCompletion(ctx context.Context, customer *domain.Customer, rental *domain.Rental) error
	SendOverdueReport(ctx context.Context, to string, overdue []domain.Rental) error
}
