package repository

import (
	"context"
	"time"

	"mountainride-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	// InsertOrGetByEmail inserts the customer unless the email is already
	// registered, in which case customer is overwritten with the stored row.
	InsertOrGetByEmail(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
}

type ProductTypeRepository interface {
	Create(ctx context.Context, pt *domain.ProductType) error
	GetByID(ctx context.Context, id int32) (*domain.ProductType, error)
	List(ctx context.Context) ([]domain.ProductType, error)
	Update(ctx context.Context, pt *domain.ProductType) error
	Delete(ctx context.Context, id int32) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByType(ctx context.Context, productTypeID int32) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int32) error

	// Allocate flips availability from true to false and reports whether
	// this call performed the flip.
	Allocate(ctx context.Context, id int32) (bool, error)
	Release(ctx context.Context, id int32) error
}

type ProductPriceRepository interface {
	Create(ctx context.Context, price *domain.ProductPrice) error
	GetByID(ctx context.Context, id int32) (*domain.ProductPrice, error)
	List(ctx context.Context) ([]domain.ProductPrice, error)
	// ListByProduct returns the tiers in storage order.
	ListByProduct(ctx context.Context, productID int32) ([]domain.ProductPrice, error)
	Update(ctx context.Context, price *domain.ProductPrice) error
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	// TryCreate inserts the rental unless its code is taken. It returns false
	// without error on a code collision.
	TryCreate(ctx context.Context, rental *domain.Rental) (bool, error)
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int32) error

	ListByCode(ctx context.Context, code string) ([]domain.Rental, error)
	ListByCustomerLastName(ctx context.Context, lastName string) ([]domain.Rental, error)
	ListByCustomerPhone(ctx context.Context, phoneNumber string) ([]domain.Rental, error)
	ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error)
	// ListOverdue returns active rentals whose longest item ends before asOf.
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error)
}

type RentalItemRepository interface {
	Create(ctx context.Context, item *domain.RentalItem) error
	GetByID(ctx context.Context, id int32) (*domain.RentalItem, error)
	List(ctx context.Context) ([]domain.RentalItem, error)
	ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalItem, error)
	Update(ctx context.Context, item *domain.RentalItem) error
	Delete(ctx context.Context, id int32) error
}

type EmployeeRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
}

// Repositories is one consistent set of stores, either bound to the pool or
// to a single transaction.
type Repositories struct {
	Customers     CustomerRepository
	ProductTypes  ProductTypeRepository
	Products      ProductRepository
	ProductPrices ProductPriceRepository
	Rentals       RentalRepository
	RentalItems   RentalItemRepository
}

// TxManager runs fn against repositories sharing one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}
