package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/repository"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) InsertOrGetByEmail(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductTypeRepo
type MockProductTypeRepo struct {
	mock.Mock
}

func (m *MockProductTypeRepo) Create(ctx context.Context, pt *domain.ProductType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}
func (m *MockProductTypeRepo) GetByID(ctx context.Context, id int32) (*domain.ProductType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductType), args.Error(1)
}
func (m *MockProductTypeRepo) List(ctx context.Context) ([]domain.ProductType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProductType), args.Error(1)
}
func (m *MockProductTypeRepo) Update(ctx context.Context, pt *domain.ProductType) error {
	args := m.Called(ctx, pt)
	return args.Error(0)
}
func (m *MockProductTypeRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) ListByType(ctx context.Context, typeID int32) ([]domain.Product, error) {
	args := m.Called(ctx, typeID)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepo) Allocate(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockProductRepo) Release(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductPriceRepo
type MockProductPriceRepo struct {
	mock.Mock
}

func (m *MockProductPriceRepo) Create(ctx context.Context, p *domain.ProductPrice) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductPriceRepo) GetByID(ctx context.Context, id int32) (*domain.ProductPrice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductPrice), args.Error(1)
}
func (m *MockProductPriceRepo) List(ctx context.Context) ([]domain.ProductPrice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProductPrice), args.Error(1)
}
func (m *MockProductPriceRepo) ListByProduct(ctx context.Context, productID int32) ([]domain.ProductPrice, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPrice), args.Error(1)
}
func (m *MockProductPriceRepo) Update(ctx context.Context, p *domain.ProductPrice) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProductPriceRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) TryCreate(ctx context.Context, r *domain.Rental) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByCode(ctx context.Context, code string) ([]domain.Rental, error) {
	args := m.Called(ctx, code)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByCustomerLastName(ctx context.Context, lastName string) ([]domain.Rental, error) {
	args := m.Called(ctx, lastName)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByCustomerPhone(ctx context.Context, phone string) ([]domain.Rental, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockRentalItemRepo
type MockRentalItemRepo struct {
	mock.Mock
}

func (m *MockRentalItemRepo) Create(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockRentalItemRepo) GetByID(ctx context.Context, id int32) (*domain.RentalItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) List(ctx context.Context) ([]domain.RentalItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalItem, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalItemRepo) Update(ctx context.Context, item *domain.RentalItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockRentalItemRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, c *domain.Customer, r *domain.Rental) error {
	args := m.Called(ctx, c, r)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalCompletion(ctx context.Context, c *domain.Customer, r *domain.Rental) error {
	args := m.Called(ctx, c, r)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueReport(ctx context.Context, to string, overdue []domain.Rental) error {
	args := m.Called(ctx, to, overdue)
	return args.Error(0)
}

// fakeTx runs fn against fixed repositories and records the outcome
type fakeTx struct {
	repos     *repository.Repositories
	committed bool
	rolled    bool
}

func (f *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context, repos *repository.Repositories) error) error {
	if err := fn(ctx, f.repos); err != nil {
		f.rolled = true
		return err
	}
	f.committed = true
	return nil
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type mockRepos struct {
	customers *MockCustomerRepo
	types     *MockProductTypeRepo
	products  *MockProductRepo
	prices    *MockProductPriceRepo
	rentals   *MockRentalRepo
	items     *MockRentalItemRepo
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		customers: new(MockCustomerRepo),
		types:     new(MockProductTypeRepo),
		products:  new(MockProductRepo),
		prices:    new(MockProductPriceRepo),
		rentals:   new(MockRentalRepo),
		items:     new(MockRentalItemRepo),
	}
}

func (m *mockRepos) set() *repository.Repositories {
	return &repository.Repositories{
		Customers:     m.customers,
		ProductTypes:  m.types,
		Products:      m.products,
		ProductPrices: m.prices,
		Rentals:       m.rentals,
		RentalItems:   m.items,
	}
}
