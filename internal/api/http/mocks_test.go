package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mountainride-backend/internal/domain"
)

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) StartRental(ctx context.Context, req domain.NewRentalRequest) (*domain.Rental, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) FinishRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) Search(ctx context.Context, c domain.SearchCriteria) ([]domain.Rental, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CreateRental(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalService) UpdateRental(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalService) DeleteRental(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalService) ListRentalItems(ctx context.Context, id int32) ([]domain.RentalItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalItem), args.Error(1)
}
func (m *MockRentalService) ListRentalsByCustomer(ctx context.Context, id int32) ([]domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.Employee, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Employee), args.Error(2)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }
