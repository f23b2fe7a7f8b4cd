package service

import (
	"context"
	"strings"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if strings.TrimSpace(customer.Email) == "" {
		return domain.ErrCustomerInvalid
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if strings.TrimSpace(customer.Email) == "" {
		return domain.ErrCustomerInvalid
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	return s.customerRepo.Delete(ctx, id)
}
