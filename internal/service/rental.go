package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
	"mountainride-backend/internal/utils"
)

// maxCodeAttempts bounds rental-code regeneration after a collision
const maxCodeAttempts = 5

type rentalService struct {
	tx       repository.TxManager
	repos    *repository.Repositories
	codes    *RentalCodeGenerator
	clock    Clock
	emailSvc EmailService
}

func NewRentalService(
	tx repository.TxManager,
	repos *repository.Repositories,
	codes *RentalCodeGenerator,
	clock Clock,
	emailSvc EmailService,
) RentalService {
	if clock == nil {
		clock = realClock{}
	}
	return &rentalService{
		tx:       tx,
		repos:    repos,
		codes:    codes,
		clock:    clock,
		emailSvc: emailSvc,
	}
}

// today returns the calendar date of the clock as a midnight UTC time
func (s *rentalService) today() time.Time {
	return utils.CalendarDay(s.clock.Now())
}

func validateNewRental(req domain.NewRentalRequest) error {
	if strings.TrimSpace(req.Customer.Email) == "" {
		return domain.ErrCustomerInvalid
	}
	if len(req.Items) == 0 {
		return domain.InvalidArgument("a rental needs at least one item")
	}
	for i, line := range req.Items {
		if line.Duration <= 0 {
			return domain.InvalidArgument("item %d: duration must be positive, got %d", i, line.Duration)
		}
	}
	return nil
}

func (s *rentalService) StartRental(ctx context.Context, req domain.NewRentalRequest) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.StartRental", "email", req.Customer.Email, "items", len(req.Items))

	if err := validateNewRental(req); err != nil {
		logger.ExitMethodWithError("rentalService.StartRental", err)
		return nil, err
	}

	var (
		rental   *domain.Rental
		customer domain.Customer
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		customer = req.Customer
		customer.ID = 0
		if err := repos.Customers.InsertOrGetByEmail(ctx, &customer); err != nil {
			return fmt.Errorf("failed to resolve customer: %w", err)
		}

		start := s.today()
		rental = &domain.Rental{
			CustomerID: customer.ID,
			StartDate:  &start,
			Status:     domain.RentalStatusActive,
		}
		if err := s.insertWithFreshCode(ctx, repos.Rentals, rental); err != nil {
			return err
		}

		pricing := NewPricingResolver(repos.ProductPrices)
		gate := NewInventoryGate(repos.Products)

		for i, line := range req.Items {
			product, err := gate.CheckAvailable(ctx, line.ProductID)
			if err != nil {
				return err
			}

			daily, err := pricing.ResolveDailyPrice(ctx, product, line.Duration)
			if err != nil {
				return err
			}

			final, ok := utils.LineTotal(daily, line.Duration)
			if !ok {
				return domain.InvalidArgument("item %d: %d day(s) at %d cents/day exceeds the maximum storable price", i, line.Duration, daily)
			}
			total, ok := utils.AddCents(rental.TotalPriceCents, final)
			if !ok {
				return domain.InvalidArgument("item %d: rental total exceeds the maximum storable price", i)
			}

			item := domain.RentalItem{
				RentalID:        rental.ID,
				ProductID:       product.ID,
				Duration:        line.Duration,
				DailyPriceCents: daily,
				FinalPriceCents: final,
			}
			if err := repos.RentalItems.Create(ctx, &item); err != nil {
				return fmt.Errorf("failed to save rental item for product %d: %w", product.ID, err)
			}

			if err := gate.Allocate(ctx, product.ID); err != nil {
				return err
			}

			rental.TotalPriceCents = total
			rental.Items = append(rental.Items, item)
		}

		return repos.Rentals.Update(ctx, rental)
	})
	if err != nil {
		logger.ExitMethodWithError("rentalService.StartRental", err, "email", req.Customer.Email)
		return nil, err
	}

	if err := s.emailSvc.SendRentalConfirmation(ctx, &customer, rental); err != nil {
		logger.Warn("Failed to send rental confirmation", "rentalID", rental.ID, "error", err)
	}

	logger.ExitMethod("rentalService.StartRental", "rentalID", rental.ID, "code", rental.Code, "totalCents", rental.TotalPriceCents)
	return rental, nil
}

// insertWithFreshCode stores the rental under a newly generated code,
// drawing again when the code is already taken.
func (s *rentalService) insertWithFreshCode(ctx context.Context, rentals repository.RentalRepository, rental *domain.Rental) error {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			return err
		}
		rental.Code = code

		created, err := rentals.TryCreate(ctx, rental)
		if err != nil {
			return fmt.Errorf("failed to save rental: %w", err)
		}
		if created {
			return nil
		}
		logger.Warn("Rental code collision, regenerating", "code", code, "attempt", attempt)
	}
	return fmt.Errorf("%w after %d attempts", domain.ErrRentalCodeTaken, maxCodeAttempts)
}

func (s *rentalService) FinishRental(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	logger.EnterMethod("rentalService.FinishRental", "rentalID", rentalID)

	var rental *domain.Rental
	err := s.tx.RunInTx(ctx, func(ctx context.Context, repos *repository.Repositories) error {
		var err error
		rental, err = repos.Rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}

		items, err := repos.RentalItems.ListByRental(ctx, rentalID)
		if err != nil {
			return err
		}

		end := s.today()
		rental.EndDate = &end
		rental.Status = domain.RentalStatusCompleted

		gate := NewInventoryGate(repos.Products)
		for _, item := range items {
			if err := gate.Release(ctx, item.ProductID); err != nil {
				return fmt.Errorf("failed to release product %d: %w", item.ProductID, err)
			}
		}
		rental.Items = items

		return repos.Rentals.Update(ctx, rental)
	})
	if err != nil {
		logger.ExitMethodWithError("rentalService.FinishRental", err, "rentalID", rentalID)
		return nil, err
	}

	if customer, err := s.repos.Customers.GetByID(ctx, rental.CustomerID); err != nil {
		logger.Warn("Failed to load customer for completion email", "rentalID", rentalID, "error", err)
	} else if err := s.emailSvc.SendRentalCompletion(ctx, customer, rental); err != nil {
		logger.Warn("Failed to send rental completion", "rentalID", rentalID, "error", err)
	}

	logger.ExitMethod("rentalService.FinishRental", "rentalID", rentalID, "released", len(rental.Items))
	return rental, nil
}

// Search uses the first non-empty criterion: code, then last name, then
// phone number. No criterion yields an empty result.
func (s *rentalService) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Rental, error) {
	var (
		rentals []domain.Rental
		field   string
		value   string
		err     error
	)

	switch {
	case criteria.Code != "":
		field, value = "code", criteria.Code
		rentals, err = s.repos.Rentals.ListByCode(ctx, value)
	case criteria.LastName != "":
		field, value = "last name", criteria.LastName
		rentals, err = s.repos.Rentals.ListByCustomerLastName(ctx, value)
	case criteria.PhoneNumber != "":
		field, value = "phone number", criteria.PhoneNumber
		rentals, err = s.repos.Rentals.ListByCustomerPhone(ctx, value)
	default:
		return []domain.Rental{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return nil, &domain.SearchNotFoundError{Field: field, Value: value}
	}

	if err := s.attachItems(ctx, rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (s *rentalService) attachItems(ctx context.Context, rentals []domain.Rental) error {
	for i := range rentals {
		items, err := s.repos.RentalItems.ListByRental(ctx, rentals[i].ID)
		if err != nil {
			return err
		}
		rentals[i].Items = items
	}
	return nil
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.repos.Rentals.List(ctx)
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	rental, err := s.repos.Rentals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.repos.RentalItems.ListByRental(ctx, id)
	if err != nil {
		return nil, err
	}
	rental.Items = items
	return rental, nil
}

// CreateRental stores a rental as given. It never touches inventory or
// pricing and is meant for administrative corrections.
func (s *rentalService) CreateRental(ctx context.Context, rental *domain.Rental) error {
	if _, err := s.repos.Customers.GetByID(ctx, rental.CustomerID); err != nil {
		return err
	}
	return s.repos.Rentals.Create(ctx, rental)
}

func (s *rentalService) UpdateRental(ctx context.Context, rental *domain.Rental) error {
	if _, err := s.repos.Rentals.GetByID(ctx, rental.ID); err != nil {
		return err
	}
	if _, err := s.repos.Customers.GetByID(ctx, rental.CustomerID); err != nil {
		return err
	}
	return s.repos.Rentals.Update(ctx, rental)
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	return s.repos.Rentals.Delete(ctx, id)
}

func (s *rentalService) ListRentalItems(ctx context.Context, rentalID int32) ([]domain.RentalItem, error) {
	if _, err := s.repos.Rentals.GetByID(ctx, rentalID); err != nil {
		return nil, err
	}
	return s.repos.RentalItems.ListByRental(ctx, rentalID)
}

func (s *rentalService) ListRentalsByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error) {
	if _, err := s.repos.Customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.repos.Rentals.ListByCustomer(ctx, customerID)
}
