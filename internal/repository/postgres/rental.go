package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
	"mountainride-backend/internal/utils"
)

const rentalColumns = `r.id, r.customer_id, r.code, r.start_date, r.end_date, r.status, r.total_price_cents`

type rentalRepository struct {
	db DBTX
}

func NewRentalRepository(db DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func scanRental(row interface{ Scan(...any) error }, rt *domain.Rental) error {
	return row.Scan(&rt.ID, &rt.CustomerID, &rt.Code, &rt.StartDate, &rt.EndDate, &rt.Status, &rt.TotalPriceCents)
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (customer_id, code, start_date, end_date, status, total_price_cents)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, rt.CustomerID, rt.Code, rt.StartDate, rt.EndDate, rt.Status, rt.TotalPriceCents).Scan(&rt.ID)
	if isUniqueViolation(err) {
		return domain.ErrRentalCodeTaken
	}
	return err
}

func (r *rentalRepository) TryCreate(ctx context.Context, rt *domain.Rental) (bool, error) {
	logger.EnterMethod("rentalRepository.TryCreate", "customerID", rt.CustomerID, "code", rt.Code)

	query := `INSERT INTO rentals (customer_id, code, start_date, end_date, status, total_price_cents)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (code) DO NOTHING
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query, rt.CustomerID, rt.Code, rt.StartDate, rt.EndDate, rt.Status, rt.TotalPriceCents).Scan(&rt.ID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethod("rentalRepository.TryCreate", "code", rt.Code, "collision", true)
		return false, nil
	}
	if err != nil {
		logger.ExitMethodWithError("rentalRepository.TryCreate", err, "code", rt.Code)
		return false, err
	}

	logger.ExitMethod("rentalRepository.TryCreate", "rentalID", rt.ID)
	return true, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals r WHERE r.id = $1`
	if err := scanRental(r.db.QueryRowContext(ctx, query, id), rt); err != nil {
		return nil, notFound(err, domain.ErrRentalNotFound, id)
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals r ORDER BY r.id`)
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET customer_id=$1, code=$2, start_date=$3, end_date=$4, status=$5, total_price_cents=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, rt.CustomerID, rt.Code, rt.StartDate, rt.EndDate, rt.Status, rt.TotalPriceCents, rt.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRentalCodeTaken
		}
		return err
	}
	return checkAffected(res, domain.ErrRentalNotFound, rt.ID)
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	return deleteByID(ctx, r.db, "rentals", "rental", domain.ErrRentalNotFound, id)
}

func (r *rentalRepository) ListByCode(ctx context.Context, code string) ([]domain.Rental, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals r WHERE r.code = $1 ORDER BY r.id`, code)
}

func (r *rentalRepository) ListByCustomerLastName(ctx context.Context, lastName string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals r
	          JOIN customers c ON c.id = r.customer_id
	          WHERE c.last_name = $1 ORDER BY r.id`
	return r.list(ctx, query, lastName)
}

func (r *rentalRepository) ListByCustomerPhone(ctx context.Context, phoneNumber string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals r
	          JOIN customers c ON c.id = r.customer_id
	          WHERE c.phone_number = $1 ORDER BY r.id`
	return r.list(ctx, query, phoneNumber)
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID int32) ([]domain.Rental, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals r WHERE r.customer_id = $1 ORDER BY r.id`, customerID)
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	// Rentals without items have no return date and are never overdue.
	query := `SELECT ` + rentalColumns + ` FROM rentals r
	          JOIN (SELECT rental_id, MAX(duration) AS longest FROM rental_items GROUP BY rental_id) d
	            ON d.rental_id = r.id
	          WHERE r.status = $1
	            AND r.start_date + d.longest < $2
	          ORDER BY r.start_date, r.id`
	return r.list(ctx, query, domain.RentalStatusActive, utils.FormatDate(asOf))
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rentals := []domain.Rental{}
	for rows.Next() {
		var rt domain.Rental
		if err := scanRental(rows, &rt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
