package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
)

const customerColumns = `id, first_name, last_name, email, phone_number, address`

type customerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func scanCustomer(row interface{ Scan(...any) error }, c *domain.Customer) error {
	return row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber, &c.Address)
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (first_name, last_name, email, phone_number, address)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.Address).Scan(&c.ID)
	if isUniqueViolation(err) {
		return domain.ErrCustomerEmailTaken
	}
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	if err := scanCustomer(r.db.QueryRowContext(ctx, query, id), c); err != nil {
		return nil, notFound(err, domain.ErrCustomerNotFound, id)
	}
	return c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	if err := scanCustomer(r.db.QueryRowContext(ctx, query, email), c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

// InsertOrGetByEmail relies on the UNIQUE(email) constraint instead of a
// read-then-write, so two first-time bookings for the same email cannot both
// insert. An existing row is returned as stored; the new details are dropped.
func (r *customerRepository) InsertOrGetByEmail(ctx context.Context, c *domain.Customer) error {
	logger.EnterMethod("customerRepository.InsertOrGetByEmail", "email", c.Email)

	query := `INSERT INTO customers (first_name, last_name, email, phone_number, address)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (email) DO NOTHING
	          RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.Address).Scan(&c.ID)
	if err == nil {
		logger.ExitMethod("customerRepository.InsertOrGetByEmail", "customerID", c.ID, "created", true)
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethodWithError("customerRepository.InsertOrGetByEmail", err, "email", c.Email)
		return err
	}

	existing, err := r.GetByEmail(ctx, c.Email)
	if err != nil {
		logger.ExitMethodWithError("customerRepository.InsertOrGetByEmail", err, "email", c.Email)
		return err
	}
	*c = *existing

	logger.ExitMethod("customerRepository.InsertOrGetByEmail", "customerID", c.ID, "created", false)
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, email=$3, phone_number=$4, address=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, c.FirstName, c.LastName, c.Email, c.PhoneNumber, c.Address, c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCustomerEmailTaken
		}
		return err
	}
	return checkAffected(res, domain.ErrCustomerNotFound, c.ID)
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	return deleteByID(ctx, r.db, "customers", "customer", domain.ErrCustomerNotFound, id)
}
