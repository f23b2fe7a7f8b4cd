package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
)

// SQLSTATE codes Postgres reports for broken constraints.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// DBTX is the subset of *sql.DB and *sql.Tx the repositories need, so the
// same repository code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.ProductTypeRepository
	repository.ProductRepository
	repository.ProductPriceRepository
	repository.RentalRepository
	repository.RentalItemRepository
	repository.EmployeeRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		CustomerRepository:     NewCustomerRepository(db),
		ProductTypeRepository:  NewProductTypeRepository(db),
		ProductRepository:      NewProductRepository(db),
		ProductPriceRepository: NewProductPriceRepository(db),
		RentalRepository:       NewRentalRepository(db),
		RentalItemRepository:   NewRentalItemRepository(db),
		EmployeeRepository:     NewEmployeeRepository(db),
	}
}

// Repositories returns the pool-bound repository set.
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Customers:     s.CustomerRepository,
		ProductTypes:  s.ProductTypeRepository,
		Products:      s.ProductRepository,
		ProductPrices: s.ProductPriceRepository,
		Rentals:       s.RentalRepository,
		RentalItems:   s.RentalItemRepository,
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

// deleteByID removes one row. A row other tables still reference is a
// conflict, a missing row is the entity's not-found error.
func deleteByID(ctx context.Context, db DBTX, table, entity string, entityErr error, id int32) error {
	query := `DELETE FROM ` + table + ` WHERE id = $1`
	logger.DatabaseCall("Delete", query, "table", table, "id", id)
	res, err := db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("Delete", 0, err, "table", table)
		if isForeignKeyViolation(err) {
			return domain.StillReferenced(entity, id)
		}
		return err
	}
	return checkAffected(res, entityErr, id)
}

// notFound maps sql.ErrNoRows to the entity error and leaves other errors intact.
func notFound(err error, entityErr error, id int32) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound(entityErr, id)
	}
	return err
}

func checkAffected(res sql.Result, entityErr error, id int32) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound(entityErr, id)
	}
	return nil
}
