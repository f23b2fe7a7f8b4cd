package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/repository"
)

type employeeRepository struct {
	db DBTX
}

func NewEmployeeRepository(db DBTX) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT id, email, password_hash, first_name, last_name, role FROM employees WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&e.ID, &e.Email, &e.PasswordHash, &e.FirstName, &e.LastName, &e.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}
