package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mountainride-backend/internal/domain"
)

var customerRowColumns = []string{"id", "first_name", "last_name", "email", "phone_number", "address"}

func TestCustomerRepository_InsertOrGetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("New Customer", func(t *testing.T) {
		c := &domain.Customer{FirstName: "Anne", LastName: "Bernard", Email: "a@b.fr"}
		mock.ExpectQuery("INSERT INTO customers (.+) ON CONFLICT \\(email\\) DO NOTHING RETURNING id").
			WithArgs("Anne", "Bernard", "a@b.fr", "", "").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

		require.NoError(t, repo.InsertOrGetByEmail(ctx, c))
		assert.Equal(t, int32(11), c.ID)
	})

	t.Run("Existing Customer", func(t *testing.T) {
		c := &domain.Customer{FirstName: "Other", LastName: "Name", Email: "a@b.fr"}
		mock.ExpectQuery("INSERT INTO customers (.+) ON CONFLICT \\(email\\) DO NOTHING RETURNING id").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE email = \\$1").
			WithArgs("a@b.fr").
			WillReturnRows(sqlmock.NewRows(customerRowColumns).AddRow(11, "Anne", "Bernard", "a@b.fr", "0601020304", "1 rue des Alpes"))

		require.NoError(t, repo.InsertOrGetByEmail(ctx, c))
		assert.Equal(t, int32(11), c.ID)
		assert.Equal(t, "Anne", c.FirstName)
		assert.Equal(t, "1 rue des Alpes", c.Address)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery("INSERT INTO customers").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.Customer{Email: "a@b.fr"})
	assert.ErrorIs(t, err, domain.ErrCustomerEmailTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCustomerRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM customers WHERE id = \\$1").
		WithArgs(int32(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
		WithArgs(int32(3)).
		WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerRepository_DeleteWithRentals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectExec("DELETE FROM customers WHERE id = \\$1").
		WithArgs(int32(11)).
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Delete(context.Background(), 11)
	assert.ErrorIs(t, err, domain.ErrStillReferenced)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
