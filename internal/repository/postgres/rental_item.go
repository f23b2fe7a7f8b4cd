package postgres

import (
	"context"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/repository"
)

const rentalItemColumns = `id, rental_id, product_id, duration, daily_price_cents, final_price_cents`

type rentalItemRepository struct {
	db DBTX
}

func NewRentalItemRepository(db DBTX) repository.RentalItemRepository {
	return &rentalItemRepository{db: db}
}

func scanRentalItem(row interface{ Scan(...any) error }, it *domain.RentalItem) error {
	return row.Scan(&it.ID, &it.RentalID, &it.ProductID, &it.Duration, &it.DailyPriceCents, &it.FinalPriceCents)
}

func (r *rentalItemRepository) Create(ctx context.Context, it *domain.RentalItem) error {
	query := `INSERT INTO rental_items (rental_id, product_id, duration, daily_price_cents, final_price_cents)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, it.RentalID, it.ProductID, it.Duration, it.DailyPriceCents, it.FinalPriceCents).Scan(&it.ID)
}

func (r *rentalItemRepository) GetByID(ctx context.Context, id int32) (*domain.RentalItem, error) {
	it := &domain.RentalItem{}
	query := `SELECT ` + rentalItemColumns + ` FROM rental_items WHERE id = $1`
	if err := scanRentalItem(r.db.QueryRowContext(ctx, query, id), it); err != nil {
		return nil, notFound(err, domain.ErrRentalItemNotFound, id)
	}
	return it, nil
}

func (r *rentalItemRepository) List(ctx context.Context) ([]domain.RentalItem, error) {
	return r.list(ctx, `SELECT `+rentalItemColumns+` FROM rental_items ORDER BY id`)
}

func (r *rentalItemRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.RentalItem, error) {
	return r.list(ctx, `SELECT `+rentalItemColumns+` FROM rental_items WHERE rental_id = $1 ORDER BY id`, rentalID)
}

func (r *rentalItemRepository) list(ctx context.Context, query string, args ...any) ([]domain.RentalItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.RentalItem{}
	for rows.Next() {
		var it domain.RentalItem
		if err := scanRentalItem(rows, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *rentalItemRepository) Update(ctx context.Context, it *domain.RentalItem) error {
	query := `UPDATE rental_items SET rental_id=$1, product_id=$2, duration=$3, daily_price_cents=$4, final_price_cents=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, it.RentalID, it.ProductID, it.Duration, it.DailyPriceCents, it.FinalPriceCents, it.ID)
	if err != nil {
		return err
	}
	return checkAffected(res, domain.ErrRentalItemNotFound, it.ID)
}

func (r *rentalItemRepository) Delete(ctx context.Context, id int32) error {
	return deleteByID(ctx, r.db, "rental_items", "rental item", domain.ErrRentalItemNotFound, id)
}
