package postgres

import (
	"context"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/repository"
)

const productPriceColumns = `id, product_id, min_duration, max_duration, daily_price_cents`

type productPriceRepository struct {
	db DBTX
}

func NewProductPriceRepository(db DBTX) repository.ProductPriceRepository {
	return &productPriceRepository{db: db}
}

func scanProductPrice(row interface{ Scan(...any) error }, p *domain.ProductPrice) error {
	return row.Scan(&p.ID, &p.ProductID, &p.MinDuration, &p.MaxDuration, &p.DailyPriceCents)
}

func (r *productPriceRepository) Create(ctx context.Context, p *domain.ProductPrice) error {
	query := `INSERT INTO product_prices (product_id, min_duration, max_duration, daily_price_cents)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.ProductID, p.MinDuration, p.MaxDuration, p.DailyPriceCents).Scan(&p.ID)
}

func (r *productPriceRepository) GetByID(ctx context.Context, id int32) (*domain.ProductPrice, error) {
	p := &domain.ProductPrice{}
	query := `SELECT ` + productPriceColumns + ` FROM product_prices WHERE id = $1`
	if err := scanProductPrice(r.db.QueryRowContext(ctx, query, id), p); err != nil {
		return nil, notFound(err, domain.ErrProductPriceNotFound, id)
	}
	return p, nil
}

func (r *productPriceRepository) List(ctx context.Context) ([]domain.ProductPrice, error) {
	return r.list(ctx, `SELECT `+productPriceColumns+` FROM product_prices ORDER BY id`)
}

// ListByProduct orders by id so "first matching tier" means first inserted.
func (r *productPriceRepository) ListByProduct(ctx context.Context, productID int32) ([]domain.ProductPrice, error) {
	return r.list(ctx, `SELECT `+productPriceColumns+` FROM product_prices WHERE product_id = $1 ORDER BY id`, productID)
}

func (r *productPriceRepository) list(ctx context.Context, query string, args ...any) ([]domain.ProductPrice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := []domain.ProductPrice{}
	for rows.Next() {
		var p domain.ProductPrice
		if err := scanProductPrice(rows, &p); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

func (r *productPriceRepository) Update(ctx context.Context, p *domain.ProductPrice) error {
	query := `UPDATE product_prices SET product_id=$1, min_duration=$2, max_duration=$3, daily_price_cents=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, p.ProductID, p.MinDuration, p.MaxDuration, p.DailyPriceCents, p.ID)
	if err != nil {
		return err
	}
	return checkAffected(res, domain.ErrProductPriceNotFound, p.ID)
}

func (r *productPriceRepository) Delete(ctx context.Context, id int32) error {
	return deleteByID(ctx, r.db, "product_prices", "product price", domain.ErrProductPriceNotFound, id)
}
