package postgres

import (
	"context"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/logger"
	"mountainride-backend/internal/repository"
)

const productColumns = `id, product_type_id, name, size, description, base_price_cents, available`

type productRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) repository.ProductRepository {
	return &productRepository{db: db}
}

func scanProduct(row interface{ Scan(...any) error }, p *domain.Product) error {
	return row.Scan(&p.ID, &p.ProductTypeID, &p.Name, &p.Size, &p.Description, &p.BasePriceCents, &p.Available)
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO products (product_type_id, name, size, description, base_price_cents, available)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.ProductTypeID, p.Name, p.Size, p.Description, p.BasePriceCents, p.Available).Scan(&p.ID)
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	p := &domain.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if err := scanProduct(r.db.QueryRowContext(ctx, query, id), p); err != nil {
		return nil, notFound(err, domain.ErrProductNotFound, id)
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *productRepository) ListByType(ctx context.Context, productTypeID int32) ([]domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE product_type_id = $1 ORDER BY id`, productTypeID)
}

func (r *productRepository) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Update copies the catalog fields only. Availability is owned by Allocate
// and Release.
func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `UPDATE products SET product_type_id=$1, name=$2, size=$3, description=$4, base_price_cents=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, p.ProductTypeID, p.Name, p.Size, p.Description, p.BasePriceCents, p.ID)
	if err != nil {
		return err
	}
	return checkAffected(res, domain.ErrProductNotFound, p.ID)
}

func (r *productRepository) Delete(ctx context.Context, id int32) error {
	return deleteByID(ctx, r.db, "products", "product", domain.ErrProductNotFound, id)
}

// Allocate is a compare-and-swap on the availability flag. Concurrent callers
// race on the row lock; only one sees an affected row.
func (r *productRepository) Allocate(ctx context.Context, id int32) (bool, error) {
	query := `UPDATE products SET available = false WHERE id = $1 AND available = true`
	logger.DatabaseCall("Allocate", query, "productID", id)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("Allocate", 0, err, "productID", id)
		return false, err
	}
	rows, err := res.RowsAffected()
	logger.DatabaseResult("Allocate", rows, err, "productID", id)
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func (r *productRepository) Release(ctx context.Context, id int32) error {
	query := `UPDATE products SET available = true WHERE id = $1`
	logger.DatabaseCall("Release", query, "productID", id)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.DatabaseResult("Release", 0, err, "productID", id)
		return err
	}
	rows, _ := res.RowsAffected()
	logger.DatabaseResult("Release", rows, nil, "productID", id)
	return nil
}
