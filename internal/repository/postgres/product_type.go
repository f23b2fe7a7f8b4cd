package postgres

import (
	"context"

	"mountainride-backend/internal/domain"
	"mountainride-backend/internal/repository"
)

type productTypeRepository struct {
	db DBTX
}

func NewProductTypeRepository(db DBTX) repository.ProductTypeRepository {
	return &productTypeRepository{db: db}
}

func (r *productTypeRepository) Create(ctx context.Context, pt *domain.ProductType) error {
	return r.db.QueryRowContext(ctx, `INSERT INTO product_types (name) VALUES ($1) RETURNING id`, pt.Name).Scan(&pt.ID)
}

func (r *productTypeRepository) GetByID(ctx context.Context, id int32) (*domain.ProductType, error) {
	pt := &domain.ProductType{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM product_types WHERE id = $1`, id).Scan(&pt.ID, &pt.Name)
	if err != nil {
		return nil, notFound(err, domain.ErrProductTypeNotFound, id)
	}
	return pt, nil
}

func (r *productTypeRepository) List(ctx context.Context) ([]domain.ProductType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM product_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []domain.ProductType{}
	for rows.Next() {
		var pt domain.ProductType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			return nil, err
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}

func (r *productTypeRepository) Update(ctx context.Context, pt *domain.ProductType) error {
	res, err := r.db.ExecContext(ctx, `UPDATE product_types SET name=$1 WHERE id=$2`, pt.Name, pt.ID)
	if err != nil {
		return err
	}
	return checkAffected(res, domain.ErrProductTypeNotFound, pt.ID)
}

func (r *productTypeRepository) Delete(ctx context.Context, id int32) error {
	return deleteByID(ctx, r.db, "product_types", "product type", domain.ErrProductTypeNotFound, id)
}
