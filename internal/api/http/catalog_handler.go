package http

import (
	"context"
	"net/http"

	"mountainride-backend/internal/domain"
)

// resource wires the five plain CRUD routes of one catalog entity
type resource[T any] struct {
	list   func(ctx context.Context) ([]T, error)
	get    func(ctx context.Context, id int32) (*T, error)
	create func(ctx context.Context, v *T) error
	update func(ctx context.Context, v *T) error
	delete func(ctx context.Context, id int32) error
	setID  func(v *T, id int32)
}

func (res resource[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := res.list(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (res resource[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	v, err := res.get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (res resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	var v T
	if err := decodeJSON(r, &v); err != nil {
		writeError(w, r, err)
		return
	}
	res.setID(&v, 0)
	if err := res.create(r.Context(), &v); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (res resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var v T
	if err := decodeJSON(r, &v); err != nil {
		writeError(w, r, err)
		return
	}
	res.setID(&v, id)
	if err := res.update(r.Context(), &v); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (res resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := res.delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) customers() resource[domain.Customer] {
	return resource[domain.Customer]{
		list:   h.Customers.ListCustomers,
		get:    h.Customers.GetCustomer,
		create: h.Customers.CreateCustomer,
		update: h.Customers.UpdateCustomer,
		delete: h.Customers.DeleteCustomer,
		setID:  func(c *domain.Customer, id int32) { c.ID = id },
	}
}

func (h *Handlers) productTypes() resource[domain.ProductType] {
	return resource[domain.ProductType]{
		list:   h.ProductTypes.ListProductTypes,
		get:    h.ProductTypes.GetProductType,
		create: h.ProductTypes.CreateProductType,
		update: h.ProductTypes.UpdateProductType,
		delete: h.ProductTypes.DeleteProductType,
		setID:  func(pt *domain.ProductType, id int32) { pt.ID = id },
	}
}

func (h *Handlers) products() resource[domain.Product] {
	return resource[domain.Product]{
		list:   h.Products.ListProducts,
		get:    h.Products.GetProduct,
		create: h.Products.CreateProduct,
		update: h.Products.UpdateProduct,
		delete: h.Products.DeleteProduct,
		setID:  func(p *domain.Product, id int32) { p.ID = id },
	}
}

func (h *Handlers) productPrices() resource[domain.ProductPrice] {
	return resource[domain.ProductPrice]{
		list:   h.ProductPrices.ListProductPrices,
		get:    h.ProductPrices.GetProductPrice,
		create: h.ProductPrices.CreateProductPrice,
		update: h.ProductPrices.UpdateProductPrice,
		delete: h.ProductPrices.DeleteProductPrice,
		setID:  func(p *domain.ProductPrice, id int32) { p.ID = id },
	}
}

func (h *Handlers) rentalItems() resource[domain.RentalItem] {
	return resource[domain.RentalItem]{
		list:   h.RentalItems.ListRentalItems,
		get:    h.RentalItems.GetRentalItem,
		create: h.RentalItems.CreateRentalItem,
		update: h.RentalItems.UpdateRentalItem,
		delete: h.RentalItems.DeleteRentalItem,
		setID:  func(it *domain.RentalItem, id int32) { it.ID = id },
	}
}

func (h *Handlers) ListProductsOfType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	products, err := h.ProductTypes.ListProductsByType(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handlers) ListPricesOfProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	prices, err := h.ProductPrices.ListPricesByProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}
