package service

import (
	"context"
	"time"

	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/store"
	"github.com/kcmvp/commerce/validate"
	"github.com/samber/mo"
)

// Product validates and persists products. Category and supplier references
// are range-checked only; row existence is left to the storage engine's
// foreign keys.
type Product struct {
	store store.Store[model.Product]
}

func NewProduct(s store.Store[model.Product]) *Product {
	return &Product{store: s}
}

func (p *Product) rules(prod model.Product) error {
	return validate.All(
		validate.Required("name", prod.Name),
		validate.MaxLen("name", prod.Name, 200),
		validate.MaxLen("description", prod.Description, 500),
		validate.NonNegative("price", prod.Price),
		validate.NonNegative("quantity", prod.Quantity),
		validate.PositiveID("categoryId", prod.CategoryID),
		validate.PositiveID("supplierId", prod.SupplierID),
	)
}

func (p *Product) GetAll(ctx context.Context) ([]model.Product, error) {
	return p.store.GetAll(ctx)
}

func (p *Product) GetByID(ctx context.Context, id int) (mo.Option[model.Product], error) {
	return getByID(ctx, p.store, id)
}

func (p *Product) Create(ctx context.Context, prod model.Product) (model.Product, error) {
	if err := p.rules(prod); err != nil {
		return prod, err
	}
	prod.ID = 0
	prod.CreatedAt = time.Now().UTC()
	prod.UpdatedAt = nil
	return p.store.Add(ctx, prod)
}

func (p *Product) Update(ctx context.Context, id int, prod model.Product) (model.Product, error) {
	existing, err := target(ctx, p.store, "Product", id)
	if err != nil {
		return prod, err
	}
	if err = p.rules(prod); err != nil {
		return prod, err
	}
	now := time.Now().UTC()
	prod.ID = id
	prod.CreatedAt = existing.CreatedAt
	prod.UpdatedAt = &now
	if _, err = p.store.Update(ctx, id, prod); err != nil {
		return prod, err
	}
	return prod, nil
}

func (p *Product) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, p.store, id)
}
