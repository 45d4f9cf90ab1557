package service

import (
	"context"
	"time"

	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/store"
	"github.com/kcmvp/commerce/validate"
	"github.com/samber/mo"
)

// Category validates and persists product categories.
type Category struct {
	store store.Store[model.Category]
}

func NewCategory(s store.Store[model.Category]) *Category {
	return &Category{store: s}
}

func (c *Category) rules(cat model.Category) error {
	return validate.All(
		validate.Required("name", cat.Name),
		validate.MaxLen("name", cat.Name, 100),
		validate.MaxLen("description", cat.Description, 500),
	)
}

func (c *Category) GetAll(ctx context.Context) ([]model.Category, error) {
	return c.store.GetAll(ctx)
}

func (c *Category) GetByID(ctx context.Context, id int) (mo.Option[model.Category], error) {
	return getByID(ctx, c.store, id)
}

func (c *Category) Create(ctx context.Context, cat model.Category) (model.Category, error) {
	if err := c.rules(cat); err != nil {
		return cat, err
	}
	cat.ID = 0
	cat.CreatedAt = time.Now().UTC()
	cat.UpdatedAt = nil
	return c.store.Add(ctx, cat)
}

func (c *Category) Update(ctx context.Context, id int, cat model.Category) (model.Category, error) {
	existing, err := target(ctx, c.store, "Category", id)
	if err != nil {
		return cat, err
	}
	if err = c.rules(cat); err != nil {
		return cat, err
	}
	now := time.Now().UTC()
	cat.ID = id
	cat.CreatedAt = existing.CreatedAt
	cat.UpdatedAt = &now
	if _, err = c.store.Update(ctx, id, cat); err != nil {
		return cat, err
	}
	return cat, nil
}

func (c *Category) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, c.store, id)
}
