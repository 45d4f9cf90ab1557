package service

import (
	"context"
	"time"

	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/store"
	"github.com/kcmvp/commerce/validate"
	"github.com/samber/mo"
)

// Supplier validates and persists product suppliers.
type Supplier struct {
	store store.Store[model.Supplier]
}

func NewSupplier(s store.Store[model.Supplier]) *Supplier {
	return &Supplier{store: s}
}

func (s *Supplier) rules(sup model.Supplier) error {
	return validate.All(
		validate.Required("name", sup.Name),
		validate.MaxLen("name", sup.Name, 200),
		validate.Email("contactEmail", sup.ContactEmail),
		validate.MaxLen("phone", sup.Phone, 20),
		validate.MaxLen("address", sup.Address, 500),
	)
}

func (s *Supplier) GetAll(ctx context.Context) ([]model.Supplier, error) {
	return s.store.GetAll(ctx)
}

func (s *Supplier) GetByID(ctx context.Context, id int) (mo.Option[model.Supplier], error) {
	return getByID(ctx, s.store, id)
}

func (s *Supplier) Create(ctx context.Context, sup model.Supplier) (model.Supplier, error) {
	if err := s.rules(sup); err != nil {
		return sup, err
	}
	sup.ID = 0
	sup.CreatedAt = time.Now().UTC()
	sup.UpdatedAt = nil
	return s.store.Add(ctx, sup)
}

func (s *Supplier) Update(ctx context.Context, id int, sup model.Supplier) (model.Supplier, error) {
	existing, err := target(ctx, s.store, "Supplier", id)
	if err != nil {
		return sup, err
	}
	if err = s.rules(sup); err != nil {
		return sup, err
	}
	now := time.Now().UTC()
	sup.ID = id
	sup.CreatedAt = existing.CreatedAt
	sup.UpdatedAt = &now
	if _, err = s.store.Update(ctx, id, sup); err != nil {
		return sup, err
	}
	return sup, nil
}

func (s *Supplier) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, s.store, id)
}
