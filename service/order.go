package service

import (
	"context"
	"time"

	"github.com/kcmvp/commerce/fault"
	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/store"
	"github.com/kcmvp/commerce/validate"
	"github.com/samber/mo"
)

// Order validates and persists customer orders together with their items.
type Order struct {
	store store.Store[model.Order]
}

func NewOrder(s store.Store[model.Order]) *Order {
	return &Order{store: s}
}

func (o *Order) rules(ord model.Order) error {
	err := validate.All(
		validate.Required("customerEmail", ord.CustomerEmail),
		validate.Email("customerEmail", ord.CustomerEmail),
		validate.Required("customerName", ord.CustomerName),
		validate.MaxLen("customerName", ord.CustomerName, 200),
		validate.Required("shippingAddress", ord.ShippingAddress),
		validate.MaxLen("shippingAddress", ord.ShippingAddress, 500),
		validate.Positive("totalAmount", ord.TotalAmount),
		validate.OneOf("status", ord.Status, model.OrderStatuses...),
	)
	if err != nil {
		return err
	}
	if len(ord.Items) == 0 {
		return fault.InvalidArgf("order must contain at least one item")
	}
	for _, item := range ord.Items {
		if err = validate.All(
			validate.PositiveID("productId", item.ProductID),
			validate.Positive("quantity", item.Quantity),
			validate.NonNegative("unitPrice", item.UnitPrice),
		); err != nil {
			return err
		}
	}
	return nil
}

func (o *Order) GetAll(ctx context.Context) ([]model.Order, error) {
	return o.store.GetAll(ctx)
}

func (o *Order) GetByID(ctx context.Context, id int) (mo.Option[model.Order], error) {
	return getByID(ctx, o.store, id)
}

// Create assigns the server-owned fields (order number, order date, default
// status, creation timestamp) before validation so a defaulted order is a
// valid order.
func (o *Order) Create(ctx context.Context, ord model.Order) (model.Order, error) {
	if ord.Status == "" {
		ord.Status = model.OrderPending
	}
	now := time.Now().UTC()
	if ord.OrderDate.IsZero() {
		ord.OrderDate = now
	}
	ord.OrderNumber = NewCode(OrderCodePrefix)
	if err := o.rules(ord); err != nil {
		return ord, err
	}
	ord.ID = 0
	ord.CreatedAt = now
	ord.UpdatedAt = nil
	return o.store.Add(ctx, ord)
}

func (o *Order) Update(ctx context.Context, id int, ord model.Order) (model.Order, error) {
	existing, err := target(ctx, o.store, "Order", id)
	if err != nil {
		return ord, err
	}
	// Order number and dates stay server-owned across updates.
	ord.OrderNumber = existing.OrderNumber
	if ord.OrderDate.IsZero() {
		ord.OrderDate = existing.OrderDate
	}
	if err = o.rules(ord); err != nil {
		return ord, err
	}
	now := time.Now().UTC()
	ord.ID = id
	ord.CreatedAt = existing.CreatedAt
	ord.UpdatedAt = &now
	if _, err = o.store.Update(ctx, id, ord); err != nil {
		return ord, err
	}
	return ord, nil
}

func (o *Order) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, o.store, id)
}
