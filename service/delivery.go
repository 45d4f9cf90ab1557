package service

import (
	"context"
	"time"

	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/store"
	"github.com/kcmvp/commerce/validate"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Delivery validates and persists shipments. A delivery always points at an
// existing order; the order read and the delivery write are separate store
// calls with no isolation between them.
type Delivery struct {
	store  store.Store[model.Delivery]
	orders store.Store[model.Order]
}

func NewDelivery(s store.Store[model.Delivery], orders store.Store[model.Order]) *Delivery {
	return &Delivery{store: s, orders: orders}
}

func (d *Delivery) rules(del model.Delivery) error {
	return validate.All(
		validate.PositiveID("orderId", del.OrderID),
		validate.Required("carrierName", del.CarrierName),
		validate.MaxLen("carrierName", del.CarrierName, 100),
		validate.Required("deliveryAddress", del.DeliveryAddress),
		validate.MaxLen("deliveryAddress", del.DeliveryAddress, 500),
		validate.MaxLen("deliveryNotes", del.DeliveryNotes, 500),
		validate.OneOf("status", del.Status, model.DeliveryStatuses...),
	)
}

func (d *Delivery) GetAll(ctx context.Context) ([]model.Delivery, error) {
	return d.store.GetAll(ctx)
}

func (d *Delivery) GetByID(ctx context.Context, id int) (mo.Option[model.Delivery], error) {
	return getByID(ctx, d.store, id)
}

// ByOrder lists the deliveries of one order. The store has no indexed query,
// so this is a scan over GetAll.
func (d *Delivery) ByOrder(ctx context.Context, orderID int) ([]model.Delivery, error) {
	if err := checkID(orderID); err != nil {
		return nil, err
	}
	all, err := d.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(del model.Delivery, _ int) bool { return del.OrderID == orderID }), nil
}

func (d *Delivery) Create(ctx context.Context, del model.Delivery) (model.Delivery, error) {
	if del.Status == "" {
		del.Status = model.DeliveryPending
	}
	del.TrackingNumber = NewCode(TrackingCodePrefix)
	if err := d.rules(del); err != nil {
		return del, err
	}
	if _, err := mustExist(ctx, d.orders, "Order", del.OrderID); err != nil {
		return del, err
	}
	del.ID = 0
	del.CreatedAt = time.Now().UTC()
	del.UpdatedAt = nil
	return d.store.Add(ctx, del)
}

func (d *Delivery) Update(ctx context.Context, id int, del model.Delivery) (model.Delivery, error) {
	existing, err := target(ctx, d.store, "Delivery", id)
	if err != nil {
		return del, err
	}
	del.TrackingNumber = existing.TrackingNumber
	if err = d.rules(del); err != nil {
		return del, err
	}
	now := time.Now().UTC()
	del.ID = id
	del.CreatedAt = existing.CreatedAt
	del.UpdatedAt = &now
	if _, err = d.store.Update(ctx, id, del); err != nil {
		return del, err
	}
	return del, nil
}

func (d *Delivery) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, d.store, id)
}
