package service

import (
	"context"
	"time"

	"github.com/kcmvp/commerce/fault"
	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/store"
	"github.com/kcmvp/commerce/validate"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Inventory validates and persists stock records. QuantityAvailable is
// derived from onHand and reserved and recomputed on every mutation; callers
// never write it directly.
type Inventory struct {
	store    store.Store[model.Inventory]
	products store.Store[model.Product]
}

func NewInventory(s store.Store[model.Inventory], products store.Store[model.Product]) *Inventory {
	return &Inventory{store: s, products: products}
}

func (i *Inventory) rules(inv model.Inventory) error {
	return validate.All(
		validate.PositiveID("productId", inv.ProductID),
		validate.NonNegative("quantityOnHand", inv.QuantityOnHand),
		validate.NonNegative("quantityReserved", inv.QuantityReserved),
		validate.NonNegative("reorderLevel", inv.ReorderLevel),
		validate.NonNegative("reorderQuantity", inv.ReorderQuantity),
		validate.Required("warehouseLocation", inv.WarehouseLocation),
		validate.MaxLen("warehouseLocation", inv.WarehouseLocation, 100),
	)
}

func (i *Inventory) GetAll(ctx context.Context) ([]model.Inventory, error) {
	return i.store.GetAll(ctx)
}

func (i *Inventory) GetByID(ctx context.Context, id int) (mo.Option[model.Inventory], error) {
	return getByID(ctx, i.store, id)
}

// ByProduct finds the stock record of one product via a scan over GetAll.
func (i *Inventory) ByProduct(ctx context.Context, productID int) (mo.Option[model.Inventory], error) {
	if err := checkID(productID); err != nil {
		return mo.None[model.Inventory](), err
	}
	all, err := i.store.GetAll(ctx)
	if err != nil {
		return mo.None[model.Inventory](), err
	}
	inv, found := lo.Find(all, func(inv model.Inventory) bool { return inv.ProductID == productID })
	return lo.Ternary(found, mo.Some(inv), mo.None[model.Inventory]()), nil
}

func (i *Inventory) Create(ctx context.Context, inv model.Inventory) (model.Inventory, error) {
	if err := i.rules(inv); err != nil {
		return inv, err
	}
	if _, err := mustExist(ctx, i.products, "Product", inv.ProductID); err != nil {
		return inv, err
	}
	inv.ID = 0
	inv.QuantityAvailable = inv.QuantityOnHand - inv.QuantityReserved
	inv.CreatedAt = time.Now().UTC()
	inv.UpdatedAt = nil
	return i.store.Add(ctx, inv)
}

func (i *Inventory) Update(ctx context.Context, id int, inv model.Inventory) (model.Inventory, error) {
	existing, err := target(ctx, i.store, "Inventory", id)
	if err != nil {
		return inv, err
	}
	if err = i.rules(inv); err != nil {
		return inv, err
	}
	now := time.Now().UTC()
	inv.ID = id
	inv.QuantityAvailable = inv.QuantityOnHand - inv.QuantityReserved
	inv.CreatedAt = existing.CreatedAt
	inv.UpdatedAt = &now
	if _, err = i.store.Update(ctx, id, inv); err != nil {
		return inv, err
	}
	return inv, nil
}

// UpdateQuantity applies a signed delta to quantityOnHand and recomputes
// quantityAvailable. A delta that would drive onHand negative is rejected and
// the record stays unchanged.
func (i *Inventory) UpdateQuantity(ctx context.Context, id, delta int) (model.Inventory, error) {
	inv, err := target(ctx, i.store, "Inventory", id)
	if err != nil {
		return inv, err
	}
	onHand := inv.QuantityOnHand + delta
	if onHand < 0 {
		return inv, fault.InvalidOpf("quantity on hand cannot go below zero (current %d, change %d)", inv.QuantityOnHand, delta)
	}
	now := time.Now().UTC()
	inv.QuantityOnHand = onHand
	inv.QuantityAvailable = onHand - inv.QuantityReserved
	inv.UpdatedAt = &now
	if _, err = i.store.Update(ctx, id, inv); err != nil {
		return inv, err
	}
	return inv, nil
}

func (i *Inventory) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, i.store, id)
}
