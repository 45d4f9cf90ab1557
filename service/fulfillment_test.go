package service

import (
	"context"
	"testing"

	"github.com/kcmvp/commerce/fault"
	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, orders store.Store[model.Order]) model.Order {
	t.Helper()
	svc := NewOrder(orders)
	created, err := svc.Create(context.Background(), model.Order{
		CustomerEmail:   "jo@example.com",
		CustomerName:    "Jo",
		ShippingAddress: "1 Main St",
		TotalAmount:     99.98,
		Items:           []model.OrderItem{{ProductID: 1, Quantity: 2, UnitPrice: 49.99, LineTotal: 99.98}},
	})
	require.NoError(t, err)
	return created
}

func TestOrder_CreateAssignsServerFields(t *testing.T) {
	orders := store.NewMemory[model.Order]()
	created := seedOrder(t, orders)

	assert.Equal(t, 1, created.ID)
	assert.Equal(t, model.OrderPending, created.Status)
	assert.True(t, ValidCode(created.OrderNumber, OrderCodePrefix), created.OrderNumber)
	assert.False(t, created.OrderDate.IsZero())
	assert.Nil(t, created.UpdatedAt)
}

func TestOrder_CreateRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory[model.Order]()
	svc := NewOrder(mem)

	valid := model.Order{
		CustomerEmail: "jo@example.com", CustomerName: "Jo", ShippingAddress: "1 Main St",
		TotalAmount: 10, Items: []model.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: 10, LineTotal: 10}},
	}

	for name, mutate := range map[string]func(o model.Order) model.Order{
		"blank email":       func(o model.Order) model.Order { o.CustomerEmail = ""; return o },
		"bad email":         func(o model.Order) model.Order { o.CustomerEmail = "nope"; return o },
		"blank name":        func(o model.Order) model.Order { o.CustomerName = ""; return o },
		"blank address":     func(o model.Order) model.Order { o.ShippingAddress = ""; return o },
		"zero total":        func(o model.Order) model.Order { o.TotalAmount = 0; return o },
		"unknown status":    func(o model.Order) model.Order { o.Status = "Lost"; return o },
		"no items":          func(o model.Order) model.Order { o.Items = nil; return o },
		"zero item product": func(o model.Order) model.Order { o.Items[0].ProductID = 0; return o },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, mutate(valid))
			assert.ErrorIs(t, err, fault.ErrInvalidArgument)
		})
	}
	assert.Zero(t, mem.Len())
}

func TestOrder_UpdateKeepsOrderNumber(t *testing.T) {
	ctx := context.Background()
	orders := store.NewMemory[model.Order]()
	created := seedOrder(t, orders)

	svc := NewOrder(orders)
	next := created
	next.Status = model.OrderShipped
	next.OrderNumber = "ORD-CLIENT-FORGED"
	updated, err := svc.Update(ctx, created.ID, next)
	require.NoError(t, err)
	assert.Equal(t, created.OrderNumber, updated.OrderNumber)
	assert.Equal(t, model.OrderShipped, updated.Status)
	require.NotNil(t, updated.UpdatedAt)
}

func TestDelivery_CreateRequiresExistingOrder(t *testing.T) {
	ctx := context.Background()
	orders := store.NewMemory[model.Order]()
	deliveries := store.NewMemory[model.Delivery]()
	svc := NewDelivery(deliveries, orders)

	_, err := svc.Create(ctx, model.Delivery{OrderID: 99, CarrierName: "DHL", DeliveryAddress: "1 Main St"})
	require.ErrorIs(t, err, fault.ErrInvalidOperation)
	assert.Contains(t, err.Error(), "Order with ID 99 not found")
	assert.Zero(t, deliveries.Len())

	order := seedOrder(t, orders)
	created, err := svc.Create(ctx, model.Delivery{OrderID: order.ID, CarrierName: "DHL", DeliveryAddress: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryPending, created.Status)
	assert.True(t, ValidCode(created.TrackingNumber, TrackingCodePrefix), created.TrackingNumber)
}

func TestDelivery_FieldRules(t *testing.T) {
	ctx := context.Background()
	orders := store.NewMemory[model.Order]()
	svc := NewDelivery(store.NewMemory[model.Delivery](), orders)
	seedOrder(t, orders)

	_, err := svc.Create(ctx, model.Delivery{OrderID: 1, CarrierName: "", DeliveryAddress: "1 Main St"})
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
	_, err = svc.Create(ctx, model.Delivery{OrderID: 1, CarrierName: "DHL", DeliveryAddress: ""})
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
	_, err = svc.Create(ctx, model.Delivery{OrderID: 0, CarrierName: "DHL", DeliveryAddress: "1 Main St"})
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
}

func TestDelivery_ByOrder(t *testing.T) {
	ctx := context.Background()
	orders := store.NewMemory[model.Order]()
	svc := NewDelivery(store.NewMemory[model.Delivery](), orders)
	first := seedOrder(t, orders)
	second := seedOrder(t, orders)

	for _, orderID := range []int{first.ID, second.ID, first.ID} {
		_, err := svc.Create(ctx, model.Delivery{OrderID: orderID, CarrierName: "DHL", DeliveryAddress: "1 Main St"})
		require.NoError(t, err)
	}

	got, err := svc.ByOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.ByOrder(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.ByOrder(ctx, 0)
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
}

func TestInventory_CreateRequiresExistingProduct(t *testing.T) {
	ctx := context.Background()
	products := store.NewMemory[model.Product]()
	inventories := store.NewMemory[model.Inventory]()
	svc := NewInventory(inventories, products)

	_, err := svc.Create(ctx, model.Inventory{ProductID: 5, QuantityOnHand: 10, WarehouseLocation: "A1"})
	require.ErrorIs(t, err, fault.ErrInvalidOperation)
	assert.Contains(t, err.Error(), "Product with ID 5 not found")
	assert.Zero(t, inventories.Len())
}

func TestInventory_AvailableDerived(t *testing.T) {
	ctx := context.Background()
	products := store.NewMemory[model.Product]()
	prod, err := products.Add(ctx, model.Product{Name: "Laptop", CategoryID: 1, SupplierID: 1})
	require.NoError(t, err)
	svc := NewInventory(store.NewMemory[model.Inventory](), products)

	created, err := svc.Create(ctx, model.Inventory{
		ProductID: prod.ID, QuantityOnHand: 10, QuantityReserved: 3,
		QuantityAvailable: 999, // client-supplied value is ignored
		WarehouseLocation: "A1",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.QuantityAvailable)

	created.QuantityOnHand = 20
	created.QuantityReserved = 5
	updated, err := svc.Update(ctx, created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.QuantityAvailable)
}

func TestInventory_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	products := store.NewMemory[model.Product]()
	prod, err := products.Add(ctx, model.Product{Name: "Laptop", CategoryID: 1, SupplierID: 1})
	require.NoError(t, err)
	svc := NewInventory(store.NewMemory[model.Inventory](), products)

	created, err := svc.Create(ctx, model.Inventory{ProductID: prod.ID, QuantityOnHand: 5, QuantityReserved: 1, WarehouseLocation: "A1"})
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(ctx, created.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.QuantityOnHand)
	assert.Equal(t, 1, updated.QuantityReserved)
	assert.Equal(t, 1, updated.QuantityAvailable)

	// Driving onHand negative fails and leaves the record unchanged.
	_, err = svc.UpdateQuantity(ctx, created.ID, -10)
	require.ErrorIs(t, err, fault.ErrInvalidOperation)
	opt, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, opt.MustGet().QuantityOnHand)

	_, err = svc.UpdateQuantity(ctx, 999, 1)
	require.ErrorIs(t, err, fault.ErrInvalidOperation)
	_, err = svc.UpdateQuantity(ctx, 0, 1)
	require.ErrorIs(t, err, fault.ErrInvalidArgument)
}

func TestInventory_ByProduct(t *testing.T) {
	ctx := context.Background()
	products := store.NewMemory[model.Product]()
	prod, err := products.Add(ctx, model.Product{Name: "Laptop", CategoryID: 1, SupplierID: 1})
	require.NoError(t, err)
	svc := NewInventory(store.NewMemory[model.Inventory](), products)
	_, err = svc.Create(ctx, model.Inventory{ProductID: prod.ID, QuantityOnHand: 5, WarehouseLocation: "A1"})
	require.NoError(t, err)

	opt, err := svc.ByProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.True(t, opt.IsPresent())
	assert.Equal(t, prod.ID, opt.MustGet().ProductID)

	opt, err = svc.ByProduct(ctx, 999)
	require.NoError(t, err)
	assert.True(t, opt.IsAbsent())
}

func TestPayment_CreateRequiresExistingOrder(t *testing.T) {
	ctx := context.Background()
	orders := store.NewMemory[model.Order]()
	payments := store.NewMemory[model.Payment]()
	svc := NewPayment(payments, orders)

	_, err := svc.Create(ctx, model.Payment{OrderID: 7, Amount: 10, PaymentMethod: "Card", TransactionID: "tx-1"})
	require.ErrorIs(t, err, fault.ErrInvalidOperation)
	assert.Contains(t, err.Error(), "Order with ID 7 not found")
	assert.Zero(t, payments.Len())

	order := seedOrder(t, orders)
	created, err := svc.Create(ctx, model.Payment{OrderID: order.ID, Amount: 10, PaymentMethod: "Card", TransactionID: "tx-1"})
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, created.Status)
	assert.False(t, created.PaymentDate.IsZero())
}

func TestPayment_FieldRules(t *testing.T) {
	ctx := context.Background()
	orders := store.NewMemory[model.Order]()
	svc := NewPayment(store.NewMemory[model.Payment](), orders)
	seedOrder(t, orders)

	_, err := svc.Create(ctx, model.Payment{OrderID: 1, Amount: 0, PaymentMethod: "Card", TransactionID: "tx-1"})
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
	_, err = svc.Create(ctx, model.Payment{OrderID: 1, Amount: 10, PaymentMethod: "", TransactionID: "tx-1"})
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
	_, err = svc.Create(ctx, model.Payment{OrderID: 1, Amount: 10, PaymentMethod: "Card", TransactionID: ""})
	assert.ErrorIs(t, err, fault.ErrInvalidArgument)
}

func TestPayment_RefundStampsDate(t *testing.T) {
	ctx := context.Background()
	orders := store.NewMemory[model.Order]()
	order := seedOrder(t, orders)
	svc := NewPayment(store.NewMemory[model.Payment](), orders)

	created, err := svc.Create(ctx, model.Payment{OrderID: order.ID, Amount: 10, PaymentMethod: "Card", TransactionID: "tx-1"})
	require.NoError(t, err)

	created.Status = model.PaymentRefunded
	created.RefundReason = "damaged in transit"
	updated, err := svc.Update(ctx, created.ID, created)
	require.NoError(t, err)
	require.NotNil(t, updated.RefundDate)
}

func TestRequestLog_Append(t *testing.T) {
	ctx := context.Background()
	svc := NewRequestLog(store.NewMemory[model.RequestLog]())

	logged, err := svc.Log(ctx, model.RequestLog{RequestMethod: "GET", RequestPath: "/api/products", StatusCode: 200, ElapsedMillis: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, logged.ID)
	assert.False(t, logged.RequestedAt.IsZero())

	all, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "/api/products", all[0].RequestPath)
}
