package store

import (
	"database/sql"
	"time"

	"github.com/kcmvp/commerce/model"
)

// Mapper instances for every persisted entity. Column order here is the
// single source of truth for the generated INSERT/UPDATE/SELECT statements.

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

// CategoryMapper maps model.Category onto the categories table.
var CategoryMapper = Mapper[model.Category]{
	Columns: []string{"name", "description", "created_at", "updated_at"},
	Values: func(c model.Category) []any {
		return []any{c.Name, c.Description, c.CreatedAt, nullTime(c.UpdatedAt)}
	},
	Scan: func(row RowScanner) (model.Category, error) {
		var c model.Category
		var updated sql.NullTime
		err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &updated)
		c.UpdatedAt = timePtr(updated)
		return c, err
	},
}

// SupplierMapper maps model.Supplier onto the suppliers table.
var SupplierMapper = Mapper[model.Supplier]{
	Columns: []string{"name", "contact_email", "phone", "address", "created_at", "updated_at"},
	Values: func(s model.Supplier) []any {
		return []any{s.Name, s.ContactEmail, s.Phone, s.Address, s.CreatedAt, nullTime(s.UpdatedAt)}
	},
	Scan: func(row RowScanner) (model.Supplier, error) {
		var s model.Supplier
		var updated sql.NullTime
		err := row.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.Phone, &s.Address, &s.CreatedAt, &updated)
		s.UpdatedAt = timePtr(updated)
		return s, err
	},
}

// ProductMapper maps model.Product onto the products table.
var ProductMapper = Mapper[model.Product]{
	Columns: []string{"name", "description", "price", "quantity", "category_id", "supplier_id", "created_at", "updated_at"},
	Values: func(p model.Product) []any {
		return []any{p.Name, p.Description, p.Price, p.Quantity, p.CategoryID, p.SupplierID, p.CreatedAt, nullTime(p.UpdatedAt)}
	},
	Scan: func(row RowScanner) (model.Product, error) {
		var p model.Product
		var updated sql.NullTime
		err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.CategoryID, &p.SupplierID, &p.CreatedAt, &updated)
		p.UpdatedAt = timePtr(updated)
		return p, err
	},
}

// orderMapper maps the flat columns of model.Order onto the orders table.
// Order items are handled by OrderSQL, not here.
var orderMapper = Mapper[model.Order]{
	Columns: []string{"order_number", "order_date", "customer_email", "customer_name", "total_amount", "status", "shipping_address", "shipped_date", "delivered_date", "created_at", "updated_at"},
	Values: func(o model.Order) []any {
		return []any{o.OrderNumber, o.OrderDate, o.CustomerEmail, o.CustomerName, o.TotalAmount, o.Status, o.ShippingAddress,
			nullTime(o.ShippedDate), nullTime(o.DeliveredDate), o.CreatedAt, nullTime(o.UpdatedAt)}
	},
	Scan: func(row RowScanner) (model.Order, error) {
		var o model.Order
		var shipped, delivered, updated sql.NullTime
		err := row.Scan(&o.ID, &o.OrderNumber, &o.OrderDate, &o.CustomerEmail, &o.CustomerName, &o.TotalAmount, &o.Status,
			&o.ShippingAddress, &shipped, &delivered, &o.CreatedAt, &updated)
		o.ShippedDate = timePtr(shipped)
		o.DeliveredDate = timePtr(delivered)
		o.UpdatedAt = timePtr(updated)
		return o, err
	},
}

// DeliveryMapper maps model.Delivery onto the deliveries table.
var DeliveryMapper = Mapper[model.Delivery]{
	Columns: []string{"order_id", "tracking_number", "carrier_name", "status", "shipped_date", "delivered_date", "delivery_address", "delivery_notes", "signed_by", "created_at", "updated_at"},
	Values: func(d model.Delivery) []any {
		return []any{d.OrderID, d.TrackingNumber, d.CarrierName, d.Status, nullTime(d.ShippedDate), nullTime(d.DeliveredDate),
			d.DeliveryAddress, d.DeliveryNotes, d.SignedBy, d.CreatedAt, nullTime(d.UpdatedAt)}
	},
	Scan: func(row RowScanner) (model.Delivery, error) {
		var d model.Delivery
		var shipped, delivered, updated sql.NullTime
		err := row.Scan(&d.ID, &d.OrderID, &d.TrackingNumber, &d.CarrierName, &d.Status, &shipped, &delivered,
			&d.DeliveryAddress, &d.DeliveryNotes, &d.SignedBy, &d.CreatedAt, &updated)
		d.ShippedDate = timePtr(shipped)
		d.DeliveredDate = timePtr(delivered)
		d.UpdatedAt = timePtr(updated)
		return d, err
	},
}

// InventoryMapper maps model.Inventory onto the inventory table.
var InventoryMapper = Mapper[model.Inventory]{
	Columns: []string{"product_id", "quantity_on_hand", "quantity_reserved", "quantity_available", "reorder_level", "reorder_quantity", "warehouse_location", "created_at", "updated_at"},
	Values: func(i model.Inventory) []any {
		return []any{i.ProductID, i.QuantityOnHand, i.QuantityReserved, i.QuantityAvailable, i.ReorderLevel, i.ReorderQuantity,
			i.WarehouseLocation, i.CreatedAt, nullTime(i.UpdatedAt)}
	},
	Scan: func(row RowScanner) (model.Inventory, error) {
		var i model.Inventory
		var updated sql.NullTime
		err := row.Scan(&i.ID, &i.ProductID, &i.QuantityOnHand, &i.QuantityReserved, &i.QuantityAvailable, &i.ReorderLevel,
			&i.ReorderQuantity, &i.WarehouseLocation, &i.CreatedAt, &updated)
		i.UpdatedAt = timePtr(updated)
		return i, err
	},
}

// PaymentMapper maps model.Payment onto the payments table.
var PaymentMapper = Mapper[model.Payment]{
	Columns: []string{"order_id", "amount", "payment_method", "status", "transaction_id", "reference", "payment_date", "refund_date", "refund_reason", "created_at", "updated_at"},
	Values: func(p model.Payment) []any {
		return []any{p.OrderID, p.Amount, p.PaymentMethod, p.Status, p.TransactionID, p.Reference, p.PaymentDate,
			nullTime(p.RefundDate), p.RefundReason, p.CreatedAt, nullTime(p.UpdatedAt)}
	},
	Scan: func(row RowScanner) (model.Payment, error) {
		var p model.Payment
		var refund, updated sql.NullTime
		err := row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.PaymentMethod, &p.Status, &p.TransactionID, &p.Reference,
			&p.PaymentDate, &refund, &p.RefundReason, &p.CreatedAt, &updated)
		p.RefundDate = timePtr(refund)
		p.UpdatedAt = timePtr(updated)
		return p, err
	},
}

// RequestLogMapper maps model.RequestLog onto the request_logs table.
var RequestLogMapper = Mapper[model.RequestLog]{
	Columns: []string{"request_method", "request_path", "status_code", "elapsed_ms", "requested_at"},
	Values: func(r model.RequestLog) []any {
		return []any{r.RequestMethod, r.RequestPath, r.StatusCode, r.ElapsedMillis, r.RequestedAt}
	},
	Scan: func(row RowScanner) (model.RequestLog, error) {
		var r model.RequestLog
		err := row.Scan(&r.ID, &r.RequestMethod, &r.RequestPath, &r.StatusCode, &r.ElapsedMillis, &r.RequestedAt)
		return r, err
	},
}
