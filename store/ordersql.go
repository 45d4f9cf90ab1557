package store

import (
	"context"
	"fmt"

	"github.com/kcmvp/commerce/model"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// OrderSQL is the relational Store for the Order aggregate. Order rows and
// their order_items rows are written in one transaction; a full-record
// update replaces the item set.
type OrderSQL struct {
	db   DB
	base *SQL[model.Order]
}

var _ Store[model.Order] = (*OrderSQL)(nil)

// NewOrderSQL builds the order store on db.
func NewOrderSQL(db DB) *OrderSQL {
	return &OrderSQL{db: db, base: NewSQL(db, orderMapper)}
}

func (s *OrderSQL) GetByID(ctx context.Context, id int) (mo.Option[model.Order], error) {
	opt, err := s.base.GetByID(ctx, id)
	if err != nil || opt.IsAbsent() {
		return opt, err
	}
	order := opt.MustGet()
	items, err := s.itemsFor(ctx, id)
	if err != nil {
		return mo.None[model.Order](), err
	}
	order.Items = items
	return mo.Some(order), nil
}

func (s *OrderSQL) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.base.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, "SELECT order_id, product_id, quantity, unit_price, line_total FROM order_items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query order_items: %w", err)
	}
	defer rows.Close()

	itemsByOrder := map[int][]model.OrderItem{}
	for rows.Next() {
		var orderID int
		var item model.OrderItem
		if err := rows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order_items: %w", err)
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lo.Map(orders, func(o model.Order, _ int) model.Order {
		o.Items = itemsByOrder[o.ID]
		return o
	}), nil
}

func (s *OrderSQL) Add(ctx context.Context, order model.Order) (model.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return order, fmt.Errorf("begin order insert: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO orders (order_number, order_date, customer_email, customer_name, total_amount, status, shipping_address, shipped_date, delivered_date, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		orderMapper.Values(order)...)
	if err != nil {
		return order, fmt.Errorf("insert order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return order, fmt.Errorf("insert order id: %w", err)
	}
	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity, unit_price, line_total) VALUES (?, ?, ?, ?, ?)",
			id, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal); err != nil {
			return order, fmt.Errorf("insert order item: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return order, fmt.Errorf("commit order insert: %w", err)
	}
	return order.WithKey(int(id)), nil
}

func (s *OrderSQL) Update(ctx context.Context, id int, order model.Order) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin order update: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM orders WHERE id = ?", id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check order: %w", err)
	}
	if exists == 0 {
		return false, nil
	}

	args := append(orderMapper.Values(order), id)
	if _, err := tx.ExecContext(ctx,
		"UPDATE orders SET order_number = ?, order_date = ?, customer_email = ?, customer_name = ?, total_amount = ?, status = ?, shipping_address = ?, shipped_date = ?, delivered_date = ?, created_at = ?, updated_at = ? WHERE id = ?",
		args...); err != nil {
		return false, fmt.Errorf("update order: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = ?", id); err != nil {
		return false, fmt.Errorf("replace order items: %w", err)
	}
	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity, unit_price, line_total) VALUES (?, ?, ?, ?, ?)",
			id, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal); err != nil {
			return false, fmt.Errorf("insert order item: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit order update: %w", err)
	}
	return true, nil
}

func (s *OrderSQL) Delete(ctx context.Context, id int) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin order delete: %w", err)
	}
	defer tx.Rollback()

	// Explicit child delete keeps engines without enforced FK cascade correct.
	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = ?", id); err != nil {
		return false, fmt.Errorf("delete order items: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete order affected: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit order delete: %w", err)
	}
	return n > 0, nil
}

func (s *OrderSQL) itemsFor(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT product_id, quantity, unit_price, line_total FROM order_items WHERE order_id = ? ORDER BY id", orderID)
	if err != nil {
		return nil, fmt.Errorf("query order_items: %w", err)
	}
	defer rows.Close()
	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order_items: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
