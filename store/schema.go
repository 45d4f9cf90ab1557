package store

import (
	"context"
	"fmt"
	"strings"
)

// Schema returns the DDL for the given driver. Only the identity-column
// clause differs between engines; everything else is portable SQL.
func Schema(driver string) []string {
	identity := "INTEGER PRIMARY KEY AUTOINCREMENT"
	switch driver {
	case "mysql":
		identity = "INT NOT NULL AUTO_INCREMENT PRIMARY KEY"
	case "postgres":
		identity = "SERIAL PRIMARY KEY"
	}

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id {{id}},
			name VARCHAR(100) NOT NULL,
			description VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NULL
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id {{id}},
			name VARCHAR(200) NOT NULL,
			contact_email VARCHAR(255) NOT NULL DEFAULT '',
			phone VARCHAR(20) NOT NULL DEFAULT '',
			address VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id {{id}},
			name VARCHAR(200) NOT NULL,
			description VARCHAR(500) NOT NULL DEFAULT '',
			price DECIMAL(18,2) NOT NULL,
			quantity INTEGER NOT NULL,
			category_id INTEGER NOT NULL,
			supplier_id INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NULL,
			FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE RESTRICT,
			FOREIGN KEY (supplier_id) REFERENCES suppliers(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id {{id}},
			order_number VARCHAR(50) NOT NULL,
			order_date TIMESTAMP NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			customer_name VARCHAR(200) NOT NULL,
			total_amount DECIMAL(18,2) NOT NULL,
			status VARCHAR(50) NOT NULL,
			shipping_address VARCHAR(500) NOT NULL,
			shipped_date TIMESTAMP NULL,
			delivered_date TIMESTAMP NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id {{id}},
			order_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			unit_price DECIMAL(18,2) NOT NULL,
			line_total DECIMAL(18,2) NOT NULL,
			FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS deliveries (
			id {{id}},
			order_id INTEGER NOT NULL,
			tracking_number VARCHAR(100) NOT NULL,
			carrier_name VARCHAR(100) NOT NULL,
			status VARCHAR(50) NOT NULL,
			shipped_date TIMESTAMP NULL,
			delivered_date TIMESTAMP NULL,
			delivery_address VARCHAR(500) NOT NULL,
			delivery_notes VARCHAR(500) NOT NULL DEFAULT '',
			signed_by VARCHAR(200) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NULL,
			FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id {{id}},
			product_id INTEGER NOT NULL,
			quantity_on_hand INTEGER NOT NULL,
			quantity_reserved INTEGER NOT NULL,
			quantity_available INTEGER NOT NULL,
			reorder_level INTEGER NOT NULL,
			reorder_quantity INTEGER NOT NULL,
			warehouse_location VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NULL,
			FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id {{id}},
			order_id INTEGER NOT NULL,
			amount DECIMAL(18,2) NOT NULL,
			payment_method VARCHAR(50) NOT NULL,
			status VARCHAR(50) NOT NULL,
			transaction_id VARCHAR(100) NOT NULL,
			reference VARCHAR(200) NOT NULL DEFAULT '',
			payment_date TIMESTAMP NOT NULL,
			refund_date TIMESTAMP NULL,
			refund_reason VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NULL,
			FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE RESTRICT
		)`,
		`CREATE TABLE IF NOT EXISTS request_logs (
			id {{id}},
			request_method VARCHAR(10) NOT NULL,
			request_path VARCHAR(500) NOT NULL,
			status_code INTEGER NOT NULL,
			elapsed_ms BIGINT NOT NULL,
			requested_at TIMESTAMP NOT NULL
		)`,
	}

	for i, stmt := range ddl {
		ddl[i] = strings.ReplaceAll(stmt, "{{id}}", identity)
	}
	return ddl
}

// Migrate creates every table of the commerce schema on db.
func Migrate(ctx context.Context, db DB, driver string) error {
	for _, stmt := range Schema(driver) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
