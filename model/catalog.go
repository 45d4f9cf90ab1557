// Package model holds the persisted entities of the commerce backend.
//
// Every entity carries an integer surrogate key, a creation timestamp and an
// optional update timestamp. Entities are plain values; all invariants are
// enforced by the service layer before anything reaches a store.
package model

import "time"

// Category groups products.
type Category struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (Category) Table() string { return "categories" }

func (c Category) Key() int { return c.ID }

func (c Category) WithKey(id int) Category {
	c.ID = id
	return c
}

// Supplier is a source of products.
type Supplier struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	ContactEmail string     `json:"contactEmail,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

func (Supplier) Table() string { return "suppliers" }

func (s Supplier) Key() int { return s.ID }

func (s Supplier) WithKey(id int) Supplier {
	s.ID = id
	return s
}

// Product belongs to one Category and one Supplier.
type Product struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	CategoryID  int        `json:"categoryId"`
	SupplierID  int        `json:"supplierId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (Product) Table() string { return "products" }

func (p Product) Key() int { return p.ID }

func (p Product) WithKey(id int) Product {
	p.ID = id
	return p
}
