package model

import "time"

// Order status vocabulary.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// OrderStatuses lists every accepted order status.
var OrderStatuses = []string{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}

// OrderItem is one line of an Order. Items live and die with their order.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// Order is a customer order. OrderNumber is server-generated and never
// client-writable.
type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	OrderDate       time.Time   `json:"orderDate"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerName    string      `json:"customerName"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
	ShippedDate     *time.Time  `json:"shippedDate,omitempty"`
	DeliveredDate   *time.Time  `json:"deliveredDate,omitempty"`
	Items           []OrderItem `json:"orderItems"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       *time.Time  `json:"updatedAt,omitempty"`
}

func (Order) Table() string { return "orders" }

func (o Order) Key() int { return o.ID }

func (o Order) WithKey(id int) Order {
	o.ID = id
	return o
}
