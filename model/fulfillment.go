package model

import "time"

// Delivery status vocabulary.
const (
	DeliveryPending        = "Pending"
	DeliveryInTransit      = "In Transit"
	DeliveryOutForDelivery = "Out for Delivery"
	DeliveryDelivered      = "Delivered"
	DeliveryFailed         = "Failed"
)

// DeliveryStatuses lists every accepted delivery status.
var DeliveryStatuses = []string{DeliveryPending, DeliveryInTransit, DeliveryOutForDelivery, DeliveryDelivered, DeliveryFailed}

// Payment status vocabulary.
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
	PaymentRefunded  = "Refunded"
)

// PaymentStatuses lists every accepted payment status.
var PaymentStatuses = []string{PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded}

// Delivery tracks a shipment of an existing Order. TrackingNumber is
// server-generated.
type Delivery struct {
	ID              int        `json:"id"`
	OrderID         int        `json:"orderId"`
	TrackingNumber  string     `json:"trackingNumber"`
	CarrierName     string     `json:"carrierName"`
	Status          string     `json:"status"`
	ShippedDate     *time.Time `json:"shippedDate,omitempty"`
	DeliveredDate   *time.Time `json:"deliveredDate,omitempty"`
	DeliveryAddress string     `json:"deliveryAddress"`
	DeliveryNotes   string     `json:"deliveryNotes,omitempty"`
	SignedBy        string     `json:"signedBy,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

func (Delivery) Table() string { return "deliveries" }

func (d Delivery) Key() int { return d.ID }

func (d Delivery) WithKey(id int) Delivery {
	d.ID = id
	return d
}

// Inventory records stock for an existing Product. QuantityAvailable is
// derived (onHand - reserved) and recomputed by the service on every mutation.
type Inventory struct {
	ID                int        `json:"id"`
	ProductID         int        `json:"productId"`
	QuantityOnHand    int        `json:"quantityOnHand"`
	QuantityReserved  int        `json:"quantityReserved"`
	QuantityAvailable int        `json:"quantityAvailable"`
	ReorderLevel      int        `json:"reorderLevel"`
	ReorderQuantity   int        `json:"reorderQuantity"`
	WarehouseLocation string     `json:"warehouseLocation"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

func (Inventory) Table() string { return "inventory" }

func (i Inventory) Key() int { return i.ID }

func (i Inventory) WithKey(id int) Inventory {
	i.ID = id
	return i
}

// Payment records money received against an existing Order.
type Payment struct {
	ID            int        `json:"id"`
	OrderID       int        `json:"orderId"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId"`
	Reference     string     `json:"reference,omitempty"`
	PaymentDate   time.Time  `json:"paymentDate"`
	RefundDate    *time.Time `json:"refundDate,omitempty"`
	RefundReason  string     `json:"refundReason,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func (Payment) Table() string { return "payments" }

func (p Payment) Key() int { return p.ID }

func (p Payment) WithKey(id int) Payment {
	p.ID = id
	return p
}
