package web

import (
	"time"

	"github.com/kcmvp/commerce/model"
	"github.com/samber/lo"
)

// Request bodies carry only the client-writable subset of each entity;
// identities, reference codes, derived quantities and timestamps are
// server-owned and assigned by the services. Responses serialize the entities
// themselves, whose JSON shape has no internal-only fields.

type categoryBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (b categoryBody) entity() model.Category {
	return model.Category{Name: b.Name, Description: b.Description}
}

type supplierBody struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

func (b supplierBody) entity() model.Supplier {
	return model.Supplier{Name: b.Name, ContactEmail: b.ContactEmail, Phone: b.Phone, Address: b.Address}
}

type productBody struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CategoryID  int     `json:"categoryId"`
	SupplierID  int     `json:"supplierId"`
}

func (b productBody) entity() model.Product {
	return model.Product{
		Name: b.Name, Description: b.Description, Price: b.Price,
		Quantity: b.Quantity, CategoryID: b.CategoryID, SupplierID: b.SupplierID,
	}
}

type orderItemBody struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type orderCreateBody struct {
	CustomerEmail   string          `json:"customerEmail"`
	CustomerName    string          `json:"customerName"`
	ShippingAddress string          `json:"shippingAddress"`
	OrderItems      []orderItemBody `json:"orderItems"`
}

// entity computes each line total and the order total from the submitted
// items; clients never write amounts directly.
func (b orderCreateBody) entity() model.Order {
	items := lo.Map(b.OrderItems, func(item orderItemBody, _ int) model.OrderItem {
		return model.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: float64(item.Quantity) * item.UnitPrice,
		}
	})
	return model.Order{
		CustomerEmail:   b.CustomerEmail,
		CustomerName:    b.CustomerName,
		ShippingAddress: b.ShippingAddress,
		TotalAmount:     lo.SumBy(items, func(item model.OrderItem) float64 { return item.LineTotal }),
		Items:           items,
	}
}

type orderUpdateBody struct {
	Status          string `json:"status"`
	ShippingAddress string `json:"shippingAddress"`
}

func (b orderUpdateBody) apply(ord model.Order) model.Order {
	if b.Status != "" {
		ord.Status = b.Status
	}
	if b.ShippingAddress != "" {
		ord.ShippingAddress = b.ShippingAddress
	}
	return ord
}

type deliveryCreateBody struct {
	OrderID         int    `json:"orderId"`
	CarrierName     string `json:"carrierName"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryNotes   string `json:"deliveryNotes"`
}

func (b deliveryCreateBody) entity() model.Delivery {
	return model.Delivery{
		OrderID: b.OrderID, CarrierName: b.CarrierName,
		DeliveryAddress: b.DeliveryAddress, DeliveryNotes: b.DeliveryNotes,
	}
}

type deliveryUpdateBody struct {
	Status        string     `json:"status"`
	DeliveryNotes string     `json:"deliveryNotes"`
	SignedBy      string     `json:"signedBy"`
	ShippedDate   *time.Time `json:"shippedDate"`
	DeliveredDate *time.Time `json:"deliveredDate"`
}

func (b deliveryUpdateBody) apply(del model.Delivery) model.Delivery {
	if b.Status != "" {
		del.Status = b.Status
	}
	if b.DeliveryNotes != "" {
		del.DeliveryNotes = b.DeliveryNotes
	}
	if b.SignedBy != "" {
		del.SignedBy = b.SignedBy
	}
	if b.ShippedDate != nil {
		del.ShippedDate = b.ShippedDate
	}
	if b.DeliveredDate != nil {
		del.DeliveredDate = b.DeliveredDate
	}
	return del
}

type inventoryCreateBody struct {
	ProductID         int    `json:"productId"`
	QuantityOnHand    int    `json:"quantityOnHand"`
	QuantityReserved  int    `json:"quantityReserved"`
	ReorderLevel      int    `json:"reorderLevel"`
	ReorderQuantity   int    `json:"reorderQuantity"`
	WarehouseLocation string `json:"warehouseLocation"`
}

func (b inventoryCreateBody) entity() model.Inventory {
	return model.Inventory{
		ProductID: b.ProductID, QuantityOnHand: b.QuantityOnHand,
		QuantityReserved: b.QuantityReserved, ReorderLevel: b.ReorderLevel,
		ReorderQuantity: b.ReorderQuantity, WarehouseLocation: b.WarehouseLocation,
	}
}

type inventoryUpdateBody struct {
	QuantityOnHand    *int   `json:"quantityOnHand"`
	QuantityReserved  *int   `json:"quantityReserved"`
	ReorderLevel      *int   `json:"reorderLevel"`
	ReorderQuantity   *int   `json:"reorderQuantity"`
	WarehouseLocation string `json:"warehouseLocation"`
}

func (b inventoryUpdateBody) apply(inv model.Inventory) model.Inventory {
	if b.QuantityOnHand != nil {
		inv.QuantityOnHand = *b.QuantityOnHand
	}
	if b.QuantityReserved != nil {
		inv.QuantityReserved = *b.QuantityReserved
	}
	if b.ReorderLevel != nil {
		inv.ReorderLevel = *b.ReorderLevel
	}
	if b.ReorderQuantity != nil {
		inv.ReorderQuantity = *b.ReorderQuantity
	}
	if b.WarehouseLocation != "" {
		inv.WarehouseLocation = b.WarehouseLocation
	}
	return inv
}

type paymentCreateBody struct {
	OrderID       int     `json:"orderId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
	Reference     string  `json:"reference"`
}

func (b paymentCreateBody) entity() model.Payment {
	return model.Payment{
		OrderID: b.OrderID, Amount: b.Amount, PaymentMethod: b.PaymentMethod,
		TransactionID: b.TransactionID, Reference: b.Reference,
	}
}

type paymentUpdateBody struct {
	Status       string `json:"status"`
	RefundReason string `json:"refundReason"`
}

func (b paymentUpdateBody) apply(pay model.Payment) model.Payment {
	if b.Status != "" {
		pay.Status = b.Status
	}
	if b.RefundReason != "" {
		pay.RefundReason = b.RefundReason
	}
	return pay
}
