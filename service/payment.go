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

// Payment validates and persists payments against existing orders.
type Payment struct {
	store  store.Store[model.Payment]
	orders store.Store[model.Order]
}

func NewPayment(s store.Store[model.Payment], orders store.Store[model.Order]) *Payment {
	return &Payment{store: s, orders: orders}
}

func (p *Payment) rules(pay model.Payment) error {
	return validate.All(
		validate.PositiveID("orderId", pay.OrderID),
		validate.Positive("amount", pay.Amount),
		validate.Required("paymentMethod", pay.PaymentMethod),
		validate.MaxLen("paymentMethod", pay.PaymentMethod, 50),
		validate.Required("transactionId", pay.TransactionID),
		validate.MaxLen("transactionId", pay.TransactionID, 100),
		validate.MaxLen("reference", pay.Reference, 200),
		validate.MaxLen("refundReason", pay.RefundReason, 500),
		validate.OneOf("status", pay.Status, model.PaymentStatuses...),
	)
}

func (p *Payment) GetAll(ctx context.Context) ([]model.Payment, error) {
	return p.store.GetAll(ctx)
}

func (p *Payment) GetByID(ctx context.Context, id int) (mo.Option[model.Payment], error) {
	return getByID(ctx, p.store, id)
}

// ByOrder lists the payments of one order via a scan over GetAll.
func (p *Payment) ByOrder(ctx context.Context, orderID int) ([]model.Payment, error) {
	if err := checkID(orderID); err != nil {
		return nil, err
	}
	all, err := p.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(pay model.Payment, _ int) bool { return pay.OrderID == orderID }), nil
}

func (p *Payment) Create(ctx context.Context, pay model.Payment) (model.Payment, error) {
	if pay.Status == "" {
		pay.Status = model.PaymentPending
	}
	now := time.Now().UTC()
	if pay.PaymentDate.IsZero() {
		pay.PaymentDate = now
	}
	if err := p.rules(pay); err != nil {
		return pay, err
	}
	if _, err := mustExist(ctx, p.orders, "Order", pay.OrderID); err != nil {
		return pay, err
	}
	pay.ID = 0
	pay.CreatedAt = now
	pay.UpdatedAt = nil
	return p.store.Add(ctx, pay)
}

func (p *Payment) Update(ctx context.Context, id int, pay model.Payment) (model.Payment, error) {
	existing, err := target(ctx, p.store, "Payment", id)
	if err != nil {
		return pay, err
	}
	if err = p.rules(pay); err != nil {
		return pay, err
	}
	now := time.Now().UTC()
	// A transition into Refunded stamps the refund date once.
	if pay.Status == model.PaymentRefunded && existing.RefundDate == nil && pay.RefundDate == nil {
		pay.RefundDate = &now
	}
	pay.ID = id
	pay.CreatedAt = existing.CreatedAt
	pay.UpdatedAt = &now
	if _, err = p.store.Update(ctx, id, pay); err != nil {
		return pay, err
	}
	return pay, nil
}

func (p *Payment) Delete(ctx context.Context, id int) (bool, error) {
	return deleteByID(ctx, p.store, id)
}
