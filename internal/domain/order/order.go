package order

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xenking/cleancode-kart/internal/domain/customer"
)

// Status enumerates the lifecycle states of an order. Processing only moves
// an order from StatusPending to StatusProcessed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Order is a customer order. Total and Status are written only by
// Pipeline.Process.
type Order struct {
	ID       string
	Customer *customer.Customer
	Total    decimal.Decimal
	Status   Status

	items []LineItem
}

// New creates a pending order with no items.
func New(id string, c *customer.Customer) *Order {
	return &Order{
		ID:       id,
		Customer: c,
		Total:    decimal.Zero,
		Status:   StatusPending,
	}
}

// AddItem appends a line item to the order.
func (o *Order) AddItem(item LineItem) {
	o.items = append(o.items, item)
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// LineItem is a single product line in an order.
type LineItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Total returns Price * Quantity.
func (i LineItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sink is notified after an order has been processed. The order has already
// been committed and must not be modified.
type Sink interface {
	OrderProcessed(ctx context.Context, o *Order)
}
