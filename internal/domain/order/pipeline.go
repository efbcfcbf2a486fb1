package order

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/cleancode-kart/internal/domain/customer"
	"github.com/xenking/cleancode-kart/internal/domain/discount"
)

// ErrInvalidOrder matches every *InvalidOrderError via errors.Is.
var ErrInvalidOrder = errors.New("invalid order")

// Validation failures wrapped by InvalidOrderError.
var (
	ErrNilOrder        = errors.New("order cannot be nil")
	ErrEmptyItems      = errors.New("order must contain at least one item")
	ErrMissingCustomer = errors.New("order must have a customer")
)

var (
	one            = decimal.NewFromInt(1)
	bulkThreshold  = decimal.NewFromInt(100)
	bulkMultiplier = decimal.RequireFromString("0.95")
)

// InvalidOrderError reports an order rejected before any pricing happened.
type InvalidOrderError struct {
	OrderID string
	Err     error
}

func (e *InvalidOrderError) Error() string {
	if e.OrderID == "" {
		return fmt.Sprintf("invalid order: %s", e.Err)
	}
	return fmt.Sprintf("invalid order %s: %s", e.OrderID, e.Err)
}

func (e *InvalidOrderError) Unwrap() error { return e.Err }

// Is reports true for ErrInvalidOrder.
func (e *InvalidOrderError) Is(target error) bool {
	return target == ErrInvalidOrder
}

// Pipeline prices and commits orders: validate, total, discount, commit,
// notify.
type Pipeline struct {
	discounts discount.Resolver
	sink      Sink
}

// NewPipeline creates a Pipeline. The resolver supplies the loyalty rate for
// every tier above Regular; a nil resolver falls back to
// discount.SwitchResolver. A nil sink disables notification.
func NewPipeline(discounts discount.Resolver, sink Sink) *Pipeline {
	if discounts == nil {
		discounts = discount.SwitchResolver{}
	}
	if sink == nil {
		sink = nopSink{}
	}
	return &Pipeline{
		discounts: discounts,
		sink:      sink,
	}
}

// Process validates o, computes its discounted total from the current line
// items, marks it processed and notifies the sink. On validation failure o
// is left untouched. Totals are recomputed from items on every call, so
// processing an unchanged order twice yields the same total.
func (p *Pipeline) Process(ctx context.Context, o *Order) error {
	if err := Validate(o); err != nil {
		return err
	}

	total := p.Price(o.Customer, o.Items())

	o.Total = total
	o.Status = StatusProcessed

	p.sink.OrderProcessed(ctx, o)
	return nil
}

// Price returns the discounted total of items for c without touching any
// order.
func (p *Pipeline) Price(c *customer.Customer, items []LineItem) decimal.Decimal {
	return p.applyDiscounts(c, Subtotal(items))
}

// applyDiscounts applies the loyalty discount and then the bulk discount.
// The bulk threshold is checked against the already discounted amount.
func (p *Pipeline) applyDiscounts(c *customer.Customer, total decimal.Decimal) decimal.Decimal {
	if c.Premium() {
		total = total.Mul(one.Sub(p.discounts.Rate(c.Tier)))
	}
	if total.GreaterThan(bulkThreshold) {
		total = total.Mul(bulkMultiplier)
	}
	return total
}

// Validate checks that o can be processed.
func Validate(o *Order) error {
	if o == nil {
		return &InvalidOrderError{Err: ErrNilOrder}
	}
	if len(o.items) == 0 {
		return &InvalidOrderError{OrderID: o.ID, Err: ErrEmptyItems}
	}
	if o.Customer == nil {
		return &InvalidOrderError{OrderID: o.ID, Err: ErrMissingCustomer}
	}
	return nil
}

// Subtotal returns the sum of price * quantity across items, unrounded.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total())
	}
	return sum
}

type nopSink struct{}

func (nopSink) OrderProcessed(context.Context, *Order) {}
