package memory

import (
	"context"

	"github.com/xenking/cleancode-kart/internal/domain/order"
)

var _ order.Sink = (*OrderLog)(nil)

// OrderLog records the IDs of processed orders in arrival order.
type OrderLog struct {
	ids []string
}

// NewOrderLog returns an empty OrderLog.
func NewOrderLog() *OrderLog {
	return &OrderLog{}
}

// OrderProcessed appends the order ID to the log.
func (l *OrderLog) OrderProcessed(_ context.Context, o *order.Order) {
	l.ids = append(l.ids, o.ID)
}

// IDs returns a copy of the recorded order IDs.
func (l *OrderLog) IDs() []string {
	ids := make([]string, len(l.ids))
	copy(ids, l.ids)
	return ids
}
