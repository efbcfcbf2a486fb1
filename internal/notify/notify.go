// Package notify provides order.Sink implementations for processed orders.
package notify

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/cleancode-kart/internal/domain/order"
)

var (
	_ order.Sink = (*LogSink)(nil)
	_ order.Sink = (*Instrumented)(nil)
	_ order.Sink = Multi(nil)
)

// LogSink logs every processed order to the logger carried by the context.
type LogSink struct{}

// NewLogSink returns a LogSink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

func (s *LogSink) OrderProcessed(ctx context.Context, o *order.Order) {
	zctx.From(ctx).Info("Order processed and saved",
		zap.String("order_id", o.ID),
		zap.String("total", o.Total.StringFixed(2)),
	)
}

// Instrumented counts processed orders before delegating to the next sink.
type Instrumented struct {
	next      order.Sink
	processed metric.Int64Counter
}

// NewInstrumented wraps next with an "orders.processed" counter created from
// meter.
func NewInstrumented(next order.Sink, meter metric.Meter) (*Instrumented, error) {
	processed, err := meter.Int64Counter("orders.processed",
		metric.WithDescription("Number of orders priced and committed"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create orders.processed counter")
	}
	return &Instrumented{next: next, processed: processed}, nil
}

func (s *Instrumented) OrderProcessed(ctx context.Context, o *order.Order) {
	tier := "UNKNOWN"
	if o.Customer != nil {
		tier = o.Customer.Tier.String()
	}
	s.processed.Add(ctx, 1, metric.WithAttributes(attribute.String("tier", tier)))
	s.next.OrderProcessed(ctx, o)
}

// Multi fans a notification out to every sink in order.
type Multi []order.Sink

func (m Multi) OrderProcessed(ctx context.Context, o *order.Order) {
	for _, s := range m {
		s.OrderProcessed(ctx, o)
	}
}
