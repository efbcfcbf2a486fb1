package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/cleancode-kart/internal/domain/customer"
	"github.com/xenking/cleancode-kart/internal/domain/discount"
	"github.com/xenking/cleancode-kart/internal/domain/order"
	"github.com/xenking/cleancode-kart/internal/domain/user"
	"github.com/xenking/cleancode-kart/internal/notify"
	"github.com/xenking/cleancode-kart/internal/report"
	"github.com/xenking/cleancode-kart/internal/storage/memory"
)

const instrumentationName = "github.com/xenking/cleancode-kart"

// Run wires the demo from the process telemetry and runs it once. It is the
// single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("dispatch", cfg.Dispatch),
		zap.String("report", cfg.Report),
	)

	demo, err := NewDemo(
		lg,
		m.MeterProvider().Meter(instrumentationName),
		m.TracerProvider().Tracer(instrumentationName),
		cfg,
		os.Stdout,
	)
	if err != nil {
		return errors.Wrap(err, "create demo")
	}
	return demo.Run(ctx)
}

// Demo runs the pricing, quoting and registration showcases.
type Demo struct {
	lg       *zap.Logger
	tracer   trace.Tracer
	resolver discount.Resolver
	pipeline *order.Pipeline
	users    *user.Service
	orders   *memory.OrderLog
	report   *report.Writer
	amount   decimal.Decimal
	tiers    []string
}

// NewDemo builds a Demo. Reports go to out when cfg.Report is ReportJSON and
// to lg otherwise.
func NewDemo(
	lg *zap.Logger,
	meter metric.Meter,
	tracer trace.Tracer,
	cfg *Config,
	out io.Writer,
) (*Demo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	amount, err := cfg.Amount()
	if err != nil {
		return nil, err
	}

	orders := memory.NewOrderLog()
	sink, err := notify.NewInstrumented(notify.Multi{orders, notify.NewLogSink()}, meter)
	if err != nil {
		return nil, err
	}

	resolver := cfg.Resolver()
	d := &Demo{
		lg:       lg,
		tracer:   tracer,
		resolver: resolver,
		pipeline: order.NewPipeline(resolver, sink),
		users:    user.NewService(memory.NewUserRepository()),
		orders:   orders,
		amount:   amount,
		tiers:    cfg.QuoteTiers,
	}
	if cfg.Report == ReportJSON {
		d.report = report.NewWriter(out)
	}
	return d, nil
}

// Run executes every showcase in order and stops at the first failure.
func (d *Demo) Run(ctx context.Context) error {
	ctx = zctx.Base(ctx, d.lg)

	steps := []struct {
		name string
		fn   func(ctx context.Context) error
	}{
		{"orders", d.processOrders},
		{"quotes", d.quoteTiers},
		{"users", d.registerUsers},
	}
	for _, s := range steps {
		if err := d.traced(ctx, "demo."+s.name, s.fn); err != nil {
			return errors.Wrap(err, s.name)
		}
	}
	d.lg.Info("Demo complete", zap.Strings("processed_orders", d.orders.IDs()))
	return nil
}

func (d *Demo) traced(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, span := d.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (d *Demo) processOrders(ctx context.Context) error {
	for _, o := range sampleOrders() {
		if err := d.pipeline.Process(ctx, o); err != nil {
			if errors.Is(err, order.ErrInvalidOrder) {
				d.lg.Warn("Order rejected", zap.String("order_id", o.ID), zap.Error(err))
				continue
			}
			return errors.Wrapf(err, "process order %s", o.ID)
		}
		if err := d.emitOrder(o); err != nil {
			return err
		}
	}
	return nil
}

func (d *Demo) emitOrder(o *order.Order) error {
	if d.report != nil {
		return d.report.Order(o)
	}
	d.lg.Info("Order",
		zap.String("order_id", o.ID),
		zap.String("customer", o.Customer.Name),
		zap.Stringer("tier", o.Customer.Tier),
		zap.Stringer("subtotal", order.Subtotal(o.Items())),
		zap.String("total", o.Total.StringFixed(2)),
		zap.String("status", string(o.Status)),
	)
	return nil
}

func (d *Demo) quoteTiers(_ context.Context) error {
	for _, label := range d.tiers {
		tier, ok := customer.ParseTier(label)
		if !ok {
			d.lg.Warn("Unknown tier, using fallback policy", zap.String("tier", label))
		}

		q := discount.NewQuote(d.resolver, tier, d.amount)
		if d.report != nil {
			if err := d.report.Quote(q); err != nil {
				return err
			}
			continue
		}
		d.lg.Info("Quote",
			zap.Stringer("tier", q.Tier),
			zap.String("amount", q.Amount.StringFixed(2)),
			zap.String("discount", q.Discount.StringFixed(2)),
			zap.String("message", q.Message),
			zap.String("final", q.Final.StringFixed(2)),
		)
	}
	return nil
}

func (d *Demo) registerUsers(ctx context.Context) error {
	data := user.RegistrationData{
		FirstName:   "Bob",
		LastName:    "Wilson",
		Email:       "bob@example.com",
		PhoneNumber: "555-987-6543",
		Address: &user.Address{
			Street:  "456 Oak Ave",
			City:    "Los Angeles",
			State:   "CA",
			ZipCode: "90210",
			Country: "USA",
		},
		DateOfBirth: time.Date(1985, time.August, 20, 0, 0, 0, 0, time.UTC),
		Password:    "password456",
	}

	u, err := d.users.Register(ctx, data)
	if err != nil {
		return errors.Wrap(err, "register")
	}
	d.lg.Info("User created", zap.String("user_id", u.ID), zap.String("name", u.FullName()))

	data.Email = "bob.wilson@example.com"
	data.Active = true
	u, err = d.users.UpdateProfile(ctx, u.ID, data)
	if err != nil {
		return errors.Wrap(err, "update profile")
	}
	if !user.CheckPassword(u, data.Password) {
		return errors.Errorf("password of user %s does not match after update", u.ID)
	}
	d.lg.Info("User profile updated",
		zap.String("user_id", u.ID),
		zap.String("email", u.Email),
		zap.Stringer("address", u.Address),
		zap.Bool("password_verified", true),
	)

	if d.report != nil {
		return d.report.User(u)
	}
	return nil
}

// sampleOrders returns one order per pricing path plus one that fails
// validation. Order IDs are random.
func sampleOrders() []*order.Order {
	samples := []struct {
		customer customer.Customer
		item     order.LineItem
	}{
		{
			customer: customer.Customer{ID: "C001", Name: "Bob Wilson", Email: "bob@example.com", Tier: customer.TierRegular},
			item:     order.LineItem{ProductID: "P001", Name: "Headphones", Price: decimal.RequireFromString("29.99"), Quantity: 1},
		},
		{
			customer: customer.Customer{ID: "C002", Name: "Alice Brown", Email: "alice@example.com", Tier: customer.TierRegular},
			item:     order.LineItem{ProductID: "P002", Name: "Laptop", Price: decimal.RequireFromString("1200.00"), Quantity: 1},
		},
		{
			customer: customer.Customer{ID: "C003", Name: "John Doe", Email: "john@example.com", Tier: customer.TierPremium},
			item:     order.LineItem{ProductID: "P003", Name: "Workstation", Price: decimal.RequireFromString("1500.00"), Quantity: 1},
		},
		{
			customer: customer.Customer{ID: "C004", Name: "Jane Smith", Email: "jane@example.com", Tier: customer.TierPremium},
			item:     order.LineItem{ProductID: "P004", Name: "Monitor", Price: decimal.RequireFromString("299.99"), Quantity: 1},
		},
	}

	orders := make([]*order.Order, 0, len(samples)+1)
	for i := range samples {
		o := order.New(uuid.New().String(), &samples[i].customer)
		o.AddItem(samples[i].item)
		orders = append(orders, o)
	}

	// No items: rejected by validation.
	orders = append(orders, order.New(uuid.New().String(), &samples[0].customer))
	return orders
}
