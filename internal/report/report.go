// Package report renders demo results as JSON lines.
package report

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/cleancode-kart/internal/domain/discount"
	"github.com/xenking/cleancode-kart/internal/domain/order"
	"github.com/xenking/cleancode-kart/internal/domain/user"
)

// Writer writes one JSON object per line to an io.Writer.
type Writer struct {
	w io.Writer
	e jx.Encoder
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Order writes a processed order.
func (r *Writer) Order(o *order.Order) error {
	return r.write("order", func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(o.ID)
		if o.Customer != nil {
			e.FieldStart("customer_id")
			e.Str(o.Customer.ID)
			e.FieldStart("tier")
			e.Str(o.Customer.Tier.String())
		}
		e.FieldStart("items")
		e.ArrStart()
		for _, item := range o.Items() {
			e.ObjStart()
			e.FieldStart("product_id")
			e.Str(item.ProductID)
			e.FieldStart("name")
			e.Str(item.Name)
			e.FieldStart("price")
			e.Str(item.Price.StringFixed(2))
			e.FieldStart("quantity")
			e.Int(item.Quantity)
			e.ObjEnd()
		}
		e.ArrEnd()
		e.FieldStart("total")
		e.Str(o.Total.StringFixed(2))
		e.FieldStart("status")
		e.Str(string(o.Status))
		e.ObjEnd()
	})
}

// Quote writes a tier quote.
func (r *Writer) Quote(q discount.Quote) error {
	return r.write("quote", q.Encode)
}

// User writes a registered user without the password hash.
func (r *Writer) User(u *user.User) error {
	return r.write("user", func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("id")
		e.Str(u.ID)
		e.FieldStart("name")
		e.Str(u.FullName())
		e.FieldStart("email")
		e.Str(u.Email)
		e.FieldStart("address")
		e.Str(u.Address.String())
		e.FieldStart("date_of_birth")
		e.Str(u.DateOfBirth.Format("2006-01-02"))
		e.FieldStart("active")
		e.Bool(u.Active)
		e.ObjEnd()
	})
}

// write wraps the encoded body in {"kind": ..., "data": ...}.
func (r *Writer) write(kind string, body func(e *jx.Encoder)) error {
	r.e.Reset()
	r.e.ObjStart()
	r.e.FieldStart("kind")
	r.e.Str(kind)
	r.e.FieldStart("data")
	body(&r.e)
	r.e.ObjEnd()

	buf := append(r.e.Bytes(), '\n')
	if _, err := r.w.Write(buf); err != nil {
		return errors.Wrapf(err, "write %s", kind)
	}
	return nil
}
