package discount

import (
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/cleancode-kart/internal/domain/customer"
)

// Quote is the priced greeting for a customer tier.
type Quote struct {
	Tier     customer.Tier
	Amount   decimal.Decimal
	Discount decimal.Decimal
	Message  string
	Final    decimal.Decimal
}

// NewQuote prices amount for tier using r. Discount is amount * rate and
// Final is amount - Discount; neither is rounded.
func NewQuote(r Resolver, tier customer.Tier, amount decimal.Decimal) Quote {
	discount := amount.Mul(r.Rate(tier))
	return Quote{
		Tier:     tier,
		Amount:   amount,
		Discount: discount,
		Message:  r.WelcomeMessage(tier),
		Final:    amount.Sub(discount),
	}
}

// Encode writes q as a JSON object. Money fields are rendered as strings with
// two decimal places.
func (q Quote) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("tier")
	e.Str(q.Tier.String())
	e.FieldStart("amount")
	e.Str(q.Amount.StringFixed(2))
	e.FieldStart("discount")
	e.Str(q.Discount.StringFixed(2))
	e.FieldStart("message")
	e.Str(q.Message)
	e.FieldStart("final")
	e.Str(q.Final.StringFixed(2))
	e.ObjEnd()
}
