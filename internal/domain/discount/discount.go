package discount

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/cleancode-kart/internal/domain/customer"
)

// Welcome messages per tier.
const (
	MessageRegular = "Welcome! Enjoy your shopping."
	MessagePremium = "Welcome back! You have premium benefits."
	MessageVIP     = "Welcome VIP! Exclusive offers await you."
	MessageDefault = "Welcome!"
)

var (
	rateRegular = decimal.RequireFromString("0.05")
	ratePremium = decimal.RequireFromString("0.10")
	rateVIP     = decimal.RequireFromString("0.15")
	zero        = decimal.Zero
)

// Resolver maps a customer tier to its discount rate and welcome message.
// Unknown tiers resolve to a zero rate and MessageDefault; resolution never
// fails.
type Resolver interface {
	Rate(tier customer.Tier) decimal.Decimal
	WelcomeMessage(tier customer.Tier) string
}

// Policy is the per-tier discount behaviour used by Registry.
type Policy interface {
	// Rate is the fraction of the amount taken off, e.g. 0.10 for 10%.
	Rate() decimal.Decimal
	// Discount returns the monetary discount for amount.
	Discount(amount decimal.Decimal) decimal.Decimal
	WelcomeMessage() string
}
