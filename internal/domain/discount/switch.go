package discount

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/cleancode-kart/internal/domain/customer"
)

var _ Resolver = SwitchResolver{}

// SwitchResolver resolves tiers with a switch over the closed tier set.
// It behaves exactly like a Registry holding only the built-in policies.
type SwitchResolver struct{}

// Rate returns the discount rate for tier.
func (SwitchResolver) Rate(tier customer.Tier) decimal.Decimal {
	switch tier {
	case customer.TierRegular:
		return rateRegular
	case customer.TierPremium:
		return ratePremium
	case customer.TierVIP:
		return rateVIP
	default:
		return zero
	}
}

// WelcomeMessage returns the greeting for tier.
func (SwitchResolver) WelcomeMessage(tier customer.Tier) string {
	switch tier {
	case customer.TierRegular:
		return MessageRegular
	case customer.TierPremium:
		return MessagePremium
	case customer.TierVIP:
		return MessageVIP
	default:
		return MessageDefault
	}
}
