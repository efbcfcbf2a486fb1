package discount

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/cleancode-kart/internal/domain/customer"
)

var (
	_ Resolver = (*Registry)(nil)

	_ Policy = Regular{}
	_ Policy = Premium{}
	_ Policy = VIP{}
)

// Registry resolves tiers by dispatching to one Policy per tier. New tiers
// are added with Register; callers holding a Resolver are unaffected.
type Registry struct {
	policies map[customer.Tier]Policy
	fallback Policy
}

// NewRegistry returns a Registry preloaded with the Regular, Premium and VIP
// policies.
func NewRegistry() *Registry {
	return &Registry{
		policies: map[customer.Tier]Policy{
			customer.TierRegular: Regular{},
			customer.TierPremium: Premium{},
			customer.TierVIP:     VIP{},
		},
		fallback: Fallback{},
	}
}

// Register installs p as the policy for tier, replacing any existing one.
// A nil p removes the tier, which then resolves to the fallback policy.
func (r *Registry) Register(tier customer.Tier, p Policy) {
	if p == nil {
		delete(r.policies, tier)
		return
	}
	r.policies[tier] = p
}

// Policy returns the policy for tier, or the zero-rate fallback.
func (r *Registry) Policy(tier customer.Tier) Policy {
	if p, ok := r.policies[tier]; ok {
		return p
	}
	return r.fallback
}

// Rate returns the discount rate for tier.
func (r *Registry) Rate(tier customer.Tier) decimal.Decimal {
	return r.Policy(tier).Rate()
}

// WelcomeMessage returns the greeting for tier.
func (r *Registry) WelcomeMessage(tier customer.Tier) string {
	return r.Policy(tier).WelcomeMessage()
}

// Regular grants 5% off.
type Regular struct{}

func (Regular) Rate() decimal.Decimal { return rateRegular }

func (p Regular) Discount(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.Rate())
}

func (Regular) WelcomeMessage() string { return MessageRegular }

// Premium grants 10% off.
type Premium struct{}

func (Premium) Rate() decimal.Decimal { return ratePremium }

func (p Premium) Discount(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.Rate())
}

func (Premium) WelcomeMessage() string { return MessagePremium }

// VIP grants 15% off.
type VIP struct{}

func (VIP) Rate() decimal.Decimal { return rateVIP }

func (p VIP) Discount(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.Rate())
}

func (VIP) WelcomeMessage() string { return MessageVIP }

// Fallback is used for tiers without a registered policy.
type Fallback struct{}

func (Fallback) Rate() decimal.Decimal { return zero }

func (Fallback) Discount(decimal.Decimal) decimal.Decimal { return zero }

func (Fallback) WelcomeMessage() string { return MessageDefault }
