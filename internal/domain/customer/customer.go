package customer

import "strings"

// Tier is the customer classification that drives discount rates and
// welcome messages.
type Tier int

const (
	// TierUnknown is the zero value. It is produced only when unvalidated
	// input does not name a known tier.
	TierUnknown Tier = iota
	TierRegular
	TierPremium
	TierVIP
)

var tierNames = map[Tier]string{
	TierRegular: "REGULAR",
	TierPremium: "PREMIUM",
	TierVIP:     "VIP",
}

// String returns the canonical upper-case tier name, or "UNKNOWN".
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseTier maps an external tier label to a Tier. Matching is
// case-insensitive and ignores surrounding whitespace. Unrecognized labels
// return TierUnknown and false.
func ParseTier(s string) (Tier, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, name := range tierNames {
		if name == s {
			return t, true
		}
	}
	return TierUnknown, false
}

// Customer is the buyer attached to an order.
type Customer struct {
	ID    string
	Name  string
	Email string
	Tier  Tier
}

// Premium reports whether the customer receives the loyalty discount. Every
// tier other than Regular and Unknown qualifies, including tiers registered
// after the built-in ones; the rate itself comes from the discount resolver.
func (c *Customer) Premium() bool {
	return c.Tier != TierRegular && c.Tier != TierUnknown
}
