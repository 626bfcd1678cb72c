package domain

// EffectTier classifies effects for scoring and display only
type EffectTier string

const (
	TierCommon    EffectTier = "common"
	TierRare      EffectTier = "rare"
	TierLegendary EffectTier = "legendary"
	TierNegative  EffectTier = "negative"
)

// ParseEffectTier converts a raw string into an EffectTier
func ParseEffectTier(s string) (EffectTier, bool) {
	switch EffectTier(s) {
	case TierCommon, TierRare, TierLegendary, TierNegative:
		return EffectTier(s), true
	}
	return "", false
}

// Effect is a named modifier that can be active on a mix
type Effect struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	PriceMultiplier   float64    `json:"price_multiplier"`   // Summed across active effects
	AddictionModifier float64    `json:"addiction_modifier"` // Summed across active effects
	Tier              EffectTier `json:"tier"`
	Color             string     `json:"color,omitempty"`
	Description       string     `json:"description,omitempty"`
	Confidence        Confidence `json:"confidence,omitempty"`
}

// KnownProductName is an exact effect combination with a fixed in-game name
type KnownProductName struct {
	Name    string   `json:"name"`
	Effects []string `json:"effects"`
}

// NamingRule maps effects to candidate name prefixes
type NamingRule struct {
	Effects    []string `json:"effects"`
	NamePrefix []string `json:"name_prefix"`
}

// NamingRules is the full naming table used to derive product names
type NamingRules struct {
	KnownNames []KnownProductName    `json:"known_names"`
	Rules      []NamingRule          `json:"rules"`
	Suffixes   map[Category][]string `json:"suffixes"`
}
