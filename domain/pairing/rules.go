// Package pairing derives culinary pairing suggestions from a terpene
// profile using an ordered table of concentration-threshold rules.
package pairing

import (
	"github.com/shopspring/decimal"

	"github.com/verdantlabs/infusion-core/domain"
)

// Terpene identifies one of the eight measured terpenes on a profile.
type Terpene string

// Measured terpenes
const (
	TerpeneMyrcene       Terpene = "myrcene"
	TerpeneLimonene      Terpene = "limonene"
	TerpeneCaryophyllene Terpene = "caryophyllene"
	TerpenePinene        Terpene = "pinene"
	TerpeneLinalool      Terpene = "linalool"
	TerpeneHumulene      Terpene = "humulene"
	TerpeneTerpinolene   Terpene = "terpinolene"
	TerpeneOcimene       Terpene = "ocimene"
)

// Rule maps one terpene to the pairing suggestions it triggers. A rule
// fires when the profile's concentration is strictly greater than the
// threshold; a concentration exactly at the threshold does not fire.
type Rule struct {
	Terpene     Terpene
	Threshold   decimal.Decimal
	Suggestions []string
}

// DefaultRules returns the standard pairing rule table. Rules are evaluated
// independently and in this order; every rule that fires appends all of its
// suggestions, with no deduplication.
func DefaultRules() []Rule {
	return []Rule{
		{
			Terpene:     TerpeneLimonene,
			Threshold:   decimal.NewFromFloat(0.5),
			Suggestions: []string{"citrus desserts", "seafood", "light salads"},
		},
		{
			Terpene:     TerpeneMyrcene,
			Threshold:   decimal.NewFromFloat(0.5),
			Suggestions: []string{"mangoes", "tropical fruits", "herbal dishes"},
		},
		{
			Terpene:     TerpeneCaryophyllene,
			Threshold:   decimal.NewFromFloat(0.3),
			Suggestions: []string{"black pepper", "spicy foods", "dark chocolate"},
		},
		{
			Terpene:     TerpenePinene,
			Threshold:   decimal.NewFromFloat(0.3),
			Suggestions: []string{"rosemary", "pine nuts", "Mediterranean"},
		},
		{
			Terpene:     TerpeneLinalool,
			Threshold:   decimal.NewFromFloat(0.2),
			Suggestions: []string{"lavender", "honey", "floral desserts"},
		},
	}
}

// concentration reads the named terpene's concentration from a profile.
// Unknown terpenes read as zero and so never fire a rule.
func concentration(profile *domain.TerpeneProfile, t Terpene) decimal.Decimal {
	switch t {
	case TerpeneMyrcene:
		return profile.Myrcene
	case TerpeneLimonene:
		return profile.Limonene
	case TerpeneCaryophyllene:
		return profile.Caryophyllene
	case TerpenePinene:
		return profile.Pinene
	case TerpeneLinalool:
		return profile.Linalool
	case TerpeneHumulene:
		return profile.Humulene
	case TerpeneTerpinolene:
		return profile.Terpinolene
	case TerpeneOcimene:
		return profile.Ocimene
	default:
		return decimal.Zero
	}
}

// suggestPairings evaluates the rule table against a profile's current
// concentrations. This is a pure function of the profile's field values;
// results are never memoized since concentrations may be edited after
// construction.
func suggestPairings(profile *domain.TerpeneProfile, rules []Rule) []string {
	var pairings []string

	for _, rule := range rules {
		if concentration(profile, rule.Terpene).GreaterThan(rule.Threshold) {
			pairings = append(pairings, rule.Suggestions...)
		}
	}

	return pairings
}
