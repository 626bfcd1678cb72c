package naming

import (
	"fmt"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/effects"
)

// Resolver derives display names for mixes from their final effect set
type Resolver interface {
	// GenerateName returns a known combination's name when the effect set
	// matches one exactly, otherwise "<prefix> <suffix>" built from the rules
	GenerateName(effectList []string, category domain.Category) string
}

type knownName struct {
	name string
	keys []string // Sorted normalized effects
}

type prefixRule struct {
	effects []string // Normalized
	prefix  []string
}

type resolver struct {
	known    []knownName
	rules    []prefixRule
	suffixes map[domain.Category][]string
	priority []string
}

// NewResolver builds a resolver over an immutable naming table
func NewResolver(table domain.NamingRules) Resolver {
	r := &resolver{
		known:    make([]knownName, 0, len(table.KnownNames)),
		rules:    make([]prefixRule, 0, len(table.Rules)),
		suffixes: make(map[domain.Category][]string, len(table.Suffixes)),
		priority: make([]string, len(domain.NamePriorityEffects)),
	}

	for _, k := range table.KnownNames {
		r.known = append(r.known, knownName{name: k.Name, keys: effects.SortedKeys(k.Effects)})
	}
	for _, rule := range table.Rules {
		normalized := make([]string, len(rule.Effects))
		for i, e := range rule.Effects {
			normalized[i] = effects.Normalize(e)
		}
		r.rules = append(r.rules, prefixRule{effects: normalized, prefix: append([]string(nil), rule.NamePrefix...)})
	}
	for category, list := range table.Suffixes {
		if len(list) > 0 {
			r.suffixes[category] = append([]string(nil), list...)
		}
	}
	for i, e := range domain.NamePriorityEffects {
		r.priority[i] = effects.Normalize(e)
	}

	return r
}

func (r *resolver) GenerateName(effectList []string, category domain.Category) string {
	if name, ok := r.exactMatch(effectList); ok {
		return name
	}

	prefix := r.choosePrefix(effectList)

	suffixes, ok := r.suffixes[category]
	if !ok {
		suffixes = []string{domain.DefaultNameSuffix}
	}
	suffix := suffixes[len(effectList)%len(suffixes)]

	return fmt.Sprintf(NameFormatTemplate, prefix, suffix)
}

func (r *resolver) exactMatch(effectList []string) (string, bool) {
	keys := effects.SortedKeys(effectList)
	for _, k := range r.known {
		if equalKeys(k.keys, keys) {
			return k.name, true
		}
	}
	return "", false
}

func (r *resolver) choosePrefix(effectList []string) string {
	for _, p := range r.priority {
		if !effects.Has(effectList, p) {
			continue
		}
		if prefix, ok := r.prefixFor(p); ok {
			return prefix
		}
	}

	for _, e := range effectList {
		if prefix, ok := r.prefixFor(effects.Normalize(e)); ok {
			return prefix
		}
	}

	return domain.DefaultNamePrefix
}

// prefixFor uses the first rule listing key, matching only when that rule
// has at least one prefix
func (r *resolver) prefixFor(key string) (string, bool) {
	for _, rule := range r.rules {
		for _, e := range rule.effects {
			if e != key {
				continue
			}
			if len(rule.prefix) == 0 {
				return "", false
			}
			return rule.prefix[0], true
		}
	}
	return "", false
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
