package domain

import "sort"

// Ingredient is a mixable item that contributes a default effect and may
// transform effects already present
type Ingredient struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"` // Transformation rules are keyed by this name
	DefaultEffect string     `json:"default_effect"`
	Cost          float64    `json:"cost"`
	Confidence    Confidence `json:"confidence,omitempty"`
	Source        string     `json:"source,omitempty"`
}

// TransformationRule replaces active effects when its conditions hold.
// Conditions are checked against the effect set as it was before the
// ingredient was applied.
type TransformationRule struct {
	IfPresent    []string          `json:"if_present"`
	IfNotPresent []string          `json:"if_not_present"`
	Replace      map[string]string `json:"replace"`
}

// Replacement is a single old -> new effect pair
type Replacement struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Replacements returns the replace map as pairs sorted by source effect so
// iteration order never depends on map ordering
func (r TransformationRule) Replacements() []Replacement {
	pairs := make([]Replacement, 0, len(r.Replace))
	for from, to := range r.Replace {
		pairs = append(pairs, Replacement{From: from, To: to})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].From < pairs[j].From })
	return pairs
}
