package domain

// Category is the closed set of base product families
type Category string

const (
	CategoryWeed    Category = "weed"
	CategoryMeth    Category = "meth"
	CategoryCocaine Category = "cocaine"
)

// Categories lists every valid category in display order
var Categories = []Category{CategoryWeed, CategoryMeth, CategoryCocaine}

// ParseCategory converts a raw string into a Category
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Confidence tags how well a catalog entry has been verified in-game
type Confidence string

const (
	ConfidenceConfirmed   Confidence = "confirmed"
	ConfidenceUnconfirmed Confidence = "unconfirmed"
)

// Product is a base product a mix starts from
type Product struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          Category `json:"category"`
	DefaultEffect     string   `json:"default_effect,omitempty"` // Empty for meth and cocaine
	BasePrice         int      `json:"base_price"`
	AddictionModifier float64  `json:"addiction_modifier"`
}

// HasDefaultEffect reports whether the product starts with an active effect
func (p *Product) HasDefaultEffect() bool {
	return p.DefaultEffect != ""
}
