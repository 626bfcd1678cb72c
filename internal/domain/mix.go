package domain

// StepAction describes what an ingredient did to the effect set
type StepAction string

const (
	StepAdded       StepAction = "added"
	StepTransformed StepAction = "transformed"
)

// Transformation records an effect that was replaced during a step
type Transformation struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MixStep is the trace entry for a single applied ingredient
type MixStep struct {
	IngredientID    string           `json:"ingredient_id"`
	IngredientName  string           `json:"ingredient_name"`
	Action          StepAction       `json:"action"`
	EffectBefore    string           `json:"effect_before,omitempty"` // First transformation's source
	EffectAfter     string           `json:"effect_after,omitempty"`
	Transformations []Transformation `json:"transformations,omitempty"`
	Explanation     string           `json:"explanation"`
}

// MixResult is the full outcome of applying a recipe to a base product
type MixResult struct {
	ProductName     string    `json:"product_name"`
	BaseProduct     string    `json:"base_product"`
	Ingredients     []string  `json:"ingredients"`
	Effects         []string  `json:"effects"`
	BasePrice       int       `json:"base_price"`
	PriceMultiplier float64   `json:"price_multiplier"` // Rounded to 2 decimals
	FinalPrice      int       `json:"final_price"`
	TotalCost       float64   `json:"total_cost"`
	Profit          float64   `json:"profit"`
	AddictionLevel  float64   `json:"addiction_level"` // Percentage, 2 decimals
	Steps           []MixStep `json:"steps"`
	IsValid         bool      `json:"is_valid"`
	Warnings        []string  `json:"warnings"`
}

// Suggestion previews what adding an ingredient to the current effect set does
type Suggestion struct {
	IngredientID   string         `json:"ingredient_id"`
	IngredientName string         `json:"ingredient_name"`
	Kind           SuggestionKind `json:"kind"`
	Result         string         `json:"result"`
}

// SuggestionKind tells whether an ingredient would transform or just add
type SuggestionKind string

const (
	SuggestTransform SuggestionKind = "transform"
	SuggestAdd       SuggestionKind = "add"
)

// AddCheck reports whether an ingredient can be appended to a recipe
type AddCheck struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Recipe is a saved base product plus ingredient sequence
type Recipe struct {
	BaseProductID string   `json:"base_product_id"`
	Ingredients   []string `json:"ingredients"`
}

// ReverseMatch is a recipe known to produce a target effect combination
type ReverseMatch struct {
	Recipe Recipe    `json:"recipe"`
	Result MixResult `json:"result"`
}
