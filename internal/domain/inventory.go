package domain

// InventoryItem is an owned quantity of a catalog entry
type InventoryItem struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

// Inventory is what the player owns and can mix with. Each list is capped
// at MaxInventoryEntries.
type Inventory struct {
	Products    []InventoryItem `json:"products" validate:"max=100,dive"`
	Ingredients []InventoryItem `json:"ingredients" validate:"max=100,dive"`
}

// OwnedProducts returns distinct product IDs with a positive total quantity,
// in first-seen order
func (inv Inventory) OwnedProducts() []string {
	owned := mergeOwned(inv.Products)
	ids := make([]string, len(owned))
	for i, it := range owned {
		ids[i] = it.ID
	}
	return ids
}

// OwnedIngredients returns owned ingredients in first-seen order. Repeated
// IDs are merged into one item carrying the summed quantity.
func (inv Inventory) OwnedIngredients() []InventoryItem {
	return mergeOwned(inv.Ingredients)
}

func mergeOwned(items []InventoryItem) []InventoryItem {
	pos := make(map[string]int, len(items))
	merged := make([]InventoryItem, 0, len(items))
	for _, it := range items {
		if i, ok := pos[it.ID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		pos[it.ID] = len(merged)
		merged = append(merged, it)
	}

	owned := merged[:0]
	for _, it := range merged {
		if it.Quantity > 0 {
			owned = append(owned, it)
		}
	}
	return owned
}

// IngredientUsage counts how often an ingredient appears in a recommended recipe
type IngredientUsage struct {
	Ingredient string `json:"ingredient"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// Recommendation is a single ranked optimizer result
type Recommendation struct {
	Recipe          Recipe            `json:"recipe"`
	Result          MixResult         `json:"result"`
	Score           float64           `json:"score"`
	Reason          string            `json:"reason"`
	IngredientsUsed []IngredientUsage `json:"ingredients_used"`
}
