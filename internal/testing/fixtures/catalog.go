// Package fixtures provides a small synthetic catalog for engine and
// optimizer tests. Values are chosen so expected results can be worked out
// by hand.
package fixtures

import (
	"github.com/osse101/MixMaster_Go/internal/catalog"
	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/naming"
)

// Product ids
const (
	ProductWeed    = "test-kush"
	ProductMeth    = "test-meth"
	ProductCocaine = "test-coke"
)

// Ingredient ids
const (
	Cuke        = "cuke"
	Paracetamol = "paracetamol"
	Chili       = "chili"
	EnergyDrink = "energy-drink"
	MouthWash   = "mouth-wash"
	BlankGum    = "blank-gum"
)

// Data returns fresh catalog input. "Focused" is deliberately missing from
// the effect table.
func Data() catalog.Data {
	return catalog.Data{
		Products: []domain.Product{
			{ID: ProductWeed, Name: "Test Kush", Category: domain.CategoryWeed, DefaultEffect: "Calming", BasePrice: 100},
			{ID: ProductMeth, Name: "Test Meth", Category: domain.CategoryMeth, BasePrice: 70, AddictionModifier: 0.6},
			{ID: ProductCocaine, Name: "Test Coke", Category: domain.CategoryCocaine, BasePrice: 150, AddictionModifier: 0.4},
		},
		Ingredients: []domain.Ingredient{
			{ID: Cuke, Name: "Cuke", DefaultEffect: "Energizing", Cost: 2},
			{ID: Paracetamol, Name: "Paracetamol", DefaultEffect: "Sneaky", Cost: 3},
			{ID: Chili, Name: "Chili", DefaultEffect: "Spicy", Cost: 7},
			{ID: EnergyDrink, Name: "Energy Drink", DefaultEffect: "Athletic", Cost: 6},
			{ID: MouthWash, Name: "Mouth Wash", DefaultEffect: "Balding", Cost: 4},
			{ID: BlankGum, Name: "Blank Gum", Cost: 1},
		},
		Effects: []domain.Effect{
			{ID: "calming", Name: "Calming", PriceMultiplier: 0.10, AddictionModifier: 0, Tier: domain.TierCommon},
			{ID: "energizing", Name: "Energizing", PriceMultiplier: 0.22, AddictionModifier: 0.34, Tier: domain.TierCommon},
			{ID: "sneaky", Name: "Sneaky", PriceMultiplier: 0.24, AddictionModifier: 0.327, Tier: domain.TierCommon},
			{ID: "paranoia", Name: "Paranoia", PriceMultiplier: 0, AddictionModifier: 0, Tier: domain.TierNegative},
			{ID: "balding", Name: "Balding", PriceMultiplier: 0.30, AddictionModifier: 0, Tier: domain.TierCommon},
			{ID: "spicy", Name: "Spicy", PriceMultiplier: 0.38, AddictionModifier: 0.665, Tier: domain.TierRare},
			{ID: "athletic", Name: "Athletic", PriceMultiplier: 0.32, AddictionModifier: 0.607, Tier: domain.TierRare},
			{ID: "glowing", Name: "Glowing", PriceMultiplier: 0.48, AddictionModifier: 0.472, Tier: domain.TierLegendary},
			{ID: "electrifying", Name: "Electrifying", PriceMultiplier: 0.50, AddictionModifier: 0.235, Tier: domain.TierLegendary},
			{ID: "munchies", Name: "Munchies", PriceMultiplier: 0.12, AddictionModifier: 0.096, Tier: domain.TierCommon},
		},
		Rules: map[string][]domain.TransformationRule{
			"Paracetamol": {
				{IfPresent: []string{"Energizing"}, Replace: map[string]string{"Energizing": "Paranoia"}},
				{IfPresent: []string{"Paranoia"}, Replace: map[string]string{"Paranoia": "Balding"}},
			},
			"Cuke": {
				{IfPresent: []string{"Sneaky"}, Replace: map[string]string{"Sneaky": "Focused"}},
			},
			"Chili": {
				{IfPresent: []string{"Calming"}, IfNotPresent: []string{"Energizing"}, Replace: map[string]string{"Calming": "Glowing"}},
			},
			"Energy Drink": {
				{IfPresent: []string{"Calming"}, Replace: map[string]string{"Calming": "Munchies"}},
				{IfPresent: []string{"Spicy"}, Replace: map[string]string{"Spicy": "Electrifying"}},
			},
		},
		Naming: domain.NamingRules{
			KnownNames: []domain.KnownProductName{
				{Name: "Sleepy Sneak", Effects: []string{"Calming", "Sneaky"}},
			},
			Rules: []domain.NamingRule{
				{Effects: []string{"Glowing"}, NamePrefix: []string{"Radiant"}},
				{Effects: []string{"Sneaky"}, NamePrefix: []string{"Shadow"}},
				{Effects: []string{"Energizing"}, NamePrefix: []string{"Turbo"}},
			},
			Suffixes: map[domain.Category][]string{
				domain.CategoryWeed: {"Kush", "Haze"},
				domain.CategoryMeth: {"Crystal"},
			},
		},
	}
}

// Catalog builds the fixture catalog
func Catalog() *catalog.Catalog {
	return catalog.New(Data())
}

// CatalogWithCap builds the fixture catalog with a custom effect cap
func CatalogWithCap(maxEffects int) *catalog.Catalog {
	d := Data()
	d.MaxEffects = maxEffects
	return catalog.New(d)
}

// Resolver builds a naming resolver over the fixture naming table
func Resolver() naming.Resolver {
	return naming.NewResolver(Data().Naming)
}
