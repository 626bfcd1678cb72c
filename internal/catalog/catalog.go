package catalog

import (
	"context"
	"fmt"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/effects"
	"github.com/osse101/MixMaster_Go/internal/logger"
)

// Data is the raw input to New. Tests build it directly; production code
// gets it from a validated Config.
type Data struct {
	Products    []domain.Product
	Ingredients []domain.Ingredient
	Effects     []domain.Effect
	Rules       map[string][]domain.TransformationRule // Keyed by ingredient name
	Naming      domain.NamingRules
	MaxEffects  int // Zero means domain.DefaultMaxEffects
}

// Catalog is the immutable reference data the engine and optimizer read.
// It is built once and safe for concurrent use.
type Catalog struct {
	products    []domain.Product
	ingredients []domain.Ingredient
	effects     []domain.Effect

	productByID      map[string]*domain.Product
	ingredientByID   map[string]*domain.Ingredient
	ingredientByName map[string]*domain.Ingredient
	effectByID       map[string]*domain.Effect
	effectByName     map[string]*domain.Effect // Normalized name

	rules      map[string][]domain.TransformationRule
	naming     domain.NamingRules
	maxEffects int
}

// New builds indexes over data. Slices are copied so later mutation of
// data by the caller never leaks into the catalog.
func New(data Data) *Catalog {
	c := &Catalog{
		products:         append([]domain.Product(nil), data.Products...),
		ingredients:      append([]domain.Ingredient(nil), data.Ingredients...),
		effects:          append([]domain.Effect(nil), data.Effects...),
		productByID:      make(map[string]*domain.Product, len(data.Products)),
		ingredientByID:   make(map[string]*domain.Ingredient, len(data.Ingredients)),
		ingredientByName: make(map[string]*domain.Ingredient, len(data.Ingredients)),
		effectByID:       make(map[string]*domain.Effect, len(data.Effects)),
		effectByName:     make(map[string]*domain.Effect, len(data.Effects)),
		rules:            make(map[string][]domain.TransformationRule, len(data.Rules)),
		naming:           data.Naming,
		maxEffects:       data.MaxEffects,
	}
	if c.maxEffects <= 0 {
		c.maxEffects = domain.DefaultMaxEffects
	}

	for i := range c.products {
		c.productByID[c.products[i].ID] = &c.products[i]
	}
	for i := range c.ingredients {
		c.ingredientByID[c.ingredients[i].ID] = &c.ingredients[i]
		c.ingredientByName[c.ingredients[i].Name] = &c.ingredients[i]
	}
	for i := range c.effects {
		c.effectByID[c.effects[i].ID] = &c.effects[i]
		c.effectByName[effects.Normalize(c.effects[i].Name)] = &c.effects[i]
	}
	for name, list := range data.Rules {
		c.rules[name] = append([]domain.TransformationRule(nil), list...)
	}

	return c
}

// FromConfig builds a Catalog from loaded documents
func FromConfig(config *Config) *Catalog {
	return New(Data{
		Products:    config.Products.Products,
		Ingredients: config.Ingredients.Ingredients,
		Effects:     config.Effects.Effects,
		Rules:       config.Transformations.Rules,
		Naming:      config.Naming.NamingRules,
		MaxEffects:  config.Transformations.Meta.MaxEffects,
	})
}

// LoadDir loads, validates and indexes every catalog document in dir
func LoadDir(ctx context.Context, dir, schemaDir string) (*Catalog, error) {
	loader := NewLoader(schemaDir)

	config, err := loader.Load(ctx, dir)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", dir, err)
	}

	c := FromConfig(config)
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"dir", dir,
		"products", len(c.products),
		"ingredients", len(c.ingredients),
		"effects", len(c.effects),
		"rule_sets", len(c.rules),
		"max_effects", c.maxEffects)

	return c, nil
}

// ProductByID returns the product with the given id
func (c *Catalog) ProductByID(id string) (domain.Product, bool) {
	p, ok := c.productByID[id]
	if !ok {
		return domain.Product{}, false
	}
	return *p, true
}

// IngredientByID returns the ingredient with the given id
func (c *Catalog) IngredientByID(id string) (domain.Ingredient, bool) {
	ing, ok := c.ingredientByID[id]
	if !ok {
		return domain.Ingredient{}, false
	}
	return *ing, true
}

// IngredientByName returns the ingredient with the exact display name
func (c *Catalog) IngredientByName(name string) (domain.Ingredient, bool) {
	ing, ok := c.ingredientByName[name]
	if !ok {
		return domain.Ingredient{}, false
	}
	return *ing, true
}

// EffectByName looks an effect up by name, ignoring case and punctuation
func (c *Catalog) EffectByName(name string) (domain.Effect, bool) {
	e, ok := c.effectByName[effects.Normalize(name)]
	if !ok {
		return domain.Effect{}, false
	}
	return *e, true
}

// EffectByID returns the effect with the given id
func (c *Catalog) EffectByID(id string) (domain.Effect, bool) {
	e, ok := c.effectByID[id]
	if !ok {
		return domain.Effect{}, false
	}
	return *e, true
}

// AllProducts returns a copy of every product in file order
func (c *Catalog) AllProducts() []domain.Product {
	return append([]domain.Product(nil), c.products...)
}

// AllIngredients returns a copy of every ingredient in file order
func (c *Catalog) AllIngredients() []domain.Ingredient {
	return append([]domain.Ingredient(nil), c.ingredients...)
}

// AllEffects returns a copy of every effect in file order
func (c *Catalog) AllEffects() []domain.Effect {
	return append([]domain.Effect(nil), c.effects...)
}

// RulesFor returns the ordered transformation rules for an ingredient name.
// The returned slice must not be modified.
func (c *Catalog) RulesFor(ingredientName string) []domain.TransformationRule {
	return c.rules[ingredientName]
}

// MaxEffects is the cap on simultaneously active effects
func (c *Catalog) MaxEffects() int {
	return c.maxEffects
}

// Naming returns the naming table
func (c *Catalog) Naming() domain.NamingRules {
	return c.naming
}

// TierOf returns the tier of a named effect, or "" when unknown
func (c *Catalog) TierOf(effectName string) domain.EffectTier {
	if e, ok := c.effectByName[effects.Normalize(effectName)]; ok {
		return e.Tier
	}
	return ""
}
