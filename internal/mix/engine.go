package mix

import (
	"fmt"
	"strings"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/effects"
	"github.com/osse101/MixMaster_Go/internal/naming"
	"github.com/osse101/MixMaster_Go/internal/utils"
)

// Catalog is the read-only reference data the engine needs
type Catalog interface {
	ProductByID(id string) (domain.Product, bool)
	IngredientByID(id string) (domain.Ingredient, bool)
	EffectByName(name string) (domain.Effect, bool)
	RulesFor(ingredientName string) []domain.TransformationRule
	AllIngredients() []domain.Ingredient
	MaxEffects() int
}

// Calculator folds a recipe into a MixResult
type Calculator interface {
	CalculateMix(baseProductID string, ingredientIDs []string) domain.MixResult
}

// Engine provides pure mix logic. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	catalog Catalog
	namer   naming.Resolver
}

// NewEngine creates a new mix engine
func NewEngine(catalog Catalog, namer naming.Resolver) *Engine {
	return &Engine{catalog: catalog, namer: namer}
}

// CalculateMix applies ingredientIDs left to right to the base product.
// Only an unknown base product yields an invalid result; every other
// problem is reported as a warning.
func (e *Engine) CalculateMix(baseProductID string, ingredientIDs []string) domain.MixResult {
	product, ok := e.catalog.ProductByID(baseProductID)
	if !ok {
		return invalidResult(baseProductID, ingredientIDs)
	}

	active := make([]string, 0, e.catalog.MaxEffects())
	if product.HasDefaultEffect() {
		active = append(active, product.DefaultEffect)
	}

	result := domain.MixResult{
		BaseProduct: product.ID,
		Ingredients: append([]string{}, ingredientIDs...),
		BasePrice:   product.BasePrice,
		Steps:       []domain.MixStep{},
		Warnings:    []string{},
	}

	for _, id := range ingredientIDs {
		ingredient, ok := e.catalog.IngredientByID(id)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf(WarnFmtUnknownIngred, id))
			continue
		}

		result.TotalCost += ingredient.Cost

		var step *domain.MixStep
		var warnings []string
		active, step, warnings = e.applyIngredient(active, ingredient)
		if step != nil {
			result.Steps = append(result.Steps, *step)
		}
		result.Warnings = append(result.Warnings, warnings...)
	}

	e.derive(&result, product, active)

	if len(ingredientIDs) == 0 {
		result.ProductName = product.Name
	} else {
		result.ProductName = e.namer.GenerateName(result.Effects, product.Category)
	}
	result.IsValid = true

	return result
}

// applyIngredient runs one fold step. Rule conditions are evaluated against
// the effect set as it was before this ingredient, so one ingredient's
// rules never chain into each other.
func (e *Engine) applyIngredient(active []string, ingredient domain.Ingredient) ([]string, *domain.MixStep, []string) {
	maxEffects := e.catalog.MaxEffects()
	var warnings []string

	queued := e.matchRules(active, ingredient.Name)

	applied := make([]domain.Transformation, 0, len(queued))
	for _, t := range queued {
		active = effects.Remove(active, t.From)
		switch {
		case effects.Has(active, t.To):
			// already active
		case len(active) < maxEffects:
			active = append(active, t.To)
		default:
			warnings = append(warnings, fmt.Sprintf(WarnFmtCapReached, ingredient.Name, t.To))
		}
		// Recorded even when the new effect could not be added
		applied = append(applied, t)
	}

	def := ingredient.DefaultEffect
	addedDefault, alreadyPresent := false, false
	switch {
	case def == "":
		warnings = append(warnings, fmt.Sprintf(WarnFmtNoDefaultEffect, ingredient.Name))
	case effects.Has(active, def):
		alreadyPresent = true
		warnings = append(warnings, fmt.Sprintf(WarnFmtAlreadyPresent, ingredient.Name, def))
	case len(active) >= maxEffects:
		warnings = append(warnings, fmt.Sprintf(WarnFmtCapReached, ingredient.Name, def))
	default:
		active = append(active, def)
		addedDefault = true
	}

	step := &domain.MixStep{
		IngredientID:   ingredient.ID,
		IngredientName: ingredient.Name,
	}

	switch {
	case len(applied) > 0:
		step.Action = domain.StepTransformed
		step.EffectBefore = applied[0].From
		step.EffectAfter = applied[0].To
		step.Transformations = applied
		step.Explanation = explainTransformations(applied)
		if addedDefault {
			step.Explanation += fmt.Sprintf(ExplainFmtAddedSuffix, def)
		}
	case addedDefault:
		step.Action = domain.StepAdded
		step.EffectAfter = def
		step.Explanation = fmt.Sprintf(ExplainFmtAdded, def)
	case alreadyPresent:
		step.Action = domain.StepAdded
		step.EffectAfter = def
		step.Explanation = fmt.Sprintf(ExplainFmtAlreadyPresent, def)
	case def != "":
		step.Action = domain.StepAdded
		step.EffectAfter = def
		step.Explanation = fmt.Sprintf(ExplainFmtCapReached, def)
	default:
		step = nil
	}

	return active, step, warnings
}

// matchRules queues every replacement whose rule fires against snapshot
func (e *Engine) matchRules(snapshot []string, ingredientName string) []domain.Transformation {
	var queued []domain.Transformation
	for _, rule := range e.catalog.RulesFor(ingredientName) {
		if !ruleFires(rule, snapshot) {
			continue
		}
		for _, r := range rule.Replacements() {
			if effects.Has(snapshot, r.From) {
				queued = append(queued, domain.Transformation{From: r.From, To: r.To})
			}
		}
	}
	return queued
}

func ruleFires(rule domain.TransformationRule, snapshot []string) bool {
	for _, e := range rule.IfPresent {
		if !effects.Has(snapshot, e) {
			return false
		}
	}
	for _, e := range rule.IfNotPresent {
		if effects.Has(snapshot, e) {
			return false
		}
	}
	return true
}

// derive fills the numeric fields from the final effect set. Effects
// missing from the catalog contribute nothing.
func (e *Engine) derive(result *domain.MixResult, product domain.Product, active []string) {
	multiplierSum := 0.0
	addiction := product.AddictionModifier
	for _, name := range active {
		if effect, ok := e.catalog.EffectByName(name); ok {
			multiplierSum += effect.PriceMultiplier
			addiction += effect.AddictionModifier
		}
	}

	multiplier := 1 + multiplierSum
	result.Effects = active
	result.PriceMultiplier = utils.RoundTo(multiplier, 2)
	result.FinalPrice = int(utils.RoundHalfUp(float64(product.BasePrice) * multiplier))
	result.Profit = float64(result.FinalPrice) - result.TotalCost
	result.AddictionLevel = utils.RoundHalfUp(utils.ClampMax(addiction, 1)*100*100) / 100
}

func explainTransformations(applied []domain.Transformation) string {
	parts := make([]string, len(applied))
	for i, t := range applied {
		parts[i] = fmt.Sprintf(ExplainFmtTransform, t.From, t.To)
	}
	return strings.Join(parts, ExplainTransformSep)
}

func invalidResult(baseProductID string, ingredientIDs []string) domain.MixResult {
	return domain.MixResult{
		ProductName: domain.UnknownProductName,
		BaseProduct: baseProductID,
		Ingredients: append([]string{}, ingredientIDs...),
		Effects:     []string{},
		Steps:       []domain.MixStep{},
		Warnings:    []string{WarnInvalidBaseProduct},
		IsValid:     false,
	}
}
