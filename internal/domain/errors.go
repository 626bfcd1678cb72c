package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgProductNotFound    = "product not found"
	ErrMsgIngredientNotFound = "Ingredient not found"
	ErrMsgEffectNotFound     = "effect not found"
	ErrMsgInvalidCatalog     = "invalid catalog"
	ErrMsgInvalidCategory    = "invalid product category"

	// Optimizer errors
	ErrMsgInvalidGoal = "invalid optimization goal"

	// Recipe errors
	ErrMsgEmptyRecipe    = "recipe has no base product"
	ErrMsgTooManyIngreds = "too many ingredients"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrProductNotFound    = errors.New(ErrMsgProductNotFound)
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)
	ErrEffectNotFound     = errors.New(ErrMsgEffectNotFound)
	ErrInvalidCatalog     = errors.New(ErrMsgInvalidCatalog)
	ErrInvalidCategory    = errors.New(ErrMsgInvalidCategory)

	ErrInvalidGoal = errors.New(ErrMsgInvalidGoal)

	ErrEmptyRecipe    = errors.New(ErrMsgEmptyRecipe)
	ErrTooManyIngreds = errors.New(ErrMsgTooManyIngreds)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
