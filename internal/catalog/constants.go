package catalog

// ==================== Configuration File Names ====================

// Catalog document file names inside the catalog directory
const (
	ProductsFileName        = "products.json"
	IngredientsFileName     = "ingredients.json"
	EffectsFileName         = "effects.json"
	TransformationsFileName = "transformations.json"
	NamingFileName          = "naming.json"
)

// Schema identifiers declared in each document header. The matching schema
// file is <id>.schema.json inside the schema directory.
const (
	SchemaProducts        = "products"
	SchemaIngredients     = "ingredients"
	SchemaEffects         = "effects"
	SchemaTransformations = "transformations"
	SchemaNaming          = "naming"

	SchemaFileSuffix = ".schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadFileFailed    = "failed to read catalog file %s: %w"
	ErrMsgParseFileFailed   = "failed to parse catalog file %s: %w"
	ErrMsgSchemaFailed      = "schema validation failed for %s: %w"
	ErrMsgHeaderCheckFailed = "header check failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil         = "config is nil"
	ErrMsgNoProducts        = "no products defined"
	ErrMsgNoIngredients     = "no ingredients defined"
	ErrMsgNoEffects         = "no effects defined"
	ErrMsgEmptyID           = "has empty id"
	ErrMsgEmptyName         = "has empty name"
	ErrMsgNegativePrice     = "has negative base_price"
	ErrMsgNegativeCost      = "has negative cost"
	ErrMsgEmptyReplace      = "has empty replace map"
	ErrMsgNonPositiveMaxCap = "max_effects must be positive"
)

// Formatted validation errors
const (
	ErrFmtEntryAtIndex = "%w: %s at index %d %s"
	ErrFmtEntryNamed   = "%w: %s '%s' %s"
	ErrFmtRuleAtIndex  = "%w: rule %d for '%s' %s"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded  = "Catalog loaded"
	LogMsgDocumentLoaded = "Catalog document loaded"
)
