package domain

// Mixing limits
const (
	DefaultMaxEffects    = 8  // Effect cap when the catalog does not override it
	MaxRecipeIngredients = 16 // Upper bound accepted from API callers
	DefaultNameSuffix    = "Mix"
	DefaultNamePrefix    = "Custom"
	UnknownProductName   = "Unknown"
	DefaultOptimizerTopN = 5
	MaxOptimizerTopN     = 50
)

// Optimizer search limits
const (
	MaxIngredientCopies       = 2   // Each owned ingredient appears at most this many times in the pool
	MaxCombinationSize        = 4   // Longest ingredient sequence explored
	MaxCombinationsPerProduct = 500 // Hard cap per owned product
	MaxInventoryEntries       = 100 // Longest products or ingredients list accepted from API callers
)

// NamePriorityEffects are checked in order when picking a name prefix
var NamePriorityEffects = []string{
	"Anti-Gravity",
	"Zombifying",
	"Glowing",
	"Electrifying",
	"Cyclopean",
	"Shrinking",
}
