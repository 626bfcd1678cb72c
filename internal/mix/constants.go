package mix

// Warning formats attached to MixResult.Warnings
const (
	WarnInvalidBaseProduct = "Invalid base product selected"
	WarnFmtUnknownIngred   = "Unknown ingredient: %s"
	WarnFmtNoDefaultEffect = "No default effect for: %s"
	WarnFmtAlreadyPresent  = "%s: %s already present"
	WarnFmtCapReached      = "%s: effect cap reached, %s not added"
)

// Step explanation formats
const (
	ExplainFmtTransform      = "%s → %s"
	ExplainTransformSep      = ", "
	ExplainFmtAddedSuffix    = " + Added %s"
	ExplainFmtAdded          = "Added %s"
	ExplainFmtAlreadyPresent = "%s (already present, no change)"
	ExplainFmtCapReached     = "%s (effect cap reached, no change)"
)

// Suggestion result formats
const (
	SuggestFmtAdd = "Add %s"
)

// Add check reasons
const (
	ReasonIngredientNotFound = "Ingredient not found"
	ReasonFmtTooMany         = "Recipe already has %d ingredients"
)

// Log messages
const (
	LogMsgMixCalculated   = "Mix calculated"
	LogMsgInvalidMix      = "Mix calculated for unknown base product"
	LogMsgReverseLookup   = "Reverse lookup requested"
	LogMsgSuggestionsMade = "Ingredient suggestions generated"
)
