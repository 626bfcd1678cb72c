package optimizer

// Reason formats per goal. Amounts are rendered with formatNumber.
const (
	ReasonFmtProfit          = "$%s profit"
	ReasonFmtValue           = "$%s sell price, $%s profit"
	ReasonFmtMultiplierBlend = "×%.2f multiplier, $%s profit"
	ReasonFmtROI             = "%s%% return on investment"
	ReasonFmtCheapest        = "$%s cost, $%s profit"
	ReasonFmtEffects         = "%d effects"
	ReasonFmtLegendary       = "%d legendary effect(s)"
	ReasonFmtRare            = "%d rare effect(s)"
	ReasonFmtMultiplier      = "%sx price multiplier"
	ReasonFmtAddiction       = "%s%% addiction"
	ReasonFmtBalanced        = "$%s profit, %d effects, %s%% addiction"
	ReasonFmtBeginner        = "%d ingredient(s), $%s profit"
	ReasonFmtMinIngredients  = "%d ingredient(s) for $%s profit"
	ReasonFmtSpeed           = "%d speed effect(s)"
	ReasonFmtTransformations = "%d transformation(s)"
	ReasonInvalidMix         = "Invalid mix"
)

// Scoring weights
const (
	valueWeight              = 10
	multiplierWeight         = 100
	tierCountWeight          = 100
	cheapestCeiling          = 1000
	balancedProfitWeight     = 0.4
	balancedEffectWeight     = 20
	balancedAddictionWeight  = 0.3
	beginnerMaxIngredients   = 2
	beginnerBonus            = 100
	beginnerPenalty          = 20
	minIngredientsPenalty    = 50
	speedEffectWeight        = 100
	transformationStepWeight = 50
)

// SpeedEffectKeywords mark an effect as a speed effect when contained in its name
var SpeedEffectKeywords = []string{"athletic", "energizing", "electrifying"}

// Log messages
const (
	LogMsgOptimizationStarted  = "Optimization started"
	LogMsgOptimizationFinished = "Optimization finished"
	LogMsgProductEvaluated     = "Base product evaluated"
	LogMsgCombinationCeiling   = "Combination ceiling reached"
	LogMsgGoalCatalogLoaded    = "Goal catalog loaded"
)

// Error messages
const (
	ErrMsgReadGoalCatalog   = "failed to read goal catalog"
	ErrMsgDecodeGoalCatalog = "failed to decode goal catalog"
	ErrMsgDuplicateGoal     = "duplicate goal"
	ErrMsgMissingGoal       = "goal catalog does not describe goal"
)

// DefaultGoalCatalogFile is the goal metadata file under the configs directory
const DefaultGoalCatalogFile = "goals.yaml"
