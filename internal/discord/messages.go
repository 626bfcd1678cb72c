package discord

// Friendly message constants for Discord responses
const (
	MsgProductNotFound    = "❓ **Unknown Base Product**\nTry the autocomplete list."
	MsgIngredientNotFound = "❓ **Unknown Ingredient**\nMaybe check the spelling?"
	MsgEffectNotFound     = "❓ **Unknown Effect**"
	MsgInvalidGoal        = "🎯 **Unknown Goal**\nPick one from the list."
	MsgInvalidInput       = "⚠️ **Invalid Input**\nUse comma separated ids, with an optional `:quantity`."
	MsgTooManyIngredients = "🧪 **Too Many Ingredients**\nA mix holds at most 16."
	MsgTimedOut           = "⏳ **Took Too Long**\nTry a smaller inventory."
	MsgNoRecommendations  = "Nothing worth mixing with that inventory."

	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorValid     = 0x2ecc71
	ColorInvalid   = 0xe74c3c
	ColorOptimizer = 0x9b59b6
	ColorCatalog   = 0x3498db
)

// Footer constants for standardized embed footers
const (
	FooterMixMaster = "MixMaster"
	FooterOptimizer = "MixMaster Optimizer"
)

// Log messages
const (
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgBotReady           = "Bot is ready"
	LogMsgCheckingCommands   = "Checking Discord commands..."
	LogMsgCommandsUnchanged  = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdating   = "Commands changed, updating..."
	LogMsgCommandsUpdated    = "Commands updated successfully"
	LogMsgEditResponseFailed = "Failed to edit interaction response"
	LogMsgDeferFailed        = "Failed to send deferred response"
	LogMsgSendFailed         = "Failed to send response"
	LogMsgCommandFailed      = "Command failed"
	LogMsgAutocompleteFailed = "Failed to send autocomplete choices"
	LogMsgUnhandledComplete  = "Unhandled autocomplete command"
	LogMsgHealthServer       = "Starting Discord health server"
	LogMsgHealthServerFailed = "Discord health server failed"
)

// Error messages
const (
	ErrMsgCreateSession  = "error creating Discord session"
	ErrMsgOpenConnection = "error opening connection"
)

// Command names and options
const (
	CmdPing       = "ping"
	CmdMix        = "mix"
	CmdOptimize   = "optimize"
	CmdIngredient = "ingredient"

	OptBase        = "base"
	OptIngredients = "ingredients"
	OptGoal        = "goal"
	OptProducts    = "products"
	OptTop         = "top"
	OptName        = "name"
	OptEffects     = "effects"
)

// Discord limits
const (
	maxChoices      = 25
	maxStepsShown   = 8
	maxResultsShown = 10
)
