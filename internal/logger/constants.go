package logger

// Level names accepted in LOG_LEVEL. "warning" is an alias for "warn".
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Defaults for the preset configs. Environment names match the ENVIRONMENT
// values the config package understands.
const (
	DefaultServiceName    = "mix-master"
	DefaultVersion        = "dev"
	EnvironmentDev        = "dev"
	EnvironmentTest       = "test"
	EnvironmentProduction = "production"
)

// Attribute keys attached to every record, plus the per-request id
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
