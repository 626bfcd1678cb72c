package config

import "time"

// Environment variable names
const (
	EnvPort                 = "PORT"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvLogDir               = "LOG_DIR"
	EnvEnvironment          = "ENVIRONMENT"
	EnvVersion              = "VERSION"
	EnvServiceName          = "SERVICE_NAME"
	EnvAPIKey               = "API_KEY"
	EnvCatalogDir           = "CATALOG_DIR"
	EnvSchemaDir            = "SCHEMA_DIR"
	EnvGoalsPath            = "GOALS_PATH"
	EnvMixCacheSize         = "MIX_CACHE_SIZE"
	EnvMixCacheTTL          = "MIX_CACHE_TTL"
	EnvOptimizerWorkers     = "OPTIMIZER_WORKERS"
	EnvOptimizerDefaultTopN = "OPTIMIZER_DEFAULT_TOP_N"
	EnvSchemaVersion        = "ENV_SCHEMA_VERSION"
	EnvDiscordToken         = "DISCORD_TOKEN"
	EnvDiscordAppID         = "DISCORD_APP_ID"
	EnvDiscordGuildID       = "DISCORD_GUILD_ID"
	EnvTrustedProxies       = "TRUSTED_PROXIES"
	EnvRequestTimeout       = "REQUEST_TIMEOUT"
	EnvDiscordHealthPort    = "DISCORD_HEALTH_PORT"
	EnvDiscordForceUpdate   = "DISCORD_FORCE_COMMAND_UPDATE"
)

// Defaults
const (
	DefaultPort                 = 8080
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultLogDir               = "logs"
	DefaultEnvironment          = "dev"
	DefaultVersion              = "dev"
	DefaultServiceName          = "mix-master"
	DefaultCatalogDir           = "configs/catalog"
	DefaultSchemaDir            = "configs/schemas"
	DefaultGoalsPath            = "configs/goals.yaml"
	DefaultMixCacheSize         = 1024
	DefaultMixCacheTTL          = 10 * time.Minute
	DefaultOptimizerWorkers     = 1
	DefaultOptimizerDefaultTopN = 5
	DefaultRequestTimeout       = 30 * time.Second
	DefaultDiscordHealthPort    = "8082"
)

// EnvironmentProduction names the production deployment
const EnvironmentProduction = "production"

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey       = "generate_with_openssl_rand_hex_32"
	ExampleDiscordToken = "your_discord_bot_token"
)
