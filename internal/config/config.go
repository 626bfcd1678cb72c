package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string
	ServiceName string
	APIKey      string // optional; enables X-API-Key auth when set

	TrustedProxies []string
	RequestTimeout time.Duration

	CatalogDir string
	SchemaDir  string
	GoalsPath  string

	MixCacheSize         int
	MixCacheTTL          time.Duration
	OptimizerWorkers     int
	OptimizerDefaultTopN int

	DiscordToken   string
	DiscordAppID   string
	DiscordGuildID string // empty registers commands globally

	DiscordHealthPort  string
	DiscordForceUpdate bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		APIKey:      getEnv(EnvAPIKey, ""),

		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		RequestTimeout: getEnvAsDuration(EnvRequestTimeout, DefaultRequestTimeout),

		CatalogDir: getEnv(EnvCatalogDir, DefaultCatalogDir),
		SchemaDir:  getEnv(EnvSchemaDir, DefaultSchemaDir),
		GoalsPath:  getEnv(EnvGoalsPath, DefaultGoalsPath),

		MixCacheSize:         getEnvAsInt(EnvMixCacheSize, DefaultMixCacheSize),
		MixCacheTTL:          getEnvAsDuration(EnvMixCacheTTL, DefaultMixCacheTTL),
		OptimizerWorkers:     getEnvAsInt(EnvOptimizerWorkers, DefaultOptimizerWorkers),
		OptimizerDefaultTopN: getEnvAsInt(EnvOptimizerDefaultTopN, DefaultOptimizerDefaultTopN),

		DiscordToken:   getEnv(EnvDiscordToken, ""),
		DiscordAppID:   getEnv(EnvDiscordAppID, ""),
		DiscordGuildID: getEnv(EnvDiscordGuildID, ""),

		DiscordHealthPort:  getEnv(EnvDiscordHealthPort, DefaultDiscordHealthPort),
		DiscordForceUpdate: getEnv(EnvDiscordForceUpdate, "") == "true",
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT value: %d out of range", port)
	}
	cfg.Port = port

	if cfg.MixCacheSize < 0 {
		return nil, fmt.Errorf("invalid %s value: %d must not be negative", EnvMixCacheSize, cfg.MixCacheSize)
	}
	if cfg.OptimizerWorkers < 1 {
		return nil, fmt.Errorf("invalid %s value: %d must be at least 1", EnvOptimizerWorkers, cfg.OptimizerWorkers)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// CacheEnabled reports whether mix results should be memoized
func (c *Config) CacheEnabled() bool {
	return c.MixCacheSize > 0
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to defaultValue when
// unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.ParseDuration string, falling back to
// defaultValue when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
