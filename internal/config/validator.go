package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredDiscordEnvVars lists the variables the Discord bot cannot start without
var RequiredDiscordEnvVars = []string{
	EnvDiscordToken,
	EnvDiscordAppID,
}

// ValidateEnv checks the .env schema version when one is declared. The HTTP
// API has no required variables.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// ValidateDiscordEnv checks that everything the Discord bot needs is set
func ValidateDiscordEnv() error {
	if err := ValidateEnv(); err != nil {
		return err
	}

	var missing []string
	for _, envVar := range RequiredDiscordEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv(EnvSchemaVersion) == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set - add it to your .env file (expected: %s)", ExpectedEnvSchemaVersion))
	}

	apiKey := os.Getenv(EnvAPIKey)
	switch {
	case apiKey == ExampleAPIKey:
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	case apiKey == "" && os.Getenv(EnvEnvironment) == EnvironmentProduction:
		warnings = append(warnings, "API_KEY is not set in production - the API is unauthenticated")
	}

	if os.Getenv(EnvDiscordToken) == ExampleDiscordToken {
		warnings = append(warnings, "DISCORD_TOKEN appears to be using the example value")
	}

	return warnings, nil
}
