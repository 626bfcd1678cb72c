package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_VersionMismatch(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_NoRequiredVarsForAPI(t *testing.T) {
	clearEnvVars(t)
	assert.NoError(t, ValidateEnv())
}

func TestValidateDiscordEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvDiscordAppID, "42")

	err := ValidateDiscordEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDiscordToken)
	assert.NotContains(t, err.Error(), EnvDiscordAppID)

	t.Setenv(EnvDiscordToken, "token")
	assert.NoError(t, ValidateDiscordEnv())
}

func TestValidateEnvWithWarnings(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains []string
	}{
		{
			name:     "clean",
			env:      map[string]string{EnvSchemaVersion: ExpectedEnvSchemaVersion, EnvAPIKey: "s3cret"},
			contains: nil,
		},
		{
			name:     "missing schema version",
			env:      map[string]string{},
			contains: []string{EnvSchemaVersion},
		},
		{
			name: "example values",
			env: map[string]string{
				EnvSchemaVersion: ExpectedEnvSchemaVersion,
				EnvAPIKey:        ExampleAPIKey,
				EnvDiscordToken:  ExampleDiscordToken,
			},
			contains: []string{EnvAPIKey, EnvDiscordToken},
		},
		{
			name: "unauthenticated production",
			env: map[string]string{
				EnvSchemaVersion: ExpectedEnvSchemaVersion,
				EnvEnvironment:   EnvironmentProduction,
			},
			contains: []string{"not set in production"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			warnings, err := ValidateEnvWithWarnings()
			require.NoError(t, err)
			require.Len(t, warnings, len(tt.contains))
			for i, want := range tt.contains {
				assert.Contains(t, warnings[i], want)
			}
		})
	}
}
