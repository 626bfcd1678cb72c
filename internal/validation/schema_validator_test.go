package validation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const effectSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["version", "schema", "effects"],
	"properties": {
		"version": {"type": "string"},
		"schema": {"type": "string"},
		"effects": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "name", "price_multiplier"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string", "minLength": 1},
					"price_multiplier": {"type": "number", "minimum": 0}
				}
			}
		}
	}
}`

func writeSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "effects.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(effectSchema), 0o600))
	return path
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	schemaPath := writeSchema(t)
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		errorMsg string
	}{
		{
			name: "valid document",
			data: `{"version":"1.0","schema":"effects","effects":[{"id":"calming","name":"Calming","price_multiplier":0.1}]}`,
		},
		{
			name:     "missing required field",
			data:     `{"version":"1.0","schema":"effects","effects":[{"id":"calming","price_multiplier":0.1}]}`,
			wantErr:  true,
			errorMsg: "required",
		},
		{
			name:     "negative multiplier",
			data:     `{"version":"1.0","schema":"effects","effects":[{"id":"x","name":"X","price_multiplier":-1}]}`,
			wantErr:  true,
			errorMsg: "/effects/0/price_multiplier",
		},
		{
			name:     "invalid JSON",
			data:     `{"version": }`,
			wantErr:  true,
			errorMsg: "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	schemaPath := writeSchema(t)
	dataPath := filepath.Join(t.TempDir(), "effects.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"version":"1.0","schema":"effects","effects":[]}`), 0o600))

	v := NewSchemaValidator()
	assert.NoError(t, v.ValidateFile(dataPath, schemaPath))

	err := v.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	v := NewSchemaValidator()
	err := v.ValidateBytes([]byte(`{}`), "configs/schemas/does-not-exist.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_ConcurrentUse(t *testing.T) {
	schemaPath := writeSchema(t)
	v := NewSchemaValidator()
	data := []byte(`{"version":"1.0","schema":"effects","effects":[]}`)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.ValidateBytes(data, schemaPath))
		}()
	}
	wg.Wait()
}

func TestCheckHeader(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		schema  string
		wantErr error
		want    Header
	}{
		{
			name:   "matching header",
			data:   `{"version":"2.1","schema":"products","products":[]}`,
			schema: "products",
			want:   Header{Version: "2.1", Schema: "products"},
		},
		{
			name:    "missing version",
			data:    `{"schema":"products"}`,
			schema:  "products",
			wantErr: ErrMissingHeader,
		},
		{
			name:    "missing schema",
			data:    `{"version":"1.0"}`,
			schema:  "products",
			wantErr: ErrMissingHeader,
		},
		{
			name:    "wrong schema",
			data:    `{"version":"1.0","schema":"effects"}`,
			schema:  "products",
			wantErr: ErrSchemaMismatch,
		},
		{
			name:    "not JSON",
			data:    `version: 1`,
			schema:  "products",
			wantErr: ErrMissingHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckHeader([]byte(tt.data), tt.schema)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
