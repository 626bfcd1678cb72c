package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/validation"
)

const (
	testCatalogDir = "../../configs/catalog"
	testSchemaDir  = "../../configs/schemas"
)

func TestLoader_LoadShippedCatalog(t *testing.T) {
	loader := NewLoader(testSchemaDir)

	config, err := loader.Load(context.Background(), testCatalogDir)
	require.NoError(t, err)
	require.NoError(t, loader.Validate(config))

	assert.Equal(t, SchemaProducts, config.Products.Schema)
	assert.Len(t, config.Products.Products, 6)
	assert.Len(t, config.Ingredients.Ingredients, 16)
	assert.Len(t, config.Effects.Effects, 34)
	assert.Equal(t, 8, config.Transformations.Meta.MaxEffects)
	assert.Len(t, config.Transformations.Rules["Cuke"], 7)
	assert.Equal(t, []string{"Kush", "Haze", "Dream", "OG", "Diesel"}, config.Naming.Suffixes[domain.CategoryWeed])
	assert.NotEmpty(t, config.Naming.KnownNames)
}

func TestLoader_Load_Errors(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader(testSchemaDir)

	t.Run("directory not found", func(t *testing.T) {
		_, err := loader.Load(ctx, "/nonexistent/catalog")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})

	t.Run("wrong schema in header", func(t *testing.T) {
		dir := copyCatalog(t)
		writeFile(t, dir, ProductsFileName, `{"version":"1.0","schema":"effects","products":[]}`)

		_, err := loader.Load(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, validation.ErrSchemaMismatch)
	})

	t.Run("schema violation", func(t *testing.T) {
		dir := copyCatalog(t)
		writeFile(t, dir, IngredientsFileName,
			`{"version":"1.0","schema":"ingredients","ingredients":[{"id":"cuke","name":"Cuke","cost":-2}]}`)

		_, err := loader.Load(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("unknown category rejected by schema", func(t *testing.T) {
		dir := copyCatalog(t)
		writeFile(t, dir, ProductsFileName,
			`{"version":"1.0","schema":"products","products":[{"id":"x","name":"X","category":"tea","base_price":1,"addiction_modifier":0}]}`)

		_, err := loader.Load(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/products/0/category")
	})
}

func TestLoader_Validate(t *testing.T) {
	loader := NewLoader(testSchemaDir)

	valid := func() *Config {
		return &Config{
			Products: ProductsDoc{Products: []domain.Product{
				{ID: "og-kush", Name: "OG Kush", Category: domain.CategoryWeed, BasePrice: 35},
			}},
			Ingredients: IngredientsDoc{Ingredients: []domain.Ingredient{
				{ID: "cuke", Name: "Cuke", DefaultEffect: "Energizing", Cost: 2},
				{ID: "banana", Name: "Banana", DefaultEffect: "Gingeritis", Cost: 2},
			}},
			Effects: EffectsDoc{Effects: []domain.Effect{
				{ID: "calming", Name: "Calming", Tier: domain.TierCommon},
			}},
			Transformations: TransformationsDoc{
				Meta: TransformationsMeta{MaxEffects: 8},
				Rules: map[string][]domain.TransformationRule{
					"Cuke": {{IfPresent: []string{"Calming"}, Replace: map[string]string{"Calming": "Sneaky"}}},
				},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"valid config", func(c *Config) {}, nil},
		{"no products", func(c *Config) { c.Products.Products = nil }, ErrInvalidConfig},
		{"no ingredients", func(c *Config) { c.Ingredients.Ingredients = nil }, ErrInvalidConfig},
		{"no effects", func(c *Config) { c.Effects.Effects = nil }, ErrInvalidConfig},
		{"duplicate product id", func(c *Config) {
			c.Products.Products = append(c.Products.Products, c.Products.Products[0])
		}, ErrDuplicateID},
		{"empty product id", func(c *Config) { c.Products.Products[0].ID = "" }, ErrInvalidConfig},
		{"bad category", func(c *Config) { c.Products.Products[0].Category = "tea" }, domain.ErrInvalidCategory},
		{"negative price", func(c *Config) { c.Products.Products[0].BasePrice = -1 }, ErrInvalidConfig},
		{"duplicate ingredient id", func(c *Config) { c.Ingredients.Ingredients[1].ID = "cuke" }, ErrDuplicateID},
		{"duplicate ingredient name", func(c *Config) { c.Ingredients.Ingredients[1].Name = "Cuke" }, ErrDuplicateIngredientName},
		{"negative cost", func(c *Config) { c.Ingredients.Ingredients[0].Cost = -1 }, ErrInvalidConfig},
		{"bad tier", func(c *Config) { c.Effects.Effects[0].Tier = "mythic" }, ErrInvalidConfig},
		{"duplicate effect id", func(c *Config) {
			c.Effects.Effects = append(c.Effects.Effects, c.Effects.Effects[0])
		}, ErrDuplicateID},
		{"rules for unknown ingredient", func(c *Config) {
			c.Transformations.Rules["Ghost"] = c.Transformations.Rules["Cuke"]
		}, ErrUnknownReference},
		{"empty replace", func(c *Config) {
			c.Transformations.Rules["Cuke"] = []domain.TransformationRule{{IfPresent: []string{"Calming"}}}
		}, ErrInvalidConfig},
		{"negative max effects", func(c *Config) { c.Transformations.Meta.MaxEffects = -1 }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.mutate(config)

			err := loader.Validate(config)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), ErrMsgConfigNil)
	})
}

func copyCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{ProductsFileName, IngredientsFileName, EffectsFileName, TransformationsFileName, NamingFileName} {
		data, err := os.ReadFile(filepath.Join(testCatalogDir, name))
		require.NoError(t, err)
		writeFile(t, dir, name, string(data))
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
