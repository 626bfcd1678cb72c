package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixMaster_Go/internal/domain"
)

func testData() Data {
	return Data{
		Products: []domain.Product{
			{ID: "og-kush", Name: "OG Kush", Category: domain.CategoryWeed, DefaultEffect: "Calming", BasePrice: 35},
			{ID: "meth", Name: "Meth", Category: domain.CategoryMeth, BasePrice: 70, AddictionModifier: 0.6},
		},
		Ingredients: []domain.Ingredient{
			{ID: "cuke", Name: "Cuke", DefaultEffect: "Energizing", Cost: 2},
		},
		Effects: []domain.Effect{
			{ID: "anti-gravity", Name: "Anti-Gravity", PriceMultiplier: 0.54, Tier: domain.TierLegendary},
			{ID: "calming", Name: "Calming", PriceMultiplier: 0.1, Tier: domain.TierCommon},
		},
		Rules: map[string][]domain.TransformationRule{
			"Cuke": {{IfPresent: []string{"Calming"}, Replace: map[string]string{"Calming": "Sneaky"}}},
		},
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := New(testData())

	p, ok := c.ProductByID("og-kush")
	require.True(t, ok)
	assert.Equal(t, "OG Kush", p.Name)

	_, ok = c.ProductByID("missing")
	assert.False(t, ok)

	ing, ok := c.IngredientByID("cuke")
	require.True(t, ok)
	assert.Equal(t, "Energizing", ing.DefaultEffect)

	byName, ok := c.IngredientByName("Cuke")
	require.True(t, ok)
	assert.Equal(t, "cuke", byName.ID)

	_, ok = c.IngredientByID("ghost")
	assert.False(t, ok)

	e, ok := c.EffectByName("anti gravity")
	require.True(t, ok)
	assert.Equal(t, "anti-gravity", e.ID)

	e, ok = c.EffectByID("calming")
	require.True(t, ok)
	assert.Equal(t, "Calming", e.Name)

	_, ok = c.EffectByName("Toxic")
	assert.False(t, ok)

	assert.Equal(t, domain.TierLegendary, c.TierOf("ANTI-GRAVITY"))
	assert.Equal(t, domain.EffectTier(""), c.TierOf("Toxic"))
	assert.Len(t, c.RulesFor("Cuke"), 1)
	assert.Empty(t, c.RulesFor("Banana"))
}

func TestCatalog_DefaultMaxEffects(t *testing.T) {
	c := New(testData())
	assert.Equal(t, domain.DefaultMaxEffects, c.MaxEffects())

	data := testData()
	data.MaxEffects = 3
	assert.Equal(t, 3, New(data).MaxEffects())
}

func TestCatalog_IsolatedFromCaller(t *testing.T) {
	data := testData()
	c := New(data)

	data.Products[0].Name = "Changed"
	data.Rules["Cuke"][0] = domain.TransformationRule{}

	p, _ := c.ProductByID("og-kush")
	assert.Equal(t, "OG Kush", p.Name)

	all := c.AllProducts()
	all[0].Name = "Mutated"
	p, _ = c.ProductByID("og-kush")
	assert.Equal(t, "OG Kush", p.Name)
	assert.Len(t, c.AllIngredients(), 1)
	assert.Len(t, c.AllEffects(), 2)
}

func TestLoadDir(t *testing.T) {
	c, err := LoadDir(context.Background(), testCatalogDir, testSchemaDir)
	require.NoError(t, err)

	p, ok := c.ProductByID("green-crack")
	require.True(t, ok)
	assert.Equal(t, "Energizing", p.DefaultEffect)

	ing, ok := c.IngredientByName("Paracetamol")
	require.True(t, ok)
	assert.Equal(t, "paracetamol", ing.ID)
	assert.Equal(t, 8, c.MaxEffects())
}
