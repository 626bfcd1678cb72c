package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixMaster_Go/internal/catalog"
	"github.com/osse101/MixMaster_Go/internal/config"
	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/optimizer"
	"github.com/osse101/MixMaster_Go/internal/testing/fixtures"
	"github.com/osse101/MixMaster_Go/internal/testing/leaktest"
)

func testConfig() *config.Config {
	return &config.Config{
		CatalogDir:           "../../configs/catalog",
		SchemaDir:            "../../configs/schemas",
		GoalsPath:            "../../configs/goals.yaml",
		MixCacheSize:         16,
		MixCacheTTL:          config.DefaultMixCacheTTL,
		OptimizerWorkers:     1,
		OptimizerDefaultTopN: 3,
	}
}

func fixtureGoals(t *testing.T) *optimizer.GoalCatalog {
	t.Helper()
	goals, err := optimizer.LoadGoalCatalog("../../configs/goals.yaml")
	require.NoError(t, err)
	return goals
}

func TestInitializeServices_ShippedCatalog(t *testing.T) {
	svcs, err := InitializeServices(context.Background(), testConfig())
	require.NoError(t, err)
	defer svcs.Close()

	assert.NoError(t, svcs.CheckReady(context.Background()))
	assert.NotEmpty(t, svcs.Mix.ListProducts(context.Background()))
	assert.Len(t, svcs.Optimizer.Goals(context.Background()), len(optimizer.Goals))
	assert.Nil(t, svcs.Pool)
}

func TestInitializeServices_BadPaths(t *testing.T) {
	t.Run("catalog", func(t *testing.T) {
		cfg := testConfig()
		cfg.CatalogDir = t.TempDir()
		_, err := InitializeServices(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgLoadCatalog)
	})

	t.Run("goals", func(t *testing.T) {
		cfg := testConfig()
		cfg.GoalsPath = "does-not-exist.yaml"
		_, err := InitializeServices(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgLoadGoalCatalog)
	})
}

func TestNewServices_Fixtures(t *testing.T) {
	ctx := context.Background()
	svcs := NewServices(ctx, testConfig(), fixtures.Catalog(), fixtureGoals(t))
	defer svcs.Close()

	result, err := svcs.Mix.Calculate(ctx, fixtures.ProductWeed, []string{fixtures.Cuke})
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Equal(t, []string{"Calming", "Energizing"}, result.Effects)

	recs, err := svcs.Optimizer.Optimize(ctx, domain.Inventory{
		Products:    []domain.InventoryItem{{ID: fixtures.ProductWeed, Quantity: 1}},
		Ingredients: []domain.InventoryItem{{ID: fixtures.Cuke, Quantity: 1}},
	}, "best-profit", 0)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(recs), 3)
	assert.NotEmpty(t, recs)
}

func TestNewServices_WorkerPool(t *testing.T) {
	defer leaktest.Check(t)()

	cfg := testConfig()
	cfg.OptimizerWorkers = 4
	cfg.MixCacheSize = 0 // the expirable cache keeps a janitor goroutine
	svcs := NewServices(context.Background(), cfg, fixtures.Catalog(), fixtureGoals(t))
	require.NotNil(t, svcs.Pool)
	assert.Equal(t, 4, svcs.Pool.Workers())

	svcs.Close()
	svcs.Close()
}

func TestNewServices_CacheSampler(t *testing.T) {
	svcs := NewServices(context.Background(), testConfig(), fixtures.Catalog(), fixtureGoals(t))
	require.NotNil(t, svcs.Scheduler)
	svcs.Close()
	svcs.Close()

	cfg := testConfig()
	cfg.MixCacheSize = 0
	uncached := NewServices(context.Background(), cfg, fixtures.Catalog(), fixtureGoals(t))
	defer uncached.Close()
	assert.Nil(t, uncached.Scheduler)
}

func TestCheckReady_EmptyCatalog(t *testing.T) {
	svcs := &Services{Catalog: catalog.New(catalog.Data{})}
	err := svcs.CheckReady(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrMsgCatalogNotLoaded, err.Error())

	assert.Error(t, (&Services{}).CheckReady(context.Background()))
}
