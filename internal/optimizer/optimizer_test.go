package optimizer

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/mix"
	"github.com/osse101/MixMaster_Go/internal/testing/fixtures"
	"github.com/osse101/MixMaster_Go/internal/testing/leaktest"
	"github.com/osse101/MixMaster_Go/internal/worker"
)

// calcFunc adapts a function to mix.Calculator
type calcFunc func(baseProductID string, ingredientIDs []string) domain.MixResult

func (f calcFunc) CalculateMix(baseProductID string, ingredientIDs []string) domain.MixResult {
	return f(baseProductID, ingredientIDs)
}

// countingCalculator records engine invocations per base product
type countingCalculator struct {
	next  mix.Calculator
	mu    sync.Mutex
	calls map[string]int
}

func newCountingCalculator(next mix.Calculator) *countingCalculator {
	return &countingCalculator{next: next, calls: make(map[string]int)}
}

func (c *countingCalculator) CalculateMix(baseProductID string, ingredientIDs []string) domain.MixResult {
	c.mu.Lock()
	c.calls[baseProductID]++
	c.mu.Unlock()
	return c.next.CalculateMix(baseProductID, ingredientIDs)
}

func newTestOptimizer(opts ...Option) *Optimizer {
	cat := fixtures.Catalog()
	return New(cat, mix.NewEngine(cat, fixtures.Resolver()), opts...)
}

func items(pairs ...any) []domain.InventoryItem {
	var out []domain.InventoryItem
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.InventoryItem{ID: pairs[i].(string), Quantity: pairs[i+1].(int)})
	}
	return out
}

func fullInventory() domain.Inventory {
	return domain.Inventory{
		Products: items(fixtures.ProductWeed, 1, fixtures.ProductMeth, 3, fixtures.ProductCocaine, 1),
		Ingredients: items(
			fixtures.Cuke, 5,
			fixtures.Paracetamol, 5,
			fixtures.Chili, 5,
			fixtures.EnergyDrink, 5,
			fixtures.MouthWash, 5,
			fixtures.BlankGum, 5,
		),
	}
}

func TestFindOptimalMixes_NoOwnedProducts(t *testing.T) {
	inv := domain.Inventory{
		Products:    items(fixtures.ProductWeed, 0, fixtures.ProductMeth, 0),
		Ingredients: items(fixtures.Cuke, 10, fixtures.Chili, 3),
	}

	for _, goal := range Goals {
		recs, err := newTestOptimizer().FindOptimalMixes(context.Background(), inv, goal, 5)
		require.NoError(t, err)
		assert.Empty(t, recs, goal)
	}
}

func TestFindOptimalMixes_UnresolvableEntriesIgnored(t *testing.T) {
	opt := newTestOptimizer()

	recs, err := opt.FindOptimalMixes(context.Background(), domain.Inventory{
		Products: items("ghost-product", 4),
	}, GoalBestProfit, 5)
	require.NoError(t, err)
	assert.Empty(t, recs)

	recs, err = opt.FindOptimalMixes(context.Background(), domain.Inventory{
		Products:    items(fixtures.ProductWeed, 1),
		Ingredients: items("ghost-ingredient", 2),
	}, GoalBestProfit, 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Recipe.Ingredients)
}

func TestFindOptimalMixes_InvalidGoal(t *testing.T) {
	_, err := newTestOptimizer().FindOptimalMixes(context.Background(), fullInventory(), Goal("nope"), 5)
	assert.ErrorIs(t, err, domain.ErrInvalidGoal)
}

func TestFindOptimalMixes_NonPositiveTopN(t *testing.T) {
	recs, err := newTestOptimizer().FindOptimalMixes(context.Background(), fullInventory(), GoalBestProfit, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestFindOptimalMixes_Ranking(t *testing.T) {
	inv := domain.Inventory{
		Products:    items(fixtures.ProductWeed, 1),
		Ingredients: items(fixtures.Cuke, 1),
	}

	recs, err := newTestOptimizer().FindOptimalMixes(context.Background(), inv, GoalBestProfit, 5)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	best := recs[0]
	assert.Equal(t, fixtures.ProductWeed, best.Recipe.BaseProductID)
	assert.Equal(t, []string{fixtures.Cuke}, best.Recipe.Ingredients)
	assert.Equal(t, 130.0, best.Score)
	assert.Equal(t, "$130 profit", best.Reason)
	assert.Equal(t, []domain.IngredientUsage{{Ingredient: fixtures.Cuke, Name: "Cuke", Count: 1}}, best.IngredientsUsed)
	assert.Equal(t, "Turbo Kush", best.Result.ProductName)

	bare := recs[1]
	assert.Empty(t, bare.Recipe.Ingredients)
	assert.Empty(t, bare.IngredientsUsed)
	assert.Equal(t, 110.0, bare.Score)
}

func TestFindOptimalMixes_CombinationCeiling(t *testing.T) {
	cat := fixtures.Catalog()
	counter := newCountingCalculator(mix.NewEngine(cat, fixtures.Resolver()))
	opt := New(cat, counter)

	// Six ingredient types capped at two copies gives a pool of 12, far more
	// than the ceiling's worth of combinations.
	_, err := opt.FindOptimalMixes(context.Background(), fullInventory(), GoalMostEffects, 5)
	require.NoError(t, err)

	require.Len(t, counter.calls, 3)
	for product, calls := range counter.calls {
		assert.Equal(t, domain.MaxCombinationsPerProduct+1, calls, product)
	}
}

func TestFindOptimalMixes_SmallPoolEvaluatesEverything(t *testing.T) {
	cat := fixtures.Catalog()
	counter := newCountingCalculator(mix.NewEngine(cat, fixtures.Resolver()))
	opt := New(cat, counter)

	inv := domain.Inventory{
		Products:    items(fixtures.ProductWeed, 1),
		Ingredients: items(fixtures.Cuke, 2, fixtures.Chili, 1),
	}
	_, err := opt.FindOptimalMixes(context.Background(), inv, GoalBestProfit, 5)
	require.NoError(t, err)

	// bare + C(3,1) + C(3,2) + C(3,3)
	assert.Equal(t, 1+3+3+1, counter.calls[fixtures.ProductWeed])
}

func TestFindOptimalMixes_RepeatedInventoryEntriesMerged(t *testing.T) {
	cat := fixtures.Catalog()
	counter := newCountingCalculator(mix.NewEngine(cat, fixtures.Resolver()))
	opt := New(cat, counter)

	inv := fullInventory()
	for i := 0; i < 50; i++ {
		inv.Products = append(inv.Products, domain.InventoryItem{ID: fixtures.ProductWeed, Quantity: 1})
	}
	_, err := opt.FindOptimalMixes(context.Background(), inv, GoalBestProfit, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxCombinationsPerProduct+1, counter.calls[fixtures.ProductWeed])

	// Two entries of two copies each still cap at two in the pool:
	// bare + C(3,1) + C(3,2) + C(3,3) over [cuke, cuke, chili].
	counter = newCountingCalculator(mix.NewEngine(cat, fixtures.Resolver()))
	opt = New(cat, counter)
	inv = domain.Inventory{
		Products:    items(fixtures.ProductWeed, 1),
		Ingredients: items(fixtures.Cuke, 2, fixtures.Chili, 1, fixtures.Cuke, 2),
	}
	_, err = opt.FindOptimalMixes(context.Background(), inv, GoalBestProfit, 5)
	require.NoError(t, err)
	assert.Equal(t, 1+3+3+1, counter.calls[fixtures.ProductWeed])
}

func TestFindOptimalMixes_Deduplicates(t *testing.T) {
	// Pool is [cuke, cuke, chili]: {cuke} and {cuke, chili} are generated twice.
	inv := domain.Inventory{
		Products:    items(fixtures.ProductWeed, 1),
		Ingredients: items(fixtures.Cuke, 2, fixtures.Chili, 1),
	}

	recs, err := newTestOptimizer().FindOptimalMixes(context.Background(), inv, GoalBestProfit, 50)
	require.NoError(t, err)
	require.Len(t, recs, 6)

	keys := make(map[string]bool)
	for _, r := range recs {
		key := dedupKey(r.Recipe.BaseProductID, r.Recipe.Ingredients)
		assert.False(t, keys[key], "duplicate recipe %s", key)
		keys[key] = true
	}
}

func TestFindOptimalMixes_TopNLimit(t *testing.T) {
	recs, err := newTestOptimizer().FindOptimalMixes(context.Background(), fullInventory(), GoalBalanced, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.GreaterOrEqual(t, recs[0].Score, recs[1].Score)
	assert.GreaterOrEqual(t, recs[1].Score, recs[2].Score)
}

func TestFindOptimalMixes_SkipsInvalid(t *testing.T) {
	inv := domain.Inventory{
		Products:    items(fixtures.ProductWeed, 1),
		Ingredients: items(fixtures.Cuke, 1),
	}

	invalid := New(fixtures.Catalog(), calcFunc(func(string, []string) domain.MixResult {
		return domain.MixResult{IsValid: false}
	}))
	recs, err := invalid.FindOptimalMixes(context.Background(), inv, GoalBestProfit, 5)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestFindOptimalMixes_UnprofitableRankedLast(t *testing.T) {
	inv := domain.Inventory{
		Products:    items(fixtures.ProductWeed, 1),
		Ingredients: items(fixtures.Cuke, 1, fixtures.Chili, 1),
	}

	// Only the bare product turns a profit.
	opt := New(fixtures.Catalog(), calcFunc(func(_ string, ids []string) domain.MixResult {
		if len(ids) == 0 {
			return domain.MixResult{IsValid: true, TotalCost: 0, Profit: 10}
		}
		return domain.MixResult{IsValid: true, TotalCost: float64(len(ids)), Profit: 0}
	}))
	recs, err := opt.FindOptimalMixes(context.Background(), inv, GoalCheapestToMake, 10)
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Empty(t, recs[0].Recipe.Ingredients)
	assert.Equal(t, float64(cheapestCeiling), recs[0].Score)
	for _, r := range recs[1:] {
		assert.Equal(t, -math.MaxFloat64, r.Score)
		assert.False(t, math.IsInf(r.Score, 0))
	}
	assert.Equal(t, []string{fixtures.Cuke}, recs[1].Recipe.Ingredients)
}

func TestFindOptimalMixes_TiesKeepGenerationOrder(t *testing.T) {
	cat := fixtures.Catalog()
	flat := New(cat, calcFunc(func(string, []string) domain.MixResult {
		return domain.MixResult{IsValid: true, Profit: 10}
	}))
	inv := domain.Inventory{
		Products:    items(fixtures.ProductMeth, 1, fixtures.ProductWeed, 1),
		Ingredients: items(fixtures.Chili, 1, fixtures.Cuke, 1),
	}

	recs, err := flat.FindOptimalMixes(context.Background(), inv, GoalBestProfit, 10)
	require.NoError(t, err)

	var got []string
	for _, r := range recs {
		got = append(got, dedupKey(r.Recipe.BaseProductID, r.Recipe.Ingredients))
	}
	assert.Equal(t, []string{
		"test-meth:",
		"test-meth:chili",
		"test-meth:cuke",
		"test-meth:chili,cuke",
		"test-kush:",
		"test-kush:chili",
		"test-kush:cuke",
		"test-kush:chili,cuke",
	}, got)
}

func TestFindOptimalMixes_ParallelMatchesSequential(t *testing.T) {
	defer leaktest.Check(t)()

	ctx := context.Background()
	pool := worker.NewPool(3, 8)
	pool.Start(ctx)
	defer pool.Stop()

	for _, goal := range []Goal{GoalBalanced, GoalSpeedBuild, GoalMinIngredients} {
		sequential, err := newTestOptimizer().FindOptimalMixes(ctx, fullInventory(), goal, 20)
		require.NoError(t, err)

		parallel, err := newTestOptimizer(WithPool(pool)).FindOptimalMixes(ctx, fullInventory(), goal, 20)
		require.NoError(t, err)

		assert.Equal(t, sequential, parallel, goal)
	}
}

func TestFindOptimalMixes_StoppedPoolFallsBackInline(t *testing.T) {
	pool := worker.NewPool(1, 1)
	pool.Start(context.Background())
	pool.Stop()

	recs, err := newTestOptimizer(WithPool(pool)).FindOptimalMixes(context.Background(), fullInventory(), GoalBestProfit, 5)
	require.NoError(t, err)
	assert.Len(t, recs, 5)
}

func TestFindOptimalMixes_UnstartedPoolFallsBackInline(t *testing.T) {
	pool := worker.NewPool(2, 8)
	defer pool.Stop()

	done := make(chan struct{})
	var recs []domain.Recommendation
	var err error
	go func() {
		defer close(done)
		recs, err = newTestOptimizer(WithPool(pool)).FindOptimalMixes(context.Background(), fullInventory(), GoalBestProfit, 5)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("FindOptimalMixes did not return with an unstarted pool")
	}
	require.NoError(t, err)
	assert.Len(t, recs, 5)
}

func TestFindOptimalMixes_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestOptimizer().FindOptimalMixes(ctx, fullInventory(), GoalBestProfit, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUsage_CountsInFirstSeenOrder(t *testing.T) {
	chili := domain.Ingredient{ID: "chili", Name: "Chili"}
	cuke := domain.Ingredient{ID: "cuke", Name: "Cuke"}

	got := usage([]domain.Ingredient{chili, cuke, chili})
	assert.Equal(t, []domain.IngredientUsage{
		{Ingredient: "chili", Name: "Chili", Count: 2},
		{Ingredient: "cuke", Name: "Cuke", Count: 1},
	}, got)
}

func TestDedupKey_IgnoresOrder(t *testing.T) {
	assert.Equal(t, dedupKey("p", []string{"b", "a", "b"}), dedupKey("p", []string{"b", "b", "a"}))
	assert.Equal(t, "p:", dedupKey("p", nil))
}
