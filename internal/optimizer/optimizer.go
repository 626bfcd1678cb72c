package optimizer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/logger"
	"github.com/osse101/MixMaster_Go/internal/metrics"
	"github.com/osse101/MixMaster_Go/internal/mix"
	"github.com/osse101/MixMaster_Go/internal/worker"
)

// Catalog is the lookup surface the optimizer needs
type Catalog interface {
	ProductByID(id string) (domain.Product, bool)
	IngredientByID(id string) (domain.Ingredient, bool)
	TierOf(effectName string) domain.EffectTier
}

// Option configures an Optimizer
type Option func(*Optimizer)

// WithPool evaluates owned base products concurrently on a started pool.
// Output is identical to the sequential run.
func WithPool(pool *worker.Pool) Option {
	return func(o *Optimizer) { o.pool = pool }
}

// Optimizer searches an inventory for the best mixes under a goal
type Optimizer struct {
	catalog Catalog
	calc    mix.Calculator
	pool    *worker.Pool
}

// New creates an optimizer that scores results produced by calc
func New(catalog Catalog, calc mix.Calculator, opts ...Option) *Optimizer {
	o := &Optimizer{catalog: catalog, calc: calc}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type candidate struct {
	rec domain.Recommendation
	key string
}

type productRun struct {
	candidates []candidate
	evaluated  int
	capped     bool
	err        error
}

// FindOptimalMixes returns at most topN recommendations for goal, best first.
// Unresolvable inventory entries are ignored. The only errors are an unknown
// goal and a cancelled context.
func (o *Optimizer) FindOptimalMixes(ctx context.Context, inv domain.Inventory, goal Goal, topN int) ([]domain.Recommendation, error) {
	if !goal.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidGoal, goal)
	}

	recs := []domain.Recommendation{}
	if topN <= 0 {
		return recs, nil
	}

	products := o.ownedProducts(inv)
	if len(products) == 0 {
		return recs, nil
	}

	start := time.Now()
	log := logger.FromContext(ctx)
	pool := o.ingredientPool(inv)
	log.Debug(LogMsgOptimizationStarted, "goal", goal, "products", len(products), "pool_size", len(pool))

	runs, err := o.evaluateAll(ctx, products, pool, goal)
	if err != nil {
		return nil, err
	}

	var all []candidate
	evaluated := 0
	for _, run := range runs {
		all = append(all, run.candidates...)
		evaluated += run.evaluated
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].rec.Score > all[j].rec.Score
	})

	seen := make(map[string]struct{}, len(all))
	for _, c := range all {
		if _, dup := seen[c.key]; dup {
			continue
		}
		seen[c.key] = struct{}{}
		recs = append(recs, c.rec)
		if len(recs) >= topN {
			break
		}
	}

	elapsed := time.Since(start)
	metrics.OptimizerRuns.WithLabelValues(goal.String()).Inc()
	metrics.OptimizerCombinations.Add(float64(evaluated))
	metrics.OptimizerDuration.WithLabelValues(goal.String()).Observe(elapsed.Seconds())
	log.Debug(LogMsgOptimizationFinished,
		"goal", goal,
		"evaluated", evaluated,
		"candidates", len(all),
		"returned", len(recs),
		"duration", elapsed)

	return recs, nil
}

func (o *Optimizer) ownedProducts(inv domain.Inventory) []domain.Product {
	var products []domain.Product
	for _, id := range inv.OwnedProducts() {
		if p, ok := o.catalog.ProductByID(id); ok {
			products = append(products, p)
		}
	}
	return products
}

// ingredientPool repeats each owned ingredient up to MaxIngredientCopies
// times, in inventory order.
func (o *Optimizer) ingredientPool(inv domain.Inventory) []domain.Ingredient {
	var pool []domain.Ingredient
	for _, item := range inv.OwnedIngredients() {
		ing, ok := o.catalog.IngredientByID(item.ID)
		if !ok {
			continue
		}
		for i := 0; i < min(item.Quantity, domain.MaxIngredientCopies); i++ {
			pool = append(pool, ing)
		}
	}
	return pool
}

func (o *Optimizer) evaluateAll(ctx context.Context, products []domain.Product, pool []domain.Ingredient, goal Goal) ([]productRun, error) {
	runs := make([]productRun, len(products))

	if o.pool == nil || len(products) == 1 {
		for i, p := range products {
			runs[i] = o.evaluateProduct(ctx, p, pool, goal)
			if runs[i].err != nil {
				return nil, runs[i].err
			}
		}
		return runs, nil
	}

	var wg sync.WaitGroup
	for i, p := range products {
		wg.Add(1)
		job := worker.JobFunc(func(context.Context) error {
			defer wg.Done()
			runs[i] = o.evaluateProduct(ctx, p, pool, goal)
			return runs[i].err
		})
		if err := o.pool.Enqueue(ctx, job); err != nil {
			// Pool unavailable: evaluate on the caller's goroutine.
			_ = job.Process(ctx)
		}
	}
	wg.Wait()

	for _, run := range runs {
		if run.err != nil {
			return nil, run.err
		}
	}
	return runs, nil
}

func (o *Optimizer) evaluateProduct(ctx context.Context, product domain.Product, pool []domain.Ingredient, goal Goal) productRun {
	var run productRun

	o.consider(&run, product, nil, goal)

	combos := 0
	for idx := range Combinations(len(pool), domain.MaxCombinationSize) {
		if combos >= domain.MaxCombinationsPerProduct {
			run.capped = true
			break
		}
		if err := ctx.Err(); err != nil {
			run.err = err
			return run
		}
		combos++

		picked := make([]domain.Ingredient, len(idx))
		for i, k := range idx {
			picked[i] = pool[k]
		}
		o.consider(&run, product, picked, goal)
	}

	log := logger.FromContext(ctx)
	if run.capped {
		log.Debug(LogMsgCombinationCeiling, "product", product.ID, "ceiling", domain.MaxCombinationsPerProduct)
	}
	log.Debug(LogMsgProductEvaluated, "product", product.ID, "evaluated", run.evaluated, "candidates", len(run.candidates))
	return run
}

func (o *Optimizer) consider(run *productRun, product domain.Product, picked []domain.Ingredient, goal Goal) {
	ids := make([]string, len(picked))
	for i, ing := range picked {
		ids[i] = ing.ID
	}

	result := o.calc.CalculateMix(product.ID, ids)
	run.evaluated++
	if !result.IsValid {
		return
	}

	score, reason := Score(result, goal, len(ids), o.catalog.TierOf)
	switch {
	case math.IsInf(score, -1):
		// Valid but unwanted under goal: keep it, ranked below every finite score.
		score = -math.MaxFloat64
	case math.IsInf(score, 1) || math.IsNaN(score):
		return
	}

	run.candidates = append(run.candidates, candidate{
		key: dedupKey(product.ID, ids),
		rec: domain.Recommendation{
			Recipe:          domain.Recipe{BaseProductID: product.ID, Ingredients: ids},
			Result:          result,
			Score:           score,
			Reason:          reason,
			IngredientsUsed: usage(picked),
		},
	})
}

// dedupKey identifies a recipe by base product and ingredient multiset.
func dedupKey(productID string, ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	return productID + ":" + strings.Join(sorted, ",")
}

// usage collapses picked into per-ingredient counts in first-seen order.
func usage(picked []domain.Ingredient) []domain.IngredientUsage {
	out := []domain.IngredientUsage{}
	pos := make(map[string]int, len(picked))
	for _, ing := range picked {
		if i, ok := pos[ing.ID]; ok {
			out[i].Count++
			continue
		}
		pos[ing.ID] = len(out)
		out = append(out, domain.IngredientUsage{Ingredient: ing.ID, Name: ing.Name, Count: 1})
	}
	return out
}
