package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osse101/MixMaster_Go/internal/catalog"
	"github.com/osse101/MixMaster_Go/internal/config"
	"github.com/osse101/MixMaster_Go/internal/metrics"
	"github.com/osse101/MixMaster_Go/internal/mix"
	"github.com/osse101/MixMaster_Go/internal/naming"
	"github.com/osse101/MixMaster_Go/internal/optimizer"
	"github.com/osse101/MixMaster_Go/internal/scheduler"
	"github.com/osse101/MixMaster_Go/internal/worker"
)

// Services holds everything the HTTP API, the Discord bot and the Lambda
// handler call into.
type Services struct {
	Catalog   *catalog.Catalog
	Mix       mix.Service
	Optimizer optimizer.Service

	// Pool is nil when the optimizer runs sequentially. Stop it on shutdown.
	Pool *worker.Pool

	// Scheduler samples the mix cache; nil when caching is off
	Scheduler *scheduler.Scheduler
}

// InitializeServices loads the catalogs named in cfg and wires the engine,
// the optional result cache and the optimizer.
func InitializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	cat, err := catalog.LoadDir(ctx, cfg.CatalogDir, cfg.SchemaDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCatalog, err)
	}

	goals, err := optimizer.LoadGoalCatalog(cfg.GoalsPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadGoalCatalog, err)
	}
	slog.Debug(LogMsgGoalsLoaded, "goals", len(goals.All()), "path", cfg.GoalsPath)

	return NewServices(ctx, cfg, cat, goals), nil
}

// NewServices wires services over an already loaded catalog
func NewServices(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, goals *optimizer.GoalCatalog) *Services {
	recordCatalogSize(cat)

	namer := naming.NewResolver(cat.Naming())
	engine := mix.NewEngine(cat, namer)

	var calc mix.Calculator = engine
	var sched *scheduler.Scheduler
	if cfg.CacheEnabled() {
		cached := mix.NewCachedCalculator(engine, cfg.MixCacheSize, cfg.MixCacheTTL)
		calc = cached
		sched = scheduler.New()
		sched.Schedule(context.WithoutCancel(ctx), JobCacheSample, CacheSampleInterval, sampleCacheJob(cached))
	}

	var opts []optimizer.Option
	var pool *worker.Pool
	if cfg.OptimizerWorkers > 1 {
		pool = worker.NewPool(cfg.OptimizerWorkers, cfg.OptimizerWorkers*2)
		pool.Start(context.WithoutCancel(ctx))
		opts = append(opts, optimizer.WithPool(pool))
	}
	opt := optimizer.New(cat, calc, opts...)

	slog.Info(LogMsgServicesReady,
		"cache", cfg.CacheEnabled(),
		"optimizer_workers", cfg.OptimizerWorkers)

	return &Services{
		Catalog:   cat,
		Mix:       mix.NewService(cat, engine, namer, calc),
		Optimizer: optimizer.NewService(opt, goals, cfg.OptimizerDefaultTopN),
		Pool:      pool,
		Scheduler: sched,
	}
}

// CheckReady fails until a catalog with at least one product is loaded
func (s *Services) CheckReady(_ context.Context) error {
	if s.Catalog == nil || len(s.Catalog.AllProducts()) == 0 {
		return errors.New(ErrMsgCatalogNotLoaded)
	}
	return nil
}

// Close stops the background jobs and the optimizer pool. Safe to call twice.
func (s *Services) Close() {
	if s.Scheduler != nil {
		s.Scheduler.Stop()
	}
	if s.Pool != nil {
		slog.Info(LogMsgStoppingWorkers)
		s.Pool.Stop()
	}
}

func recordCatalogSize(cat *catalog.Catalog) {
	metrics.CatalogEntries.WithLabelValues(metrics.KindProducts).Set(float64(len(cat.AllProducts())))
	metrics.CatalogEntries.WithLabelValues(metrics.KindIngredients).Set(float64(len(cat.AllIngredients())))
	metrics.CatalogEntries.WithLabelValues(metrics.KindEffects).Set(float64(len(cat.AllEffects())))
}

func sampleCacheJob(cache *mix.CachedCalculator) worker.Job {
	return worker.JobFunc(func(context.Context) error {
		metrics.MixCacheEntries.Set(float64(cache.Len()))
		return nil
	})
}
