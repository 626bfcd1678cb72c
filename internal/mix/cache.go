package mix

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/MixMaster_Go/internal/domain"
	"github.com/osse101/MixMaster_Go/internal/metrics"
)

// cacheKeySep cannot appear in catalog ids
const cacheKeySep = "\x1f"

// CachedCalculator memoizes another Calculator by (base product, ordered
// ingredient ids) with LRU eviction and time-based expiration.
// Results handed out are deep copies, so callers can never alter an entry.
type CachedCalculator struct {
	next Calculator
	lru  *expirable.LRU[string, domain.MixResult]
}

// NewCachedCalculator wraps next with a cache of the given size and TTL
func NewCachedCalculator(next Calculator, size int, ttl time.Duration) *CachedCalculator {
	return &CachedCalculator{
		next: next,
		lru:  expirable.NewLRU[string, domain.MixResult](size, nil, ttl),
	}
}

// CalculateMix returns a cached result or computes and stores a new one
func (c *CachedCalculator) CalculateMix(baseProductID string, ingredientIDs []string) domain.MixResult {
	key := cacheKey(baseProductID, ingredientIDs)

	if cached, ok := c.lru.Get(key); ok {
		metrics.MixCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return cloneResult(cached)
	}
	metrics.MixCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()

	result := c.next.CalculateMix(baseProductID, ingredientIDs)
	c.lru.Add(key, cloneResult(result))
	return result
}

// Len reports the number of live entries
func (c *CachedCalculator) Len() int {
	return c.lru.Len()
}

// Purge drops every entry
func (c *CachedCalculator) Purge() {
	c.lru.Purge()
}

func cacheKey(baseProductID string, ingredientIDs []string) string {
	var b strings.Builder
	b.WriteString(baseProductID)
	for _, id := range ingredientIDs {
		b.WriteString(cacheKeySep)
		b.WriteString(id)
	}
	return b.String()
}

func cloneResult(r domain.MixResult) domain.MixResult {
	out := r
	out.Ingredients = append([]string{}, r.Ingredients...)
	out.Effects = append([]string{}, r.Effects...)
	out.Warnings = append([]string{}, r.Warnings...)
	out.Steps = make([]domain.MixStep, len(r.Steps))
	for i, s := range r.Steps {
		out.Steps[i] = s
		if s.Transformations != nil {
			out.Steps[i].Transformations = append([]domain.Transformation{}, s.Transformations...)
		}
	}
	return out
}
