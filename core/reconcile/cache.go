package reconcile

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cachedPlan struct {
	report *Report
	built  time.Time
}

// PlanCache holds recent dry-run reports so that repeated drift queries do
// not each open a transaction per type.
type PlanCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cachedPlan
	sf      singleflight.Group
}

// NewPlanCache returns a cache whose entries live for ttl. A zero ttl disables caching.
func NewPlanCache(ttl time.Duration) *PlanCache {
	return &PlanCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cachedPlan),
	}
}

// PlanKey derives the cache key of a dry run for opts, optionally restricted to one type.
func PlanKey(opts Options, enumName string) string {
	languages := slices.Clone(opts.Languages)
	slices.Sort(languages)
	return fmt.Sprintf("%s|%t|%s", strings.Join(languages, ","), opts.DeleteOrphans, strings.ToLower(enumName))
}

func (c *PlanCache) fresh(key string) (*Report, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(entry.built) > c.ttl {
		return nil, false
	}
	return entry.report, true
}

// GetOrPlan returns the cached report for key or builds one with plan.
// Concurrent callers for the same key share one build. A build that returns
// an error is passed through with its report and is not cached.
func (c *PlanCache) GetOrPlan(ctx context.Context, key string, plan func(context.Context) (*Report, error)) (*Report, error) {
	if c == nil || c.ttl <= 0 {
		return plan(ctx)
	}

	if report, ok := c.fresh(key); ok {
		return report, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		if report, ok := c.fresh(key); ok {
			return report, nil
		}

		report, err := plan(ctx)
		if err != nil {
			return report, err
		}

		c.mu.Lock()
		c.entries[key] = cachedPlan{report: report, built: c.now()}
		c.mu.Unlock()
		return report, nil
	})
	report, _ := result.(*Report)
	return report, err
}

// Invalidate drops every cached plan. Call it after a pass that wrote rows.
func (c *PlanCache) Invalidate() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries = make(map[string]cachedPlan)
	c.mu.Unlock()
}
