package cache

import "github.com/nutrivision/nutrition-service/internal/domain/model"

// Cache defines the interface for resolution cache operations. Keys are
// the food item cache keys ("ingredient|quantity|unit").
type Cache interface {
	Get(key string) (model.Resolution, bool)
	Set(key string, value model.Resolution)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
