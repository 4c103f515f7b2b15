package availability

import (
	"context"
	"time"

	"github.com/noursalon/salon-scheduler/internal/cache"
)

// Cache is the advisory read cache the availability usecases publish into.
// cache.Cache satisfies it; tests substitute an in-memory map.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) bool
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration)
	Del(ctx context.Context, keys ...string)
}

var _ Cache = (*cache.Cache)(nil)

const (
	datesCacheKey = "availability:dates"
	datesCacheTTL = time.Minute
	slotsCacheTTL = 30 * time.Second
)

func slotsCacheKey(date string) string {
	return "availability:slots:" + date
}
