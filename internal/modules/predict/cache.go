// README: Deterministic response cache backed by Redis.
package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"farecast/internal/modules/features"
)

// Cache memoizes served breakdowns. Predictions are pure functions of the
// trip record and the models loaded at startup, so a cached response can
// never go stale within one process lifetime; the TTL just bounds memory.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

func cacheKey(t features.TripRecord) string {
	return fmt.Sprintf("predict:%g:%d:%d:%g:%d:%d:%d",
		t.TripDistance, t.PickupLocationID, t.DropoffLocationID,
		t.DurationMin, t.PickupHour, t.PickupDay, t.PickupMonth)
}

func (c *Cache) Get(ctx context.Context, trip features.TripRecord) (Breakdown, bool) {
	raw, err := c.redis.Get(ctx, cacheKey(trip)).Bytes()
	if err != nil {
		return Breakdown{}, false
	}
	var b Breakdown
	if err := json.Unmarshal(raw, &b); err != nil {
		return Breakdown{}, false
	}
	return b, true
}

func (c *Cache) Set(ctx context.Context, trip features.TripRecord, b Breakdown) {
	raw, err := json.Marshal(b)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, cacheKey(trip), raw, c.ttl).Err()
}
