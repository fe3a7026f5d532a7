// README: Short-TTL quote cache backed by Redis; nil-safe when Redis is absent.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuoteCache memoizes serialized results at the transport layer. The engine
// itself stays pure; a nil cache (or unreachable Redis) just means every
// request is computed.
type QuoteCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewQuoteCache(rdb *redis.Client, ttl time.Duration) *QuoteCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &QuoteCache{rdb: rdb, ttl: ttl}
}

// QuoteKey ignores minutes and seconds: demand scoring only reads the hour.
func QuoteKey(at time.Time, vehicle VehicleType, hours float64) string {
	return fmt.Sprintf("quote:%s:%s:%g", at.Format("2006-01-02T15"), vehicle, hours)
}

func (c *QuoteCache) Get(ctx context.Context, key string) (*Result, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false
	}
	return &r, true
}

func (c *QuoteCache) Set(ctx context.Context, key string, r *Result) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
}
