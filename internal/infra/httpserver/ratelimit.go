package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"atlas-cms/internal/infra/cache"
)

const rateLimitExceededErrMessage = "rate limit exceeded, try again later"

// RateLimit returns a fixed-window limiter keyed by client address. Counters
// live in the cache layer so limits are shared when Redis backs it.
func RateLimit(store cache.Cache, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bucket := time.Now().Unix() / int64(window.Seconds())
			key := fmt.Sprintf("ratelimit:%s:%s:%d", ClientIP(r), r.URL.Path, bucket)

			count := 0
			if value, found := store.Get(r.Context(), key); found {
				count = toInt(value)
			}

			if count >= limit {
				ReplyWithError(w, http.StatusTooManyRequests, rateLimitExceededErrMessage)
				return
			}

			store.Set(r.Context(), key, count+1, window)

			next.ServeHTTP(w, r)
		})
	}
}

// toInt tolerates the numeric types the cache backends hand back: ints from
// the in-process store, float64 from Redis JSON round trips.
func toInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
