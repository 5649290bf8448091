package middleware

import (
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	stdlibmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/dailydost/dailydost/internal/request"
)

const defaultRateLimit = "10-S"

// RateLimit returns middleware that limits requests per client IP
// using ulule/limiter backed by Redis. rate uses the limiter format,
// e.g. "10-S" for ten requests per second.
func RateLimit(redisClient *redis.Client, rate string) (func(http.Handler) http.Handler, error) {
	if rate == "" {
		rate = defaultRateLimit
	}
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	store, err := redisstore.NewStore(redisClient)
	if err != nil {
		return nil, err
	}
	return newRateLimitMiddleware(limiter.New(store, parsed)), nil
}

// RateLimitInMemory is the Redis-free variant used in tests.
func RateLimitInMemory(rate string) (func(http.Handler) http.Handler, error) {
	if rate == "" {
		rate = defaultRateLimit
	}
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}
	return newRateLimitMiddleware(limiter.New(memorystore.NewStore(), parsed)), nil
}

func newRateLimitMiddleware(instance *limiter.Limiter) func(http.Handler) http.Handler {
	keyGetter := func(r *http.Request) string {
		return request.ClientIP(r)
	}
	mw := stdlibmw.NewMiddleware(instance, stdlibmw.WithKeyGetter(keyGetter))
	return mw.Handler
}
