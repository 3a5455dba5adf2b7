package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	stdlibmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/pawlog/pawlog/internal/request"
)

const defaultRateLimit = "20-S"

// RateLimit builds rate limiting middleware keyed by client IP, using
// the ulule limiter rate format ("20-S", "100-M", ...). Counters live in
// an in-process store by default; when redisURL is non-empty they are
// kept in Redis so multiple instances share one budget.
func RateLimit(rateFormat, redisURL string) (func(http.Handler) http.Handler, error) {
	if rateFormat == "" {
		rateFormat = defaultRateLimit
	}
	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rateFormat, err)
	}

	var store limiter.Store
	if redisURL != "" {
		store, err = newRedisStore(redisURL)
		if err != nil {
			return nil, err
		}
	} else {
		store = memorystore.NewStore()
	}

	instance := limiter.New(store, rate)
	keyGetter := func(r *http.Request) string {
		return request.ClientIP(r)
	}
	mw := stdlibmw.NewMiddleware(instance, stdlibmw.WithKeyGetter(keyGetter))
	return mw.Handler, nil
}

// newRedisStore connects a Redis-backed limiter store, verifying the
// connection up front so a bad URL fails at startup rather than on the
// first limited request.
func newRedisStore(redisURL string) (limiter.Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	store, err := redisstore.NewStore(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis limiter store: %w", err)
	}
	return store, nil
}
