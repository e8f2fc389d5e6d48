package ports

import (
	"context"
	"net/http"

	"github.com/startide-game/engine/internal/logging"
	"github.com/startide-game/engine/internal/ratelimiting"
)

func NewRateLimitMiddleware(rateLimiter ratelimiting.RequestRateLimiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !rateLimiter.Consume(r) {
				ctx := r.Context()
				statusCode := http.StatusTooManyRequests

				logging.FromContext(ctx).Info(
					"Rate limit exceeded",
					"statusCode", statusCode,
					"key", rateLimiter.KeyFor(r),
				)

				http.Error(w, "Rate limit exceeded", statusCode)
				return
			}

			next(w, r)
		}
	}
}

// consumeGameIDLimit applies a per-game limiter keyed by the game id
// from the parsed request body. Runs inside the handlers rather than as
// middleware since the key only exists after the body is parsed. Writes
// a 429 and returns false when the bucket is drained.
func consumeGameIDLimit(ctx context.Context, w http.ResponseWriter, limiter ratelimiting.RateLimiter, gameID string) bool {
	key := ratelimiting.GameIDKey(gameID)
	if limiter.Consume(key) {
		return true
	}

	statusCode := http.StatusTooManyRequests

	logging.FromContext(ctx).Info(
		"Rate limit exceeded",
		"statusCode", statusCode,
		"key", key,
	)

	http.Error(w, "Rate limit exceeded", statusCode)
	return false
}

func ComposeMiddlewares(middlewares ...func(http.HandlerFunc) http.HandlerFunc) func(http.HandlerFunc) http.HandlerFunc {
	if len(middlewares) == 1 {
		return middlewares[0]
	}
	first := middlewares[0]
	rest := ComposeMiddlewares(middlewares[1:]...)
	return func(h http.HandlerFunc) http.HandlerFunc {
		return first(rest(h))
	}
}
