package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-reading-list/internal/logger"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware returns a middleware enforcing a token-bucket limit
// on the wrapped routes. Used on the auth endpoints.
func RateLimitMiddleware(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Log.Errorw("too many requests", "uri", r.RequestURI)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
