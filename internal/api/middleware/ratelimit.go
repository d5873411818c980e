package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"postl-admin-backend/internal/config"
	"postl-admin-backend/internal/logger"

	"github.com/go-chi/httprate"
)

// RateLimit wraps next with a per-IP request limit. It sits outside the gin
// engine so rejected requests never reach routing.
func RateLimit(cfg *config.Config, next http.Handler) http.Handler {
	if !cfg.RateLimitEnabled || cfg.RateLimitRequestsPerMinute <= 0 {
		return next
	}

	limiter := httprate.Limit(
		cfg.RateLimitRequestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.New().WithFields(map[string]interface{}{
				"ip":     r.RemoteAddr,
				"path":   r.URL.Path,
				"method": r.Method,
			}).Warn("Rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limit exceeded, please try again later"})
		}),
	)
	return limiter(next)
}
