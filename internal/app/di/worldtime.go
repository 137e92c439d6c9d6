package di

import (
	"time"

	"movie_backend/internal/config"
	"movie_backend/internal/feature/timedata/adapters/worldtime"
	infrahttp "movie_backend/internal/platform/http"
	"movie_backend/internal/shared/ratelimiter"
)

// NewWorldTimeClient creates a fully configured WorldTimeAPI client with HTTP client
// and a per-minute rate limiter shared by all requests.
func NewWorldTimeClient(cfg config.WorldTime) *worldtime.Client {
	wcfg := worldtime.DefaultConfig(cfg.BaseURL)
	if cfg.Timeout > 0 {
		wcfg.Timeout = cfg.Timeout
	}
	limiter := ratelimiter.NewRateLimiter(cfg.RateLimit, time.Minute)
	return worldtime.NewClient(wcfg, infrahttp.NewHTTPClient(wcfg.Timeout), limiter)
}
