package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/home-hero-api/internal/container"
	"github.com/oksasatya/home-hero-api/internal/interface/middleware"
)

// limit builds a per-minute limiter. It is a pass-through when rate
// limiting is off or redis is not configured.
func limit(max int, key func(prefix string) middleware.KeyFunc) gin.HandlerFunc {
	cfg := container.GetConfig()
	if cfg == nil || !cfg.RateLimitEnabled {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(container.GetRedis(), max, time.Minute, key(cfg.AppName), nil)
}
