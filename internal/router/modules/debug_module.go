package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/home-hero-api/internal/container"
	"github.com/oksasatya/home-hero-api/internal/interface/middleware"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

// Register mounts expvar at /debug/vars for private addresses only, and
// only when enabled.
func (m *DebugModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	if cfg == nil || !cfg.DebugMetricsEnabled {
		return
	}
	rg.GET("/debug/vars",
		middleware.RequireAllowed(middleware.AllowPrivateIP()),
		limit(120, middleware.KeyByIP),
		gin.WrapH(expvar.Handler()),
	)
}
