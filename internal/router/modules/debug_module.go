package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luxeliving/catalog-api/internal/container"
	"github.com/luxeliving/catalog-api/internal/interface/middleware"
)

var startedAt = time.Now()

func init() {
	expvar.Publish("catalog_uptime_seconds", expvar.Func(func() any {
		return int64(time.Since(startedAt).Seconds())
	}))
}

// DebugModule exposes expvar counters, including the fallback-serve
// counter published by the catalog service.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
