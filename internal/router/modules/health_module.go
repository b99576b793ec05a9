package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luxeliving/catalog-api/internal/container"
)

// HealthModule exposes the liveness probe.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		cfg := container.GetConfig()
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"message":     "LuxeLiving API is running",
			"environment": cfg.Env,
		})
	})
}
