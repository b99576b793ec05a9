package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luxeliving/catalog-api/internal/container"
	handlers "github.com/luxeliving/catalog-api/internal/interface/http"
	"github.com/luxeliving/catalog-api/internal/interface/middleware"
	"github.com/luxeliving/catalog-api/pkg/helpers"
)

// PropertyModule wires the catalog and saved-property routes.
// Public: GET /api/properties, /api/properties/featured, /api/properties/:id
// Protected: POST /api/properties/:id/save, GET /api/properties/saved,
// DELETE /api/properties/saved/:id
type PropertyModule struct {
	Properties *handlers.PropertyHandler
	Saved      *handlers.SavedPropertyHandler
	JWT        *helpers.JWTManager
}

func NewPropertyModule(p *handlers.PropertyHandler, s *handlers.SavedPropertyHandler, jwt *helpers.JWTManager) *PropertyModule {
	return &PropertyModule{Properties: p, Saved: s, JWT: jwt}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	props := rg.Group("/properties")
	props.Use(readLimiter)

	props.GET("", m.Properties.List)
	props.GET("/featured", m.Properties.Featured)

	// Protected; static routes registered alongside the :id params.
	auth := props.Group("")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/:id/save", m.Saved.Save)
		auth.GET("/saved", m.Saved.List)
		auth.DELETE("/saved/:id", m.Saved.Remove)
	}

	props.GET("/:id", m.Properties.Get)
}
