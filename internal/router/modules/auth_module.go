package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luxeliving/catalog-api/internal/container"
	handlers "github.com/luxeliving/catalog-api/internal/interface/http"
	"github.com/luxeliving/catalog-api/internal/interface/middleware"
)

// AuthModule wires registration and login under /api/auth.
type AuthModule struct {
	Auth *handlers.AuthHandler
}

func NewAuthModule(a *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Auth: a}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/auth")

	// Credential endpoints get a tight per-IP budget.
	grp.POST("/register",
		middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil),
		m.Auth.Register,
	)
	grp.POST("/login",
		middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath(), nil),
		m.Auth.Login,
	)
}
