package router

import (
	"github.com/luxeliving/catalog-api/internal/application"
	"github.com/luxeliving/catalog-api/internal/container"
	pginfra "github.com/luxeliving/catalog-api/internal/infrastructure/postgres"
	handlers "github.com/luxeliving/catalog-api/internal/interface/http"
	"github.com/luxeliving/catalog-api/internal/router/modules"
)

// CatalogDeps bundles everything the property routes need.
type CatalogDeps struct {
	Catalog *application.CatalogService
	Saved   *application.SavedPropertyService
	Auth    *application.AuthService
}

func buildCatalogDeps() CatalogDeps {
	pool := container.GetPGPool()
	cfg := container.GetConfig()
	logger := container.GetLogger()

	props := pginfra.NewPropertyRepository(pool)
	saved := pginfra.NewSavedPropertyRepository(pool)
	users := pginfra.NewUserRepository(pool)

	return CatalogDeps{
		Catalog: application.NewCatalogService(
			props,
			application.NewFallbackCatalog(),
			container.GetRedis(),
			cfg.FeaturedCacheTTL,
			logger,
		),
		Saved: application.NewSavedPropertyService(props, saved, logger),
		Auth:  application.NewAuthService(users, container.GetJWT(), logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	registerModules(r, buildCatalogDeps())
}

// registerModules adds every feature module for the given dependencies.
// Split from InitModules so tests can drive the registered routes against
// non-postgres repositories.
func registerModules(r *Registry, deps CatalogDeps) {
	logger := container.GetLogger()

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewPropertyModule(
		handlers.NewPropertyHandler(deps.Catalog, logger),
		handlers.NewSavedPropertyHandler(deps.Saved, logger),
		container.GetJWT(),
	))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(deps.Auth, logger)))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
