package routes

import (
	"github.com/gin-gonic/gin"

	apihandlers "github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/api"
	pagehandlers "github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/pages"
)

type PageRouteConfig struct {
	PagesHandler *pagehandlers.PagesHandler
	APIHandler   *apihandlers.APIHandler
}

// SetupPageRoutes registers the public pages, the liveness probe and the
// fallback for unknown paths.
func SetupPageRoutes(engine *gin.Engine, config *PageRouteConfig) {
	engine.GET("/", config.PagesHandler.Index)
	engine.GET("/about", config.PagesHandler.About)
	engine.GET("/health", config.APIHandler.Health)

	engine.NoRoute(config.PagesHandler.NotFound)
}
