package routes

import (
	"github.com/gin-gonic/gin"

	apihandlers "github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/api"
)

type APIRouteConfig struct {
	APIHandler *apihandlers.APIHandler
}

// SetupAPIRoutes registers the JSON endpoints. They are public: the polling
// snapshot is the same data a member sees in the room.
func SetupAPIRoutes(engine *gin.Engine, config *APIRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/comments/:course_id", config.APIHandler.Comments)
	}
}
