package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	lecturerhandlers "github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/lecturer"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/middleware"
)

type LecturerRouteConfig struct {
	LecturerHandler *lecturerhandlers.LecturerHandler
	Responder       *common.Responder
}

func SetupLecturerRoutes(engine *gin.Engine, config *LecturerRouteConfig) {
	engine.GET("/lecturer/login", config.LecturerHandler.LoginForm)
	engine.POST("/lecturer/login", config.LecturerHandler.Login)
	engine.POST("/lecturer/logout", config.LecturerHandler.Logout)

	lecturer := engine.Group("/lecturer")
	lecturer.Use(middleware.RequireLecturer(config.Responder))
	{
		lecturer.GET("", config.LecturerHandler.Dashboard)

		// /course/create must be registered alongside /course/:course_id;
		// they differ by method so gin's tree accepts both.
		lecturer.POST("/course/create", config.LecturerHandler.CreateCourse)
		lecturer.GET("/course/:course_id", config.LecturerHandler.CourseView)

		lecturer.POST("/comment/:comment_id/resolve", config.LecturerHandler.Resolve)
		lecturer.POST("/comment/:comment_id/reopen", config.LecturerHandler.Reopen)
	}
}
