package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	studenthandlers "github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/student"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/middleware"
)

type StudentRouteConfig struct {
	StudentHandler *studenthandlers.StudentHandler
	Responder      *common.Responder
}

func SetupStudentRoutes(engine *gin.Engine, config *StudentRouteConfig) {
	student := engine.Group("/student")
	{
		// joining and leaving need no membership
		student.POST("/join", config.StudentHandler.Join)
		student.POST("/leave", config.StudentHandler.Leave)

		member := student.Group("")
		member.Use(middleware.RequireCourse(config.Responder))
		member.GET("", config.StudentHandler.Room)
		member.POST("/comment", config.StudentHandler.SubmitComment)
	}
}
