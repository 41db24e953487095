package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/config"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/middleware"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/routes"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

// Router owns the gin engine and the wired application behind it.
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: container}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.responder, r.log))
	r.engine.Use(middleware.DBScope(r.db, r.log))
	r.engine.Use(r.store.Middleware())

	r.engine.StaticFS("/static", views.StaticFS())

	routes.SetupPageRoutes(r.engine, &routes.PageRouteConfig{
		PagesHandler: r.hdlrs.pagesHandler,
		APIHandler:   r.hdlrs.apiHandler,
	})
	routes.SetupStudentRoutes(r.engine, &routes.StudentRouteConfig{
		StudentHandler: r.hdlrs.studentHandler,
		Responder:      r.responder,
	})
	routes.SetupLecturerRoutes(r.engine, &routes.LecturerRouteConfig{
		LecturerHandler: r.hdlrs.lecturerHandler,
		Responder:       r.responder,
	})
	routes.SetupAPIRoutes(r.engine, &routes.APIRouteConfig{
		APIHandler: r.hdlrs.apiHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
