package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/auth"
	"github.com/campus-pulse/campuspulse/internal/infrastructure/config"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, and is responsible for wiring them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	// Sessions, credential and rendering
	tokens     *auth.SessionTokenService
	store      *session.Store
	credential *auth.AdminCredential
	renderer   *views.Renderer
	responder  *common.Responder

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers
}

// NewContainer wires every component against db.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	c.engine.HTMLRender = c.renderer
	return c, nil
}
