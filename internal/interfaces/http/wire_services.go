package http

import (
	"fmt"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/auth"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/api"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/lecturer"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/pages"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/student"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/services/markdown"
	"github.com/campus-pulse/campuspulse/internal/shared/utils"
)

// initInfrastructure builds the session machinery, the lecturer credential
// and the template renderer.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if err := utils.RegisterBindingValidators(); err != nil {
		return err
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	c.renderer = renderer

	if cfg.Auth.SessionSecret == "dev-secret-change-me" && !cfg.Server.Debug {
		log.Warnw("session secret is the development default; set CAMPUS_PULSE_SECRET")
	}
	c.tokens = auth.NewSessionTokenService(cfg.Auth.SessionSecret, cfg.Auth.SessionMaxAge)
	c.store = session.NewStore(c.tokens, cfg.Auth.Cookie, log.Named("session"))

	c.credential, err = auth.NewAdminCredential(cfg.Auth.AdminPassword, cfg.Auth.AdminPasswordHash, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	if c.credential.UsesHash() {
		log.Infow("lecturer login uses the configured bcrypt hash")
	}

	c.responder = common.NewResponder(c.store, cfg.Server.AppName, log)

	c.repos = newRepositories(c.db)
	return nil
}

// initUseCases wires the course and comment use cases onto the repositories.
func (c *Container) initUseCases() {
	c.ucs = newUseCases(c.repos, c.log)
}

func (c *Container) initHandlers() {
	ucs := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		pagesHandler: pages.NewPagesHandler(
			ucs.listCoursesUC,
			markdown.NewRenderer(),
			views.AboutMarkdown(),
			c.responder,
			log.Named("pages"),
		),
		studentHandler: student.NewStudentHandler(
			ucs.getCourseByCodeUC,
			ucs.submitCommentUC,
			ucs.listCommentsUC,
			c.responder,
			log.Named("student"),
		),
		lecturerHandler: lecturer.NewLecturerHandler(
			c.credential,
			ucs.createCourseUC,
			ucs.listCoursesUC,
			ucs.getCourseByIDUC,
			ucs.listCommentsUC,
			ucs.resolveCommentUC,
			ucs.reopenCommentUC,
			c.responder,
			log.Named("lecturer"),
		),
		apiHandler: api.NewAPIHandler(ucs.listCommentsUC, c.cfg.Server.AppName, log.Named("api")),
	}
}
