package common

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/errors"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
	"github.com/campus-pulse/campuspulse/internal/shared/utils"
)

// Responder writes pages and redirects, persisting the session first so
// flashes and membership changes survive the response.
type Responder struct {
	store   *session.Store
	appName string
	logger  logger.Interface
}

func NewResponder(store *session.Store, appName string, logger logger.Interface) *Responder {
	return &Responder{
		store:   store,
		appName: appName,
		logger:  logger,
	}
}

func (r *Responder) AppName() string {
	return r.appName
}

// Flash queues a message and redirects.
func (r *Responder) Flash(c *gin.Context, category, message, location string) {
	session.From(c).AddFlash(category, message)
	r.Redirect(c, location)
}

func (r *Responder) Redirect(c *gin.Context, location string) {
	r.save(c)
	c.Redirect(http.StatusFound, location)
}

// Page renders a template and consumes pending flashes.
func (r *Responder) Page(c *gin.Context, status int, name, title string, data any) {
	sess := session.From(c)
	flashes := sess.PopFlashes()
	r.save(c)

	c.HTML(status, name, views.Page{
		AppName: r.appName,
		Title:   title,
		Flashes: flashes,
		Session: sess,
		Data:    data,
	})
}

func (r *Responder) NotFound(c *gin.Context) {
	if isAPIRequest(c) {
		utils.ErrorResponse(c, http.StatusNotFound, "Not found")
		return
	}
	r.Page(c, http.StatusNotFound, views.PageNotFound, "Not found", nil)
}

// ServerError logs err and answers 500 in the request's format.
func (r *Responder) ServerError(c *gin.Context, err error) {
	r.logger.Errorw("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err)

	if isAPIRequest(c) {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if c.Writer.Written() {
		return
	}
	c.HTML(http.StatusInternalServerError, views.PageError, views.Page{
		AppName: r.appName,
		Title:   "Error",
		Session: session.From(c),
	})
}

// FormError answers a failed form submission. Expected application errors
// come back to location as a flash; anything else is a 500.
func (r *Responder) FormError(c *gin.Context, err error, location string) {
	switch {
	case errors.IsValidationError(err):
		r.Flash(c, session.FlashDanger, errors.GetAppError(err).Message, location)
	case errors.IsConflictError(err), errors.IsNotFoundError(err):
		r.Flash(c, session.FlashWarning, errors.GetAppError(err).Message, location)
	default:
		r.ServerError(c, err)
	}
}

func (r *Responder) save(c *gin.Context) {
	if err := r.store.Save(c, session.From(c)); err != nil {
		r.logger.Errorw("failed to save session", "path", c.Request.URL.Path, "error", err)
	}
}

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
