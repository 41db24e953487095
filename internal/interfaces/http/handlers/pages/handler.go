package pages

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/campus-pulse/campuspulse/internal/application/course/usecases"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
	"github.com/campus-pulse/campuspulse/internal/shared/services/markdown"
)

type PagesHandler struct {
	listCoursesUC usecases.ListCoursesExecutor
	markdown      markdown.Renderer
	aboutSource   []byte
	resp          *common.Responder
	logger        logger.Interface

	aboutOnce sync.Once
	aboutHTML views.AboutData
	aboutErr  error
}

func NewPagesHandler(
	listCoursesUC usecases.ListCoursesExecutor,
	renderer markdown.Renderer,
	aboutSource []byte,
	resp *common.Responder,
	logger logger.Interface,
) *PagesHandler {
	return &PagesHandler{
		listCoursesUC: listCoursesUC,
		markdown:      renderer,
		aboutSource:   aboutSource,
		resp:          resp,
		logger:        logger,
	}
}

// Index handles GET /
func (h *PagesHandler) Index(c *gin.Context) {
	courses, err := h.listCoursesUC.Execute(c.Request.Context())
	if err != nil {
		h.resp.ServerError(c, err)
		return
	}

	h.resp.Page(c, http.StatusOK, views.PageIndex, h.resp.AppName(), views.CourseListData{Courses: courses})
}

// About handles GET /about. The page is rendered once and reused.
func (h *PagesHandler) About(c *gin.Context) {
	h.aboutOnce.Do(func() {
		html, err := h.markdown.Render(h.aboutSource)
		h.aboutHTML = views.AboutData{HTML: html}
		h.aboutErr = err
	})
	if h.aboutErr != nil {
		h.resp.ServerError(c, h.aboutErr)
		return
	}

	h.resp.Page(c, http.StatusOK, views.PageAbout, "About", h.aboutHTML)
}

// NotFound is the fallback for unknown routes.
func (h *PagesHandler) NotFound(c *gin.Context) {
	h.resp.NotFound(c)
}
