package lecturer

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	commentUsecases "github.com/campus-pulse/campuspulse/internal/application/comment/usecases"
	courseUsecases "github.com/campus-pulse/campuspulse/internal/application/course/usecases"
	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/errors"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
	"github.com/campus-pulse/campuspulse/internal/shared/utils"
)

const (
	dashboardPath = "/lecturer"

	msgLoggedIn      = "Logged in as lecturer."
	msgWrongPassword = "Wrong password."
	msgLoggedOut     = "Logged out."
	msgResolved      = "Marked as resolved."
	msgReopened      = "Re-opened."
)

// Tabs lists the lecturer course view's filters in display order.
var Tabs = []string{string(vo.FilterOpen), string(vo.FilterResolved), string(vo.FilterAll)}

// PasswordChecker verifies the shared lecturer password.
type PasswordChecker interface {
	Check(submitted string) bool
}

type LecturerHandler struct {
	credential       PasswordChecker
	createCourseUC   courseUsecases.CreateCourseExecutor
	listCoursesUC    courseUsecases.ListCoursesExecutor
	getCourseByIDUC  courseUsecases.GetCourseByIDExecutor
	listCommentsUC   commentUsecases.ListCommentsExecutor
	resolveCommentUC commentUsecases.ResolveCommentExecutor
	reopenCommentUC  commentUsecases.ReopenCommentExecutor
	resp             *common.Responder
	logger           logger.Interface
}

func NewLecturerHandler(
	credential PasswordChecker,
	createCourseUC courseUsecases.CreateCourseExecutor,
	listCoursesUC courseUsecases.ListCoursesExecutor,
	getCourseByIDUC courseUsecases.GetCourseByIDExecutor,
	listCommentsUC commentUsecases.ListCommentsExecutor,
	resolveCommentUC commentUsecases.ResolveCommentExecutor,
	reopenCommentUC commentUsecases.ReopenCommentExecutor,
	resp *common.Responder,
	logger logger.Interface,
) *LecturerHandler {
	return &LecturerHandler{
		credential:       credential,
		createCourseUC:   createCourseUC,
		listCoursesUC:    listCoursesUC,
		getCourseByIDUC:  getCourseByIDUC,
		listCommentsUC:   listCommentsUC,
		resolveCommentUC: resolveCommentUC,
		reopenCommentUC:  reopenCommentUC,
		resp:             resp,
		logger:           logger,
	}
}

// LoginForm handles GET /lecturer/login
func (h *LecturerHandler) LoginForm(c *gin.Context) {
	h.resp.Page(c, http.StatusOK, views.PageLecturerLogin, "Lecturer login", views.LoginData{
		Next: c.Query("next"),
	})
}

// Login handles POST /lecturer/login
func (h *LecturerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.resp.ServerError(c, err)
		return
	}

	sess := session.From(c)
	next := c.Query("next")

	if !h.credential.Check(req.Password) {
		h.logger.Warnw("lecturer login failed", "ip", c.ClientIP())
		sess.AddFlash(session.FlashDanger, msgWrongPassword)
		h.resp.Page(c, http.StatusOK, views.PageLecturerLogin, "Lecturer login", views.LoginData{Next: next})
		return
	}

	sess.SetLecturer(true)
	h.logger.Infow("lecturer logged in", "ip", c.ClientIP())
	h.resp.Flash(c, session.FlashSuccess, msgLoggedIn, utils.SafeRedirectTarget(next, dashboardPath))
}

// Logout handles POST /lecturer/logout
func (h *LecturerHandler) Logout(c *gin.Context) {
	session.From(c).SetLecturer(false)
	h.resp.Flash(c, session.FlashInfo, msgLoggedOut, "/")
}

// Dashboard handles GET /lecturer
func (h *LecturerHandler) Dashboard(c *gin.Context) {
	courses, err := h.listCoursesUC.Execute(c.Request.Context())
	if err != nil {
		h.resp.ServerError(c, err)
		return
	}

	h.resp.Page(c, http.StatusOK, views.PageLecturerHome, "Lecturer dashboard", views.CourseListData{Courses: courses})
}

// CreateCourse handles POST /lecturer/course/create
func (h *LecturerHandler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		h.resp.ServerError(c, err)
		return
	}

	course, err := h.createCourseUC.Execute(c.Request.Context(), courseUsecases.CreateCourseCommand{
		Code: req.Code,
		Name: req.Name,
	})
	if err != nil {
		h.resp.FormError(c, err, dashboardPath)
		return
	}

	h.resp.Flash(c, session.FlashSuccess, fmt.Sprintf("Course %s created.", course.Code), dashboardPath)
}

// CourseView handles GET /lecturer/course/:course_id
func (h *LecturerHandler) CourseView(c *gin.Context) {
	courseID, ok := utils.ParseIDParam(c, "course_id")
	if !ok {
		h.resp.NotFound(c)
		return
	}

	ctx := c.Request.Context()
	course, err := h.getCourseByIDUC.Execute(ctx, courseUsecases.GetCourseByIDQuery{CourseID: courseID})
	if err != nil {
		if errors.IsNotFoundError(err) {
			h.resp.NotFound(c)
			return
		}
		h.resp.ServerError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(ctx, commentUsecases.ListCommentsQuery{
		CourseID: course.ID,
		Status:   c.Query("status"),
	})
	if err != nil {
		h.resp.ServerError(c, err)
		return
	}

	h.resp.Page(c, http.StatusOK, views.PageLecturerCourse, course.Code, views.LecturerCourseData{
		Course:   course,
		Comments: result.Comments,
		Status:   string(result.Filter),
		Tabs:     Tabs,
	})
}

// Resolve handles POST /lecturer/comment/:comment_id/resolve
func (h *LecturerHandler) Resolve(c *gin.Context) {
	commentID, req, ok := h.bindCommentAction(c)
	if !ok {
		return
	}

	_, err := h.resolveCommentUC.Execute(c.Request.Context(), commentUsecases.ResolveCommentCommand{
		CommentID: commentID,
		Note:      req.LecturerNote,
	})
	if err != nil {
		h.resp.ServerError(c, err)
		return
	}

	h.resp.Flash(c, session.FlashSuccess, msgResolved, courseLocation(req.CourseID, c.Query("status")))
}

// Reopen handles POST /lecturer/comment/:comment_id/reopen
func (h *LecturerHandler) Reopen(c *gin.Context) {
	commentID, req, ok := h.bindCommentAction(c)
	if !ok {
		return
	}

	_, err := h.reopenCommentUC.Execute(c.Request.Context(), commentUsecases.ReopenCommentCommand{
		CommentID: commentID,
	})
	if err != nil {
		h.resp.ServerError(c, err)
		return
	}

	h.resp.Flash(c, session.FlashInfo, msgReopened, courseLocation(req.CourseID, c.Query("status")))
}

func (h *LecturerHandler) bindCommentAction(c *gin.Context) (uint, CommentActionRequest, bool) {
	var req CommentActionRequest

	commentID, ok := utils.ParseIDParam(c, "comment_id")
	if !ok {
		h.resp.NotFound(c)
		return 0, req, false
	}

	if err := c.ShouldBind(&req); err != nil {
		h.resp.ServerError(c, err)
		return 0, req, false
	}
	return commentID, req, true
}

// courseLocation is where a comment action returns to: the course view on
// the same tab, or the dashboard when the course is unknown.
func courseLocation(rawCourseID, status string) string {
	courseID, ok := utils.ParseID(rawCourseID)
	if !ok {
		return dashboardPath
	}
	if status == "" {
		status = string(vo.FilterOpen)
	}
	return fmt.Sprintf("/lecturer/course/%d?status=%s", courseID, url.QueryEscape(status))
}
