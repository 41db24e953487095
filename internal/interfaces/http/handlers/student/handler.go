package student

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	commentUsecases "github.com/campus-pulse/campuspulse/internal/application/comment/usecases"
	coursedto "github.com/campus-pulse/campuspulse/internal/application/course/dto"
	courseUsecases "github.com/campus-pulse/campuspulse/internal/application/course/usecases"
	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

const (
	roomPath = "/student"

	msgCodeRequired = "Course code is required."
	msgSubmitted    = "Submitted! Your comment is now visible to the lecturer."
	msgLeft         = "You left the course."
)

type StudentHandler struct {
	getCourseByCodeUC courseUsecases.GetCourseByCodeExecutor
	submitCommentUC   commentUsecases.SubmitCommentExecutor
	listCommentsUC    commentUsecases.ListCommentsExecutor
	resp              *common.Responder
	logger            logger.Interface
}

func NewStudentHandler(
	getCourseByCodeUC courseUsecases.GetCourseByCodeExecutor,
	submitCommentUC commentUsecases.SubmitCommentExecutor,
	listCommentsUC commentUsecases.ListCommentsExecutor,
	resp *common.Responder,
	logger logger.Interface,
) *StudentHandler {
	return &StudentHandler{
		getCourseByCodeUC: getCourseByCodeUC,
		submitCommentUC:   submitCommentUC,
		listCommentsUC:    listCommentsUC,
		resp:              resp,
		logger:            logger,
	}
}

// Join handles POST /student/join
func (h *StudentHandler) Join(c *gin.Context) {
	var req JoinCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Debugw("invalid join form", "error", err)
		h.resp.Flash(c, session.FlashDanger, msgCodeRequired, "/")
		return
	}

	course, err := h.getCourseByCodeUC.Execute(c.Request.Context(), courseUsecases.GetCourseByCodeQuery{
		Code: req.CourseCode,
	})
	if err != nil {
		h.resp.FormError(c, err, "/")
		return
	}

	session.From(c).JoinCourse(course.ID, course.Code, course.Name, strings.TrimSpace(req.DisplayName), req.IsAnonymous())

	h.logger.Infow("student joined course", "course_id", course.ID, "anonymous", req.IsAnonymous())
	h.resp.Flash(c, session.FlashSuccess, fmt.Sprintf("Joined %s (%s).", course.Code, course.Name), roomPath)
}

// Room handles GET /student
func (h *StudentHandler) Room(c *gin.Context) {
	sess := session.From(c)

	result, err := h.listCommentsUC.Execute(c.Request.Context(), commentUsecases.ListCommentsQuery{
		CourseID: sess.CourseID,
		Status:   string(vo.FilterAll),
		Limit:    commentUsecases.PollLimit,
	})
	if err != nil {
		h.resp.ServerError(c, err)
		return
	}

	h.resp.Page(c, http.StatusOK, views.PageStudent, sess.CourseCode, views.StudentRoomData{
		Course: &coursedto.CourseDTO{
			ID:   sess.CourseID,
			Code: sess.CourseCode,
			Name: sess.CourseName,
		},
		Comments: result.Comments,
	})
}

// SubmitComment handles POST /student/comment
func (h *StudentHandler) SubmitComment(c *gin.Context) {
	var req SubmitCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.resp.ServerError(c, err)
		return
	}

	sess := session.From(c)
	_, err := h.submitCommentUC.Execute(c.Request.Context(), commentUsecases.SubmitCommentCommand{
		CourseID:    sess.CourseID,
		Content:     req.Content,
		DisplayName: sess.CommentAuthor(),
		Anonymous:   sess.Anonymous,
	})
	if err != nil {
		h.resp.FormError(c, err, roomPath)
		return
	}

	h.resp.Flash(c, session.FlashSuccess, msgSubmitted, roomPath)
}

// Leave handles POST /student/leave
func (h *StudentHandler) Leave(c *gin.Context) {
	session.From(c).LeaveCourse()
	h.resp.Flash(c, session.FlashInfo, msgLeft, "/")
}
