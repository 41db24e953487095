package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-pulse/campuspulse/internal/application/comment/dto"
	"github.com/campus-pulse/campuspulse/internal/application/comment/usecases"
	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
	"github.com/campus-pulse/campuspulse/internal/shared/utils"
)

type APIHandler struct {
	listCommentsUC usecases.ListCommentsExecutor
	appName        string
	logger         logger.Interface
}

func NewAPIHandler(listCommentsUC usecases.ListCommentsExecutor, appName string, logger logger.Interface) *APIHandler {
	return &APIHandler{
		listCommentsUC: listCommentsUC,
		appName:        appName,
		logger:         logger,
	}
}

// Comments handles GET /api/comments/:course_id. An unknown course yields an
// empty list rather than 404.
func (h *APIHandler) Comments(c *gin.Context) {
	courseID, ok := utils.ParseIDParam(c, "course_id")
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "Not found")
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		CourseID: courseID,
		Status:   string(vo.FilterAll),
		Limit:    usecases.PollLimit,
	})
	if err != nil {
		h.logger.Errorw("failed to load comments snapshot", "course_id", courseID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CourseCommentsDTO{
		CourseID: courseID,
		Comments: result.Comments,
	})
}

// Health handles GET /health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"app":    h.appName,
	})
}
