package middleware

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
)

const (
	joinCourseFirstMessage = "Please join a course first."
	lecturerLoginMessage   = "Please log in as lecturer to continue."
)

// RequireCourse lets the request through only for visitors who joined a
// course.
func RequireCourse(resp *common.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.From(c).HasCourse() {
			resp.Flash(c, session.FlashWarning, joinCourseFirstMessage, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireLecturer sends visitors without lecturer access to the login page,
// remembering the requested path.
func RequireLecturer(resp *common.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.From(c).IsLecturer {
			target := "/lecturer/login?next=" + url.QueryEscape(c.Request.URL.Path)
			resp.Flash(c, session.FlashInfo, lecturerLoginMessage, target)
			c.Abort()
			return
		}
		c.Next()
	}
}
