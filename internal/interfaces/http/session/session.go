// Package session holds per-visitor state decoded from a signed cookie.
package session

import (
	"github.com/gin-gonic/gin"
)

const contextKey = "campus_pulse.session"

const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Session is the visitor's state. Course membership and lecturer access are
// independent; a visitor may hold both.
type Session struct {
	CourseID    uint    `json:"course_id,omitempty"`
	CourseCode  string  `json:"course_code,omitempty"`
	CourseName  string  `json:"course_name,omitempty"`
	DisplayName string  `json:"display_name,omitempty"`
	Anonymous   bool    `json:"anonymous,omitempty"`
	IsLecturer  bool    `json:"is_lecturer,omitempty"`
	Flashes     []Flash `json:"flashes,omitempty"`
}

func New() *Session {
	return &Session{}
}

func (s *Session) HasCourse() bool {
	return s.CourseID != 0
}

func (s *Session) JoinCourse(id uint, code, name, displayName string, anonymous bool) {
	s.CourseID = id
	s.CourseCode = code
	s.CourseName = name
	s.DisplayName = displayName
	s.Anonymous = anonymous
}

func (s *Session) LeaveCourse() {
	s.CourseID = 0
	s.CourseCode = ""
	s.CourseName = ""
	s.DisplayName = ""
	s.Anonymous = false
}

// CommentAuthor is the display name to store with a new comment. Anonymous
// members never have their name stored.
func (s *Session) CommentAuthor() *string {
	if s.Anonymous || s.DisplayName == "" {
		return nil
	}
	name := s.DisplayName
	return &name
}

func (s *Session) SetLecturer(on bool) {
	s.IsLecturer = on
}

func (s *Session) AddFlash(category, message string) {
	s.Flashes = append(s.Flashes, Flash{Category: category, Message: message})
}

// PopFlashes returns the queued messages and clears the queue.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

func (s *Session) IsEmpty() bool {
	return !s.HasCourse() && !s.IsLecturer && len(s.Flashes) == 0
}

// From returns the request's session, or an empty one when the Sessions
// middleware did not run.
func From(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := New()
	c.Set(contextKey, s)
	return s
}

func set(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}
