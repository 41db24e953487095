package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/auth"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/config"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
	"github.com/campus-pulse/campuspulse/internal/shared/utils"
)

const AppName = "Campus Pulse"

var renderer *views.Renderer

func init() {
	gin.SetMode(gin.TestMode)

	if err := utils.RegisterBindingValidators(); err != nil {
		panic(err)
	}

	r, err := views.NewRenderer()
	if err != nil {
		panic(err)
	}
	renderer = r
}

// NewTestContext creates a test gin.Context with the given method and path.
// The engine renders the real page templates.
func NewTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.HTMLRender = renderer
	c.Request = httptest.NewRequest(method, path, nil)
	return c, w
}

// NewFormContext creates a test gin.Context carrying an url-encoded form body.
func NewFormContext(method, path string, form url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	c, w := NewTestContext(method, path)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c, w
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// JoinCourse simulates a session that already holds course membership.
func JoinCourse(c *gin.Context, courseID uint, code string, anonymous bool, displayName string) *session.Session {
	sess := session.From(c)
	sess.JoinCourse(courseID, code, "Course "+code, displayName, anonymous)
	return sess
}

// LoginLecturer simulates a session with lecturer access.
func LoginLecturer(c *gin.Context) *session.Session {
	sess := session.From(c)
	sess.SetLecturer(true)
	return sess
}

// LastFlash returns the most recently queued flash, or a zero Flash.
func LastFlash(c *gin.Context) session.Flash {
	flashes := session.From(c).Flashes
	if len(flashes) == 0 {
		return session.Flash{}
	}
	return flashes[len(flashes)-1]
}

// NewResponder returns a responder backed by a throwaway session secret.
func NewResponder() *common.Responder {
	tokens := auth.NewSessionTokenService("test-secret", time.Hour)
	store := session.NewStore(tokens, config.CookieConfig{Name: "campus_pulse_session", Path: "/", SameSite: "Lax"}, NewMockLogger())
	return common.NewResponder(store, AppName, NewMockLogger())
}

// Location returns the redirect target of a response.
func Location(w *httptest.ResponseRecorder) string {
	return w.Header().Get("Location")
}

// IsRedirect flushes the status gin is holding and reports whether it is a
// 302. A bodyless redirect never reaches the recorder until the header is
// written, which engine.ServeHTTP does but a bare handler call does not.
func IsRedirect(c *gin.Context, w *httptest.ResponseRecorder) bool {
	c.Writer.WriteHeaderNow()
	return w.Code == http.StatusFound
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse mirrors utils.APIResponse for test assertions.
type APIResponse struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo mirrors utils.ErrorInfo for test assertions.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewMockLogger returns a no-op logger.Interface for tests.
func NewMockLogger() logger.Interface {
	return &mockLogger{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
