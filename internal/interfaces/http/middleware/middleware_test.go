package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/auth"
	"github.com/campus-pulse/campuspulse/internal/infrastructure/database"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/common"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/config"
	"github.com/campus-pulse/campuspulse/internal/shared/db"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(t *testing.T) (*gin.Engine, *common.Responder) {
	t.Helper()

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	store := session.NewStore(
		auth.NewSessionTokenService("secret", time.Hour),
		config.CookieConfig{Name: "campus_pulse_session", Path: "/"},
		logger.NewNop(),
	)
	resp := common.NewResponder(store, "Campus Pulse", logger.NewNop())

	engine := gin.New()
	engine.HTMLRender = renderer
	engine.Use(Recovery(resp, logger.NewNop()), store.Middleware())
	return engine, resp
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRequireCourse(t *testing.T) {
	engine, resp := newTestEngine(t)
	engine.GET("/student", RequireCourse(resp), func(c *gin.Context) {
		c.String(http.StatusOK, "room")
	})

	w := serve(engine, http.MethodGet, "/student")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "room")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "campus_pulse_session=")
}

func TestRequireLecturer(t *testing.T) {
	engine, resp := newTestEngine(t)
	engine.GET("/lecturer/course/:course_id", RequireLecturer(resp), func(c *gin.Context) {
		c.String(http.StatusOK, "course")
	})

	w := serve(engine, http.MethodGet, "/lecturer/course/3")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/lecturer/login?next=%2Flecturer%2Fcourse%2F3", w.Header().Get("Location"))
}

func TestGatesPassThrough(t *testing.T) {
	engine, resp := newTestEngine(t)
	engine.GET("/both", func(c *gin.Context) {
		sess := session.From(c)
		sess.JoinCourse(1, "CS101", "Intro", "", true)
		sess.SetLecturer(true)
		c.Next()
	}, RequireCourse(resp), RequireLecturer(resp), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := serve(engine, http.MethodGet, "/both")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestRecovery(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.GET("/boom", func(c *gin.Context) { panic("boom") })
	engine.GET("/api/boom", func(c *gin.Context) { panic("boom") })

	w := serve(engine, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")

	w = serve(engine, http.MethodGet, "/api/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestDBScope_ReleasesConnection(t *testing.T) {
	gdb, err := database.Open(&config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "scope.db")})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	var scope *db.Scope
	engine := gin.New()
	engine.Use(DBScope(gdb, logger.NewNop()))
	engine.GET("/lazy", func(c *gin.Context) {
		s, ok := db.ScopeFromContext(c.Request.Context())
		require.True(t, ok)
		assert.False(t, s.Acquired())
		c.Status(http.StatusNoContent)
	})
	engine.GET("/query", func(c *gin.Context) {
		s, _ := db.ScopeFromContext(c.Request.Context())
		scope = s
		tx := db.GetTxFromContext(c.Request.Context(), gdb)
		require.NoError(t, tx.Exec("SELECT 1").Error)
		assert.True(t, s.Acquired())
		c.Status(http.StatusNoContent)
	})

	serve(engine, http.MethodGet, "/lazy")
	w := serve(engine, http.MethodGet, "/query")

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.NotNil(t, scope)
	assert.False(t, scope.Acquired(), "connection is returned when the request ends")
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}

func TestLogger_TagsSession(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	engine := gin.New()
	engine.Use(Logger(log))
	engine.GET("/student", func(c *gin.Context) {
		session.From(c).JoinCourse(4, "CS101", "Intro", "", true)
		c.String(http.StatusNotFound, "gone")
	})

	w := serve(engine, http.MethodGet, "/student?refresh")

	assert.Equal(t, http.StatusNotFound, w.Code)
	out := buf.String()
	assert.Contains(t, out, "request rejected")
	assert.Contains(t, out, "course_id=4")
	assert.Contains(t, out, "query=refresh")
	assert.NotContains(t, out, "lecturer=")
}
