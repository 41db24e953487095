package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/auth"
	"github.com/campus-pulse/campuspulse/internal/shared/config"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestStore(secret string) *Store {
	return NewStore(
		auth.NewSessionTokenService(secret, time.Hour),
		config.CookieConfig{Name: "campus_pulse_session", Path: "/", SameSite: "Lax"},
		logger.NewNop(),
	)
}

func TestSession_Flashes(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())

	s.AddFlash(FlashSuccess, "one")
	s.AddFlash(FlashInfo, "two")
	assert.False(t, s.IsEmpty())

	flashes := s.PopFlashes()
	assert.Equal(t, []Flash{{FlashSuccess, "one"}, {FlashInfo, "two"}}, flashes)
	assert.Empty(t, s.PopFlashes())
	assert.True(t, s.IsEmpty())
}

func TestSession_MembershipAndLecturerAreIndependent(t *testing.T) {
	s := New()
	s.JoinCourse(1, "CS101", "Intro", "Ana", false)
	s.SetLecturer(true)
	assert.True(t, s.HasCourse())
	assert.True(t, s.IsLecturer)

	s.LeaveCourse()
	assert.False(t, s.HasCourse())
	assert.True(t, s.IsLecturer)

	s.JoinCourse(1, "CS101", "Intro", "", true)
	s.SetLecturer(false)
	assert.True(t, s.HasCourse())
	assert.False(t, s.IsLecturer)
}

func TestSession_CommentAuthor(t *testing.T) {
	s := New()
	s.JoinCourse(1, "CS101", "Intro", "Ana", true)
	assert.Nil(t, s.CommentAuthor())

	s.JoinCourse(1, "CS101", "Intro", "", false)
	assert.Nil(t, s.CommentAuthor())

	s.JoinCourse(1, "CS101", "Intro", "Ana", false)
	require.NotNil(t, s.CommentAuthor())
	assert.Equal(t, "Ana", *s.CommentAuthor())
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore("secret")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	s := New()
	s.JoinCourse(4, "CS101", "Intro", "Ana", false)
	s.AddFlash(FlashSuccess, "Joined")
	require.NoError(t, store.Save(c, s))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "campus_pulse_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.AddCookie(cookies[0])

	loaded := store.Load(c2)
	assert.Equal(t, uint(4), loaded.CourseID)
	assert.Equal(t, "Ana", loaded.DisplayName)
	assert.Equal(t, []Flash{{FlashSuccess, "Joined"}}, loaded.Flashes)
}

func TestStore_LoadRejectsForeignCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	s := New()
	s.SetLecturer(true)
	require.NoError(t, newTestStore("attacker").Save(c, s))

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.AddCookie(w.Result().Cookies()[0])

	loaded := newTestStore("secret").Load(c2)
	assert.False(t, loaded.IsLecturer)
	assert.True(t, loaded.IsEmpty())
}

func TestStore_SaveEmptyClearsCookie(t *testing.T) {
	store := newTestStore("secret")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "campus_pulse_session", Value: "old"})

	require.NoError(t, store.Save(c, New()))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestStore_Middleware(t *testing.T) {
	store := newTestStore("secret")
	engine := gin.New()
	engine.Use(store.Middleware())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "%v", From(c).HasCourse())
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "false", w.Body.String())
}
