package student

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentdto "github.com/campus-pulse/campuspulse/internal/application/comment/dto"
	commentUsecases "github.com/campus-pulse/campuspulse/internal/application/comment/usecases"
	coursedto "github.com/campus-pulse/campuspulse/internal/application/course/dto"
	courseUsecases "github.com/campus-pulse/campuspulse/internal/application/course/usecases"
	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/testutil"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
	apperrors "github.com/campus-pulse/campuspulse/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockGetCourseByCodeUC struct {
	result *coursedto.CourseDTO
	err    error
	query  courseUsecases.GetCourseByCodeQuery
}

func (m *mockGetCourseByCodeUC) Execute(_ context.Context, query courseUsecases.GetCourseByCodeQuery) (*coursedto.CourseDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockSubmitCommentUC struct {
	result *commentUsecases.SubmitCommentResult
	err    error
	cmd    *commentUsecases.SubmitCommentCommand
}

func (m *mockSubmitCommentUC) Execute(_ context.Context, cmd commentUsecases.SubmitCommentCommand) (*commentUsecases.SubmitCommentResult, error) {
	m.cmd = &cmd
	return m.result, m.err
}

type mockListCommentsUC struct {
	result *commentUsecases.ListCommentsResult
	err    error
	query  commentUsecases.ListCommentsQuery
}

func (m *mockListCommentsUC) Execute(_ context.Context, query commentUsecases.ListCommentsQuery) (*commentUsecases.ListCommentsResult, error) {
	m.query = query
	return m.result, m.err
}

type handlerFixture struct {
	getCourse *mockGetCourseByCodeUC
	submit    *mockSubmitCommentUC
	list      *mockListCommentsUC
	handler   *StudentHandler
}

func newFixture() *handlerFixture {
	f := &handlerFixture{
		getCourse: &mockGetCourseByCodeUC{},
		submit:    &mockSubmitCommentUC{},
		list:      &mockListCommentsUC{},
	}
	f.handler = NewStudentHandler(f.getCourse, f.submit, f.list, testutil.NewResponder(), testutil.NewMockLogger())
	return f
}

// =====================================================================
// Join
// =====================================================================

func TestStudentHandler_Join(t *testing.T) {
	t.Run("joins and remembers the choice", func(t *testing.T) {
		f := newFixture()
		f.getCourse.result = &coursedto.CourseDTO{ID: 3, Code: "CS101", Name: "Intro"}

		c, w := testutil.NewFormContext(http.MethodPost, "/student/join", url.Values{
			"course_code":  {" cs101 "},
			"display_name": {"  Bob "},
		})
		f.handler.Join(c)

		assert.True(t, testutil.IsRedirect(c, w))
		assert.Equal(t, "/student", testutil.Location(w))
		assert.Equal(t, " cs101 ", f.getCourse.query.Code)

		sess := session.From(c)
		assert.Equal(t, uint(3), sess.CourseID)
		assert.Equal(t, "CS101", sess.CourseCode)
		assert.Equal(t, "Bob", sess.DisplayName)
		assert.False(t, sess.Anonymous)
		assert.Equal(t, session.Flash{Category: session.FlashSuccess, Message: "Joined CS101 (Intro)."}, testutil.LastFlash(c))
		assert.NotEmpty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("anonymous checkbox", func(t *testing.T) {
		f := newFixture()
		f.getCourse.result = &coursedto.CourseDTO{ID: 1, Code: "CS101", Name: "Intro"}

		c, _ := testutil.NewFormContext(http.MethodPost, "/student/join", url.Values{
			"course_code": {"CS101"},
			"anonymous":   {"on"},
		})
		f.handler.Join(c)

		assert.True(t, session.From(c).Anonymous)
	})

	t.Run("blank code", func(t *testing.T) {
		f := newFixture()

		c, w := testutil.NewFormContext(http.MethodPost, "/student/join", url.Values{"course_code": {"   "}})
		f.handler.Join(c)

		assert.Equal(t, "/", testutil.Location(w))
		assert.Equal(t, session.FlashDanger, testutil.LastFlash(c).Category)
		assert.False(t, session.From(c).HasCourse())
	})

	t.Run("unknown course", func(t *testing.T) {
		f := newFixture()
		f.getCourse.err = apperrors.NewNotFoundError("Course 'XX' not found. Ask your lecturer to create it.")

		c, w := testutil.NewFormContext(http.MethodPost, "/student/join", url.Values{"course_code": {"xx"}})
		f.handler.Join(c)

		assert.Equal(t, "/", testutil.Location(w))
		assert.Equal(t, session.Flash{
			Category: session.FlashWarning,
			Message:  "Course 'XX' not found. Ask your lecturer to create it.",
		}, testutil.LastFlash(c))
		assert.False(t, session.From(c).HasCourse())
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture()
		f.getCourse.err = errors.New("disk I/O error")

		c, w := testutil.NewFormContext(http.MethodPost, "/student/join", url.Values{"course_code": {"CS101"}})
		f.handler.Join(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// =====================================================================
// Room
// =====================================================================

func TestStudentHandler_Room(t *testing.T) {
	f := newFixture()
	f.list.result = &commentUsecases.ListCommentsResult{
		Filter: vo.FilterAll,
		Comments: []*commentdto.CommentDTO{
			{ID: 1, Content: "What is a monad?", Name: "Anonymous", Status: "open", CreatedAt: "2024-01-01T10:00:00Z"},
		},
	}

	c, w := testutil.NewTestContext(http.MethodGet, "/student")
	testutil.JoinCourse(c, 7, "CS101", true, "")
	f.handler.Room(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), f.list.query.CourseID)
	assert.Equal(t, "all", f.list.query.Status)
	assert.Equal(t, commentUsecases.PollLimit, f.list.query.Limit)
	assert.Contains(t, w.Body.String(), "What is a monad?")
	assert.Contains(t, w.Body.String(), `data-course-id="7"`)
}

// =====================================================================
// SubmitComment
// =====================================================================

func TestStudentHandler_SubmitComment(t *testing.T) {
	t.Run("named member", func(t *testing.T) {
		f := newFixture()
		f.submit.result = &commentUsecases.SubmitCommentResult{Comment: &commentdto.CommentDTO{ID: 1}}

		c, w := testutil.NewFormContext(http.MethodPost, "/student/comment", url.Values{"content": {"Slides please"}})
		testutil.JoinCourse(c, 2, "CS101", false, "Bob")
		f.handler.SubmitComment(c)

		assert.Equal(t, "/student", testutil.Location(w))
		require.NotNil(t, f.submit.cmd)
		assert.Equal(t, uint(2), f.submit.cmd.CourseID)
		assert.Equal(t, "Slides please", f.submit.cmd.Content)
		require.NotNil(t, f.submit.cmd.DisplayName)
		assert.Equal(t, "Bob", *f.submit.cmd.DisplayName)
		assert.False(t, f.submit.cmd.Anonymous)
		assert.Equal(t, session.Flash{Category: session.FlashSuccess, Message: msgSubmitted}, testutil.LastFlash(c))
	})

	t.Run("anonymous member never sends a name", func(t *testing.T) {
		f := newFixture()
		f.submit.result = &commentUsecases.SubmitCommentResult{Comment: &commentdto.CommentDTO{ID: 1}}

		c, _ := testutil.NewFormContext(http.MethodPost, "/student/comment", url.Values{"content": {"Hi"}})
		testutil.JoinCourse(c, 2, "CS101", true, "Bob")
		f.handler.SubmitComment(c)

		require.NotNil(t, f.submit.cmd)
		assert.Nil(t, f.submit.cmd.DisplayName)
		assert.True(t, f.submit.cmd.Anonymous)
	})

	t.Run("empty content", func(t *testing.T) {
		f := newFixture()
		f.submit.err = apperrors.NewValidationError("Comment cannot be empty.")

		c, w := testutil.NewFormContext(http.MethodPost, "/student/comment", url.Values{"content": {"  "}})
		testutil.JoinCourse(c, 2, "CS101", true, "")
		f.handler.SubmitComment(c)

		assert.Equal(t, "/student", testutil.Location(w))
		assert.Equal(t, session.Flash{Category: session.FlashDanger, Message: "Comment cannot be empty."}, testutil.LastFlash(c))
	})
}

// =====================================================================
// Leave
// =====================================================================

func TestStudentHandler_Leave(t *testing.T) {
	f := newFixture()

	c, w := testutil.NewFormContext(http.MethodPost, "/student/leave", url.Values{})
	testutil.JoinCourse(c, 2, "CS101", false, "Bob")
	testutil.LoginLecturer(c)
	f.handler.Leave(c)

	assert.Equal(t, "/", testutil.Location(w))
	sess := session.From(c)
	assert.False(t, sess.HasCourse())
	assert.True(t, sess.IsLecturer, "leaving a course keeps lecturer access")
	assert.Equal(t, session.Flash{Category: session.FlashInfo, Message: msgLeft}, testutil.LastFlash(c))
}
