package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-pulse/campuspulse/internal/application/comment/dto"
	"github.com/campus-pulse/campuspulse/internal/application/comment/usecases"
	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/testutil"
)

type mockListCommentsUC struct {
	result *usecases.ListCommentsResult
	err    error
	query  usecases.ListCommentsQuery
	called bool
}

func (m *mockListCommentsUC) Execute(_ context.Context, query usecases.ListCommentsQuery) (*usecases.ListCommentsResult, error) {
	m.called = true
	m.query = query
	return m.result, m.err
}

func TestAPIHandler_Comments(t *testing.T) {
	t.Run("snapshot", func(t *testing.T) {
		note := "see slides"
		resolvedAt := "2024-01-01T11:00:00Z"
		uc := &mockListCommentsUC{result: &usecases.ListCommentsResult{
			Filter: vo.FilterAll,
			Comments: []*dto.CommentDTO{
				{ID: 2, Content: "b", Name: "Anonymous", Status: "resolved", LecturerNote: &note, CreatedAt: "2024-01-01T10:05:00Z", ResolvedAt: &resolvedAt, Anonymous: true},
				{ID: 1, Content: "a", Name: "Bob", Status: "open", CreatedAt: "2024-01-01T10:00:00Z"},
			},
		}}
		h := NewAPIHandler(uc, testutil.AppName, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/comments/3")
		testutil.SetURLParam(c, "course_id", "3")
		h.Comments(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), uc.query.CourseID)
		assert.Equal(t, "all", uc.query.Status)
		assert.Equal(t, usecases.PollLimit, uc.query.Limit)

		var body struct {
			CourseID uint             `json:"course_id"`
			Comments []map[string]any `json:"comments"`
		}
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, uint(3), body.CourseID)
		require.Len(t, body.Comments, 2)
		assert.Equal(t, "Anonymous", body.Comments[0]["name"])
		assert.Equal(t, "see slides", body.Comments[0]["lecturer_note"])
		assert.NotContains(t, body.Comments[0], "anonymous")
		assert.Nil(t, body.Comments[1]["lecturer_note"])
		assert.Nil(t, body.Comments[1]["resolved_at"])
		assert.Contains(t, body.Comments[1], "resolved_at")
	})

	t.Run("unknown course is an empty list", func(t *testing.T) {
		uc := &mockListCommentsUC{result: &usecases.ListCommentsResult{Filter: vo.FilterAll, Comments: []*dto.CommentDTO{}}}
		h := NewAPIHandler(uc, testutil.AppName, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/comments/999")
		testutil.SetURLParam(c, "course_id", "999")
		h.Comments(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"course_id":999,"comments":[]}`, w.Body.String())
	})

	t.Run("non-integer id", func(t *testing.T) {
		uc := &mockListCommentsUC{}
		h := NewAPIHandler(uc, testutil.AppName, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/comments/abc")
		testutil.SetURLParam(c, "course_id", "abc")
		h.Comments(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, uc.called)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
	})

	t.Run("store failure", func(t *testing.T) {
		uc := &mockListCommentsUC{err: errors.New("database is locked")}
		h := NewAPIHandler(uc, testutil.AppName, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/comments/1")
		testutil.SetURLParam(c, "course_id", "1")
		h.Comments(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "internal_error", resp.Error.Type)
	})
}

func TestAPIHandler_Health(t *testing.T) {
	h := NewAPIHandler(&mockListCommentsUC{}, testutil.AppName, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/health")
	h.Health(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","app":"Campus Pulse"}`, w.Body.String())
}
