package pages

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coursedto "github.com/campus-pulse/campuspulse/internal/application/course/dto"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/testutil"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/views"
	"github.com/campus-pulse/campuspulse/internal/shared/services/markdown"
)

type mockListCoursesUC struct {
	result []*coursedto.CourseDTO
	err    error
}

func (m *mockListCoursesUC) Execute(_ context.Context) ([]*coursedto.CourseDTO, error) {
	return m.result, m.err
}

type countingRenderer struct {
	calls int
}

func (r *countingRenderer) Render(source []byte) (template.HTML, error) {
	r.calls++
	return template.HTML("<p>" + string(source) + "</p>"), nil
}

func TestPagesHandler_Index(t *testing.T) {
	uc := &mockListCoursesUC{result: []*coursedto.CourseDTO{{ID: 1, Code: "CS101", Name: "Demo Course: CS101"}}}
	h := NewPagesHandler(uc, markdown.NewRenderer(), views.AboutMarkdown(), testutil.NewResponder(), testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/")
	h.Index(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Demo Course: CS101")
	assert.Contains(t, w.Body.String(), `name="course_code"`)
}

func TestPagesHandler_Index_StoreFailure(t *testing.T) {
	uc := &mockListCoursesUC{err: errors.New("unable to open database file")}
	h := NewPagesHandler(uc, markdown.NewRenderer(), views.AboutMarkdown(), testutil.NewResponder(), testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/")
	h.Index(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
}

func TestPagesHandler_About(t *testing.T) {
	md := &countingRenderer{}
	h := NewPagesHandler(&mockListCoursesUC{}, md, []byte("hello"), testutil.NewResponder(), testutil.NewMockLogger())

	for i := 0; i < 2; i++ {
		c, w := testutil.NewTestContext(http.MethodGet, "/about")
		h.About(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<p>hello</p>")
	}
	assert.Equal(t, 1, md.calls)
}

func TestPagesHandler_About_EmbeddedContent(t *testing.T) {
	h := NewPagesHandler(&mockListCoursesUC{}, markdown.NewRenderer(), views.AboutMarkdown(), testutil.NewResponder(), testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/about")
	h.About(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1")
}

func TestPagesHandler_NotFound(t *testing.T) {
	h := NewPagesHandler(&mockListCoursesUC{}, markdown.NewRenderer(), views.AboutMarkdown(), testutil.NewResponder(), testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/nope")
	h.NotFound(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not found")

	c, w = testutil.NewTestContext(http.MethodGet, "/api/nope")
	h.NotFound(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}
