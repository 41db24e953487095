package common_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-pulse/campuspulse/internal/interfaces/http/handlers/testutil"
	"github.com/campus-pulse/campuspulse/internal/interfaces/http/session"
	apperrors "github.com/campus-pulse/campuspulse/internal/shared/errors"
)

func TestResponder_FormError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCategory string
		wantMessage  string
	}{
		{
			name:         "validation",
			err:          apperrors.NewValidationError("Comment cannot be empty."),
			wantCategory: session.FlashDanger,
			wantMessage:  "Comment cannot be empty.",
		},
		{
			name:         "wrapped conflict",
			err:          fmt.Errorf("create course: %w", apperrors.NewConflictError("Course code 'CS101' already exists.")),
			wantCategory: session.FlashWarning,
			wantMessage:  "Course code 'CS101' already exists.",
		},
		{
			name:         "not found",
			err:          apperrors.NewNotFoundError("Course 'XX' not found."),
			wantCategory: session.FlashWarning,
			wantMessage:  "Course 'XX' not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewFormContext(http.MethodPost, "/lecturer/course/create", url.Values{})
			testutil.NewResponder().FormError(c, tt.err, "/lecturer")

			assert.True(t, testutil.IsRedirect(c, w))
			assert.Equal(t, "/lecturer", testutil.Location(w))
			assert.Equal(t, session.Flash{Category: tt.wantCategory, Message: tt.wantMessage}, testutil.LastFlash(c))
		})
	}

	t.Run("store failure is a 500", func(t *testing.T) {
		c, w := testutil.NewFormContext(http.MethodPost, "/lecturer/course/create", url.Values{})
		testutil.NewResponder().FormError(c, errors.New("database is locked"), "/lecturer")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, testutil.Location(w))
		assert.Contains(t, w.Body.String(), "Something went wrong")
	})
}
