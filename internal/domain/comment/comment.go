package comment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
)

const (
	AnonymousName = "Anonymous"
	FallbackName  = "Student"
)

var ErrContentRequired = errors.New("comment content is required")

// Comment is a piece of student feedback attached to a course. Only the
// status, lecturer note and resolution time ever change after creation.
type Comment struct {
	id           uint
	courseID     uint
	content      string
	displayName  *string
	anonymous    bool
	status       vo.Status
	lecturerNote *string
	createdAt    time.Time
	resolvedAt   *time.Time
}

// NewComment trims content and stores displayName exactly as given.
func NewComment(courseID uint, content string, displayName *string, anonymous bool) (*Comment, error) {
	if courseID == 0 {
		return nil, fmt.Errorf("course ID is required")
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}

	return &Comment{
		courseID:    courseID,
		content:     content,
		displayName: displayName,
		anonymous:   anonymous,
		status:      vo.StatusOpen,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructComment(
	id, courseID uint,
	content string,
	displayName *string,
	anonymous bool,
	status vo.Status,
	lecturerNote *string,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid comment status: %s", status)
	}

	return &Comment{
		id:           id,
		courseID:     courseID,
		content:      content,
		displayName:  displayName,
		anonymous:    anonymous,
		status:       status,
		lecturerNote: lecturerNote,
		createdAt:    createdAt,
		resolvedAt:   resolvedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) CourseID() uint {
	return c.courseID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) DisplayName() *string {
	return c.displayName
}

func (c *Comment) IsAnonymous() bool {
	return c.anonymous
}

func (c *Comment) Status() vo.Status {
	return c.status
}

func (c *Comment) LecturerNote() *string {
	return c.lecturerNote
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) ResolvedAt() *time.Time {
	return c.resolvedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// PublicName is the name shown to everyone viewing the comment.
func (c *Comment) PublicName() string {
	return PublicName(c.anonymous, c.displayName)
}

func PublicName(anonymous bool, displayName *string) string {
	if anonymous {
		return AnonymousName
	}
	if displayName != nil && *displayName != "" {
		return *displayName
	}
	return FallbackName
}

// NormalizeNote trims a lecturer note; blank notes become nil so they are
// stored as NULL.
func NormalizeNote(note string) *string {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil
	}
	return &note
}
