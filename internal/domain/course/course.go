package course

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
)

var (
	ErrCodeRequired  = errors.New("course code is required")
	ErrNameRequired  = errors.New("course name is required")
	ErrDuplicateCode = errors.New("course code already exists")
	ErrNotFound      = errors.New("course not found")
)

// Course is a uniquely coded classroom that comments attach to. It is never
// mutated after creation.
type Course struct {
	id        uint
	code      string
	name      string
	createdAt time.Time
}

// NormalizeCode trims and upper-cases a course code. Students type codes in
// any case, so lookups and inserts both go through here.
func NormalizeCode(code string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(code))
}

func NewCourse(code, name string) (*Course, error) {
	code = NormalizeCode(code)
	name = strings.TrimSpace(name)

	if code == "" {
		return nil, ErrCodeRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	return &Course{
		code:      code,
		name:      name,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructCourse(id uint, code, name string, createdAt time.Time) (*Course, error) {
	if id == 0 {
		return nil, fmt.Errorf("course ID cannot be zero")
	}
	return &Course{
		id:        id,
		code:      code,
		name:      name,
		createdAt: createdAt,
	}, nil
}

func (c *Course) ID() uint {
	return c.id
}

func (c *Course) Code() string {
	return c.code
}

func (c *Course) Name() string {
	return c.name
}

func (c *Course) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Course) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("course ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("course ID cannot be zero")
	}
	c.id = id
	return nil
}
