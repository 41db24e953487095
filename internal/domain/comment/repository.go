package comment

import (
	"context"
	"time"

	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
)

// Repository persists comments. MarkResolved and MarkOpen are single
// unconditional updates; updated reports whether a row matched the id.
type Repository interface {
	Create(ctx context.Context, c *Comment) error
	ListByCourse(ctx context.Context, courseID uint, filter vo.Filter, limit int) ([]*Comment, error)
	MarkResolved(ctx context.Context, id uint, note *string, at time.Time) (updated bool, err error)
	MarkOpen(ctx context.Context, id uint) (updated bool, err error)
}
