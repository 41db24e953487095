package usecases

import (
	"context"
	"time"

	"github.com/campus-pulse/campuspulse/internal/domain/comment"
	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
)

type mockCommentRepository struct {
	CreateFunc       func(ctx context.Context, c *comment.Comment) error
	ListByCourseFunc func(ctx context.Context, courseID uint, filter vo.Filter, limit int) ([]*comment.Comment, error)
	MarkResolvedFunc func(ctx context.Context, id uint, note *string, at time.Time) (bool, error)
	MarkOpenFunc     func(ctx context.Context, id uint) (bool, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByCourse(ctx context.Context, courseID uint, filter vo.Filter, limit int) ([]*comment.Comment, error) {
	if m.ListByCourseFunc != nil {
		return m.ListByCourseFunc(ctx, courseID, filter, limit)
	}
	return nil, nil
}

func (m *mockCommentRepository) MarkResolved(ctx context.Context, id uint, note *string, at time.Time) (bool, error) {
	if m.MarkResolvedFunc != nil {
		return m.MarkResolvedFunc(ctx, id, note, at)
	}
	return true, nil
}

func (m *mockCommentRepository) MarkOpen(ctx context.Context, id uint) (bool, error) {
	if m.MarkOpenFunc != nil {
		return m.MarkOpenFunc(ctx, id)
	}
	return true, nil
}
