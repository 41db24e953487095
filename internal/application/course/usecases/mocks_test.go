package usecases

import (
	"context"

	"github.com/campus-pulse/campuspulse/internal/domain/course"
)

type mockCourseRepository struct {
	CreateFunc    func(ctx context.Context, c *course.Course) error
	ListFunc      func(ctx context.Context) ([]*course.Course, error)
	GetByCodeFunc func(ctx context.Context, code string) (*course.Course, error)
	GetByIDFunc   func(ctx context.Context, id uint) (*course.Course, error)
}

func (m *mockCourseRepository) Create(ctx context.Context, c *course.Course) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCourseRepository) List(ctx context.Context) ([]*course.Course, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCourseRepository) GetByCode(ctx context.Context, code string) (*course.Course, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, course.ErrNotFound
}

func (m *mockCourseRepository) GetByID(ctx context.Context, id uint) (*course.Course, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, course.ErrNotFound
}
