package usecases

import (
	"context"

	"github.com/campus-pulse/campuspulse/internal/application/course/dto"
)

type CreateCourseExecutor interface {
	Execute(ctx context.Context, cmd CreateCourseCommand) (*dto.CourseDTO, error)
}

type ListCoursesExecutor interface {
	Execute(ctx context.Context) ([]*dto.CourseDTO, error)
}

type GetCourseByCodeExecutor interface {
	Execute(ctx context.Context, query GetCourseByCodeQuery) (*dto.CourseDTO, error)
}

type GetCourseByIDExecutor interface {
	Execute(ctx context.Context, query GetCourseByIDQuery) (*dto.CourseDTO, error)
}
