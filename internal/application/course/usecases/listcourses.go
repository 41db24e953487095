package usecases

import (
	"context"
	"fmt"

	"github.com/campus-pulse/campuspulse/internal/application/course/dto"
	"github.com/campus-pulse/campuspulse/internal/domain/course"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

type ListCoursesUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

func NewListCoursesUseCase(courseRepo course.Repository, logger logger.Interface) *ListCoursesUseCase {
	return &ListCoursesUseCase{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// Execute returns every course, newest first.
func (uc *ListCoursesUseCase) Execute(ctx context.Context) ([]*dto.CourseDTO, error) {
	courses, err := uc.courseRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list courses", "error", err)
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return dto.ToCourseDTOList(courses), nil
}
