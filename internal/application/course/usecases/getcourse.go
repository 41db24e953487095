package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/campus-pulse/campuspulse/internal/application/course/dto"
	"github.com/campus-pulse/campuspulse/internal/domain/course"
	apperrors "github.com/campus-pulse/campuspulse/internal/shared/errors"
	"github.com/campus-pulse/campuspulse/internal/shared/logger"
)

type GetCourseByCodeQuery struct {
	Code string
}

type GetCourseByCodeUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

func NewGetCourseByCodeUseCase(courseRepo course.Repository, logger logger.Interface) *GetCourseByCodeUseCase {
	return &GetCourseByCodeUseCase{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// Execute normalizes the code the same way course creation does.
func (uc *GetCourseByCodeUseCase) Execute(ctx context.Context, query GetCourseByCodeQuery) (*dto.CourseDTO, error) {
	code := course.NormalizeCode(query.Code)
	if code == "" {
		return nil, apperrors.NewValidationError("Course code is required.")
	}

	c, err := uc.courseRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Course '%s' not found. Ask your lecturer to create it.", code))
		}
		uc.logger.Errorw("failed to get course by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return dto.ToCourseDTO(c), nil
}

type GetCourseByIDQuery struct {
	CourseID uint
}

type GetCourseByIDUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

func NewGetCourseByIDUseCase(courseRepo course.Repository, logger logger.Interface) *GetCourseByIDUseCase {
	return &GetCourseByIDUseCase{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func (uc *GetCourseByIDUseCase) Execute(ctx context.Context, query GetCourseByIDQuery) (*dto.CourseDTO, error) {
	c, err := uc.courseRepo.GetByID(ctx, query.CourseID)
	if err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Course not found.")
		}
		uc.logger.Errorw("failed to get course by id", "course_id", query.CourseID, "error", err)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return dto.ToCourseDTO(c), nil
}
