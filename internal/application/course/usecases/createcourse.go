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

type CreateCourseCommand struct {
	Code string
	Name string
}

type CreateCourseUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

func NewCreateCourseUseCase(courseRepo course.Repository, logger logger.Interface) *CreateCourseUseCase {
	return &CreateCourseUseCase{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

func (uc *CreateCourseUseCase) Execute(ctx context.Context, cmd CreateCourseCommand) (*dto.CourseDTO, error) {
	c, err := course.NewCourse(cmd.Code, cmd.Name)
	if err != nil {
		return nil, apperrors.NewValidationError("Both course code and course name are required.", err.Error())
	}

	if err := uc.courseRepo.Create(ctx, c); err != nil {
		if errors.Is(err, course.ErrDuplicateCode) {
			uc.logger.Infow("course code already taken", "code", c.Code())
			return nil, apperrors.NewConflictError(fmt.Sprintf("Course code '%s' already exists.", c.Code()))
		}
		uc.logger.Errorw("failed to create course", "code", c.Code(), "error", err)
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	uc.logger.Infow("course created", "course_id", c.ID(), "code", c.Code())
	return dto.ToCourseDTO(c), nil
}
