package mappers

import (
	"fmt"

	"github.com/campus-pulse/campuspulse/internal/domain/course"
	"github.com/campus-pulse/campuspulse/internal/infrastructure/persistence/models"
	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
)

// CourseMapper converts between Course entities and rows.
type CourseMapper interface {
	ToModel(c *course.Course) *models.CourseModel
	ToEntity(model *models.CourseModel) (*course.Course, error)
	ToEntities(modelList []*models.CourseModel) ([]*course.Course, error)
}

type CourseMapperImpl struct{}

func NewCourseMapper() CourseMapper {
	return &CourseMapperImpl{}
}

func (m *CourseMapperImpl) ToModel(c *course.Course) *models.CourseModel {
	if c == nil {
		return nil
	}
	return &models.CourseModel{
		ID:        c.ID(),
		Code:      c.Code(),
		Name:      c.Name(),
		CreatedAt: biztime.FormatISO(c.CreatedAt()),
	}
}

func (m *CourseMapperImpl) ToEntity(model *models.CourseModel) (*course.Course, error) {
	if model == nil {
		return nil, nil
	}

	createdAt, err := biztime.ParseISO(model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at of course %d: %w", model.ID, err)
	}

	return course.ReconstructCourse(model.ID, model.Code, model.Name, createdAt)
}

func (m *CourseMapperImpl) ToEntities(modelList []*models.CourseModel) ([]*course.Course, error) {
	courses := make([]*course.Course, 0, len(modelList))
	for _, model := range modelList {
		c, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}
