package dto

import (
	"github.com/campus-pulse/campuspulse/internal/domain/course"
	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
)

type CourseDTO struct {
	ID        uint   `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func ToCourseDTO(c *course.Course) *CourseDTO {
	if c == nil {
		return nil
	}
	return &CourseDTO{
		ID:        c.ID(),
		Code:      c.Code(),
		Name:      c.Name(),
		CreatedAt: biztime.FormatISO(c.CreatedAt()),
	}
}

func ToCourseDTOList(courses []*course.Course) []*CourseDTO {
	list := make([]*CourseDTO, 0, len(courses))
	for _, c := range courses {
		list = append(list, ToCourseDTO(c))
	}
	return list
}
