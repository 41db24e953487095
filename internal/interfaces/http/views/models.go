package views

import (
	"html/template"

	commentdto "github.com/campus-pulse/campuspulse/internal/application/comment/dto"
	coursedto "github.com/campus-pulse/campuspulse/internal/application/course/dto"
)

type CourseListData struct {
	Courses []*coursedto.CourseDTO
}

type AboutData struct {
	HTML template.HTML
}

type StudentRoomData struct {
	Course   *coursedto.CourseDTO
	Comments []*commentdto.CommentDTO
}

type LoginData struct {
	Next string
}

type LecturerCourseData struct {
	Course   *coursedto.CourseDTO
	Comments []*commentdto.CommentDTO
	Status   string
	Tabs     []string
}
