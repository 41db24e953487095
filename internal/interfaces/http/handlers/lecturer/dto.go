package lecturer

type LoginRequest struct {
	Password string `form:"password"`
}

type CreateCourseRequest struct {
	Code string `form:"code"`
	Name string `form:"name"`
}

// CommentActionRequest is posted by the resolve and re-open buttons.
// CourseID is kept raw so a missing or malformed value falls back to the
// dashboard instead of failing the request.
type CommentActionRequest struct {
	CourseID     string `form:"course_id"`
	LecturerNote string `form:"lecturer_note"`
}
