package student

type JoinCourseRequest struct {
	CourseCode  string `form:"course_code" binding:"notblank"`
	DisplayName string `form:"display_name"`
	// Anonymous is the checkbox value; browsers send "on" when it is ticked.
	Anonymous string `form:"anonymous"`
}

func (r *JoinCourseRequest) IsAnonymous() bool {
	return r.Anonymous == "on"
}

type SubmitCommentRequest struct {
	Content string `form:"content"`
}
