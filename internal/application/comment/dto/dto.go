package dto

import (
	"github.com/campus-pulse/campuspulse/internal/domain/comment"
	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
)

// CommentDTO is the public shape of a comment. The JSON form is what the
// polling endpoint returns; Anonymous is only used by the views.
type CommentDTO struct {
	ID           uint    `json:"id"`
	Content      string  `json:"content"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	LecturerNote *string `json:"lecturer_note"`
	CreatedAt    string  `json:"created_at"`
	ResolvedAt   *string `json:"resolved_at"`
	Anonymous    bool    `json:"-"`
}

func ToCommentDTO(c *comment.Comment) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		ID:           c.ID(),
		Content:      c.Content(),
		Name:         c.PublicName(),
		Status:       c.Status().String(),
		LecturerNote: c.LecturerNote(),
		CreatedAt:    biztime.FormatISO(c.CreatedAt()),
		ResolvedAt:   biztime.FormatISOPtr(c.ResolvedAt()),
		Anonymous:    c.IsAnonymous(),
	}
}

func ToCommentDTOList(comments []*comment.Comment) []*CommentDTO {
	list := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		list = append(list, ToCommentDTO(c))
	}
	return list
}

// CourseCommentsDTO is the polling endpoint's response body.
type CourseCommentsDTO struct {
	CourseID uint          `json:"course_id"`
	Comments []*CommentDTO `json:"comments"`
}
