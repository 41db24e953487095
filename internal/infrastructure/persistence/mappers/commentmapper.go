package mappers

import (
	"fmt"

	"github.com/campus-pulse/campuspulse/internal/domain/comment"
	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
	"github.com/campus-pulse/campuspulse/internal/infrastructure/persistence/models"
	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
)

// CommentMapper converts between Comment entities and rows.
type CommentMapper interface {
	ToModel(c *comment.Comment) *models.CommentModel
	ToEntity(model *models.CommentModel) (*comment.Comment, error)
	ToEntities(modelList []*models.CommentModel) ([]*comment.Comment, error)
}

type CommentMapperImpl struct{}

func NewCommentMapper() CommentMapper {
	return &CommentMapperImpl{}
}

func (m *CommentMapperImpl) ToModel(c *comment.Comment) *models.CommentModel {
	if c == nil {
		return nil
	}
	return &models.CommentModel{
		ID:           c.ID(),
		CourseID:     c.CourseID(),
		Content:      c.Content(),
		DisplayName:  c.DisplayName(),
		Anonymous:    c.IsAnonymous(),
		Status:       c.Status().String(),
		LecturerNote: c.LecturerNote(),
		CreatedAt:    biztime.FormatISO(c.CreatedAt()),
		ResolvedAt:   biztime.FormatISOPtr(c.ResolvedAt()),
	}
}

func (m *CommentMapperImpl) ToEntity(model *models.CommentModel) (*comment.Comment, error) {
	if model == nil {
		return nil, nil
	}

	createdAt, err := biztime.ParseISO(model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at of comment %d: %w", model.ID, err)
	}
	resolvedAt, err := biztime.ParseISOPtr(model.ResolvedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resolved_at of comment %d: %w", model.ID, err)
	}

	return comment.ReconstructComment(
		model.ID,
		model.CourseID,
		model.Content,
		model.DisplayName,
		model.Anonymous,
		vo.Status(model.Status),
		model.LecturerNote,
		createdAt,
		resolvedAt,
	)
}

func (m *CommentMapperImpl) ToEntities(modelList []*models.CommentModel) ([]*comment.Comment, error) {
	comments := make([]*comment.Comment, 0, len(modelList))
	for _, model := range modelList {
		c, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
