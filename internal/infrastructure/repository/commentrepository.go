package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/campus-pulse/campuspulse/internal/domain/comment"
	vo "github.com/campus-pulse/campuspulse/internal/domain/comment/valueobjects"
	"github.com/campus-pulse/campuspulse/internal/infrastructure/persistence/mappers"
	"github.com/campus-pulse/campuspulse/internal/infrastructure/persistence/models"
	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
	"github.com/campus-pulse/campuspulse/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return c.SetID(model.ID)
}

// ListByCourse returns newest first. A non-positive limit returns every row.
func (r *CommentRepository) ListByCourse(ctx context.Context, courseID uint, filter vo.Filter, limit int) ([]*comment.Comment, error) {
	var modelList []*models.CommentModel
	query := db.GetTxFromContext(ctx, r.db).
		Where("course_id = ?", courseID)

	if status, ok := filter.Status(); ok {
		query = query.Where("status = ?", status.String())
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *CommentRepository) MarkResolved(ctx context.Context, id uint, note *string, at time.Time) (bool, error) {
	values := map[string]any{
		"status":        vo.StatusResolved.String(),
		"lecturer_note": nil,
		"resolved_at":   biztime.FormatISO(at),
	}
	if note != nil {
		values["lecturer_note"] = *note
	}
	return r.update(ctx, id, values)
}

// MarkOpen clears resolved_at and leaves lecturer_note as it was.
func (r *CommentRepository) MarkOpen(ctx context.Context, id uint) (bool, error) {
	return r.update(ctx, id, map[string]any{
		"status":      vo.StatusOpen.String(),
		"resolved_at": nil,
	})
}

func (r *CommentRepository) update(ctx context.Context, id uint, values map[string]any) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CommentModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return false, fmt.Errorf("failed to update comment %d: %w", id, result.Error)
	}

	// SQLite counts matched rows, so an identical rewrite still reports 1.
	return result.RowsAffected > 0, nil
}
