package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campus-pulse/campuspulse/internal/domain/course"
	"github.com/campus-pulse/campuspulse/internal/infrastructure/persistence/mappers"
	"github.com/campus-pulse/campuspulse/internal/infrastructure/persistence/models"
	"github.com/campus-pulse/campuspulse/internal/shared/db"
	apperrors "github.com/campus-pulse/campuspulse/internal/shared/errors"
)

type CourseRepository struct {
	db     *gorm.DB
	mapper mappers.CourseMapper
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{
		db:     db,
		mapper: mappers.NewCourseMapper(),
	}
}

// Create inserts the course and lets the unique index on code decide
// duplicates, so two concurrent creates cannot both succeed.
func (r *CourseRepository) Create(ctx context.Context, c *course.Course) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("%w: %s", course.ErrDuplicateCode, c.Code())
		}
		return fmt.Errorf("failed to create course: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CourseRepository) List(ctx context.Context) ([]*course.Course, error) {
	var modelList []*models.CourseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("created_at DESC").
		Order("id DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*course.Course, error) {
	return r.first(ctx, "code = ?", code)
}

func (r *CourseRepository) GetByID(ctx context.Context, id uint) (*course.Course, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *CourseRepository) first(ctx context.Context, query string, arg any) (*course.Course, error) {
	var model models.CourseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, course.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find course: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
