package http

import (
	"gorm.io/gorm"

	"github.com/campus-pulse/campuspulse/internal/domain/comment"
	"github.com/campus-pulse/campuspulse/internal/domain/course"
	"github.com/campus-pulse/campuspulse/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	courseRepo  course.Repository
	commentRepo comment.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		courseRepo:  repository.NewCourseRepository(db),
		commentRepo: repository.NewCommentRepository(db),
	}
}
