package seeds

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campus-pulse/campuspulse/internal/infrastructure/persistence/models"
	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
)

const (
	DemoCourseCode = "CS101"
	DemoCourseName = "Demo Course: CS101"
)

// SeedCourses inserts the demo course unless a course with its code exists.
func SeedCourses(db *gorm.DB) error {
	demo := models.CourseModel{
		Code:      DemoCourseCode,
		Name:      DemoCourseName,
		CreatedAt: biztime.FormatISO(biztime.NowUTC()),
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&demo).Error
}
