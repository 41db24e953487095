package models

// CourseModel is the courses table. Timestamps are ISO-8601 UTC text.
type CourseModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Code      string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	CreatedAt string `gorm:"column:created_at;type:text;not null;index"`
}

func (CourseModel) TableName() string {
	return "courses"
}
