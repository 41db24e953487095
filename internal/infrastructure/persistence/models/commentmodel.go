package models

// CommentModel is the comments table. Anonymous and Status are always
// written explicitly; their column defaults live in the SQL migrations.
type CommentModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	CourseID     uint    `gorm:"not null;index"`
	Content      string  `gorm:"type:text;not null"`
	DisplayName  *string `gorm:"type:text"`
	Anonymous    bool    `gorm:"not null"`
	Status       string  `gorm:"type:text;not null;index"`
	LecturerNote *string `gorm:"type:text"`
	CreatedAt    string  `gorm:"column:created_at;type:text;not null;index"`
	ResolvedAt   *string `gorm:"column:resolved_at;type:text"`

	// Only used so AutoMigrate emits the cascading foreign key.
	Course *CourseModel `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

func (CommentModel) TableName() string {
	return "comments"
}
