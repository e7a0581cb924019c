package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentRole string

const (
	EnrollInstructor EnrollmentRole = "instructor"
	EnrollStudent    EnrollmentRole = "student"
)

// Enrollment links a user to a course with a role. The composite unique index
// keeps at most one row per (user, course) pair.
type Enrollment struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course" json:"userId"`
	User     User           `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	CourseID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course" json:"courseId"`
	Course   Course         `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE;" json:"course,omitempty"`
	Role     EnrollmentRole `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
