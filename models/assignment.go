package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Assignment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null" json:"courseId"`
	Course      Course    `gorm:"foreignKey:CourseID;references:ID;constraint:OnDelete:CASCADE;" json:"course,omitempty"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"not null" json:"dueDate"`
	MaxAttempts int       `gorm:"default:1" json:"maxAttempts"`
	// LatePenalty is the percentage deducted from late submissions.
	LatePenalty int `gorm:"default:0" json:"latePenalty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Submissions    []Submission    `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE;" json:"submissions,omitempty"`
	CalendarEvents []CalendarEvent `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE;" json:"calendarEvents,omitempty"`
}

func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
