package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarEvent is generated, not user-authored: one per (student, assignment)
// pair when the assignment is created or seeded.
type CalendarEvent struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null" json:"userId"`
	User         User        `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	AssignmentID *uuid.UUID  `gorm:"type:uuid" json:"assignmentId,omitempty"`
	Assignment   *Assignment `gorm:"foreignKey:AssignmentID;references:ID;constraint:OnDelete:CASCADE;" json:"assignment,omitempty"`
	Title        string      `gorm:"size:255;not null" json:"title"`
	DueAt        time.Time   `gorm:"not null" json:"dueAt"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (e *CalendarEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
