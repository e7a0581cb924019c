package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code  string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Slug  string    `gorm:"size:64;uniqueIndex" json:"slug"`
	Title string    `gorm:"size:255;not null" json:"title"`
	Term  string    `gorm:"size:50;not null" json:"term"`

	// UserID is the owning instructor.
	UserID uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
	Owner  User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"owner,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Enrollments []Enrollment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"enrollments,omitempty"`
	Assignments []Assignment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"assignments,omitempty"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
