package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleInstructor UserRole = "instructor"
	RoleStudent    UserRole = "student"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Email        string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Courses are the ones this user owns as instructor.
	Courses        []Course        `gorm:"foreignKey:UserID" json:"courses,omitempty"`
	Enrollments    []Enrollment    `gorm:"foreignKey:UserID" json:"enrollments,omitempty"`
	Submissions    []Submission    `gorm:"foreignKey:UserID" json:"submissions,omitempty"`
	CalendarEvents []CalendarEvent `gorm:"foreignKey:UserID" json:"calendarEvents,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
