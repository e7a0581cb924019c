package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionKind string

const (
	KindFile     SubmissionKind = "file"
	KindLink     SubmissionKind = "link"
	KindNotebook SubmissionKind = "notebook"
)

type SubmissionStatus string

const (
	StatusDraft     SubmissionStatus = "draft"
	StatusSubmitted SubmissionStatus = "submitted"
	StatusLate      SubmissionStatus = "late"
	StatusGraded    SubmissionStatus = "graded"
)

// Submission is one attempt by one user on one assignment. Attempt numbers are
// 1-based and contiguous per (assignment, user); status is caller-set, there is
// no transition machinery.
type Submission struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AssignmentID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_submission_attempt" json:"assignmentId"`
	Assignment   Assignment `gorm:"foreignKey:AssignmentID;references:ID;constraint:OnDelete:CASCADE;" json:"assignment,omitempty"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_submission_attempt" json:"userId"`
	User         User       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`

	AttemptNumber int              `gorm:"not null;default:1;uniqueIndex:idx_submission_attempt" json:"attemptNumber"`
	Kind          SubmissionKind   `gorm:"type:varchar(20);not null;default:'file'" json:"submissionType"`
	SubmittedAt   *time.Time       `json:"submittedAt,omitempty"`
	Status        SubmissionStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	AutoScore     *float64         `gorm:"type:numeric(5,2)" json:"autoScore,omitempty"`
	FinalScore    *float64         `gorm:"type:numeric(5,2)" json:"finalScore,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
