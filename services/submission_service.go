package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

type SubmissionInclude struct {
	Assignment bool
	User       bool
}

var DefaultSubmissionInclude = SubmissionInclude{Assignment: true, User: true}

type CreateSubmissionInput struct {
	AssignmentID uuid.UUID               `json:"assignmentId" binding:"required"`
	UserID       uuid.UUID               `json:"userId" binding:"required"`
	Kind         models.SubmissionKind   `json:"submissionType" binding:"required,oneof=file link notebook"`
	Status       models.SubmissionStatus `json:"status" binding:"omitempty,oneof=draft submitted late graded"`
	SubmittedAt  *time.Time              `json:"submittedAt"`
	AutoScore    *float64                `json:"autoScore"`
	FinalScore   *float64                `json:"finalScore"`
}

type UpdateSubmissionInput struct {
	Kind        *models.SubmissionKind   `json:"submissionType" binding:"omitempty,oneof=file link notebook"`
	Status      *models.SubmissionStatus `json:"status" binding:"omitempty,oneof=draft submitted late graded"`
	SubmittedAt *time.Time               `json:"submittedAt"`
	AutoScore   *float64                 `json:"autoScore"`
	FinalScore  *float64                 `json:"finalScore"`
}

type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

func (s *SubmissionService) scope(inc SubmissionInclude) *gorm.DB {
	q := s.db.Model(&models.Submission{})
	if inc.Assignment {
		q = q.Preload("Assignment")
	}
	if inc.User {
		q = q.Preload("User")
	}
	return q
}

func (s *SubmissionService) FindAll(inc SubmissionInclude) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.scope(inc).Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (s *SubmissionService) FindOne(id uuid.UUID, inc SubmissionInclude) (models.Submission, error) {
	var submission models.Submission
	err := s.scope(inc).First(&submission, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Submission{}, &NotFoundError{Entity: "Submission", ID: id.String()}
	}
	return submission, err
}

// Create assigns the next attempt number for the (assignment, user) pair
// inside the insert transaction, keeping the sequence contiguous from 1.
func (s *SubmissionService) Create(in CreateSubmissionInput) (models.Submission, error) {
	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	submission := models.Submission{
		AssignmentID: in.AssignmentID,
		UserID:       in.UserID,
		Kind:         in.Kind,
		Status:       status,
		SubmittedAt:  in.SubmittedAt,
		AutoScore:    in.AutoScore,
		FinalScore:   in.FinalScore,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var lastAttempt int
		if err := tx.Model(&models.Submission{}).
			Where("assignment_id = ? AND user_id = ?", in.AssignmentID, in.UserID).
			Select("COALESCE(MAX(attempt_number), 0)").
			Scan(&lastAttempt).Error; err != nil {
			return err
		}
		submission.AttemptNumber = lastAttempt + 1
		return tx.Create(&submission).Error
	})
	if err != nil {
		return models.Submission{}, err
	}
	return s.FindOne(submission.ID, DefaultSubmissionInclude)
}

func (s *SubmissionService) Update(id uuid.UUID, in UpdateSubmissionInput) (models.Submission, error) {
	patch := map[string]interface{}{}
	if in.Kind != nil {
		patch["kind"] = *in.Kind
	}
	if in.Status != nil {
		patch["status"] = *in.Status
	}
	if in.SubmittedAt != nil {
		patch["submitted_at"] = *in.SubmittedAt
	}
	if in.AutoScore != nil {
		patch["auto_score"] = *in.AutoScore
	}
	if in.FinalScore != nil {
		patch["final_score"] = *in.FinalScore
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(patch) == 0 {
			var n int64
			if err := tx.Model(&models.Submission{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return &NotFoundError{Entity: "Submission", ID: id.String()}
			}
			return nil
		}
		res := tx.Model(&models.Submission{}).Where("id = ?", id).Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: "Submission", ID: id.String()}
		}
		return nil
	})
	if err != nil {
		return models.Submission{}, err
	}
	return s.FindOne(id, DefaultSubmissionInclude)
}

func (s *SubmissionService) Delete(id uuid.UUID) (models.Submission, error) {
	var submission models.Submission
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Assignment").Preload("User").
			First(&submission, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "Submission", ID: id.String()}
		}
		if err != nil {
			return err
		}
		return tx.Delete(&models.Submission{}, "id = ?", id).Error
	})
	if err != nil {
		return models.Submission{}, err
	}
	return submission, nil
}
