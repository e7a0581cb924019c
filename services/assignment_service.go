package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

type AssignmentInclude struct {
	Course         bool
	Submissions    bool
	CalendarEvents bool
}

var DefaultAssignmentInclude = AssignmentInclude{Course: true, Submissions: true, CalendarEvents: true}

type CreateAssignmentInput struct {
	CourseID    uuid.UUID `json:"courseId" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	MaxAttempts int       `json:"maxAttempts"`
	LatePenalty int       `json:"latePenalty"`
}

type UpdateAssignmentInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxAttempts *int       `json:"maxAttempts"`
	LatePenalty *int       `json:"latePenalty"`
}

type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

func (s *AssignmentService) scope(inc AssignmentInclude) *gorm.DB {
	q := s.db.Model(&models.Assignment{})
	if inc.Course {
		q = q.Preload("Course")
	}
	if inc.Submissions {
		q = q.Preload("Submissions")
	}
	if inc.CalendarEvents {
		q = q.Preload("CalendarEvents")
	}
	return q
}

func (s *AssignmentService) FindAll(inc AssignmentInclude) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := s.scope(inc).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *AssignmentService) FindOne(id uuid.UUID, inc AssignmentInclude) (models.Assignment, error) {
	var assignment models.Assignment
	err := s.scope(inc).First(&assignment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Assignment{}, &NotFoundError{Entity: "Assignment", ID: id.String()}
	}
	return assignment, err
}

// Create inserts the assignment and fans out one calendar event per student
// enrolled in its course, in a single transaction.
func (s *AssignmentService) Create(in CreateAssignmentInput) (models.Assignment, error) {
	maxAttempts := in.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = 1
	}
	assignment := models.Assignment{
		CourseID:    in.CourseID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		MaxAttempts: maxAttempts,
		LatePenalty: in.LatePenalty,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		var enrollments []models.Enrollment
		if err := tx.Where("course_id = ? AND role = ?", in.CourseID, models.EnrollStudent).
			Find(&enrollments).Error; err != nil {
			return err
		}
		events := make([]models.CalendarEvent, 0, len(enrollments))
		for _, e := range enrollments {
			events = append(events, models.CalendarEvent{
				UserID:       e.UserID,
				AssignmentID: &assignment.ID,
				Title:        "Due: " + assignment.Title,
				DueAt:        assignment.DueDate,
			})
		}
		if len(events) == 0 {
			return nil
		}
		return tx.Create(&events).Error
	})
	if err != nil {
		return models.Assignment{}, err
	}
	return s.FindOne(assignment.ID, DefaultAssignmentInclude)
}

func (s *AssignmentService) Update(id uuid.UUID, in UpdateAssignmentInput) (models.Assignment, error) {
	patch := map[string]interface{}{}
	if in.Title != nil {
		patch["title"] = *in.Title
	}
	if in.Description != nil {
		patch["description"] = *in.Description
	}
	if in.DueDate != nil {
		patch["due_date"] = *in.DueDate
	}
	if in.MaxAttempts != nil {
		patch["max_attempts"] = *in.MaxAttempts
	}
	if in.LatePenalty != nil {
		patch["late_penalty"] = *in.LatePenalty
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(patch) == 0 {
			var n int64
			if err := tx.Model(&models.Assignment{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return &NotFoundError{Entity: "Assignment", ID: id.String()}
			}
			return nil
		}
		res := tx.Model(&models.Assignment{}).Where("id = ?", id).Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: "Assignment", ID: id.String()}
		}
		return nil
	})
	if err != nil {
		return models.Assignment{}, err
	}
	return s.FindOne(id, DefaultAssignmentInclude)
}

func (s *AssignmentService) Delete(id uuid.UUID) (models.Assignment, error) {
	var assignment models.Assignment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Course").Preload("Submissions").Preload("CalendarEvents").
			First(&assignment, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "Assignment", ID: id.String()}
		}
		if err != nil {
			return err
		}
		return tx.Delete(&models.Assignment{}, "id = ?", id).Error
	})
	if err != nil {
		return models.Assignment{}, err
	}
	return assignment, nil
}
