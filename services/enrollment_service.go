package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

type EnrollmentInclude struct {
	User   bool
	Course bool
}

var DefaultEnrollmentInclude = EnrollmentInclude{User: true, Course: true}

type CreateEnrollmentInput struct {
	UserID   uuid.UUID             `json:"userId" binding:"required"`
	CourseID uuid.UUID             `json:"courseId" binding:"required"`
	Role     models.EnrollmentRole `json:"role" binding:"omitempty,oneof=instructor student"`
}

type UpdateEnrollmentInput struct {
	Role *models.EnrollmentRole `json:"role" binding:"omitempty,oneof=instructor student"`
}

type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

func (s *EnrollmentService) scope(inc EnrollmentInclude) *gorm.DB {
	q := s.db.Model(&models.Enrollment{})
	if inc.User {
		q = q.Preload("User")
	}
	if inc.Course {
		q = q.Preload("Course")
	}
	return q
}

func (s *EnrollmentService) FindAll(inc EnrollmentInclude) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.scope(inc).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *EnrollmentService) FindOne(id uuid.UUID, inc EnrollmentInclude) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.scope(inc).First(&enrollment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Enrollment{}, &NotFoundError{Entity: "Enrollment", ID: id.String()}
	}
	return enrollment, err
}

// Create relies on the (user, course) unique index for membership
// de-duplication; a duplicate insert surfaces as a constraint error.
func (s *EnrollmentService) Create(in CreateEnrollmentInput) (models.Enrollment, error) {
	role := in.Role
	if role == "" {
		role = models.EnrollStudent
	}
	enrollment := models.Enrollment{
		UserID:   in.UserID,
		CourseID: in.CourseID,
		Role:     role,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return models.Enrollment{}, err
	}
	return s.FindOne(enrollment.ID, DefaultEnrollmentInclude)
}

func (s *EnrollmentService) Update(id uuid.UUID, in UpdateEnrollmentInput) (models.Enrollment, error) {
	patch := map[string]interface{}{}
	if in.Role != nil {
		patch["role"] = *in.Role
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(patch) == 0 {
			var n int64
			if err := tx.Model(&models.Enrollment{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return &NotFoundError{Entity: "Enrollment", ID: id.String()}
			}
			return nil
		}
		res := tx.Model(&models.Enrollment{}).Where("id = ?", id).Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: "Enrollment", ID: id.String()}
		}
		return nil
	})
	if err != nil {
		return models.Enrollment{}, err
	}
	return s.FindOne(id, DefaultEnrollmentInclude)
}

func (s *EnrollmentService) Delete(id uuid.UUID) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("User").Preload("Course").
			First(&enrollment, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "Enrollment", ID: id.String()}
		}
		if err != nil {
			return err
		}
		return tx.Delete(&models.Enrollment{}, "id = ?", id).Error
	})
	if err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}
