package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

// CourseInclude selects which relations get joined; call sites ask only for
// what they render.
type CourseInclude struct {
	Owner       bool
	Assignments bool
	Enrollments bool
}

// DefaultCourseInclude matches the shape the HTTP layer has always returned.
var DefaultCourseInclude = CourseInclude{Owner: true, Assignments: true, Enrollments: true}

type CreateCourseInput struct {
	Code   string    `json:"code" binding:"required"`
	Title  string    `json:"title" binding:"required"`
	Term   string    `json:"term" binding:"required"`
	UserID uuid.UUID `json:"userId" binding:"required"`
}

type UpdateCourseInput struct {
	Code   *string    `json:"code"`
	Title  *string    `json:"title"`
	Term   *string    `json:"term"`
	UserID *uuid.UUID `json:"userId"`
}

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

func (s *CourseService) scope(inc CourseInclude) *gorm.DB {
	q := s.db.Model(&models.Course{})
	if inc.Owner {
		q = q.Preload("Owner")
	}
	if inc.Assignments {
		q = q.Preload("Assignments")
	}
	if inc.Enrollments {
		q = q.Preload("Enrollments")
	}
	return q
}

func (s *CourseService) FindAll(inc CourseInclude) ([]models.Course, error) {
	var courses []models.Course
	if err := s.scope(inc).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) FindOne(id uuid.UUID, inc CourseInclude) (models.Course, error) {
	var course models.Course
	err := s.scope(inc).First(&course, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Course{}, &NotFoundError{Entity: "Course", ID: id.String()}
	}
	return course, err
}

// FindBySlug resolves the human-friendly identifier the course pages use.
func (s *CourseService) FindBySlug(courseSlug string, inc CourseInclude) (models.Course, error) {
	var course models.Course
	err := s.scope(inc).First(&course, "slug = ?", courseSlug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Course{}, &NotFoundError{Entity: "Course", ID: courseSlug}
	}
	return course, err
}

func (s *CourseService) Create(in CreateCourseInput) (models.Course, error) {
	course := models.Course{
		Code:   in.Code,
		Slug:   slug.Make(in.Code),
		Title:  in.Title,
		Term:   in.Term,
		UserID: in.UserID,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return models.Course{}, err
	}
	return s.FindOne(course.ID, DefaultCourseInclude)
}

// Update applies only the fields present in the patch. The conditional update
// and its existence check share one transaction, so there is no window between
// them.
func (s *CourseService) Update(id uuid.UUID, in UpdateCourseInput) (models.Course, error) {
	patch := map[string]interface{}{}
	if in.Code != nil {
		patch["code"] = *in.Code
		patch["slug"] = slug.Make(*in.Code)
	}
	if in.Title != nil {
		patch["title"] = *in.Title
	}
	if in.Term != nil {
		patch["term"] = *in.Term
	}
	if in.UserID != nil {
		patch["user_id"] = *in.UserID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(patch) == 0 {
			var n int64
			if err := tx.Model(&models.Course{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return &NotFoundError{Entity: "Course", ID: id.String()}
			}
			return nil
		}
		res := tx.Model(&models.Course{}).Where("id = ?", id).Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: "Course", ID: id.String()}
		}
		return nil
	})
	if err != nil {
		return models.Course{}, err
	}
	return s.FindOne(id, DefaultCourseInclude)
}

// Delete removes the course and returns its prior relation-joined snapshot.
func (s *CourseService) Delete(id uuid.UUID) (models.Course, error) {
	var course models.Course
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Owner").Preload("Assignments").Preload("Enrollments").
			First(&course, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "Course", ID: id.String()}
		}
		if err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, "id = ?", id).Error
	})
	if err != nil {
		return models.Course{}, err
	}
	return course, nil
}
