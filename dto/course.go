package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

// CourseOwner is the reduced owner projection exposed on the wire; every other
// owner field stays internal.
type CourseOwner struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type Course struct {
	ID          uuid.UUID           `json:"id"`
	Code        string              `json:"code"`
	Slug        string              `json:"slug"`
	Title       string              `json:"title"`
	Term        string              `json:"term"`
	UserID      uuid.UUID           `json:"userId"`
	CreatedAt   time.Time           `json:"createdAt"`
	Owner       *CourseOwner        `json:"owner,omitempty"`
	Assignments []models.Assignment `json:"assignments,omitempty"`
	Enrollments []models.Enrollment `json:"enrollments,omitempty"`
}

// CourseFromModel is pure; a missing owner relation yields a nil Owner rather
// than a zero-valued one.
func CourseFromModel(course models.Course) Course {
	out := Course{
		ID:          course.ID,
		Code:        course.Code,
		Slug:        course.Slug,
		Title:       course.Title,
		Term:        course.Term,
		UserID:      course.UserID,
		CreatedAt:   course.CreatedAt,
		Assignments: course.Assignments,
		Enrollments: course.Enrollments,
	}
	if course.Owner.ID != uuid.Nil {
		out.Owner = &CourseOwner{
			ID:    course.Owner.ID,
			Name:  course.Owner.Name,
			Email: course.Owner.Email,
		}
	}
	return out
}

func CourseFromModels(courses []models.Course) []Course {
	result := make([]Course, len(courses))
	for i, course := range courses {
		result[i] = CourseFromModel(course)
	}
	return result
}
