package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

func TestAssignmentCreateFansOutCalendarEvents(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "Prof. Ada Lovelace", "ada@univ.edu", models.RoleInstructor)
	course := createCourse(t, db, owner, "CS100", "Intro to Computing")

	// Instructor enrollment must not receive an event.
	instructorRow := models.Enrollment{UserID: owner.ID, CourseID: course.ID, Role: models.EnrollInstructor}
	require.NoError(t, db.Create(&instructorRow).Error)

	students := []models.User{
		createUser(t, db, "Student One", "s1@univ.edu", models.RoleStudent),
		createUser(t, db, "Student Two", "s2@univ.edu", models.RoleStudent),
		createUser(t, db, "Student Three", "s3@univ.edu", models.RoleStudent),
	}
	for _, s := range students {
		enrollStudent(t, db, s, course)
	}

	due := dueIn(7)
	assignment, err := NewAssignmentService(db).Create(CreateAssignmentInput{
		CourseID:    course.ID,
		Title:       "Homework 1",
		Description: "Loops and conditionals.",
		DueDate:     due,
		MaxAttempts: 2,
	})
	require.NoError(t, err)

	var events []models.CalendarEvent
	require.NoError(t, db.Where("assignment_id = ?", assignment.ID).Find(&events).Error)
	require.Len(t, events, len(students))

	got := map[string]bool{}
	for _, e := range events {
		got[e.UserID.String()] = true
		assert.Equal(t, "Due: Homework 1", e.Title)
		assert.True(t, e.DueAt.Equal(due))
	}
	for _, s := range students {
		assert.True(t, got[s.ID.String()], "missing event for %s", s.Email)
	}
	assert.False(t, got[owner.ID.String()])
}

func TestAssignmentCreateEmptyCourseNoEvents(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "Prof. Ada Lovelace", "ada@univ.edu", models.RoleInstructor)
	course := createCourse(t, db, owner, "CS100", "Intro to Computing")

	assignment, err := NewAssignmentService(db).Create(CreateAssignmentInput{
		CourseID: course.ID,
		Title:    "Homework 1",
		DueDate:  dueIn(7),
	})
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&models.CalendarEvent{}).
		Where("assignment_id = ?", assignment.ID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAssignmentCreateDefaultsMaxAttempts(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "Prof. Ada Lovelace", "ada@univ.edu", models.RoleInstructor)
	course := createCourse(t, db, owner, "CS100", "Intro to Computing")

	assignment, err := NewAssignmentService(db).Create(CreateAssignmentInput{
		CourseID: course.ID,
		Title:    "Homework 1",
		DueDate:  dueIn(7),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, assignment.MaxAttempts)
}

func TestAssignmentUpdateDoesNotTouchEvents(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, db, "Prof. Ada Lovelace", "ada@univ.edu", models.RoleInstructor)
	student := createUser(t, db, "Student One", "s1@univ.edu", models.RoleStudent)
	course := createCourse(t, db, owner, "CS100", "Intro to Computing")
	enrollStudent(t, db, student, course)

	svc := NewAssignmentService(db)
	assignment, err := svc.Create(CreateAssignmentInput{
		CourseID: course.ID,
		Title:    "Homework 1",
		DueDate:  dueIn(7),
	})
	require.NoError(t, err)

	newTitle := "Homework 1 (revised)"
	updated, err := svc.Update(assignment.ID, UpdateAssignmentInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Homework 1 (revised)", updated.Title)

	// Events keep the title from creation time.
	var event models.CalendarEvent
	require.NoError(t, db.First(&event, "assignment_id = ?", assignment.ID).Error)
	assert.Equal(t, "Due: Homework 1", event.Title)
}
