package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

func submissionFixture(t *testing.T) (*SubmissionService, models.Assignment, models.User, models.User) {
	t.Helper()
	db := setupDB(t)
	owner := createUser(t, db, "Prof. Ada Lovelace", "ada@univ.edu", models.RoleInstructor)
	alice := createUser(t, db, "Student One", "s1@univ.edu", models.RoleStudent)
	bob := createUser(t, db, "Student Two", "s2@univ.edu", models.RoleStudent)
	course := createCourse(t, db, owner, "CS100", "Intro to Computing")
	enrollStudent(t, db, alice, course)
	enrollStudent(t, db, bob, course)

	assignment, err := NewAssignmentService(db).Create(CreateAssignmentInput{
		CourseID: course.ID,
		Title:    "Homework 1",
		DueDate:  dueIn(7),
	})
	require.NoError(t, err)
	return NewSubmissionService(db), assignment, alice, bob
}

func TestSubmissionAttemptNumbersAreContiguous(t *testing.T) {
	svc, assignment, alice, _ := submissionFixture(t)

	for want := 1; want <= 3; want++ {
		sub, err := svc.Create(CreateSubmissionInput{
			AssignmentID: assignment.ID,
			UserID:       alice.ID,
			Kind:         models.KindFile,
		})
		require.NoError(t, err)
		assert.Equal(t, want, sub.AttemptNumber)
	}
}

func TestSubmissionAttemptsCountedPerUser(t *testing.T) {
	svc, assignment, alice, bob := submissionFixture(t)

	first, err := svc.Create(CreateSubmissionInput{
		AssignmentID: assignment.ID,
		UserID:       alice.ID,
		Kind:         models.KindLink,
	})
	require.NoError(t, err)
	require.Equal(t, 1, first.AttemptNumber)

	// Bob's first attempt starts at 1 regardless of Alice's history.
	other, err := svc.Create(CreateSubmissionInput{
		AssignmentID: assignment.ID,
		UserID:       bob.ID,
		Kind:         models.KindFile,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, other.AttemptNumber)
}

func TestSubmissionCreateDefaultsToDraft(t *testing.T) {
	svc, assignment, alice, _ := submissionFixture(t)

	sub, err := svc.Create(CreateSubmissionInput{
		AssignmentID: assignment.ID,
		UserID:       alice.ID,
		Kind:         models.KindNotebook,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, sub.Status)
	assert.Nil(t, sub.SubmittedAt)
	assert.Nil(t, sub.AutoScore)
}

func TestSubmissionUpdateScoresAndStatus(t *testing.T) {
	svc, assignment, alice, _ := submissionFixture(t)

	sub, err := svc.Create(CreateSubmissionInput{
		AssignmentID: assignment.ID,
		UserID:       alice.ID,
		Kind:         models.KindFile,
	})
	require.NoError(t, err)

	graded := models.StatusGraded
	score := 92.5
	updated, err := svc.Update(sub.ID, UpdateSubmissionInput{
		Status:     &graded,
		AutoScore:  &score,
		FinalScore: &score,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusGraded, updated.Status)
	require.NotNil(t, updated.FinalScore)
	assert.InDelta(t, 92.5, *updated.FinalScore, 0.001)
	assert.Equal(t, models.KindFile, updated.Kind)
}

func TestSubmissionNotFound(t *testing.T) {
	svc, _, _, _ := submissionFixture(t)
	id := uuid.New()

	var notFound *NotFoundError
	_, err := svc.FindOne(id, DefaultSubmissionInclude)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Submission with ID "+id.String()+" not found", err.Error())

	_, err = svc.Delete(id)
	require.ErrorAs(t, err, &notFound)
}
