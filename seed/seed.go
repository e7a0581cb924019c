package seed

import (
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

// Run wipes and repopulates the database with the deterministic demo graph:
// 17 users, 4 courses (one with zero assignments), 10 assignments, one
// calendar event per (enrolled student, assignment), and a handcrafted spread
// of submissions that leaves some students without any.
func Run(db *gorm.DB) error {
	log.Println("clearing existing data")
	if err := clearAll(db); err != nil {
		return err
	}

	// ---------- users ----------
	admin := models.User{Name: "Daniel Mahler", Email: "daniel@example.edu", Role: models.RoleAdmin}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error; err != nil {
		return err
	}

	instructors := []models.User{
		{Name: "Prof. Ada Lovelace", Email: "ada@univ.edu", Role: models.RoleInstructor},
		{Name: "Prof. Alan Turing", Email: "alan@univ.edu", Role: models.RoleInstructor},
		{Name: "Prof. Grace Hopper", Email: "grace@univ.edu", Role: models.RoleInstructor},
		{Name: "Prof. Edsger Dijkstra", Email: "edsger@univ.edu", Role: models.RoleInstructor},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&instructors).Error; err != nil {
		return err
	}
	ada, alan, grace, edsger := instructors[0], instructors[1], instructors[2], instructors[3]

	studentNames := []string{
		"One", "Two", "Three", "Four", "Five", "Six",
		"Seven", "Eight", "Nine", "Ten", "Eleven", "Twelve",
	}
	students := make([]models.User, len(studentNames))
	for i, name := range studentNames {
		students[i] = models.User{
			Name:  "Student " + name,
			Email: "s" + strconv.Itoa(i+1) + "@univ.edu",
			Role:  models.RoleStudent,
		}
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&students).Error; err != nil {
		return err
	}
	// Email order decides how the slices below distribute students across
	// courses, so keep it stable.
	sort.Slice(students, func(i, j int) bool { return students[i].Email < students[j].Email })

	// ---------- courses ----------
	// HUM101 deliberately gets no assignments.
	courses := []models.Course{
		{Code: "CS305", Title: "Programming Problems I", Term: "Fall 2025", UserID: ada.ID},
		{Code: "CS450", Title: "Computer Networks", Term: "Fall 2025", UserID: alan.ID},
		{Code: "CS367", Title: "Algorithms", Term: "Fall 2025", UserID: grace.ID},
		{Code: "HUM101", Title: "Intro to Humanities", Term: "Fall 2025", UserID: edsger.ID},
	}
	for i := range courses {
		courses[i].Slug = slug.Make(courses[i].Code)
		if err := db.Create(&courses[i]).Error; err != nil {
			return err
		}
	}
	cs305, cs450, cs367, hum101 := courses[0], courses[1], courses[2], courses[3]

	// ---------- enrollments ----------
	instructorRows := []models.Enrollment{
		{UserID: ada.ID, CourseID: cs305.ID, Role: models.EnrollInstructor},
		{UserID: alan.ID, CourseID: cs450.ID, Role: models.EnrollInstructor},
		{UserID: grace.ID, CourseID: cs367.ID, Role: models.EnrollInstructor},
		{UserID: edsger.ID, CourseID: hum101.ID, Role: models.EnrollInstructor},
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&instructorRows).Error; err != nil {
		return err
	}

	enroll := func(courseID uuid.UUID, users []models.User) ([]uuid.UUID, error) {
		rows := make([]models.Enrollment, len(users))
		ids := make([]uuid.UUID, len(users))
		for i, u := range users {
			rows[i] = models.Enrollment{UserID: u.ID, CourseID: courseID, Role: models.EnrollStudent}
			ids[i] = u.ID
		}
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
		return ids, err
	}

	// Distribute students: cs305 (8), cs450 (7), cs367 (6), hum101 (5).
	cs305Students, err := enroll(cs305.ID, students[0:8])
	if err != nil {
		return err
	}
	cs450Students, err := enroll(cs450.ID, students[3:10])
	if err != nil {
		return err
	}
	cs367Students, err := enroll(cs367.ID, students[6:12])
	if err != nil {
		return err
	}
	if _, err := enroll(hum101.ID, students[0:5]); err != nil {
		return err
	}

	// ---------- assignments ----------
	// Ten across three courses; due dates spaced over Sept-Oct 2025 (UTC).
	assignments := []models.Assignment{
		{CourseID: cs305.ID, Title: "Warmup: FizzBuzz Variants", Description: "Intro loops & conditionals.", DueDate: date(2025, 9, 20, 23, 59), MaxAttempts: 3, LatePenalty: 10},
		{CourseID: cs305.ID, Title: "Arrays & Strings Drills", Description: "Practice array/string ops.", DueDate: date(2025, 9, 24, 23, 59), MaxAttempts: 2, LatePenalty: 10},
		{CourseID: cs305.ID, Title: "Recursion Mini-Set", Description: "Classic recursion problems.", DueDate: date(2025, 9, 30, 23, 59), MaxAttempts: 3, LatePenalty: 15},
		{CourseID: cs305.ID, Title: "Project 1: Data Structures", Description: "Stacks/Queues/Maps.", DueDate: date(2025, 10, 5, 23, 59), MaxAttempts: 2, LatePenalty: 15},

		{CourseID: cs450.ID, Title: "Wireshark Lab", Description: "Capture & analyze packets.", DueDate: date(2025, 9, 25, 23, 59), MaxAttempts: 2, LatePenalty: 5},
		{CourseID: cs450.ID, Title: "Socket Programming 101", Description: "TCP echo client/server.", DueDate: date(2025, 10, 1, 23, 59), MaxAttempts: 2, LatePenalty: 10},
		{CourseID: cs450.ID, Title: "Routing & Subnetting Worksheet", Description: "CIDR practice.", DueDate: date(2025, 10, 7, 23, 59), MaxAttempts: 1, LatePenalty: 0},

		{CourseID: cs367.ID, Title: "Asymptotic Analysis Set", Description: "Big-O, Ω, Θ proofs.", DueDate: date(2025, 9, 22, 23, 59), MaxAttempts: 2, LatePenalty: 10},
		{CourseID: cs367.ID, Title: "Greedy vs DP Short Answers", Description: "Explain choices.", DueDate: date(2025, 9, 29, 23, 59), MaxAttempts: 2, LatePenalty: 10},
		{CourseID: cs367.ID, Title: "Graph Algorithms Coding", Description: "BFS/DFS/Dijkstra.", DueDate: date(2025, 10, 6, 23, 59), MaxAttempts: 2, LatePenalty: 15},
	}
	for i := range assignments {
		if err := db.Create(&assignments[i]).Error; err != nil {
			return err
		}
	}

	// ---------- calendar events ----------
	// One per (enrolled student, assignment) of the assignment's course.
	studentsByCourse := map[uuid.UUID][]uuid.UUID{
		cs305.ID: cs305Students,
		cs450.ID: cs450Students,
		cs367.ID: cs367Students,
	}
	for i := range assignments {
		a := assignments[i]
		ids := studentsByCourse[a.CourseID]
		events := make([]models.CalendarEvent, 0, len(ids))
		for _, uid := range ids {
			events = append(events, models.CalendarEvent{
				UserID:       uid,
				AssignmentID: &assignments[i].ID,
				Title:        "Due: " + a.Title,
				DueAt:        a.DueDate,
			})
		}
		if len(events) == 0 {
			continue
		}
		if err := db.Create(&events).Error; err != nil {
			return err
		}
	}

	// ---------- submissions ----------
	// Coverage is intentionally partial: not everyone submits, some have two
	// attempts, some are late or graded, some stay drafts.
	kinds := []models.SubmissionKind{models.KindFile, models.KindLink, models.KindNotebook}
	warmup, project := assignments[0], assignments[3]
	wireshark, socket, routing := assignments[4], assignments[5], assignments[6]
	asymptotic, greedy, graph := assignments[7], assignments[8], assignments[9]

	var subs []models.Submission

	// CS305 warmup: most students submit, a quarter leave drafts.
	for i, uid := range cs305Students {
		if i%4 != 0 {
			subs = append(subs, makeSubmission(warmup.ID, uid, 1, kinds[i%3],
				timePtr(date(2025, 9, 20, 20, 0)), models.StatusSubmitted, floatPtr(float64(70+i%20)), floatPtr(float64(70+i%20))))
			if i%3 == 0 {
				subs = append(subs, makeSubmission(warmup.ID, uid, 2, models.KindFile,
					timePtr(date(2025, 9, 21, 4, 0)), models.StatusLate, floatPtr(85), floatPtr(80)))
			}
		} else {
			subs = append(subs, makeSubmission(warmup.ID, uid, 1, models.KindNotebook,
				nil, models.StatusDraft, nil, nil))
		}
	}

	// CS305 Project 1: fewer submissions, more late/graded.
	for i, uid := range cs305Students {
		if i%2 == 0 {
			subs = append(subs, makeSubmission(project.ID, uid, 1, models.KindFile,
				timePtr(date(2025, 10, 6, 2, 0)), models.StatusLate, floatPtr(88), floatPtr(83)))
		} else if i%5 == 0 {
			subs = append(subs, makeSubmission(project.ID, uid, 1, models.KindLink,
				timePtr(date(2025, 10, 5, 21, 0)), models.StatusGraded, floatPtr(92), floatPtr(92)))
		}
	}

	// CS450: mix of statuses across the three assignments.
	for i, uid := range cs450Students {
		if i%3 != 0 {
			subs = append(subs, makeSubmission(wireshark.ID, uid, 1, models.KindFile,
				timePtr(date(2025, 9, 25, 18, 0)), models.StatusSubmitted, floatPtr(float64(90-i%7)), floatPtr(float64(90-i%7))))
		}
		if i%2 == 0 {
			subs = append(subs, makeSubmission(socket.ID, uid, 1, models.KindLink,
				timePtr(date(2025, 10, 1, 22, 30)), models.StatusSubmitted, floatPtr(85), floatPtr(85)))
			if i%4 == 0 {
				subs = append(subs, makeSubmission(socket.ID, uid, 2, models.KindFile,
					timePtr(date(2025, 10, 2, 3, 0)), models.StatusLate, floatPtr(90), floatPtr(88)))
			}
		} else if i%5 == 0 {
			subs = append(subs, makeSubmission(routing.ID, uid, 1, models.KindNotebook,
				nil, models.StatusDraft, nil, nil))
		} else {
			subs = append(subs, makeSubmission(routing.ID, uid, 1, models.KindFile,
				timePtr(date(2025, 10, 7, 20, 10)), models.StatusGraded, floatPtr(93), floatPtr(93)))
		}
	}

	// CS367: solid mix, with some students never submitting.
	for i, uid := range cs367Students {
		if i%2 == 0 {
			subs = append(subs, makeSubmission(asymptotic.ID, uid, 1, models.KindLink,
				timePtr(date(2025, 9, 22, 21, 0)), models.StatusSubmitted, floatPtr(float64(78+i%10)), floatPtr(float64(78+i%10))))
		}
		if i%3 == 0 {
			subs = append(subs, makeSubmission(greedy.ID, uid, 1, models.KindFile,
				timePtr(date(2025, 9, 29, 21, 30)), models.StatusSubmitted, floatPtr(88), floatPtr(88)))
			subs = append(subs, makeSubmission(greedy.ID, uid, 2, models.KindFile,
				timePtr(date(2025, 9, 30, 1, 10)), models.StatusLate, floatPtr(92), floatPtr(90)))
		}
		if i%4 == 0 {
			subs = append(subs, makeSubmission(graph.ID, uid, 1, models.KindNotebook,
				timePtr(date(2025, 10, 6, 18, 45)), models.StatusGraded, floatPtr(95), floatPtr(95)))
		}
	}

	if len(subs) > 0 {
		if err := db.Create(&subs).Error; err != nil {
			return err
		}
	}

	log.Printf("seed complete: users=%d, courses=%d, assignments=%d, submissions=%d",
		1+len(instructors)+len(students), len(courses), len(assignments), len(subs))
	return nil
}

// clearAll wipes tables in FK-safe order; tables missing on a fresh schema
// are skipped rather than treated as failures.
func clearAll(db *gorm.DB) error {
	for _, m := range []interface{}{
		&models.CalendarEvent{},
		&models.Submission{},
		&models.Assignment{},
		&models.Enrollment{},
		&models.Course{},
		&models.User{},
	} {
		if !db.Migrator().HasTable(m) {
			continue
		}
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func makeSubmission(
	assignmentID, userID uuid.UUID,
	attempt int,
	kind models.SubmissionKind,
	submittedAt *time.Time,
	status models.SubmissionStatus,
	autoScore, finalScore *float64,
) models.Submission {
	return models.Submission{
		AssignmentID:  assignmentID,
		UserID:        userID,
		AttemptNumber: attempt,
		Kind:          kind,
		SubmittedAt:   submittedAt,
		Status:        status,
		AutoScore:     autoScore,
		FinalScore:    finalScore,
	}
}

func date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }
