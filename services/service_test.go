package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danielmahler1/f25-cisc474-individual/config"
	"github.com/danielmahler1/f25-cisc474-individual/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, owner models.User, code, title string) models.Course {
	t.Helper()
	course, err := NewCourseService(db).Create(CreateCourseInput{
		Code:   code,
		Title:  title,
		Term:   "Fall 2025",
		UserID: owner.ID,
	})
	require.NoError(t, err)
	return course
}

func enrollStudent(t *testing.T, db *gorm.DB, user models.User, course models.Course) {
	t.Helper()
	enrollment := models.Enrollment{UserID: user.ID, CourseID: course.ID, Role: models.EnrollStudent}
	require.NoError(t, db.Create(&enrollment).Error)
}

func dueIn(days int) time.Time {
	return time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour).Truncate(time.Second)
}
