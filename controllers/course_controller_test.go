package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danielmahler1/f25-cisc474-individual/config"
	"github.com/danielmahler1/f25-cisc474-individual/models"
	"github.com/danielmahler1/f25-cisc474-individual/routes"
	"github.com/danielmahler1/f25-cisc474-individual/utils"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	token  string
}

func setup(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

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

	admin := models.User{Name: "Daniel Mahler", Email: "daniel@example.edu", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	token, err := utils.GenerateToken(admin.ID.String(), string(admin.Role))
	require.NoError(t, err)

	return &testServer{
		router: routes.SetupRouter(gin.New(), db),
		db:     db,
		token:  token,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) createInstructor(t *testing.T) models.User {
	t.Helper()
	user := models.User{Name: "Prof. Ada Lovelace", Email: "ada@univ.edu", Role: models.RoleInstructor}
	require.NoError(t, s.db.Create(&user).Error)
	return user
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCoursesRequireAuth(t *testing.T) {
	s := setup(t)

	rec := s.do(t, http.MethodGet, "/courses", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/courses", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCourseReturnsOwnerProjection(t *testing.T) {
	s := setup(t)
	owner := s.createInstructor(t)

	rec := s.do(t, http.MethodPost, "/courses", gin.H{
		"code":   "CS100",
		"title":  "Intro to Computing",
		"term":   "Fall 2025",
		"userId": owner.ID,
	}, s.token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, "CS100", body["code"])
	assert.Equal(t, "cs100", body["slug"])

	ownerObj, ok := body["owner"].(map[string]interface{})
	require.True(t, ok, "owner should be an object")
	assert.Equal(t, "ada@univ.edu", ownerObj["email"])
	// Only the reduced projection goes out; no role, no timestamps.
	assert.Len(t, ownerObj, 3)
}

func TestGetCourseByIDAndSlug(t *testing.T) {
	s := setup(t)
	owner := s.createInstructor(t)

	rec := s.do(t, http.MethodPost, "/courses", gin.H{
		"code":   "CS100",
		"title":  "Intro to Computing",
		"term":   "Fall 2025",
		"userId": owner.ID,
	}, s.token)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec)["id"].(string)

	rec = s.do(t, http.MethodGet, "/courses/"+id, nil, s.token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decode(t, rec)["id"])

	rec = s.do(t, http.MethodGet, "/courses/slug/cs100", nil, s.token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decode(t, rec)["id"])
}

func TestGetCourseBadID(t *testing.T) {
	s := setup(t)

	rec := s.do(t, http.MethodGet, "/courses/not-a-uuid", nil, s.token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", decode(t, rec)["error"])
}

func TestGetCourseMissingReturns404WithMessage(t *testing.T) {
	s := setup(t)
	id := "0b9fbe98-5f3e-4bd8-9e3d-1d1a3a3a9f00"

	rec := s.do(t, http.MethodGet, "/courses/"+id, nil, s.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Course with ID "+id+" not found", decode(t, rec)["error"])
}

func TestPatchCourseChangesOnlyProvidedFields(t *testing.T) {
	s := setup(t)
	owner := s.createInstructor(t)

	rec := s.do(t, http.MethodPost, "/courses", gin.H{
		"code":   "CS100",
		"title":  "Intro to Computing",
		"term":   "Fall 2025",
		"userId": owner.ID,
	}, s.token)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec)["id"].(string)

	rec = s.do(t, http.MethodPatch, "/courses/"+id, gin.H{"title": "Computing Fundamentals"}, s.token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Computing Fundamentals", body["title"])
	assert.Equal(t, "CS100", body["code"])
	assert.Equal(t, "Fall 2025", body["term"])
}

func TestDeleteCourseThenGone(t *testing.T) {
	s := setup(t)
	owner := s.createInstructor(t)

	rec := s.do(t, http.MethodPost, "/courses", gin.H{
		"code":   "CS100",
		"title":  "Intro to Computing",
		"term":   "Fall 2025",
		"userId": owner.ID,
	}, s.token)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode(t, rec)["id"].(string)

	rec = s.do(t, http.MethodDelete, "/courses/"+id, nil, s.token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/courses/"+id, nil, s.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserAdminRoutesRequireAdminRole(t *testing.T) {
	s := setup(t)

	student := models.User{Name: "Student One", Email: "s1@univ.edu", Role: models.RoleStudent}
	require.NoError(t, s.db.Create(&student).Error)
	studentToken, err := utils.GenerateToken(student.ID.String(), string(student.Role))
	require.NoError(t, err)

	payload := gin.H{"name": "Student Two", "email": "s2@univ.edu", "role": "student"}

	rec := s.do(t, http.MethodPost, "/users", payload, studentToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPost, "/users", payload, s.token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	s := setup(t)

	rec := s.do(t, http.MethodPost, "/auth/register", gin.H{
		"name":     "Student One",
		"email":    "s1@univ.edu",
		"password": "hunter22",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "s1@univ.edu",
		"password": "hunter22",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.NotEmpty(t, body["token"])

	rec = s.do(t, http.MethodPost, "/auth/login", gin.H{
		"email":    "s1@univ.edu",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
