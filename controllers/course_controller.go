package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmahler1/f25-cisc474-individual/dto"
	"github.com/danielmahler1/f25-cisc474-individual/services"
)

// GET /courses
func GetCourses(c *gin.Context) {
	svc := services.NewCourseService(getDB(c))
	courses, err := svc.FindAll(services.DefaultCourseInclude)
	if err != nil {
		respondError(c, err, "could not list courses")
		return
	}
	c.JSON(http.StatusOK, dto.CourseFromModels(courses))
}

// GET /courses/:id
func GetCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewCourseService(getDB(c))
	course, err := svc.FindOne(id, services.DefaultCourseInclude)
	if err != nil {
		respondError(c, err, "could not load course")
		return
	}
	c.JSON(http.StatusOK, dto.CourseFromModel(course))
}

// GET /courses/slug/:slug
func GetCourseBySlug(c *gin.Context) {
	svc := services.NewCourseService(getDB(c))
	course, err := svc.FindBySlug(c.Param("slug"), services.DefaultCourseInclude)
	if err != nil {
		respondError(c, err, "could not load course")
		return
	}
	c.JSON(http.StatusOK, dto.CourseFromModel(course))
}

// POST /courses
func CreateCourse(c *gin.Context) {
	var input services.CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCourseService(getDB(c))
	course, err := svc.Create(input)
	if err != nil {
		respondError(c, err, "could not create course")
		return
	}
	c.JSON(http.StatusCreated, dto.CourseFromModel(course))
}

// PATCH /courses/:id
func UpdateCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCourseService(getDB(c))
	course, err := svc.Update(id, input)
	if err != nil {
		respondError(c, err, "could not update course")
		return
	}
	c.JSON(http.StatusOK, dto.CourseFromModel(course))
}

// DELETE /courses/:id
func DeleteCourse(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewCourseService(getDB(c))
	course, err := svc.Delete(id)
	if err != nil {
		respondError(c, err, "could not delete course")
		return
	}
	c.JSON(http.StatusOK, dto.CourseFromModel(course))
}
