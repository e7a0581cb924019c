package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmahler1/f25-cisc474-individual/services"
)

// GET /enrollments
func GetEnrollments(c *gin.Context) {
	svc := services.NewEnrollmentService(getDB(c))
	enrollments, err := svc.FindAll(services.DefaultEnrollmentInclude)
	if err != nil {
		respondError(c, err, "could not list enrollments")
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

// GET /enrollments/:id
func GetEnrollment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewEnrollmentService(getDB(c))
	enrollment, err := svc.FindOne(id, services.DefaultEnrollmentInclude)
	if err != nil {
		respondError(c, err, "could not load enrollment")
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// POST /enrollments
func CreateEnrollment(c *gin.Context) {
	var input services.CreateEnrollmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewEnrollmentService(getDB(c))
	enrollment, err := svc.Create(input)
	if err != nil {
		respondError(c, err, "could not create enrollment")
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

// PATCH /enrollments/:id
func UpdateEnrollment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateEnrollmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewEnrollmentService(getDB(c))
	enrollment, err := svc.Update(id, input)
	if err != nil {
		respondError(c, err, "could not update enrollment")
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

// DELETE /enrollments/:id
func DeleteEnrollment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewEnrollmentService(getDB(c))
	enrollment, err := svc.Delete(id)
	if err != nil {
		respondError(c, err, "could not delete enrollment")
		return
	}
	c.JSON(http.StatusOK, enrollment)
}
