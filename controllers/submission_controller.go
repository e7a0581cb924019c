package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmahler1/f25-cisc474-individual/services"
)

// GET /submissions
func GetSubmissions(c *gin.Context) {
	svc := services.NewSubmissionService(getDB(c))
	submissions, err := svc.FindAll(services.DefaultSubmissionInclude)
	if err != nil {
		respondError(c, err, "could not list submissions")
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// GET /submissions/:id
func GetSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewSubmissionService(getDB(c))
	submission, err := svc.FindOne(id, services.DefaultSubmissionInclude)
	if err != nil {
		respondError(c, err, "could not load submission")
		return
	}
	c.JSON(http.StatusOK, submission)
}

// POST /submissions
func CreateSubmission(c *gin.Context) {
	var input services.CreateSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewSubmissionService(getDB(c))
	submission, err := svc.Create(input)
	if err != nil {
		respondError(c, err, "could not create submission")
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// PATCH /submissions/:id
func UpdateSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewSubmissionService(getDB(c))
	submission, err := svc.Update(id, input)
	if err != nil {
		respondError(c, err, "could not update submission")
		return
	}
	c.JSON(http.StatusOK, submission)
}

// DELETE /submissions/:id
func DeleteSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewSubmissionService(getDB(c))
	submission, err := svc.Delete(id)
	if err != nil {
		respondError(c, err, "could not delete submission")
		return
	}
	c.JSON(http.StatusOK, submission)
}
