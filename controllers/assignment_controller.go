package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmahler1/f25-cisc474-individual/services"
)

// GET /assignments
func GetAssignments(c *gin.Context) {
	svc := services.NewAssignmentService(getDB(c))
	assignments, err := svc.FindAll(services.DefaultAssignmentInclude)
	if err != nil {
		respondError(c, err, "could not list assignments")
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// GET /assignments/:id
func GetAssignment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewAssignmentService(getDB(c))
	assignment, err := svc.FindOne(id, services.DefaultAssignmentInclude)
	if err != nil {
		respondError(c, err, "could not load assignment")
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// POST /assignments
func CreateAssignment(c *gin.Context) {
	var input services.CreateAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewAssignmentService(getDB(c))
	assignment, err := svc.Create(input)
	if err != nil {
		respondError(c, err, "could not create assignment")
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// PATCH /assignments/:id
func UpdateAssignment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewAssignmentService(getDB(c))
	assignment, err := svc.Update(id, input)
	if err != nil {
		respondError(c, err, "could not update assignment")
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// DELETE /assignments/:id
func DeleteAssignment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewAssignmentService(getDB(c))
	assignment, err := svc.Delete(id)
	if err != nil {
		respondError(c, err, "could not delete assignment")
		return
	}
	c.JSON(http.StatusOK, assignment)
}
