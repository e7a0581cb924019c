package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmahler1/f25-cisc474-individual/services"
)

// GET /users
func GetUsers(c *gin.Context) {
	svc := services.NewUserService(getDB(c))
	users, err := svc.FindAll(services.DefaultUserInclude)
	if err != nil {
		respondError(c, err, "could not list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/:id
func GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewUserService(getDB(c))
	user, err := svc.FindOne(id, services.DefaultUserInclude)
	if err != nil {
		respondError(c, err, "could not load user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /users (admin only)
func CreateUser(c *gin.Context) {
	var input services.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewUserService(getDB(c))
	user, err := svc.Create(input)
	if err != nil {
		respondError(c, err, "could not create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// PATCH /users/:id
func UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewUserService(getDB(c))
	user, err := svc.Update(id, input)
	if err != nil {
		respondError(c, err, "could not update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /users/:id (admin only)
func DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewUserService(getDB(c))
	user, err := svc.Delete(id)
	if err != nil {
		respondError(c, err, "could not delete user")
		return
	}
	c.JSON(http.StatusOK, user)
}
