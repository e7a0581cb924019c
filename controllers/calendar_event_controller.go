package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmahler1/f25-cisc474-individual/services"
)

// GET /calendar-events
func GetCalendarEvents(c *gin.Context) {
	svc := services.NewCalendarEventService(getDB(c))
	events, err := svc.FindAll(services.DefaultCalendarEventInclude)
	if err != nil {
		respondError(c, err, "could not list calendar events")
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /calendar-events/:id
func GetCalendarEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewCalendarEventService(getDB(c))
	event, err := svc.FindOne(id, services.DefaultCalendarEventInclude)
	if err != nil {
		respondError(c, err, "could not load calendar event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// POST /calendar-events
func CreateCalendarEvent(c *gin.Context) {
	var input services.CreateCalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCalendarEventService(getDB(c))
	event, err := svc.Create(input)
	if err != nil {
		respondError(c, err, "could not create calendar event")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// PATCH /calendar-events/:id
func UpdateCalendarEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateCalendarEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCalendarEventService(getDB(c))
	event, err := svc.Update(id, input)
	if err != nil {
		respondError(c, err, "could not update calendar event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// DELETE /calendar-events/:id
func DeleteCalendarEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc := services.NewCalendarEventService(getDB(c))
	event, err := svc.Delete(id)
	if err != nil {
		respondError(c, err, "could not delete calendar event")
		return
	}
	c.JSON(http.StatusOK, event)
}
