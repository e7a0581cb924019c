package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

type CalendarEventInclude struct {
	User       bool
	Assignment bool
}

var DefaultCalendarEventInclude = CalendarEventInclude{User: true, Assignment: true}

type CreateCalendarEventInput struct {
	UserID       uuid.UUID  `json:"userId" binding:"required"`
	AssignmentID *uuid.UUID `json:"assignmentId"`
	Title        string     `json:"title" binding:"required"`
	DueAt        time.Time  `json:"dueAt" binding:"required"`
}

type UpdateCalendarEventInput struct {
	Title *string    `json:"title"`
	DueAt *time.Time `json:"dueAt"`
}

type CalendarEventService struct {
	db *gorm.DB
}

func NewCalendarEventService(db *gorm.DB) *CalendarEventService {
	return &CalendarEventService{db: db}
}

func (s *CalendarEventService) scope(inc CalendarEventInclude) *gorm.DB {
	q := s.db.Model(&models.CalendarEvent{})
	if inc.User {
		q = q.Preload("User")
	}
	if inc.Assignment {
		q = q.Preload("Assignment")
	}
	return q
}

func (s *CalendarEventService) FindAll(inc CalendarEventInclude) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	if err := s.scope(inc).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *CalendarEventService) FindOne(id uuid.UUID, inc CalendarEventInclude) (models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := s.scope(inc).First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CalendarEvent{}, &NotFoundError{Entity: "CalendarEvent", ID: id.String()}
	}
	return event, err
}

func (s *CalendarEventService) Create(in CreateCalendarEventInput) (models.CalendarEvent, error) {
	event := models.CalendarEvent{
		UserID:       in.UserID,
		AssignmentID: in.AssignmentID,
		Title:        in.Title,
		DueAt:        in.DueAt,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return models.CalendarEvent{}, err
	}
	return s.FindOne(event.ID, DefaultCalendarEventInclude)
}

func (s *CalendarEventService) Update(id uuid.UUID, in UpdateCalendarEventInput) (models.CalendarEvent, error) {
	patch := map[string]interface{}{}
	if in.Title != nil {
		patch["title"] = *in.Title
	}
	if in.DueAt != nil {
		patch["due_at"] = *in.DueAt
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(patch) == 0 {
			var n int64
			if err := tx.Model(&models.CalendarEvent{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return &NotFoundError{Entity: "CalendarEvent", ID: id.String()}
			}
			return nil
		}
		res := tx.Model(&models.CalendarEvent{}).Where("id = ?", id).Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: "CalendarEvent", ID: id.String()}
		}
		return nil
	})
	if err != nil {
		return models.CalendarEvent{}, err
	}
	return s.FindOne(id, DefaultCalendarEventInclude)
}

func (s *CalendarEventService) Delete(id uuid.UUID) (models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("User").Preload("Assignment").
			First(&event, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "CalendarEvent", ID: id.String()}
		}
		if err != nil {
			return err
		}
		return tx.Delete(&models.CalendarEvent{}, "id = ?", id).Error
	})
	if err != nil {
		return models.CalendarEvent{}, err
	}
	return event, nil
}
