package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danielmahler1/f25-cisc474-individual/models"
)

type UserInclude struct {
	Courses        bool
	Enrollments    bool
	Submissions    bool
	CalendarEvents bool
}

var DefaultUserInclude = UserInclude{Courses: true, Enrollments: true, Submissions: true, CalendarEvents: true}

type CreateUserInput struct {
	Name  string          `json:"name" binding:"required"`
	Email string          `json:"email" binding:"required,email"`
	Role  models.UserRole `json:"role" binding:"omitempty,oneof=admin instructor student"`
}

type UpdateUserInput struct {
	Name  *string          `json:"name"`
	Email *string          `json:"email" binding:"omitempty,email"`
	Role  *models.UserRole `json:"role" binding:"omitempty,oneof=admin instructor student"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) scope(inc UserInclude) *gorm.DB {
	q := s.db.Model(&models.User{})
	if inc.Courses {
		q = q.Preload("Courses")
	}
	if inc.Enrollments {
		q = q.Preload("Enrollments")
	}
	if inc.Submissions {
		q = q.Preload("Submissions")
	}
	if inc.CalendarEvents {
		q = q.Preload("CalendarEvents")
	}
	return q
}

func (s *UserService) FindAll(inc UserInclude) ([]models.User, error) {
	var users []models.User
	if err := s.scope(inc).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) FindOne(id uuid.UUID, inc UserInclude) (models.User, error) {
	var user models.User
	err := s.scope(inc).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, &NotFoundError{Entity: "User", ID: id.String()}
	}
	return user, err
}

func (s *UserService) Create(in CreateUserInput) (models.User, error) {
	role := in.Role
	if role == "" {
		role = models.RoleStudent
	}
	user := models.User{
		Name:  in.Name,
		Email: in.Email,
		Role:  role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return s.FindOne(user.ID, DefaultUserInclude)
}

func (s *UserService) Update(id uuid.UUID, in UpdateUserInput) (models.User, error) {
	patch := map[string]interface{}{}
	if in.Name != nil {
		patch["name"] = *in.Name
	}
	if in.Email != nil {
		patch["email"] = *in.Email
	}
	if in.Role != nil {
		patch["role"] = *in.Role
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(patch) == 0 {
			var n int64
			if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return &NotFoundError{Entity: "User", ID: id.String()}
			}
			return nil
		}
		res := tx.Model(&models.User{}).Where("id = ?", id).Updates(patch)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: "User", ID: id.String()}
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return s.FindOne(id, DefaultUserInclude)
}

func (s *UserService) Delete(id uuid.UUID) (models.User, error) {
	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Courses").Preload("Enrollments").Preload("Submissions").Preload("CalendarEvents").
			First(&user, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "User", ID: id.String()}
		}
		if err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
