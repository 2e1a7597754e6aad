package services

import (
	"context"
	"errors"

	"hostel-backend/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// UserService wraps *gorm.DB for account reads.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// GetUserByID returns the account projection. The password hash column is
// never part of the select.
func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			first_name,
			last_name,
			phone,
			nationality,
			role,
			created_at
		FROM users
		WHERE id = ?`, id).Scan(&users).Error
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, ErrUserNotFound
	}
	return users[0], nil
}
