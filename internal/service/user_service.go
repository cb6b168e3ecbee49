package service

import (
	"fmt"

	"github.com/google/uuid"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/pkg/logger"
)

// UserService interface defines user service methods
type UserService interface {
	GetUserByID(id uint) (*models.User, error)
	GetUsers(role string, search string, page int, limit int) ([]*models.User, int64, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

// userService implements UserService interface
type userService struct {
	userRepo repository.UserRepository
	logger   *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetUserByID gets a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	if id == 0 {
		return nil, fmt.Errorf("invalid user ID")
	}
	return s.userRepo.GetUserByID(id)
}

// GetUsers lists users with role filter, search and pagination
func (s *userService) GetUsers(role string, search string, page int, limit int) ([]*models.User, int64, error) {
	return s.userRepo.GetUsers(role, search, page, limit)
}

// CreateUser creates a new user record
func (s *userService) CreateUser(user *models.User) error {
	if user.Role == "" {
		user.Role = models.RoleResident
	}
	if user.DocumentID == "" {
		user.DocumentID = uuid.New().String()
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		s.logger.WithError(err).WithField("username", user.Username).Error("Failed to create user")
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User created")
	return nil
}

// UpdateUser updates an existing user record
func (s *userService) UpdateUser(user *models.User) error {
	if user.ID == 0 {
		return fmt.Errorf("invalid user ID")
	}
	return s.userRepo.UpdateUser(user)
}

// DeleteUser deletes a user by ID
func (s *userService) DeleteUser(id uint) error {
	if id == 0 {
		return fmt.Errorf("invalid user ID")
	}
	return s.userRepo.DeleteUser(id)
}
