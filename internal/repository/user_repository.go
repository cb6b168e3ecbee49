package repository

import (
	"strings"

	"gorm.io/gorm"

	"waterbill-be-svc/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetUserByID(id uint) (*models.User, error)
	GetUsers(role string, search string, page int, limit int) ([]*models.User, int64, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// GetUserByID retrieves a user by ID
func (r *userRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User

	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUsers retrieves users with optional role filter, name search and pagination
func (r *userRepository) GetUsers(role string, search string, page int, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	query := r.db.Model(&models.User{})
	if strings.TrimSpace(role) != "" {
		query = query.Where("role = ?", role)
	}
	if strings.TrimSpace(search) != "" {
		query = query.Where("full_name ILIKE ? OR username ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("full_name").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// CreateUser creates a new user record
func (r *userRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// UpdateUser updates an existing user record
func (r *userRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteUser deletes a user record by ID
func (r *userRepository) DeleteUser(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}
