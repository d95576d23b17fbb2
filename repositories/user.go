package repositories

import (
	"github.com/tradecademy/marketplace/database"
	"github.com/tradecademy/marketplace/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// UpdateRole changes a user's role
func (r *UserRepository) UpdateRole(id string, role models.Role) error {
	return database.DB.Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role).Error
}

// FindAll retrieves all users
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := database.DB.Order("created_at desc").Find(&users)
	return users, result.Error
}

// Count counts all users
func (r *UserRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).Count(&count)
	return count, result.Error
}

// CountByRole counts users holding a role
func (r *UserRepository) CountByRole(role models.Role) (int64, error) {
	var count int64
	result := database.DB.Model(&models.User{}).Where("role = ?", role).Count(&count)
	return count, result.Error
}

// DB returns the database instance
func (r *UserRepository) DB() *gorm.DB {
	return database.DB
}
