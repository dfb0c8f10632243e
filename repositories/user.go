package repositories

import (
	"github.com/eventcity-api/database"
	"github.com/eventcity-api/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindAll retrieves all users with their role preloaded
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := database.DB.Preload("Role").Find(&users)
	return users, result.Error
}

// FindByID retrieves a user by its ID with its role preloaded
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	result := database.DB.Preload("Role").First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by its normalized email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.Preload("Role").First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user into the database. The Role association is
// referenced by id only, never written through the user.
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Omit("Role").Create(&user)
	return user, result.Error
}

// Update modifies an existing user
func (r *UserRepository) Update(user models.User) (models.User, error) {
	result := database.DB.Omit("Role").Save(&user)
	return user, result.Error
}

// Delete removes a user from the database
func (r *UserRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.User{}, "id = ?", id)
	return result.Error
}

// ExistsByEmail checks if a user with the given email exists
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// ExistsByPhone checks if a user with the given phone exists
func (r *UserRepository) ExistsByPhone(phone string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}
